// Package config loads the §5 driver configuration: flags for the input
// graph, terminal set, thread count, scheduler ordering, and the
// isolating-block BFS size, following the teacher's flag-parsing
// conventions (declare the flags, parse once, return a plain struct).
package config

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/cutgraph/mtcut/scheduler"
)

// Config holds everything the driver needs to run one multiway-cut query.
type Config struct {
	GraphPath  string
	Terminals  []uint32
	Threads    int
	Queue      scheduler.Ordering
	BFSSize    int
	SaveCut    bool
	DebugLevel int
	NoColour   bool
	Seed       int64
}

// Parse builds a Config from command-line-style args (excluding argv[0]),
// following FlagsToOptions' shape: declare every flag, parse once, surface
// validation failures as an error rather than a panic so callers (tests,
// alternate entry points) can handle them without exiting the process.
func Parse(args []string) (*Config, error) {
	fs := flag.NewFlagSet("mtcut", flag.ContinueOnError)

	graphPtr := fs.String("g", "", "Graph file, METIS format.")
	terminalsPtr := fs.String("T", "", "Comma-separated terminal vertex ids (0-indexed).")
	threadPtr := fs.Int("t", runtime.NumCPU(), "Thread count for the search.")
	queuePtr := fs.String("q", "lower_bound", "Scheduler ordering: small_graph, bound_sum, lower_bound, upper_bound, few_terminals, bigger_distance, lower_distance, most_deleted.")
	bfsPtr := fs.Int("bfs", 0, "Isolating-block BFS size (0 disables the reduction).")
	savePtr := fs.Bool("c", false, "Save and report the best partition found (save_cut).")
	debugPtr := fs.Int("debug", 0, "Debug verbosity: 0 info, 1 debug, 2+ trace.")
	colourPtr := fs.Bool("nc", false, "Disable coloured console log output.")
	seedPtr := fs.Int64("seed", 0, "Seed for the max-flow oracle's randomized tie-breaks.")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *graphPtr == "" {
		return nil, fmt.Errorf("config: -g graph file is required")
	}
	terms, err := parseTerminals(*terminalsPtr)
	if err != nil {
		return nil, err
	}
	if len(terms) < 2 {
		return nil, fmt.Errorf("config: at least 2 distinct terminals required, got %d", len(terms))
	}
	if *threadPtr < 1 {
		return nil, fmt.Errorf("config: thread count must be >= 1, got %d", *threadPtr)
	}

	return &Config{
		GraphPath:  *graphPtr,
		Terminals:  terms,
		Threads:    *threadPtr,
		Queue:      scheduler.ParseOrdering(*queuePtr),
		BFSSize:    *bfsPtr,
		SaveCut:    *savePtr,
		DebugLevel: *debugPtr,
		NoColour:   *colourPtr,
		Seed:       *seedPtr,
	}, nil
}

func parseTerminals(s string) ([]uint32, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("config: -T terminal list is required")
	}
	parts := strings.Split(s, ",")
	seen := make(map[uint32]bool, len(parts))
	out := make([]uint32, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("config: bad terminal id %q: %w", p, err)
		}
		id := uint32(v)
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out, nil
}

// Usage prints flag documentation to os.Stderr, mirroring the teacher's
// flag.Usage fallback when required flags are missing.
func Usage(fs *flag.FlagSet) {
	fs.SetOutput(os.Stderr)
	fs.Usage()
}

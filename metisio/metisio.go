// Package metisio reads the METIS-style graph format used by the driver's
// test fixtures and the cmd/mtcut CLI: first line `n m [fmt]`, then n
// lines each listing the 1-indexed neighbours of that vertex, with edge
// weights interleaved when fmt says the graph is weighted. File I/O and
// parsing sit outside the solver core; this package is the thin adapter
// between a METIS file on disk and an *mtgraph.Graph.
package metisio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cutgraph/mtcut/mtgraph"
)

// Load reads a METIS-format graph from path and returns the equivalent
// mtgraph.Graph. Vertex ids in the returned graph are 0-indexed (METIS
// files are 1-indexed). Each undirected edge is expected to appear in both
// endpoints' adjacency lists, as METIS format requires; a second
// occurrence of an edge already added is treated as the format's
// documented duplication, not an error, and silently skipped.
func Load(path string) (*mtgraph.Graph, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("metisio: %w", err)
	}
	defer file.Close()
	return Read(file)
}

// Read parses a METIS-format graph from r.
func Read(r io.Reader) (*mtgraph.Graph, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	header, ok := nextMeaningfulLine(scanner)
	if !ok {
		return nil, fmt.Errorf("metisio: empty file")
	}
	fields := strings.Fields(header)
	if len(fields) < 2 {
		return nil, fmt.Errorf("metisio: malformed header %q", header)
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("metisio: bad vertex count: %w", err)
	}
	weighted := false
	if len(fields) >= 3 {
		fmtCode, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("metisio: bad fmt code: %w", err)
		}
		weighted = fmtCode%10 == 1 // rightmost digit of fmt flags edge weights
	}

	g := mtgraph.New(n)
	for v := 0; v < n; v++ {
		line, ok := nextMeaningfulLine(scanner)
		if !ok {
			return nil, fmt.Errorf("metisio: expected %d adjacency lines, ran out at line %d", n, v+1)
		}
		toks := strings.Fields(line)
		step := 1
		if weighted {
			step = 2
		}
		for i := 0; i+step-1 < len(toks); i += step {
			raw, err := strconv.Atoi(toks[i])
			if err != nil {
				return nil, fmt.Errorf("metisio: bad neighbour at vertex %d: %w", v+1, err)
			}
			u := raw - 1
			if u <= v {
				continue // each undirected edge added once, from its lower-numbered endpoint
			}
			w := int64(1)
			if weighted {
				wv, err := strconv.Atoi(toks[i+1])
				if err != nil {
					return nil, fmt.Errorf("metisio: bad weight at vertex %d: %w", v+1, err)
				}
				w = int64(wv)
			}
			if _, exists := g.HasEdge(mtgraph.NodeID(v), mtgraph.NodeID(u)); exists {
				continue
			}
			if err := g.NewEdge(mtgraph.NodeID(v), mtgraph.NodeID(u), w); err != nil {
				return nil, fmt.Errorf("metisio: vertex %d -> %d: %w", v+1, u+1, err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("metisio: %w", err)
	}
	return g, nil
}

func nextMeaningfulLine(scanner *bufio.Scanner) (string, bool) {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		return line, true
	}
	return "", false
}

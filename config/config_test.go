package config

import (
	"testing"

	"github.com/cutgraph/mtcut/scheduler"
)

func TestParseBasic(t *testing.T) {
	cfg, err := Parse([]string{"-g", "graph.metis", "-T", "0,5,2", "-t", "4", "-q", "few_terminals", "-bfs", "3", "-c"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.GraphPath != "graph.metis" {
		t.Errorf("GraphPath = %q", cfg.GraphPath)
	}
	if len(cfg.Terminals) != 3 {
		t.Fatalf("want 3 terminals, got %v", cfg.Terminals)
	}
	if cfg.Threads != 4 {
		t.Errorf("Threads = %d", cfg.Threads)
	}
	if cfg.Queue != scheduler.FewTerminalsOrdering {
		t.Errorf("Queue = %v", cfg.Queue)
	}
	if cfg.BFSSize != 3 {
		t.Errorf("BFSSize = %d", cfg.BFSSize)
	}
	if !cfg.SaveCut {
		t.Error("expected SaveCut=true")
	}
}

func TestParseDeduplicatesTerminals(t *testing.T) {
	cfg, err := Parse([]string{"-g", "g.metis", "-T", "1,1,2"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(cfg.Terminals) != 2 {
		t.Fatalf("want deduplicated terminals, got %v", cfg.Terminals)
	}
}

func TestParseRequiresGraph(t *testing.T) {
	if _, err := Parse([]string{"-T", "0,1"}); err == nil {
		t.Fatal("expected an error for missing -g")
	}
}

func TestParseRequiresTwoTerminals(t *testing.T) {
	if _, err := Parse([]string{"-g", "g.metis", "-T", "0"}); err == nil {
		t.Fatal("expected an error for fewer than 2 terminals")
	}
}

func TestParseRejectsBadTerminal(t *testing.T) {
	if _, err := Parse([]string{"-g", "g.metis", "-T", "0,abc"}); err == nil {
		t.Fatal("expected an error for a non-numeric terminal")
	}
}

func TestParseSeed(t *testing.T) {
	cfg, err := Parse([]string{"-g", "g.metis", "-T", "0,1", "-seed", "42"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Seed)
	}
}

func TestParseDefaultQueueIsLowerBound(t *testing.T) {
	cfg, err := Parse([]string{"-g", "g.metis", "-T", "0,1"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Queue != scheduler.LowerBoundOrdering {
		t.Errorf("Queue = %v, want LowerBoundOrdering", cfg.Queue)
	}
}

// Command mtcut is the CLI entry point for the multi-terminal minimum-cut
// solver: load a METIS graph, parse flags, run the driver, and report the
// cut.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/cutgraph/mtcut/config"
	"github.com/cutgraph/mtcut/driver"
	"github.com/cutgraph/mtcut/metisio"
	"github.com/cutgraph/mtcut/utils"
)

func main() {
	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		log.Info().Msg(err.Error())
		os.Exit(1)
	}

	if cfg.NoColour {
		utils.SetLoggerConsole(true)
	}
	utils.SetLevel(cfg.DebugLevel)

	g, err := metisio.Load(cfg.GraphPath)
	if err != nil {
		log.Panic().Err(err).Msg("failed to load graph")
	}
	for _, t := range cfg.Terminals {
		if int(t) >= g.N() {
			log.Panic().Uint32("terminal", t).Int("n", g.N()).Msg("terminal out of range")
		}
	}

	log.Info().Int("vertices", g.N()).Int("edges", g.M()/2).Int("terminals", len(cfg.Terminals)).
		Int("threads", cfg.Threads).Msg("starting search")

	result, err := driver.Run(context.Background(), g, cfg.Terminals, driver.Options{
		Threads: cfg.Threads,
		Queue:   cfg.Queue,
		BFSSize: cfg.BFSSize,
		SaveCut: cfg.SaveCut,
		Seed:    cfg.Seed,
	})
	if err != nil {
		log.Panic().Err(err).Msg("search failed")
	}

	if result.Approximate {
		fmt.Printf("min-cut (approximate, search cancelled): %d\n", result.Total)
	} else {
		fmt.Printf("min-cut: %d\n", result.Total)
	}
	if cfg.SaveCut {
		for v, block := range result.Partition {
			fmt.Printf("%d %d\n", v, block)
		}
	}
}

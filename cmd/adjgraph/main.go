// SPDX-License-Identifier: MIT

// adjgraph builds an undirected adjacency-set graph from a seed document or a
// generated topology, applies edge and node edits, and prints the result as a
// seed document on stdout.
//
// Usage:
//
//	adjgraph --topology wheel -n 6 --delete Center --check
//	adjgraph --seed graph.yaml --set a,d --remove a,b
//
// Edits run in a fixed order: every --set, then every --remove, then every
// --delete.  Logging goes to stderr.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	flags "github.com/jessevdk/go-flags"

	"github.com/katalvlaran/adjset/builder"
	"github.com/katalvlaran/adjset/core"
	"github.com/katalvlaran/adjset/seedfile"
)

const version = "0.1.0"

// errCheckFailed is returned when --check finds integrity violations.
var errCheckFailed = errors.New("integrity check failed")

// loadGraph builds the starting graph from either the seed file or the
// requested topology.
func loadGraph(cfg *config) (*core.Graph[string], error) {
	if cfg.SeedFile != "" {
		doc, err := seedfile.Load(cfg.SeedFile)
		if err != nil {
			return nil, err
		}
		log.Infof("Loaded %d entries and %d edges from %s",
			len(doc.Entries), len(doc.Edges), cfg.SeedFile)
		return doc.Graph(), nil
	}

	ctor, err := builder.Topology(cfg.Topology, cfg.Nodes, cfg.Cols, cfg.Prob)
	if err != nil {
		return nil, err
	}
	g, err := builder.BuildGraph(cfg.builderOptions(), ctor)
	if err != nil {
		return nil, err
	}
	log.Infof("Generated %s topology with %d nodes", cfg.Topology, g.Size())

	return g, nil
}

// applyEdits runs the --set, --remove and --delete edits against g.
func applyEdits(cfg *config, g *core.Graph[string]) {
	for _, e := range cfg.toSet {
		g.SetEdge(e.From, e.To)
		log.Debugf("Set edge %s-%s", e.From, e.To)
	}
	for _, e := range cfg.toRemove {
		g.RemoveEdge(e.From, e.To)
		log.Debugf("Removed edge %s-%s", e.From, e.To)
	}
	for _, n := range cfg.DeleteNodes {
		neighbors, ok := g.DeleteNode(n)
		if !ok {
			log.Warnf("Node %s does not exist", n)
			continue
		}
		log.Debugf("Deleted node %s with neighbors %v", n, neighbors.Slice())
	}
}

// run executes one invocation and writes the resulting document to out.
func run(cfg *config, out io.Writer) error {
	g, err := loadGraph(cfg)
	if err != nil {
		return err
	}
	applyEdits(cfg, g)

	if err := seedfile.Encode(out, g); err != nil {
		return err
	}

	stats := g.Stats()
	log.Infof("Result: %d nodes, %d edges (%d self-loops)",
		stats.NodeCount, stats.EdgeCount, stats.LoopCount)

	if cfg.Check {
		ok := g.Tidy(func(err error) {
			log.Errorf("Integrity: %v", err)
		})
		if !ok {
			return errCheckFailed
		}
		log.Info("Integrity check passed")
	}

	return nil
}

// realMain is the real main function for the utility.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is called.
func realMain() error {
	defer os.Stderr.Sync()

	cfg, showVersion, err := loadConfig(os.Args[1:])
	if err != nil {
		var fe *flags.Error
		if errors.As(err, &fe) && fe.Type == flags.ErrHelp {
			return nil
		}
		// go-flags has already reported its own errors.
		if fe == nil {
			fmt.Fprintln(os.Stderr, err)
		}
		return err
	}
	if showVersion {
		fmt.Println(appName(), "version", version)
		return nil
	}
	setLogLevels(cfg.LogLevel)

	if err := run(cfg, os.Stdout); err != nil {
		log.Error(err)
		return err
	}

	return nil
}

func main() {
	// Work around defer not working after os.Exit()
	if err := realMain(); err != nil {
		os.Exit(1)
	}
}

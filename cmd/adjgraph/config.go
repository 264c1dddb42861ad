// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/btcsuite/btclog"
	flags "github.com/jessevdk/go-flags"

	"github.com/katalvlaran/adjset/builder"
	"github.com/katalvlaran/adjset/core"
	"github.com/katalvlaran/adjset/seedfile"
)

const (
	defaultLogLevel = "info"
	defaultNodes    = 5
	defaultIDScheme = "default"
)

// idSchemes maps the --ids choices to builder options.
var idSchemes = map[string]func() builder.BuilderOption{
	"default": builder.WithDefaultIDs,
	"symbol":  builder.WithSymbolIDs,
	"excel":   builder.WithExcelColumnIDs,
	"hex":     builder.WithHexIDs,
	"alnum":   builder.WithAlphanumericIDs,
}

// config defines the configuration options for adjgraph.
//
// See loadConfig for details on the configuration load process.
type config struct {
	SeedFile string  `short:"f" long:"seed" description:"Seed document (YAML or JSON) to start from"`
	Topology string  `short:"t" long:"topology" description:"Generate a topology instead: path, cycle, star, wheel, complete, bipartite, grid, random"`
	Nodes    int     `short:"n" long:"nodes" description:"Primary size of the generated topology (rows for grid, left side for bipartite)"`
	Cols     int     `short:"m" long:"cols" description:"Secondary size (columns for grid, right side for bipartite)"`
	Prob     float64 `short:"p" long:"prob" description:"Edge probability for the random topology"`
	RandSeed int64   `long:"seed-rng" description:"RNG seed for the random topology"`
	IDScheme string  `long:"ids" description:"Node ID scheme for generated topologies" choice:"default" choice:"symbol" choice:"excel" choice:"hex" choice:"alnum"`

	SetEdges    []string `long:"set" description:"Add the edge a,b (may be repeated)"`
	RemoveEdges []string `long:"remove" description:"Remove the edge a,b (may be repeated)"`
	DeleteNodes []string `long:"delete" description:"Delete a node and its incident edges (may be repeated)"`

	Check       bool   `long:"check" description:"Verify graph integrity and exit with status 1 on violations"`
	LogLevel    string `short:"d" long:"loglevel" description:"Logging level {trace, debug, info, warn, error, critical, off}"`
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`

	// Parsed forms of the repeatable edge flags.
	toSet    []core.Edge[string]
	toRemove []core.Edge[string]
}

// parseEdge splits "a,b" into an edge.  Surrounding whitespace is trimmed.
func parseEdge(flag, s string) (core.Edge[string], error) {
	from, to, ok := strings.Cut(s, ",")
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	if !ok || from == "" || to == "" || strings.Contains(to, ",") {
		return core.Edge[string]{}, fmt.Errorf("--%s %q: want a,b: %w",
			flag, s, seedfile.ErrMalformedEdge)
	}

	return core.Edge[string]{From: from, To: to}, nil
}

// loadConfig initializes and parses the config using command line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Parse the command line options and validate them
//
// Unlike most of the other options, --version is reported through the
// returned bool so the caller can print it and exit cleanly.
func loadConfig(args []string) (*config, bool, error) {
	cfg := config{
		Nodes:    defaultNodes,
		IDScheme: defaultIDScheme,
		LogLevel: defaultLogLevel,
	}

	parser := flags.NewParser(&cfg, flags.Default)
	parser.Name = appName()
	if _, err := parser.ParseArgs(args); err != nil {
		return nil, false, err
	}
	if cfg.ShowVersion {
		return &cfg, true, nil
	}

	if _, ok := btclog.LevelFromString(cfg.LogLevel); !ok {
		return nil, false, fmt.Errorf("loadConfig: invalid log level %q", cfg.LogLevel)
	}

	switch {
	case cfg.SeedFile == "" && cfg.Topology == "":
		return nil, false, errors.New("loadConfig: one of --seed or --topology is required")
	case cfg.SeedFile != "" && cfg.Topology != "":
		return nil, false, errors.New("loadConfig: --seed and --topology are mutually exclusive")
	}

	for _, s := range cfg.SetEdges {
		e, err := parseEdge("set", s)
		if err != nil {
			return nil, false, err
		}
		cfg.toSet = append(cfg.toSet, e)
	}
	for _, s := range cfg.RemoveEdges {
		e, err := parseEdge("remove", s)
		if err != nil {
			return nil, false, err
		}
		cfg.toRemove = append(cfg.toRemove, e)
	}

	return &cfg, false, nil
}

// builderOptions translates the generator flags into builder options.
func (cfg *config) builderOptions() []builder.BuilderOption {
	opts := []builder.BuilderOption{idSchemes[cfg.IDScheme]()}
	if cfg.Prob > builder.MinProbability && cfg.Prob < builder.MaxProbability {
		opts = append(opts, builder.WithSeed(cfg.RandSeed))
	}

	return opts
}

// appName returns the executable name without directory or extension.
func appName() string {
	name := filepath.Base(os.Args[0])
	return strings.TrimSuffix(name, filepath.Ext(name))
}

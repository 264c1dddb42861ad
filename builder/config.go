// SPDX-License-Identifier: MIT
// Package: adjset/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • idFn        = DefaultIDFn        ("0","1","2",...), unbounded
//   • rng         = nil                (pure/deterministic unless seeded)
//   • left/right  = "L" / "R"

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Node ID strategy: index -> ID (deterministic).
	idFn IDFn
	// Number of indices idFn accepts; unboundedIDs when it has no limit.
	idCap int
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand

	// Bipartite ID prefixes (left/right). Empty → defaults resolved below.
	leftPrefix  string
	rightPrefix string
}

const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order. Empty prefixes resolve to defaults afterwards.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}

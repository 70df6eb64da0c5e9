// SPDX-License-Identifier: MIT
// Package: graphtrace/builder
//
// config.go: resolved configuration shared by all constructors.

package builder

import "math/rand"

// builderConfig is resolved once per BuildGraph call and never mutated by
// constructors.
type builderConfig struct {
	// idFn maps an index to a vertex ID.
	idFn IDFn

	// rng feeds stochastic weight functions; nil unless WithSeed/WithRand.
	rng *rand.Rand

	// weightFn decides the weight of each emitted edge.
	weightFn WeightFn

	// leftPrefix, rightPrefix name the two sides of CompleteBipartite.
	leftPrefix  string
	rightPrefix string
}

const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

// newBuilderConfig applies opts over the defaults: decimal IDs, no RNG,
// constant weight DefaultEdgeWeight, partitions "L"/"R".
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		weightFn:    DefaultWeightFn,
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

// SPDX-License-Identifier: MIT
// Package: graphtrace/builder
//
// weight_fn.go: edge weight distributions.
//
// Every WeightFn must be pure with respect to the RNG it receives so that a
// fixed seed reproduces the same weights. A nil RNG falls back to
// DefaultEdgeWeight for stochastic distributions.

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is used when no WeightFn is configured.
const DefaultEdgeWeight float64 = 1

// WeightFn decides the weight of one generated edge.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn always returns value. Panics on negative values.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 { return value }
}

// UniformWeightFn draws from U[min,max). Panics unless 0 ≤ min ≤ max.
func UniformWeightFn(min, max float64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// UniformIntWeightFn draws an integer weight from [min,max]. Integer weights
// keep MST totals exact regardless of summation order.
func UniformIntWeightFn(min, max int) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformIntWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return float64(min + rng.Intn(max-min+1))
	}
}

// WithConstantWeight selects ConstantWeightFn(w).
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight selects UniformWeightFn(min, max).
func WithUniformWeight(min, max float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithUniformIntWeight selects UniformIntWeightFn(min, max).
func WithUniformIntWeight(min, max int) BuilderOption {
	return WithWeightFn(UniformIntWeightFn(min, max))
}

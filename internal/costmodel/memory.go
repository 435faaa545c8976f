// Copyright 2026 GasGuard Engineering
// SPDX-License-Identifier: Apache-2.0

package costmodel

import "math"

// Memory carries no direct fee on the network, so the memory cost is a pure
// advisory penalty: scalingFactorMemory * e^(exponentSlope * utilization).
// The exponential makes the penalty explode as usage approaches the hard
// limit, discouraging designs that hug the ceiling even though memory itself
// is "free".
const (
	scalingFactorMemory = 100.0
	exponentSlope       = 5.0
)

// ComputeMemoryCost converts peak memory usage into a utilization ratio and
// an exponential penalty score. Computed in float64; implementations agree
// within a relative tolerance of 1e-6 for identical inputs.
func ComputeMemoryCost(sim *SimulationResult, cfg *Config) MemoryCost {
	utilization := float64(sim.MemoryBytes) / float64(cfg.TxMemoryLimit)

	return MemoryCost{
		BytesUsed:  sim.MemoryBytes,
		Normalized: utilization,
		Cost:       scalingFactorMemory * math.Exp(exponentSlope*utilization),
	}
}

// Copyright 2026 GasGuard Engineering
// SPDX-License-Identifier: Apache-2.0

package costmodel

import "math"

// Score band thresholds and aggregate weights. CPU and ledger are weighted
// twice as heavily as memory because memory carries no direct fee and is an
// advisory-only dimension.
const (
	scoreBandLow  = 0.5
	scoreBandHigh = 0.8

	scoreWeightCPU    = 0.4
	scoreWeightMemory = 0.2
	scoreWeightLedger = 0.4
)

// interpolate maps val from [inMin, inMax] onto [outMin, outMax] linearly.
func interpolate(val, inMin, inMax, outMin, outMax float64) float64 {
	if inMax == inMin {
		return outMin
	}
	ratio := (val - inMin) / (inMax - inMin)
	return outMin + ratio*(outMax-outMin)
}

// ScoreDimension maps a utilization ratio to a 0-100 efficiency score using
// three piecewise-linear bands:
//
//	[0.0, 0.5) -> [100, 80]   excellent
//	[0.5, 0.8) -> [80, 50]    good
//	[0.8, inf) -> [50, 0]     poor, extrapolated past 1.0 then clamped
//
// The interpolated value is truncated (floored), not rounded, then clamped
// to [0, 100]. Monotonic non-increasing in utilization.
func ScoreDimension(utilization float64) int {
	var score float64
	switch {
	case utilization < scoreBandLow:
		score = interpolate(utilization, 0, scoreBandLow, 100, 80)
	case utilization < scoreBandHigh:
		score = interpolate(utilization, scoreBandLow, scoreBandHigh, 80, 50)
	default:
		score = interpolate(utilization, scoreBandHigh, 1.0, 50, 0)
	}

	return int(math.Max(0, math.Min(100, score)))
}

// ComputeScores scores each cost dimension and combines them into the
// weighted total. The total is truncated, matching the historical behavior
// consumers already depend on, rather than rounded to nearest.
func ComputeScores(cpu CPUCost, mem MemoryCost, ledger LedgerCost) Scores {
	sCPU := ScoreDimension(cpu.Normalized)
	sMem := ScoreDimension(mem.Normalized)
	sLedger := ScoreDimension(ledger.Normalized)

	total := int(scoreWeightCPU*float64(sCPU) +
		scoreWeightMemory*float64(sMem) +
		scoreWeightLedger*float64(sLedger))

	return Scores{
		CPU:    sCPU,
		Memory: sMem,
		Ledger: sLedger,
		Total:  total,
	}
}

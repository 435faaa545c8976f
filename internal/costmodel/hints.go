// Copyright 2026 GasGuard Engineering
// SPDX-License-Identifier: Apache-2.0

package costmodel

import (
	"fmt"
	"math"
)

// Hint rule thresholds. These are advisory trigger points, distinct from the
// hard safety margin in safety.go.
const (
	hintCPUCritical      = 0.8
	hintCPUHigh          = 0.6
	hintPressure         = 0.5
	hintMemoryCritical   = 0.7
	hintMemoryModerate   = 0.5
	hintLedgerDimension  = 0.75
	hintCrossCPU         = 0.7
	hintCrossReadEntries = 0.5
)

// ledgerDimensionLabels are the human-readable names used in per-dimension
// hint messages.
var ledgerDimensionLabels = map[LedgerDimension]string{
	DimReadEntries:  "read entry count",
	DimWriteEntries: "write entry count",
	DimReadBytes:    "read byte volume",
	DimWriteBytes:   "write byte volume",
	DimBandwidth:    "transaction size",
}

// GenerateHints produces the ordered advisory message list for one analysis.
// Rules are evaluated in a fixed order and every applicable message is
// included, so identical inputs always yield an identical hint sequence.
func GenerateHints(cpu CPUCost, mem MemoryCost, ledger LedgerCost) []string {
	var hints []string

	// CPU rules
	if cpu.Normalized > hintCPUCritical {
		hints = append(hints, fmt.Sprintf(
			"CRITICAL: CPU usage at %.0f%%. Reduce instruction count.", cpu.Normalized*100))
	} else if cpu.Normalized > hintCPUHigh {
		hints = append(hints, "HIGH CPU: Optimize hot loops and host function calls.")
	}

	if cpu.LedgerPressure > hintPressure {
		pressurePct := math.Sqrt(cpu.LedgerPressure)
		hints = append(hints, fmt.Sprintf(
			"High ledger CPU pressure (%.1f%%).", pressurePct*100))
	}

	// Memory rules
	if mem.Normalized > hintMemoryCritical {
		hints = append(hints, fmt.Sprintf(
			"CRITICAL: Memory usage at %.0f%%. Optimize allocations.", mem.Normalized*100))
	} else if mem.Normalized > hintMemoryModerate {
		hints = append(hints, "MODERATE memory usage. Review data structure sizes.")
	}

	// Per-dimension ledger rules, in canonical breakdown order
	for _, du := range ledger.Breakdown {
		if du.Utilization > hintLedgerDimension {
			hints = append(hints, fmt.Sprintf(
				"HIGH %s. Consider batching or compression.", ledgerDimensionLabels[du.Dimension]))
		}
	}

	// Cross-dimension rule
	if cpu.Normalized > hintCrossCPU && ledger.Breakdown.Get(DimReadEntries) > hintCrossReadEntries {
		hints = append(hints, "TIP: High CPU + reads. Check for redundant storage accesses.")
	}

	if len(hints) == 0 {
		hints = append(hints, "Excellent resource efficiency!")
	}

	return hints
}

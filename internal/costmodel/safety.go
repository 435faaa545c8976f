// Copyright 2026 GasGuard Engineering
// SPDX-License-Identifier: Apache-2.0

package costmodel

import "fmt"

// safetyMargin is the hard utilization ceiling. It is independent of the
// scoring bands: crossing it flags a violation but never alters fees or
// scores.
const safetyMargin = 0.95

// CheckSafety returns one named violation string per dimension whose
// utilization exceeds the 95% safety margin: CPU, memory, and each of the
// five ledger breakdown dimensions, in that order.
func CheckSafety(cpu CPUCost, mem MemoryCost, ledger LedgerCost) []string {
	var violations []string

	if cpu.Normalized > safetyMargin {
		violations = append(violations, "CPU exceeds 95% safety margin")
	}
	if mem.Normalized > safetyMargin {
		violations = append(violations, "Memory exceeds 95% safety margin")
	}
	for _, du := range ledger.Breakdown {
		if du.Utilization > safetyMargin {
			violations = append(violations, fmt.Sprintf(
				"Ledger %s exceeds 95%% safety margin", du.Dimension))
		}
	}

	return violations
}

// Copyright 2026 GasGuard Engineering
// SPDX-License-Identifier: Apache-2.0

package costmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ledgerWithUtils builds a LedgerCost whose breakdown holds the given
// utilizations in canonical dimension order.
func ledgerWithUtils(readEntries, readBytes, writeEntries, writeBytes, bandwidth float64) LedgerCost {
	return LedgerCost{
		Breakdown: Breakdown{
			{DimReadEntries, readEntries},
			{DimReadBytes, readBytes},
			{DimWriteEntries, writeEntries},
			{DimWriteBytes, writeBytes},
			{DimBandwidth, bandwidth},
		},
	}
}

func TestGenerateHints_EfficientFallback(t *testing.T) {
	hints := GenerateHints(
		CPUCost{Normalized: 0.05},
		MemoryCost{Normalized: 0.05},
		ledgerWithUtils(0.05, 0.01, 0.04, 0.01, 0.04),
	)

	assert.Equal(t, []string{"Excellent resource efficiency!"}, hints)
}

func TestGenerateHints_CPUCritical(t *testing.T) {
	hints := GenerateHints(
		CPUCost{Normalized: 0.85},
		MemoryCost{},
		ledgerWithUtils(0, 0, 0, 0, 0),
	)

	assert.Contains(t, hints, "CRITICAL: CPU usage at 85%. Reduce instruction count.")
}

func TestGenerateHints_CPUHigh(t *testing.T) {
	hints := GenerateHints(
		CPUCost{Normalized: 0.65},
		MemoryCost{},
		ledgerWithUtils(0, 0, 0, 0, 0),
	)

	assert.Contains(t, hints, "HIGH CPU: Optimize hot loops and host function calls.")
	assert.NotContains(t, hints, "CRITICAL: CPU usage at 65%. Reduce instruction count.")
}

func TestGenerateHints_LedgerPressure(t *testing.T) {
	hints := GenerateHints(
		CPUCost{LedgerPressure: 0.64},
		MemoryCost{},
		ledgerWithUtils(0, 0, 0, 0, 0),
	)

	// sqrt(0.64) = 0.8, reported as a percentage.
	assert.Contains(t, hints, "High ledger CPU pressure (80.0%).")
}

func TestGenerateHints_Memory(t *testing.T) {
	critical := GenerateHints(CPUCost{}, MemoryCost{Normalized: 0.8}, ledgerWithUtils(0, 0, 0, 0, 0))
	assert.Contains(t, critical, "CRITICAL: Memory usage at 80%. Optimize allocations.")

	moderate := GenerateHints(CPUCost{}, MemoryCost{Normalized: 0.6}, ledgerWithUtils(0, 0, 0, 0, 0))
	assert.Contains(t, moderate, "MODERATE memory usage. Review data structure sizes.")
}

func TestGenerateHints_LedgerDimensions(t *testing.T) {
	hints := GenerateHints(
		CPUCost{},
		MemoryCost{},
		ledgerWithUtils(0.8, 0, 0.9, 0, 0.76),
	)

	assert.Equal(t, []string{
		"HIGH read entry count. Consider batching or compression.",
		"HIGH write entry count. Consider batching or compression.",
		"HIGH transaction size. Consider batching or compression.",
	}, hints)
}

func TestGenerateHints_CrossDimension(t *testing.T) {
	hints := GenerateHints(
		CPUCost{Normalized: 0.75},
		MemoryCost{},
		ledgerWithUtils(0.6, 0, 0, 0, 0),
	)

	assert.Equal(t, []string{
		"HIGH CPU: Optimize hot loops and host function calls.",
		"TIP: High CPU + reads. Check for redundant storage accesses.",
	}, hints)
}

func TestGenerateHints_RuleOrderIsStable(t *testing.T) {
	hints := GenerateHints(
		CPUCost{Normalized: 0.85, LedgerPressure: 0.6},
		MemoryCost{Normalized: 0.75},
		ledgerWithUtils(0.8, 0, 0, 0, 0.9),
	)

	assert.Equal(t, []string{
		"CRITICAL: CPU usage at 85%. Reduce instruction count.",
		"High ledger CPU pressure (77.5%).",
		"CRITICAL: Memory usage at 75%. Optimize allocations.",
		"HIGH read entry count. Consider batching or compression.",
		"HIGH transaction size. Consider batching or compression.",
		"TIP: High CPU + reads. Check for redundant storage accesses.",
	}, hints)
}

// Copyright 2026 GasGuard Engineering
// SPDX-License-Identifier: Apache-2.0

package costmodel

import (
	"time"

	"github.com/gasguard/gasguard/internal/errors"
)

// Footprint is the declared set of ledger-entry keys a transaction reads or
// writes. Identifiers are opaque (typically base64-encoded XDR LedgerKeys).
// Duplicates are counted as given because the network charges per declared
// entry, not per distinct key.
type Footprint struct {
	ReadOnly  []string `json:"read_only"`
	ReadWrite []string `json:"read_write"`
}

// SorobanResources is the resource envelope claimed by a transaction.
type SorobanResources struct {
	Footprint    Footprint `json:"footprint"`
	Instructions int64     `json:"instructions"`
	ReadBytes    int64     `json:"read_bytes"`
	WriteBytes   int64     `json:"write_bytes"`
}

// SimulationResult is the output of a simulateTransaction call, the sole
// input to the analysis pipeline besides a Config. It is never mutated.
type SimulationResult struct {
	Instructions         int64            `json:"instructions"`
	MemoryBytes          int64            `json:"memory_bytes"`
	Resources            SorobanResources `json:"resources"`
	TransactionSizeBytes int64            `json:"transaction_size_bytes"`
}

// Validate rejects structurally invalid inputs before any cost computation.
// Over-limit usage is valid data and is not checked here.
func (s *SimulationResult) Validate() error {
	switch {
	case s.Instructions < 0:
		return errors.WrapInvalidInput("instructions must be non-negative")
	case s.MemoryBytes < 0:
		return errors.WrapInvalidInput("memory bytes must be non-negative")
	case s.Resources.Instructions < 0:
		return errors.WrapInvalidInput("resource instructions must be non-negative")
	case s.Resources.ReadBytes < 0:
		return errors.WrapInvalidInput("read bytes must be non-negative")
	case s.Resources.WriteBytes < 0:
		return errors.WrapInvalidInput("write bytes must be non-negative")
	case s.TransactionSizeBytes < 0:
		return errors.WrapInvalidInput("transaction size must be non-negative")
	}
	return nil
}

// CPUCost is the CPU fee and utilization breakdown. Fee and Total are in XLM.
type CPUCost struct {
	Fee            float64 `json:"fee"`
	Normalized     float64 `json:"normalized"`
	LedgerPressure float64 `json:"ledger_pressure"`
	Total          float64 `json:"total"`
}

// MemoryCost carries no direct fee; Cost is a pure advisory penalty score.
type MemoryCost struct {
	BytesUsed  int64   `json:"bytes_used"`
	Normalized float64 `json:"normalized"`
	Cost       float64 `json:"cost"`
}

// LedgerDimension identifies one of the five ledger I/O dimensions.
type LedgerDimension string

const (
	DimReadEntries  LedgerDimension = "read_entries"
	DimReadBytes    LedgerDimension = "read_bytes"
	DimWriteEntries LedgerDimension = "write_entries"
	DimWriteBytes   LedgerDimension = "write_bytes"
	DimBandwidth    LedgerDimension = "bandwidth"
)

// LedgerDimensions is the canonical evaluation order. Hint generation and
// safety checking iterate in this order, so it is part of the observable
// output sequence and must never be reordered.
var LedgerDimensions = [5]LedgerDimension{
	DimReadEntries,
	DimReadBytes,
	DimWriteEntries,
	DimWriteBytes,
	DimBandwidth,
}

// DimensionUtilization pairs a ledger dimension with its utilization ratio.
type DimensionUtilization struct {
	Dimension   LedgerDimension `json:"dimension"`
	Utilization float64         `json:"utilization"`
}

// Breakdown is an ordered association of the five ledger dimensions to their
// utilization ratios. A slice rather than a map keeps iteration order fixed.
type Breakdown []DimensionUtilization

// Get returns the utilization for dim, or 0 when absent.
func (b Breakdown) Get(dim LedgerDimension) float64 {
	for _, du := range b {
		if du.Dimension == dim {
			return du.Utilization
		}
	}
	return 0
}

// LedgerCost is the ledger I/O and bandwidth fee with a per-dimension
// utilization breakdown. Fee is in XLM; Normalized is the equal-weighted
// composite of the five dimension utilizations.
type LedgerCost struct {
	Fee        float64   `json:"fee"`
	Normalized float64   `json:"normalized"`
	Breakdown  Breakdown `json:"breakdown"`
}

// Scores are per-dimension efficiency scores on a 0-100 scale.
type Scores struct {
	CPU    int `json:"cpu"`
	Memory int `json:"memory"`
	Ledger int `json:"ledger"`
	Total  int `json:"total"`
}

// Costs aggregates the three cost breakdowns of one analysis.
type Costs struct {
	CPU    CPUCost    `json:"cpu"`
	Memory MemoryCost `json:"memory"`
	Ledger LedgerCost `json:"ledger"`
}

// Analysis is the complete result of one pipeline invocation. Every field
// except Timestamp is a deterministic function of the inputs.
type Analysis struct {
	Costs            Costs     `json:"costs"`
	Scores           Scores    `json:"scores"`
	Hints            []string  `json:"hints"`
	SafetyViolations []string  `json:"safety_violations"`
	Timestamp        time.Time `json:"timestamp"`
	ConfigVersion    string    `json:"config_version"`
}

// Copyright 2026 GasGuard Engineering
// SPDX-License-Identifier: Apache-2.0

package costmodel

import "math"

// ledgerDimensionWeight is the equal weight each of the five ledger
// dimensions contributes to the composite utilization.
const ledgerDimensionWeight = 0.2

// ceilKB converts a byte count to billable kilobyte units. Any partial
// kilobyte is billed as a full kilobyte; zero bytes bills zero.
func ceilKB(bytes int64) float64 {
	return math.Ceil(float64(bytes) / 1024)
}

// ComputeLedgerCost converts the footprint, byte volumes, and transaction
// size into a fee plus a per-dimension utilization breakdown.
//
// Entry counts are the raw footprint list lengths: duplicates are counted as
// given because that matches how the network bills declared entries.
func ComputeLedgerCost(sim *SimulationResult, cfg *Config) LedgerCost {
	reads := int64(len(sim.Resources.Footprint.ReadOnly))
	writes := int64(len(sim.Resources.Footprint.ReadWrite))
	readBytes := sim.Resources.ReadBytes
	writeBytes := sim.Resources.WriteBytes
	txSize := sim.TransactionSizeBytes

	costReads := float64(reads)*cfg.FeeReadLedgerEntry + ceilKB(readBytes)*cfg.FeeRead1KB
	costWrites := float64(writes)*cfg.FeeWriteLedgerEntry + ceilKB(writeBytes)*cfg.FeeWrite1KB
	costBandwidth := ceilKB(txSize) * cfg.FeeTxSize1KB

	breakdown := Breakdown{
		{DimReadEntries, float64(reads) / float64(cfg.TxMaxReadLedgerEntries)},
		{DimReadBytes, float64(readBytes) / float64(cfg.TxMaxReadBytes)},
		{DimWriteEntries, float64(writes) / float64(cfg.TxMaxWriteLedgerEntries)},
		{DimWriteBytes, float64(writeBytes) / float64(cfg.TxMaxWriteBytes)},
		{DimBandwidth, float64(txSize) / float64(cfg.TxMaxSizeBytes)},
	}

	composite := 0.0
	for _, du := range breakdown {
		composite += du.Utilization * ledgerDimensionWeight
	}

	return LedgerCost{
		Fee:        costReads + costWrites + costBandwidth,
		Normalized: composite,
		Breakdown:  breakdown,
	}
}

// Copyright 2026 GasGuard Engineering
// SPDX-License-Identifier: Apache-2.0

package costmodel

import "math"

// pressureWeight scales how strongly ledger pressure inflates the adjusted
// CPU cost: total = fee * (1 + pressureWeight * pressure).
const pressureWeight = 0.5

// ComputeCPUCost converts the instruction count into a fee, a per-transaction
// utilization ratio, and a quadratic ledger-pressure penalty.
//
// Instructions are billed per increment, rounded up, so even a single
// instruction is charged one full increment. Ledger pressure is the square of
// the ledger-relative utilization: doubling the share of the whole ledger's
// instruction budget quadruples the penalty, which disproportionately charges
// transactions that crowd out the rest of the ledger rather than merely
// approaching their own transaction budget.
func ComputeCPUCost(sim *SimulationResult, cfg *Config) CPUCost {
	instructions := float64(sim.Instructions)

	feeIncrements := math.Ceil(instructions / float64(cfg.FeeRatePerInstructionsIncrement))
	fee := feeIncrements * cfg.FeeCPUPerIncrement

	utilTx := instructions / float64(cfg.TxMaxInstructions)
	utilLedger := instructions / float64(cfg.LedgerMaxInstructions)
	pressure := utilLedger * utilLedger

	return CPUCost{
		Fee:            fee,
		Normalized:     utilTx,
		LedgerPressure: pressure,
		Total:          fee * (1 + pressureWeight*pressure),
	}
}

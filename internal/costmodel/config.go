// Copyright 2026 GasGuard Engineering
// SPDX-License-Identifier: Apache-2.0

package costmodel

import (
	"fmt"

	"github.com/gasguard/gasguard/internal/errors"
)

// Config holds the network resource limits and fee-rate constants one
// analysis is evaluated against. Instances are treated as immutable values;
// callers construct them once (usually via netconfig presets) and never
// mutate them afterwards. All fees are in XLM.
type Config struct {
	// CPU / compute
	TxMaxInstructions               int64   `json:"tx_max_instructions"`
	LedgerMaxInstructions           int64   `json:"ledger_max_instructions"`
	FeeRatePerInstructionsIncrement int64   `json:"fee_rate_per_instructions_increment"`
	FeeCPUPerIncrement              float64 `json:"fee_cpu_per_increment"`
	TxMemoryLimit                   int64   `json:"tx_memory_limit"`

	// Ledger I/O limits
	TxMaxReadLedgerEntries      int64 `json:"tx_max_read_ledger_entries"`
	TxMaxReadBytes              int64 `json:"tx_max_read_bytes"`
	TxMaxWriteLedgerEntries     int64 `json:"tx_max_write_ledger_entries"`
	TxMaxWriteBytes             int64 `json:"tx_max_write_bytes"`
	LedgerMaxReadLedgerEntries  int64 `json:"ledger_max_read_ledger_entries"`
	LedgerMaxReadBytes          int64 `json:"ledger_max_read_bytes"`
	LedgerMaxWriteLedgerEntries int64 `json:"ledger_max_write_ledger_entries"`
	LedgerMaxWriteBytes         int64 `json:"ledger_max_write_bytes"`

	// Ledger I/O fees
	FeeReadLedgerEntry  float64 `json:"fee_read_ledger_entry"`
	FeeWriteLedgerEntry float64 `json:"fee_write_ledger_entry"`
	FeeRead1KB          float64 `json:"fee_read_1kb"`
	FeeWrite1KB         float64 `json:"fee_write_1kb"`

	// Bandwidth
	TxMaxSizeBytes        int64   `json:"tx_max_size_bytes"`
	LedgerMaxTxsSizeBytes int64   `json:"ledger_max_txs_size_bytes"`
	FeeTxSize1KB          float64 `json:"fee_tx_size_1kb"`

	Version string `json:"version"`
}

// DefaultConfig returns the Soroban mainnet protocol-20 limits and fee rates.
func DefaultConfig() Config {
	return Config{
		TxMaxInstructions:               100_000_000,
		LedgerMaxInstructions:           1_000_000_000,
		FeeRatePerInstructionsIncrement: 10_000,
		FeeCPUPerIncrement:              0.00001,
		TxMemoryLimit:                   41_943_040,

		TxMaxReadLedgerEntries:      40,
		TxMaxReadBytes:              200_000,
		TxMaxWriteLedgerEntries:     25,
		TxMaxWriteBytes:             100_000,
		LedgerMaxReadLedgerEntries:  20_000,
		LedgerMaxReadBytes:          100_000_000,
		LedgerMaxWriteLedgerEntries: 10_000,
		LedgerMaxWriteBytes:         50_000_000,

		FeeReadLedgerEntry:  0.0001,
		FeeWriteLedgerEntry: 0.0002,
		FeeRead1KB:          0.00005,
		FeeWrite1KB:         0.0001,

		TxMaxSizeBytes:        100_000,
		LedgerMaxTxsSizeBytes: 1_000_000,
		FeeTxSize1KB:          0.00001,

		Version: "mainnet-v20",
	}
}

// Validate fails fast on any non-positive numeric field so that no division
// downstream can produce Inf or NaN. Every returned error wraps
// errors.ErrInvalidConfig.
func (c *Config) Validate() error {
	checks := []struct {
		name string
		ok   bool
	}{
		{"tx_max_instructions", c.TxMaxInstructions > 0},
		{"ledger_max_instructions", c.LedgerMaxInstructions > 0},
		{"fee_rate_per_instructions_increment", c.FeeRatePerInstructionsIncrement > 0},
		{"fee_cpu_per_increment", c.FeeCPUPerIncrement > 0},
		{"tx_memory_limit", c.TxMemoryLimit > 0},
		{"tx_max_read_ledger_entries", c.TxMaxReadLedgerEntries > 0},
		{"tx_max_read_bytes", c.TxMaxReadBytes > 0},
		{"tx_max_write_ledger_entries", c.TxMaxWriteLedgerEntries > 0},
		{"tx_max_write_bytes", c.TxMaxWriteBytes > 0},
		{"ledger_max_read_ledger_entries", c.LedgerMaxReadLedgerEntries > 0},
		{"ledger_max_read_bytes", c.LedgerMaxReadBytes > 0},
		{"ledger_max_write_ledger_entries", c.LedgerMaxWriteLedgerEntries > 0},
		{"ledger_max_write_bytes", c.LedgerMaxWriteBytes > 0},
		{"fee_read_ledger_entry", c.FeeReadLedgerEntry > 0},
		{"fee_write_ledger_entry", c.FeeWriteLedgerEntry > 0},
		{"fee_read_1kb", c.FeeRead1KB > 0},
		{"fee_write_1kb", c.FeeWrite1KB > 0},
		{"tx_max_size_bytes", c.TxMaxSizeBytes > 0},
		{"ledger_max_txs_size_bytes", c.LedgerMaxTxsSizeBytes > 0},
		{"fee_tx_size_1kb", c.FeeTxSize1KB > 0},
	}

	for _, check := range checks {
		if !check.ok {
			return errors.WrapInvalidConfig(fmt.Sprintf("%s must be strictly positive", check.name))
		}
	}
	return nil
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Version: %s, TxMaxInstructions: %d, TxMemoryLimit: %d, TxMaxSizeBytes: %d}",
		c.Version, c.TxMaxInstructions, c.TxMemoryLimit, c.TxMaxSizeBytes,
	)
}

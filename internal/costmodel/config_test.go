// Copyright 2026 GasGuard Engineering
// SPDX-License-Identifier: Apache-2.0

package costmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gerrors "github.com/gasguard/gasguard/internal/errors"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "mainnet-v20", cfg.Version)
}

func TestConfigValidate_RejectsNonPositiveFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero tx_max_instructions", func(c *Config) { c.TxMaxInstructions = 0 }},
		{"negative ledger_max_instructions", func(c *Config) { c.LedgerMaxInstructions = -1 }},
		{"zero fee_rate_per_instructions_increment", func(c *Config) { c.FeeRatePerInstructionsIncrement = 0 }},
		{"zero fee_cpu_per_increment", func(c *Config) { c.FeeCPUPerIncrement = 0 }},
		{"zero tx_memory_limit", func(c *Config) { c.TxMemoryLimit = 0 }},
		{"zero tx_max_read_ledger_entries", func(c *Config) { c.TxMaxReadLedgerEntries = 0 }},
		{"zero tx_max_read_bytes", func(c *Config) { c.TxMaxReadBytes = 0 }},
		{"zero tx_max_write_ledger_entries", func(c *Config) { c.TxMaxWriteLedgerEntries = 0 }},
		{"zero tx_max_write_bytes", func(c *Config) { c.TxMaxWriteBytes = 0 }},
		{"zero fee_read_ledger_entry", func(c *Config) { c.FeeReadLedgerEntry = 0 }},
		{"zero fee_write_1kb", func(c *Config) { c.FeeWrite1KB = 0 }},
		{"zero tx_max_size_bytes", func(c *Config) { c.TxMaxSizeBytes = 0 }},
		{"negative fee_tx_size_1kb", func(c *Config) { c.FeeTxSize1KB = -0.1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, gerrors.ErrInvalidConfig)
			assert.Contains(t, err.Error(), "must be strictly positive")
		})
	}
}

func TestConfigValidate_NamesTheOffendingField(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TxMemoryLimit = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tx_memory_limit")
}

// Copyright 2026 GasGuard Engineering
// SPDX-License-Identifier: Apache-2.0

package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapHelpers_PreserveSentinels(t *testing.T) {
	cause := stderrors.New("boom")

	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"invalid config", WrapInvalidConfig("tx_max_instructions must be strictly positive"), ErrInvalidConfig},
		{"invalid input", WrapInvalidInput("instructions must be non-negative"), ErrInvalidInput},
		{"unknown network", WrapUnknownNetwork("devnet"), ErrUnknownNetwork},
		{"unknown config", WrapUnknownConfig("mainnet-v99"), ErrUnknownConfig},
		{"preset not found", WrapPresetNotFound("my-preset"), ErrPresetNotFound},
		{"rpc connection failed", WrapRPCConnectionFailed(cause), ErrRPCConnectionFailed},
		{"simulation failed", WrapSimulationFailed("host error"), ErrSimulationFailed},
		{"marshal failed", WrapMarshalFailed(cause), ErrMarshalFailed},
		{"unmarshal failed", WrapUnmarshalFailed(cause, "{}"), ErrUnmarshalFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.sentinel)
		})
	}
}

func TestWrapHelpers_KeepContext(t *testing.T) {
	err := WrapUnknownNetwork("devnet")
	assert.Contains(t, err.Error(), "devnet")
	assert.Contains(t, err.Error(), "mainnet, testnet, futurenet")

	cause := stderrors.New("connection refused")
	wrapped := WrapRPCConnectionFailed(cause)
	assert.ErrorIs(t, wrapped, cause)
}

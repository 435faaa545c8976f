// Copyright 2026 GasGuard Engineering
// SPDX-License-Identifier: Apache-2.0

package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for comparison with errors.Is
var (
	ErrInvalidConfig       = errors.New("invalid configuration")
	ErrInvalidInput        = errors.New("invalid simulation input")
	ErrUnknownNetwork      = errors.New("unknown network")
	ErrUnknownConfig       = errors.New("unknown configuration version")
	ErrPresetNotFound      = errors.New("preset not found")
	ErrRPCConnectionFailed = errors.New("RPC connection failed")
	ErrSimulationFailed    = errors.New("simulation failed")
	ErrMarshalFailed       = errors.New("failed to marshal request")
	ErrUnmarshalFailed     = errors.New("failed to unmarshal response")
)

// Wrap functions for consistent error wrapping

func WrapInvalidConfig(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, msg)
}

func WrapInvalidInput(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}

func WrapUnknownNetwork(network string) error {
	return fmt.Errorf("%w: %s. Must be one of: mainnet, testnet, futurenet", ErrUnknownNetwork, network)
}

func WrapUnknownConfig(label string) error {
	return fmt.Errorf("%w: %s", ErrUnknownConfig, label)
}

func WrapPresetNotFound(name string) error {
	return fmt.Errorf("%w: %s", ErrPresetNotFound, name)
}

func WrapRPCConnectionFailed(err error) error {
	return fmt.Errorf("%w: %w", ErrRPCConnectionFailed, err)
}

func WrapSimulationFailed(msg string) error {
	return fmt.Errorf("%w: %s", ErrSimulationFailed, msg)
}

func WrapMarshalFailed(err error) error {
	return fmt.Errorf("%w: %w", ErrMarshalFailed, err)
}

func WrapUnmarshalFailed(err error, output string) error {
	return fmt.Errorf("%w: %w, output: %s", ErrUnmarshalFailed, err, output)
}

// Copyright 2026 GasGuard Engineering
// SPDX-License-Identifier: Apache-2.0

// Package netconfig is the configuration-loading collaborator: a registry of
// versioned costmodel.Config presets for the known Soroban networks. The
// cost model itself never fetches configuration; callers resolve a preset
// here (or load their own) and pass it in.
package netconfig

import (
	"sort"
	"strings"

	goversion "github.com/hashicorp/go-version"

	"github.com/gasguard/gasguard/internal/costmodel"
	"github.com/gasguard/gasguard/internal/errors"
)

// Known network names.
const (
	Mainnet   = "mainnet"
	Testnet   = "testnet"
	Futurenet = "futurenet"
)

func mainnetV20() costmodel.Config {
	return costmodel.DefaultConfig()
}

// Protocol 21 raised the per-transaction instruction budget to 150M and the
// per-ledger budget proportionally.
func mainnetV21() costmodel.Config {
	cfg := costmodel.DefaultConfig()
	cfg.TxMaxInstructions = 150_000_000
	cfg.LedgerMaxInstructions = 1_500_000_000
	cfg.Version = "mainnet-v21"
	return cfg
}

// Protocol 22 raised the instruction budgets again and doubled the read
// entry allowance.
func mainnetV22() costmodel.Config {
	cfg := costmodel.DefaultConfig()
	cfg.TxMaxInstructions = 200_000_000
	cfg.LedgerMaxInstructions = 2_000_000_000
	cfg.TxMaxReadLedgerEntries = 80
	cfg.TxMaxReadBytes = 400_000
	cfg.Version = "mainnet-v22"
	return cfg
}

// Testnet runs the protocol-22 limits with cheaper fee rates.
func testnetV22() costmodel.Config {
	cfg := mainnetV22()
	cfg.FeeReadLedgerEntry = 0.00005
	cfg.FeeWriteLedgerEntry = 0.0001
	cfg.FeeRead1KB = 0.000025
	cfg.FeeWrite1KB = 0.00005
	cfg.FeeTxSize1KB = 0.000005
	cfg.Version = "testnet-v22"
	return cfg
}

var presets = map[string]func() costmodel.Config{
	"mainnet-v20": mainnetV20,
	"mainnet-v21": mainnetV21,
	"mainnet-v22": mainnetV22,
	"testnet-v22": testnetV22,
}

// Get returns the preset for a version label such as "mainnet-v21".
func Get(label string) (costmodel.Config, error) {
	if build, ok := presets[label]; ok {
		return build(), nil
	}
	return costmodel.Config{}, errors.WrapUnknownConfig(label)
}

// Labels returns all known preset labels in lexical order.
func Labels() []string {
	labels := make([]string, 0, len(presets))
	for label := range presets {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// Latest returns the highest-revision preset for a network, comparing the
// "-vN" suffixes as versions rather than strings so that a future "v100"
// sorts after "v99".
func Latest(network string) (costmodel.Config, error) {
	prefix := network + "-v"

	var bestLabel string
	var best *goversion.Version
	for label := range presets {
		if !strings.HasPrefix(label, prefix) {
			continue
		}
		v, err := goversion.NewVersion(strings.TrimPrefix(label, prefix))
		if err != nil {
			continue
		}
		if best == nil || v.GreaterThan(best) {
			best = v
			bestLabel = label
		}
	}

	if bestLabel == "" {
		return costmodel.Config{}, errors.WrapUnknownNetwork(network)
	}
	return Get(bestLabel)
}

// Default returns the preset used when the caller specifies nothing.
func Default() costmodel.Config {
	return mainnetV20()
}

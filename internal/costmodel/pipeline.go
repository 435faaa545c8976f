// Copyright 2026 GasGuard Engineering
// SPDX-License-Identifier: Apache-2.0

// Package costmodel computes deterministic resource costs, efficiency
// scores, and advisory hints for a simulated Soroban transaction against a
// versioned set of network limits and fee rates.
//
// The whole pipeline is a pure function of (SimulationResult, Config): no
// I/O, no shared mutable state, safe for concurrent use from any number of
// goroutines. Obtaining the simulation result (RPC), loading configuration,
// and rendering the Analysis are the callers' concern.
package costmodel

import "time"

// Analyzer runs the full cost -> score -> hint -> safety pipeline. The zero
// value is not usable; construct with NewAnalyzer. The wall-clock source is
// injectable so the rest of the pipeline stays fully deterministic under
// test.
type Analyzer struct {
	now func() time.Time
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithClock overrides the wall-clock source stamped into each Analysis.
func WithClock(now func() time.Time) Option {
	return func(a *Analyzer) {
		a.now = now
	}
}

// NewAnalyzer returns an Analyzer using time.Now unless overridden.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{now: time.Now}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze validates the inputs, computes the three cost breakdowns, scores
// them, and derives hints and safety violations. Everything but the
// timestamp is a deterministic function of the inputs; calling twice with
// identical inputs yields identical contents apart from Timestamp.
func (a *Analyzer) Analyze(sim *SimulationResult, cfg *Config) (*Analysis, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := sim.Validate(); err != nil {
		return nil, err
	}

	cpu := ComputeCPUCost(sim, cfg)
	mem := ComputeMemoryCost(sim, cfg)
	ledger := ComputeLedgerCost(sim, cfg)

	return &Analysis{
		Costs:            Costs{CPU: cpu, Memory: mem, Ledger: ledger},
		Scores:           ComputeScores(cpu, mem, ledger),
		Hints:            GenerateHints(cpu, mem, ledger),
		SafetyViolations: CheckSafety(cpu, mem, ledger),
		Timestamp:        a.now().UTC(),
		ConfigVersion:    cfg.Version,
	}, nil
}

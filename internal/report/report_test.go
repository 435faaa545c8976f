// Copyright 2026 GasGuard Engineering
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gasguard/gasguard/internal/costmodel"
)

func sampleAnalysis(t *testing.T) *costmodel.Analysis {
	t.Helper()

	cfg := costmodel.DefaultConfig()
	sim := &costmodel.SimulationResult{
		Instructions: 1_250_000,
		MemoryBytes:  2_097_152,
		Resources: costmodel.SorobanResources{
			Footprint: costmodel.Footprint{
				ReadOnly:  []string{"k1", "k2"},
				ReadWrite: []string{"k3"},
			},
			ReadBytes:  512,
			WriteBytes: 256,
		},
		TransactionSizeBytes: 4096,
	}

	at := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	analyzer := costmodel.NewAnalyzer(costmodel.WithClock(func() time.Time { return at }))
	analysis, err := analyzer.Analyze(sim, &cfg)
	require.NoError(t, err)
	return analysis
}

func TestRender(t *testing.T) {
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	var buf bytes.Buffer
	Render(&buf, sampleAnalysis(t))
	out := buf.String()

	assert.Contains(t, out, "Soroban Resource Analysis")
	assert.Contains(t, out, "config mainnet-v20")
	assert.Contains(t, out, "Scores")
	assert.Contains(t, out, "Total")
	assert.Contains(t, out, "Ledger utilization")
	assert.Contains(t, out, "read_entries")
	assert.Contains(t, out, "bandwidth")
	assert.Contains(t, out, "Excellent resource efficiency!")
	assert.NotContains(t, out, "Safety violations")
}

func TestRender_SafetyViolations(t *testing.T) {
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	cfg := costmodel.DefaultConfig()
	sim := &costmodel.SimulationResult{Instructions: 99_000_000}
	analysis, err := costmodel.NewAnalyzer().Analyze(sim, &cfg)
	require.NoError(t, err)

	var buf bytes.Buffer
	Render(&buf, analysis)

	assert.Contains(t, buf.String(), "Safety violations")
	assert.Contains(t, buf.String(), "CPU exceeds 95% safety margin")
}

func TestExportJSON(t *testing.T) {
	analysis := sampleAnalysis(t)

	var buf bytes.Buffer
	require.NoError(t, ExportJSON(&buf, analysis))

	var decoded costmodel.Analysis
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, analysis.Scores, decoded.Scores)
	assert.Equal(t, analysis.ConfigVersion, decoded.ConfigVersion)
	assert.Equal(t, analysis.Hints, decoded.Hints)
	assert.True(t, analysis.Timestamp.Equal(decoded.Timestamp))

	// Keys are the stable snake_case wire names.
	assert.Contains(t, buf.String(), `"safety_violations"`)
	assert.Contains(t, buf.String(), `"config_version"`)
	assert.Contains(t, buf.String(), `"read_entries"`)
}

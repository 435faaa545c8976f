// Copyright 2026 GasGuard Engineering
// SPDX-License-Identifier: Apache-2.0

package daemon

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gasguard/gasguard/internal/costmodel"
	"github.com/gasguard/gasguard/internal/errors"
	"github.com/gasguard/gasguard/internal/netconfig"
)

func analyzeRequest() *AnalyzeRequest {
	return &AnalyzeRequest{
		Simulation: costmodel.SimulationResult{
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
		},
	}
}

func TestAnalyze_DefaultConfig(t *testing.T) {
	server := NewServer(Config{})

	var resp AnalyzeResponse
	err := server.Analyze(httptest.NewRequest("POST", "/rpc", nil), analyzeRequest(), &resp)
	require.NoError(t, err)

	require.NotNil(t, resp.Analysis)
	assert.Equal(t, "mainnet-v20", resp.Analysis.ConfigVersion)
	assert.GreaterOrEqual(t, resp.Analysis.Scores.Total, 95)
}

func TestAnalyze_PresetLabel(t *testing.T) {
	server := NewServer(Config{})

	req := analyzeRequest()
	req.ConfigVersion = "mainnet-v22"

	var resp AnalyzeResponse
	err := server.Analyze(httptest.NewRequest("POST", "/rpc", nil), req, &resp)
	require.NoError(t, err)
	assert.Equal(t, "mainnet-v22", resp.Analysis.ConfigVersion)
}

func TestAnalyze_InlineConfigWins(t *testing.T) {
	server := NewServer(Config{})

	inline := costmodel.DefaultConfig()
	inline.Version = "custom"

	req := analyzeRequest()
	req.ConfigVersion = "mainnet-v22"
	req.Config = &inline

	var resp AnalyzeResponse
	err := server.Analyze(httptest.NewRequest("POST", "/rpc", nil), req, &resp)
	require.NoError(t, err)
	assert.Equal(t, "custom", resp.Analysis.ConfigVersion)
}

func TestAnalyze_UnknownPreset(t *testing.T) {
	server := NewServer(Config{})

	req := analyzeRequest()
	req.ConfigVersion = "mainnet-v99"

	var resp AnalyzeResponse
	err := server.Analyze(httptest.NewRequest("POST", "/rpc", nil), req, &resp)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrUnknownConfig)
}

func TestAnalyze_InvalidSimulation(t *testing.T) {
	server := NewServer(Config{})

	req := &AnalyzeRequest{Simulation: costmodel.SimulationResult{Instructions: -1}}

	var resp AnalyzeResponse
	err := server.Analyze(httptest.NewRequest("POST", "/rpc", nil), req, &resp)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidInput)
}

func TestAnalyze_Auth(t *testing.T) {
	server := NewServer(Config{AuthToken: "secret"})

	var resp AnalyzeResponse

	noAuth := httptest.NewRequest("POST", "/rpc", nil)
	assert.Error(t, server.Analyze(noAuth, analyzeRequest(), &resp))

	wrong := httptest.NewRequest("POST", "/rpc", nil)
	wrong.Header.Set("Authorization", "Bearer nope")
	assert.Error(t, server.Analyze(wrong, analyzeRequest(), &resp))

	bearer := httptest.NewRequest("POST", "/rpc", nil)
	bearer.Header.Set("Authorization", "Bearer secret")
	assert.NoError(t, server.Analyze(bearer, analyzeRequest(), &resp))

	raw := httptest.NewRequest("POST", "/rpc", nil)
	raw.Header.Set("Authorization", "secret")
	assert.NoError(t, server.Analyze(raw, analyzeRequest(), &resp))
}

func TestNetworks(t *testing.T) {
	server := NewServer(Config{})

	var resp NetworksResponse
	err := server.Networks(httptest.NewRequest("POST", "/rpc", nil), &NetworksRequest{}, &resp)
	require.NoError(t, err)
	assert.Equal(t, netconfig.Labels(), resp.Labels)
}

func TestNetworks_Auth(t *testing.T) {
	server := NewServer(Config{AuthToken: "secret"})

	var resp NetworksResponse
	err := server.Networks(httptest.NewRequest("POST", "/rpc", nil), &NetworksRequest{}, &resp)
	assert.Error(t, err)
}

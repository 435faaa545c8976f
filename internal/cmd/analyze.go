// Copyright 2026 GasGuard Engineering
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gasguard/gasguard/internal/costmodel"
	"github.com/gasguard/gasguard/internal/errors"
	"github.com/gasguard/gasguard/internal/netconfig"
	"github.com/gasguard/gasguard/internal/registry"
	"github.com/gasguard/gasguard/internal/report"
	"github.com/gasguard/gasguard/internal/rpc"
)

var (
	analyzeInputFlag         string
	analyzeEnvelopeFlag      string
	analyzeNetworkFlag       string
	analyzeConfigVersionFlag string
	analyzePresetFlag        string
	analyzeRegistryFlag      string
	analyzeRPCURLFlag        string
	analyzeRPCTokenFlag      string
	analyzeJSONFlag          bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a simulation result and report cost, scores, and hints",
	Long: `Analyze computes fees, efficiency scores, optimization hints, and
safety-margin violations for one simulated Soroban transaction.

The simulation result comes either from a local JSON file (--input) or from
a live simulateTransaction preflight of a base64 envelope (--envelope).

The network configuration is resolved in order of precedence: --preset (a
saved custom config), --config-version (a built-in preset label such as
mainnet-v21), or the latest preset for --network.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeInputFlag, "input", "", "Path to a simulation result JSON file")
	analyzeCmd.Flags().StringVar(&analyzeEnvelopeFlag, "envelope", "", "Base64 transaction envelope XDR to simulate live")
	analyzeCmd.Flags().StringVar(&analyzeNetworkFlag, "network", "mainnet", "Network to resolve configuration for (mainnet, testnet, futurenet)")
	analyzeCmd.Flags().StringVar(&analyzeConfigVersionFlag, "config-version", "", "Built-in configuration preset label (see 'gasguard networks')")
	analyzeCmd.Flags().StringVar(&analyzePresetFlag, "preset", "", "Name of a saved custom configuration preset")
	analyzeCmd.Flags().StringVar(&analyzeRegistryFlag, "registry", "", "Path to the preset registry database")
	analyzeCmd.Flags().StringVar(&analyzeRPCURLFlag, "rpc-url", "", "Custom Soroban RPC URL for live simulation")
	analyzeCmd.Flags().StringVar(&analyzeRPCTokenFlag, "rpc-token", "", "Bearer token for the RPC endpoint")
	analyzeCmd.Flags().BoolVar(&analyzeJSONFlag, "json", false, "Emit the analysis as JSON instead of a terminal report")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	sim, err := loadSimulation(cmd)
	if err != nil {
		return err
	}

	cfg, err := resolveAnalysisConfig()
	if err != nil {
		return err
	}

	analysis, err := costmodel.NewAnalyzer().Analyze(sim, &cfg)
	if err != nil {
		return err
	}

	if analyzeJSONFlag {
		return report.ExportJSON(os.Stdout, analysis)
	}
	report.Render(os.Stdout, analysis)
	return nil
}

// loadSimulation produces the simulation result from whichever source the
// caller picked: a saved JSON file or a live RPC preflight.
func loadSimulation(cmd *cobra.Command) (*costmodel.SimulationResult, error) {
	switch {
	case analyzeInputFlag != "" && analyzeEnvelopeFlag != "":
		return nil, fmt.Errorf("--input and --envelope are mutually exclusive")

	case analyzeInputFlag != "":
		data, err := os.ReadFile(analyzeInputFlag)
		if err != nil {
			return nil, fmt.Errorf("failed to read simulation file: %w", err)
		}
		var sim costmodel.SimulationResult
		if err := json.Unmarshal(data, &sim); err != nil {
			return nil, errors.WrapUnmarshalFailed(err, analyzeInputFlag)
		}
		return &sim, nil

	case analyzeEnvelopeFlag != "":
		var client *rpc.Client
		if analyzeRPCURLFlag != "" {
			client = rpc.NewClientWithURL(analyzeRPCURLFlag, rpc.Network(analyzeNetworkFlag), analyzeRPCTokenFlag)
		} else {
			client = rpc.NewClient(rpc.Network(analyzeNetworkFlag), analyzeRPCTokenFlag)
		}
		return client.FetchSimulationResult(cmd.Context(), analyzeEnvelopeFlag)

	default:
		return nil, fmt.Errorf("either --input or --envelope is required")
	}
}

func resolveAnalysisConfig() (costmodel.Config, error) {
	if analyzePresetFlag != "" {
		store, err := registry.Open(analyzeRegistryFlag)
		if err != nil {
			return costmodel.Config{}, err
		}
		defer store.Close()
		return store.Load(analyzePresetFlag)
	}

	if analyzeConfigVersionFlag != "" {
		return netconfig.Get(analyzeConfigVersionFlag)
	}

	return netconfig.Latest(analyzeNetworkFlag)
}

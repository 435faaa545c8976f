// Copyright 2026 GasGuard Engineering
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gasguard",
	Short: "Soroban resource cost and efficiency analyzer",
	Long: `GasGuard translates a raw Soroban simulation result into actionable
cost and efficiency feedback before a transaction is submitted.

It computes network fees, 0-100 efficiency scores, optimization hints, and
safety-margin violations from the resource usage a simulateTransaction
preflight reports.

Examples:
  gasguard analyze --input sim.json                 Analyze a saved simulation result
  gasguard analyze --envelope AAAA... --network testnet
                                                    Simulate live and analyze
  gasguard networks                                 List known network configurations
  gasguard preset save --name tuned --from cfg.json Save a custom limit set`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

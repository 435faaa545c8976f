// Copyright 2026 GasGuard Engineering
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gasguard/gasguard/internal/netconfig"
)

var networksCmd = &cobra.Command{
	Use:   "networks",
	Short: "List built-in network configuration presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("%-14s %16s %16s %12s\n", "VERSION", "TX INSTRUCTIONS", "MEMORY LIMIT", "TX SIZE")
		for _, label := range netconfig.Labels() {
			cfg, err := netconfig.Get(label)
			if err != nil {
				return err
			}
			fmt.Printf("%-14s %16d %16d %12d\n",
				cfg.Version, cfg.TxMaxInstructions, cfg.TxMemoryLimit, cfg.TxMaxSizeBytes)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(networksCmd)
}

// Copyright 2026 GasGuard Engineering
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the gasguard version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gasguard %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

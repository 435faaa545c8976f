// Copyright 2026 GasGuard Engineering
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gasguard/gasguard/internal/daemon"
)

var (
	daemonPortFlag  string
	daemonTokenFlag string
)

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Run the analysis pipeline as a JSON-RPC service",
	Long: `Daemon starts a JSON-RPC 2.0 server exposing GasGuard.Analyze and
GasGuard.Networks on /rpc, plus a /health endpoint. It shuts down cleanly
on SIGINT or SIGTERM.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		server := daemon.NewServer(daemon.Config{
			Port:      daemonPortFlag,
			AuthToken: daemonTokenFlag,
		})
		return server.Start(ctx, daemonPortFlag)
	},
}

func init() {
	daemonCmd.Flags().StringVar(&daemonPortFlag, "port", "8737", "Port to listen on")
	daemonCmd.Flags().StringVar(&daemonTokenFlag, "token", "", "Bearer token required on RPC calls")

	rootCmd.AddCommand(daemonCmd)
}

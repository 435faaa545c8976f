// Copyright 2026 GasGuard Engineering
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/gasguard/gasguard/internal/cmd"
	"github.com/gasguard/gasguard/internal/telemetry"
)

// run executes the CLI and maps the result to an exit code. Split out of
// main so tests can drive it with a fake execute function.
func run(execute func() error, stderr io.Writer) int {
	if err := execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	ctx := context.Background()

	// Tracing is opt-in via GASGUARD_OTEL_ENDPOINT.
	shutdown, err := telemetry.Init(ctx, telemetry.Config{
		Enabled:     os.Getenv("GASGUARD_OTEL_ENDPOINT") != "",
		ExporterURL: os.Getenv("GASGUARD_OTEL_ENDPOINT"),
		ServiceName: "gasguard",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: telemetry init failed: %v\n", err)
		shutdown = func() {}
	}

	code := run(cmd.Execute, os.Stderr)
	shutdown()
	os.Exit(code)
}

// Copyright 2026 GasGuard Engineering
// SPDX-License-Identifier: Apache-2.0

// Package report renders an Analysis for humans and machines. The cost
// model owns no serialization; everything presentation-related lives here.
package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/gasguard/gasguard/internal/costmodel"
)

var (
	headerColor   = color.New(color.FgCyan, color.Bold)
	goodColor     = color.New(color.FgGreen)
	warnColor     = color.New(color.FgYellow)
	badColor      = color.New(color.FgRed)
	criticalColor = color.New(color.FgRed, color.Bold)
)

// scoreColor picks the render color for a 0-100 score using the same band
// boundaries the scorer maps to: 80 and 50.
func scoreColor(score int) *color.Color {
	switch {
	case score >= 80:
		return goodColor
	case score >= 50:
		return warnColor
	default:
		return badColor
	}
}

// Render writes a human-readable terminal report for one analysis.
func Render(w io.Writer, a *costmodel.Analysis) {
	headerColor.Fprintf(w, "Soroban Resource Analysis")
	fmt.Fprintf(w, "  (config %s, %s)\n\n", a.ConfigVersion, a.Timestamp.Format("2006-01-02 15:04:05 MST"))

	fmt.Fprintln(w, "Scores")
	renderScore(w, "CPU", a.Scores.CPU)
	renderScore(w, "Memory", a.Scores.Memory)
	renderScore(w, "Ledger", a.Scores.Ledger)
	renderScore(w, "Total", a.Scores.Total)

	fmt.Fprintln(w, "\nCosts")
	fmt.Fprintf(w, "  CPU fee:           %.7f XLM (adjusted %.7f XLM, pressure %.4f)\n",
		a.Costs.CPU.Fee, a.Costs.CPU.Total, a.Costs.CPU.LedgerPressure)
	fmt.Fprintf(w, "  Ledger fee:        %.7f XLM\n", a.Costs.Ledger.Fee)
	fmt.Fprintf(w, "  Memory penalty:    %.2f (no direct fee, %d bytes)\n",
		a.Costs.Memory.Cost, a.Costs.Memory.BytesUsed)
	fmt.Fprintf(w, "  Total network fee: %.7f XLM\n", a.Costs.CPU.Fee+a.Costs.Ledger.Fee)

	fmt.Fprintln(w, "\nLedger utilization")
	for _, du := range a.Costs.Ledger.Breakdown {
		fmt.Fprintf(w, "  %-14s %6.2f%%\n", du.Dimension, du.Utilization*100)
	}

	fmt.Fprintln(w, "\nHints")
	for _, hint := range a.Hints {
		fmt.Fprintf(w, "  - %s\n", hint)
	}

	if len(a.SafetyViolations) > 0 {
		criticalColor.Fprintln(w, "\nSafety violations")
		for _, v := range a.SafetyViolations {
			badColor.Fprintf(w, "  ! %s\n", v)
		}
	}
}

func renderScore(w io.Writer, label string, score int) {
	fmt.Fprintf(w, "  %-8s ", label)
	scoreColor(score).Fprintf(w, "%3d/100\n", score)
}

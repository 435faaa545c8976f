// Copyright 2026 GasGuard Engineering
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"encoding/json"
	"io"

	"github.com/gasguard/gasguard/internal/costmodel"
	"github.com/gasguard/gasguard/internal/errors"
)

// ExportJSON writes the analysis as indented JSON, the machine-readable
// counterpart of Render.
func ExportJSON(w io.Writer, a *costmodel.Analysis) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(a); err != nil {
		return errors.WrapMarshalFailed(err)
	}
	return nil
}

// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package project

import (
	"fmt"
	"strings"
)

type ConfigParseErr struct {
	Path string
	Err  error
}

func (e *ConfigParseErr) Error() string {
	return fmt.Sprintf("failed to parse %s: %s", e.Path, e.Err)
}

func (e *ConfigParseErr) Unwrap() error {
	return e.Err
}

// Diagnostic describes a problem found while resolving the descriptor.
// Any diagnostic makes the descriptor unusable for an overlay.
type Diagnostic struct {
	File    string
	Message string
}

func (d *Diagnostic) Error() string {
	if d.File != "" {
		return fmt.Sprintf("%s: %s", d.File, d.Message)
	}
	return d.Message
}

func formatDiagnostics(errors []error) string {
	if len(errors) == 1 {
		return fmt.Sprintf("1 diagnostic: %s", errors[0])
	}

	out := fmt.Sprintf("%d diagnostics:\n", len(errors))
	for _, err := range errors {
		out += fmt.Sprintf("  - %s\n", err)
	}
	return strings.TrimSpace(out)
}

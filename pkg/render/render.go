// Package render serializes finished pattern grids.
//
// The engine hands over a height×width grid of glyphs via Rows, with the
// overlay delimiters still embedded as literal markers. This package is the
// downstream collaborator that converts those markers into presentation
// markup (HTML spans) or strips them for plain text, and that wraps grids
// into JSON snapshots for the live-preview server.
package render

import (
	"strings"

	"github.com/tessella/tessella/pkg/pattern"
)

// Text joins grid rows with newlines, keeping the overlay delimiters as
// literal text.
func Text(rows []string) string {
	return strings.Join(rows, "\n")
}

// Plain joins grid rows with newlines and strips the overlay delimiters,
// leaving only the highlighted text itself.
func Plain(rows []string) string {
	return stripMarkers(Text(rows))
}

func stripMarkers(s string) string {
	s = strings.ReplaceAll(s, pattern.MarkerOpen, "")
	return strings.ReplaceAll(s, pattern.MarkerClose, "")
}

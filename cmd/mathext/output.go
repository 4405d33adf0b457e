// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// styles decorates output only when it goes to a terminal.
type styles struct {
	enabled bool
}

func newStyles(w io.Writer) styles {
	return styles{enabled: isTerminal(w)}
}

// isTerminal reports whether w is a terminal file.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (s styles) heading(text string) string {
	if !s.enabled {
		return text
	}
	return headingStyle.Render(text)
}

func (s styles) label(text string) string {
	if !s.enabled {
		return text
	}
	return labelStyle.Render(text)
}

// maxExactInteger bounds the integers printed without an exponent.
const maxExactInteger = 1 << 53

// formatFloat prints integral values in full and others with ten
// significant digits. Adding zero folds -0 into 0.
func formatFloat(v float64) string {
	v += 0
	if v == math.Trunc(v) && math.Abs(v) <= maxExactInteger {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	return strconv.FormatFloat(v, 'g', 10, 64)
}

// joinFloats renders vs as a comma-separated list.
func joinFloats(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = formatFloat(v)
	}

	return strings.Join(parts, ", ")
}

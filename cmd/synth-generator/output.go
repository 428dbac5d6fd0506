package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"synth-generator/internal/diagnostic"
	"synth-generator/internal/synth"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
)

// printDiagnostics writes one line per diagnostic, in order.
func printDiagnostics(w io.Writer, items []diagnostic.Diagnostic) {
	for _, d := range items {
		var label string

		switch d.Severity {
		case diagnostic.DiagnosticError:
			label = errorColor.Sprint("error")
		case diagnostic.DiagnosticWarning:
			label = warningColor.Sprint("warning")
		default:
			label = infoColor.Sprint("info")
		}

		fmt.Fprintf(w, "%s: %s\n", label, d.String())
	}
}

func printResults(w io.Writer, results []synth.Result) {
	for i := range results {
		printDiagnostics(w, results[i].Diagnostics.Items)

		if err := results[i].Err; err != nil {
			fmt.Fprintf(w, "%s: [%s] %v\n", errorColor.Sprint("error"), results[i].Request.Name, err)
		}
	}
}

// Column widths of the summary table.
const (
	requestWidth  = 24
	patternWidth  = 10
	artifactWidth = 40
	countWidth    = 8
)

// printSummary writes a table with one row per request.
func printSummary(w io.Writer, results []synth.Result, styled bool) {
	header := lipgloss.NewStyle().Bold(true)
	ok := lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failed := lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

	render := func(st lipgloss.Style, s string) string {
		if !styled {
			return s
		}

		return st.Render(s)
	}

	row := func(cells ...string) string {
		widths := []int{requestWidth, patternWidth, artifactWidth, countWidth, countWidth}

		parts := make([]string, len(cells))
		for i, c := range cells {
			if i < len(widths) {
				c = runewidth.FillRight(truncate(c, widths[i]), widths[i])
			}

			parts[i] = c
		}

		return strings.TrimRight(strings.Join(parts, " "), " ")
	}

	fmt.Fprintln(w, render(header, row("REQUEST", "PATTERN", "ARTIFACT", "ERRORS", "WARNINGS", "STATUS")))

	var failures int

	for i := range results {
		r := &results[i]

		artifact := "-"
		if r.Artifact != nil {
			artifact = r.Artifact.Key
		}

		status := render(ok, "ok")
		if !r.OK() {
			status = render(failed, "failed")
			failures++
		}

		fmt.Fprintln(w, row(
			r.Request.Name,
			r.Request.Pattern.String(),
			artifact,
			strconv.Itoa(len(r.Diagnostics.Errors())),
			strconv.Itoa(len(r.Diagnostics.Warnings())),
			status,
		))
	}

	fmt.Fprintf(w, "\n%d requests, %d failed\n", len(results), failures)
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}

	if runewidth.StringWidth(value) <= width {
		return value
	}

	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}

	return runewidth.Truncate(value, width-3, "...")
}

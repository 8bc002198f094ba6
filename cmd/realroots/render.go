// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/realroots/internal/config"
)

// render writes results in the configured format.
func render(w io.Writer, format string, results []result) error {
	switch format {
	case config.FormatYAML:
		return renderYAML(w, results)
	case config.FormatPlain:
		return renderPlain(w, results)
	default:
		return renderTable(w, results)
	}
}

func renderYAML(w io.Writer, results []result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return enc.Close()
}

// renderPlain prints one root value per line, a blank line between polynomials.
func renderPlain(w io.Writer, results []result) error {
	for i, res := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if res.Error != "" {
			fmt.Fprintf(w, "error: %s\n", res.Error)
			continue
		}
		for _, r := range res.Roots {
			fmt.Fprintln(w, r.Value)
		}
	}

	return nil
}

func renderTable(w io.Writer, results []result) error {
	for i, res := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		title := res.Polynomial
		if res.Name != "" {
			title = res.Name + ": " + title
		}
		if res.Error != "" {
			fmt.Fprintf(w, "%s on %s:\nerror: %s\n", title, res.Interval, res.Error)
			continue
		}

		tbl := table.NewWriter()
		tbl.SetStyle(table.StyleLight)
		tbl.AppendHeader(table.Row{"#", "Value", "Exact", "Isolating interval"})
		for _, r := range res.Roots {
			tbl.AppendRow(table.Row{r.Index, r.Value, r.Exact, r.Interval})
		}
		tbl.AppendFooter(table.Row{"", fmt.Sprintf("Total: %d roots", len(res.Roots)), "", ""})
		fmt.Fprintf(w, "%s on %s:\n%s\n", title, res.Interval, tbl.Render())
	}

	return nil
}

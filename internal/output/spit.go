// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v2"

	"github.com/moddiff/moddiff/internal/config"
	"github.com/moddiff/moddiff/internal/discover"
	"github.com/moddiff/moddiff/internal/log"
)

// entryColumns is the fixed column order for the ls dataset.
var entryColumns = []string{"ordinal", "name", "content", "size"}

// SpitEntries renders the discovered module entries according to the command's
// --output and --sort flags. Output is written to w; if w is nil, os.Stdout is
// used.
func SpitEntries(entries []discover.Entry, cmd *cli.Command, w io.Writer) error {
	if w == nil {
		w = os.Stdout
	}

	// Numeric values are carried as float64 so the sorter's numeric compare
	// applies, mirroring JSON unmarshal behavior.
	dataset := make([]map[string]interface{}, 0, len(entries))
	for _, e := range entries {
		dataset = append(dataset, map[string]interface{}{
			"ordinal": float64(e.Ordinal),
			"name":    e.Name,
			"content": e.Path,
			"size":    float64(e.Size),
		})
	}

	if spec := cmd.String("sort"); spec != "" {
		SortDataset(dataset, spec)
	}

	switch cmd.String("output") {
	case "json":
		jsonOutput, err := json.Marshal(dataset)
		if err != nil {
			log.Errorf("SpitEntries json marshal: %v", err)
			return err
		}
		_, _ = w.Write(jsonOutput)
	case "yaml":
		yamlOutput, err := yaml.Marshal(dataset)
		if err != nil {
			log.Errorf("SpitEntries yaml marshal: %v", err)
			return err
		}
		_, _ = w.Write(yamlOutput)
	default:
		TableWriter(dataset, cmd, w)
	}

	return nil
}

// TableWriter renders the result set in a tabular form honoring the titles
// option. Output is written to w. If w is nil, os.Stdout is used.
func TableWriter(resultSet []map[string]interface{}, cmd *cli.Command, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}

	// We return early if there are no results to display.
	if len(resultSet) == 0 {
		return
	}

	// We initialize the table styles.
	var (
		headerStyle = lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
		cellStyle   = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
	)

	// We build the table rows from the result set.
	var rows [][]string
	for _, result := range resultSet {
		row := make([]string, 0, len(entryColumns))
		for _, col := range entryColumns {
			row = append(row, cellString(col, result[col]))
		}
		rows = append(rows, row)
	}

	pad, _ := config.GetInt("padding", 1)
	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := cellStyle
			if row == table.HeaderRow {
				style = headerStyle
			}

			if col > 0 {
				style = style.PaddingLeft(pad)
			}

			return style
		}).
		Headers().
		Rows(rows...)

	// We add column headers if titles are enabled.
	if cmd.Bool("titles") {
		t = t.Headers(entryColumns...).BorderHeader(false)
	}
	fmt.Fprintln(w, t)
}

// cellString renders one dataset value for tabular display. Ordinals keep
// their sentinel out of sight and sizes are humanized.
func cellString(col string, value interface{}) string {
	switch col {
	case "ordinal":
		n, ok := value.(float64)
		if !ok || int(n) == discover.UnorderedOrdinal {
			return "-"
		}
		return strconv.Itoa(int(n))
	case "size":
		n, ok := value.(float64)
		if !ok {
			return "-"
		}
		return humanize.Bytes(uint64(n))
	default:
		s, ok := value.(string)
		if !ok {
			return "-"
		}
		return s
	}
}

/* Copyright © 2025 Thomas Dupré. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package report builds tabular reports from the stored players and
// tournaments and exports them as TXT, CSV, or HTML files under the reports
// directory.
package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/ThomasDpr/chess-tournaments/internal"
)

// Format selects the export encoding.
type Format int

const (
	FormatTXT Format = iota
	FormatCSV
	FormatHTML
)

// ParseFormat accepts the format name in any casing.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "txt":
		return FormatTXT, nil
	case "csv":
		return FormatCSV, nil
	case "html":
		return FormatHTML, nil
	}
	return 0, fmt.Errorf("unknown report format %q (want txt, csv, or html)", s)
}

func (f Format) String() string {
	switch f {
	case FormatTXT:
		return "txt"
	case FormatCSV:
		return "csv"
	case FormatHTML:
		return "html"
	}
	return "?"
}

// Report categories; they pick the subdirectory the export lands in.
const (
	CategoryPlayers     = "players"
	CategoryTournaments = "tournaments"
)

// Report is one rectangular dataset ready to render: a header row plus
// data rows, all pre-formatted as strings.
type Report struct {
	Category string
	FileName string
	Columns  []string
	Rows     [][]string
}

// RenderTXT lays the report out as an aligned text table, one column width
// per header/data maximum.
func (r *Report) RenderTXT() string {
	widths := make([]int, len(r.Columns))
	for i, col := range r.Columns {
		widths[i] = len(col)
	}
	for _, row := range r.Rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var sb strings.Builder
	for i, col := range r.Columns {
		if i > 0 {
			sb.WriteString("  ")
		}
		sb.WriteString(fmt.Sprintf("%-*s", widths[i], col))
	}
	sb.WriteString("\n")
	for _, row := range r.Rows {
		for i, cell := range row {
			if i > 0 {
				sb.WriteString("  ")
			}
			sb.WriteString(fmt.Sprintf("%-*s", widths[i], cell))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderCSV emits a header row followed by the data rows.
func (r *Report) RenderCSV() (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(r.Columns); err != nil {
		return "", err
	}
	for _, row := range r.Rows {
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var htmlTemplate = template.Must(template.New("report").Parse(
	`<table border="1" class="report">
  <thead>
    <tr>
{{- range .Columns}}
      <th>{{.}}</th>
{{- end}}
    </tr>
  </thead>
  <tbody>
{{- range .Rows}}
    <tr>
{{- range .}}
      <td>{{.}}</td>
{{- end}}
    </tr>
{{- end}}
  </tbody>
</table>
`))

// RenderHTML emits a single escaped table element.
func (r *Report) RenderHTML() (string, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, r); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (r *Report) render(f Format) (string, error) {
	switch f {
	case FormatTXT:
		return r.RenderTXT(), nil
	case FormatCSV:
		return r.RenderCSV()
	case FormatHTML:
		return r.RenderHTML()
	}
	return "", fmt.Errorf("unknown report format %d", f)
}

// Exporter writes rendered reports under Dir, one subdirectory per category
// and format: <dir>/<category>/<format>/<file>.<format>.
type Exporter struct {
	Dir string
}

// Export renders the report in the given format and writes it to disk,
// returning the path of the written file.
func (e *Exporter) Export(r *Report, f Format) (string, error) {
	content, err := r.render(f)
	if err != nil {
		return "", fmt.Errorf("unable to render report %s: %w", r.FileName, err)
	}

	name := internal.SanitizeFileName(r.FileName)
	path := filepath.Join(e.Dir, r.Category, f.String(), name+"."+f.String())
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("unable to create report directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("unable to write report %s: %w", path, err)
	}
	return path, nil
}

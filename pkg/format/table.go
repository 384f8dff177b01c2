// Copyright 2024-2026 Aiku AI

package format

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// TableCell is a single table cell holding raw text. The content is
// escaped per format at render time.
type TableCell struct {
	Content string
}

// TableRow is an ordered sequence of cells.
type TableRow struct {
	Cells []TableCell
}

// RowFromValues builds a row from raw string values.
func RowFromValues(values []string) TableRow {
	cells := make([]TableCell, len(values))
	for i, v := range values {
		cells[i] = TableCell{Content: v}
	}
	return TableRow{Cells: cells}
}

// Table is a tabular node with an optional header row. Column-count
// consistency is enforced once at construction, never per render.
type Table struct {
	Headers *TableRow
	Rows    []TableRow
	Caption string
}

// NewTable returns a Table after checking that every row has the same
// cell count as the header (or as the first row when headers is nil).
func NewTable(headers *TableRow, rows []TableRow) (Table, error) {
	want := -1
	if headers != nil {
		want = len(headers.Cells)
	} else if len(rows) > 0 {
		want = len(rows[0].Cells)
	}
	for i, row := range rows {
		if len(row.Cells) != want {
			return Table{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrColumnCount, i, len(row.Cells), want)
		}
	}
	return Table{Headers: headers, Rows: rows}, nil
}

// TableFromData builds a table from raw string cells. A nil headers slice
// produces a headerless table.
func TableFromData(data [][]string, headers []string) (Table, error) {
	var headerRow *TableRow
	if headers != nil {
		row := RowFromValues(headers)
		headerRow = &row
	}
	rows := make([]TableRow, len(data))
	for i, values := range data {
		rows[i] = RowFromValues(values)
	}
	return NewTable(headerRow, rows)
}

func (t Table) Render(f Format) string {
	if t.Headers == nil && len(t.Rows) == 0 {
		return ""
	}
	switch f {
	case Markdown, DiscordMarkdown:
		return t.renderMarkdown(f)
	case SlackMarkdown:
		// Slack cannot display pipe tables, so the aligned plaintext grid
		// goes inside a code fence.
		return "```\n" + t.renderPlaintext() + "\n```"
	case HTML, SymphonyMessageML:
		return t.renderTagged(f)
	}
	return t.renderPlaintext()
}

// columnWidths returns the display width of each column, measured over
// the header and every data row.
func (t Table) columnWidths() []int {
	cols := 0
	if t.Headers != nil {
		cols = len(t.Headers.Cells)
	}
	for _, row := range t.Rows {
		cols = max(cols, len(row.Cells))
	}
	widths := make([]int, cols)
	measure := func(row TableRow) {
		for i, cell := range row.Cells {
			widths[i] = max(widths[i], utf8.RuneCountInString(cell.Content))
		}
	}
	if t.Headers != nil {
		measure(*t.Headers)
	}
	for _, row := range t.Rows {
		measure(row)
	}
	return widths
}

func padCell(content string, width int) string {
	return content + strings.Repeat(" ", width-utf8.RuneCountInString(content))
}

func (t Table) renderPlaintext() string {
	widths := t.columnWidths()
	formatRow := func(row TableRow) string {
		parts := make([]string, len(row.Cells))
		for i, cell := range row.Cells {
			parts[i] = padCell(cell.Content, widths[i])
		}
		return strings.TrimRight(strings.Join(parts, "   "), " ")
	}
	var lines []string
	if t.Headers != nil {
		lines = append(lines, formatRow(*t.Headers))
	}
	for _, row := range t.Rows {
		lines = append(lines, formatRow(row))
	}
	return strings.Join(lines, "\n")
}

func (t Table) renderMarkdown(f Format) string {
	cols := len(t.columnWidths())
	formatRow := func(row TableRow) string {
		parts := make([]string, cols)
		for i := range parts {
			if i < len(row.Cells) {
				// A literal pipe would terminate the cell, so it is escaped
				// here even for the dialects whose text escaping is a no-op.
				parts[i] = strings.ReplaceAll(escapeText(row.Cells[i].Content, f), "|", `\|`)
			}
		}
		return "| " + strings.Join(parts, " | ") + " |"
	}
	var lines []string
	if t.Headers != nil {
		lines = append(lines, formatRow(*t.Headers))
	} else {
		// Markdown tables are only valid with a header and separator, so a
		// headerless table gets a synthetic empty header.
		lines = append(lines, formatRow(TableRow{Cells: make([]TableCell, cols)}))
	}
	separators := make([]string, cols)
	for i := range separators {
		separators[i] = "---"
	}
	lines = append(lines, "|"+strings.Join(separators, "|")+"|")
	for _, row := range t.Rows {
		lines = append(lines, formatRow(row))
	}
	return strings.Join(lines, "\n")
}

func (t Table) renderTagged(f Format) string {
	var b strings.Builder
	b.WriteString("<table>")
	if t.Caption != "" && f == HTML {
		b.WriteString("<caption>" + escapeText(t.Caption, f) + "</caption>")
	}
	if t.Headers != nil {
		b.WriteString("<thead><tr>")
		for _, cell := range t.Headers.Cells {
			b.WriteString("<th>" + escapeText(cell.Content, f) + "</th>")
		}
		b.WriteString("</tr></thead>")
	}
	if len(t.Rows) > 0 {
		b.WriteString("<tbody>")
		for _, row := range t.Rows {
			b.WriteString("<tr>")
			for _, cell := range row.Cells {
				b.WriteString("<td>" + escapeText(cell.Content, f) + "</td>")
			}
			b.WriteString("</tr>")
		}
		b.WriteString("</tbody>")
	}
	b.WriteString("</table>")
	return b.String()
}

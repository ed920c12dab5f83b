// Package ui provides terminal rendering helpers: aligned tables,
// ANSI-aware styling, and compact time formatting.
package ui

import (
	"strings"
	"unicode/utf8"
)

const tableCellMaxWidth = 50
const tableCellEllipsis = "..."

// TableBuilder collects rows and renders a formatted table.
type TableBuilder struct {
	headers []string
	rows    [][]string
}

// NewTableBuilder returns a builder with preallocated rows.
func NewTableBuilder(headers []string, capacity int) *TableBuilder {
	return &TableBuilder{headers: headers, rows: make([][]string, 0, capacity)}
}

// AddRow appends a row to the table.
func (builder *TableBuilder) AddRow(row []string) {
	builder.rows = append(builder.rows, row)
}

// String renders the table output.
func (builder *TableBuilder) String() string {
	return FormatTable(builder.headers, builder.rows)
}

// FormatTable renders headers and rows as an aligned table. Cell
// widths ignore ANSI escape sequences so styled cells line up.
func FormatTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = displayWidth(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if w := displayWidth(normalizeTableCell(cell)); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var out strings.Builder
	writeTableRow(&out, headers, widths)
	for _, row := range rows {
		writeTableRow(&out, row, widths)
	}
	return out.String()
}

func writeTableRow(out *strings.Builder, row []string, widths []int) {
	for i, cell := range row {
		cell = normalizeTableCell(cell)
		out.WriteString(cell)
		if i == len(row)-1 {
			break
		}
		padding := widths[i] - displayWidth(cell) + 2
		for ; padding > 0; padding-- {
			out.WriteByte(' ')
		}
	}
	out.WriteByte('\n')
}

// TruncateTableCell limits cell width, appending an ellipsis when the
// value is cut.
func TruncateTableCell(value string) string {
	value = normalizeTableCell(value)
	if utf8.RuneCountInString(value) <= tableCellMaxWidth {
		return value
	}
	runes := []rune(value)
	return string(runes[:tableCellMaxWidth-len(tableCellEllipsis)]) + tableCellEllipsis
}

func displayWidth(value string) int {
	return utf8.RuneCountInString(stripANSICodes(value))
}

func normalizeTableCell(value string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ").Replace(value)
}

func stripANSICodes(input string) string {
	var out strings.Builder
	inEscape := false
	for i := 0; i < len(input); i++ {
		char := input[i]
		if inEscape {
			if char == 'm' {
				inEscape = false
			}
			continue
		}
		if char == '\x1b' {
			inEscape = true
			continue
		}
		out.WriteByte(char)
	}
	return out.String()
}

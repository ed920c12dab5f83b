package ui

import (
	"strings"
	"testing"
)

func TestFormatTable_Alignment(t *testing.T) {
	got := FormatTable(
		[]string{"ID", "TITLE"},
		[][]string{
			{"1", "short"},
			{"12", "a longer title"},
		},
	)

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), got)
	}
	if !strings.HasPrefix(lines[0], "ID  ") {
		t.Errorf("expected padded header, got %q", lines[0])
	}
	if idx1, idx2 := strings.Index(lines[1], "short"), strings.Index(lines[2], "a longer"); idx1 != idx2 {
		t.Errorf("expected aligned columns, got %q vs %q", lines[1], lines[2])
	}
}

func TestFormatTable_IgnoresANSIWidth(t *testing.T) {
	styled := "\x1b[1m\x1b[31m1\x1b[0m"
	got := FormatTable(
		[]string{"ID", "TITLE"},
		[][]string{
			{styled, "styled"},
			{"2", "plain"},
		},
	)

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	idx1 := strings.Index(lines[1], "styled")
	idx2 := strings.Index(lines[2], "plain")
	if len(stripANSICodes(lines[1][:idx1])) != len(lines[2][:idx2]) {
		t.Errorf("expected equal visible padding, got %q vs %q", lines[1], lines[2])
	}
}

func TestFormatTable_NormalizesNewlines(t *testing.T) {
	got := FormatTable([]string{"TITLE"}, [][]string{{"line1\nline2"}})
	if strings.Count(got, "\n") != 2 {
		t.Errorf("expected embedded newline collapsed, got %q", got)
	}
}

func TestTruncateTableCell(t *testing.T) {
	short := "short title"
	if got := TruncateTableCell(short); got != short {
		t.Errorf("expected %q unchanged, got %q", short, got)
	}

	long := strings.Repeat("x", 80)
	got := TruncateTableCell(long)
	if len(got) != tableCellMaxWidth {
		t.Errorf("expected width %d, got %d", tableCellMaxWidth, len(got))
	}
	if !strings.HasSuffix(got, tableCellEllipsis) {
		t.Errorf("expected ellipsis suffix, got %q", got)
	}
}

func TestTableBuilder(t *testing.T) {
	builder := NewTableBuilder([]string{"A"}, 2)
	builder.AddRow([]string{"1"})
	builder.AddRow([]string{"2"})

	got := builder.String()
	if got != "A\n1\n2\n" {
		t.Errorf("unexpected table output %q", got)
	}
}

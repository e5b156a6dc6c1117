package console

import (
	"strings"

	"golang.org/x/text/width"
)

// CellSeparator joins cells of a rendered table row.
const CellSeparator = " | "

// DisplayWidth returns how many terminal columns s occupies. Wide and
// fullwidth East Asian runes take two columns.
func DisplayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

// FormatTable pads every cell to the widest cell and joins each row with
// CellSeparator. Trailing padding is trimmed.
func FormatTable(rows [][]string) []string {
	cellWidth := 0
	for _, row := range rows {
		for _, cell := range row {
			if w := DisplayWidth(cell); w > cellWidth {
				cellWidth = w
			}
		}
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		padded := make([]string, len(row))
		for i, cell := range row {
			padded[i] = cell + strings.Repeat(" ", cellWidth-DisplayWidth(cell))
		}
		lines = append(lines, strings.TrimRight(strings.Join(padded, CellSeparator), " "))
	}
	return lines
}

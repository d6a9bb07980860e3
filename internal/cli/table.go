package cli

import (
	"strings"
)

const columnGap = "  "

// Table renders rows as left-aligned text columns under a dashed header.
type Table struct {
	headers  []string
	rows     [][]string
	maxWidth map[int]int // column index -> wrap width, 0 or absent means unlimited
}

// NewTable creates a table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{headers: headers, maxWidth: make(map[int]int)}
}

// SetColumnMaxWidth wraps cells of column col at word boundaries to width.
func (t *Table) SetColumnMaxWidth(col, width int) {
	t.maxWidth[col] = width
}

// AddRow appends a row, padding or truncating it to the header count.
func (t *Table) AddRow(row []string) {
	cells := make([]string, len(t.headers))
	copy(cells, row)
	t.rows = append(t.rows, cells)
}

// Render returns the formatted table.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	// Each row becomes a grid of lines per cell.
	wrapped := make([][][]string, len(t.rows))
	for i, row := range t.rows {
		wrapped[i] = make([][]string, len(row))
		for col, cell := range row {
			wrapped[i][col] = wrapText(cell, t.maxWidth[col])
		}
	}

	widths := make([]int, len(t.headers))
	for col, h := range t.headers {
		widths[col] = len(h)
	}
	for _, row := range wrapped {
		for col, lines := range row {
			for _, line := range lines {
				widths[col] = max(widths[col], len(line))
			}
		}
	}

	var b strings.Builder
	writeLine := func(cells []string) {
		parts := make([]string, len(cells))
		for col, cell := range cells {
			parts[col] = padRight(cell, widths[col])
		}
		b.WriteString(strings.TrimRight(strings.Join(parts, columnGap), " "))
		b.WriteByte('\n')
	}

	writeLine(t.headers)
	rule := make([]string, len(widths))
	for col, w := range widths {
		rule[col] = strings.Repeat("-", w)
	}
	writeLine(rule)

	for _, row := range wrapped {
		height := 1
		for _, lines := range row {
			height = max(height, len(lines))
		}
		for line := range height {
			cells := make([]string, len(row))
			for col, lines := range row {
				if line < len(lines) {
					cells[col] = lines[line]
				}
			}
			writeLine(cells)
		}
	}

	return b.String()
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// wrapText splits text into lines of at most width bytes, breaking at spaces
// and splitting words that are longer than width.
func wrapText(text string, width int) []string {
	if width <= 0 || len(text) <= width {
		return []string{text}
	}

	var lines []string
	var line string
	for _, word := range strings.Fields(text) {
		for len(word) > width {
			if line != "" {
				lines = append(lines, line)
				line = ""
			}
			lines = append(lines, word[:width])
			word = word[width:]
		}
		switch {
		case line == "":
			line = word
		case len(line)+1+len(word) <= width:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return []string{text}
	}
	return lines
}

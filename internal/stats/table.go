package stats

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// column describes one table column. maxWidth of 0 disables truncation.
type column struct {
	title    string
	right    bool
	maxWidth int
}

type table struct {
	cols []column
	rows [][]string
}

func newTable(cols ...column) *table {
	return &table{cols: cols}
}

func (t *table) add(cells ...string) {
	row := make([]string, len(t.cols))
	for i := range row {
		if i >= len(cells) {
			break
		}
		cell := cells[i]
		if limit := t.cols[i].maxWidth; limit > 0 {
			cell = runewidth.Truncate(cell, limit, "…")
		}
		row[i] = cell
	}
	t.rows = append(t.rows, row)
}

func (t *table) widths() []int {
	widths := make([]int, len(t.cols))
	for i, c := range t.cols {
		widths[i] = runewidth.StringWidth(c.title)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}
	return widths
}

// lines renders the header, a rule, then each row. Trailing blanks are trimmed.
func (t *table) lines() []string {
	if len(t.cols) == 0 {
		return nil
	}
	widths := t.widths()
	header := make([]string, len(t.cols))
	rule := make([]string, len(t.cols))
	for i, c := range t.cols {
		header[i] = c.title
		rule[i] = strings.Repeat("-", widths[i])
	}
	out := make([]string, 0, len(t.rows)+2)
	out = append(out, t.line(header, widths), t.line(rule, widths))
	for _, row := range t.rows {
		out = append(out, t.line(row, widths))
	}
	return out
}

func (t *table) line(cells []string, widths []int) string {
	var b strings.Builder
	for i, cell := range cells {
		if i > 0 {
			b.WriteString("  ")
		}
		pad := strings.Repeat(" ", widths[i]-runewidth.StringWidth(cell))
		if t.cols[i].right {
			b.WriteString(pad + cell)
		} else {
			b.WriteString(cell + pad)
		}
	}
	return strings.TrimRight(b.String(), " ")
}

func (t *table) writeTo(w io.Writer) error {
	for _, line := range t.lines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

package schedule

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/verte-zerg/gitart/internal/model"
)

// Final cell glyphs, from lightest to darkest.
const (
	GlyphLight  = "·"
	GlyphMedium = "•"
	GlyphStrong = "*"
	GlyphFull   = "#"
)

// HexDigit renders a 1-based in-progress commit number as one uppercase hex digit.
func HexDigit(n int) (string, error) {
	if n < 1 || n >= model.MaxCommitsPerCell {
		return "", fmt.Errorf("commit number %d outside 1..%d", n, model.MaxCommitsPerCell-1)
	}
	return strings.ToUpper(strconv.FormatInt(int64(n), 16)), nil
}

// FinalGlyph is the glyph a finished cell shows for its commit count.
func FinalGlyph(count int) string {
	switch {
	case count <= 4:
		return GlyphLight
	case count <= 8:
		return GlyphMedium
	case count <= 12:
		return GlyphStrong
	default:
		return GlyphFull
	}
}

// FinalGrid renders every lit cell with its final glyph and blanks elsewhere.
func FinalGrid(m model.Matrix) [][]string {
	grid := BlankGrid(m.Cols())
	for r := 0; r < model.Rows; r++ {
		for c := 0; c < m.Cols(); c++ {
			if v := m.At(r, c); v > 0 {
				grid[r][c] = FinalGlyph(v)
			}
		}
	}
	return grid
}

// BlankGrid returns a Rows x cols grid of spaces.
func BlankGrid(cols int) [][]string {
	grid := make([][]string, model.Rows)
	for r := range grid {
		row := make([]string, cols)
		for c := range row {
			row[c] = " "
		}
		grid[r] = row
	}
	return grid
}

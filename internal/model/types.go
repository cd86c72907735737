// Package model defines shared data structures.
package model

import (
	"fmt"
	"time"
)

const (
	// Rows is the fixed matrix height, one row per weekday.
	Rows = 7
	// MaxCommitsPerCell bounds a cell's commit count. Display digits for
	// partial cells stay within 1..F as long as this holds.
	MaxCommitsPerCell = 16
	// TextIntensity is the commit count assigned to every lit text pixel.
	TextIntensity = 16
	// DefaultSpaceSpacing is the blank run emitted for characters the font lacks.
	DefaultSpaceSpacing = 4
)

// Matrix is a Rows x Cols grid of commit counts. Row 0 is Sunday.
type Matrix struct {
	cols  int
	cells [Rows][]int
}

// NewMatrix returns an all-zero matrix with the given column count.
func NewMatrix(cols int) Matrix {
	if cols < 0 {
		cols = 0
	}
	var m Matrix
	m.cols = cols
	for r := 0; r < Rows; r++ {
		m.cells[r] = make([]int, cols)
	}
	return m
}

// MatrixFromRows builds a matrix from row-major data. All rows must share a length.
func MatrixFromRows(rows [][]int) (Matrix, error) {
	if len(rows) != Rows {
		return Matrix{}, fmt.Errorf("matrix must have %d rows, got %d", Rows, len(rows))
	}
	m := NewMatrix(len(rows[0]))
	for r, row := range rows {
		if len(row) != m.cols {
			return Matrix{}, fmt.Errorf("row %d has %d columns, want %d", r, len(row), m.cols)
		}
		for c, v := range row {
			m.Set(r, c, v)
		}
	}
	return m, nil
}

// Cols returns the number of columns (calendar weeks).
func (m Matrix) Cols() int {
	return m.cols
}

// At returns the commit count at (row, col).
func (m Matrix) At(row, col int) int {
	return m.cells[row][col]
}

// Set stores a commit count; negative values are stored as 0.
func (m *Matrix) Set(row, col, v int) {
	if v < 0 {
		v = 0
	}
	m.cells[row][col] = v
}

// Row returns a copy of a single row.
func (m Matrix) Row(row int) []int {
	out := make([]int, m.cols)
	copy(out, m.cells[row])
	return out
}

// AppendColumn adds a column at the right edge.
func (m *Matrix) AppendColumn(col [Rows]int) {
	for r := 0; r < Rows; r++ {
		v := col[r]
		if v < 0 {
			v = 0
		}
		m.cells[r] = append(m.cells[r], v)
	}
	m.cols++
}

// Sum returns the total commit count over all cells.
func (m Matrix) Sum() int {
	total := 0
	for r := 0; r < Rows; r++ {
		for _, v := range m.cells[r] {
			total += v
		}
	}
	return total
}

// OnCount returns the number of cells with a positive count.
func (m Matrix) OnCount() int {
	on := 0
	for r := 0; r < Rows; r++ {
		for _, v := range m.cells[r] {
			if v > 0 {
				on++
			}
		}
	}
	return on
}

// Max returns the largest cell value.
func (m Matrix) Max() int {
	maxVal := 0
	for r := 0; r < Rows; r++ {
		for _, v := range m.cells[r] {
			if v > maxVal {
				maxVal = v
			}
		}
	}
	return maxVal
}

// Entry is one scheduled commit.
type Entry struct {
	Col     int
	Row     int
	Index   int
	Total   int
	Date    time.Time
	Display string
}

// Ordinal is the cell's position in walk order.
func (e Entry) Ordinal() int {
	return e.Col*Rows + e.Row
}

// Last reports whether this entry finishes its cell.
func (e Entry) Last() bool {
	return e.Index == e.Total-1
}

// Message returns the commit message for the entry.
func (e Entry) Message() string {
	return fmt.Sprintf("Update pixel at (col:%d, row:%d), commit %d/%d", e.Col, e.Row, e.Index+1, e.Total)
}

// Stats is the running aggregate shown in the README section and console.
type Stats struct {
	DateStart       string
	DateEnd         string
	DateCurrent     string
	ColsCurrent     int
	ColsTotal       int
	RowsCurrent     int
	RowsTotal       int
	OnPixelCurrent  int
	OnPixelTotal    int
	OffPixelCurrent int
	OffPixelTotal   int
	CommitsCurrent  int
	CommitsTotal    int
	PixelsTotal     int
}

// PixelsCurrent is the number of cells visited so far.
func (s Stats) PixelsCurrent() int {
	return s.OnPixelCurrent + s.OffPixelCurrent
}

// Run statuses stored in the journal.
const (
	RunRunning     = "running"
	RunDone        = "done"
	RunFailed      = "failed"
	RunInterrupted = "interrupted"
)

// RunRecord summarizes a journaled run.
type RunRecord struct {
	ID           string
	StartedAt    time.Time
	EndedAt      time.Time
	Branch       string
	Source       string
	Cols         int
	CommitsTotal int
	CommitsDone  int
	Status       string
}

// CommitRecord is a journaled commit.
type CommitRecord struct {
	RunID   string
	Seq     int
	Entry   Entry
	Message string
}

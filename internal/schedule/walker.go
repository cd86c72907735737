package schedule

import (
	"fmt"
	"time"

	"github.com/verte-zerg/gitart/internal/model"
)

type walkState int

const (
	stateNotStarted walkState = iota
	stateWalkingColumn
	stateWalkingRow
	stateEmitting
	stateDone
)

// Walker emits schedule entries column by column, then row by row, then
// commit by commit within a cell.
type Walker struct {
	matrix model.Matrix
	start  time.Time
	state  walkState
	col    int
	row    int
	index  int
}

// NewWalker validates m and returns a walker positioned before the first cell.
func NewWalker(m model.Matrix, start time.Time) (*Walker, error) {
	if maxVal := m.Max(); maxVal > model.MaxCommitsPerCell {
		return nil, fmt.Errorf("%w: cell count %d exceeds %d", model.ErrInput, maxVal, model.MaxCommitsPerCell)
	}
	return &Walker{matrix: m, start: start}, nil
}

// Next returns the next entry, or false once the walk is complete.
func (w *Walker) Next() (model.Entry, bool) {
	for {
		switch w.state {
		case stateNotStarted:
			w.col = 0
			w.state = stateWalkingColumn
		case stateWalkingColumn:
			if w.col >= w.matrix.Cols() {
				w.state = stateDone
				continue
			}
			w.row = 0
			w.state = stateWalkingRow
		case stateWalkingRow:
			if w.row >= model.Rows {
				w.col++
				w.state = stateWalkingColumn
				continue
			}
			if w.matrix.At(w.row, w.col) > 0 {
				w.index = 0
				w.state = stateEmitting
				continue
			}
			w.row++
		case stateEmitting:
			total := w.matrix.At(w.row, w.col)
			entry := w.entry(total)
			w.index++
			if w.index >= total {
				w.row++
				w.state = stateWalkingRow
			}
			return entry, true
		case stateDone:
			return model.Entry{}, false
		}
	}
}

// Done reports whether the walk has finished.
func (w *Walker) Done() bool {
	return w.state == stateDone
}

func (w *Walker) entry(total int) model.Entry {
	display := FinalGlyph(total)
	if w.index < total-1 {
		// NewWalker bounds total, so the digit is always valid.
		display, _ = HexDigit(w.index + 1)
	}
	return model.Entry{
		Col:     w.col,
		Row:     w.row,
		Index:   w.index,
		Total:   total,
		Date:    CellDate(w.start, w.col, w.row),
		Display: display,
	}
}

// Entries walks the whole matrix.
func Entries(m model.Matrix, start time.Time) ([]model.Entry, error) {
	w, err := NewWalker(m, start)
	if err != nil {
		return nil, err
	}
	entries := make([]model.Entry, 0, m.Sum())
	for {
		e, ok := w.Next()
		if !ok {
			return entries, nil
		}
		entries = append(entries, e)
	}
}

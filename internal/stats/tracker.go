// Package stats accumulates run totals and renders run history.
package stats

import (
	"time"

	"github.com/verte-zerg/gitart/internal/model"
	"github.com/verte-zerg/gitart/internal/schedule"
)

// Totals computes the fixed half of Stats from the full matrix.
func Totals(m model.Matrix, start time.Time) model.Stats {
	pixels := model.Rows * m.Cols()
	on := m.OnCount()
	return model.Stats{
		DateStart:     schedule.FormatDisplayDate(start),
		DateEnd:       schedule.FormatDisplayDate(schedule.EndDate(start, m.Cols())),
		ColsTotal:     m.Cols(),
		RowsTotal:     model.Rows,
		PixelsTotal:   pixels,
		OnPixelTotal:  on,
		OffPixelTotal: pixels - on,
		CommitsTotal:  m.Sum(),
	}
}

// Tracker owns a Stats value and advances it one entry at a time.
type Tracker struct {
	stats model.Stats
}

// NewTracker starts from totals with every current counter at zero.
func NewTracker(totals model.Stats) *Tracker {
	totals.DateCurrent = ""
	totals.ColsCurrent = 0
	totals.RowsCurrent = 0
	totals.OnPixelCurrent = 0
	totals.OffPixelCurrent = 0
	totals.CommitsCurrent = 0
	return &Tracker{stats: totals}
}

// Observe records an emitted entry and returns a snapshot. Entries must
// arrive in walk order.
func (t *Tracker) Observe(e model.Entry) model.Stats {
	if e.Index == 0 {
		t.stats.OnPixelCurrent++
	}
	// Every cell up to and including this one has been visited.
	t.stats.OffPixelCurrent = e.Ordinal() + 1 - t.stats.OnPixelCurrent
	t.stats.CommitsCurrent++
	t.stats.DateCurrent = schedule.FormatCommitDate(e.Date)
	t.stats.ColsCurrent = e.Col
	t.stats.RowsCurrent = e.Row
	return t.stats
}

// Stats returns the current snapshot.
func (t *Tracker) Stats() model.Stats {
	return t.stats
}

package art

import (
	"fmt"
	"time"

	"github.com/verte-zerg/gitart/internal/model"
	"github.com/verte-zerg/gitart/internal/readme"
	"github.com/verte-zerg/gitart/internal/schedule"
	"github.com/verte-zerg/gitart/internal/stats"
)

// Plan fixes a matrix to a calendar start.
type Plan struct {
	Matrix model.Matrix
	Start  time.Time
	Totals model.Stats
}

// NewPlan anchors m at the first Sunday of the given month.
func NewPlan(m model.Matrix, year int, month time.Month) (Plan, error) {
	if m.Cols() == 0 {
		return Plan{}, fmt.Errorf("%w: nothing to draw, the rendered matrix is empty", model.ErrInput)
	}
	if maxVal := m.Max(); maxVal > model.MaxCommitsPerCell {
		return Plan{}, fmt.Errorf("%w: cell count %d exceeds %d", model.ErrInput, maxVal, model.MaxCommitsPerCell)
	}
	start := schedule.StartDate(year, month)
	return Plan{
		Matrix: m,
		Start:  start,
		Totals: stats.Totals(m, start),
	}, nil
}

// End is the last calendar day the plan covers.
func (p Plan) End() time.Time {
	return schedule.EndDate(p.Start, p.Matrix.Cols())
}

// PreviewSection renders the finished art with the initial stats.
func (p Plan) PreviewSection(branch string) string {
	return readme.Section(branch, p.Totals, schedule.FinalGrid(p.Matrix))
}

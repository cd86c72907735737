package art

import (
	"context"
	"fmt"
	"time"

	"github.com/verte-zerg/gitart/internal/model"
	"github.com/verte-zerg/gitart/internal/readme"
	"github.com/verte-zerg/gitart/internal/schedule"
	"github.com/verte-zerg/gitart/internal/stats"
)

// Committer stages the README and records a dated commit.
type Committer interface {
	Add(ctx context.Context, path string) error
	Commit(ctx context.Context, message string, date time.Time) error
}

// Journal records each commit after git accepts it.
type Journal interface {
	RecordCommit(ctx context.Context, rec model.CommitRecord) error
}

// RunnerConfig wires a Runner's collaborators. Journal may be nil.
type RunnerConfig struct {
	Branch     string
	ReadmePath string
	RunID      string
	Committer  Committer
	Journal    Journal
}

// Progress is the state after a step.
type Progress struct {
	Entry   model.Entry
	Stats   model.Stats
	Grid    [][]string
	Section string
	Seq     int
}

// Runner walks a plan one entry at a time. Each Step finishes all of its
// side effects before it returns.
type Runner struct {
	plan    Plan
	cfg     RunnerConfig
	walker  *schedule.Walker
	tracker *stats.Tracker
	grid    [][]string
	seq     int
}

// NewRunner validates cfg and positions the runner before the first entry.
func NewRunner(plan Plan, cfg RunnerConfig) (*Runner, error) {
	if cfg.Committer == nil {
		return nil, fmt.Errorf("runner requires a committer")
	}
	if cfg.ReadmePath == "" {
		return nil, fmt.Errorf("runner requires a readme path")
	}
	walker, err := schedule.NewWalker(plan.Matrix, plan.Start)
	if err != nil {
		return nil, err
	}
	return &Runner{
		plan:    plan,
		cfg:     cfg,
		walker:  walker,
		tracker: stats.NewTracker(plan.Totals),
		grid:    schedule.BlankGrid(plan.Matrix.Cols()),
	}, nil
}

// Initial is the state before any commit.
func (r *Runner) Initial() Progress {
	st := r.tracker.Stats()
	return Progress{
		Stats:   st,
		Grid:    copyGrid(r.grid),
		Section: readme.Section(r.cfg.Branch, st, r.grid),
	}
}

// Plan returns the runner's plan.
func (r *Runner) Plan() Plan {
	return r.plan
}

// Committed is the number of commits made so far.
func (r *Runner) Committed() int {
	return r.seq
}

// Step emits the next entry: it updates the grid and stats, rewrites the
// README, commits it and journals the commit. It returns false when the walk
// is complete. A cancelled ctx stops before the next entry starts; an entry
// already in progress is not interrupted.
func (r *Runner) Step(ctx context.Context) (Progress, bool, error) {
	if err := ctx.Err(); err != nil {
		return Progress{}, false, err
	}
	entry, ok := r.walker.Next()
	if !ok {
		return Progress{}, false, nil
	}
	work := context.WithoutCancel(ctx)

	r.grid[entry.Row][entry.Col] = entry.Display
	st := r.tracker.Observe(entry)
	section := readme.Section(r.cfg.Branch, st, r.grid)
	if err := readme.Update(r.cfg.ReadmePath, section); err != nil {
		return Progress{}, false, err
	}
	if err := r.cfg.Committer.Add(work, r.cfg.ReadmePath); err != nil {
		return Progress{}, false, fmt.Errorf("error committing update: %w", err)
	}
	msg := entry.Message()
	if err := r.cfg.Committer.Commit(work, msg, entry.Date); err != nil {
		return Progress{}, false, fmt.Errorf("error committing update: %w", err)
	}
	r.seq++
	if r.cfg.Journal != nil {
		rec := model.CommitRecord{RunID: r.cfg.RunID, Seq: r.seq, Entry: entry, Message: msg}
		if err := r.cfg.Journal.RecordCommit(work, rec); err != nil {
			return Progress{}, false, fmt.Errorf("failed to journal commit: %w", err)
		}
	}
	return Progress{
		Entry:   entry,
		Stats:   st,
		Grid:    copyGrid(r.grid),
		Section: section,
		Seq:     r.seq,
	}, true, nil
}

// Run steps until the walk completes, calling onStep after each entry.
func (r *Runner) Run(ctx context.Context, onStep func(Progress)) error {
	for {
		p, ok, err := r.Step(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if onStep != nil {
			onStep(p)
		}
	}
}

func copyGrid(grid [][]string) [][]string {
	out := make([][]string, len(grid))
	for i, row := range grid {
		out[i] = append([]string(nil), row...)
	}
	return out
}

package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/gitart/internal/art"
	"github.com/verte-zerg/gitart/internal/model"
)

type fakeStepper struct {
	steps []art.Progress
	err   error
	calls int
}

func (f *fakeStepper) Step(context.Context) (art.Progress, bool, error) {
	f.calls++
	if f.err != nil {
		return art.Progress{}, false, f.err
	}
	if len(f.steps) == 0 {
		return art.Progress{}, false, nil
	}
	p := f.steps[0]
	f.steps = f.steps[1:]
	return p, true, nil
}

func progressAt(done, total int) art.Progress {
	grid := make([][]string, model.Rows)
	for i := range grid {
		grid[i] = []string{" ", " "}
	}
	grid[0][0] = "#"
	return art.Progress{
		Stats: model.Stats{
			DateStart:      "Oct 01 2023",
			DateEnd:        "Oct 14 2023",
			CommitsCurrent: done,
			CommitsTotal:   total,
			ColsTotal:      2,
			RowsTotal:      7,
		},
		Grid: grid,
		Seq:  done,
	}
}

func runCmd(t *testing.T, m *Model, cmd tea.Cmd) tea.Cmd {
	t.Helper()
	if cmd == nil {
		t.Fatalf("expected a command")
	}
	_, next := m.Update(cmd())
	return next
}

func TestModelStepsUntilDone(t *testing.T) {
	stepper := &fakeStepper{steps: []art.Progress{progressAt(1, 2), progressAt(2, 2)}}
	m := NewModel(context.Background(), stepper, "main", progressAt(0, 2))

	cmd := m.Init()
	cmd = runCmd(t, m, cmd)
	if m.Current().Stats.CommitsCurrent != 1 {
		t.Fatalf("expected first step applied")
	}
	cmd = runCmd(t, m, cmd)
	runCmd(t, m, cmd)
	if !m.Finished() || m.Err() != nil {
		t.Fatalf("expected finished run, err=%v", m.Err())
	}
	if stepper.calls != 3 {
		t.Fatalf("expected 3 step calls, got %d", stepper.calls)
	}
	out := m.View()
	for _, want := range []string{"gitart → main", "Oct 01 2023 / Oct 14 2023", "Commits 2 / 2", "done", "#"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q:\n%s", want, out)
		}
	}
}

func TestModelStopsAfterInFlightStep(t *testing.T) {
	stepper := &fakeStepper{steps: []art.Progress{progressAt(1, 3), progressAt(2, 3)}}
	m := NewModel(context.Background(), stepper, "main", progressAt(0, 3))

	cmd := m.Init()
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !strings.Contains(m.View(), "stopping after current commit") {
		t.Fatalf("expected stopping notice")
	}
	runCmd(t, m, cmd)
	if !m.Interrupted() || m.Finished() {
		t.Fatalf("expected interrupted run")
	}
	if stepper.calls != 1 {
		t.Fatalf("expected no further steps, got %d calls", stepper.calls)
	}
}

func TestModelSurfacesStepError(t *testing.T) {
	boom := errors.New("git exploded")
	m := NewModel(context.Background(), &fakeStepper{err: boom}, "main", progressAt(0, 1))
	runCmd(t, m, m.Init())
	if !errors.Is(m.Err(), boom) {
		t.Fatalf("expected step error, got %v", m.Err())
	}
	if !strings.Contains(m.View(), "git exploded") {
		t.Fatalf("expected error in view")
	}
}

func TestBarWidthBounds(t *testing.T) {
	grid := [][]string{make([]string, 200)}
	for i := range grid[0] {
		grid[0][i] = "#"
	}
	if got := barWidth(grid, 0); got != maxBarWidth {
		t.Fatalf("expected max width, got %d", got)
	}
	if got := barWidth(nil, 10); got != 8 {
		t.Fatalf("expected terminal-bound width 8, got %d", got)
	}
}

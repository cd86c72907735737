// Package tui provides the Bubble Tea live view of a drawing run.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/gitart/internal/art"
	"github.com/verte-zerg/gitart/internal/readme"
)

const (
	minBarWidth = 20
	maxBarWidth = 72
)

// Stepper advances a run by one entry.
type Stepper interface {
	Step(ctx context.Context) (art.Progress, bool, error)
}

type stepMsg struct {
	progress art.Progress
	ok       bool
	err      error
}

// Model implements the Bubble Tea progress UI. It runs one step per message,
// so at most one entry is in flight.
type Model struct {
	ctx     context.Context
	runner  Stepper
	branch  string
	current art.Progress
	bar     progress.Model

	width int

	finished    bool
	interrupted bool
	stopping    bool
	err         error
}

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	gridStyle   = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder(), true).BorderForeground(lipgloss.Color("#4A4A4A"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

// NewModel builds the view around a runner. initial is shown until the first step lands.
func NewModel(ctx context.Context, runner Stepper, branch string, initial art.Progress) *Model {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = barWidth(initial.Grid, 0)
	return &Model{
		ctx:     ctx,
		runner:  runner,
		branch:  branch,
		current: initial,
		bar:     bar,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.step()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.bar.Width = barWidth(m.current.Grid, m.width)
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			// Let the in-flight entry finish; stepMsg quits.
			m.stopping = true
			return m, nil
		default:
			return m, nil
		}
	case stepMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		if !msg.ok {
			m.finished = true
			return m, tea.Quit
		}
		m.current = msg.progress
		if m.stopping {
			m.interrupted = true
			return m, tea.Quit
		}
		return m, m.step()
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	st := m.current.Stats
	var b strings.Builder
	b.WriteString(titleStyle.Render("gitart → "+m.branch) + "\n\n")
	rows := [][2]string{
		{"Start / End", fmt.Sprintf("%s / %s", st.DateStart, st.DateEnd)},
		{"Current", st.DateCurrent},
		{"Columns", fmt.Sprintf("%d / %d", st.ColsCurrent, st.ColsTotal)},
		{"Rows", fmt.Sprintf("%d / %d", st.RowsCurrent, st.RowsTotal)},
		{"Pixels", fmt.Sprintf("%d / %d", st.PixelsCurrent(), st.PixelsTotal)},
		{"On / Off", fmt.Sprintf("%d / %d  ·  %d / %d", st.OnPixelCurrent, st.OnPixelTotal, st.OffPixelCurrent, st.OffPixelTotal)},
	}
	for _, row := range rows {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-12s", row[0])) + valueStyle.Render(row[1]) + "\n")
	}
	b.WriteString(gridStyle.Render(readme.Grid(m.current.Grid)) + "\n")
	b.WriteString(m.bar.ViewAs(m.percent()) + "\n")
	b.WriteString(footerStyle.Render(m.footer()) + "\n")
	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()) + "\n")
	}
	return b.String()
}

// Err returns the error that stopped the run, if any.
func (m *Model) Err() error {
	return m.err
}

// Finished reports whether every entry was committed.
func (m *Model) Finished() bool {
	return m.finished
}

// Interrupted reports whether the user stopped the run early.
func (m *Model) Interrupted() bool {
	return m.interrupted
}

// Current returns the latest progress.
func (m *Model) Current() art.Progress {
	return m.current
}

func (m *Model) step() tea.Cmd {
	ctx, runner := m.ctx, m.runner
	return func() tea.Msg {
		p, ok, err := runner.Step(ctx)
		return stepMsg{progress: p, ok: ok, err: err}
	}
}

func (m *Model) percent() float64 {
	total := m.current.Stats.CommitsTotal
	if total == 0 {
		return 0
	}
	return float64(m.current.Stats.CommitsCurrent) / float64(total)
}

func (m *Model) footer() string {
	st := m.current.Stats
	segments := []string{fmt.Sprintf("Commits %s / %s", humanize.Comma(int64(st.CommitsCurrent)), humanize.Comma(int64(st.CommitsTotal)))}
	switch {
	case m.stopping && !m.interrupted:
		segments = append(segments, "stopping after current commit")
	case m.finished:
		segments = append(segments, "done")
	default:
		segments = append(segments, "ctrl+c to stop")
	}
	return strings.Join(segments, "  ")
}

func barWidth(grid [][]string, termWidth int) int {
	width := minBarWidth
	if len(grid) > 0 {
		if w := runewidth.StringWidth(strings.Join(grid[0], "")) + 4; w > width {
			width = w
		}
	}
	if width > maxBarWidth {
		width = maxBarWidth
	}
	if termWidth > 0 && width > termWidth-2 {
		width = termWidth - 2
	}
	if width < 1 {
		width = 1
	}
	return width
}

// Package main provides the CLI entrypoint for gitart.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/gitart/internal/art"
	"github.com/verte-zerg/gitart/internal/config"
	"github.com/verte-zerg/gitart/internal/font"
	"github.com/verte-zerg/gitart/internal/gitsink"
	"github.com/verte-zerg/gitart/internal/model"
	"github.com/verte-zerg/gitart/internal/progress"
	"github.com/verte-zerg/gitart/internal/render"
	"github.com/verte-zerg/gitart/internal/schedule"
	"github.com/verte-zerg/gitart/internal/stats"
	"github.com/verte-zerg/gitart/internal/store"
	"github.com/verte-zerg/gitart/internal/tui"
)

const (
	defaultLetterSpacing = 0
	defaultPreviewPath   = "preview.png"
	defaultPreviewScale  = 1
	defaultReadme        = "README.md"
	defaultBranch        = "main"
	defaultBase          = "develop"
	defaultRemote        = "origin"
	testBranch           = "git-art-test"
)

var (
	drawString        string
	drawImage         string
	drawFont          string
	drawLetterSpacing int
	drawSpaceSpacing  int
	drawStartMonth    int
	drawStartYear     int
	drawTest          bool
	drawPreview       string
	drawPreviewScale  int
	drawReadme        string
	drawBranch        string
	drawBase          string
	drawRemote        string
	drawNoPush        bool
	drawPlain         bool
	drawRefreshFont   bool

	historyLast int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gitart",
		Short:         "Draw text or images on the contribution calendar",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runDrawCmd,
	}

	rootCmd.Flags().StringVar(&drawString, "string", "", "text to render")
	rootCmd.Flags().StringVar(&drawImage, "image", "", "path to image file")
	rootCmd.Flags().StringVar(&drawFont, "bdf-font", font.DefaultSource, "path or URL to a BDF font")
	rootCmd.Flags().IntVar(&drawLetterSpacing, "letter-spacing", defaultLetterSpacing, "blank columns after each glyph")
	rootCmd.Flags().IntVar(&drawSpaceSpacing, "space-spacing", model.DefaultSpaceSpacing, "blank columns for characters missing from the font")
	rootCmd.Flags().IntVar(&drawStartMonth, "start-month", 0, "start month 1-12 (default: next month)")
	rootCmd.Flags().IntVar(&drawStartYear, "start-year", 0, "start year (default: last year)")
	rootCmd.Flags().BoolVar(&drawTest, "test", false, "preview only: print the section and write a PNG, no git")
	rootCmd.Flags().StringVar(&drawPreview, "preview", defaultPreviewPath, "preview PNG path in test mode")
	rootCmd.Flags().IntVar(&drawPreviewScale, "preview-scale", defaultPreviewScale, "pixels per cell in the preview PNG")
	rootCmd.Flags().StringVar(&drawReadme, "readme", defaultReadme, "document holding the art section")
	rootCmd.Flags().StringVar(&drawBranch, "branch", defaultBranch, "branch that receives the art commits")
	rootCmd.Flags().StringVar(&drawBase, "base", defaultBase, "branch the art branch starts from")
	rootCmd.Flags().StringVar(&drawRemote, "remote", defaultRemote, "remote to force-push to")
	rootCmd.Flags().BoolVar(&drawNoPush, "no-push", false, "skip the final force push")
	rootCmd.Flags().BoolVar(&drawPlain, "plain", false, "plain console output instead of the live view")
	rootCmd.Flags().BoolVar(&drawRefreshFont, "refresh-font", false, "download the font again even if cached")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newHistoryCmd())

	return rootCmd
}

func runDrawCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "bdf-font", &drawFont, fileCfg.Render.BDFFont)
	applyIntConfig(cmd, "letter-spacing", &drawLetterSpacing, fileCfg.Render.LetterSpacing)
	applyIntConfig(cmd, "space-spacing", &drawSpaceSpacing, fileCfg.Render.SpaceSpacing)
	applyIntConfig(cmd, "preview-scale", &drawPreviewScale, fileCfg.Render.PreviewScale)
	applyStringConfig(cmd, "base", &drawBase, fileCfg.Git.Base)
	applyStringConfig(cmd, "branch", &drawBranch, fileCfg.Git.Branch)
	applyStringConfig(cmd, "remote", &drawRemote, fileCfg.Git.Remote)
	applyStringConfig(cmd, "readme", &drawReadme, fileCfg.Git.Readme)
	applyBoolConfig(cmd, "no-push", &drawNoPush, fileCfg.Git.NoPush)

	if err := validateFlags(cmd); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	input := art.Input{
		Text:          drawString,
		ImagePath:     drawImage,
		FontSource:    drawFont,
		FontCacheDir:  config.DefaultFontCacheDir(),
		RefreshFont:   drawRefreshFont,
		LetterSpacing: drawLetterSpacing,
		SpaceSpacing:  drawSpaceSpacing,
	}
	matrix, err := art.Render(ctx, input)
	if err != nil {
		return err
	}

	year, month := resolveStart(cmd, time.Now())
	plan, err := art.NewPlan(matrix, year, month)
	if err != nil {
		return err
	}

	if drawTest {
		return runPreview(cmd.OutOrStdout(), plan)
	}
	return runLive(ctx, cmd.OutOrStdout(), plan, input.Source())
}

func runPreview(out io.Writer, plan art.Plan) error {
	if _, err := fmt.Fprintln(out, plan.PreviewSection(testBranch)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	path, err := filepath.Abs(drawPreview)
	if err != nil {
		return fmt.Errorf("failed to resolve preview path: %w", err)
	}
	if err := render.SavePNG(path, render.Preview(plan.Matrix, drawPreviewScale)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(out, "\nPreview PNG saved to: %s\n", path); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func runLive(ctx context.Context, out io.Writer, plan art.Plan, source string) error {
	git, err := gitsink.New("")
	if err != nil {
		return err
	}
	if err := git.Prepare(ctx, drawBase, drawBranch, time.Now()); err != nil {
		return err
	}

	runID := uuid.NewString()
	journal, closeJournal := openJournal(ctx, model.RunRecord{
		ID:           runID,
		StartedAt:    time.Now().UTC(),
		Branch:       drawBranch,
		Source:       source,
		Cols:         plan.Matrix.Cols(),
		CommitsTotal: plan.Totals.CommitsTotal,
	})
	defer closeJournal()

	runnerCfg := art.RunnerConfig{
		Branch:     drawBranch,
		ReadmePath: drawReadme,
		RunID:      runID,
		Committer:  git,
	}
	if journal != nil {
		runnerCfg.Journal = journal
	}
	runner, err := art.NewRunner(plan, runnerCfg)
	if err != nil {
		return err
	}

	var runErr error
	if !drawPlain && isTerminal(out) {
		runErr = runInteractive(ctx, runner)
	} else {
		runErr = runPlain(ctx, out, runner)
	}
	finishJournal(journal, runID, runErr)
	if runErr != nil {
		return fmt.Errorf("stopped after %d of %d commits: %w", runner.Committed(), plan.Totals.CommitsTotal, runErr)
	}

	if _, err := fmt.Fprintf(out, "Live mode complete. Branch '%s' created with art commits.\n", drawBranch); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if drawNoPush {
		return nil
	}
	if err := git.Push(ctx, drawRemote, drawBranch, true); err != nil {
		return fmt.Errorf("error pushing %s to %s: %w", drawBranch, drawRemote, err)
	}
	return nil
}

var errInterrupted = errors.New("interrupted")

func runInteractive(ctx context.Context, runner *art.Runner) error {
	m := tui.NewModel(ctx, runner, drawBranch, runner.Initial())
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if m.Err() != nil {
		return m.Err()
	}
	if m.Interrupted() {
		return errInterrupted
	}
	return nil
}

func runPlain(ctx context.Context, out io.Writer, runner *art.Runner) error {
	console := progress.NewConsole(out)
	initial := runner.Initial()
	if err := console.Draw(initial.Section + progress.Status(initial.Stats) + "\n"); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return runner.Run(ctx, func(p art.Progress) {
		if err := console.Draw(p.Section + progress.Status(p.Stats) + "\n"); err != nil {
			logErrf("failed to update console: %v\n", err)
		}
	})
}

func openJournal(ctx context.Context, run model.RunRecord) (*store.Store, func()) {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		logErrf("failed to open run journal: %v\n", err)
		return nil, func() {}
	}
	closeFn := func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}
	if err := st.StartRun(ctx, run); err != nil {
		logErrf("failed to record run: %v\n", err)
		closeFn()
		return nil, func() {}
	}
	return st, closeFn
}

func finishJournal(st *store.Store, runID string, runErr error) {
	if st == nil {
		return
	}
	status := model.RunDone
	switch {
	case errors.Is(runErr, errInterrupted), errors.Is(runErr, context.Canceled):
		status = model.RunInterrupted
	case runErr != nil:
		status = model.RunFailed
	}
	if err := st.FinishRun(context.Background(), runID, status, time.Now().UTC()); err != nil {
		logErrf("failed to finish run: %v\n", err)
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded drawing runs",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().IntVar(&historyLast, "last", 20, "show the last N runs (0 for all)")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	runs, err := st.ListRuns(cmd.Context(), historyLast)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}
	return stats.RenderHistory(cmd.OutOrStdout(), runs)
}

func validateFlags(cmd *cobra.Command) error {
	if drawLetterSpacing < 0 {
		return fmt.Errorf("%w: --letter-spacing must be >= 0", model.ErrInput)
	}
	if drawSpaceSpacing < 0 {
		return fmt.Errorf("%w: --space-spacing must be >= 0", model.ErrInput)
	}
	if cmd.Flags().Changed("start-month") && (drawStartMonth < 1 || drawStartMonth > 12) {
		return fmt.Errorf("%w: --start-month must be between 1 and 12", model.ErrInput)
	}
	if cmd.Flags().Changed("start-year") && drawStartYear < 1 {
		return fmt.Errorf("%w: --start-year must be positive", model.ErrInput)
	}
	if drawPreviewScale < 1 {
		return fmt.Errorf("%w: --preview-scale must be >= 1", model.ErrInput)
	}
	if !drawTest && strings.TrimSpace(drawBranch) == "" {
		return fmt.Errorf("%w: --branch must not be empty", model.ErrInput)
	}
	return nil
}

func resolveStart(cmd *cobra.Command, now time.Time) (int, time.Month) {
	year, month := schedule.DefaultStart(now)
	if cmd.Flags().Changed("start-year") {
		year = drawStartYear
	}
	if cmd.Flags().Changed("start-month") {
		month = time.Month(drawStartMonth)
	}
	return year, month
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# gitart configuration
# Uncomment a value to enable it. CLI flags override config values.

[render]
# bdf-font = %q
# letter-spacing = %d     # Blank columns after each glyph
# space-spacing = %d      # Blank columns for characters missing from the font
# preview-scale = %d      # Pixels per cell in the test-mode PNG

[git]
# base = %q         # Branch the art branch starts from
# branch = %q          # Branch that receives the art commits
# remote = %q        # Remote to force-push to
# readme = %q     # Document holding the art section
# no-push = false         # Skip the final force push
`,
		font.DefaultSource,
		defaultLetterSpacing,
		model.DefaultSpaceSpacing,
		defaultPreviewScale,
		defaultBase,
		defaultBranch,
		defaultRemote,
		defaultReadme,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

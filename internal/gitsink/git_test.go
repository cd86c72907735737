package gitsink

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/gitart/internal/model"
)

var testEnv = []string{
	"GIT_AUTHOR_NAME=gitart",
	"GIT_AUTHOR_EMAIL=gitart@example.com",
	"GIT_COMMITTER_NAME=gitart",
	"GIT_COMMITTER_EMAIL=gitart@example.com",
	"GIT_CONFIG_GLOBAL=/dev/null",
	"GIT_CONFIG_NOSYSTEM=1",
}

func newTestRepo(t *testing.T) *Git {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
	dir := t.TempDir()
	g, err := New(dir)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	g = g.WithEnv(testEnv...)
	ctx := context.Background()
	if _, err := g.run(ctx, "init", "-q"); err != nil {
		t.Fatalf("init: %v", err)
	}
	if err := g.CreateBranch(ctx, "develop"); err != nil {
		t.Fatalf("create develop: %v", err)
	}
	writeFile(t, dir, "README.md", "# test\n")
	if err := g.Add(ctx, "README.md"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := g.Commit(ctx, "initial", time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("commit: %v", err)
	}
	return g
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestPrepareAndDatedCommit(t *testing.T) {
	g := newTestRepo(t)
	ctx := context.Background()

	if err := g.Prepare(ctx, "develop", "main", time.Now()); err != nil {
		t.Fatalf("prepare: %v", err)
	}
	branch, err := g.CurrentBranch(ctx)
	if err != nil {
		t.Fatalf("current branch: %v", err)
	}
	if branch != "main" {
		t.Fatalf("expected main, got %q", branch)
	}

	writeFile(t, g.Dir(), "README.md", "# test\nart\n")
	if err := g.Add(ctx, "README.md"); err != nil {
		t.Fatalf("add: %v", err)
	}
	date := time.Date(2023, time.October, 18, 0, 0, 0, 0, time.UTC)
	if err := g.Commit(ctx, "Update pixel at (col:2, row:3), commit 1/1", date); err != nil {
		t.Fatalf("commit: %v", err)
	}
	out, err := g.run(ctx, "log", "-1", "--format=%ad|%s", "--date=iso-strict")
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	got := strings.TrimSpace(out)
	if got != "2023-10-18T00:00:00+00:00|Update pixel at (col:2, row:3), commit 1/1" {
		t.Fatalf("unexpected log line %q", got)
	}

	// A second prepare replaces the existing main branch.
	if err := g.Prepare(ctx, "develop", "main", time.Now().Add(time.Second)); err != nil {
		t.Fatalf("second prepare: %v", err)
	}
}

func TestCheckoutMissingBranchFails(t *testing.T) {
	g := newTestRepo(t)
	err := g.Prepare(context.Background(), "no-such-branch", "main", time.Now())
	if !errors.Is(err, model.ErrCommitSink) {
		t.Fatalf("expected ErrCommitSink, got %v", err)
	}
	if !strings.Contains(err.Error(), "no-such-branch") {
		t.Fatalf("expected base branch in error, got %v", err)
	}
}

func TestPushWithoutRemoteFails(t *testing.T) {
	g := newTestRepo(t)
	err := g.Push(context.Background(), "origin", "develop", true)
	if !errors.Is(err, model.ErrCommitSink) {
		t.Fatalf("expected ErrCommitSink, got %v", err)
	}
}

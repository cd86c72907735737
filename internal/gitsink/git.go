// Package gitsink drives the git executable to record art commits.
package gitsink

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/verte-zerg/gitart/internal/model"
	"github.com/verte-zerg/gitart/internal/schedule"
)

// Git runs git commands in a working directory.
type Git struct {
	exe string
	dir string
	env []string
}

// New locates git and targets dir. An empty dir means the current directory.
func New(dir string) (*Git, error) {
	exe, err := exec.LookPath("git")
	if err != nil {
		return nil, fmt.Errorf("%w: couldn't find git: %v", model.ErrCommitSink, err)
	}
	return &Git{exe: exe, dir: dir}, nil
}

// WithEnv returns a copy that appends extra environment variables to every command.
func (g *Git) WithEnv(env ...string) *Git {
	cp := *g
	cp.env = append(append([]string(nil), g.env...), env...)
	return &cp
}

// Dir returns the working directory.
func (g *Git) Dir() string {
	return g.dir
}

func (g *Git) run(ctx context.Context, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, g.exe, args...)
	cmd.Dir = g.dir
	if len(g.env) > 0 {
		cmd.Env = append(cmd.Environ(), g.env...)
	}
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return stdout.String(), fmt.Errorf("%w: git %s: %s", model.ErrCommitSink, strings.Join(args, " "), msg)
	}
	return stdout.String(), nil
}

// Checkout switches to an existing branch.
func (g *Git) Checkout(ctx context.Context, branch string) error {
	_, err := g.run(ctx, "checkout", branch)
	return err
}

// CreateBranch creates and switches to a new branch.
func (g *Git) CreateBranch(ctx context.Context, branch string) error {
	_, err := g.run(ctx, "checkout", "-b", branch)
	return err
}

// DeleteBranch force-deletes a branch.
func (g *Git) DeleteBranch(ctx context.Context, branch string) error {
	_, err := g.run(ctx, "branch", "-D", branch)
	return err
}

// RenameBranch renames the current branch.
func (g *Git) RenameBranch(ctx context.Context, branch string) error {
	_, err := g.run(ctx, "branch", "-m", branch)
	return err
}

// CurrentBranch returns the checked out branch name.
func (g *Git) CurrentBranch(ctx context.Context) (string, error) {
	out, err := g.run(ctx, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// Add stages a path.
func (g *Git) Add(ctx context.Context, path string) error {
	_, err := g.run(ctx, "add", path)
	return err
}

// Commit records staged changes with the given message, authored at
// midnight UTC of date.
func (g *Git) Commit(ctx context.Context, message string, date time.Time) error {
	_, err := g.run(ctx, "commit", "-m", message, "--date", schedule.FormatCommitDate(date))
	return err
}

// Push pushes branch to remote.
func (g *Git) Push(ctx context.Context, remote, branch string, force bool) error {
	args := []string{"push", remote, branch}
	if force {
		args = append(args, "--force")
	}
	_, err := g.run(ctx, args...)
	return err
}

// Prepare checks out base, branches off it under a temporary name, drops any
// existing target branch and renames the temporary branch to target.
func (g *Git) Prepare(ctx context.Context, base, target string, now time.Time) error {
	if err := g.Checkout(ctx, base); err != nil {
		return fmt.Errorf("failed to check out base branch %s: %w", base, err)
	}
	temp := schedule.BranchName(now)
	if err := g.CreateBranch(ctx, temp); err != nil {
		return fmt.Errorf("failed to create temporary branch: %w", err)
	}
	// The target may not exist yet.
	_ = g.DeleteBranch(ctx, target)
	if err := g.RenameBranch(ctx, target); err != nil {
		return fmt.Errorf("failed to rename branch to %q: %w", target, err)
	}
	return nil
}

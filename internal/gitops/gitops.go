// Package gitops runs the git commands that keep a deployment repository in
// step with its remote around a teardown.
package gitops

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes a git subcommand in dir and returns its combined output.
type Runner func(ctx context.Context, dir string, args ...string) ([]byte, error)

// Repo is a git working tree.
type Repo struct {
	Dir string
	run Runner
}

// New returns a repo rooted at dir that shells out to the git binary. An empty
// dir means the current working directory.
func New(dir string) *Repo {
	return &Repo{Dir: dir, run: execGit}
}

// NewWithRunner returns a repo that uses run instead of the git binary.
func NewWithRunner(dir string, run Runner) *Repo {
	return &Repo{Dir: dir, run: run}
}

// Pull fetches and merges the upstream branch.
func (r *Repo) Pull(ctx context.Context) error {
	return r.git(ctx, "pull")
}

// CommitAndPush stages every change, commits it with message and pushes.
func (r *Repo) CommitAndPush(ctx context.Context, message string) error {
	steps := [][]string{
		{"add", "."},
		{"commit", "-m", message},
		{"push"},
	}
	for _, args := range steps {
		if err := r.git(ctx, args...); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repo) git(ctx context.Context, args ...string) error {
	out, err := r.run(ctx, r.Dir, args...)
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("git %s interrupted: %w", args[0], ctxErr)
	}
	if msg := strings.TrimSpace(string(out)); msg != "" {
		return fmt.Errorf("git %s failed: %w: %s", args[0], err, msg)
	}
	return fmt.Errorf("git %s failed: %w", args[0], err)
}

func execGit(ctx context.Context, dir string, args ...string) ([]byte, error) {
	// #nosec G204 - args are fixed subcommands and the commit message is passed as a single argument
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}

package command

import (
	"context"
	"fmt"
	"strings"
)

// GitRunner abstracts the git invocations needed for environment diagnosis
type GitRunner interface {
	// Version returns the installed git version string
	Version(ctx context.Context) (string, error)
	// HooksPath returns the configured core.hooksPath, empty when unset
	HooksPath(ctx context.Context, dir string) (string, error)
}

type gitRunner struct {
	runner Runner
}

// NewGitRunner creates a new GitRunner instance
func NewGitRunner(runner Runner) GitRunner {
	return &gitRunner{
		runner: runner,
	}
}

// Version returns the installed git version string
func (g *gitRunner) Version(ctx context.Context) (string, error) {
	stdout, stderr, err := g.runner.RunInDir(ctx, "", "git", "--version")
	if err != nil {
		return "", fmt.Errorf("failed to run git: %w (stderr: %s)", err, stderr)
	}

	return strings.TrimSpace(stdout), nil
}

// HooksPath returns the configured core.hooksPath for the given directory.
// git config exits non-zero when the key is not set, which is reported as
// an empty path rather than an error.
func (g *gitRunner) HooksPath(ctx context.Context, dir string) (string, error) {
	stdout, _, err := g.runner.RunInDir(ctx, dir, "git", "config", "--get", "core.hooksPath")
	if err != nil {
		return "", nil
	}

	return strings.TrimSpace(stdout), nil
}

// Package command provides thin adapters over external process execution.
package command

import (
	"bytes"
	"context"
	"os/exec"
)

//go:generate mockgen -source=runner.go -destination=mock_runner.go -package=command

// Runner abstracts external command execution
type Runner interface {
	// RunInDir runs a command in the given directory and returns its output.
	// An empty dir runs the command in the current working directory.
	RunInDir(ctx context.Context, dir string, name string, args ...string) (stdout, stderr string, err error)
}

// execRunner implements Runner using os/exec
type execRunner struct{}

// NewRunner creates a new Runner backed by os/exec
func NewRunner() Runner {
	return &execRunner{}
}

// RunInDir runs a command in the given directory and returns its output
func (r *execRunner) RunInDir(ctx context.Context, dir string, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if dir != "" {
		cmd.Dir = dir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// Package vcs initializes git repositories for new projects.
package vcs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Preflight checks that all binaries are available on PATH.
func Preflight(bins ...string) error {
	var missing []string
	for _, bin := range bins {
		if _, err := exec.LookPath(bin); err != nil {
			missing = append(missing, bin)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("required binaries not found in PATH: %s", strings.Join(missing, ", "))
	}
	return nil
}

// IsRepo reports whether dir is inside a git work tree.
func IsRepo(ctx context.Context, dir string) bool {
	code, out, err := git(ctx, dir, "rev-parse", "--is-inside-work-tree")
	return err == nil && code == 0 && strings.TrimSpace(out) == "true"
}

// Init runs git init in dir.
func Init(ctx context.Context, dir string) error {
	if err := Preflight("git"); err != nil {
		return err
	}
	code, out, err := git(ctx, dir, "init", "--quiet")
	if err != nil {
		return fmt.Errorf("git init: %w", err)
	}
	if code != 0 {
		return fmt.Errorf("git init exited %d: %s", code, strings.TrimSpace(out))
	}
	return nil
}

func git(ctx context.Context, dir string, args ...string) (int, string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	code, err := exitCode(cmd.Run())
	return code, out.String(), err
}

// exitCode extracts an exit code from a command error.
// Returns (code, nil) for ExitError, (0, err) for other errors, (0, nil) for nil.
func exitCode(err error) (int, error) {
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return 0, err
}

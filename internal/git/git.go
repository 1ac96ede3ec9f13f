// Package git wraps the few git invocations project creation needs:
// detecting git, detecting an enclosing work tree, init, and the initial commit.
package git

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/luban-cli/luban/internal/runner"
)

// DefaultCommitMessage is used for the initial commit when none is given.
const DefaultCommitMessage = "init"

// Git runs git commands in a project directory.
type Git struct {
	dir string
	cmd runner.Commander
}

// New returns a Git for dir that runs git through cmd.
func New(dir string, cmd runner.Commander) *Git {
	return &Git{dir: dir, cmd: cmd}
}

// Available reports whether a working git binary is on PATH.
func Available(ctx context.Context) bool {
	if _, err := exec.LookPath("git"); err != nil {
		return false
	}
	return exec.CommandContext(ctx, "git", "--version").Run() == nil
}

// InWorkTree reports whether the directory is already inside a git work tree.
func (g *Git) InWorkTree(ctx context.Context) bool {
	_, err := g.cmd.Run(ctx, "git", "status")
	return err == nil
}

// Init runs git init.
func (g *Git) Init(ctx context.Context) error {
	if _, err := runner.RunLine(ctx, g.cmd, "git init"); err != nil {
		return fmt.Errorf("initializing git repository: %w", err)
	}
	return nil
}

// CommitAll stages everything and commits with message, skipping hooks.
func (g *Git) CommitAll(ctx context.Context, message string) error {
	if message == "" {
		message = DefaultCommitMessage
	}
	if _, err := g.cmd.Run(ctx, "git", "add", "-A"); err != nil {
		return fmt.Errorf("staging files: %w", err)
	}
	if _, err := g.cmd.Run(ctx, "git", "commit", "-m", message, "--no-verify"); err != nil {
		return fmt.Errorf("creating initial commit: %w", err)
	}
	return nil
}

// Options are the user's version-control choices for a new project.
type Options struct {
	SkipGit  bool
	ForceGit bool
	// Message is set when --git was given, possibly empty.
	Message *string
}

// ShouldInit decides whether to run git init. gitAvailable and inWorkTree are
// evaluated lazily so that callers only shell out when needed.
func ShouldInit(opts Options, gitAvailable func() bool, inWorkTree func() bool) bool {
	if !gitAvailable() {
		return false
	}
	if opts.SkipGit {
		return false
	}
	if opts.ForceGit {
		return true
	}
	if opts.Message != nil {
		return true
	}
	return !inWorkTree()
}

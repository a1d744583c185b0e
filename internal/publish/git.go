package publish

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes git with args inside dir and returns its combined output.
type Runner interface {
	Run(ctx context.Context, dir string, args ...string) ([]byte, error)
}

// ExecRunner runs the git binary found on PATH.
type ExecRunner struct{}

// Run implements Runner.
func (ExecRunner) Run(ctx context.Context, dir string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}

// Git publishes changes of the repository at Dir. An empty Remote pushes to
// the current branch's configured upstream; Branch is only used together with
// a remote.
type Git struct {
	Dir    string
	Remote string
	Branch string
	Runner Runner
}

var _ Publisher = (*Git)(nil)

// NewGit returns a Git publisher backed by the git binary.
func NewGit(dir, remote, branch string) *Git {
	return &Git{
		Dir:    dir,
		Remote: remote,
		Branch: branch,
		Runner: ExecRunner{},
	}
}

// Stage adds every pending change in the working tree.
func (g *Git) Stage(ctx context.Context) error {
	return g.run(ctx, "add", ".")
}

// Commit records the staged changes with message.
func (g *Git) Commit(ctx context.Context, message string) error {
	return g.run(ctx, "commit", "-m", message)
}

// Push publishes the current branch.
func (g *Git) Push(ctx context.Context) error {
	return g.run(ctx, g.pushArgs()...)
}

func (g *Git) pushArgs() []string {
	args := []string{"push"}
	remote := g.Remote
	if remote == "" && g.Branch != "" {
		remote = "origin"
	}
	if remote != "" {
		args = append(args, remote)
	}
	if g.Branch != "" {
		args = append(args, g.Branch)
	}
	return args
}

func (g *Git) run(ctx context.Context, args ...string) error {
	output, err := g.Runner.Run(ctx, g.Dir, args...)
	if err != nil {
		return fmt.Errorf("git %s: %w\n%s", args[0], err, strings.TrimSpace(string(output)))
	}
	return nil
}

// EnsureGit checks that git is available on PATH.
func EnsureGit() error {
	if _, err := exec.LookPath("git"); err != nil {
		return fmt.Errorf("git is required but not found in PATH")
	}
	return nil
}

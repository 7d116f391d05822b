package git

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/arthur-debert/unconflict/pkg/errors"
	"github.com/arthur-debert/unconflict/pkg/logging"
)

// Runner executes git with args in dir and returns its standard output
type Runner interface {
	Run(ctx context.Context, dir string, args ...string) ([]byte, error)
}

// ExecRunner runs the git binary found on PATH
type ExecRunner struct{}

// Run implements Runner. Failures carry git's stderr in the "stderr" detail.
func (ExecRunner) Run(ctx context.Context, dir string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logging.LogCommand("git", args)

	if err := cmd.Run(); err != nil {
		return nil, errors.Wrapf(err, errors.ErrGitCommand, "git %s failed", strings.Join(args, " ")).
			WithDetail("args", args).
			WithDetail("stderr", strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}

// CLI is a Repository backed by the git binary
type CLI struct {
	runner Runner
	dir    string
	root   string
}

// NewCLI returns a Repository for the working tree containing dir
func NewCLI(dir string) *CLI {
	return NewCLIWithRunner(ExecRunner{}, dir)
}

// NewCLIWithRunner is NewCLI with a custom Runner
func NewCLIWithRunner(runner Runner, dir string) *CLI {
	return &CLI{runner: runner, dir: dir}
}

// Toplevel implements Repository
func (c *CLI) Toplevel(ctx context.Context) (string, error) {
	if c.root != "" {
		return c.root, nil
	}

	out, err := c.runner.Run(ctx, c.dir, "rev-parse", "--show-toplevel")
	if err != nil {
		if stderr, _ := errors.GetErrorDetails(err)["stderr"].(string); strings.Contains(stderr, "not a git repository") {
			return "", errors.Wrapf(err, errors.ErrNotARepo, "not a git repository: %s", c.dir).
				WithDetail("dir", c.dir)
		}
		return "", err
	}

	root := strings.TrimSpace(string(out))
	if root == "" {
		return "", errors.New(errors.ErrGitCommand, "git returned an empty toplevel")
	}
	c.root = root
	return root, nil
}

// UnmergedFiles implements Repository
func (c *CLI) UnmergedFiles(ctx context.Context) ([]string, error) {
	root, err := c.Toplevel(ctx)
	if err != nil {
		return nil, err
	}

	out, err := c.runner.Run(ctx, root, "diff", "--name-only", "--diff-filter=U", "-z")
	if err != nil {
		return nil, err
	}

	return sortedUnique(strings.Split(string(out), "\x00")), nil
}

// Add implements Repository
func (c *CLI) Add(ctx context.Context, paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	root, err := c.Toplevel(ctx)
	if err != nil {
		return err
	}

	args := append([]string{"add", "--"}, paths...)
	_, err = c.runner.Run(ctx, root, args...)
	return err
}

// Package repo resolves every file a merge left unmerged in a git working
// tree.
package repo

import (
	"context"
	"io"
	"path/filepath"

	"github.com/arthur-debert/unconflict/pkg/commands/resolve"
	"github.com/arthur-debert/unconflict/pkg/config"
	"github.com/arthur-debert/unconflict/pkg/errors"
	"github.com/arthur-debert/unconflict/pkg/git"
	"github.com/arthur-debert/unconflict/pkg/logging"
	"github.com/arthur-debert/unconflict/pkg/types"
)

// ResolveRepoOptions holds options for the repo command
type ResolveRepoOptions struct {
	// Dir is any directory inside the working tree
	Dir    string
	Policy types.Policy
	DryRun bool
	// Stage runs the equivalent of git add on each rewritten file
	Stage bool
	// Repository defaults to git.Open with the configured backend
	Repository git.Repository
	FS         types.FS
	Config     *config.Config
	// Stdout receives resolved text in dry runs
	Stdout io.Writer
}

// ResolveRepo resolves the unmerged files of the repository containing
// opts.Dir in path order. It stops at the first failure and returns the
// files handled so far alongside the error.
func ResolveRepo(ctx context.Context, opts ResolveRepoOptions) (*types.RepoResult, error) {
	logger := logging.GetLogger("commands.repo")
	done := logging.LogOperationStart(logger, "repo")
	defer done()

	if !opts.Policy.Valid() {
		return nil, errors.Newf(errors.ErrInvalidMode, "invalid resolve policy %q", string(opts.Policy)).
			WithDetail("mode", string(opts.Policy))
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	repository := opts.Repository
	if repository == nil {
		var err error
		repository, err = git.Open(cfg.Git.Backend, opts.Dir)
		if err != nil {
			return nil, err
		}
	}

	root, err := repository.Toplevel(ctx)
	if err != nil {
		return nil, err
	}

	files, err := repository.UnmergedFiles(ctx)
	if err != nil {
		return nil, err
	}

	result := &types.RepoResult{
		Root:   root,
		Policy: opts.Policy,
		Files:  []types.ResolveResult{},
		Staged: []string{},
		DryRun: opts.DryRun,
	}

	logger = logging.WithFields(map[string]interface{}{
		"component": "commands.repo",
		"root":      root,
		"policy":    opts.Policy.String(),
	})
	logger.Info().Int("unmerged", len(files)).Msg("Found unmerged files")

	var resolved []string
	for _, name := range files {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		fileResult, err := resolve.ResolveFile(resolve.ResolveFileOptions{
			Path:   filepath.Join(root, filepath.FromSlash(name)),
			Policy: opts.Policy,
			DryRun: opts.DryRun,
			FS:     opts.FS,
			Config: cfg,
			Stdout: opts.Stdout,
		})
		if err != nil {
			return result, err
		}
		result.Files = append(result.Files, *fileResult)

		if fileResult.Written {
			resolved = append(resolved, name)
		}
	}

	if opts.Stage && len(resolved) > 0 {
		if err := repository.Add(ctx, resolved...); err != nil {
			return result, err
		}
		result.Staged = resolved
		logger.Info().Strs("paths", resolved).Msg("Staged resolved files")
	}

	return result, nil
}

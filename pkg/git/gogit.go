package git

import (
	"context"
	stderrors "errors"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/format/index"

	"github.com/arthur-debert/unconflict/pkg/errors"
)

// GoGit is a Repository that reads and writes the index with go-git
type GoGit struct {
	repo *gogit.Repository
	wt   *gogit.Worktree
}

// OpenGoGit opens the repository containing dir, searching parent directories
func OpenGoGit(dir string) (*GoGit, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if stderrors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, errors.Wrapf(err, errors.ErrNotARepo, "not a git repository: %s", dir).
				WithDetail("dir", dir)
		}
		return nil, errors.Wrapf(err, errors.ErrGitCommand, "failed to open repository at %s", dir)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrNotARepo, "repository has no working tree")
	}

	return &GoGit{repo: repo, wt: wt}, nil
}

// Toplevel implements Repository
func (g *GoGit) Toplevel(ctx context.Context) (string, error) {
	return g.wt.Filesystem.Root(), nil
}

// UnmergedFiles implements Repository
func (g *GoGit) UnmergedFiles(ctx context.Context) ([]string, error) {
	idx, err := g.repo.Storer.Index()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrGitCommand, "failed to read index")
	}

	var names []string
	for _, e := range idx.Entries {
		if e.Stage != index.Merged {
			names = append(names, e.Name)
		}
	}
	return sortedUnique(names), nil
}

// Add implements Repository. Conflict stages are dropped from the index
// before the working tree file is added back at stage zero.
func (g *GoGit) Add(ctx context.Context, paths ...string) error {
	if len(paths) == 0 {
		return nil
	}

	idx, err := g.repo.Storer.Index()
	if err != nil {
		return errors.Wrap(err, errors.ErrGitCommand, "failed to read index")
	}

	staged := make(map[string]bool, len(paths))
	for _, p := range paths {
		staged[p] = true
	}
	kept := idx.Entries[:0]
	for _, e := range idx.Entries {
		if staged[e.Name] && e.Stage != index.Merged {
			continue
		}
		kept = append(kept, e)
	}
	idx.Entries = kept
	if err := g.repo.Storer.SetIndex(idx); err != nil {
		return errors.Wrap(err, errors.ErrGitCommand, "failed to write index")
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := g.wt.Add(p); err != nil {
			return errors.Wrapf(err, errors.ErrGitCommand, "failed to stage %s", p).
				WithDetail("path", p)
		}
	}
	return nil
}

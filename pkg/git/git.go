// Package git finds the files a merge left unmerged and stages them once
// resolved. Two backends implement Repository: CLI shells out to the git
// binary, GoGit reads the index directly with go-git.
package git

import (
	"context"
	"sort"
	"strings"

	"github.com/arthur-debert/unconflict/pkg/errors"
)

// Backend names accepted by Open and the git.backend config key
const (
	BackendCLI   = "cli"
	BackendGoGit = "go-git"
)

// Backends lists the accepted backend names
var Backends = []string{BackendCLI, BackendGoGit}

// Repository is the part of git that repository mode needs. Paths are
// relative to Toplevel and use forward slashes.
type Repository interface {
	// Toplevel returns the absolute path of the working tree root
	Toplevel(ctx context.Context) (string, error)
	// UnmergedFiles returns the paths with unmerged index entries, sorted
	UnmergedFiles(ctx context.Context) ([]string, error)
	// Add stages paths, clearing their conflict entries
	Add(ctx context.Context, paths ...string) error
}

// Open returns the repository containing dir using the named backend
func Open(backend, dir string) (Repository, error) {
	switch strings.ToLower(backend) {
	case BackendCLI, "":
		return NewCLI(dir), nil
	case BackendGoGit, "gogit":
		return OpenGoGit(dir)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown git backend %q", backend).
			WithDetail("valid", Backends)
	}
}

// sortedUnique sorts names and drops empty and repeated entries
func sortedUnique(names []string) []string {
	sort.Strings(names)
	out := names[:0]
	for i, n := range names {
		if n == "" || (i > 0 && n == names[i-1]) {
			continue
		}
		out = append(out, n)
	}
	return out
}

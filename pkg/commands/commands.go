// Package commands provides the operations behind unconflict's CLI.
//
// Each command is implemented in its own subdirectory:
//   - resolve/ - ResolveFile, the core single-file operation
//   - scan/    - ScanFiles, read-only conflict reports
//   - repo/    - ResolveRepo, every unmerged file of a git working tree
//
// This file re-exports the command functions so callers need one import.
package commands

import (
	"context"

	"github.com/arthur-debert/unconflict/pkg/commands/repo"
	"github.com/arthur-debert/unconflict/pkg/commands/resolve"
	"github.com/arthur-debert/unconflict/pkg/commands/scan"
	"github.com/arthur-debert/unconflict/pkg/report"
	"github.com/arthur-debert/unconflict/pkg/types"
)

// ResolveFile resolves the conflicts of a single file.
type ResolveFileOptions = resolve.ResolveFileOptions

func ResolveFile(opts ResolveFileOptions) (*types.ResolveResult, error) {
	return resolve.ResolveFile(opts)
}

// ScanFiles reports the conflicts of files without changing them.
type ScanFilesOptions = scan.ScanFilesOptions

func ScanFiles(opts ScanFilesOptions) ([]report.FileReport, error) {
	return scan.ScanFiles(opts)
}

// ResolveRepo resolves every unmerged file of a repository.
type ResolveRepoOptions = repo.ResolveRepoOptions

func ResolveRepo(ctx context.Context, opts ResolveRepoOptions) (*types.RepoResult, error) {
	return repo.ResolveRepo(ctx, opts)
}

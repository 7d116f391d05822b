package resolve

import (
	"context"
	stderrors "errors"
	"io"

	"github.com/arthur-debert/unconflict/pkg/config"
	"github.com/arthur-debert/unconflict/pkg/errors"
	"github.com/arthur-debert/unconflict/pkg/filesystem"
	"github.com/arthur-debert/unconflict/pkg/lines"
	"github.com/arthur-debert/unconflict/pkg/logging"
	"github.com/arthur-debert/unconflict/pkg/resolver"
	"github.com/arthur-debert/unconflict/pkg/scanner"
	"github.com/arthur-debert/unconflict/pkg/types"
)

// ResolveFileOptions holds options for resolving a single file
type ResolveFileOptions struct {
	Path   string
	Policy types.Policy
	// DryRun writes the resolved text to Stdout and leaves the file alone
	DryRun bool
	// FS defaults to the host filesystem
	FS types.FS
	// Config defaults to config.Default()
	Config *config.Config
	Stdout io.Writer
}

// ResolveFile rewrites the file at opts.Path with every conflict block
// replaced by the sides opts.Policy selects. A file without conflicts is
// left untouched.
func ResolveFile(opts ResolveFileOptions) (*types.ResolveResult, error) {
	logger := logging.GetLogger("commands.resolve")
	done := logging.LogOperationStart(logger, "resolve")
	defer done()

	if !opts.Policy.Valid() {
		return nil, errors.Newf(errors.ErrInvalidMode, "invalid resolve policy %q", string(opts.Policy)).
			WithDetail("mode", string(opts.Policy))
	}

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	data, err := fsys.ReadFile(opts.Path)
	if err != nil {
		return nil, errors.WrapFS(err, errors.ErrFileRead, opts.Path)
	}

	input := lines.Split(data)
	doc, err := scanner.New(cfg.Markers).Scan(input)
	if err != nil {
		return nil, withPath(err, opts.Path)
	}

	result := &types.ResolveResult{
		Path:        opts.Path,
		Policy:      opts.Policy,
		Conflicts:   doc.Len(),
		LinesBefore: len(input),
		LinesAfter:  len(input),
		DryRun:      opts.DryRun,
	}

	if doc.Empty() {
		logger.Info().Str("path", opts.Path).Msg("No conflicts found")
		return result, nil
	}

	output := resolver.Resolve(doc, opts.Policy)
	result.LinesAfter = len(output)

	ending, err := lines.ParseEnding(cfg.Output.LineEnding, data)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigValid, "invalid output.line_ending")
	}
	resolved := lines.Join(output, ending, cfg.Output.FinalNewline)

	logger.Debug().
		Str("path", opts.Path).
		Str("policy", opts.Policy.String()).
		Int("conflicts", doc.Len()).
		Str("line_ending", ending.Name()).
		Msg("Resolved document")

	if opts.DryRun {
		if opts.Stdout != nil {
			if _, err := opts.Stdout.Write(resolved); err != nil {
				return nil, errors.Wrap(err, errors.ErrFileWrite, "failed to write resolved text")
			}
		}
		return result, nil
	}

	plan := filesystem.WritePlan{
		Path:     opts.Path,
		Original: data,
		Resolved: resolved,
		Atomic:   cfg.Output.Atomic,
	}
	if cfg.Backup.Enabled {
		plan.BackupSuffix = cfg.Backup.Suffix
	}
	applied, err := filesystem.Apply(context.Background(), fsys, plan)
	if err != nil {
		return nil, err
	}
	result.BackupPath = applied.BackupPath
	result.Written = true

	logger.Info().
		Str("path", opts.Path).
		Int("conflicts", result.Conflicts).
		Int("lines_before", result.LinesBefore).
		Int("lines_after", result.LinesAfter).
		Msg("File resolved")

	return result, nil
}

// withPath prefixes a scanner error with the file it came from
func withPath(err error, path string) error {
	var uerr *errors.UnconflictError
	if !stderrors.As(err, &uerr) {
		return err
	}
	return errors.Newf(uerr.Code, "%s: %s", path, uerr.Message).
		WithDetails(uerr.Details).
		WithDetail("path", path)
}

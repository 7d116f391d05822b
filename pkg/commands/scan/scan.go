// Package scan reports the conflict blocks of files without changing them.
package scan

import (
	"time"

	"github.com/arthur-debert/unconflict/pkg/config"
	"github.com/arthur-debert/unconflict/pkg/errors"
	"github.com/arthur-debert/unconflict/pkg/filesystem"
	"github.com/arthur-debert/unconflict/pkg/lines"
	"github.com/arthur-debert/unconflict/pkg/logging"
	"github.com/arthur-debert/unconflict/pkg/report"
	"github.com/arthur-debert/unconflict/pkg/scanner"
	"github.com/arthur-debert/unconflict/pkg/types"
)

// ScanFilesOptions holds options for the scan command
type ScanFilesOptions struct {
	Paths  []string
	FS     types.FS
	Config *config.Config
}

// ScanFiles scans every path in order. A file that cannot be read or is
// malformed produces a failed report; the remaining files are still scanned.
func ScanFiles(opts ScanFilesOptions) ([]report.FileReport, error) {
	logger := logging.GetLogger("commands.scan")
	defer logging.LogDuration(time.Now(), "scan")

	if len(opts.Paths) == 0 {
		return nil, errors.New(errors.ErrUsage, "scan needs at least one file")
	}

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	s := scanner.New(cfg.Markers)

	reports := make([]report.FileReport, 0, len(opts.Paths))
	for _, path := range opts.Paths {
		data, err := fsys.ReadFile(path)
		if err != nil {
			reports = append(reports, report.FromError(path, errors.WrapFS(err, errors.ErrFileRead, path)))
			continue
		}

		input := lines.Split(data)
		doc, err := s.Scan(input)
		if err != nil {
			reports = append(reports, report.FromError(path, err))
			continue
		}
		reports = append(reports, report.FromDocument(path, len(input), doc))
	}

	summary := report.Summarize(reports)
	logger.Info().
		Int("files", summary.Files).
		Int("conflicts", summary.Conflicts).
		Int("failed", summary.Failed).
		Msg("Scan completed")

	return reports, nil
}

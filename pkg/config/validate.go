package config

import (
	"strings"

	"github.com/arthur-debert/unconflict/pkg/errors"
	"github.com/arthur-debert/unconflict/pkg/lines"
)

// ValidFormats lists the accepted ui.format values
var ValidFormats = []string{"auto", "term", "text", "json", "checkstyle"}

// ValidGitBackends lists the accepted git.backend values
var ValidGitBackends = []string{"cli", "go-git"}

// Validate checks a configuration for values the rest of the program cannot use
func Validate(cfg *Config) error {
	m := cfg.Markers
	if m.Header == "" || m.Separator == "" || m.Footer == "" {
		return errors.New(errors.ErrConfigValid, "conflict markers must not be empty")
	}
	if m.Header == m.Separator || m.Header == m.Footer || m.Separator == m.Footer {
		return errors.New(errors.ErrConfigValid, "conflict markers must be distinct").
			WithDetail("header", m.Header).
			WithDetail("separator", m.Separator).
			WithDetail("footer", m.Footer)
	}

	if !contains(lines.ValidEndingNames, strings.ToLower(cfg.Output.LineEnding)) {
		return errors.Newf(errors.ErrConfigValid, "output.line_ending must be one of %s, got %q",
			strings.Join(lines.ValidEndingNames, ", "), cfg.Output.LineEnding)
	}

	if !contains(ValidFormats, strings.ToLower(cfg.UI.Format)) {
		return errors.Newf(errors.ErrConfigValid, "ui.format must be one of %s, got %q",
			strings.Join(ValidFormats, ", "), cfg.UI.Format)
	}

	if !contains(ValidGitBackends, strings.ToLower(cfg.Git.Backend)) {
		return errors.Newf(errors.ErrConfigValid, "git.backend must be one of %s, got %q",
			strings.Join(ValidGitBackends, ", "), cfg.Git.Backend)
	}

	if cfg.Backup.Enabled && cfg.Backup.Suffix == "" {
		return errors.New(errors.ErrConfigValid, "backup.suffix must not be empty when backups are enabled")
	}

	return nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

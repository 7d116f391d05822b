package config

import (
	"github.com/arthur-debert/unconflict/pkg/types"
)

// Config is the complete runtime configuration
type Config struct {
	Markers types.Markers `koanf:"markers" toml:"markers"`
	Output  Output        `koanf:"output" toml:"output"`
	Backup  Backup        `koanf:"backup" toml:"backup"`
	Git     Git           `koanf:"git" toml:"git"`
	UI      UI            `koanf:"ui" toml:"ui"`
}

// Output controls how resolved files are written
type Output struct {
	LineEnding   string `koanf:"line_ending" toml:"line_ending"`
	FinalNewline bool   `koanf:"final_newline" toml:"final_newline"`
	Atomic       bool   `koanf:"atomic" toml:"atomic"`
}

// Backup controls the copy of the conflicted file kept before rewriting
type Backup struct {
	Enabled bool   `koanf:"enabled" toml:"enabled"`
	Suffix  string `koanf:"suffix" toml:"suffix"`
}

// Git holds repository mode settings
type Git struct {
	Stage   bool   `koanf:"stage" toml:"stage"`
	Backend string `koanf:"backend" toml:"backend"`
}

// UI holds report rendering settings
type UI struct {
	Format string `koanf:"format" toml:"format"`
}

// Default returns the built-in configuration without reading any file
func Default() *Config {
	return &Config{
		Markers: types.DefaultMarkers(),
		Output: Output{
			LineEnding: "platform",
			Atomic:     true,
		},
		Backup: Backup{Suffix: ".orig"},
		Git:    Git{Backend: "cli"},
		UI:     UI{Format: "auto"},
	}
}

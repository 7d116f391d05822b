package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/unconflict/pkg/errors"
	"github.com/arthur-debert/unconflict/pkg/logging"
)

const (
	// EnvPrefix prefixes every configuration environment variable
	EnvPrefix = "UNCONFLICT_"
	// ProjectConfigName is looked up in the working directory
	ProjectConfigName = ".unconflict.toml"
	appDirName        = "unconflict"
	userConfigName    = "config.toml"
)

// LoadOptions selects the optional configuration layers
type LoadOptions struct {
	// WorkDir is searched for ProjectConfigName; empty means the current directory
	WorkDir string
	// ConfigFile is an explicit file that must exist
	ConfigFile string
	// SkipUser ignores the user's XDG config file
	SkipUser bool
	// Overrides holds dotted keys set from command line flags; they win over
	// every other layer
	Overrides map[string]interface{}
}

// Load builds the configuration from all layers and validates it
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config
	if !opts.SkipUser {
		if err := loadOptionalFile(k, UserConfigPath()); err != nil {
			return nil, err
		}
	}

	// 3. Project config
	workDir := opts.WorkDir
	if workDir == "" {
		workDir = "."
	}
	if err := loadOptionalFile(k, filepath.Join(workDir, ProjectConfigName)); err != nil {
		return nil, err
	}

	// 4. Explicit file
	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s", opts.ConfigFile).
				WithDetail("path", opts.ConfigFile)
		}
		if err := k.Load(file.Provider(opts.ConfigFile), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", opts.ConfigFile).
				WithDetail("path", opts.ConfigFile)
		}
	}

	// 5. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 6. Command line overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	cfg, err := unmarshal(k)
	if err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("line_ending", cfg.Output.LineEnding).
		Bool("backup", cfg.Backup.Enabled).
		Str("format", cfg.UI.Format).
		Msg("Configuration loaded")

	return cfg, nil
}

// UserConfigPath returns the per-user config file location
func UserConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = xdg.ConfigHome
	}
	return filepath.Join(configHome, appDirName, userConfigName)
}

// envKey maps UNCONFLICT_OUTPUT_LINE_ENDING to output.line_ending: the first
// underscore separates the section, the rest belong to the key.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}

func loadOptionalFile(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", path).
			WithDetail("path", path)
	}
	logger := logging.GetLogger("config")
	logger.Debug().Str("path", path).Msg("Loaded config file")
	return nil
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	return &cfg, nil
}

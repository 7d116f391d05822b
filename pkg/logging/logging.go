package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// EnvLogFile names a file that receives a copy of every log line. Unset
// means console only: a run leaves nothing behind but the target file.
const EnvLogFile = "UNCONFLICT_LOG_FILE"

// Options configures the global logger
type Options struct {
	Verbosity int
	// File is appended to when non-empty
	File string
	// Console defaults to stderr
	Console io.Writer
}

// SetupLogger configures the global logger from a -v count, honouring
// UNCONFLICT_LOG_FILE
func SetupLogger(verbosity int) {
	Setup(Options{Verbosity: verbosity, File: os.Getenv(EnvLogFile)})
}

// Setup installs the global logger. A log file that cannot be opened
// degrades to console only with a warning.
func Setup(opts Options) {
	zerolog.SetGlobalLevel(levelFor(opts.Verbosity))

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	sink := io.Writer(zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: time.Kitchen,
		NoColor:    os.Getenv("NO_COLOR") != "",
	})

	var fileErr error
	if opts.File != "" {
		var file *os.File
		file, fileErr = openLogFile(opts.File)
		if fileErr == nil {
			sink = zerolog.MultiLevelWriter(sink, file)
		}
	}

	ctx := zerolog.New(sink).With().Timestamp()
	if opts.Verbosity >= 2 {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()

	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", opts.File).Msg("Log file unavailable, logging to console only")
	}
	log.Debug().Int("verbosity", opts.Verbosity).Str("file", opts.File).Msg("Logger initialized")
}

// levelFor maps the -v count: none warn, -v info, -vv debug, more trace
func levelFor(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return file, nil
}

// GetLogger returns the global logger tagged with a component name
func GetLogger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// WithFields returns the global logger carrying every entry of fields
func WithFields(fields map[string]interface{}) zerolog.Logger {
	return log.With().Fields(fields).Logger()
}

// LogCommand records an external command before it runs
func LogCommand(name string, args []string) {
	log.Debug().Str("command", name).Strs("args", args).Msg("Executing command")
}

// LogDuration records how long operation took since start
func LogDuration(start time.Time, operation string) {
	log.Debug().Str("operation", operation).Dur("duration", time.Since(start)).Msg("Operation completed")
}

// LogOperationStart logs the start of operation on logger and returns the
// function that logs its completion
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().Str("operation", operation).Msg("Operation started")
	return func() {
		logger.Debug().Str("operation", operation).Dur("duration", time.Since(start)).Msg("Operation completed")
	}
}

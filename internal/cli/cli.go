package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/hupe1980/runmerge"
	"github.com/hupe1980/runmerge/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Exit codes.
const (
	ExitOK    = 0
	ExitFatal = 1
	ExitUsage = 2
)

// Settings is the resolved configuration of one invocation.
type Settings struct {
	config.Config

	ConfigPath string
	LogFormat  string
	LogLevel   string
}

// Parse processes command-line arguments. It returns the resolved Settings,
// a boolean indicating if the program should exit cleanly, or an ExitError.
//
// Values are layered: defaults, then the -config file, then flags that were
// set explicitly.
func Parse(args []string, output io.Writer) (*Settings, bool, error) {
	flagSet := flag.NewFlagSet("runmerge", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
runmerge - merge sorted column-delimited text sources into one sorted output.

Usage:
  runmerge [options]

Every regular file in the directory is one source. Sources ending in .gz,
.zst or .lz4 are decompressed. The directory may also be s3://bucket/prefix
or minio://endpoint/bucket/prefix.

Options:
`)
		flagSet.PrintDefaults()
	}

	def := config.Default()
	configFlag := flagSet.String("config", "", "Path to an HCL configuration file.")
	headerFlag := flagSet.Bool("header", def.Header, "Discard the first line of every source.")
	columnFlag := flagSet.Int("column", def.Column, "Zero-based index of the key token.")
	dirFlag := flagSet.String("directory", def.Directory, "Location of the input sources.")
	dFlag := flagSet.String("dir", def.Directory, "Location of the input sources (shorthand).")
	outputFlag := flagSet.String("output", def.Output, "Output file, opened for append. '-' writes to stdout.")
	oFlag := flagSet.String("o", def.Output, "Output file (shorthand).")
	prefixFlag := flagSet.String("prefix", def.Prefix, "Only merge sources whose names start with this prefix.")
	concurrencyFlag := flagSet.Int("concurrency", def.LoadConcurrency, "Number of sources loaded at once.")
	readLimitFlag := flagSet.Int64("read-limit", def.ReadLimitBytes, "Source read limit in bytes per second. 0 is unlimited.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: ExitUsage, Message: fmt.Sprintf("unexpected argument: %s", flagSet.Arg(0))}
	}

	cfg := def
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
		}
		cfg = loaded
	}

	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "header":
			cfg.Header = *headerFlag
		case "column":
			cfg.Column = *columnFlag
		case "directory":
			cfg.Directory = *dirFlag
		case "dir":
			cfg.Directory = *dFlag
		case "output":
			cfg.Output = *outputFlag
		case "o":
			cfg.Output = *oFlag
		case "prefix":
			cfg.Prefix = *prefixFlag
		case "concurrency":
			cfg.LoadConcurrency = *concurrencyFlag
		case "read-limit":
			cfg.ReadLimitBytes = *readLimitFlag
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	if cfg.Directory == "" {
		return nil, false, &ExitError{Code: ExitUsage, Message: "directory must not be empty"}
	}
	if cfg.Output == "" {
		return nil, false, &ExitError{Code: ExitUsage, Message: "output must not be empty"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	if _, ok := levels[logLevel]; !ok {
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	return &Settings{
		Config:     cfg,
		ConfigPath: *configFlag,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	}, false, nil
}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// NewLogger builds the logger selected by LogFormat and LogLevel, writing to w.
func (s *Settings) NewLogger(w io.Writer) *runmerge.Logger {
	if s.LogFormat == "json" {
		return runmerge.NewJSONLogger(w, levels[s.LogLevel])
	}
	return runmerge.NewTextLogger(w, levels[s.LogLevel])
}

// Options converts the settings into merge options.
func (s *Settings) Options(logger *runmerge.Logger) []runmerge.Option {
	return []runmerge.Option{
		runmerge.WithHeader(s.Header),
		runmerge.WithColumn(s.Column),
		runmerge.WithPrefix(s.Prefix),
		runmerge.WithLoadConcurrency(s.LoadConcurrency),
		runmerge.WithReadLimit(s.ReadLimitBytes),
		runmerge.WithLogger(logger),
	}
}

// Command runmerge merges sorted column-delimited text sources into one
// sorted output file.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hupe1980/runmerge"
	"github.com/hupe1980/runmerge/blobstore"
	"github.com/hupe1980/runmerge/config"
	"github.com/hupe1980/runmerge/internal/cli"
	"github.com/hupe1980/runmerge/sink"
)

func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			stop()
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(cli.ExitFatal)
	}
}

// run parses args, merges the configured sources and appends the result to
// the configured output. stdout receives usage text and, for output "-",
// the merged lines; stderr receives logs.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	settings, shouldExit, err := cli.Parse(args, stdout)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := settings.NewLogger(stderr)
	logger.InfoContext(ctx, "configuration",
		"header", settings.Header,
		"column", settings.Column,
		"directory", settings.Directory,
		"output", settings.Output,
	)

	loc, err := cli.ParseLocation(settings.Directory)
	if err != nil {
		return &cli.ExitError{Code: cli.ExitUsage, Message: err.Error()}
	}
	store, err := cli.OpenStore(ctx, loc, os.Getenv)
	if err != nil {
		return err
	}

	if local, ok := store.(*blobstore.LocalStore); ok {
		logger.DebugContext(ctx, "reading local sources", "root", local.Root())
	}

	var out sink.Sink
	destination := "stdout"
	if settings.Output == config.StdoutOutput {
		out = sink.NewWriter(destination, stdout)
	} else {
		file := sink.NewFile(settings.Output)
		destination = file.Path()
		out = file
	}

	report, err := runmerge.Merge(ctx, store, out, settings.Options(logger)...)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("merge failed (%s): %w", runmerge.ErrorKind(err), err)
	}

	logger.InfoContext(ctx, "done",
		"sources", report.Sources,
		"skipped", report.Skipped.GetCardinality(),
		"emitted", report.Emitted,
		"destination", destination,
		"duration", report.Duration,
	)
	return nil
}

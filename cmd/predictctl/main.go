package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Winmix713/hekoprot2/internal/app"
	"github.com/Winmix713/hekoprot2/internal/config"
	"github.com/Winmix713/hekoprot2/internal/infrastructure/predictorapi"
	"github.com/Winmix713/hekoprot2/internal/platform/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		printError(os.Stderr, err)
		stop()
		os.Exit(exitCode(err))
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		printUsage(stderr)
		return errUsage
	}

	name := strings.ToLower(strings.TrimSpace(args[0]))
	if name == "help" || name == "-h" || name == "--help" {
		printUsage(stdout)
		return nil
	}
	cmd, ok := commands[name]
	if !ok {
		printUsage(stderr)
		return fmt.Errorf("%w: unknown command %q", errUsage, name)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: stderr})
	logging.SetDefault(logger)
	defer func() {
		_ = logger.Sync()
	}()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("build app: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.Close(closeCtx); err != nil {
			logger.Warn("close app", "error", err)
		}
	}()

	ctx, span := startCommandSpan(ctx, name)
	defer span.End()

	return cmd.run(ctx, a, args[1:], stdout)
}

func printError(w io.Writer, err error) {
	if apiErr, ok := predictorapi.AsError(err); ok && apiErr.Status > 0 {
		fmt.Fprintf(w, "error: %s (status %d)\n", apiErr.Message, apiErr.Status)
		return
	}
	fmt.Fprintf(w, "error: %v\n", err)
}

func exitCode(err error) int {
	if isUsage(err) {
		return 2
	}
	return 1
}

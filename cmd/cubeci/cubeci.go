package main

import (
	"log/slog"
	"os"

	"github.com/gridcraft/cubeci/internal"
	"github.com/gridcraft/cubeci/internal/cli"
	"github.com/gridcraft/cubeci/internal/target"
)

// The entry point for the cubeci orchestrator.
//
// Initializes logging, displays startup information, and executes the root
// command. The process exit status mirrors the outcome: zero when every
// target completed, the failing step's exit status when a command failed,
// and 1 for configuration or graph errors.
func main() {
	slog.SetDefault(logger())

	slog.Debug("build", "version", internal.VersionString())

	slog.Debug("cubeci is running",
		"pid", os.Getpid(),
		"cwd", cwd(),
		"args", os.Args,
	)

	if err := cli.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(target.ExitStatus(err))
	}
}

// Creates a logger seeded from build-time linker flags.
//
// The logger is reconfigured after flag parsing via cli.Execute.
func logger() *slog.Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(),
	})
	return slog.New(handler).WithGroup(internal.Name)
}

// Returns the log level derived from build-time linker flags.
func logLevel() slog.Level {
	if internal.IsDebug() {
		return slog.LevelDebug
	}
	if internal.IsQuiet() {
		return slog.LevelWarn
	}
	return slog.LevelInfo
}

// Returns the current working directory or "(unknown)".
func cwd() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "(unknown)"
	}
	return cwd
}

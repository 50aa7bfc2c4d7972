package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/gridcraft/cubeci/internal"
	"github.com/gridcraft/cubeci/internal/config"
)

// Represents the root command for the cubeci orchestrator.
var RootCmd struct {
	Quiet       bool       `short:"q" help:"Suppress informational output."`
	Verbose     bool       `short:"v" help:"Enable verbose output."`
	Debug       bool       `short:"d" help:"Enable debug output."`
	Config      string     `short:"c" help:"Override the configuration file path." placeholder:"PATH" type:"path"`
	Environment string     `short:"e" help:"Override the environment tag." env:"CUBECI_ENVIRONMENT" placeholder:"TAG"`
	DryRun      bool       `short:"n" help:"Print commands instead of executing them."`
	Run         RunCmd     `cmd:"" help:"Execute a target and its prerequisites."`
	Targets     TargetsCmd `cmd:"" help:"List the registered targets."`
	Matrix      MatrixCmd  `cmd:"" help:"Print the build matrix combinations."`
	Version     VersionCmd `cmd:"" help:"Show version information."`
}

// Parses arguments, configures logging, and runs the selected subcommand.
func Execute() error {

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	kongCtx := kong.Parse(&RootCmd,
		kong.Name(internal.Name),
		kong.Description("Build and test orchestrator for the data-cube project.\n\nComputes the interpreter/library build matrix and drives the declared targets."),
		kong.UsageOnError(),
		kong.Vars{
			"version": internal.VersionString(),
		},
		kong.BindTo(ctx, (*context.Context)(nil)),
	)

	configureLogger()

	return kongCtx.Run()
}

// Configures the global logger based on CLI flags.
//
// Flags override build-time defaults set via linker flags.
func configureLogger() {
	debug := RootCmd.Debug || internal.IsDebug()
	quiet := RootCmd.Quiet || internal.IsQuiet()
	verbose := RootCmd.Verbose || internal.IsVerbose()

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	} else if quiet {
		level = slog.LevelWarn
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: verbose,
	})
	slog.SetDefault(slog.New(handler))
}

// Loads the configuration, applying CLI and environment overrides.
//
// An explicit --config path must exist; otherwise the standard search path
// applies and missing files fall back to defaults.
func loadConfig() (config.Config, error) {
	var cfg config.Config
	var err error

	if RootCmd.Config != "" {
		cfg, err = config.Load(RootCmd.Config)
	} else {
		var workdir string
		workdir, err = os.Getwd()
		if err != nil {
			return config.Config{}, err
		}
		cfg, err = config.Locate(workdir)
	}
	if err != nil {
		return config.Config{}, err
	}

	if RootCmd.Environment != "" {
		cfg.Environment = RootCmd.Environment
	}

	return cfg, nil
}

package cli

import (
	"context"
	"log/slog"

	"github.com/gridcraft/cubeci/internal/config"
	"github.com/gridcraft/cubeci/internal/invoke"
	"github.com/gridcraft/cubeci/internal/target"
)

// Represents the 'cubeci run' command.
type RunCmd struct {
	Target string `arg:"" help:"Name of the target to execute."`
}

// Executes the run command.
//
// Builds the target registry from configuration, then dispatches the
// requested target. The prerequisite graph is validated before any external
// command runs.
func (c *RunCmd) Run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	registry, err := config.Targets(cfg)
	if err != nil {
		return err
	}

	slog.Debug("dispatching",
		"target", c.Target,
		"environment", cfg.Environment,
		"dry-run", RootCmd.DryRun,
	)

	dispatcher := target.NewDispatcher(registry, &invoke.ExecRunner{}, target.Options{
		Shell:  cfg.Shell,
		DryRun: RootCmd.DryRun,
	})

	return dispatcher.Run(ctx, c.Target)
}

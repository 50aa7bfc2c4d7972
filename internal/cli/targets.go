package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/gridcraft/cubeci/internal/config"
)

// Represents the 'cubeci targets' command.
type TargetsCmd struct{}

// Executes the targets command, listing every registered target with its
// description and prerequisites in registration order.
func (c *TargetsCmd) Run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	registry, err := config.Targets(cfg)
	if err != nil {
		return err
	}

	for _, name := range registry.Names() {
		def, _ := registry.Get(name)
		line := fmt.Sprintf("%-18s %s", def.Name, def.Desc)
		if len(def.Prereqs) > 0 {
			line += fmt.Sprintf(" (after: %s)", strings.Join(def.Prereqs, ", "))
		}
		fmt.Println(line)
	}
	return nil
}

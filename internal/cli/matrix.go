package cli

import (
	"context"
	"fmt"

	"github.com/gridcraft/cubeci/internal/matrix"
)

// Represents the 'cubeci matrix' command.
type MatrixCmd struct {
	Latest bool `help:"Print only the newest combination."`
}

// Executes the matrix command.
//
// Prints one combination tag per line in matrix order: interpreter version
// outer, library version inner. The output keys per-environment lock files.
func (c *MatrixCmd) Run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if c.Latest {
		combo, err := matrix.Newest(cfg.InterpreterVersions, cfg.LibraryVersions)
		if err != nil {
			return err
		}
		fmt.Println(combo.Tag())
		return nil
	}

	combos, err := matrix.Generate(cfg.InterpreterVersions, cfg.LibraryVersions)
	if err != nil {
		return err
	}

	for _, combo := range combos {
		fmt.Println(combo.Tag())
	}
	return nil
}

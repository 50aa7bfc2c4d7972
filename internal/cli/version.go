package cli

import (
	"context"
	"fmt"

	"github.com/gridcraft/cubeci/internal"
)

// Represents the 'cubeci version' command.
type VersionCmd struct{}

// Executes the version command.
func (c *VersionCmd) Run(ctx context.Context) error {
	fmt.Println(internal.VersionString())
	return nil
}

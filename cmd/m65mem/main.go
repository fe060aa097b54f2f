// m65mem is a developer tool for the MEGA65/C65 memory decoding and mapping
// core: it prints the physical region table and runs self-checks.
package main

import (
	"context"
	"os"

	"github.com/halvorsen/m65mem/internal/cli"
	"github.com/halvorsen/m65mem/internal/cli/cmd"
)

func main() {
	ctx := context.Background()

	commands := []cli.Command{
		cmd.Regions(),
		cmd.Selftest(),
	}

	runner := cli.New(ctx).
		WithLogger(os.Stderr).
		WithCommands(commands).
		WithHelp(cmd.Help(commands))

	os.Exit(runner.Execute(os.Args[1:]))
}

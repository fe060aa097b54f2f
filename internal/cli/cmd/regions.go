package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/halvorsen/m65mem/internal/cli"
	"github.com/halvorsen/m65mem/internal/log"
	"github.com/halvorsen/m65mem/internal/memory"
)

func Regions() cli.Command {
	return &regions{}
}

type regions struct{}

var _ cli.Command = (*regions)(nil)

func (regions) Description() string {
	return "print the physical region table"
}

func (regions) Usage(out io.Writer) error {
	_, err := fmt.Fprintln(out, `regions

Prints every region in the physical region table, in address order.`)

	return err
}

func (regions) FlagSet() *cli.FlagSet {
	return flag.NewFlagSet("regions", flag.ExitOnError)
}

func (regions) Run(_ context.Context, _ []string, out io.Writer, logger *log.Logger) int {
	core := memory.New(memory.WithLogger(logger))

	if err := core.SanityCheckRegions(); err != nil {
		logger.Error("region table failed sanity check", "err", err)
		return 1
	}

	for _, line := range core.DescribeRegions() {
		fmt.Fprintln(out, line)
	}

	return 0
}

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

func Selftest() cli.Command {
	return &selftest{}
}

type selftest struct{}

var _ cli.Command = (*selftest)(nil)

func (selftest) Description() string {
	return "run a handful of boundary-scenario checks against a fresh core"
}

func (selftest) Usage(out io.Writer) error {
	_, err := fmt.Fprintln(out, `selftest

Exercises the region table and a few representative decode paths against a
freshly constructed core, printing PASS or FAIL for each check.`)

	return err
}

func (selftest) FlagSet() *cli.FlagSet {
	return flag.NewFlagSet("selftest", flag.ExitOnError)
}

type check struct {
	name string
	run  func(core *memory.Core) error
}

var checks = []check{
	{
		name: "region table is well-formed",
		run: func(core *memory.Core) error {
			return core.SanityCheckRegions()
		},
	},
	{
		name: "reset state reads zero-filled ram",
		run: func(core *memory.Core) error {
			if got := core.CPURead(0x3000); got != 0 {
				return fmt.Errorf("0x3000: got %#02x, want 0x00", got)
			}

			return nil
		},
	},
	{
		name: "qbyte write round-trips little-endian",
		run: func(core *memory.Core) error {
			core.CPUWriteQByte(0x0200, 0xAABBCCDD)

			if got := core.CPUReadQByte(0x0200); got != 0xAABBCCDD {
				return fmt.Errorf("got %#08x, want 0xaabbccdd", got)
			}

			return nil
		},
	},
	{
		name: "map window redirects a slot",
		run: func(core *memory.Core) error {
			core.OnMapOpcode(0x00, 0x14, 0x00, 0x00)
			core.ChannelWrite(memory.Debugger, 0x40202, 0x64)

			if got := core.CPURead(0x0202); got != 0x64 {
				return fmt.Errorf("got %#02x, want 0x64", got)
			}

			return nil
		},
	},
	{
		name: "eom clears interrupt inhibit",
		run: func(core *memory.Core) error {
			core.OnMapOpcode(0, 0, 0, 0)

			if !core.CPUInhibitInterrupts() {
				return fmt.Errorf("inhibit not set after map")
			}

			core.OnEomOpcode()

			if core.CPUInhibitInterrupts() {
				return fmt.Errorf("inhibit still set after eom")
			}

			return nil
		},
	},
}

func (selftest) Run(_ context.Context, _ []string, out io.Writer, logger *log.Logger) int {
	failed := 0

	for _, c := range checks {
		core := memory.New(memory.WithLogger(logger))

		if err := c.run(core); err != nil {
			fmt.Fprintf(out, "FAIL  %s: %s\n", c.name, err)
			failed++
		} else {
			fmt.Fprintf(out, "PASS  %s\n", c.name)
		}
	}

	if failed > 0 {
		fmt.Fprintf(out, "\n%d/%d checks failed\n", failed, len(checks))
		return 1
	}

	fmt.Fprintf(out, "\nall %d checks passed\n", len(checks))

	return 0
}

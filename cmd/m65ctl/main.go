// m65ctl is a debugger-facing command-line front end for the memory core,
// built with cobra for a richer subcommand surface than the plain-flag
// m65mem tool.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/halvorsen/m65mem/internal/memory"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "m65ctl",
		Short: "Inspect and drive a MEGA65/C65 memory core",
	}

	rootCmd.AddCommand(regionsCmd(), peekCmd(), pokeCmd(), mapCmd(), snapshotCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func regionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "Print the physical region table",
		RunE: func(cmd *cobra.Command, args []string) error {
			core := memory.New()

			if err := core.SanityCheckRegions(); err != nil {
				return err
			}

			for _, line := range core.DescribeRegions() {
				fmt.Println(line)
			}

			return nil
		},
	}
}

func peekCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "peek <physaddr>",
		Short: "Read a byte at a 28-bit physical address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := parseUint(args[0], 28)
			if err != nil {
				return err
			}

			core := memory.New()
			data := core.ChannelRead(memory.Debugger, memory.PhysAddr(addr))
			fmt.Printf("%s: %#02x\n", memory.PhysAddr(addr), data)

			return nil
		},
	}
}

func pokeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "poke <physaddr> <byte>",
		Short: "Write a byte at a 28-bit physical address and read it back",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := parseUint(args[0], 28)
			if err != nil {
				return err
			}

			data, err := parseUint(args[1], 8)
			if err != nil {
				return err
			}

			core := memory.New()
			core.ChannelWrite(memory.Debugger, memory.PhysAddr(addr), byte(data))
			got := core.ChannelRead(memory.Debugger, memory.PhysAddr(addr))
			fmt.Printf("%s: wrote %#02x, read back %#02x\n", memory.PhysAddr(addr), byte(data), got)

			return nil
		},
	}
}

func mapCmd() *cobra.Command {
	var slot uint32

	cmd := &cobra.Command{
		Use:   "map <a> <x> <y> <z>",
		Short: "Apply a MAP opcode register snapshot and report the resulting decode of one slot",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			regs := make([]byte, 4)

			for i, s := range args {
				v, err := parseUint(s, 8)
				if err != nil {
					return err
				}

				regs[i] = byte(v)
			}

			core := memory.New()
			core.OnMapOpcode(regs[0], regs[1], regs[2], regs[3])

			fmt.Printf("cpu_inhibit_interrupts: %t\n", core.CPUInhibitInterrupts())
			fmt.Printf("slot %#02x now reads from physical %s\n", slot, core.SlotPhysAddr(memory.Slot(slot)))

			return nil
		},
	}
	cmd.Flags().Uint32Var(&slot, "slot", 0x00, "logical slot to report after the MAP")

	return cmd
}

func snapshotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot",
		Short: "Demonstrate a Snapshot/Restore round trip on a fresh core",
		RunE: func(cmd *cobra.Command, args []string) error {
			core := memory.New()

			core.CPUWrite(0x0300, 0x9A)
			snap := core.Snapshot()

			core.CPUWrite(0x0300, 0x00)

			before := core.CPURead(0x0300)

			core.Restore(snap)

			after := core.CPURead(0x0300)

			fmt.Printf("before restore: %#02x, after restore: %#02x\n", before, after)

			if after != 0x9A {
				return fmt.Errorf("snapshot round trip failed: got %#02x, want 0x9a", after)
			}

			return nil
		},
	}
}

func parseUint(s string, bits int) (uint64, error) {
	v, err := strconv.ParseUint(s, 0, bits)
	if err != nil {
		return 0, fmt.Errorf("bad value %q: %w", s, err)
	}

	return v, nil
}

// Package tty provides a terminal-driven debugger console for a memory.Core.
package tty

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/halvorsen/m65mem/internal/memory"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Console is a serial debugger console driven over Unix terminal I/O[^1]. It
// reads line-oriented commands and dispatches them against a memory.Core.
// peek and poke go through the DEBUGGER bus-master channel and leave
// CPU-side decode state alone; map and eom run the MAP/EOM opcode handlers,
// which change the CPU-side mapping state and invalidate CPU slots.
//
// [1]: See: tty(4), termios(4).
type Console struct {
	in    *os.File
	out   *term.Terminal
	fd    int
	state *term.State
}

// ErrNoTTY is returned if standard input is not a terminal. In this case,
// asynchronous I/O is not supported by the console.
var ErrNoTTY error = errors.New("console: not a TTY")

// errQuit unwinds the REPL loop on an explicit quit command.
var errQuit = errors.New("console: quit")

// ConsoleContext creates a Console bound to core, reading commands from the
// standard streams. Calling the returned cancel restores the terminal state
// and stops the REPL goroutine.
func ConsoleContext(parent context.Context, core *memory.Core) (
	context.Context, *Console, context.CancelFunc,
) {
	ctx, cause := context.WithCancelCause(parent)

	console, err := NewConsole(os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		cause(err)

		return ctx, console, func() { cause(err) }
	}

	go console.repl(ctx, core, cause)

	return ctx, console, console.Restore
}

// NewConsole creates a Console reading from sin. If sin is not a terminal,
// ErrNoTTY is returned. Callers are responsible for calling [Restore] to
// return the terminal to its initial state.
func NewConsole(sin, sout, serr *os.File) (*Console, error) {
	fd := int(sin.Fd())

	if !term.IsTerminal(fd) {
		return nil, ErrNoTTY
	}

	saved, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoTTY, err)
	}

	cons := &Console{
		fd:    fd,
		in:    sin,
		out:   term.NewTerminal(sin, "(m65) "),
		state: saved,
	}

	if err := cons.setTerminalParams(1, 0); err != nil {
		return nil, err
	}

	return cons, nil
}

// Restore returns the terminal to its initial state and cancels any
// in-progress read.
func (c *Console) Restore() {
	_ = os.Stdin.SetReadDeadline(time.Now())
	_ = term.Restore(c.fd, c.state)
}

func (c *Console) setTerminalParams(vmin, vtime byte) error {
	_ = syscall.SetNonblock(c.fd, true)

	termIO, err := unix.IoctlGetTermios(c.fd, getTermiosIoctl)
	if err != nil {
		return err
	}

	termIO.Cc[unix.VMIN] = vmin
	termIO.Cc[unix.VTIME] = vtime

	if err := unix.IoctlSetTermios(c.fd, setTermiosIoctl, termIO); err != nil {
		return err
	}

	_ = os.Stdin.SetReadDeadline(time.Time{})

	return nil
}

// repl reads command lines from the terminal and dispatches them against
// core until the context is cancelled or the user quits.
func (c *Console) repl(ctx context.Context, core *memory.Core, cancel context.CancelCauseFunc) {
	fmt.Fprintln(c.out, "m65mem debugger. Commands: peek, poke, regions, map, eom, quit.")

	for { // ever and ever
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := c.out.ReadLine()
		if err != nil {
			cancel(err)
			return
		}

		if err := c.dispatch(core, line); err != nil {
			if errors.Is(err, errQuit) {
				cancel(err)
				return
			}

			fmt.Fprintf(c.out, "error: %s\r\n", err)
		}
	}
}

func (c *Console) dispatch(core *memory.Core, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "peek":
		return c.cmdPeek(core, fields[1:])
	case "poke":
		return c.cmdPoke(core, fields[1:])
	case "regions":
		return c.cmdRegions(core)
	case "map":
		return c.cmdMap(core, fields[1:])
	case "eom":
		core.OnEomOpcode()
		return nil
	case "quit", "exit":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q", fields[0])
	}
}

func (c *Console) cmdPeek(core *memory.Core, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: peek <physaddr>")
	}

	addr, err := parseAddr(args[0])
	if err != nil {
		return err
	}

	data := core.ChannelRead(memory.Debugger, addr)
	fmt.Fprintf(c.out, "%s: %#02x\r\n", addr, data)

	return nil
}

func (c *Console) cmdPoke(core *memory.Core, args []string) error {
	if len(args) != 2 {
		return errors.New("usage: poke <physaddr> <byte>")
	}

	addr, err := parseAddr(args[0])
	if err != nil {
		return err
	}

	data, err := strconv.ParseUint(args[1], 0, 8)
	if err != nil {
		return fmt.Errorf("bad byte %q: %w", args[1], err)
	}

	core.ChannelWrite(memory.Debugger, addr, byte(data))

	return nil
}

func (c *Console) cmdRegions(core *memory.Core) error {
	for _, line := range core.DescribeRegions() {
		fmt.Fprintln(c.out, line)
	}

	return nil
}

func (c *Console) cmdMap(core *memory.Core, args []string) error {
	if len(args) != 4 {
		return errors.New("usage: map <a> <x> <y> <z>")
	}

	regs := make([]byte, 4)

	for i, s := range args {
		v, err := strconv.ParseUint(s, 0, 8)
		if err != nil {
			return fmt.Errorf("bad register %q: %w", s, err)
		}

		regs[i] = byte(v)
	}

	core.OnMapOpcode(regs[0], regs[1], regs[2], regs[3])

	return nil
}

func parseAddr(s string) (memory.PhysAddr, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("bad address %q: %w", s, err)
	}

	return memory.PhysAddr(v), nil
}

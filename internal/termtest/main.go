// Termtest is a testing tool for Unix terminal I/O. Lacking simple PTY support, running this tool
// manually is easier than writing automated tests.
package main

import (
	"context"
	"time"

	"github.com/halvorsen/m65mem/internal/log"
	"github.com/halvorsen/m65mem/internal/memory"
	"github.com/halvorsen/m65mem/internal/tty"
)

var logger = log.DefaultLogger()

func main() {
	ctx := context.Background()
	core := memory.New(memory.WithLogger(logger))

	ctx, _, cancel := tty.ConsoleContext(ctx, core)
	defer cancel()

	select {
	case <-ctx.Done():
		logger.Debug("cause", context.Cause(ctx))
	default:
	}

	logger.Info("Debugger console ready. Type a command, or 'quit' to exit.")

	timeout := time.After(5 * time.Minute)

	select {
	case <-timeout:
		cancel()
	case <-ctx.Done():
		if ctx.Err() != nil {
			logger.Error(context.Cause(ctx).Error())
		} else {
			logger.Info("Done")
		}
	}
}

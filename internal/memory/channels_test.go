package memory_test

import (
	"testing"

	"github.com/halvorsen/m65mem/internal/memory"
)

func TestChannelsAreIndependentLanes(t *testing.T) {
	core := memory.New()

	core.ChannelWrite(memory.DMASrc, 0x0100, 0x11)
	core.ChannelWrite(memory.DMADst, 0x0200, 0x22)

	if got := core.ChannelRead(memory.DMASrc, 0x0100); got != 0x11 {
		t.Errorf("DMASrc: got %#02x, want 0x11", got)
	}

	if got := core.ChannelRead(memory.DMADst, 0x0200); got != 0x22 {
		t.Errorf("DMADst: got %#02x, want 0x22", got)
	}
}

func TestChannelsBypassCPUInvalidation(t *testing.T) {
	core := memory.New()

	core.ChannelWrite(memory.Debugger, 0x0300, 0x33)

	// CPU-side invalidation must not disturb the channel's own cache or
	// backing data; a channel is only reset by InvalidateChannels.
	core.InvalidateMapperAll()

	if got := core.ChannelRead(memory.Debugger, 0x0300); got != 0x33 {
		t.Errorf("channel data lost across cpu invalidation: got %#02x, want 0x33", got)
	}
}

func TestChannelCacheRespectsPageBoundary(t *testing.T) {
	core := memory.New()

	core.ChannelWrite(memory.Debugger, 0x00FF, 0xAA)
	core.ChannelWrite(memory.Debugger, 0x0100, 0xBB)

	if got := core.ChannelRead(memory.Debugger, 0x00FF); got != 0xAA {
		t.Errorf("addr 0x00FF: got %#02x, want 0xAA", got)
	}

	if got := core.ChannelRead(memory.Debugger, 0x0100); got != 0xBB {
		t.Errorf("addr 0x0100: got %#02x, want 0xBB", got)
	}
}

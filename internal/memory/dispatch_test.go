package memory_test

import (
	"testing"

	"github.com/halvorsen/m65mem/internal/memory"
)

func TestRoundTripRAM(t *testing.T) {
	core := memory.New()

	for _, addr := range []memory.Addr16{0x0200, 0x3000, 0x5FFF} {
		core.CPUWrite(addr, 0x42)

		if got := core.CPURead(addr); got != 0x42 {
			t.Errorf("addr %s: read %#02x, want 0x42", addr, got)
		}
	}
}

func TestColourRAMDualWrite(t *testing.T) {
	core := memory.New()

	core.ChannelWrite(memory.Debugger, 0x1F800+5, 0x0A)

	if got := core.ChannelRead(memory.Debugger, 0x1F800+5); got != 0x0A {
		t.Errorf("main ram shadow: got %#02x, want 0x0A", got)
	}
}

func TestQByteRoundTrip(t *testing.T) {
	core := memory.New()

	core.CPUWriteQByte(0x00FE, 0x11223344)

	if got := core.CPURead(0x00FE); got != 0x44 {
		t.Errorf("addr 0x00FE: got %#02x, want 0x44", got)
	}

	if got := core.CPURead(0x00FF); got != 0x33 {
		t.Errorf("addr 0x00FF: got %#02x, want 0x33", got)
	}

	if got := core.CPURead(0x0100); got != 0x22 {
		t.Errorf("addr 0x0100: got %#02x, want 0x22", got)
	}

	if got := core.CPURead(0x0101); got != 0x11 {
		t.Errorf("addr 0x0101: got %#02x, want 0x11", got)
	}

	if got := core.CPUReadQByte(0x00FE); got != 0x11223344 {
		t.Errorf("qbyte read: got %#08x, want 0x11223344", got)
	}
}

func TestUndecodedReadSilent(t *testing.T) {
	core := memory.New(memory.WithSkipPolicy(memory.SkipSilent))

	got := core.ChannelRead(memory.Debugger, 0x0100000)
	if got != 0xFF {
		t.Errorf("undecoded read: got %#02x, want 0xFF", got)
	}
}

func TestRomProtectSwallowsWrites(t *testing.T) {
	core := memory.New()
	core.SetHypervisor(true)
	core.SetROMProtect(true)
	core.SetHypervisor(false)

	// The channel lane exercises the rom shadow directly by physical
	// address, independent of any logical-decoder mapping.
	core.ChannelWrite(memory.CPULinAddr, 0x20100, 0x99)

	if got := core.ChannelRead(memory.CPULinAddr, 0x20100); got == 0x99 {
		t.Errorf("write under rom_protect should have been swallowed, got %#02x", got)
	}
}

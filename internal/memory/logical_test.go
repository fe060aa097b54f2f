package memory_test

import (
	"testing"

	"github.com/halvorsen/m65mem/internal/memory"
)

func TestC64ResetLayout(t *testing.T) {
	core := memory.New()

	core.CPUWrite(0x0000, 0x2F)
	core.CPUWrite(0x0001, 0x37)

	// effective = 0x37 | ^0x2F, masked to 3 bits = 7 -> IO | KERNAL | BASIC
	// means 0xA000 reads BASIC ROM and 0xD000 routes to legacy I/O.
	if got := core.CPURead(0xA000); got != core.CPURead(0xA000) {
		t.Fatalf("decode idempotence failed")
	}

	// 0xA000 reads through to main_ram+0x2A000 (BASIC window, write-through
	// to RAM).
	core.ChannelWrite(memory.Debugger, 0x2A010, 0x77)
	if got := core.CPURead(0xA010); got != 0x77 {
		t.Errorf("0xA010 should read through BASIC rom shadow, got %#02x", got)
	}

	core.CPUWrite(0xA010, 0x55)
	if got := core.ChannelRead(memory.Debugger, 0xA010); got != 0x55 {
		t.Errorf("write at 0xA010 should write-through to ram at physical 0xA010, got %#02x", got)
	}

	if got := core.ChannelRead(memory.Debugger, 0x2A010); got != 0x77 {
		t.Errorf("rom shadow at 0x2A010 must be unaffected by the write-through, got %#02x", got)
	}
}

func TestMapWindowFormulas(t *testing.T) {
	core := memory.New()

	// map_offset_lo = (0<<8)|((0x14&0x0F)<<16) = 0x040000
	// map_mask = (0&0xF0)|(0x14>>4) = 0x01 -> window 0 (slots 0x00-0x1F)
	// routed through map_offset_lo instead of legacy RAM identity mapping.
	core.OnMapOpcode(0x00, 0x14, 0x00, 0x00)

	core.ChannelWrite(memory.Debugger, 0x40202, 0x64)

	if got := core.CPURead(0x0202); got != 0x64 {
		t.Errorf("mapped window read: got %#02x, want 0x64", got)
	}
}

func TestMapThenEOMInterruptInhibit(t *testing.T) {
	core := memory.New()

	if core.CPUInhibitInterrupts() {
		t.Fatalf("inhibit should start false")
	}

	core.OnMapOpcode(0, 0, 0, 0)

	if !core.CPUInhibitInterrupts() {
		t.Fatalf("inhibit should be set after MAP")
	}

	core.OnEomOpcode()

	if core.CPUInhibitInterrupts() {
		t.Fatalf("inhibit should clear after EOM")
	}

	core.OnEomOpcode()

	if core.CPUInhibitInterrupts() {
		t.Fatalf("second EOM should not re-toggle inhibit")
	}
}

func TestVIC3ROMWindowHypervisorOverride(t *testing.T) {
	core := memory.New()

	core.SetVIC3ROMMapping(0x08) // enable 0x8000 window

	core.ChannelWrite(memory.Debugger, 0x38000, 0xAB)

	if got := core.CPURead(0x8000); got != 0xAB {
		t.Errorf("0x8000 should read rom shadow at 0x38000, got %#02x", got)
	}

	core.SetHypervisor(true)

	core.ChannelWrite(memory.Debugger, 0x8000, 0xCD)
	if got := core.CPURead(0x8000); got != 0xCD {
		t.Errorf("in hypervisor mode, 0x8000 should ignore the rom mask, got %#02x", got)
	}

	core.SetHypervisor(false)

	if got := core.CPURead(0x8000); got != 0xAB {
		t.Errorf("leaving hypervisor mode should restore the rom mask view, got %#02x", got)
	}
}

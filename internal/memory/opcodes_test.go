package memory_test

import (
	"testing"

	"github.com/halvorsen/m65mem/internal/memory"
)

func TestEOMNoopWithoutPriorMap(t *testing.T) {
	core := memory.New()

	core.OnEomOpcode()

	if core.CPUInhibitInterrupts() {
		t.Fatalf("EOM without a prior MAP must not set the inhibit flag")
	}
}

func TestZeroPageForceFastToggle(t *testing.T) {
	core := memory.New()

	if core.ForceFast() {
		t.Fatalf("force_fast should start false")
	}

	core.CPUWrite(0x0000, 65) // (65 & 0xFE) == 64, bit 0 set

	if !core.ForceFast() {
		t.Fatalf("writing 65 to port 0 should set force_fast")
	}

	core.CPUWrite(0x0000, 64) // bit 0 clear

	if core.ForceFast() {
		t.Fatalf("writing 64 to port 0 should clear force_fast")
	}
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	core := memory.New()

	core.CPUWrite(0x0300, 0x9A)
	snap := core.Snapshot()

	core.CPUWrite(0x0300, 0x00)

	if got := core.CPURead(0x0300); got == 0x9A {
		t.Fatalf("test setup broken: byte unexpectedly unchanged")
	}

	core.Restore(snap)

	if got := core.CPURead(0x0300); got != 0x9A {
		t.Errorf("restored byte: got %#02x, want 0x9A", got)
	}
}

package memory_test

import (
	"testing"

	"github.com/halvorsen/m65mem/internal/memory"
)

func TestRegionTableSanity(t *testing.T) {
	core := memory.New()

	if err := core.SanityCheckRegions(); err != nil {
		t.Fatalf("region table: %s", err)
	}
}

func TestFindRegionBidirectional(t *testing.T) {
	table := []memory.Region{
		{Begin: 0x000, End: 0x0FF},
		{Begin: 0x100, End: 0x1FF},
		{Begin: 0x200, End: 0x2FF},
	}

	r, hint := memory.FindRegion(table, 0x250, 0)
	if !r.Contains(0x250) {
		t.Fatalf("region does not contain requested page")
	}

	if hint != 2 {
		t.Fatalf("hint = %d, want 2", hint)
	}

	// Walking backward from the hint must also work.
	r, hint = memory.FindRegion(table, 0x050, hint)
	if !r.Contains(0x050) {
		t.Fatalf("region does not contain requested page after backward walk")
	}

	if hint != 0 {
		t.Fatalf("hint = %d, want 0", hint)
	}
}

func TestSanityCheckRejectsMisalignedTable(t *testing.T) {
	bad := []memory.Region{
		{Begin: 0x000, End: 0x0FE}, // end not page aligned
	}

	if err := memory.SanityCheck(bad); err == nil {
		t.Fatalf("expected error for misaligned region")
	}
}

func TestSanityCheckRejectsGap(t *testing.T) {
	bad := []memory.Region{
		{Begin: 0x000, End: 0x0FF},
		{Begin: 0x200, End: 0xFFFFFFF}, // gap between 0x100 and 0x1FF
	}

	if err := memory.SanityCheck(bad); err == nil {
		t.Fatalf("expected error for non-contiguous region table")
	}
}

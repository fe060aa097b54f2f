package memory

// types.go defines the basic data types the memory core operates on.

import "fmt"

// PhysAddr is a byte offset into the 28-bit flat physical address space.
type PhysAddr uint32

func (a PhysAddr) String() string {
	return fmt.Sprintf("%0#8x", uint32(a))
}

// Page returns the 256-byte-aligned page containing the address.
func (a PhysAddr) Page() PhysAddr {
	return a &^ 0xFF
}

// Addr16 is a 16-bit CPU logical address.
type Addr16 uint16

func (a Addr16) String() string {
	return fmt.Sprintf("%0#4x", uint16(a))
}

// Slot is the index of a 256-byte page of the 16-bit logical address space.
// The slot index of address A is A >> 8.
type Slot uint16

func SlotOf(addr Addr16) Slot {
	return Slot(addr >> 8)
}

// Page4K returns the 4 KiB page containing the slot; several mapping
// mechanisms operate at 4 KiB granularity even though MAP windows are 8 KiB.
func (s Slot) Page4K() uint8 {
	return uint8(s >> 4)
}

// Window8K returns the 8 KiB MAP window index (0-7) containing the slot.
func (s Slot) Window8K() uint8 {
	return uint8(s >> 5)
}

const (
	// NumSlots is the number of 256-byte CPU logical slots.
	NumSlots = 256

	// AuxSlotBase is added to a channel index to form the target slot
	// number (channel + 0x100) that a channel passes to the Linear Decoder.
	// Channel entries are kept in their own array, not in the CPU slot
	// table.
	AuxSlotBase Slot = 0x100
)

// Policy tags a physical region with the access semantics the Linear
// Decoder applies when materialising a slot entry that falls inside it.
type Policy uint8

const (
	// Normal regions dispatch straight to their backing buffers or
	// callbacks with no further gating.
	Normal Policy = iota

	// Rom regions honor rom_protect: writes are swallowed while the ROM
	// shadow is write-protected.
	Rom

	// Hypervisor regions are visible only while in_hypervisor is set;
	// otherwise reads return 0xFF and writes are swallowed.
	Hypervisor

	// IoRegion regions route through the I/O-region trampoline. Reserved:
	// no materialised region currently uses it.
	IoRegion
)

// ChannelID identifies one of the five bus-master access lanes that bypass
// the CPU slot table and address physical memory directly by linear
// address.
type ChannelID uint8

const (
	DMAList ChannelID = iota
	DMASrc
	DMADst
	CPULinAddr
	Debugger

	numChannels = int(Debugger) + 1
)

// SkipPolicy governs how the core reacts to an access landing on an
// undecoded physical region.
type SkipPolicy uint8

const (
	// SkipExit treats an undecoded access as a structural error: the core
	// panics with a *RegionError rather than silently returning a
	// placeholder byte. Intended for debug builds only.
	SkipExit SkipPolicy = iota

	// SkipWarnOnce logs the first undecoded access and then behaves as
	// SkipSilent for the rest of the run.
	SkipWarnOnce

	// SkipWarnAlways logs every undecoded access.
	SkipWarnAlways

	// SkipSilent never logs; reads return 0xFF, writes vanish.
	SkipSilent
)

// Constant bytes used to initialize and to source undecoded/ignored
// accesses, matching the original BRAM_INIT_PATTERN and
// MEMORY_UNDECODED_PATTERN conventions.
const (
	bramInitPattern      byte = 0x00
	memoryUndecodedByte  byte = 0xFF
	whiteHoleConstantFF  byte = 0xFF
	whiteHoleConstant00  byte = 0x00
)

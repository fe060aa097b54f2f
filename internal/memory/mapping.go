package memory

// mapping.go holds the process-wide (here: per-Core) mapping state and the
// mutators that update it, per §3 and §4.5.

// mappingState is mutated only by the designated entry points: the MAP/EOM
// opcode handlers, the zero-page (CPU I/O port) writer, the VIC-III
// register writer, and hypervisor-mode transitions.
type mappingState struct {
	mapOffsetLo, mapOffsetHi uint32 // 20-bit physical offsets, low/high 32 KiB windows
	mapMBLo, mapMBHi         uint32 // megabyte-slice base addresses, multiples of 1 MiB
	mapMask                  uint8  // one bit per 8 KiB block

	cpuIOPort [2]byte // data direction register [0], data register [1]

	c64MemLayout uint8 // derived from (io_port[1] | ^io_port[0]) & 7

	vic3ROMMask uint8 // cached bits 0x08/0x10/0x20/0x80 of VIC-III $D030

	romProtect   bool
	inHypervisor bool

	legacyIOIsMapped bool
	forceFast        bool

	// vicIOMode selects which of the four legacy I/O trampoline tables is
	// active, required by the legacy I/O trampoline's
	// [vic_iomode][slot&0x0F] indexing (§4.3 rule 3, §4.6).
	vicIOMode uint8

	cpuInhibitInterrupts bool
	mapArmed             bool // true once a MAP has executed without a following EOM

	// cpuRMWOldData is valid only for the duration of a callback-based
	// read-modify-write; rmwActive is the sentinel.
	cpuRMWOldData byte
	rmwActive     bool
}

// c64LayoutTable is the 8-entry table from §4.5, indexed by
// (cpu_io_port[1] | ^cpu_io_port[0]) & 7.
var c64LayoutTable = [8]uint8{
	0: c64D000RAM,
	1: c64D000Chargen,
	2: c64D000Chargen | c64D000Kernal,
	3: c64D000Chargen | c64D000Kernal | c64D000Basic,
	4: c64D000RAM,
	5: c64D000IO,
	6: c64D000IO | c64D000Kernal,
	7: c64D000IO | c64D000Kernal | c64D000Basic,
}

const (
	c64D000RAM     uint8 = 0
	c64D000Chargen uint8 = 1 << 0
	c64D000Kernal  uint8 = 1 << 1
	c64D000Basic   uint8 = 1 << 2
	c64D000IO      uint8 = 1 << 3
)

// UpdateCPUIOPort recomputes c64MemLayout from the current I/O port values.
// When the layout changed and updateMapper is set, it invalidates the BASIC
// (0xA0-0xBF), 0xD000 (0xD0-0xDF), and KERNAL (0xE0-0xFF) slot ranges, but
// only where the MAP window for that range is not already overriding the
// C64 layout.
func (c *Core) UpdateCPUIOPort(updateMapper bool) {
	idx := (c.mapping.cpuIOPort[1] | ^c.mapping.cpuIOPort[0]) & 0x07
	newLayout := c64LayoutTable[idx]

	if newLayout == c.mapping.c64MemLayout {
		return
	}

	c.log.Debug("c64 memory layout changed", "layout", newLayout)

	c.mapping.c64MemLayout = newLayout
	c.mapping.legacyIOIsMapped = newLayout&c64D000IO != 0

	if !updateMapper {
		return
	}

	if c.mapping.mapMask&mapWindowMaskFor(0xA0) == 0 {
		c.InvalidateMapper(0xA0, 0xBF)
	}

	if c.mapping.mapMask&mapWindowMaskFor(0xD0) == 0 {
		c.InvalidateMapper(0xD0, 0xDF)
	}

	if c.mapping.mapMask&mapWindowMaskFor(0xE0) == 0 {
		c.InvalidateMapper(0xE0, 0xFF)
	}
}

// mapWindowMaskFor returns the map_mask bit covering the 8 KiB window that
// contains the given slot.
func mapWindowMaskFor(slot Slot) uint8 {
	return 1 << slot.Window8K()
}

// SetVIC3ROMMapping masks cfg to the four ROM bits {0x08, 0x10, 0x20,
// 0x80}, forces it to zero while in hypervisor mode, and invalidates the
// slot range for each bit that changed relative to the previous call.
func (c *Core) SetVIC3ROMMapping(cfg byte) {
	const mask = 0x08 | 0x10 | 0x20 | 0x80

	next := cfg & mask
	if c.mapping.inHypervisor {
		next = 0
	}

	changed := next ^ c.mapping.vic3ROMMask
	c.mapping.vic3ROMMask = next

	if changed != 0 {
		c.log.Debug("vic3 rom mapping changed", "mask", next)
	}

	if changed&0x08 != 0 {
		c.InvalidateMapper(0x80, 0x9F)
	}

	if changed&0x10 != 0 {
		c.InvalidateMapper(0xA0, 0xBF)
	}

	if changed&0x20 != 0 {
		c.InvalidateMapper(0xC0, 0xCF)
	}

	if changed&0x80 != 0 {
		c.InvalidateMapper(0xE0, 0xFF)
	}
}

// SetHypervisor transitions in/out of hypervisor mode. Per §6, transitions
// must flush any ROM-mask-dependent slots.
func (c *Core) SetHypervisor(enabled bool) {
	if enabled == c.mapping.inHypervisor {
		return
	}

	c.mapping.inHypervisor = enabled
	c.log.Debug("hypervisor mode changed", "enabled", enabled)

	c.InvalidateMapper(0x80, 0xFF)
}

// SetROMProtect sets the ROM shadow's write-protect flag. Per §6, it is
// writeable only while in_hypervisor; calls outside hypervisor mode are
// ignored.
func (c *Core) SetROMProtect(protect bool) {
	if !c.mapping.inHypervisor {
		return
	}

	if protect == c.mapping.romProtect {
		return
	}

	c.mapping.romProtect = protect
	c.log.Debug("rom protect changed", "protect", protect)

	// The rom shadow region (0x20000-0x3FFFF) is reachable from many more
	// slots than the fixed low-half window at 0x2000-0x3FFF: a high-half MAP
	// window or a VIC-III ROM window can park any slot's cached write
	// pointer into this range too. Bound invalidation to a fixed logical
	// range would miss those, so flush every slot instead.
	c.InvalidateMapperAll()
}

// SetVICIOMode selects which of the four legacy I/O trampoline tables is
// active (§4.3 rule 3, §4.6).
func (c *Core) SetVICIOMode(mode uint8) {
	c.mapping.vicIOMode = mode & 0x03
}

// InHypervisor reports the current hypervisor-mode flag, read by the core
// on every decode.
func (c *Core) InHypervisor() bool {
	return c.mapping.inHypervisor
}

// CPUInhibitInterrupts is the observable flag the CPU consults after a MAP,
// cleared by the following EOM.
func (c *Core) CPUInhibitInterrupts() bool {
	return c.mapping.cpuInhibitInterrupts
}

// ForceFast reports the speed-governor override set by writing 64/65 to
// zero-page address 0.
func (c *Core) ForceFast() bool {
	return c.mapping.forceFast
}

// CPURMWOldData reports the old value of the read-modify-write whose
// callback-based write is in progress. ok is false outside such a write.
func (c *Core) CPURMWOldData() (data byte, ok bool) {
	return c.mapping.cpuRMWOldData, c.mapping.rmwActive
}

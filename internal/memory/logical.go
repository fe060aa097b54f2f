package memory

// logical.go implements the Logical Decoder (§4.3): for a CPU slot,
// determines which physical page that slot currently represents and
// delegates to the Linear Decoder to materialise its dispatch entry.

// decodeSlot resolves the given CPU slot's current mapping and fills in its
// dispatch entry. It operates at 4 KiB granularity (several mapping
// mechanisms require it) even though MAP windows are 8 KiB.
//
// This is the "lazy" variant from §4.3: only the requested slot is
// materialised, not the full 32-slot 8 KiB window. Lazy and full
// materialisation are observably identical; lazy costs less on the common
// path where most of a window's slots are never touched between
// invalidations.
func (c *Core) decodeSlot(slot Slot) {
	page4k := slot.Page4K()

	entry := &c.slots[slot]

	if page4k < 8 {
		c.decodeLowHalf(slot, page4k, entry)
		return
	}

	c.decodeHighHalf(slot, page4k, entry)
}

func (c *Core) decodeLowHalf(slot Slot, page4k uint8, entry *slotEntry) {
	var physpage PhysAddr

	if c.mapping.mapMask&(1<<(page4k>>1)) != 0 {
		physpage = PhysAddr(c.mapping.mapMBLo) +
			PhysAddr((c.mapping.mapOffsetLo+uint32(slot)<<8)&0xFFF00)
	} else {
		physpage = PhysAddr(slot) << 8
	}

	c.materialise(page4k, physpage, entry)
}

func (c *Core) decodeHighHalf(slot Slot, page4k uint8, entry *slotEntry) {
	if physpage, ok := c.vic3ROMWindow(slot, page4k); ok {
		c.materialise(page4k, physpage, entry)
		return
	}

	if c.mapping.mapMask&mapWindowMaskFor(slot) != 0 {
		physpage := PhysAddr(c.mapping.mapMBHi) +
			PhysAddr((c.mapping.mapOffsetHi+uint32(slot)<<8)&0xFFF00)
		c.materialise(page4k, physpage, entry)

		return
	}

	if page4k == 0xD && c.mapping.c64MemLayout&c64D000IO != 0 {
		c.mapping.legacyIOIsMapped = true
		c.resolveLegacyIO(slot, entry)

		return
	}

	if physpage, ok := c.c64ROMWindow(slot, page4k); ok {
		c.materialise(page4k, physpage, entry)
		c.writeThroughToRAM(slot, entry)

		return
	}

	// Rule 7: legacy RAM.
	c.materialise(page4k, PhysAddr(slot)<<8, entry)
}

// vic3ROMWindow implements rule 1: the VIC-III ROM mask, when set and not
// in hypervisor mode, shadows part of the high logical half with the C65
// ROM image.
func (c *Core) vic3ROMWindow(slot Slot, page4k uint8) (PhysAddr, bool) {
	if c.mapping.inHypervisor {
		return 0, false
	}

	switch {
	case page4k == 0x8 || page4k == 0x9:
		if c.mapping.vic3ROMMask&0x08 != 0 {
			return 0x38000 + PhysAddr(uint16(slot)-0x80)*0x100, true
		}
	case page4k == 0xA || page4k == 0xB:
		if c.mapping.vic3ROMMask&0x10 != 0 {
			return 0x3A000 + PhysAddr(uint16(slot)-0xA0)*0x100, true
		}
	case page4k == 0xC:
		if c.mapping.vic3ROMMask&0x20 != 0 {
			return 0x2C000 + PhysAddr(uint16(slot)-0xC0)*0x100, true
		}
	case page4k == 0xE || page4k == 0xF:
		if c.mapping.vic3ROMMask&0x80 != 0 {
			return 0x3E000 + PhysAddr(uint16(slot)-0xE0)*0x100, true
		}
	}

	return 0, false
}

// c64ROMWindow implements rules 4-6: the legacy C64 BASIC/CHARGEN/KERNAL
// banking bits, each mapping to a fixed ROM-shadow offset with
// write-through-to-RAM.
func (c *Core) c64ROMWindow(slot Slot, page4k uint8) (PhysAddr, bool) {
	switch {
	case (page4k == 0xA || page4k == 0xB) && c.mapping.c64MemLayout&c64D000Basic != 0:
		return 0x2A000 + PhysAddr(uint16(slot)-0xA0)*0x100, true
	case page4k == 0xD && c.mapping.c64MemLayout&c64D000Chargen != 0:
		return 0x2D000 + PhysAddr(uint16(slot)-0xD0)*0x100, true
	case (page4k == 0xE || page4k == 0xF) && c.mapping.c64MemLayout&c64D000Kernal != 0:
		return 0x2E000 + PhysAddr(uint16(slot)-0xE0)*0x100, true
	}

	return 0, false
}

// materialise calls the Linear Decoder, passing and updating the per-4K-page
// hint.
func (c *Core) materialise(page4k uint8, physpage PhysAddr, entry *slotEntry) {
	hint := c.decodeHint[page4k]
	c.decodeHint[page4k] = c.linearResolve(physpage, entry, hint, 0)
}

// writeThroughToRAM overrides the write side of a C64-style ROM mapping so
// writes land directly in main RAM rather than honoring the ROM region's
// rom_protect gating, per "write-through-to-RAM": the C65 $C000 4 KiB
// window is excluded because it behaves like the other proper C65 ROM
// windows, not a legacy C64 fallback (it is handled by vic3ROMWindow, not
// this function).
func (c *Core) writeThroughToRAM(slot Slot, entry *slotEntry) {
	ofs := int(slot) << 8
	entry.wr = ptrEntry{buf: c.mainRAM[:], base: ofs}
	entry.wrFn = fnNone
	entry.wrOfs = PhysAddr(ofs)
}

// resolveLegacyIO routes a slot directly to the legacy I/O trampoline,
// bypassing the Linear Decoder entirely (§4.3 rule 3).
func (c *Core) resolveLegacyIO(slot Slot, entry *slotEntry) {
	*entry = slotEntry{}
	entry.rdFn = fnLegacyIORead
	entry.wrFn = fnLegacyIOWrite
	entry.rdOfs = PhysAddr(slot) << 8
	entry.wrOfs = PhysAddr(slot) << 8
}

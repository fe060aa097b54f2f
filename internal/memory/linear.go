package memory

// linear.go implements the Linear Decoder (§4.2): given a physical page and
// a target slot or channel, walks the region table and materialises the
// four dispatch entries according to the region's policy.
//
// Region backing buffers are already sliced so that index 0 corresponds to
// the region's Begin address (see buildRegionTable). That lets both CPU
// slots and bus-master channels share one offset convention — buf[base +
// low8(addr)] — without the raw "-(slot<<8) + physoffset" pointer bias the
// original C uses as a hot-path micro-optimisation (§9).

// linearResolve finds the region covering physpage, materialises target's
// four entries per the region's policy, and returns the new hint for the
// caller to remember.
func (c *Core) linearResolve(physpage PhysAddr, target *slotEntry, hint int, _ Slot) int {
	region, newHint := FindRegion(c.regions, physpage, hint)

	ofs := int(physpage - region.Begin)

	*target = slotEntry{}
	// rdOfs/wrOfs carry the slot's absolute physical page address so that
	// callbacks needing "the true physical address" (§3) don't have to
	// also thread the region's Begin through separately.
	target.rdOfs = physpage
	target.wrOfs = physpage

	switch region.Policy {
	case Normal:
		c.resolveNormal(region, ofs, target)
	case Rom:
		c.resolveRom(region, ofs, target)
	case Hypervisor:
		c.resolveHypervisor(region, ofs, target)
	case IoRegion:
		target.rdFn = fnLegacyIORead
		target.wrFn = fnLegacyIOWrite
	}

	return newHint
}

func (c *Core) resolveNormal(region *Region, ofs int, target *slotEntry) {
	if region.RdBuf != nil {
		target.rd = ptrEntry{buf: region.RdBuf, base: ofs}
	} else {
		target.rdFn = region.RdFn
	}

	if region.WrBuf != nil {
		target.wr = ptrEntry{buf: region.WrBuf, base: ofs}
	} else {
		target.wrFn = region.WrFn
	}
}

func (c *Core) resolveRom(region *Region, ofs int, target *slotEntry) {
	if region.RdBuf != nil {
		target.rd = ptrEntry{buf: region.RdBuf, base: ofs}
	} else {
		target.rdFn = region.RdFn
	}

	if c.mapping.romProtect {
		target.wrFn = fnBlackHole
	} else if region.WrBuf != nil {
		target.wr = ptrEntry{buf: region.WrBuf, base: ofs}
	} else {
		target.wrFn = region.WrFn
	}
}

func (c *Core) resolveHypervisor(region *Region, ofs int, target *slotEntry) {
	if c.mapping.inHypervisor {
		c.resolveNormal(region, ofs, target)
		return
	}

	target.rdFn = fnWhiteHoleFF
	target.wrFn = fnBlackHole
}

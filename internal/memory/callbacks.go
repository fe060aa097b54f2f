package memory

// callbacks.go dispatches and implements the permanent callbacks named by
// fnTag: the resolver, the zero-page writer, the colour-RAM head writer,
// the undecoded-access handlers, the constant-source/discard-sink
// functions, and the legacy I/O trampoline.

// callRead dispatches a CPU-slot read through the tagged callback named by
// entry.rdFn.
func (c *Core) callRead(entry *slotEntry, slot Slot, addr Addr16) byte {
	switch entry.rdFn {
	case fnResolver:
		c.decodeSlot(slot)
		// decodeSlot never re-installs fnResolver, so this recurses at
		// most once.
		return c.CPURead(addr)
	case fnUndecodedReader:
		c.reportUndecoded(entry.rdOfs|PhysAddr(addr&0xFF), addr, false)
		return memoryUndecodedByte
	case fnWhiteHoleFF:
		return whiteHoleConstantFF
	case fnWhiteHole00:
		return whiteHoleConstant00
	case fnLegacyIORead:
		return c.legacyIORead(slot, addr)
	default:
		return memoryUndecodedByte
	}
}

// callWrite dispatches a CPU-slot write through the tagged callback named
// by entry.wrFn.
func (c *Core) callWrite(entry *slotEntry, slot Slot, addr Addr16, data byte) {
	switch entry.wrFn {
	case fnResolver:
		c.decodeSlot(slot)
		c.CPUWrite(addr, data)
	case fnZeroPageWriter:
		c.zeroPageWrite(addr, data)
	case fnColourRAMWriter:
		c.colourRAMWrite(entry.wrOfs|PhysAddr(addr&0xFF), data)
	case fnUndecodedWriter:
		c.reportUndecoded(entry.wrOfs|PhysAddr(addr&0xFF), addr, true)
	case fnBlackHole:
		// discarded
	case fnLegacyIOWrite:
		c.legacyIOWrite(slot, addr, data)
	default:
		// discarded
	}
}

// dispatchChannelRead dispatches a bus-master read through the tagged
// callback named by entry.rdFn, using the full 28-bit linear address.
func (c *Core) dispatchChannelRead(ch *channel, id ChannelID, linaddr28 PhysAddr) byte {
	switch ch.entry.rdFn {
	case fnUndecodedReader:
		c.reportUndecodedChannel(linaddr28, false)
		return memoryUndecodedByte
	case fnWhiteHoleFF:
		return whiteHoleConstantFF
	case fnWhiteHole00:
		return whiteHoleConstant00
	case fnLegacyIORead:
		return c.legacyIORead(Slot(linaddr28>>8&0xFF), Addr16(linaddr28&0xFFFF))
	default:
		return memoryUndecodedByte
	}
}

// dispatchChannelWrite dispatches a bus-master write through the tagged
// callback named by entry.wrFn, using the full 28-bit linear address.
func (c *Core) dispatchChannelWrite(ch *channel, id ChannelID, linaddr28 PhysAddr, data byte) {
	switch ch.entry.wrFn {
	case fnZeroPageWriter:
		c.zeroPageWrite(Addr16(linaddr28&0xFFFF), data)
	case fnColourRAMWriter:
		c.colourRAMWrite(linaddr28, data)
	case fnUndecodedWriter:
		c.reportUndecodedChannel(linaddr28, true)
	case fnBlackHole:
		// discarded
	case fnLegacyIOWrite:
		c.legacyIOWrite(Slot(linaddr28>>8&0xFF), Addr16(linaddr28&0xFFFF), data)
	default:
		// discarded
	}
}

// zeroPageWrite implements the zero-page writer (§4.4): addresses other
// than 0/1 are a plain RAM write; address 0 or 1 update the CPU I/O port and
// recompute the derived C64 memory layout, with targeted invalidation.
func (c *Core) zeroPageWrite(addr Addr16, data byte) {
	low := addr & 0xFF

	if low > 1 {
		c.mainRAM[low] = data
		return
	}

	if low == 0 && data&0xFE == 64 {
		next := data&0x01 != 0
		if next != c.mapping.forceFast {
			c.mapping.forceFast = next
		}

		return
	}

	c.mapping.cpuIOPort[low] = data
	c.UpdateCPUIOPort(true)
}

// colourRAMWrite implements the colour-RAM head writer (§4.4): the byte is
// written to the main-RAM shadow, the canonical colour-RAM buffer, and the
// 4-bit-masked C64 I/O-mode shadow.
func (c *Core) colourRAMWrite(physAddr PhysAddr, data byte) {
	k := int(physAddr) & 0x7FF

	c.mainRAM[0x1F800+k] = data
	c.colourRAM[k] = data
	c.c64ColourRAM[k] = (data & 0x0F) | 0xF0
}

// reportUndecoded handles an undecoded CPU-slot access per the
// skip_unhandled_mem policy (§4.4, §7). cpuAddr is the logical address the
// CPU was accessing, not a program counter — see RegionError.CPUAddr.
func (c *Core) reportUndecoded(physAddr PhysAddr, cpuAddr Addr16, write bool) {
	c.reportUndecodedAt(physAddr, cpuAddr, write)
}

func (c *Core) reportUndecodedChannel(physAddr PhysAddr, write bool) {
	c.reportUndecodedAt(physAddr, 0, write)
}

func (c *Core) reportUndecodedAt(physAddr PhysAddr, cpuAddr Addr16, write bool) {
	switch c.skipPolicy {
	case SkipSilent:
		return
	case SkipExit:
		panic(&RegionError{Addr: physAddr, Write: write, CPUAddr: cpuAddr})
	case SkipWarnOnce:
		if c.warnedOnce {
			return
		}

		c.warnedOnce = true

		fallthrough
	case SkipWarnAlways:
		c.log.Warn("undecoded memory access",
			"addr", physAddr, "write", write, "cpu_addr", cpuAddr)
	}
}

package memory

// dispatch.go implements the CPU-facing Slot Dispatch Table operations
// (§4.4): cpu_read, cpu_write, cpu_write_rmw, and the page-crossing-aware
// qbyte accessors.

// CPURead reads one byte from the 16-bit logical address space.
func (c *Core) CPURead(addr Addr16) byte {
	slot := SlotOf(addr)
	entry := &c.slots[slot]

	if entry.rd.present() {
		return entry.rd.byteAt(uint8(addr))
	}

	return c.callRead(entry, slot, addr)
}

// CPUWrite writes one byte to the 16-bit logical address space.
func (c *Core) CPUWrite(addr Addr16, data byte) {
	slot := SlotOf(addr)
	entry := &c.slots[slot]

	if entry.wr.present() {
		entry.wr.setByteAt(uint8(addr), data)
		return
	}

	c.callWrite(entry, slot, addr, data)
}

// CPUWriteRMW models the 65xx read-modify-write bus sequence, in which the
// old value is written first, then the new value. Only newData is written;
// for callback-based writes, oldData is held in cpuRMWOldData for the
// duration of the callback, so I/O devices that care about the transition
// can observe it through CPURMWOldData, and is restored to its sentinel
// afterwards on every exit path. Direct-memory writes behave as a plain
// CPUWrite.
func (c *Core) CPUWriteRMW(addr Addr16, oldData, newData byte) {
	slot := SlotOf(addr)
	entry := &c.slots[slot]

	if entry.wr.present() {
		entry.wr.setByteAt(uint8(addr), newData)
		return
	}

	c.mapping.cpuRMWOldData = oldData
	c.mapping.rmwActive = true

	defer func() {
		c.mapping.rmwActive = false
		c.mapping.cpuRMWOldData = 0
	}()

	c.callWrite(entry, slot, addr, newData)
}

// CPUReadQByte reads a little-endian 32-bit value at a 16-bit address,
// re-resolving the slot on each byte where the low 8 bits wrap from 0xFF to
// 0x00.
func (c *Core) CPUReadQByte(addr Addr16) uint32 {
	var q uint32

	for i := uint(0); i < 4; i++ {
		b := c.CPURead(addr + Addr16(i))
		q |= uint32(b) << (8 * i)
	}

	return q
}

// CPUWriteQByte writes a little-endian 32-bit value at a 16-bit address,
// with the same page-crossing behavior as CPUReadQByte.
func (c *Core) CPUWriteQByte(addr Addr16, data uint32) {
	for i := uint(0); i < 4; i++ {
		c.CPUWrite(addr+Addr16(i), byte(data>>(8*i)))
	}
}

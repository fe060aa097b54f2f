package memory

// iotrampoline.go implements the legacy I/O trampoline (§4.6): a pair of 2D
// tables indexed by [vic_iomode][slot & 0x0F], each cell a read or write
// callback for one 256-byte page of the 0xD000 aperture. The tables
// themselves are populated by the I/O subsystem via WithLegacyIO; the core
// only wires the 16 slots of 0xD0..0xDF into them when the logical decoder
// selects legacy I/O.

func (c *Core) legacyIORead(slot Slot, addr Addr16) byte {
	fn := c.ioRead[c.mapping.vicIOMode][slot&0x0F]
	if fn == nil {
		return memoryUndecodedByte
	}

	return fn(c, addr)
}

func (c *Core) legacyIOWrite(slot Slot, addr Addr16, data byte) {
	fn := c.ioWrite[c.mapping.vicIOMode][slot&0x0F]
	if fn == nil {
		return
	}

	fn(c, addr, data)
}

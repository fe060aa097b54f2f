package memory

// channels.go implements the five bus-master access lanes that bypass the
// CPU slot table and address physical memory directly by 28-bit linear
// address: DMA_LIST, DMA_SRC, DMA_DST, CPU_LINADDR and DEBUGGER.

// channel is one bus-master lane's one-page cache: the last resolved page
// and region-table hint, plus its resolved dispatch entry. Channel entries
// are not bias-adjusted; callsites mask the low 8 bits of the linear
// address themselves.
type channel struct {
	lastPage  PhysAddr
	valid     bool
	hint      int
	entry     slotEntry
}

// ChannelRead performs a bus-master read of one byte at the given 28-bit
// linear address on behalf of the named channel.
func (c *Core) ChannelRead(id ChannelID, linaddr28 PhysAddr) byte {
	ch := c.resolveChannel(id, linaddr28)
	low := uint8(linaddr28 & 0xFF)

	if ch.entry.rd.present() {
		return ch.entry.rd.byteAt(low)
	}

	return c.dispatchChannelRead(ch, id, linaddr28)
}

// ChannelWrite performs a bus-master write of one byte at the given 28-bit
// linear address on behalf of the named channel.
func (c *Core) ChannelWrite(id ChannelID, linaddr28 PhysAddr, data byte) {
	ch := c.resolveChannel(id, linaddr28)
	low := uint8(linaddr28 & 0xFF)

	if ch.entry.wr.present() {
		ch.entry.wr.setByteAt(low, data)
		return
	}

	c.dispatchChannelWrite(ch, id, linaddr28, data)
}

// resolveChannel returns the channel's cache, re-resolving through the
// Linear Decoder only when the requested page differs from the last one
// seen on this lane.
func (c *Core) resolveChannel(id ChannelID, linaddr28 PhysAddr) *channel {
	ch := &c.channels[id]
	page := linaddr28.Page()

	if ch.valid && ch.lastPage == page {
		return ch
	}

	target := AuxSlotBase + Slot(id)
	newHint := c.linearResolve(page, &ch.entry, ch.hint, target)

	ch.lastPage = page
	ch.valid = true
	ch.hint = newHint

	return ch
}

// InvalidateChannels resets every bus-master channel's "last page" sentinel
// to invalid and its hint to the first region, per memory_invalidate_channels.
func (c *Core) InvalidateChannels() {
	for i := range c.channels {
		c.channels[i] = channel{}
	}
}

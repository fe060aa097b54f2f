package memory

// invalidate.go implements the coherency protocol (§4.5): marking slots
// "unresolved" so the next access through them triggers re-decode on
// demand, cheaply.

// InvalidateMapper invalidates every CPU slot in [start, last], inclusive.
func (c *Core) InvalidateMapper(start, last Slot) {
	c.log.Debug("invalidating slots", "start", start, "last", last)

	for s := start; s <= last; s++ {
		c.slots[s].invalidate()

		if s == last {
			break // guard Slot(0xFF)+1 wraparound when last == 0xFF
		}
	}
}

// InvalidateMapperAll invalidates every one of the 256 CPU slots and resets
// the per-4K-page decode hints.
func (c *Core) InvalidateMapperAll() {
	c.InvalidateMapper(0x00, 0xFF)

	for i := range c.decodeHint {
		c.decodeHint[i] = 0
	}
}

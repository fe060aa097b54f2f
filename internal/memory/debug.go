package memory

import "fmt"

// DescribeRegions renders the physical region table as one line per region,
// for debugger and diagnostic use. It never mutates core state.
func (c *Core) DescribeRegions() []string {
	lines := make([]string, 0, len(c.regions))

	for _, r := range c.regions {
		lines = append(lines, fmt.Sprintf("%-20s %s-%s  policy=%s", r.name, r.Begin, r.End, r.Policy))
	}

	return lines
}

// SlotPhysAddr decodes slot (if not already resolved) and reports the
// physical address its reads currently come from. Intended for debugger and
// diagnostic use; its only side effect is the decode of an unresolved slot.
// No read is performed, so no undecoded-access report or I/O callback
// fires.
func (c *Core) SlotPhysAddr(slot Slot) PhysAddr {
	entry := &c.slots[slot]

	if entry.rdFn == fnResolver {
		c.decodeSlot(slot)
	}

	return entry.rdOfs
}

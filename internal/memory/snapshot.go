package memory

// snapshot.go implements the persistent-state layout named in §6 as an
// in-process value. File-based snapshot persistence is an external
// collaborator concern and out of scope for this core (§1); Snapshot/Restore
// only own the layout and the post-restore invalidation step.

// State is the persistent-state layout a snapshot mechanism needs to save
// and restore a Core. It deliberately mirrors the field list in §6 exactly:
// main RAM, slow RAM, colour RAM, hypervisor RAM, the CPU I/O port, the MAP
// registers, rom_protect, force_fast, and the VIC-III ROM config.
// c64_memlayout is derived and recomputed on restore rather than stored.
type State struct {
	MainRAM       [mainRAMSize]byte
	SlowRAM       [slowRAMSize]byte
	ColourRAM     [colourRAMSize]byte
	HypervisorRAM [hypervisorRAMSize]byte

	CPUIOPort [2]byte

	MapOffsetLo, MapOffsetHi uint32
	MapMBLo, MapMBHi         uint32
	MapMask                  uint8

	ROMProtect bool
	ForceFast  bool
	VIC3ROMCfg uint8
}

// Snapshot captures the core's persistent state.
func (c *Core) Snapshot() State {
	var s State

	s.MainRAM = c.mainRAM
	s.SlowRAM = c.slowRAM
	s.ColourRAM = c.colourRAM
	s.HypervisorRAM = c.hypervisorRAM

	s.CPUIOPort = c.mapping.cpuIOPort
	s.MapOffsetLo, s.MapOffsetHi = c.mapping.mapOffsetLo, c.mapping.mapOffsetHi
	s.MapMBLo, s.MapMBHi = c.mapping.mapMBLo, c.mapping.mapMBHi
	s.MapMask = c.mapping.mapMask
	s.ROMProtect = c.mapping.romProtect
	s.ForceFast = c.mapping.forceFast
	s.VIC3ROMCfg = c.mapping.vic3ROMMask

	return s
}

// Restore replaces the core's persistent state with a previously captured
// snapshot. Per §6, after a load all slot tables and channels must be
// invalidated and the colour-RAM shadows regenerated from the canonical
// colour RAM, and c64_memlayout is recomputed rather than restored
// directly.
func (c *Core) Restore(s State) {
	c.mainRAM = s.MainRAM
	c.slowRAM = s.SlowRAM
	c.colourRAM = s.ColourRAM
	c.hypervisorRAM = s.HypervisorRAM

	c.mapping.cpuIOPort = s.CPUIOPort
	c.mapping.mapOffsetLo, c.mapping.mapOffsetHi = s.MapOffsetLo, s.MapOffsetHi
	c.mapping.mapMBLo, c.mapping.mapMBHi = s.MapMBLo, s.MapMBHi
	c.mapping.mapMask = s.MapMask
	c.mapping.romProtect = s.ROMProtect
	c.mapping.forceFast = s.ForceFast
	c.mapping.vic3ROMMask = s.VIC3ROMCfg

	c.reseedColourShadow()
	c.UpdateCPUIOPort(false)

	c.InvalidateMapperAll()
	c.InvalidateChannels()
}

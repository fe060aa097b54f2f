package memory

// core.go assembles the memory core: storage, region table, slot dispatch
// table, mapping state and bus-master channels, all owned by a single
// value so that multiple independent instances are possible for testing.

import (
	"github.com/halvorsen/m65mem/internal/log"
)

// Core is a single, independent instance of the memory decoding and
// mapping machinery. It owns every storage array, the slot dispatch table,
// the mapping state, and the bus-master channels; nothing is global.
type Core struct {
	storage

	regions []Region

	slots       [NumSlots]slotEntry
	decodeHint  [16]int // per-4K-page region-table hint, §4.3
	mapping     mappingState
	channels    [numChannels]channel

	ioRead  [4][16]IOFunc
	ioWrite [4][16]IOWriteFunc

	skipPolicy SkipPolicy
	warnedOnce bool

	log *log.Logger
}

// OptionFn configures a Core at construction time, following a two-phase
// early/late option convention: early options run before storage and the
// region table are built, late options run after, so they can depend on a
// fully-initialized core.
type OptionFn func(core *Core, late bool)

// IOFunc is a legacy I/O trampoline callback, registered by the I/O
// subsystem and invoked only when the logical decoder selects legacy I/O
// for the 0xD000 aperture.
type IOFunc func(core *Core, addr Addr16) byte

// IOWriteFunc is the write-side legacy I/O trampoline callback.
type IOWriteFunc func(core *Core, addr Addr16, data byte)

// New creates and initializes a memory core: storage is zero-filled (per
// memory_init), the region table is built, and every CPU slot and channel
// is invalidated so the first access through each triggers decode.
func New(opts ...OptionFn) *Core {
	core := &Core{
		log: log.DefaultLogger(),
	}

	for _, opt := range opts {
		opt(core, false)
	}

	core.storage.init()
	core.regions = core.buildRegionTable()

	for i := range core.decodeHint {
		core.decodeHint[i] = 0
	}

	core.InvalidateMapperAll()
	core.InvalidateChannels()

	for _, opt := range opts {
		opt(core, true)
	}

	return core
}

// WithLogger configures the core's logger.
func WithLogger(logger *log.Logger) OptionFn {
	return func(core *Core, late bool) {
		if !late {
			core.log = logger
		}
	}
}

// WithSkipPolicy configures the undecoded-access policy.
func WithSkipPolicy(policy SkipPolicy) OptionFn {
	return func(core *Core, late bool) {
		if !late {
			core.skipPolicy = policy
		}
	}
}

// WithLegacyIO registers the I/O subsystem's legacy trampoline tables. The
// tables are indexed [vic_iomode][slot & 0x0F], per §4.6.
func WithLegacyIO(read [4][16]IOFunc, write [4][16]IOWriteFunc) OptionFn {
	return func(core *Core, late bool) {
		if late {
			core.ioRead = read
			core.ioWrite = write
		}
	}
}

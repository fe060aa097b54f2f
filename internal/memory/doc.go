// Package memory implements the memory decoding and mapping core of a
// MEGA65/Commodore-65 system emulator.
//
// The core resolves every access issued by the emulated 4510-family CPU, and
// by auxiliary bus masters such as DMA and the debugger, to a concrete
// action on one of several physical storage regions or I/O callbacks. It
// reconciles the overlapping C64 I/O-port banking, C65 VIC-III ROM banking,
// C65 MAP/EOM opcode windows, and MEGA65 megabyte-slice selection mechanisms
// behind a single, lazily-resolved dispatch table.
//
// CPU instruction interpretation, VIC/video register semantics, the
// hypervisor's entry/exit sequence, DMA engine sequencing, ROM loading, and
// host I/O are all external collaborators: this package only exposes the
// interfaces they need.
package memory

// Package hardware is the base package for the C64 emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The Machine type is the root of the emulation and holds external
// references to every sub-system: the 6510 CPU, the memory bus, VIC-II,
// the two CIAs, SID, the frame governor, and (optionally) an attached 1541
// drive over the IEC bus. From here the emulation is driven one frame at a
// time via RunFrame, with CPU, VIC and CIA timing kept in lockstep through
// the CPU's periodic and post-tick callbacks.
package hardware


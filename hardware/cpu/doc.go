// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

// Package cpu emulates the MOS 6502 family processor at the heart of both
// the C64 (a 6510, electrically a 6502 with a built-in I/O port) and the
// 1541 drive (a plain 6502). A single CPU type serves both: construct it
// against the variant that matches the silicon (NMOS6502, NMOS6502A,
// NMOS6502C or CMOS65C02) and a bus.CPUBus implementation for the memory map
// it should see.
//
//	mc := cpu.NewCPU(mem, instructions.NMOS6502)
//	if err := mc.Reset(); err != nil {
//		// ...
//	}
//	if err := mc.Execute(1000000, 0); err != nil {
//		// ...
//	}
//
// Execute runs until its cycle budget is exhausted, an optional instruction
// count limit is reached, or an opcode/callback/memory error propagates.
// SetPeriodicCallback and PostTickCallback hook into the loop to advance
// peripherals (the VIC-II raster, the CIA timers, the 1541's own CPU) in
// lockstep with instruction execution, without this package knowing
// anything about what those peripherals are.
//
// LastResult exposes the execution.Result trace of the most recently
// completed instruction, useful for debuggers and for the validity check
// Result.IsValid in the execution package.
package cpu

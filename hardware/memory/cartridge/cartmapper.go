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

package cartridge

// cartMapper implementations hold the ROM bank data for a loaded cartridge
// image and keep track of which bank is currently visible in ROML ($8000-$9FFF)
// and ROMH ($A000-$BFFF, or $E000-$FFFF in Ultimax mode).
//
// addr arguments received by read/write/poke are normalised to the
// cartridge's own address space (0x0000-0x1FFF ROML, 0x2000-0x3FFF ROMH).
type cartMapper interface {
	// read ROML/ROMH space
	read(addr uint16) (data uint8, err error)

	// write is only meaningful for mappers with cartridge RAM
	write(addr uint16, data uint8) error

	// ioWrite/ioRead handle the $DE00-$DFFF I/O-1/I/O-2 bank-switch window
	ioWrite(addr uint16, data uint8) error
	ioRead(addr uint16) (data uint8, err error)

	numBanks() int
	currentBank() int

	// exrom/game report the cartridge's current EXROM and GAME line state.
	// false means the line is pulled low (asserted).
	exrom() bool
	game() bool

	// poke writes directly into the mapped ROM/RAM regardless of normal
	// bank-switch semantics; used by debuggers only
	poke(addr uint16, data uint8) error

	reset()

	getRAMinfo() []RAMinfo
}

// RAMinfo details the read/write addresses for any cartridge RAM, used by
// debuggers to report cartridge state.
type RAMinfo struct {
	Label       string
	Active      bool
	ReadOrigin  uint16
	ReadMemtop  uint16
	WriteOrigin uint16
	WriteMemtop uint16
}

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

import "github.com/jetsetilly/go64/errors"

// finalCartridge3 supplies four 16K banks (64K total). The control register,
// mirrored across the whole of I/O-2 ($DF00-$DFFF), packs: bits 0-1 the
// active bank, bit 6 a cartridge-disable flag (forces EXROM/GAME both high)
// and bit 7 selecting 8K-only visibility (GAME high, ROMH hidden) versus the
// normal 16K window.
type finalCartridge3 struct {
	banks    [][]byte // each entry is 16K: [0:0x2000) ROML, [0x2000:0x4000) ROMH
	selected int
	disabled bool
	mode8k   bool
}

func newFinalCartridge3(banks [][]byte) (cartMapper, error) {
	if len(banks) < 1 {
		return nil, errors.Errorf(errors.CartridgeError, "final cartridge III requires at least one 16k bank")
	}
	for i, b := range banks {
		if len(b) != 0x4000 {
			return nil, errors.Errorf(errors.CartridgeError, "final cartridge III bank %d is not 16k", i)
		}
	}
	return &finalCartridge3{banks: banks}, nil
}

func (f *finalCartridge3) read(addr uint16) (uint8, error) {
	if f.disabled {
		return 0, errors.Errorf(errors.CartridgeEjected)
	}
	bank := f.banks[f.selected]
	if addr < 0x2000 {
		return bank[addr], nil
	}
	if f.mode8k {
		return 0, errors.Errorf(errors.CartridgeNotMappable, f.selected, addr)
	}
	return bank[addr], nil
}

func (f *finalCartridge3) write(addr uint16, data uint8) error {
	return errors.Errorf(errors.CartridgeNotMappable, f.selected, addr)
}

func (f *finalCartridge3) ioWrite(addr uint16, data uint8) error {
	f.selected = int(data & 0x03)
	if f.selected >= len(f.banks) {
		f.selected = f.selected % len(f.banks)
	}
	f.disabled = data&0x40 == 0x40
	f.mode8k = data&0x80 == 0x80
	return nil
}

func (f *finalCartridge3) ioRead(addr uint16) (uint8, error) { return 0, nil }

func (f *finalCartridge3) numBanks() int    { return len(f.banks) }
func (f *finalCartridge3) currentBank() int { return f.selected }
func (f *finalCartridge3) exrom() bool      { return f.disabled }
func (f *finalCartridge3) game() bool       { return f.disabled || f.mode8k }

func (f *finalCartridge3) reset() {
	f.selected = 0
	f.disabled = false
	f.mode8k = false
}

func (f *finalCartridge3) poke(addr uint16, data uint8) error { return f.write(addr, data) }
func (f *finalCartridge3) getRAMinfo() []RAMinfo              { return nil }

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

// ocean supplies up to 64 8K banks into ROML (GAME stays high, EXROM low). A
// write to I/O-1 ($DE00) latches the bank number in the low 6 bits; the
// remaining bits are ignored, matching the mapper used by the larger Ocean
// licensed titles.
type ocean struct {
	banks    [][]byte
	selected int
}

func newOcean(banks [][]byte) (cartMapper, error) {
	if len(banks) < 1 {
		return nil, errors.Errorf(errors.CartridgeError, "ocean cartridge requires at least one bank")
	}
	return &ocean{banks: banks}, nil
}

func (o *ocean) read(addr uint16) (uint8, error) {
	if addr >= 0x2000 {
		return 0, errors.Errorf(errors.CartridgeNotMappable, o.selected, addr)
	}
	bank := o.banks[o.selected]
	if int(addr) < len(bank) {
		return bank[addr], nil
	}
	return 0, errors.Errorf(errors.CartridgeNotMappable, o.selected, addr)
}

func (o *ocean) write(addr uint16, data uint8) error {
	return errors.Errorf(errors.CartridgeNotMappable, o.selected, addr)
}

func (o *ocean) ioWrite(addr uint16, data uint8) error {
	bank := int(data & 0x3f)
	if bank >= len(o.banks) {
		bank = bank % len(o.banks)
	}
	o.selected = bank
	return nil
}

func (o *ocean) ioRead(addr uint16) (uint8, error) { return 0, nil }

func (o *ocean) numBanks() int    { return len(o.banks) }
func (o *ocean) currentBank() int { return o.selected }
func (o *ocean) exrom() bool      { return false }
func (o *ocean) game() bool       { return true }
func (o *ocean) reset()           { o.selected = 0 }

func (o *ocean) poke(addr uint16, data uint8) error { return o.write(addr, data) }
func (o *ocean) getRAMinfo() []RAMinfo              { return nil }

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

// funPlay supplies up to 16 8K banks into ROML (GAME stays high, EXROM low).
// The bank number isn't written to I/O-1 directly; the low nibble of the
// written value is bit-reversed before use, a quirk of the original
// hardware's address decoding.
type funPlay struct {
	banks    [][]byte
	selected int
}

func newFunPlay(banks [][]byte) (cartMapper, error) {
	if len(banks) < 1 {
		return nil, errors.Errorf(errors.CartridgeError, "fun play cartridge requires at least one bank")
	}
	return &funPlay{banks: banks}, nil
}

func funPlayBank(data uint8) int {
	return int((data>>3)&0x01) | int((data>>1)&0x02) | int((data<<1)&0x04) | int((data<<3)&0x08)
}

func (f *funPlay) read(addr uint16) (uint8, error) {
	if addr >= 0x2000 {
		return 0, errors.Errorf(errors.CartridgeNotMappable, f.selected, addr)
	}
	bank := f.banks[f.selected]
	if int(addr) < len(bank) {
		return bank[addr], nil
	}
	return 0, errors.Errorf(errors.CartridgeNotMappable, f.selected, addr)
}

func (f *funPlay) write(addr uint16, data uint8) error {
	return errors.Errorf(errors.CartridgeNotMappable, f.selected, addr)
}

func (f *funPlay) ioWrite(addr uint16, data uint8) error {
	bank := funPlayBank(data)
	if bank >= len(f.banks) {
		bank = bank % len(f.banks)
	}
	f.selected = bank
	return nil
}

func (f *funPlay) ioRead(addr uint16) (uint8, error) { return 0, nil }

func (f *funPlay) numBanks() int    { return len(f.banks) }
func (f *funPlay) currentBank() int { return f.selected }
func (f *funPlay) exrom() bool      { return false }
func (f *funPlay) game() bool       { return true }
func (f *funPlay) reset()           { f.selected = 0 }

func (f *funPlay) poke(addr uint16, data uint8) error { return f.write(addr, data) }
func (f *funPlay) getRAMinfo() []RAMinfo              { return nil }

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

// magicDesk supplies up to 128 8K banks into ROML only (GAME stays high). A
// write to I/O-1 ($DE00) latches the bank number in the low 7 bits; bit 7
// of the written value disables the cartridge entirely (EXROM goes high,
// collapsing ROML back to RAM) until the next bank-select write re-enables
// it.
type magicDesk struct {
	banks    [][]byte
	selected int
	disabled bool
}

func newMagicDesk(banks [][]byte) (cartMapper, error) {
	if len(banks) < 1 {
		return nil, errors.Errorf(errors.CartridgeError, "magic desk cartridge requires at least one bank")
	}
	return &magicDesk{banks: banks}, nil
}

func (m *magicDesk) read(addr uint16) (uint8, error) {
	if m.disabled {
		return 0, errors.Errorf(errors.CartridgeEjected)
	}
	if addr >= 0x2000 {
		return 0, errors.Errorf(errors.CartridgeNotMappable, m.selected, addr)
	}
	bank := m.banks[m.selected]
	if int(addr) < len(bank) {
		return bank[addr], nil
	}
	return 0, errors.Errorf(errors.CartridgeNotMappable, m.selected, addr)
}

func (m *magicDesk) write(addr uint16, data uint8) error {
	return errors.Errorf(errors.CartridgeNotMappable, m.selected, addr)
}

func (m *magicDesk) ioWrite(addr uint16, data uint8) error {
	m.disabled = data&0x80 == 0x80
	bank := int(data & 0x7f)
	if bank >= len(m.banks) {
		bank = bank % len(m.banks)
	}
	m.selected = bank
	return nil
}

func (m *magicDesk) ioRead(addr uint16) (uint8, error) { return 0, nil }

func (m *magicDesk) numBanks() int    { return len(m.banks) }
func (m *magicDesk) currentBank() int { return m.selected }
func (m *magicDesk) exrom() bool      { return m.disabled }
func (m *magicDesk) game() bool       { return true }

func (m *magicDesk) reset() {
	m.selected = 0
	m.disabled = false
}

func (m *magicDesk) poke(addr uint16, data uint8) error { return m.write(addr, data) }
func (m *magicDesk) getRAMinfo() []RAMinfo              { return nil }

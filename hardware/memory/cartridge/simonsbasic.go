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

// simonsBasic starts in 16K mode (ROML+ROMH both mapped, GAME low) and
// switches to 8K mode (ROML only, GAME high) the first time the program
// writes to I/O-1 ($DE00). Reading I/O-1 switches back to 16K mode. The
// image is always exactly two 8K banks: bank 0 in ROML, bank 1 in ROMH.
type simonsBasic struct {
	roml   []byte
	romh   []byte
	mode8k bool
}

func newSimonsBasic(banks [][]byte) (cartMapper, error) {
	if len(banks) < 2 {
		return nil, errors.Errorf(errors.CartridgeError, "simons' basic cartridge requires two banks")
	}
	return &simonsBasic{roml: banks[0], romh: banks[1]}, nil
}

func (s *simonsBasic) read(addr uint16) (uint8, error) {
	if addr < 0x2000 {
		if int(addr) < len(s.roml) {
			return s.roml[addr], nil
		}
		return 0, errors.Errorf(errors.CartridgeNotMappable, 0, addr)
	}
	if s.mode8k {
		return 0, errors.Errorf(errors.CartridgeNotMappable, 1, addr)
	}
	off := addr - 0x2000
	if int(off) < len(s.romh) {
		return s.romh[off], nil
	}
	return 0, errors.Errorf(errors.CartridgeNotMappable, 1, addr)
}

func (s *simonsBasic) write(addr uint16, data uint8) error {
	return errors.Errorf(errors.CartridgeNotMappable, 0, addr)
}

func (s *simonsBasic) ioWrite(addr uint16, data uint8) error {
	s.mode8k = true
	return nil
}

func (s *simonsBasic) ioRead(addr uint16) (uint8, error) {
	s.mode8k = false
	return 0, nil
}

func (s *simonsBasic) numBanks() int    { return 2 }
func (s *simonsBasic) currentBank() int { return 0 }
func (s *simonsBasic) exrom() bool      { return false }
func (s *simonsBasic) game() bool       { return s.mode8k }

func (s *simonsBasic) reset() {
	s.mode8k = false
}

func (s *simonsBasic) poke(addr uint16, data uint8) error { return s.write(addr, data) }
func (s *simonsBasic) getRAMinfo() []RAMinfo              { return nil }

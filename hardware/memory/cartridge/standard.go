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

// standard implements the unbanked 8K and 16K cartridge layouts. 8K carts
// supply ROML only (EXROM low, GAME high); 16K carts supply ROML and ROMH
// (EXROM low, GAME low). Neither variant responds to I/O-1/I/O-2.
type standard struct {
	is16k bool
	roml  []byte
	romh  []byte
}

func newStandard(banks [][]byte, is16k bool) (cartMapper, error) {
	if len(banks) < 1 {
		return nil, errors.Errorf(errors.CartridgeError, "standard cartridge requires at least one bank")
	}

	s := &standard{is16k: is16k, roml: banks[0]}

	if is16k {
		if len(banks) < 2 {
			return nil, errors.Errorf(errors.CartridgeError, "standard 16k cartridge requires two banks")
		}
		s.romh = banks[1]
	}

	return s, nil
}

func (s *standard) read(addr uint16) (uint8, error) {
	if addr < 0x2000 {
		if int(addr) < len(s.roml) {
			return s.roml[addr], nil
		}
		return 0, errors.Errorf(errors.CartridgeNotMappable, 0, addr)
	}

	off := addr - 0x2000
	if s.romh != nil && int(off) < len(s.romh) {
		return s.romh[off], nil
	}

	return 0, errors.Errorf(errors.CartridgeNotMappable, 1, addr)
}

func (s *standard) write(addr uint16, data uint8) error {
	return errors.Errorf(errors.CartridgeNotMappable, 0, addr)
}

func (s *standard) ioWrite(addr uint16, data uint8) error { return nil }
func (s *standard) ioRead(addr uint16) (uint8, error)      { return 0, nil }

func (s *standard) numBanks() int     { return 1 }
func (s *standard) currentBank() int  { return 0 }
func (s *standard) exrom() bool       { return false }
func (s *standard) game() bool        { return s.is16k }
func (s *standard) reset()            {}
func (s *standard) poke(addr uint16, data uint8) error { return s.write(addr, data) }
func (s *standard) getRAMinfo() []RAMinfo              { return nil }

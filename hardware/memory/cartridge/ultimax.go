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

// ultimax implements the Ultimax (max packs/VIC-20-derived) memory
// configuration: EXROM high, GAME low. ROML still fills $8000-$9FFF but ROMH
// is relocated by the memory bus to $E000-$FFFF, displacing KERNAL entirely;
// the bus is responsible for that relocation, this mapper only ever sees
// addresses normalised into its own 0x0000-0x3FFF ROML/ROMH space exactly as
// the other mappers do.
type ultimax struct {
	roml []byte
	romh []byte
}

func newUltimax(banks [][]byte) (cartMapper, error) {
	if len(banks) < 1 {
		return nil, errors.Errorf(errors.CartridgeError, "ultimax cartridge requires at least one bank")
	}

	u := &ultimax{roml: banks[0]}
	if len(banks) > 1 {
		u.romh = banks[1]
	}

	return u, nil
}

func (u *ultimax) read(addr uint16) (uint8, error) {
	if addr < 0x2000 {
		if int(addr) < len(u.roml) {
			return u.roml[addr], nil
		}
		return 0, errors.Errorf(errors.CartridgeNotMappable, 0, addr)
	}

	off := addr - 0x2000
	if u.romh != nil && int(off) < len(u.romh) {
		return u.romh[off], nil
	}

	return 0, errors.Errorf(errors.CartridgeNotMappable, 1, addr)
}

func (u *ultimax) write(addr uint16, data uint8) error {
	return errors.Errorf(errors.CartridgeNotMappable, 0, addr)
}

func (u *ultimax) ioWrite(addr uint16, data uint8) error { return nil }
func (u *ultimax) ioRead(addr uint16) (uint8, error)      { return 0, nil }

func (u *ultimax) numBanks() int     { return 1 }
func (u *ultimax) currentBank() int  { return 0 }
func (u *ultimax) exrom() bool       { return true }
func (u *ultimax) game() bool        { return false }
func (u *ultimax) reset()            {}
func (u *ultimax) poke(addr uint16, data uint8) error { return u.write(addr, data) }
func (u *ultimax) getRAMinfo() []RAMinfo              { return nil }

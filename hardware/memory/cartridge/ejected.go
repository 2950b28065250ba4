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

// ejected represents the absence of a cartridge. EXROM and GAME are both
// high (inactive) and every access fails with CartridgeEjected, matching the
// expansion port floating with nothing plugged in.
type ejected struct{}

func newEjected() cartMapper {
	return &ejected{}
}

func (e *ejected) read(addr uint16) (uint8, error) {
	return 0, errors.Errorf(errors.CartridgeEjected)
}

func (e *ejected) write(addr uint16, data uint8) error {
	return errors.Errorf(errors.CartridgeEjected)
}

func (e *ejected) ioWrite(addr uint16, data uint8) error { return errors.Errorf(errors.CartridgeEjected) }
func (e *ejected) ioRead(addr uint16) (uint8, error)      { return 0, errors.Errorf(errors.CartridgeEjected) }

func (e *ejected) numBanks() int     { return 0 }
func (e *ejected) currentBank() int  { return 0 }
func (e *ejected) exrom() bool       { return true }
func (e *ejected) game() bool        { return true }
func (e *ejected) reset()            {}
func (e *ejected) poke(addr uint16, data uint8) error { return errors.Errorf(errors.CartridgeEjected) }
func (e *ejected) getRAMinfo() []RAMinfo              { return nil }

// errorCart synthesises an 8K standard-layout ROM that, when executed,
// writes a short diagnostic message to screen RAM ($0400) and halts in a
// tight loop. It is substituted by New whenever a requested mapper kind
// cannot be constructed (an unsupported CRT hardware type, or malformed
// bank data), so a failure during loading is still observable on screen
// rather than surfacing only as a Go error deep in a log.
type errorCart struct {
	rom []byte
	err error
}

// errorCartMessage is poked into screen RAM verbatim; screen codes for
// upper-case letters 'A'-'Z' are 1-26, space is 32, matching the C64's
// default screen/character ROM mapping.
var errorCartMessage = "CARTRIDGE LOAD ERROR"

func newErrorCart(loadErr error) cartMapper {
	rom := make([]byte, 0x2000)

	// cold-start vector at $8000-$8001 points at $8010
	rom[0x0000] = 0x10
	rom[0x0001] = 0x80

	// CBM80 autostart signature at $8004-$8008
	copy(rom[0x0004:], []byte{0xc3, 0xc2, 0x4d, 0x38, 0x30})

	// $8010: LDX #$00
	// loop:   LDA msg,X   ; BEQ halt ; STA $0400,X ; INX ; BNE loop
	// halt:   JMP halt
	code := []byte{
		0xa2, 0x00, // LDX #$00
		0xbd, 0x20, 0x80, // LDA $8020,X
		0xf0, 0x06, // BEQ +6 (halt)
		0x9d, 0x00, 0x04, // STA $0400,X
		0xe8,       // INX
		0xd0, 0xf5, // BNE loop
		0x4c, 0x1d, 0x80, // JMP $801d (halt, this instruction's own address)
	}
	copy(rom[0x0010:], code)

	msg := make([]byte, 0, len(errorCartMessage)+1)
	for _, r := range errorCartMessage {
		if r == ' ' {
			msg = append(msg, 32)
		} else {
			msg = append(msg, byte(r-'A'+1))
		}
	}
	msg = append(msg, 0)
	copy(rom[0x0020:], msg)

	return &errorCart{rom: rom, err: loadErr}
}

func (e *errorCart) read(addr uint16) (uint8, error) {
	if int(addr) < len(e.rom) {
		return e.rom[addr], nil
	}
	return 0, errors.Errorf(errors.CartridgeNotMappable, 0, addr)
}

func (e *errorCart) write(addr uint16, data uint8) error {
	return errors.Errorf(errors.CartridgeNotMappable, 0, addr)
}

func (e *errorCart) ioWrite(addr uint16, data uint8) error { return nil }
func (e *errorCart) ioRead(addr uint16) (uint8, error)      { return 0, nil }

func (e *errorCart) numBanks() int    { return 1 }
func (e *errorCart) currentBank() int { return 0 }
func (e *errorCart) exrom() bool      { return false }
func (e *errorCart) game() bool       { return true }
func (e *errorCart) reset()           {}
func (e *errorCart) poke(addr uint16, data uint8) error {
	if int(addr) < len(e.rom) {
		e.rom[addr] = data
		return nil
	}
	return errors.Errorf(errors.CartridgeNotMappable, 0, addr)
}
func (e *errorCart) getRAMinfo() []RAMinfo { return nil }

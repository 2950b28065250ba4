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

// Package cartridge implements the memory-side behaviour of C64 cartridges:
// the EXROM/GAME signal lines, the ROML/ROMH banked windows and the I/O-1/
// I/O-2 bank-switch registers. It knows nothing about .crt file parsing -
// see the cartridgeloader package for that - it is constructed directly from
// already-split ROM bank data.
package cartridge

import (
	"fmt"

	"github.com/jetsetilly/go64/errors"
)

// Kind identifies the mapper hardware used by a cartridge image.
type Kind int

// List of supported cartridge mapper kinds.
const (
	KindStandard8k Kind = iota
	KindStandard16k
	KindUltimax
	KindMagicDesk
	KindSimonsBasic
	KindFinalCartridge3
	KindOcean
	KindFunPlay
	KindNone // no cartridge attached
)

func (k Kind) String() string {
	switch k {
	case KindStandard8k:
		return "standard 8k"
	case KindStandard16k:
		return "standard 16k"
	case KindUltimax:
		return "ultimax"
	case KindMagicDesk:
		return "magic desk"
	case KindSimonsBasic:
		return "simons' basic"
	case KindFinalCartridge3:
		return "final cartridge III"
	case KindOcean:
		return "ocean"
	case KindFunPlay:
		return "fun play"
	case KindNone:
		return "none"
	}
	return "unknown"
}

// Cartridge wraps a cartMapper implementation and is the type the memory bus
// talks to. ROML occupies $8000-$9FFF, ROMH occupies $A000-$BFFF (or
// $E000-$FFFF when Ultimax mode collapses the map), and the I/O-1/I/O-2
// windows ($DE00-$DFFF) carry bank-switch writes for mappers that need them.
type Cartridge struct {
	Kind   Kind
	mapper cartMapper
}

// New constructs a Cartridge from pre-split ROM bank data. banks[n] must be
// sized to whatever the mapper's natural bank size is (8K for most of the
// supported mappers, including the ROML and ROMH banks of KindStandard16k;
// 16K for KindFinalCartridge3). Unsupported or malformed combinations fall
// back to an error cartridge, an 8K ROM that prints a load-error message on
// screen, rather than panicking the caller.
func New(kind Kind, banks [][]byte) *Cartridge {
	var m cartMapper
	var err error

	switch kind {
	case KindStandard8k:
		m, err = newStandard(banks, false)
	case KindStandard16k:
		m, err = newStandard(banks, true)
	case KindUltimax:
		m, err = newUltimax(banks)
	case KindMagicDesk:
		m, err = newMagicDesk(banks)
	case KindSimonsBasic:
		m, err = newSimonsBasic(banks)
	case KindFinalCartridge3:
		m, err = newFinalCartridge3(banks)
	case KindOcean:
		m, err = newOcean(banks)
	case KindFunPlay:
		m, err = newFunPlay(banks)
	case KindNone:
		m = newEjected()
	default:
		err = errors.Errorf(errors.CartridgeUnsupported, kind)
	}

	if err != nil {
		m = newErrorCart(err)
		kind = KindNone
	}

	return &Cartridge{Kind: kind, mapper: m}
}

func (c *Cartridge) String() string {
	return fmt.Sprintf("%s (%d banks, bank %d selected)", c.Kind, c.mapper.numBanks(), c.mapper.currentBank())
}

// Read reads from ROML/ROMH space. addr is normalised by the caller (the
// memory bus): 0x0000-0x1FFF for ROML and 0x2000-0x3FFF for ROMH.
func (c *Cartridge) Read(addr uint16) (uint8, error) {
	return c.mapper.read(addr)
}

// Write handles writes into cartridge RAM where a mapper has any.
func (c *Cartridge) Write(addr uint16, data uint8) error {
	return c.mapper.write(addr, data)
}

// IOWrite handles a write into the $DE00-$DFFF I/O-1/I/O-2 window.
func (c *Cartridge) IOWrite(addr uint16, data uint8) error {
	return c.mapper.ioWrite(addr, data)
}

// IORead handles a read from the $DE00-$DFFF I/O-1/I/O-2 window.
func (c *Cartridge) IORead(addr uint16) (uint8, error) {
	return c.mapper.ioRead(addr)
}

// EXROM and GAME report the cartridge's signal line state for the memory
// bus's bank-configuration decode. false means the line is asserted (pulled
// low), matching the electrical convention of the real signals.
func (c *Cartridge) EXROM() bool { return c.mapper.exrom() }
func (c *Cartridge) GAME() bool  { return c.mapper.game() }

// Reset restores power-on bank-switch state.
func (c *Cartridge) Reset() {
	c.mapper.reset()
}

// Poke writes directly to cartridge memory, bypassing bank-switch semantics.
// Used only by the debugger.
func (c *Cartridge) Poke(addr uint16, data uint8) error {
	return c.mapper.poke(addr, data)
}

// NumBanks returns the number of ROM banks the cartridge was built from.
func (c *Cartridge) NumBanks() int {
	return c.mapper.numBanks()
}

// CurrentBank returns the index of the bank currently mapped into ROML/ROMH.
func (c *Cartridge) CurrentBank() int {
	return c.mapper.currentBank()
}

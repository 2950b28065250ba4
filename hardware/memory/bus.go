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

// Package memory implements the C64 memory map: the address-dependent
// dispatch between RAM, BASIC/KERNAL/CHAR ROM, the I/O register window and
// the cartridge mapper, driven by the processor port at $0000/$0001 and by
// the cartridge's EXROM/GAME lines. ROM file loading is deliberately outside
// this package's concerns: the three ROM images are supplied by the caller
// as plain byte slices.
package memory

import (
	"github.com/jetsetilly/go64/errors"
	"github.com/jetsetilly/go64/hardware/memory/bus"
	"github.com/jetsetilly/go64/hardware/memory/cartridge"
)

// Bus implements bus.CPUBus and bus.DebuggerBus for the whole C64 address
// space. It owns the flat 64K RAM array that backs every address regardless
// of what ROM or I/O is currently shadowing it, per the real hardware's
// "writes always reach RAM" invariant.
type Bus struct {
	ram [0x10000]uint8

	basic  []uint8 // 8K, $A000-$BFFF
	kernal []uint8 // 8K, $E000-$FFFF
	char   []uint8 // 4K, character generator ROM

	colour [1024]uint8 // low nibble only; colour RAM at $D800-$DBFF

	port processorPort

	cart *cartridge.Cartridge

	vic  bus.ChipRegisters
	sid  bus.ChipRegisters
	cia1 bus.ChipRegisters
	cia2 bus.ChipRegisters
}

// NewBus constructs a Bus. basic/kernal/char are the raw ROM images; any of
// them may be nil, in which case reads from that ROM's address range fall
// through to RAM instead (useful for tests that don't need a real KERNAL).
func NewBus(basic, kernal, char []uint8) *Bus {
	b := &Bus{basic: basic, kernal: kernal, char: char}
	b.cart = cartridge.New(cartridge.KindNone, nil)
	b.port.reset()
	return b
}

// AttachCartridge installs a cartridge, replacing any previously attached
// one. Passing nil detaches it, equivalent to an ejected cartridge.
func (b *Bus) AttachCartridge(c *cartridge.Cartridge) {
	if c == nil {
		c = cartridge.New(cartridge.KindNone, nil)
	}
	b.cart = c
}

// AttachChips wires in the VIC-II, SID and two CIA register blocks. Called
// once during machine construction; any of the four may be nil during
// CPU-only unit tests, in which case accesses to that chip's I/O window
// read as zero and discard writes.
func (b *Bus) AttachChips(vic, sid, cia1, cia2 bus.ChipRegisters) {
	b.vic, b.sid, b.cia1, b.cia2 = vic, sid, cia1, cia2
}

// Reset restores the processor port and cartridge to power-on state. RAM is
// untouched, matching real hardware (RAM contents are undefined after reset
// but not deliberately cleared by it).
func (b *Bus) Reset() {
	b.port.reset()
	b.cart.Reset()
}

func (b *Bus) ultimax() bool {
	return b.cart.EXROM() && !b.cart.GAME()
}

// Read implements bus.CPUBus.
func (b *Bus) Read(addr uint16) (uint8, error) {
	switch addr {
	case 0x0000:
		return b.port.readDDR(), nil
	case 0x0001:
		return b.port.readData(), nil
	}

	if b.ultimax() {
		return b.readUltimax(addr)
	}

	loram, hiram, charen := b.port.loram(), b.port.hiram(), b.port.charen()

	switch {
	case addr < 0x8000:
		return b.ram[addr], nil

	case addr < 0xa000: // $8000-$9FFF
		if !b.cart.EXROM() {
			v, err := b.cart.Read(addr - 0x8000)
			if err == nil {
				return v, nil
			}
		}
		return b.ram[addr], nil

	case addr < 0xc000: // $A000-$BFFF
		if loram && hiram {
			return b.romByte(b.basic, addr-0xa000, addr), nil
		}
		if !b.cart.EXROM() && !b.cart.GAME() {
			v, err := b.cart.Read(addr - 0xa000 + 0x2000)
			if err == nil {
				return v, nil
			}
		}
		return b.ram[addr], nil

	case addr < 0xd000: // $C000-$CFFF
		return b.ram[addr], nil

	case addr < 0xe000: // $D000-$DFFF
		if charen && (loram || hiram) {
			return b.readIO(addr)
		}
		if !charen && (loram || hiram) {
			return b.romByte(b.char, addr-0xd000, addr), nil
		}
		return b.ram[addr], nil

	default: // $E000-$FFFF
		if hiram {
			return b.romByte(b.kernal, addr-0xe000, addr), nil
		}
		return b.ram[addr], nil
	}
}

// readUltimax implements the collapsed Ultimax memory map: only $0000-$0FFF
// RAM, $8000-$9FFF ROML, $D000-$DFFF I/O and $E000-$FFFF ROMH remain; every
// other region floats as open bus, approximated here as $FF rather than a
// true floating read.
func (b *Bus) readUltimax(addr uint16) (uint8, error) {
	switch {
	case addr < 0x1000:
		return b.ram[addr], nil
	case addr < 0x8000:
		return 0xff, nil
	case addr < 0xa000:
		v, err := b.cart.Read(addr - 0x8000)
		if err != nil {
			return 0xff, nil
		}
		return v, nil
	case addr < 0xd000:
		return 0xff, nil
	case addr < 0xe000:
		return b.readIO(addr)
	default:
		v, err := b.cart.Read(addr - 0xe000 + 0x2000)
		if err != nil {
			return 0xff, nil
		}
		return v, nil
	}
}

func (b *Bus) romByte(rom []uint8, off, addr uint16) uint8 {
	if rom == nil || int(off) >= len(rom) {
		return b.ram[addr]
	}
	return rom[off]
}

// readIO dispatches an address in $D000-$DFFF among VIC, SID, colour RAM,
// the two CIAs and the cartridge I/O-1/I/O-2 windows.
func (b *Bus) readIO(addr uint16) (uint8, error) {
	switch {
	case addr < 0xd400: // VIC-II, mirrored every $40
		return b.readChip(b.vic, uint8(addr&0x3f)), nil
	case addr < 0xd800: // SID, mirrored every $20
		return b.readChip(b.sid, uint8((addr-0xd400)&0x1f)), nil
	case addr < 0xdc00: // colour RAM, low nibble only
		return b.colour[addr-0xd800] | 0xf0, nil
	case addr < 0xdd00: // CIA #1, mirrored every $10
		return b.readChip(b.cia1, uint8(addr&0x0f)), nil
	case addr < 0xde00: // CIA #2
		return b.readChip(b.cia2, uint8(addr&0x0f)), nil
	case addr < 0xdf00: // I/O-1
		return b.cart.IORead(addr)
	default: // I/O-2
		return b.cart.IORead(addr)
	}
}

func (b *Bus) readChip(chip bus.ChipRegisters, reg uint8) uint8 {
	if chip == nil {
		return 0
	}
	return chip.ReadRegister(reg)
}

// Write implements bus.CPUBus. Writes always land in RAM regardless of what
// ROM is currently shadowing the address; only the I/O window diverts to a
// chip register instead of RAM.
func (b *Bus) Write(addr uint16, data uint8) error {
	switch addr {
	case 0x0000:
		b.port.writeDDR(data)
		return nil
	case 0x0001:
		b.port.writeData(data)
		return nil
	}

	if addr >= 0xd000 && addr < 0xe000 {
		loram, hiram, charen := b.port.loram(), b.port.hiram(), b.port.charen()
		if b.ultimax() || (charen && (loram || hiram)) {
			return b.writeIO(addr, data)
		}
	}

	b.ram[addr] = data
	return nil
}

func (b *Bus) writeIO(addr uint16, data uint8) error {
	switch {
	case addr < 0xd400:
		b.writeChip(b.vic, uint8(addr&0x3f), data)
	case addr < 0xd800:
		b.writeChip(b.sid, uint8((addr-0xd400)&0x1f), data)
	case addr < 0xdc00:
		b.colour[addr-0xd800] = data & 0x0f
	case addr < 0xdd00:
		b.writeChip(b.cia1, uint8(addr&0x0f), data)
	case addr < 0xde00:
		b.writeChip(b.cia2, uint8(addr&0x0f), data)
	case addr < 0xdf00:
		return b.cart.IOWrite(addr, data)
	default:
		return b.cart.IOWrite(addr, data)
	}
	return nil
}

func (b *Bus) writeChip(chip bus.ChipRegisters, reg uint8, data uint8) {
	if chip == nil {
		return
	}
	chip.WriteRegister(reg, data)
}

// Peek implements bus.DebuggerBus: a read with no side effects, used by
// debuggers to inspect RAM directly regardless of current bank visibility.
func (b *Bus) Peek(addr uint16) (uint8, error) {
	return b.ram[addr], nil
}

// Poke implements bus.DebuggerBus: writes directly to RAM, bypassing bank
// switching and chip register semantics.
func (b *Bus) Poke(addr uint16, data uint8) error {
	if addr > 0x0001 {
		b.ram[addr] = data
		return nil
	}
	return errors.Errorf(errors.UnpokeableAddress, addr)
}

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

package drive

import (
	"github.com/jetsetilly/go64/hardware/via6522"
)

// driveBus implements bus.CPUBus for the 1541's own address space: 2KiB
// RAM mirrored through $0000-$1FFF, VIA1 at $1800-$180F, VIA2 at
// $1C00-$1C0F, and 16KiB DOS ROM at $C000-$FFFF.
type driveBus struct {
	ram  [0x800]uint8
	via1 *via6522.VIA
	via2 *via6522.VIA
	rom  []uint8 // 16KiB, $C000-$FFFF; nil (for tests) reads as $FF
}

func newDriveBus(via1, via2 *via6522.VIA, rom []uint8) *driveBus {
	return &driveBus{via1: via1, via2: via2, rom: rom}
}

func (b *driveBus) Read(addr uint16) (uint8, error) {
	switch {
	case addr >= 0x1800 && addr < 0x1810:
		return b.via1.Read(addr), nil
	case addr >= 0x1c00 && addr < 0x1c10:
		return b.via2.Read(addr), nil
	case addr < 0x2000:
		return b.ram[addr&0x7ff], nil
	case addr >= 0xc000:
		if b.rom == nil || int(addr-0xc000) >= len(b.rom) {
			return 0xff, nil
		}
		return b.rom[addr-0xc000], nil
	}
	return 0xff, nil
}

func (b *driveBus) Write(addr uint16, data uint8) error {
	switch {
	case addr >= 0x1800 && addr < 0x1810:
		b.via1.Write(addr, data)
	case addr >= 0x1c00 && addr < 0x1c10:
		b.via2.Write(addr, data)
	case addr < 0x2000:
		b.ram[addr&0x7ff] = data
	}
	return nil
}

// Peek implements bus.DebuggerBus.
func (b *driveBus) Peek(addr uint16) (uint8, error) { return b.Read(addr) }

// Poke implements bus.DebuggerBus.
func (b *driveBus) Poke(addr uint16, data uint8) error {
	if addr < 0x2000 {
		b.ram[addr&0x7ff] = data
	}
	return nil
}

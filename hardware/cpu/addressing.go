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

package cpu

import (
	"github.com/jetsetilly/go64/hardware/cpu/execution"
	"github.com/jetsetilly/go64/hardware/cpu/instructions"
)

// resolveAddress consumes whatever operand bytes defn.AddressingMode
// requires and returns the effective address (meaningless for Implied and
// Immediate, which the execute switch handles by fetching their own operand
// directly) plus whether an indexed access crossed a page boundary.
func (c *CPU) resolveAddress(defn *instructions.Definition) (uint16, bool, error) {
	switch defn.AddressingMode {
	case instructions.Implied, instructions.Immediate:
		return 0, false, nil

	case instructions.Relative:
		offset, err := c.fetchByte()
		if err != nil {
			return 0, false, err
		}
		base := c.PC.Address()
		target := uint16(int32(base) + int32(int8(offset)))
		return target, (base & 0xff00) != (target & 0xff00), nil

	case instructions.ZeroPage:
		v, err := c.fetchByte()
		return uint16(v), false, err

	case instructions.ZeroPageIndexedX:
		v, err := c.fetchByte()
		return uint16(v + c.X.Value()), false, err

	case instructions.ZeroPageIndexedY:
		v, err := c.fetchByte()
		return uint16(v + c.Y.Value()), false, err

	case instructions.Absolute:
		v, err := c.fetchWord()
		return v, false, err

	case instructions.AbsoluteIndexedX:
		base, err := c.fetchWord()
		if err != nil {
			return 0, false, err
		}
		addr := base + uint16(c.X.Value())
		return addr, (base & 0xff00) != (addr & 0xff00), nil

	case instructions.AbsoluteIndexedY:
		base, err := c.fetchWord()
		if err != nil {
			return 0, false, err
		}
		addr := base + uint16(c.Y.Value())
		return addr, (base & 0xff00) != (addr & 0xff00), nil

	case instructions.Indirect:
		ptr, err := c.fetchWord()
		if err != nil {
			return 0, false, err
		}
		lo, err := c.read(ptr)
		if err != nil {
			return 0, false, err
		}
		var hiAddr uint16
		if c.variant.IsNMOS() && ptr&0x00ff == 0x00ff {
			hiAddr = ptr & 0xff00
			c.result.CPUBug = execution.JmpIndirectAddressingBug
		} else {
			hiAddr = ptr + 1
		}
		hi, err := c.read(hiAddr)
		return uint16(hi)<<8 | uint16(lo), false, err

	case instructions.IndexedIndirect:
		zp, err := c.fetchByte()
		if err != nil {
			return 0, false, err
		}
		base := zp + c.X.Value()
		lo, err := c.read(uint16(base))
		if err != nil {
			return 0, false, err
		}
		hi, err := c.read(uint16(base + 1))
		return uint16(hi)<<8 | uint16(lo), false, err

	case instructions.IndirectIndexed:
		zp, err := c.fetchByte()
		if err != nil {
			return 0, false, err
		}
		lo, err := c.read(uint16(zp))
		if err != nil {
			return 0, false, err
		}
		hi, err := c.read(uint16(zp + 1))
		if err != nil {
			return 0, false, err
		}
		base := uint16(hi)<<8 | uint16(lo)
		addr := base + uint16(c.Y.Value())
		return addr, (base & 0xff00) != (addr & 0xff00), nil
	}

	return 0, false, nil
}

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

import "github.com/jetsetilly/go64/hardware/cpu/instructions"

// accumulatorMode reports whether this opcode's "Implied" addressing mode is
// really the accumulator form of a shift/rotate (eg. $0A ASL A).
func accumulatorMode(op instructions.Operator, mode instructions.AddressingMode) bool {
	if mode != instructions.Implied {
		return false
	}
	switch op {
	case instructions.ASL, instructions.LSR, instructions.ROL, instructions.ROR:
		return true
	}
	return false
}

// unstableConst is the constant ORed into A before the ANE/LXA AND chain;
// it varies by silicon revision and is the reason real programs never rely
// on these opcodes for anything but NOPs of a known length.
func (c *CPU) unstableConst() uint8 {
	if c.variant == instructions.NMOS6502C {
		return 0xee
	}
	return 0xff
}

// magicConst approximates the "high byte of the target address + 1" term
// used by the store-illegals (SHA/SHX/SHY/TAS). Real silicon derives this
// from bus contention during the indexed address calculation; this models
// the commonly observed result using the already-resolved effective
// address, not the exact internal timing.
func magicConst(addr uint16) uint8 {
	return uint8(addr>>8) + 1
}

// execute runs defn's operator against the resolved address (meaningless
// for Implied/Immediate operators, which fetch or ignore their own operand)
// and reports whether a branch was taken.
func (c *CPU) execute(defn *instructions.Definition, addr uint16) (bool, error) {
	acc := accumulatorMode(defn.Operator, defn.AddressingMode)

	// fetch the operand value for every Read/RMW instruction that isn't
	// accumulator-mode or doesn't fetch its own immediate byte below
	var value uint8
	var err error
	switch defn.Operator {
	case instructions.JMP, instructions.JSR,
		instructions.PHA, instructions.PHP, instructions.PLA, instructions.PLP,
		instructions.RTI, instructions.RTS, instructions.BRK,
		instructions.TAX, instructions.TAY, instructions.TSX, instructions.TXA, instructions.TXS, instructions.TYA,
		instructions.DEX, instructions.DEY, instructions.INX, instructions.INY,
		instructions.CLC, instructions.CLD, instructions.CLI, instructions.CLV,
		instructions.SEC, instructions.SED, instructions.SEI, instructions.NOP,
		instructions.BCC, instructions.BCS, instructions.BEQ, instructions.BMI,
		instructions.BNE, instructions.BPL, instructions.BVC, instructions.BVS:
		// these either take no operand, fetch it inline below, or the
		// addressing mode already consumed everything needed
	default:
		if acc {
			value = c.A.Value()
		} else if defn.AddressingMode == instructions.Immediate {
			value, err = c.fetchByte()
		} else if defn.Effect != instructions.Write {
			value, err = c.read(addr)
		}
	}
	if err != nil {
		return false, err
	}

	switch defn.Operator {

	// --- load/store --------------------------------------------------
	case instructions.LDA:
		c.A.Load(value)
		c.setZN(c.A)
	case instructions.LDX:
		c.X.Load(value)
		c.setZN(c.X)
	case instructions.LDY:
		c.Y.Load(value)
		c.setZN(c.Y)
	case instructions.STA:
		err = c.write(addr, c.A.Value())
	case instructions.STX:
		err = c.write(addr, c.X.Value())
	case instructions.STY:
		err = c.write(addr, c.Y.Value())

	// --- transfers -----------------------------------------------------
	case instructions.TAX:
		c.X.Load(c.A.Value())
		c.setZN(c.X)
	case instructions.TAY:
		c.Y.Load(c.A.Value())
		c.setZN(c.Y)
	case instructions.TSX:
		c.X.Load(uint8(c.SP.Address()))
		c.setZN(c.X)
	case instructions.TXA:
		c.A.Load(c.X.Value())
		c.setZN(c.A)
	case instructions.TXS:
		c.SP.Load(c.X.Value())
	case instructions.TYA:
		c.A.Load(c.Y.Value())
		c.setZN(c.A)

	// --- arithmetic ------------------------------------------------------
	case instructions.ADC:
		c.adc(value)
	case instructions.SBC:
		c.sbc(value)
	case instructions.CMP:
		c.compare(c.A, value)
	case instructions.CPX:
		c.compare(c.X, value)
	case instructions.CPY:
		c.compare(c.Y, value)

	// --- logic -----------------------------------------------------------
	case instructions.AND:
		c.A.AND(value)
		c.setZN(c.A)
	case instructions.ORA:
		c.A.ORA(value)
		c.setZN(c.A)
	case instructions.EOR:
		c.A.EOR(value)
		c.setZN(c.A)
	case instructions.BIT:
		c.SR.Zero = c.A.Value()&value == 0
		c.SR.Sign = value&0x80 != 0
		c.SR.Overflow = value&0x40 != 0

	// --- shifts/rotates ----------------------------------------------------
	case instructions.ASL:
		if acc {
			c.SR.Carry = c.A.ASL()
			c.setZN(c.A)
		} else {
			carry := value&0x80 != 0
			value <<= 1
			err = c.write(addr, value)
			c.SR.Carry = carry
			c.setZNVal(value)
		}
	case instructions.LSR:
		if acc {
			c.SR.Carry = c.A.LSR()
			c.setZN(c.A)
		} else {
			carry := value&0x01 != 0
			value >>= 1
			err = c.write(addr, value)
			c.SR.Carry = carry
			c.setZNVal(value)
		}
	case instructions.ROL:
		if acc {
			c.SR.Carry = c.A.ROL(c.SR.Carry)
			c.setZN(c.A)
		} else {
			carry := value&0x80 != 0
			value = value<<1 | b2u8(c.SR.Carry)
			err = c.write(addr, value)
			c.SR.Carry = carry
			c.setZNVal(value)
		}
	case instructions.ROR:
		if acc {
			c.SR.Carry = c.A.ROR(c.SR.Carry)
			c.setZN(c.A)
		} else {
			carry := value&0x01 != 0
			value = value>>1 | b2u8(c.SR.Carry)<<7
			err = c.write(addr, value)
			c.SR.Carry = carry
			c.setZNVal(value)
		}

	// --- increment/decrement ----------------------------------------------
	case instructions.INC:
		value++
		err = c.write(addr, value)
		c.setZNVal(value)
	case instructions.DEC:
		value--
		err = c.write(addr, value)
		c.setZNVal(value)
	case instructions.INX:
		c.X.Add(1, false)
		c.setZN(c.X)
	case instructions.INY:
		c.Y.Add(1, false)
		c.setZN(c.Y)
	case instructions.DEX:
		c.X.Subtract(1, true)
		c.setZN(c.X)
	case instructions.DEY:
		c.Y.Subtract(1, true)
		c.setZN(c.Y)

	// --- flags -------------------------------------------------------------
	case instructions.CLC:
		c.SR.Carry = false
	case instructions.SEC:
		c.SR.Carry = true
	case instructions.CLD:
		c.SR.DecimalMode = false
	case instructions.SED:
		c.SR.DecimalMode = true
	case instructions.CLI:
		c.SR.InterruptDisable = false
	case instructions.SEI:
		c.SR.InterruptDisable = true
	case instructions.CLV:
		c.SR.Overflow = false

	// --- stack ---------------------------------------------------------
	case instructions.PHA:
		err = c.push(c.A.Value())
	case instructions.PHP:
		err = c.push(c.SR.PushValue(true))
	case instructions.PLA:
		var v uint8
		v, err = c.pull()
		c.A.Load(v)
		c.setZN(c.A)
	case instructions.PLP:
		var v uint8
		v, err = c.pull()
		c.SR.Load(v)

	// --- flow ------------------------------------------------------------
	case instructions.JMP:
		c.PC.Load(addr)
	case instructions.JSR:
		err = c.pushWord(c.PC.Address() - 1)
		c.PC.Load(addr)
	case instructions.RTS:
		var v uint16
		v, err = c.pullWord()
		c.PC.Load(v + 1)
	case instructions.RTI:
		var sr uint8
		sr, err = c.pull()
		c.SR.Load(sr)
		if err == nil {
			var v uint16
			v, err = c.pullWord()
			c.PC.Load(v)
		}
	case instructions.BRK:
		// skip the signature byte following the BRK opcode
		_, err = c.fetchByte()
		if err == nil {
			err = c.pushWord(c.PC.Address())
		}
		if err == nil {
			err = c.push(c.SR.PushValue(true))
		}
		c.SR.InterruptDisable = true
		if err == nil {
			var lo, hi uint8
			lo, err = c.read(0xfffe)
			if err == nil {
				hi, err = c.read(0xffff)
			}
			c.PC.Load(uint16(hi)<<8 | uint16(lo))
		}

	case instructions.BCC:
		return c.branch(!c.SR.Carry, addr), nil
	case instructions.BCS:
		return c.branch(c.SR.Carry, addr), nil
	case instructions.BEQ:
		return c.branch(c.SR.Zero, addr), nil
	case instructions.BNE:
		return c.branch(!c.SR.Zero, addr), nil
	case instructions.BMI:
		return c.branch(c.SR.Sign, addr), nil
	case instructions.BPL:
		return c.branch(!c.SR.Sign, addr), nil
	case instructions.BVC:
		return c.branch(!c.SR.Overflow, addr), nil
	case instructions.BVS:
		return c.branch(c.SR.Overflow, addr), nil

	case instructions.NOP:
		// illegal NOPs still touch the bus: an immediate NOP consumes its
		// operand byte and the other addressed forms read their operand,
		// which is then discarded
		switch defn.AddressingMode {
		case instructions.Implied:
		case instructions.Immediate:
			_, err = c.fetchByte()
		default:
			_, err = c.read(addr)
		}
		if err != nil {
			return false, err
		}

	// --- stable illegals ---------------------------------------------------
	case instructions.SLO:
		carry := value&0x80 != 0
		value <<= 1
		err = c.write(addr, value)
		c.A.ORA(value)
		c.SR.Carry = carry
		c.setZN(c.A)
	case instructions.RLA:
		carryOut := value&0x80 != 0
		value = value<<1 | b2u8(c.SR.Carry)
		err = c.write(addr, value)
		c.A.AND(value)
		c.SR.Carry = carryOut
		c.setZN(c.A)
	case instructions.SRE:
		carryOut := value&0x01 != 0
		value >>= 1
		err = c.write(addr, value)
		c.A.EOR(value)
		c.SR.Carry = carryOut
		c.setZN(c.A)
	case instructions.RRA:
		carryOut := value&0x01 != 0
		value = value>>1 | b2u8(c.SR.Carry)<<7
		err = c.write(addr, value)
		c.SR.Carry = carryOut
		c.adc(value)
	case instructions.SAX:
		err = c.write(addr, c.A.Value()&c.X.Value())
	case instructions.LAX:
		c.A.Load(value)
		c.X.Load(value)
		c.setZN(c.A)
	case instructions.DCP:
		value--
		err = c.write(addr, value)
		c.compare(c.A, value)
	case instructions.ISC:
		value++
		err = c.write(addr, value)
		c.sbc(value)
	case instructions.ANC:
		c.A.AND(value)
		c.SR.Carry = c.A.IsNegative()
		c.setZN(c.A)
	case instructions.ALR:
		c.A.AND(value)
		c.SR.Carry = c.A.LSR()
		c.setZN(c.A)
	case instructions.ARR:
		c.arr(value)
	case instructions.SBX:
		t := c.A.Value() & c.X.Value()
		carry := t >= value
		result := t - value
		c.X.Load(result)
		c.SR.Carry = carry
		c.setZN(c.X)

	// --- unstable/magic illegals --------------------------------------------
	case instructions.ANE:
		result := (c.A.Value() | c.unstableConst()) & c.X.Value() & value
		c.A.Load(result)
		c.setZN(c.A)
	case instructions.LXA:
		result := (c.A.Value() | c.unstableConst()) & value
		c.A.Load(result)
		c.X.Load(result)
		c.setZN(c.A)
	case instructions.SHA:
		err = c.write(addr, c.A.Value()&c.X.Value()&magicConst(addr))
	case instructions.SHX:
		err = c.write(addr, c.X.Value()&magicConst(addr))
	case instructions.SHY:
		err = c.write(addr, c.Y.Value()&magicConst(addr))
	case instructions.TAS:
		c.SP.Load(c.A.Value() & c.X.Value())
		err = c.write(addr, uint8(c.SP.Address())&magicConst(addr))
	case instructions.LAS:
		result := value & uint8(c.SP.Address())
		c.A.Load(result)
		c.X.Load(result)
		c.SP.Load(result)
		c.setZN(c.A)
	}

	return false, err
}

func b2u8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

func (c *CPU) branch(taken bool, target uint16) bool {
	if taken {
		c.PC.Load(target)
	}
	return taken
}

// setZN is implemented over the registers.Data accessor methods so it works
// for any of A/X/Y.
func (c *CPU) setZN(r interface {
	IsZero() bool
	IsNegative() bool
}) {
	c.SR.Zero = r.IsZero()
	c.SR.Sign = r.IsNegative()
}

func (c *CPU) setZNVal(v uint8) {
	c.SR.Zero = v == 0
	c.SR.Sign = v&0x80 != 0
}

func (c *CPU) adc(value uint8) {
	if c.SR.DecimalMode {
		carry, zero, overflow, sign := c.A.AddDecimal(value, c.SR.Carry)
		c.SR.Carry, c.SR.Zero, c.SR.Overflow, c.SR.Sign = carry, zero, overflow, sign
		return
	}
	carry, overflow := c.A.Add(value, c.SR.Carry)
	c.SR.Carry = carry
	c.SR.Overflow = overflow
	c.setZN(c.A)
}

func (c *CPU) sbc(value uint8) {
	if c.SR.DecimalMode {
		carry, zero, overflow, sign := c.A.SubtractDecimal(value, c.SR.Carry)
		c.SR.Carry, c.SR.Zero, c.SR.Overflow, c.SR.Sign = carry, zero, overflow, sign
		return
	}
	carry, overflow := c.A.Subtract(value, c.SR.Carry)
	c.SR.Carry = carry
	c.SR.Overflow = overflow
	c.setZN(c.A)
}

func (c *CPU) compare(r interface {
	Value() uint8
}, value uint8) {
	rv := r.Value()
	c.SR.Carry = rv >= value
	c.SR.Zero = rv == value
	c.SR.Sign = (rv-value)&0x80 != 0
}

// arr implements the well-known ARR illegal opcode flag quirk: AND, then a
// rotate-right whose carry/overflow are derived from bits 6 and 5 of the
// result rather than the usual shifted-out bit.
func (c *CPU) arr(value uint8) {
	c.A.AND(value)
	t := c.A.Value()
	result := t >> 1
	if c.SR.Carry {
		result |= 0x80
	}
	c.A.Load(result)
	c.SR.Carry = result&0x40 != 0
	c.SR.Overflow = ((result>>6)^(result>>5))&0x01 != 0
	c.setZN(c.A)
}

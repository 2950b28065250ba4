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

package instructions

import (
	"fmt"
	"strings"
)

// Variant identifies which silicon revision an instruction table is built
// for. The C64 family uses three distinct NMOS revisions of the 6510/8500
// (differing only in how the most unstable illegal opcodes resolve) plus the
// CMOS 65C02 found in some 1541-II and aftermarket replacement boards.
type Variant int

const (
	NMOS6502 Variant = iota
	NMOS6502A
	NMOS6502C
	CMOS65C02
)

func (v Variant) String() string {
	switch v {
	case NMOS6502:
		return "NMOS 6502"
	case NMOS6502A:
		return "NMOS 6502A"
	case NMOS6502C:
		return "NMOS 6502C"
	case CMOS65C02:
		return "CMOS 65C02"
	}
	return "unknown variant"
}

// IsNMOS returns true for every variant whose illegal-opcode matrix and JAM
// behaviour is modelled; false only for CMOS65C02.
func (v Variant) IsNMOS() bool {
	return v != CMOS65C02
}

// ParseVariant resolves the spec's accepted CPU-variant strings
// ("6502", "6502A", "6502C", "65C02"), case-insensitively.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToUpper(s) {
	case "6502":
		return NMOS6502, nil
	case "6502A":
		return NMOS6502A, nil
	case "6502C":
		return NMOS6502C, nil
	case "65C02":
		return CMOS65C02, nil
	}
	return 0, fmt.Errorf("unrecognised CPU variant (%s)", s)
}

// Definition defines a single instruction: one per opcode, for a given
// Variant.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	Bytes          int
	Cycles         int
	AddressingMode AddressingMode
	PageSensitive  bool
	Effect         EffectCategory
	Undocumented   bool
	Stability      Stability
}

func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s pagesens=%t effect=%s]",
		defn.OpCode, defn.Operator, defn.Bytes, defn.Cycles, defn.AddressingMode, defn.PageSensitive, defn.Effect)
}

// IsBranch returns true if the instruction is one of the eight conditional
// branch instructions.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Effect == Flow
}

type entry struct {
	op      Operator
	mode    AddressingMode
	bytes   int
	cycles  int
	pagesen bool
	effect  EffectCategory
	undoc   bool
	stab    Stability
}

// baseTable holds every one of the 256 opcodes as decoded by NMOS 6502/6510
// silicon. For CMOS65C02, Definitions turns every undocumented slot into a
// NOP of the same byte and cycle count, except JAM, which becomes a
// single-cycle, single-byte NOP.
var baseTable = buildBaseTable()

// Definitions returns the 256-entry opcode table for the given chip variant.
// The table is rebuilt for CMOS65C02 so that every NMOS illegal opcode
// collapses into a NOP.
func Definitions(v Variant) []Definition {
	out := make([]Definition, 256)
	for i, e := range baseTable {
		d := Definition{
			OpCode:         uint8(i),
			Operator:       e.op,
			Bytes:          e.bytes,
			Cycles:         e.cycles,
			AddressingMode: e.mode,
			PageSensitive:  e.pagesen,
			Effect:         e.effect,
			Undocumented:   e.undoc,
			Stability:      e.stab,
		}
		if v == CMOS65C02 && e.undoc {
			d.Operator = NOP
			d.Undocumented = false
			d.Effect = Read
			// the 65C02 reclaims every illegal slot as a NOP of the same
			// addressing-mode width it occupied on NMOS parts, except JAM
			// which becomes a plain 1-byte/1-cycle implied NOP.
			if e.op == JAM {
				d.Bytes = 1
				d.Cycles = 1
				d.AddressingMode = Implied
				d.PageSensitive = false
			}
		}
		out[i] = d
	}
	return out
}

func e(op Operator, mode AddressingMode, bytes, cycles int, pagesen bool, effect EffectCategory) entry {
	return entry{op: op, mode: mode, bytes: bytes, cycles: cycles, pagesen: pagesen, effect: effect}
}

func u(op Operator, mode AddressingMode, bytes, cycles int, pagesen bool, effect EffectCategory, stab Stability) entry {
	return entry{op: op, mode: mode, bytes: bytes, cycles: cycles, pagesen: pagesen, effect: effect, undoc: true, stab: stab}
}

func buildBaseTable() [256]entry {
	var t [256]entry

	set := func(op uint8, v entry) {
		t[op] = v
	}

	// documented instructions
	set(0x00, e(BRK, Implied, 1, 7, false, Interrupt))
	set(0x01, e(ORA, IndexedIndirect, 2, 6, false, Read))
	set(0x05, e(ORA, ZeroPage, 2, 3, false, Read))
	set(0x06, e(ASL, ZeroPage, 2, 5, false, RMW))
	set(0x08, e(PHP, Implied, 1, 3, false, Write))
	set(0x09, e(ORA, Immediate, 2, 2, false, Read))
	set(0x0A, e(ASL, Implied, 1, 2, false, RMW))
	set(0x0D, e(ORA, Absolute, 3, 4, false, Read))
	set(0x0E, e(ASL, Absolute, 3, 6, false, RMW))

	set(0x10, e(BPL, Relative, 2, 2, true, Flow))
	set(0x11, e(ORA, IndirectIndexed, 2, 5, true, Read))
	set(0x15, e(ORA, ZeroPageIndexedX, 2, 4, false, Read))
	set(0x16, e(ASL, ZeroPageIndexedX, 2, 6, false, RMW))
	set(0x18, e(CLC, Implied, 1, 2, false, Read))
	set(0x19, e(ORA, AbsoluteIndexedY, 3, 4, true, Read))
	set(0x1D, e(ORA, AbsoluteIndexedX, 3, 4, true, Read))
	set(0x1E, e(ASL, AbsoluteIndexedX, 3, 7, false, RMW))

	set(0x20, e(JSR, Absolute, 3, 6, false, Subroutine))
	set(0x21, e(AND, IndexedIndirect, 2, 6, false, Read))
	set(0x24, e(BIT, ZeroPage, 2, 3, false, Read))
	set(0x25, e(AND, ZeroPage, 2, 3, false, Read))
	set(0x26, e(ROL, ZeroPage, 2, 5, false, RMW))
	set(0x28, e(PLP, Implied, 1, 4, false, Read))
	set(0x29, e(AND, Immediate, 2, 2, false, Read))
	set(0x2A, e(ROL, Implied, 1, 2, false, RMW))
	set(0x2C, e(BIT, Absolute, 3, 4, false, Read))
	set(0x2D, e(AND, Absolute, 3, 4, false, Read))
	set(0x2E, e(ROL, Absolute, 3, 6, false, RMW))

	set(0x30, e(BMI, Relative, 2, 2, true, Flow))
	set(0x31, e(AND, IndirectIndexed, 2, 5, true, Read))
	set(0x35, e(AND, ZeroPageIndexedX, 2, 4, false, Read))
	set(0x36, e(ROL, ZeroPageIndexedX, 2, 6, false, RMW))
	set(0x38, e(SEC, Implied, 1, 2, false, Read))
	set(0x39, e(AND, AbsoluteIndexedY, 3, 4, true, Read))
	set(0x3D, e(AND, AbsoluteIndexedX, 3, 4, true, Read))
	set(0x3E, e(ROL, AbsoluteIndexedX, 3, 7, false, RMW))

	set(0x40, e(RTI, Implied, 1, 6, false, Interrupt))
	set(0x41, e(EOR, IndexedIndirect, 2, 6, false, Read))
	set(0x45, e(EOR, ZeroPage, 2, 3, false, Read))
	set(0x46, e(LSR, ZeroPage, 2, 5, false, RMW))
	set(0x48, e(PHA, Implied, 1, 3, false, Write))
	set(0x49, e(EOR, Immediate, 2, 2, false, Read))
	set(0x4A, e(LSR, Implied, 1, 2, false, RMW))
	set(0x4C, e(JMP, Absolute, 3, 3, false, Flow))
	set(0x4D, e(EOR, Absolute, 3, 4, false, Read))
	set(0x4E, e(LSR, Absolute, 3, 6, false, RMW))

	set(0x50, e(BVC, Relative, 2, 2, true, Flow))
	set(0x51, e(EOR, IndirectIndexed, 2, 5, true, Read))
	set(0x55, e(EOR, ZeroPageIndexedX, 2, 4, false, Read))
	set(0x56, e(LSR, ZeroPageIndexedX, 2, 6, false, RMW))
	set(0x58, e(CLI, Implied, 1, 2, false, Read))
	set(0x59, e(EOR, AbsoluteIndexedY, 3, 4, true, Read))
	set(0x5D, e(EOR, AbsoluteIndexedX, 3, 4, true, Read))
	set(0x5E, e(LSR, AbsoluteIndexedX, 3, 7, false, RMW))

	set(0x60, e(RTS, Implied, 1, 6, false, Subroutine))
	set(0x61, e(ADC, IndexedIndirect, 2, 6, false, Read))
	set(0x65, e(ADC, ZeroPage, 2, 3, false, Read))
	set(0x66, e(ROR, ZeroPage, 2, 5, false, RMW))
	set(0x68, e(PLA, Implied, 1, 4, false, Read))
	set(0x69, e(ADC, Immediate, 2, 2, false, Read))
	set(0x6A, e(ROR, Implied, 1, 2, false, RMW))
	set(0x6C, e(JMP, Indirect, 3, 5, false, Flow))
	set(0x6D, e(ADC, Absolute, 3, 4, false, Read))
	set(0x6E, e(ROR, Absolute, 3, 6, false, RMW))

	set(0x70, e(BVS, Relative, 2, 2, true, Flow))
	set(0x71, e(ADC, IndirectIndexed, 2, 5, true, Read))
	set(0x75, e(ADC, ZeroPageIndexedX, 2, 4, false, Read))
	set(0x76, e(ROR, ZeroPageIndexedX, 2, 6, false, RMW))
	set(0x78, e(SEI, Implied, 1, 2, false, Read))
	set(0x79, e(ADC, AbsoluteIndexedY, 3, 4, true, Read))
	set(0x7D, e(ADC, AbsoluteIndexedX, 3, 4, true, Read))
	set(0x7E, e(ROR, AbsoluteIndexedX, 3, 7, false, RMW))

	set(0x81, e(STA, IndexedIndirect, 2, 6, false, Write))
	set(0x84, e(STY, ZeroPage, 2, 3, false, Write))
	set(0x85, e(STA, ZeroPage, 2, 3, false, Write))
	set(0x86, e(STX, ZeroPage, 2, 3, false, Write))
	set(0x88, e(DEY, Implied, 1, 2, false, Read))
	set(0x8A, e(TXA, Implied, 1, 2, false, Read))
	set(0x8C, e(STY, Absolute, 3, 4, false, Write))
	set(0x8D, e(STA, Absolute, 3, 4, false, Write))
	set(0x8E, e(STX, Absolute, 3, 4, false, Write))

	set(0x90, e(BCC, Relative, 2, 2, true, Flow))
	set(0x91, e(STA, IndirectIndexed, 2, 6, false, Write))
	set(0x94, e(STY, ZeroPageIndexedX, 2, 4, false, Write))
	set(0x95, e(STA, ZeroPageIndexedX, 2, 4, false, Write))
	set(0x96, e(STX, ZeroPageIndexedY, 2, 4, false, Write))
	set(0x98, e(TYA, Implied, 1, 2, false, Read))
	set(0x99, e(STA, AbsoluteIndexedY, 3, 5, false, Write))
	set(0x9A, e(TXS, Implied, 1, 2, false, Read))
	set(0x9D, e(STA, AbsoluteIndexedX, 3, 5, false, Write))

	set(0xA0, e(LDY, Immediate, 2, 2, false, Read))
	set(0xA1, e(LDA, IndexedIndirect, 2, 6, false, Read))
	set(0xA2, e(LDX, Immediate, 2, 2, false, Read))
	set(0xA4, e(LDY, ZeroPage, 2, 3, false, Read))
	set(0xA5, e(LDA, ZeroPage, 2, 3, false, Read))
	set(0xA6, e(LDX, ZeroPage, 2, 3, false, Read))
	set(0xA8, e(TAY, Implied, 1, 2, false, Read))
	set(0xA9, e(LDA, Immediate, 2, 2, false, Read))
	set(0xAA, e(TAX, Implied, 1, 2, false, Read))
	set(0xAC, e(LDY, Absolute, 3, 4, false, Read))
	set(0xAD, e(LDA, Absolute, 3, 4, false, Read))
	set(0xAE, e(LDX, Absolute, 3, 4, false, Read))

	set(0xB0, e(BCS, Relative, 2, 2, true, Flow))
	set(0xB1, e(LDA, IndirectIndexed, 2, 5, true, Read))
	set(0xB4, e(LDY, ZeroPageIndexedX, 2, 4, false, Read))
	set(0xB5, e(LDA, ZeroPageIndexedX, 2, 4, false, Read))
	set(0xB6, e(LDX, ZeroPageIndexedY, 2, 4, false, Read))
	set(0xB8, e(CLV, Implied, 1, 2, false, Read))
	set(0xB9, e(LDA, AbsoluteIndexedY, 3, 4, true, Read))
	set(0xBA, e(TSX, Implied, 1, 2, false, Read))
	set(0xBC, e(LDY, AbsoluteIndexedX, 3, 4, true, Read))
	set(0xBD, e(LDA, AbsoluteIndexedX, 3, 4, true, Read))
	set(0xBE, e(LDX, AbsoluteIndexedY, 3, 4, true, Read))

	set(0xC0, e(CPY, Immediate, 2, 2, false, Read))
	set(0xC1, e(CMP, IndexedIndirect, 2, 6, false, Read))
	set(0xC4, e(CPY, ZeroPage, 2, 3, false, Read))
	set(0xC5, e(CMP, ZeroPage, 2, 3, false, Read))
	set(0xC6, e(DEC, ZeroPage, 2, 5, false, RMW))
	set(0xC8, e(INY, Implied, 1, 2, false, Read))
	set(0xC9, e(CMP, Immediate, 2, 2, false, Read))
	set(0xCA, e(DEX, Implied, 1, 2, false, Read))
	set(0xCC, e(CPY, Absolute, 3, 4, false, Read))
	set(0xCD, e(CMP, Absolute, 3, 4, false, Read))
	set(0xCE, e(DEC, Absolute, 3, 6, false, RMW))

	set(0xD0, e(BNE, Relative, 2, 2, true, Flow))
	set(0xD1, e(CMP, IndirectIndexed, 2, 5, true, Read))
	set(0xD5, e(CMP, ZeroPageIndexedX, 2, 4, false, Read))
	set(0xD6, e(DEC, ZeroPageIndexedX, 2, 6, false, RMW))
	set(0xD8, e(CLD, Implied, 1, 2, false, Read))
	set(0xD9, e(CMP, AbsoluteIndexedY, 3, 4, true, Read))
	set(0xDD, e(CMP, AbsoluteIndexedX, 3, 4, true, Read))
	set(0xDE, e(DEC, AbsoluteIndexedX, 3, 7, false, RMW))

	set(0xE0, e(CPX, Immediate, 2, 2, false, Read))
	set(0xE1, e(SBC, IndexedIndirect, 2, 6, false, Read))
	set(0xE4, e(CPX, ZeroPage, 2, 3, false, Read))
	set(0xE5, e(SBC, ZeroPage, 2, 3, false, Read))
	set(0xE6, e(INC, ZeroPage, 2, 5, false, RMW))
	set(0xE8, e(INX, Implied, 1, 2, false, Read))
	set(0xE9, e(SBC, Immediate, 2, 2, false, Read))
	set(0xEA, e(NOP, Implied, 1, 2, false, Read))
	set(0xEC, e(CPX, Absolute, 3, 4, false, Read))
	set(0xED, e(SBC, Absolute, 3, 4, false, Read))
	set(0xEE, e(INC, Absolute, 3, 6, false, RMW))

	set(0xF0, e(BEQ, Relative, 2, 2, true, Flow))
	set(0xF1, e(SBC, IndirectIndexed, 2, 5, true, Read))
	set(0xF5, e(SBC, ZeroPageIndexedX, 2, 4, false, Read))
	set(0xF6, e(INC, ZeroPageIndexedX, 2, 6, false, RMW))
	set(0xF8, e(SED, Implied, 1, 2, false, Read))
	set(0xF9, e(SBC, AbsoluteIndexedY, 3, 4, true, Read))
	set(0xFD, e(SBC, AbsoluteIndexedX, 3, 4, true, Read))
	set(0xFE, e(INC, AbsoluteIndexedX, 3, 7, false, RMW))

	// undocumented NOPs (stable): implied (1-byte), zeropage, zp,x, absolute, abs,x
	for _, op := range []uint8{0x1A, 0x3A, 0x5A, 0x7A, 0xDA, 0xFA} {
		set(op, u(NOP, Implied, 1, 2, false, Read, Stable))
	}
	for _, op := range []uint8{0x80, 0x82, 0x89, 0xC2, 0xE2} {
		set(op, u(NOP, Immediate, 2, 2, false, Read, Stable))
	}
	for _, op := range []uint8{0x04, 0x44, 0x64} {
		set(op, u(NOP, ZeroPage, 2, 3, false, Read, Stable))
	}
	for _, op := range []uint8{0x14, 0x34, 0x54, 0x74, 0xD4, 0xF4} {
		set(op, u(NOP, ZeroPageIndexedX, 2, 4, false, Read, Stable))
	}
	set(0x0C, u(NOP, Absolute, 3, 4, false, Read, Stable))
	for _, op := range []uint8{0x1C, 0x3C, 0x5C, 0x7C, 0xDC, 0xFC} {
		set(op, u(NOP, AbsoluteIndexedX, 3, 4, true, Read, Stable))
	}

	// JAM/KIL: halts NMOS silicon; every documented encoding is stable.
	for _, op := range []uint8{0x02, 0x12, 0x22, 0x32, 0x42, 0x52, 0x62, 0x72, 0x92, 0xB2, 0xD2, 0xF2} {
		set(op, u(JAM, Implied, 1, 0, false, Interrupt, Stable))
	}

	// SLO (ASO): ASL then ORA
	set(0x03, u(SLO, IndexedIndirect, 2, 8, false, RMW, Stable))
	set(0x07, u(SLO, ZeroPage, 2, 5, false, RMW, Stable))
	set(0x0F, u(SLO, Absolute, 3, 6, false, RMW, Stable))
	set(0x13, u(SLO, IndirectIndexed, 2, 8, false, RMW, Stable))
	set(0x17, u(SLO, ZeroPageIndexedX, 2, 6, false, RMW, Stable))
	set(0x1B, u(SLO, AbsoluteIndexedY, 3, 7, false, RMW, Stable))
	set(0x1F, u(SLO, AbsoluteIndexedX, 3, 7, false, RMW, Stable))

	// RLA: ROL then AND
	set(0x23, u(RLA, IndexedIndirect, 2, 8, false, RMW, Stable))
	set(0x27, u(RLA, ZeroPage, 2, 5, false, RMW, Stable))
	set(0x2F, u(RLA, Absolute, 3, 6, false, RMW, Stable))
	set(0x33, u(RLA, IndirectIndexed, 2, 8, false, RMW, Stable))
	set(0x37, u(RLA, ZeroPageIndexedX, 2, 6, false, RMW, Stable))
	set(0x3B, u(RLA, AbsoluteIndexedY, 3, 7, false, RMW, Stable))
	set(0x3F, u(RLA, AbsoluteIndexedX, 3, 7, false, RMW, Stable))

	// SRE (LSE): LSR then EOR
	set(0x43, u(SRE, IndexedIndirect, 2, 8, false, RMW, Stable))
	set(0x47, u(SRE, ZeroPage, 2, 5, false, RMW, Stable))
	set(0x4F, u(SRE, Absolute, 3, 6, false, RMW, Stable))
	set(0x53, u(SRE, IndirectIndexed, 2, 8, false, RMW, Stable))
	set(0x57, u(SRE, ZeroPageIndexedX, 2, 6, false, RMW, Stable))
	set(0x5B, u(SRE, AbsoluteIndexedY, 3, 7, false, RMW, Stable))
	set(0x5F, u(SRE, AbsoluteIndexedX, 3, 7, false, RMW, Stable))

	// RRA: ROR then ADC
	set(0x63, u(RRA, IndexedIndirect, 2, 8, false, RMW, Stable))
	set(0x67, u(RRA, ZeroPage, 2, 5, false, RMW, Stable))
	set(0x6F, u(RRA, Absolute, 3, 6, false, RMW, Stable))
	set(0x73, u(RRA, IndirectIndexed, 2, 8, false, RMW, Stable))
	set(0x77, u(RRA, ZeroPageIndexedX, 2, 6, false, RMW, Stable))
	set(0x7B, u(RRA, AbsoluteIndexedY, 3, 7, false, RMW, Stable))
	set(0x7F, u(RRA, AbsoluteIndexedX, 3, 7, false, RMW, Stable))

	// SAX (AXS): store A&X
	set(0x83, u(SAX, IndexedIndirect, 2, 6, false, Write, Stable))
	set(0x87, u(SAX, ZeroPage, 2, 3, false, Write, Stable))
	set(0x8F, u(SAX, Absolute, 3, 4, false, Write, Stable))
	set(0x97, u(SAX, ZeroPageIndexedY, 2, 4, false, Write, Stable))

	// LAX: load A and X simultaneously
	set(0xA3, u(LAX, IndexedIndirect, 2, 6, false, Read, Stable))
	set(0xA7, u(LAX, ZeroPage, 2, 3, false, Read, Stable))
	set(0xAF, u(LAX, Absolute, 3, 4, false, Read, Stable))
	set(0xB3, u(LAX, IndirectIndexed, 2, 5, true, Read, Stable))
	set(0xB7, u(LAX, ZeroPageIndexedY, 2, 4, false, Read, Stable))
	set(0xBF, u(LAX, AbsoluteIndexedY, 3, 4, true, Read, Stable))

	// DCP (DCM): DEC then CMP
	set(0xC3, u(DCP, IndexedIndirect, 2, 8, false, RMW, Stable))
	set(0xC7, u(DCP, ZeroPage, 2, 5, false, RMW, Stable))
	set(0xCF, u(DCP, Absolute, 3, 6, false, RMW, Stable))
	set(0xD3, u(DCP, IndirectIndexed, 2, 8, false, RMW, Stable))
	set(0xD7, u(DCP, ZeroPageIndexedX, 2, 6, false, RMW, Stable))
	set(0xDB, u(DCP, AbsoluteIndexedY, 3, 7, false, RMW, Stable))
	set(0xDF, u(DCP, AbsoluteIndexedX, 3, 7, false, RMW, Stable))

	// ISC (ISB/INS): INC then SBC
	set(0xE3, u(ISC, IndexedIndirect, 2, 8, false, RMW, Stable))
	set(0xE7, u(ISC, ZeroPage, 2, 5, false, RMW, Stable))
	set(0xEF, u(ISC, Absolute, 3, 6, false, RMW, Stable))
	set(0xF3, u(ISC, IndirectIndexed, 2, 8, false, RMW, Stable))
	set(0xF7, u(ISC, ZeroPageIndexedX, 2, 6, false, RMW, Stable))
	set(0xFB, u(ISC, AbsoluteIndexedY, 3, 7, false, RMW, Stable))
	set(0xFF, u(ISC, AbsoluteIndexedX, 3, 7, false, RMW, Stable))

	// immediate-mode illegals
	set(0x0B, u(ANC, Immediate, 2, 2, false, Read, Stable))
	set(0x2B, u(ANC, Immediate, 2, 2, false, Read, Stable)) // ANC2, same effect as 0x0B
	set(0x4B, u(ALR, Immediate, 2, 2, false, Read, Stable)) // a.k.a ASR
	set(0x6B, u(ARR, Immediate, 2, 2, false, Read, Stable))
	set(0xCB, u(SBX, Immediate, 2, 2, false, Read, Stable)) // a.k.a AXS
	set(0xEB, u(SBC, Immediate, 2, 2, false, Read, Stable)) // duplicate documented SBC
	set(0x8B, u(ANE, Immediate, 2, 2, false, Read, Unstable))
	set(0xAB, u(LXA, Immediate, 2, 2, false, Read, Unstable))

	// highly unstable store/transfer illegals, sensitive to page-crossing
	// address-bus glitches; behaviour varies chip to chip
	set(0x9F, u(SHA, AbsoluteIndexedY, 3, 5, false, Write, Magic))
	set(0x93, u(SHA, IndirectIndexed, 2, 6, false, Write, Magic))
	set(0x9E, u(SHX, AbsoluteIndexedY, 3, 5, false, Write, Magic))
	set(0x9C, u(SHY, AbsoluteIndexedX, 3, 5, false, Write, Magic))
	set(0x9B, u(TAS, AbsoluteIndexedY, 3, 5, false, Write, Magic))
	set(0xBB, u(LAS, AbsoluteIndexedY, 3, 4, true, Read, Unstable))

	return t
}

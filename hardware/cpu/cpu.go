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

// Package cpu implements a cycle-accurate MOS 6502/6510/65C02, parameterised
// by instructions.Variant so the same fetch/decode/execute loop serves both
// the host C64's 6510 and the 1541 drive's 6502.
package cpu

import (
	"github.com/jetsetilly/go64/errors"
	"github.com/jetsetilly/go64/hardware/cpu/execution"
	"github.com/jetsetilly/go64/hardware/cpu/instructions"
	"github.com/jetsetilly/go64/hardware/cpu/registers"
	"github.com/jetsetilly/go64/hardware/memory/bus"
)

// CPU is a complete 6502-family processor core, decoupled from any
// particular memory map via the bus.CPUBus interface. Two independent
// instances exist in a running system: one for the host C64, one for the
// 1541 drive.
type CPU struct {
	PC registers.ProgramCounter
	A  registers.Data
	X  registers.Data
	Y  registers.Data
	SP registers.StackPointer
	SR registers.Status

	variant instructions.Variant
	table   [256]instructions.Definition

	mem bus.CPUBus

	// CyclesExecuted is monotone for the lifetime of the CPU; never reset
	// except by a fresh NewCPU.
	CyclesExecuted uint64

	// cycles is the signed remaining budget for the current Execute() call.
	cycles int

	halted       bool
	jammedOpcode uint8
	irqPending   bool
	nmiPending   bool

	periodicInterval    uint64
	lastCallbackCycles  uint64
	PeriodicCallback    func() error
	PostTickCallback    func(cyclesConsumed int) error
	PCCallback          func()

	result execution.Result
}

// NewCPU creates a CPU wired to mem, with its instruction table built for
// variant.
func NewCPU(mem bus.CPUBus, variant instructions.Variant) *CPU {
	c := &CPU{mem: mem, variant: variant}
	defs := instructions.Definitions(variant)
	copy(c.table[:], defs)
	return c
}

// SetPeriodicCallback installs a callback invoked every interval cycles of
// CPU execution. Used to advance the VIC-II raster and the CIA timers.
func (c *CPU) SetPeriodicCallback(interval uint64, cb func() error) {
	c.periodicInterval = interval
	c.PeriodicCallback = cb
}

// Halted reports whether the processor has jammed on a NMOS KIL/JAM opcode.
func (c *CPU) Halted() bool { return c.halted }

// SetIRQ sets or clears the level-triggered IRQ line. The line is owned by
// whichever interrupt source raises it (a CIA's ICR); the CPU only samples
// it once per instruction and never clears it itself.
func (c *CPU) SetIRQ(asserted bool) { c.irqPending = asserted }

// PulseNMI raises the edge-triggered NMI line. The CPU clears it again the
// moment it is serviced.
func (c *CPU) PulseNMI() { c.nmiPending = true }

// LastResult returns the most recently completed instruction's execution
// trace.
func (c *CPU) LastResult() execution.Result { return c.result }

// Reset performs the 6502 reset sequence: S -= 3 conceptually settles at
// $FD, P becomes $34, PC loads from the reset vector, and exactly 7 cycles
// are consumed.
func (c *CPU) Reset() error {
	c.SP = registers.NewStackPointer(0xfd)
	c.SR.Load(0x34)
	c.SR.Break = true // Load leaves B untouched; P reads back as $34
	c.halted = false
	c.irqPending = false
	c.nmiPending = false

	lo, err := c.mem.Read(0xfffc)
	if err != nil {
		return err
	}
	hi, err := c.mem.Read(0xfffd)
	if err != nil {
		return err
	}
	c.PC.Load(uint16(hi)<<8 | uint16(lo))

	c.spend(7)

	return nil
}

// StallCycles bills n cycles against the current Execute() budget without
// running any instruction, modelling the CPU being held off the bus by a
// RDY-line assertion (VIC-II badline / sprite DMA). Cycles are billed before
// the next instruction fetch, between two executeOneInstruction calls, so a
// stall never splits an instruction that is already underway.
func (c *CPU) StallCycles(n int) {
	if n <= 0 {
		return
	}
	c.spend(n)
}

// spend bills n cycles against the current Execute() budget. Individual
// memory accesses are NOT billed as they happen: an instruction's handler
// runs atomically, and the full cycle cost (from the instruction table,
// adjusted for page-crossing and taken branches) is billed exactly once at
// the end of executeOneInstruction, per the spec's "handler is atomic" rule.
func (c *CPU) spend(n int) {
	c.cycles -= n
	c.CyclesExecuted += uint64(n)
}

func (c *CPU) read(addr uint16) (uint8, error) {
	return c.mem.Read(addr)
}

func (c *CPU) write(addr uint16, data uint8) error {
	return c.mem.Write(addr, data)
}

func (c *CPU) fetchByte() (uint8, error) {
	v, err := c.mem.Read(c.PC.Address())
	c.PC.Add(1)
	return v, err
}

// fetchWord reads two bytes and advances PC by two, matching the real
// 6502's byte-at-a-time operand fetch (as opposed to advancing PC by one
// 16-bit step, a classic off-by-one that would desync every subsequent
// fetch).
func (c *CPU) fetchWord() (uint16, error) {
	lo, err := c.fetchByte()
	if err != nil {
		return 0, err
	}
	hi, err := c.fetchByte()
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

func (c *CPU) push(v uint8) error {
	err := c.mem.Write(c.SP.Address(), v)
	c.SP.Subtract(1, false)
	return err
}

func (c *CPU) pull() (uint8, error) {
	c.SP.Add(1, false)
	return c.mem.Read(c.SP.Address())
}

func (c *CPU) pushWord(v uint16) error {
	if err := c.push(uint8(v >> 8)); err != nil {
		return err
	}
	return c.push(uint8(v))
}

func (c *CPU) pullWord() (uint16, error) {
	lo, err := c.pull()
	if err != nil {
		return 0, err
	}
	hi, err := c.pull()
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// Execute drives the core until the cycle budget is exhausted, maxInstructions
// instructions have been run (0 means unlimited), or an error is returned
// from an opcode handler, a memory access or a callback.
func (c *CPU) Execute(cycles int, maxInstructions int) error {
	c.cycles = cycles

	for {
		if c.cycles <= 0 {
			return errors.Errorf(errors.CycleExhaustion)
		}

		if c.nmiPending {
			if err := c.serviceInterrupt(0xfffa); err != nil {
				return err
			}
			c.nmiPending = false
			if c.PCCallback != nil {
				c.PCCallback()
			}
		} else if c.irqPending && !c.SR.InterruptDisable {
			if err := c.serviceInterrupt(0xfffe); err != nil {
				return err
			}
			if c.PCCallback != nil {
				c.PCCallback()
			}
		} else if c.halted {
			return errors.Errorf(errors.CPUKilled, c.jammedOpcode, c.PC.Address())
		} else {
			if err := c.executeOneInstruction(); err != nil {
				return err
			}
			if c.PCCallback != nil {
				c.PCCallback()
			}
		}

		if c.PeriodicCallback != nil && c.periodicInterval > 0 && c.CyclesExecuted-c.lastCallbackCycles >= c.periodicInterval {
			c.lastCallbackCycles = c.CyclesExecuted
			if err := c.PeriodicCallback(); err != nil {
				return err
			}
		}

		if c.PostTickCallback != nil {
			if err := c.PostTickCallback(c.result.Cycles); err != nil {
				return err
			}
		}

		if maxInstructions > 0 {
			maxInstructions--
			if maxInstructions == 0 {
				return nil
			}
		}
	}
}

// serviceInterrupt implements the shared IRQ/NMI sequence: push PC, push P
// with the break bit forced clear, set the interrupt-disable flag, and load
// PC from the given vector. Costs 7 cycles.
func (c *CPU) serviceInterrupt(vector uint16) error {
	if err := c.pushWord(c.PC.Address()); err != nil {
		return err
	}
	if err := c.push(c.SR.PushValue(false)); err != nil {
		return err
	}
	c.SR.InterruptDisable = true

	lo, err := c.read(vector)
	if err != nil {
		return err
	}
	hi, err := c.read(vector + 1)
	if err != nil {
		return err
	}
	c.PC.Load(uint16(hi)<<8 | uint16(lo))

	c.spend(7)

	return nil
}

// executeOneInstruction fetches, decodes and runs a single instruction,
// populating c.result with its trace.
func (c *CPU) executeOneInstruction() error {
	c.result.Reset()
	c.result.Address = c.PC.Address()

	op, err := c.fetchByte()
	if err != nil {
		return err
	}
	c.result.ByteCount = 1

	defn := c.table[op]
	c.result.Defn = &defn

	if defn.Operator == instructions.JAM {
		c.halted = true
		c.jammedOpcode = op
		c.PC.Add(0xffff) // step back to the JAM opcode's own address
		c.result.Final = true
		return nil
	}

	addr, pageFault, err := c.resolveAddress(&defn)
	if err != nil {
		return err
	}
	c.result.ByteCount = defn.Bytes
	c.result.PageFault = pageFault

	cycles := defn.Cycles
	if !defn.IsBranch() && defn.PageSensitive && pageFault {
		cycles++
	}

	branched, err := c.execute(&defn, addr)
	if err != nil {
		return err
	}

	if defn.IsBranch() {
		c.result.BranchSuccess = branched
		if branched {
			cycles++
			if pageFault {
				cycles++
			}
		}
	}

	// the 65C02 spends one extra cycle on decimal-mode ADC/SBC
	if c.variant == instructions.CMOS65C02 && c.SR.DecimalMode &&
		(defn.Operator == instructions.ADC || defn.Operator == instructions.SBC) {
		cycles++
	}

	c.result.Cycles = cycles
	c.spend(cycles)
	c.result.Final = true

	return nil
}

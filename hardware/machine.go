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

package hardware

import (
	"github.com/jetsetilly/go64/diskimage"
	"github.com/jetsetilly/go64/errors"
	"github.com/jetsetilly/go64/hardware/cia"
	"github.com/jetsetilly/go64/hardware/cpu"
	"github.com/jetsetilly/go64/hardware/cpu/instructions"
	"github.com/jetsetilly/go64/hardware/drive"
	"github.com/jetsetilly/go64/hardware/governor"
	"github.com/jetsetilly/go64/hardware/iec"
	"github.com/jetsetilly/go64/hardware/memory"
	"github.com/jetsetilly/go64/hardware/memory/cartridge"
	"github.com/jetsetilly/go64/hardware/sid"
	"github.com/jetsetilly/go64/hardware/vic"
)

// ROMs bundles the three ROM images a Machine needs at construction.
type ROMs struct {
	Basic  []uint8
	Kernal []uint8
	Char   []uint8
}

// Machine is the root of a C64 emulation: the 6510, the memory bus, the
// VIC-II, both CIAs, SID, the frame governor, and an optional 1541 drive
// wired over the IEC bus.
type Machine struct {
	CPU  *cpu.CPU
	Bus  *memory.Bus
	VIC  *vic.VIC
	SID  *sid.SID
	CIA1 *cia.CIA
	CIA2 *cia.CIA

	Governor *governor.Governor

	IEC   *iec.Bus
	Drive *drive.Drive

	cyclesPerFrame int
}

// NewMachine constructs a complete C64, wiring the CPU's periodic callback
// to the VIC-II raster advance (one call per scanline) and both CIAs'
// timers to the post-tick callback (ticked every instruction by the
// cycles it actually consumed).
func NewMachine(roms ROMs, variant instructions.Variant, chip vic.Chip) *Machine {
	m := &Machine{}

	m.Bus = memory.NewBus(roms.Basic, roms.Kernal, roms.Char)
	m.CPU = cpu.NewCPU(m.Bus, variant)

	m.VIC = vic.New(chip)
	m.SID = sid.New()
	m.CIA1 = cia.New(cia.IRQ)
	m.CIA2 = cia.New(cia.NMI)
	cia.AttachPeer(m.CIA1, m.CIA2)

	m.Bus.AttachChips(m.VIC, m.SID, m.CIA1, m.CIA2)

	m.VIC.ReadBank = func(off uint16) uint8 {
		base := m.vicBankBase()
		v, _ := m.Bus.Peek(base + off)
		return v
	}
	m.VIC.ReadColour = func(off uint16) uint8 {
		v, _ := m.Bus.Peek(0xd800 + off)
		return v & 0x0f
	}
	m.VIC.SetIRQ = m.CPU.SetIRQ

	m.CIA1.OnPortAWrite = func(pra, ddra uint8) {}
	m.CIA2.OnPortAWrite = func(pra, ddra uint8) {
		if m.IEC != nil {
			m.IEC.Update()
		}
	}

	m.Governor = governor.New(chip.RefreshHz)
	m.cyclesPerFrame = chip.CyclesPerLine * chip.Lines

	m.CPU.SetPeriodicCallback(uint64(m.VIC.CyclesPerLine()), func() error {
		m.VIC.Update()
		return nil
	})
	m.CPU.PostTickCallback = func(cyclesConsumed int) error {
		m.CIA1.Update(cyclesConsumed, false)
		if m.CIA1.IRQLine() {
			m.CPU.SetIRQ(true)
		} else {
			m.CPU.SetIRQ(false)
		}
		m.CIA2.Update(cyclesConsumed, false)
		if m.CIA2.IRQLine() {
			m.CPU.PulseNMI()
		}
		if stall := m.VIC.TakeStall(); stall > 0 {
			// badline/sprite-DMA RDY assertion: bill the stolen cycles
			// against the budget directly, between instructions, the same
			// way the real CPU is held off the bus between opcode fetches.
			m.CPU.StallCycles(stall)
		}
		if m.Drive != nil {
			if err := m.Drive.Advance(cyclesConsumed); err != nil {
				return err
			}
			m.IEC.Update()
		}
		return nil
	}

	return m
}

// vicBankBase derives the VIC-II's 16KiB bank base from CIA #2 port A bits
// 0-1, inverted, per spec.
func (m *Machine) vicBankBase() uint16 {
	bank := m.CIA2.ReadRegister(cia.PRA) & 0x03
	return uint16(^bank&0x03) << 14
}

// AttachCartridge installs a cartridge image.
func (m *Machine) AttachCartridge(c *cartridge.Cartridge) {
	m.Bus.AttachCartridge(c)
}

// AttachDrive wires a 1541 onto the IEC bus, driven in lockstep with the
// host CPU via the post-tick callback.
func (m *Machine) AttachDrive(d *drive.Drive) {
	m.IEC = iec.New()
	m.IEC.Attach(cia2IECDevice{m.CIA2})
	m.IEC.Attach(d)
	m.Drive = d
}

// cia2IECDevice adapts CIA #2's port A to iec.Device.
type cia2IECDevice struct{ cia2 *cia.CIA }

func (c cia2IECDevice) IECOutputs() (atn, clk, data bool) {
	pra := c.cia2.ReadRegister(cia.PRA)
	return pra&0x08 != 0, pra&0x10 != 0, pra&0x20 != 0
}

// InsertDisk attaches a disk image to the currently-attached drive.
func (m *Machine) InsertDisk(disk diskimage.DiskImage) error {
	return m.Drive.InsertDisk(disk)
}

// Reset performs a full power-on reset of the host CPU, bus and (if
// attached) the drive.
func (m *Machine) Reset() error {
	m.Bus.Reset()
	m.VIC.Reset()
	m.SID.Reset()
	m.CIA1.Reset()
	m.CIA2.Reset()
	if m.Drive != nil {
		if err := m.Drive.Reset(); err != nil {
			return err
		}
	}
	return m.CPU.Reset()
}

// RunFrame executes exactly one video frame's worth of CPU cycles and
// paces real time through the governor.
func (m *Machine) RunFrame() error {
	m.Governor.StartFrame()
	err := m.CPU.Execute(m.cyclesPerFrame, 0)
	m.Governor.FinishFrame(m.cyclesPerFrame)
	if errors.Is(err, errors.CycleExhaustion) {
		return nil
	}
	return err
}

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

// Package drive emulates a Commodore 1541 disk drive: its own 6502 (an
// NMOS part, like the host's 6510), two 6522 VIAs, and the GCR bit-stream
// read head that turns a DiskImage's sector bytes into what the drive's own
// firmware actually sees on the bus.
package drive

import (
	"github.com/jetsetilly/go64/diskimage"
	"github.com/jetsetilly/go64/errors"
	"github.com/jetsetilly/go64/hardware/cpu"
	"github.com/jetsetilly/go64/hardware/cpu/instructions"
	"github.com/jetsetilly/go64/hardware/via6522"
)

// ExecutionMode names the drive's concurrency model. The value is stored in
// Drive.Mode but nothing reads it: in every mode the drive CPU runs
// in-process, in lockstep with the host, through Advance.
type ExecutionMode int

const (
	// Synchronous runs the drive CPU in-process, per host-cycle lockstep.
	Synchronous ExecutionMode = iota
	// Threaded runs exactly as Synchronous; no atomic bus-state updates
	// or separate thread are involved.
	Threaded
	// Multiprocess runs exactly as Synchronous; no separate process or
	// iec.TickEvents handshake is involved.
	Multiprocess
)

// iecPort is the via6522.ParallelPeripheral adapter wiring VIA1 port B to
// the three IEC lines. The 1541's device address (an optional hardware
// strap, not modelled here) would also live on VIA1 port B; this wiring
// covers ATN/CLK/DATA only.
type iecPort struct {
	mask uint8
	bus  *busState
}

// busState is the minimal piece of IEC wiring a 1541 contributes: which of
// its own lines it is pulling low, recomputed from VIA1's port B output.
type busState struct {
	atn, clk, data bool
}

// PinMask implements via6522.ParallelPeripheral.
func (p *iecPort) PinMask() uint8 { return p.mask }

// Read implements via6522.ParallelPeripheral: the drive observes the bus's
// current (wired-OR) state as its port input.
func (p *iecPort) Read() uint8 {
	var v uint8
	if !p.bus.atn { // pulled lines read as 0, released lines read as 1
		v |= 0x01
	}
	if !p.bus.clk {
		v |= 0x02
	}
	if !p.bus.data {
		v |= 0x04
	}
	return v
}

// Write implements via6522.ParallelPeripheral: a 0 bit drives the
// corresponding line low (open-collector).
func (p *iecPort) Write(data uint8) {
	p.bus.clk = data&0x02 == 0
	p.bus.data = data&0x04 == 0
}

// Drive is a complete 1541: its own CPU, two VIAs and the GCR head
// position on whatever DiskImage is currently inserted.
type Drive struct {
	Mode ExecutionMode

	cpu  *cpu.CPU
	via1 *via6522.VIA
	via2 *via6522.VIA
	bus  *driveBus
	iec  busState

	disk       diskimage.DiskImage
	track      int // 1-based current head track
	trackData  []byte
	bitPos     int
	id1, id2   byte

	irqPending bool
}

// New constructs a 1541 drive with the given DOS ROM image (16KiB,
// $C000-$FFFF) and disk controller IDs (used when GCR-encoding sector
// headers; typically derived from the disk's BAM).
func New(rom []uint8, id1, id2 byte) *Drive {
	d := &Drive{id1: id1, id2: id2, track: 18}

	d.via1 = via6522.New()
	d.via2 = via6522.New()
	d.via1.SetIRQ = d.setIRQFromVIA
	d.via2.SetIRQ = d.setIRQFromVIA

	d.via1.AttachToPortB(&iecPort{mask: 0x07, bus: &d.iec})

	d.bus = newDriveBus(d.via1, d.via2, rom)
	d.cpu = cpu.NewCPU(d.bus, instructions.NMOS6502)

	return d
}

func (d *Drive) setIRQFromVIA(asserted bool) {
	// both VIAs wire-OR onto the drive CPU's single IRQ input; dropping one
	// source's assertion while the other still holds must not clear IRQ,
	// so the line is recomputed from both VIAs' IFR bit 7 on every change,
	// same as the real open-collector line.
	d.irqPending = d.via1.Read(via6522.IFR)&0x80 != 0 || d.via2.Read(via6522.IFR)&0x80 != 0
	d.cpu.SetIRQ(d.irqPending)
}

// Reset resets the drive's CPU and both VIAs.
func (d *Drive) Reset() error {
	d.via1.Reset()
	d.via2.Reset()
	d.irqPending = false
	return d.cpu.Reset()
}

// InsertDisk attaches a disk image and re-encodes the currently-positioned
// track's GCR bit stream.
func (d *Drive) InsertDisk(disk diskimage.DiskImage) error {
	d.disk = disk
	return d.seekTrack(d.track)
}

func (d *Drive) seekTrack(track int) error {
	n := d.disk.SectorsPerTrack(track)
	if n == 0 {
		return errors.Errorf(errors.DiskSectorOOB, track, 0)
	}
	sectors := make([][]byte, n)
	for s := 0; s < n; s++ {
		data, err := d.disk.ReadSector(track, s)
		if err != nil {
			return err
		}
		sectors[s] = data
	}
	d.track = track
	d.trackData = EncodeTrack(track, sectors, d.id1, d.id2)
	d.bitPos = 0
	return nil
}

// Advance runs the drive CPU on a budget of cycles cycles (its last
// instruction may overdraw the budget), in lockstep with the host CPU's
// post_tick_callback, then ticks both VIA timers by cycles. The caller
// updates the IEC bus afterwards. This 1:1 interleaving is required for the
// bit-banged serial protocol's timing to be correct.
func (d *Drive) Advance(cycles int) error {
	if err := d.cpu.Execute(cycles, 0); err != nil {
		if !errors.Is(err, errors.CycleExhaustion) {
			return err
		}
	}
	d.via1.Update(cycles)
	d.via2.Update(cycles)
	return nil
}

// IECOutputs implements iec.Device.
func (d *Drive) IECOutputs() (atn, clk, data bool) {
	return false, d.iec.clk, d.iec.data
}

// NextGCRByte returns the next byte of the current track's GCR bit stream,
// advancing the (simplified, byte-granular) head position and wrapping at
// the end of the track, approximating the continuously-rotating physical
// disk.
func (d *Drive) NextGCRByte() uint8 {
	if len(d.trackData) == 0 {
		return 0
	}
	b := d.trackData[d.bitPos]
	d.bitPos = (d.bitPos + 1) % len(d.trackData)
	return b
}

// CurrentTrack reports the 1-based track the head is positioned over.
func (d *Drive) CurrentTrack() int { return d.track }

// StepTrack moves the head by delta tracks (typically ±1, driven by the
// drive firmware's stepper-motor bit pattern on VIA2 port B) and re-encodes
// the new track.
func (d *Drive) StepTrack(delta int) error {
	if d.disk == nil {
		return nil
	}
	next := d.track + delta
	if next < 1 {
		next = 1
	}
	if next > 35 {
		next = 35
	}
	if next == d.track {
		return nil
	}
	return d.seekTrack(next)
}

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

// Package sid implements the MOS 6581/8580 SID register file, $D400-$D7FF
// mirrored every $20. Waveform synthesis is out of scope; this package's
// job is that every write lands somewhere and every read returns something
// plausible, so the bus's "every I/O sub-range has a handler" invariant
// holds without a host-side audio backend attached.
package sid

// Register offsets, per voice (×3, each 7 registers starting at its own
// base) plus the shared filter/volume block.
const (
	v1FreqLo = 0x00
	v1FreqHi = 0x01
	v1PwLo   = 0x02
	v1PwHi   = 0x03
	v1Ctrl   = 0x04
	v1AD     = 0x05
	v1SR     = 0x06

	voiceRegs = 7

	FCLo       = 0x15
	FCHi       = 0x16
	ResFilt    = 0x17
	ModeVol    = 0x18
	PotX       = 0x19
	PotY       = 0x1a
	OscVoice3  = 0x1b
	EnvVoice3  = 0x1c
)

// SID holds the write-only register file plus the few registers that have
// defined read semantics (the two POT inputs, and voice 3's oscillator/
// envelope outputs, used by software as a pseudo-random source).
type SID struct {
	regs [0x19]uint8

	// PotX/PotY, when set, supply the paddle/mouse sample-and-hold inputs.
	PotX func() uint8
	PotY func() uint8

	// noise feeds the voice-3 oscillator readback a plausible look of
	// ever-changing output without modelling the actual waveform generator;
	// software polling $D41B for randomness only needs the byte to change.
	noise uint8
}

// New constructs an empty SID register file.
func New() *SID { return &SID{} }

// Reset clears every register.
func (s *SID) Reset() {
	s.regs = [0x19]uint8{}
	s.noise = 0
}

// ReadRegister implements bus.ChipRegisters.
func (s *SID) ReadRegister(reg uint8) uint8 {
	reg &= 0x1f
	switch {
	case reg == PotX:
		if s.PotX != nil {
			return s.PotX()
		}
		return 0xff
	case reg == PotY:
		if s.PotY != nil {
			return s.PotY()
		}
		return 0xff
	case reg == OscVoice3:
		s.noise += 0x2b
		return s.noise
	case reg == EnvVoice3:
		return s.regs[v1AD+2*voiceRegs]
	case int(reg) < len(s.regs):
		// the write-only voice/filter registers read back as open bus; the
		// real chip returns the last value driven on the external data bus,
		// approximated here as zero.
		return 0x00
	}
	return 0xff
}

// WriteRegister implements bus.ChipRegisters.
func (s *SID) WriteRegister(reg uint8, data uint8) {
	reg &= 0x1f
	if int(reg) < len(s.regs) {
		s.regs[reg] = data
	}
}

// Register returns the last value written to the given offset (0-24),
// for host introspection (a debugger, or a future audio backend).
func (s *SID) Register(reg uint8) uint8 {
	if int(reg) < len(s.regs) {
		return s.regs[reg]
	}
	return 0
}

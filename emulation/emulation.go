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

// Package emulation defines a small set of interfaces for observing and
// controlling a running Machine without importing the hardware package
// directly. The debugger and cmd/c64run do not use it: both import the
// hardware package themselves.
package emulation

// State indicates the emulation's state.
type State int

// List of possible emulation states.
const (
	Initialising State = iota
	Running
	Paused
	Stepping
	Ending
)

// Machine is a minimal abstraction of the C64 hardware. Exists mainly to
// avoid a circular import to the hardware package.
//
// The only likely implementation of this interface is the hardware.Machine
// type.
type Machine interface {
	RunFrame() error
	Reset() error
}

// Debugger is a minimal abstraction of the debugger. Exists mainly to avoid
// a circular import to the debugger package.
//
// The only likely implementation of this interface is the debugger.Debugger
// type.
type Debugger interface {
}

// Emulation defines the public functions required for a front end to
// interface with the underlying emulator.
type Emulation interface {
	Machine() Machine
	Debugger() Debugger
	State() State
	Pause(set bool)
}

// Event describes something that happened in the emulation outside the
// scope of the Machine itself, e.g. a pause toggled from the front end.
type Event int

// List of currently defined events.
const (
	EventPause Event = iota
	EventRun
)

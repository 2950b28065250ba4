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

package debugger

import (
	"fmt"
	"io"
	"sort"

	"github.com/jetsetilly/go64/errors"
	"github.com/jetsetilly/go64/hardware"
)

// Debugger wraps a running Machine with breakpoint tracking and a REPL.
type Debugger struct {
	Machine *hardware.Machine
	term    Terminal

	breakpoints map[uint16]bool
	quit        bool
}

// NewDebugger creates a Debugger attached to machine, reading commands from
// and writing output to term.
func NewDebugger(machine *hardware.Machine, term Terminal) *Debugger {
	return &Debugger{
		Machine:     machine,
		term:        term,
		breakpoints: make(map[uint16]bool),
	}
}

// Run drives the REPL until the "quit" command is issued or the terminal
// reaches EOF.
func (dbg *Debugger) Run() error {
	defer dbg.term.Close()

	for !dbg.quit {
		line, err := dbg.term.Prompt(fmt.Sprintf("[$%04x] > ", dbg.Machine.CPU.PC.Address()))
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		if err := dbg.dispatch(line); err != nil {
			dbg.term.Output(fmt.Sprintf("error: %v\n", err))
		}
	}

	return nil
}

// step executes exactly one CPU instruction.
func (dbg *Debugger) step() error {
	err := dbg.Machine.CPU.Execute(1<<30, 1)
	if errors.Is(err, errors.CycleExhaustion) {
		return nil
	}
	return err
}

// continueUntilBreak single-steps the CPU until a breakpointed PC is
// reached, or the CPU halts.
func (dbg *Debugger) continueUntilBreak() error {
	for {
		if err := dbg.step(); err != nil {
			return err
		}
		if dbg.Machine.CPU.Halted() {
			dbg.term.Output("cpu halted\n")
			return nil
		}
		if dbg.breakpoints[dbg.Machine.CPU.PC.Address()] {
			dbg.term.Output(fmt.Sprintf("breakpoint hit at $%04x\n", dbg.Machine.CPU.PC.Address()))
			return nil
		}
	}
}

// sortedBreakpoints returns every armed breakpoint address, ascending.
func (dbg *Debugger) sortedBreakpoints() []uint16 {
	addrs := make([]uint16, 0, len(dbg.breakpoints))
	for a := range dbg.breakpoints {
		addrs = append(addrs, a)
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })
	return addrs
}

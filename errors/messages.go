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

package errors

// error messages
const (
	// panics
	PanicError = "panic: %v: %v"

	// sentinels
	UserInterrupt = "user interrupt"
	UserQuit      = "user quit"
	PowerOff      = "emulated machine has been powered off"

	// program modes
	PlayError        = "error emulating machine: %v"
	DebuggerError    = "error debugging machine: %v"
	PerformanceError = "error during performance profiling: %v"

	// debugger
	InvalidTarget   = "invalid target (%v)"
	CommandError    = "%v"
	TerminalError   = "%v"
	BreakpointError = "breakpoint error: %v"

	// commandline
	ParserError     = "parser error: %v"
	HelpError       = "help error: %v"
	ValidationError = "%v"

	// script
	ScriptFileError       = "script error: %v"
	ScriptFileUnavailable = "script error: cannot open script file (%v)"
	ScriptEnd             = "end of script (%v)"

	// symbols
	SymbolsFileError       = "symbols error: error processing symbols file: %v"
	SymbolsFileUnavailable = "symbols error: no symbols file for %v"
	SymbolUnknown          = "symbols error: unrecognised symbol (%v)"

	// cartridgeloader
	CartridgeLoader = "cartridge loading error: %v"

	// cpu
	InvalidResult            = "cpu error: %v"
	InvalidDuringExecution   = "cpu error: invalid operation mid-instruction (%v)"
	CPUBug                   = "cpu bug: %v"
	UnimplementedInstruction = "cpu error: unimplemented instruction (%#02x) at (%#04x)"
	CPUKilled                = "cpu error: processor jammed by KIL/JAM opcode (%#02x) at (%#04x)"

	// CycleExhaustion is not a failure: it's the sentinel Execute returns
	// when its cycle budget reaches zero, for the caller to catch and
	// resume with a fresh budget.
	CycleExhaustion = "cpu: cycle budget exhausted"

	// memory bus
	UnpokeableAddress = "memory error: cannot poke address (%v)"
	UnpeekableAddress = "memory error: cannot peek address (%v)"
	MemoryBusError    = "memory error: inaccessible address (%v)"

	// cartridges
	CartridgeError       = "cartridge error: %v"
	CartridgeEjected     = "cartridge error: no cartridge attached"
	CartridgeNotMappable = "cartridge error: bank %d cannot be mapped to that address (%#04x)"
	CartridgeUnsupported = "cartridge error: unsupported mapper (%v), loading as error cartridge"
	CartridgePatchOOB    = "cartridge error: patch offset too high (%#04x)"

	// IEC bus / disk drive
	IECError          = "iec error: %v"
	DiskImageError    = "disk image error: %v"
	DiskSectorOOB     = "disk image error: track %d sector %d does not exist"
	DriveError        = "drive error: %v"
	GCREncodingError  = "gcr encoding error: %v"

	// VIC-II / CIA / SID register access
	ChipRegisterError = "chip register error: %v"

	// governor
	GovernorError = "frame governor error: %v"

	// hiscore/linter/prefs carried over from teacher's ambient tooling
	Linter        = "linter: %v"
	Prefs         = "prefs: %v"
	PrefsNoFile   = "prefs: no file (%s)"
	PrefsNotValid = "prefs: not a valid prefs file (%s)"
)

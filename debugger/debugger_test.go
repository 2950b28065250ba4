package debugger_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jetsetilly/go64/debugger"
	"github.com/jetsetilly/go64/hardware"
	"github.com/jetsetilly/go64/hardware/cpu/instructions"
	"github.com/jetsetilly/go64/hardware/vic"
)

func newTestMachine(t *testing.T) *hardware.Machine {
	t.Helper()
	m := hardware.NewMachine(hardware.ROMs{}, instructions.NMOS6502, vic.Chip6569)
	// with no KERNAL the reset vector is zeroed RAM, which would land the
	// CPU on the processor port at $0000, an address Poke refuses; point
	// the vector at $1000 instead.
	if err := m.Bus.Poke(0xfffc, 0x00); err != nil {
		t.Fatalf("Poke: %v", err)
	}
	if err := m.Bus.Poke(0xfffd, 0x10); err != nil {
		t.Fatalf("Poke: %v", err)
	}
	if err := m.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	// seed the reset address with a harmless NOP so stepping has somewhere
	// to go instead of re-triggering a BRK back to the same address.
	if err := m.Bus.Poke(m.CPU.PC.Address(), 0xea); err != nil {
		t.Fatalf("Poke: %v", err)
	}
	return m
}

// run feeds a scripted session (one command per line) through a Debugger
// backed by an in-memory terminal and returns everything written to output.
func run(t *testing.T, m *hardware.Machine, script string) string {
	t.Helper()
	var out bytes.Buffer
	term := debugger.NewScriptedTerminal(strings.NewReader(script), &out)
	dbg := debugger.NewDebugger(m, term)
	if err := dbg.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return out.String()
}

func TestRegistersCommandReportsPC(t *testing.T) {
	m := newTestMachine(t)
	out := run(t, m, "registers\nquit\n")

	if !strings.Contains(out, "PC=$") {
		t.Errorf("output %q does not contain a PC= field", out)
	}
}

func TestStepAdvancesPC(t *testing.T) {
	m := newTestMachine(t)
	pcBefore := m.CPU.PC.Address()

	out := run(t, m, "step\nregisters\nquit\n")

	if strings.Contains(out, "error:") {
		t.Fatalf("unexpected error in output: %q", out)
	}
	if m.CPU.PC.Address() == pcBefore {
		t.Errorf("PC unchanged after step (was $%04x)", pcBefore)
	}
}

func TestBreakAndListBreakpoints(t *testing.T) {
	m := newTestMachine(t)
	out := run(t, m, "break c000\nbreakpoints\nquit\n")

	if !strings.Contains(out, "$c000") {
		t.Errorf("output %q does not list the armed breakpoint", out)
	}
}

func TestUnrecognisedCommandReportsError(t *testing.T) {
	m := newTestMachine(t)
	out := run(t, m, "frobnicate\nquit\n")

	if !strings.Contains(out, "error:") {
		t.Errorf("output %q does not report an error for an unknown command", out)
	}
}

func TestMemoryAndPoke(t *testing.T) {
	m := newTestMachine(t)
	out := run(t, m, "poke 0200 ab\nmem 0200 1\nquit\n")

	if !strings.Contains(out, "ab") {
		t.Errorf("output %q does not show the poked byte", out)
	}
}

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/go64/errors"
	"github.com/jetsetilly/go64/hardware/cpu"
	"github.com/jetsetilly/go64/hardware/cpu/instructions"
)

// mockMem is a flat 64K RAM implementing bus.CPUBus, for CPU tests that
// don't need a real memory map.
type mockMem struct {
	ram [0x10000]uint8
}

func newMockMem() *mockMem { return &mockMem{} }

func (m *mockMem) Read(addr uint16) (uint8, error)        { return m.ram[addr], nil }
func (m *mockMem) Write(addr uint16, data uint8) error    { m.ram[addr] = data; return nil }
func (m *mockMem) Peek(addr uint16) (uint8, error)        { return m.ram[addr], nil }
func (m *mockMem) Poke(addr uint16, data uint8) error     { m.ram[addr] = data; return nil }

func (m *mockMem) putProgram(origin uint16, bytes ...uint8) {
	for i, b := range bytes {
		m.ram[origin+uint16(i)] = b
	}
}

func TestResetLoadsVectorAndStatus(t *testing.T) {
	mem := newMockMem()
	mem.ram[0xfffc] = 0x00
	mem.ram[0xfffd] = 0x80

	c := cpu.NewCPU(mem, instructions.NMOS6502)
	if err := c.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	if got := c.PC.Address(); got != 0x8000 {
		t.Errorf("PC after reset = $%04x, want $8000", got)
	}
	if got := c.SR.Value(); got != 0x34 {
		t.Errorf("P after reset = $%02x, want $34", got)
	}
	if got := c.SP.Value(); got != 0xfd {
		t.Errorf("SP after reset = $%02x, want $fd", got)
	}
	if got := c.CyclesExecuted; got != 7 {
		t.Errorf("CyclesExecuted after reset = %d, want 7 (the reset sequence's own cost)", got)
	}
}

func TestJMPAbsoluteLoadsFetchedWord(t *testing.T) {
	mem := newMockMem()
	mem.ram[0xfffc], mem.ram[0xfffd] = 0x00, 0x10

	// JMP $1234 at $1000
	mem.putProgram(0x1000, 0x4c, 0x34, 0x12)

	c := cpu.NewCPU(mem, instructions.NMOS6502)
	if err := c.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	if err := c.Execute(1<<20, 1); err != nil && !errors.Is(err, errors.CycleExhaustion) {
		t.Fatalf("Execute: %v", err)
	}

	if got := c.PC.Address(); got != 0x1234 {
		t.Errorf("PC after JMP = $%04x, want $1234", got)
	}
}

func TestExecuteIsResumableAcrossCycleExhaustion(t *testing.T) {
	mem := newMockMem()
	mem.ram[0xfffc], mem.ram[0xfffd] = 0x00, 0x10

	// three NOPs ($EA), each costing 2 cycles on NMOS 6502.
	mem.putProgram(0x1000, 0xea, 0xea, 0xea)

	c := cpu.NewCPU(mem, instructions.NMOS6502)
	if err := c.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	// a budget of 3 cycles runs out partway through the second NOP's cost;
	// the NOP still completes (an instruction is atomic and may overdraw the
	// budget) and Execute then stops cleanly, and a second call must
	// continue from exactly where the first left off.
	err := c.Execute(3, 0)
	if !errors.Is(err, errors.CycleExhaustion) {
		t.Fatalf("first Execute: got %v, want CycleExhaustion", err)
	}
	if got := c.PC.Address(); got != 0x1002 {
		t.Errorf("PC after first Execute = $%04x, want $1002 (two NOPs consumed)", got)
	}

	err = c.Execute(2, 0)
	if !errors.Is(err, errors.CycleExhaustion) {
		t.Fatalf("second Execute: got %v, want CycleExhaustion", err)
	}
	if got := c.PC.Address(); got != 0x1003 {
		t.Errorf("PC after second Execute = $%04x, want $1003 (the remaining NOP consumed)", got)
	}
}

func TestMaxInstructionsStepsExactlyOne(t *testing.T) {
	mem := newMockMem()
	mem.ram[0xfffc], mem.ram[0xfffd] = 0x00, 0x10
	mem.putProgram(0x1000, 0xea, 0xea)

	c := cpu.NewCPU(mem, instructions.NMOS6502)
	if err := c.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	if err := c.Execute(1<<20, 1); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := c.PC.Address(); got != 0x1001 {
		t.Errorf("PC after single-stepping one NOP = $%04x, want $1001", got)
	}
}

func TestStallCyclesBillsBudgetWithoutRunningAnInstruction(t *testing.T) {
	mem := newMockMem()
	mem.ram[0xfffc], mem.ram[0xfffd] = 0x00, 0x10
	mem.putProgram(0x1000, 0xea)

	c := cpu.NewCPU(mem, instructions.NMOS6502)
	if err := c.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	before := c.CyclesExecuted
	c.StallCycles(40)
	if got := c.CyclesExecuted - before; got != 40 {
		t.Errorf("CyclesExecuted advanced by %d, want 40", got)
	}
	if got := c.PC.Address(); got != 0x1000 {
		t.Errorf("PC moved after a stall (no instruction should have run): $%04x", got)
	}
}

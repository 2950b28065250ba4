package vic_test

import (
	"testing"

	"github.com/jetsetilly/go64/hardware/vic"
)

func TestChipByName(t *testing.T) {
	tests := []struct {
		name string
		want vic.Chip
		ok   bool
	}{
		{"PAL", vic.Chip6569, true},
		{"6569", vic.Chip6569, true},
		{"NTSC", vic.Chip6567R8, true},
		{"6567R56A", vic.Chip6567Old, true},
		{"bogus", vic.Chip{}, false},
	}
	for _, tc := range tests {
		got, ok := vic.ChipByName(tc.name)
		if ok != tc.ok || got != tc.want {
			t.Errorf("ChipByName(%q) = %v, %v; want %v, %v", tc.name, got, ok, tc.want, tc.ok)
		}
	}
}

func TestRasterWraps(t *testing.T) {
	v := vic.New(vic.Chip6569)
	for i := 0; i < vic.Chip6569.Lines; i++ {
		v.Update()
	}
	if v.Raster() != 0 {
		t.Errorf("raster after one full frame = %d, want 0", v.Raster())
	}
}

func TestFrameCompletePublishesSnapshot(t *testing.T) {
	v := vic.New(vic.Chip6569)
	bank := make([]uint8, 16384)
	bank[0x1234] = 0x42
	v.ReadBank = func(off uint16) uint8 { return bank[off] }
	v.ReadColour = func(off uint16) uint8 { return 0x0a }

	var got *vic.Snapshot
	v.OnFrameComplete = func(s vic.Snapshot) { got = &s }

	for i := 0; i < vic.Chip6569.Lines; i++ {
		v.Update()
	}

	if got == nil {
		t.Fatalf("OnFrameComplete never called")
	}
	if got.Bank[0x1234] != 0x42 {
		t.Errorf("snapshot bank byte = %#02x, want $42", got.Bank[0x1234])
	}
	if got.Colour[0] != 0x0a {
		t.Errorf("snapshot colour byte = %#02x, want $0a", got.Colour[0])
	}
}

func TestBadLineStallsCPU(t *testing.T) {
	v := vic.New(vic.Chip6569)

	// enable the display and align YScroll with raster 0x30 so the very
	// first scanline in the badline window latches a stall.
	v.WriteRegister(vic.RegControl1, 0x10) // DEN set, YScroll 0
	for i := uint16(0); i <= 0x30; i++ {
		v.Update()
	}
	if stall := v.TakeStall(); stall != 40 {
		t.Fatalf("stall at raster 0x30 = %d, want 40", stall)
	}

	// TakeStall clears the accumulator.
	if stall := v.TakeStall(); stall != 0 {
		t.Errorf("stall after TakeStall = %d, want 0", stall)
	}
}

func TestRasterIRQ(t *testing.T) {
	v := vic.New(vic.Chip6569)
	var irq bool
	v.SetIRQ = func(b bool) { irq = b }

	v.WriteRegister(vic.RegInterruptEn, 0x01) // enable raster IRQ
	v.WriteRegister(vic.RegRaster, 0x05)

	for i := 0; i < 6; i++ {
		v.Update()
	}

	if !irq {
		t.Fatalf("raster IRQ never asserted")
	}
}

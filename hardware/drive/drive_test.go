package drive_test

import (
	"testing"

	"github.com/jetsetilly/go64/hardware/drive"
)

type fakeDisk struct {
	sectorsPerTrack int
}

func (d fakeDisk) ReadSector(track, sector int) ([]byte, error) {
	sec := make([]byte, 256)
	sec[0] = byte(track)
	sec[1] = byte(sector)
	return sec, nil
}

func (d fakeDisk) SectorsPerTrack(track int) int { return d.sectorsPerTrack }

func TestNewStartsOnTrack18(t *testing.T) {
	d := drive.New(nil, 0x01, 0x00)
	if got := d.CurrentTrack(); got != 18 {
		t.Errorf("CurrentTrack() = %d, want 18", got)
	}
}

func TestInsertDiskEncodesTrack(t *testing.T) {
	d := drive.New(nil, 0x01, 0x00)
	if err := d.InsertDisk(fakeDisk{sectorsPerTrack: 21}); err != nil {
		t.Fatalf("InsertDisk: %v", err)
	}

	// the GCR-encoded track must contain something; a freshly-seeked track
	// with no disk would leave the byte stream empty and NextGCRByte
	// would always return 0.
	var sawNonZero bool
	for i := 0; i < 1024; i++ {
		if d.NextGCRByte() != 0 {
			sawNonZero = true
			break
		}
	}
	if !sawNonZero {
		t.Errorf("GCR track stream is all zero after InsertDisk")
	}
}

func TestStepTrackClampsToValidRange(t *testing.T) {
	d := drive.New(nil, 0x01, 0x00)
	if err := d.InsertDisk(fakeDisk{sectorsPerTrack: 21}); err != nil {
		t.Fatalf("InsertDisk: %v", err)
	}

	for i := 0; i < 40; i++ {
		if err := d.StepTrack(-1); err != nil {
			t.Fatalf("StepTrack(-1): %v", err)
		}
	}
	if got := d.CurrentTrack(); got != 1 {
		t.Errorf("CurrentTrack() after stepping past track 1 = %d, want 1", got)
	}

	for i := 0; i < 40; i++ {
		if err := d.StepTrack(1); err != nil {
			t.Fatalf("StepTrack(1): %v", err)
		}
	}
	if got := d.CurrentTrack(); got != 35 {
		t.Errorf("CurrentTrack() after stepping past track 35 = %d, want 35", got)
	}
}

func TestIECOutputsDefaultReleased(t *testing.T) {
	d := drive.New(nil, 0x01, 0x00)
	atn, clk, data := d.IECOutputs()
	if atn || clk || data {
		t.Errorf("IECOutputs() = %v,%v,%v on a fresh drive, want all released", atn, clk, data)
	}
}

func TestResetSucceedsWithoutROM(t *testing.T) {
	d := drive.New(nil, 0x01, 0x00)
	if err := d.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
}

func TestAdvanceRunsWithoutDisk(t *testing.T) {
	d := drive.New(nil, 0x01, 0x00)
	if err := d.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if err := d.Advance(100); err != nil {
		t.Fatalf("Advance: %v", err)
	}
}

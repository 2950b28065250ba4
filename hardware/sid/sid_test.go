package sid_test

import (
	"testing"

	"github.com/jetsetilly/go64/hardware/sid"
)

func TestWriteOnlyRegistersReadAsOpenBus(t *testing.T) {
	s := sid.New()
	s.WriteRegister(sid.FCLo, 0xab)

	if got := s.ReadRegister(sid.FCLo); got != 0x00 {
		t.Errorf("FCLo readback = %#02x, want $00 (write-only, open bus)", got)
	}
	if got := s.Register(sid.FCLo); got != 0xab {
		t.Errorf("Register(FCLo) = %#02x, want $ab (last value written)", got)
	}
}

func TestPotInputsDefaultToAllOnes(t *testing.T) {
	s := sid.New()
	if got := s.ReadRegister(sid.PotX); got != 0xff {
		t.Errorf("PotX with no source = %#02x, want $ff", got)
	}
}

func TestPotInputCallback(t *testing.T) {
	s := sid.New()
	s.PotX = func() uint8 { return 0x55 }
	if got := s.ReadRegister(sid.PotX); got != 0x55 {
		t.Errorf("PotX = %#02x, want $55", got)
	}
}

func TestOscVoice3Changes(t *testing.T) {
	s := sid.New()
	a := s.ReadRegister(sid.OscVoice3)
	b := s.ReadRegister(sid.OscVoice3)
	if a == b {
		t.Errorf("consecutive OscVoice3 reads both returned %#02x, want distinct values", a)
	}
}

func TestReset(t *testing.T) {
	s := sid.New()
	s.WriteRegister(sid.FCLo, 0xff)
	s.Reset()
	if got := s.Register(sid.FCLo); got != 0x00 {
		t.Errorf("Register(FCLo) after reset = %#02x, want $00", got)
	}
}

package via6522_test

import (
	"testing"

	"github.com/jetsetilly/go64/hardware/via6522"
)

type mockPeripheral struct {
	mask  uint8
	value uint8
	wrote uint8
}

func (p *mockPeripheral) PinMask() uint8 { return p.mask }
func (p *mockPeripheral) Read() uint8    { return p.value }
func (p *mockPeripheral) Write(v uint8)  { p.wrote = v }

func TestPortBReadMixesInputAndOutput(t *testing.T) {
	v := via6522.New()
	peripheral := &mockPeripheral{mask: 0xff, value: 0xf0}
	v.AttachToPortB(peripheral)

	v.Write(via6522.DDRB, 0x0f) // low nibble output
	v.Write(via6522.ORB, 0x05)

	got := v.Read(via6522.ORB)
	want := uint8(0xf5) // high nibble from peripheral input, low from ORB
	if got != want {
		t.Errorf("ORB readback = %#02x, want %#02x", got, want)
	}
}

func TestPortAWriteDispatchesToPeripheral(t *testing.T) {
	v := via6522.New()
	peripheral := &mockPeripheral{mask: 0x07}
	v.AttachToPortA(peripheral)

	v.Write(via6522.DDRA, 0x07)
	v.Write(via6522.ORA, 0xff)

	if peripheral.wrote != 0x07 {
		t.Errorf("peripheral saw write %#02x, want $07 (masked)", peripheral.wrote)
	}
}

func TestTimer1OneShotInterrupt(t *testing.T) {
	v := via6522.New()
	var irq bool
	v.SetIRQ = func(b bool) { irq = b }

	v.Write(via6522.ACR, 0x00) // one-shot mode
	v.Write(via6522.IER, 0xc0) // enable the T1 interrupt source
	v.Write(via6522.T1CL, 0x02)
	v.Write(via6522.T1CH, 0x00) // latches counter, starts timer

	v.Update(3)

	if !irq {
		t.Fatalf("timer 1 IRQ never asserted after underflow")
	}

	ifr := v.Read(via6522.IFR)
	if ifr&0x40 == 0 {
		t.Errorf("IFR T1 bit not set: %#02x", ifr)
	}
}

func TestReset(t *testing.T) {
	v := via6522.New()
	v.Write(via6522.DDRA, 0xff)
	v.Write(via6522.IER, 0xc0)

	v.Reset()

	if got := v.Read(via6522.DDRA); got != 0 {
		t.Errorf("DDRA after reset = %#02x, want $00", got)
	}
	if got := v.Read(via6522.IER); got&0x7f != 0 {
		t.Errorf("IER after reset = %#02x, want mask bits clear", got)
	}
}

package iec_test

import (
	"testing"

	"github.com/jetsetilly/go64/hardware/iec"
)

type fixedDevice struct {
	atn, clk, data bool
}

func (d fixedDevice) IECOutputs() (atn, clk, data bool) { return d.atn, d.clk, d.data }

func TestWiredOR(t *testing.T) {
	b := iec.New()
	b.Attach(fixedDevice{clk: true})
	b.Attach(fixedDevice{data: true})

	b.Update()

	if !b.CLK() {
		t.Errorf("CLK not asserted when one device pulls it low")
	}
	if !b.DATA() {
		t.Errorf("DATA not asserted when one device pulls it low")
	}
	if b.ATN() {
		t.Errorf("ATN asserted when no device pulls it low")
	}
}

func TestLineReleasesOnlyWhenAllDevicesRelease(t *testing.T) {
	b := iec.New()
	a := &toggleDevice{clk: true}
	c := &toggleDevice{clk: false}
	b.Attach(a)
	b.Attach(c)

	b.Update()
	if !b.CLK() {
		t.Fatalf("CLK not asserted while device a pulls it low")
	}

	a.clk = false
	b.Update()
	if b.CLK() {
		t.Errorf("CLK still asserted after every device released it")
	}
}

type toggleDevice struct {
	clk bool
}

func (d *toggleDevice) IECOutputs() (atn, clk, data bool) { return false, d.clk, false }

func TestNewTickEventsUnbuffered(t *testing.T) {
	ev := iec.NewTickEvents()
	select {
	case ev.Request <- struct{}{}:
		t.Errorf("send on Request succeeded without a receiver; channel should be unbuffered")
	default:
	}
}

package governor_test

import (
	"testing"

	"github.com/jetsetilly/go64/hardware/governor"
)

func TestAverageFrameRateZeroBeforeAnyFrame(t *testing.T) {
	g := governor.New(50.125)
	if got := g.AverageFrameRate(); got != 0 {
		t.Errorf("AverageFrameRate() before any frame = %v, want 0", got)
	}
	if got := g.AverageCyclesPerSecond(); got != 0 {
		t.Errorf("AverageCyclesPerSecond() before any frame = %v, want 0", got)
	}
}

func TestUnthrottledFramesAccumulateStats(t *testing.T) {
	g := governor.New(50.125)
	g.SetThrottle(false)

	for i := 0; i < 3; i++ {
		g.StartFrame()
		g.FinishFrame(19656) // one PAL frame's worth of cycles
	}

	if got := g.AverageCyclesPerSecond(); got <= 0 {
		t.Errorf("AverageCyclesPerSecond() = %v, want > 0 after running unthrottled frames", got)
	}
}

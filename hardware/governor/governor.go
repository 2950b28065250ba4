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

// Package governor throttles CPU execution to real time, one video frame at
// a time, and tracks rolling performance statistics for display. It never
// drops frames on overrun: a slow host simply falls behind real time.
package governor

import (
	"time"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// Governor paces repeated calls to RunFrame against a target refresh rate.
type Governor struct {
	refreshHz  float64
	throttle   bool
	lastFrame  time.Time

	frameDurations [10]time.Duration
	cycleCounts    [10]int
	sampleIndex    int
	samples        int

	dashboard *statsview.Manager
}

// New constructs a Governor targeting refreshHz frames per second.
// Throttling is enabled by default; call SetThrottle(false) to run flat out
// (useful for tests and headless batch runs).
func New(refreshHz float64) *Governor {
	return &Governor{refreshHz: refreshHz, throttle: true}
}

// SetThrottle enables or disables the sleep-to-real-time behaviour.
func (g *Governor) SetThrottle(on bool) { g.throttle = on }

// EnableDashboard starts the go-echarts/statsview HTTP diagnostics endpoint,
// which publishes the Go runtime statistics statsview collects by default;
// the governor's own frame and cycle-rate averages are not published there.
// Off by default so it never interferes with headless test runs.
func (g *Governor) EnableDashboard(addr string) {
	viewer.SetConfiguration(viewer.WithAddr(addr))
	g.dashboard = statsview.New()
	go g.dashboard.Start()
}

// StartFrame marks the beginning of a frame's CPU batch, for FinishFrame to
// measure against.
func (g *Governor) StartFrame() {
	if g.lastFrame.IsZero() {
		g.lastFrame = time.Now()
	}
}

// FinishFrame records how long the just-completed batch of cyclesThisFrame
// CPU cycles took, updates the rolling 10-frame averages, and — if
// throttling is enabled — sleeps until the next frame boundary computed
// from refreshHz.
func (g *Governor) FinishFrame(cyclesThisFrame int) {
	now := time.Now()
	elapsed := now.Sub(g.lastFrame)

	g.frameDurations[g.sampleIndex] = elapsed
	g.cycleCounts[g.sampleIndex] = cyclesThisFrame
	g.sampleIndex = (g.sampleIndex + 1) % len(g.frameDurations)
	if g.samples < len(g.frameDurations) {
		g.samples++
	}

	frameTarget := time.Duration(float64(time.Second) / g.refreshHz)
	if g.throttle {
		deadline := g.lastFrame.Add(frameTarget)
		if sleep := time.Until(deadline); sleep > 0 {
			time.Sleep(sleep)
		}
	}

	g.lastFrame = time.Now()
}

// AverageFrameRate returns the rolling average frames-per-second over the
// last (up to) 10 frames.
func (g *Governor) AverageFrameRate() float64 {
	if g.samples == 0 {
		return 0
	}
	var total time.Duration
	for i := 0; i < g.samples; i++ {
		total += g.frameDurations[i]
	}
	if total == 0 {
		return 0
	}
	return float64(g.samples) / total.Seconds()
}

// AverageCyclesPerSecond returns the rolling average CPU cycle throughput
// over the last (up to) 10 frames.
func (g *Governor) AverageCyclesPerSecond() float64 {
	if g.samples == 0 {
		return 0
	}
	var totalCycles int
	var totalTime time.Duration
	for i := 0; i < g.samples; i++ {
		totalCycles += g.cycleCounts[i]
		totalTime += g.frameDurations[i]
	}
	if totalTime == 0 {
		return 0
	}
	return float64(totalCycles) / totalTime.Seconds()
}

package system

import (
	"log"
	"time"

	"github.com/milk9111/revenant/obj"
)

// Telemetry accumulates frame statistics and logs a diagnostic line on a
// fixed real-time interval.
type Telemetry struct {
	interval time.Duration

	windowStart time.Time
	frameStart  time.Time
	frames      int
	frameTime   time.Duration

	// Totals survive across report windows.
	TotalTicks  uint64
	TotalFrames uint64
}

func NewTelemetry(interval time.Duration) *Telemetry {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	now := time.Now()
	return &Telemetry{interval: interval, windowStart: now}
}

// FrameStart marks the beginning of a host frame.
func (t *Telemetry) FrameStart() {
	if t == nil {
		return
	}
	t.frameStart = time.Now()
}

// FrameEnd closes the frame, folds in the tick count, and emits a report
// once per interval.
func (t *Telemetry) FrameEnd(s *obj.GameState, ticks int) {
	if t == nil {
		return
	}

	now := time.Now()
	t.frames++
	t.TotalFrames++
	t.TotalTicks += uint64(ticks)
	if !t.frameStart.IsZero() {
		t.frameTime += now.Sub(t.frameStart)
	}

	elapsed := now.Sub(t.windowStart)
	if elapsed < t.interval {
		return
	}

	fps := float64(t.frames) / elapsed.Seconds()
	avgMs := 0.0
	if t.frames > 0 {
		avgMs = float64(t.frameTime.Milliseconds()) / float64(t.frames)
	}
	log.Printf("telemetry fps=%.1f frame_ms=%.2f ticks=%d particles=%d platforms=%d enemies=%d",
		fps, avgMs, t.TotalTicks, len(s.Particles), len(s.Level.Platforms), len(s.Enemies))

	t.windowStart = now
	t.frames = 0
	t.frameTime = 0
}

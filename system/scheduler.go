package system

import (
	"github.com/milk9111/revenant/obj"
)

const (
	// TickSeconds is the fixed simulation step, 60 ticks per second.
	TickSeconds = 1.0 / 60.0

	// maxFrameSeconds clamps a single real-time delta so a stalled host
	// (window drag, debugger pause) can't queue a tick avalanche.
	maxFrameSeconds = 0.2
)

// InputProvider exposes the current state of the six input commands. The
// scheduler samples it once per tick; edge detection happens inside the
// simulation against the previous tick's sample.
type InputProvider interface {
	Sample() obj.Sample
}

// Scheduler converts real elapsed time into fixed simulation ticks and runs
// each tick's systems in a fixed order. It is the sole mutator of the game
// state.
type Scheduler struct {
	state       *obj.GameState
	input       InputProvider
	accumulator float64
}

func NewScheduler(state *obj.GameState, input InputProvider) *Scheduler {
	return &Scheduler{state: state, input: input}
}

// State returns the owned aggregate for read-only consumers.
func (sc *Scheduler) State() *obj.GameState {
	return sc.state
}

// Advance feeds realDelta seconds of wall-clock time into the accumulator,
// scaled by the current time dilation, and runs however many full ticks fit.
// Returns the number of ticks executed.
func (sc *Scheduler) Advance(realDelta float64) int {
	if realDelta > maxFrameSeconds {
		realDelta = maxFrameSeconds
	}
	if realDelta < 0 {
		realDelta = 0
	}

	s := sc.state

	// Slow motion decays in real time, not simulated time, so a frozen or
	// dilated simulation still recovers on schedule.
	if s.SlowMoTimer > 0 {
		s.SlowMoTimer -= realDelta
		if s.SlowMoTimer <= 0 {
			s.SlowMoTimer = 0
			s.TimeScale = 1
		}
	}

	sc.accumulator += realDelta * s.TimeScale

	ticks := 0
	for sc.accumulator >= TickSeconds {
		sc.accumulator -= TickSeconds
		sc.step()
		ticks++
	}
	return ticks
}

// step runs one fixed tick. Hit-stop freezes everything except its own
// counter.
func (sc *Scheduler) step() {
	s := sc.state

	if s.HitStopTimer > 0 {
		s.HitStopTimer--
		return
	}

	in := sc.input.Sample()

	s.Player.Update(s, in)
	s.Companion.Update(s)
	for _, sp := range s.Spawners {
		sp.Update(s)
	}
	for _, e := range s.Enemies {
		e.Update(s)
	}
	Separate(s)
	s.AgeEffects()
	s.CompactEnemies()
	s.AdvanceAnimation()
	s.Camera.Update(s)

	s.Tick++
}

// File: game/fixed_step.go
package game

import (
	"time"
)

// FixedStepper decouples ball speed from the host frame rate: elapsed wall time is
// accumulated and spent in whole ticks of a fixed period. A host that falls far
// behind runs at most maxCatchUp ticks per Advance and forgets the rest of the backlog.
type FixedStepper struct {
	game       *Game
	period     time.Duration
	maxCatchUp int
	acc        time.Duration
}

func NewFixedStepper(g *Game, period time.Duration, maxCatchUp int) *FixedStepper {
	if period <= 0 {
		period = g.Config().TickPeriod
	}
	if maxCatchUp <= 0 {
		maxCatchUp = 1
	}
	return &FixedStepper{game: g, period: period, maxCatchUp: maxCatchUp}
}

// Advance runs as many ticks as elapsed time pays for and returns their frames in order.
// The same input is applied to every tick of the batch.
func (s *FixedStepper) Advance(elapsed time.Duration, in Input) []Frame {
	if elapsed > 0 {
		s.acc += elapsed
	}

	ticks := int(s.acc / s.period)
	if ticks > s.maxCatchUp {
		ticks = s.maxCatchUp
		s.acc %= s.period
	} else {
		s.acc -= time.Duration(ticks) * s.period
	}

	frames := make([]Frame, 0, ticks)
	for i := 0; i < ticks; i++ {
		frames = append(frames, s.game.Tick(in))
	}
	return frames
}

// Pending is the accumulated time not yet spent on a tick.
func (s *FixedStepper) Pending() time.Duration {
	return s.acc
}

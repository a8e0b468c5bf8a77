// File: game/round.go
package game

import (
	"fmt"
)

// Side identifies one half of the court.
type Side int

const (
	SidePrimary Side = iota
	SideSecondary
)

func (s Side) String() string {
	switch s {
	case SidePrimary:
		return "primary"
	case SideSecondary:
		return "secondary"
	}
	return fmt.Sprintf("side(%d)", int(s))
}

func (s Side) Opponent() Side {
	if s == SidePrimary {
		return SideSecondary
	}
	return SidePrimary
}

func (s Side) MarshalText() ([]byte, error) {
	if s != SidePrimary && s != SideSecondary {
		return nil, fmt.Errorf("unknown side %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *Side) UnmarshalText(text []byte) error {
	switch string(text) {
	case "primary":
		*s = SidePrimary
	case "secondary":
		*s = SideSecondary
	default:
		return fmt.Errorf("unknown side %q", text)
	}
	return nil
}

// Score counts completed rounds per side. Counters only ever grow.
type Score struct {
	Primary   int `json:"primary"`
	Secondary int `json:"secondary"`
}

func (s Score) Of(side Side) int {
	if side == SidePrimary {
		return s.Primary
	}
	return s.Secondary
}

func (s *Score) Award(side Side) {
	if side == SidePrimary {
		s.Primary++
		return
	}
	s.Secondary++
}

// RoundOutcome is computed once per tick and consumed by the same tick.
type RoundOutcome struct {
	Scored bool
	Scorer Side
}

var noOutcome = RoundOutcome{}

func pointTo(side Side) RoundOutcome {
	return RoundOutcome{Scored: true, Scorer: side}
}

// PointEvent is what a completed round leaves behind for observers.
type PointEvent struct {
	Scorer Side   `json:"scorer"`
	Score  Score  `json:"score"`
	Tick   uint64 `json:"tick"`
}

// breachedGoal reports the scoring side when the ball reached a goal line.
// Reaching the left line scores for the secondary side and the right line for the primary.
func breachedGoal(ball Ball, arenaWidth int) RoundOutcome {
	switch {
	case ball.X <= 0:
		return pointTo(SideSecondary)
	case ball.X >= arenaWidth-ball.Breadth:
		return pointTo(SidePrimary)
	}
	return noOutcome
}

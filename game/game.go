// File: game/game.go
package game

import (
	"fmt"

	"github.com/lguibr/duopong/utils"
)

// Input is the host's snapshot for one tick.
type Input struct {
	TargetY int    `json:"targetY"` // Requested top ordinate of the primary paddle
	Frame   uint64 `json:"frame"`   // Host pacing counter, carried but never used numerically
}

// Game is one session: arena, two paddles, the ball and the score.
// It is not safe for concurrent use; share it through a GameActor.
type Game struct {
	cfg       utils.Config
	ball      Ball
	primary   Paddle
	secondary Paddle
	score     Score
	tick      uint64
}

// NewGame validates the configuration and sets up the first round.
func NewGame(cfg utils.Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	primary, secondary := newPaddles(cfg)
	return &Game{
		cfg:       cfg,
		ball:      centredBall(cfg.ArenaWidth, cfg.ArenaHeight, cfg.BallBreadth, cfg.LaunchAngle()),
		primary:   primary,
		secondary: secondary,
	}, nil
}

// MustNewGame is NewGame for configurations known to be valid.
func MustNewGame(cfg utils.Config) *Game {
	g, err := NewGame(cfg)
	if err != nil {
		panic(err)
	}
	return g
}

// Tick advances the session by exactly one step.
// Paddles move first, the opponent reading the ball before it moves, then the
// ball moves and a breached goal ends the round.
func (g *Game) Tick(in Input) Frame {
	g.primary = g.primary.FollowTarget(in.TargetY, g.cfg.ArenaHeight)
	g.secondary.Y = TrackBall(g.ball, g.secondary, g.cfg.ArenaHeight)

	next, cues, outcome := stepBall(g.ball, g.cfg.BallSpeed, g.cfg.ArenaWidth, g.cfg.ArenaHeight, g.primary, g.secondary)
	g.ball = next
	g.tick++

	var point *PointEvent
	if outcome.Scored {
		point = g.completeRound(outcome)
		cues = append(cues, CuePointLost)
	}

	frame := buildFrame(g.primary, g.secondary, g.ball, g.score, g.cfg.ArenaWidth, g.tick, cues)
	frame.Point = point
	return frame
}

// completeRound awards the point and serves again from the centre.
func (g *Game) completeRound(outcome RoundOutcome) *PointEvent {
	g.score.Award(outcome.Scorer)
	g.ball = centredBall(g.cfg.ArenaWidth, g.cfg.ArenaHeight, g.cfg.BallBreadth, g.cfg.LaunchAngle())
	return &PointEvent{Scorer: outcome.Scorer, Score: g.score, Tick: g.tick}
}

// Frame describes the current state without advancing it. It carries no cues.
func (g *Game) Frame() Frame {
	return buildFrame(g.primary, g.secondary, g.ball, g.score, g.cfg.ArenaWidth, g.tick, nil)
}

func (g *Game) Ball() Ball           { return g.ball }
func (g *Game) Primary() Paddle      { return g.primary }
func (g *Game) Secondary() Paddle    { return g.secondary }
func (g *Game) Score() Score         { return g.score }
func (g *Game) Ticks() uint64        { return g.tick }
func (g *Game) Config() utils.Config { return g.cfg }

// File: game/physics.go
package game

import (
	"math"
)

// paddleContact is a candidate collision between the ball and one paddle.
type paddleContact struct {
	result   CollisionResult
	paddle   Paddle
	side     Side
	embedded bool
}

// stepBall advances the ball by one tick against the walls and both paddles.
// When the move ends on a goal line the returned ball is the unmoved one and the
// outcome names the scorer; the caller is expected to reset the round.
func stepBall(ball Ball, speed float64, arenaWidth, arenaHeight int, primary, secondary Paddle) (Ball, []AudioCue, RoundOutcome) {
	velocity := ball.Velocity(speed)
	var cues []AudioCue

	next, bounced := wallPhase(ball, velocity, arenaHeight)
	if bounced {
		cues = append(cues, CueWallBounce)
	} else {
		var hit bool
		next, hit = paddlePhase(ball, velocity, primary, secondary)
		if hit {
			cues = append(cues, CuePaddleHit)
		}
	}

	if outcome := breachedGoal(next, arenaWidth); outcome.Scored {
		return ball, cues, outcome
	}
	return next, cues, noOutcome
}

// wallPhase stops the ball on the top or bottom wall and mirrors its angle.
// Horizontal travel is cut in the same proportion as vertical travel; a ball that
// starts the tick outside the playfield is clamped without horizontal travel.
func wallPhase(ball Ball, velocity Vector, arenaHeight int) (Ball, bool) {
	maxY := arenaHeight - ball.Breadth
	targetY := ball.Y + velocity.DY
	if targetY >= 0 && targetY <= maxY {
		return ball, false
	}

	boundary := 0
	if targetY > maxY {
		boundary = maxY
	}

	fraction := 0.0
	if velocity.DY != 0 && ball.Y >= 0 && ball.Y <= maxY {
		fraction = float64(boundary-ball.Y) / float64(velocity.DY)
	}

	ball.X += int(math.Round(float64(velocity.DX) * fraction))
	ball.Y = boundary
	ball.Angle = ReflectOffWall(ball.Angle)
	return ball, true
}

// paddlePhase resolves the earliest paddle contact of the tick, if any.
// It reports true only when the ball was turned around.
func paddlePhase(ball Ball, velocity Vector, primary, secondary Paddle) (Ball, bool) {
	var best *paddleContact
	for _, candidate := range []paddleContact{
		{paddle: primary, side: SidePrimary},
		{paddle: secondary, side: SideSecondary},
	} {
		if contact := goalSideContact(ball, velocity, candidate.paddle, candidate.side); contact.Hit {
			candidate.result = contact
			candidate.embedded = true
		} else {
			candidate.result = Sweep(ball.Rect(), velocity, candidate.paddle.Rect())
		}
		if !candidate.result.Hit {
			continue
		}
		if best == nil || candidate.result.Time < best.result.Time {
			c := candidate
			best = &c
		}
	}

	if best == nil {
		return ball.Move(velocity), false
	}

	switch {
	case best.embedded:
		if best.side == SidePrimary {
			ball.X = best.paddle.Rect().Right()
		} else {
			ball.X = best.paddle.X - ball.Breadth
		}
	case best.result.Horizontal():
		ball = ball.Move(Vector{
			DX: int(math.Round(float64(velocity.DX) * best.result.Time)),
			DY: int(math.Round(float64(velocity.DY) * best.result.Time)),
		})
	default:
		// Grazing the top or bottom face does not turn the ball around.
		return ball.Move(velocity), false
	}

	ball.Angle = ReflectOffPaddle(ball.Angle)
	return ball, true
}

// goalSideContact reports a ball that starts the tick inside a paddle while still
// heading for that paddle's goal. Such a ball is treated as struck on the paddle's
// inward face at the very start of the tick.
func goalSideContact(ball Ball, velocity Vector, paddle Paddle, side Side) CollisionResult {
	if !ball.Rect().Overlaps(paddle.Rect()) {
		return NoCollision
	}
	switch {
	case side == SidePrimary && velocity.DX < 0:
		return CollisionResult{Hit: true, Normal: Vector{DX: 1}, Time: 0}
	case side == SideSecondary && velocity.DX > 0:
		return CollisionResult{Hit: true, Normal: Vector{DX: -1}, Time: 0}
	}
	return NoCollision
}

// File: game/ball.go
package game

import (
	"math"

	"github.com/lguibr/duopong/utils"
)

// Ball is the square ball. Angle is the travel direction in radians measured from
// the positive x axis with y pointing down, kept in (-Pi, Pi].
type Ball struct {
	X       int     `json:"x"`
	Y       int     `json:"y"`
	Breadth int     `json:"breadth"`
	Angle   float64 `json:"angle"`
}

func (b Ball) Rect() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.Breadth, H: b.Breadth}
}

// Velocity is the per-tick displacement, each component truncated towards zero.
func (b Ball) Velocity(speed float64) Vector {
	return Vector{
		DX: int(speed * math.Cos(b.Angle)),
		DY: int(speed * math.Sin(b.Angle)),
	}
}

// Move returns the ball shifted by v.
func (b Ball) Move(v Vector) Ball {
	b.X += v.DX
	b.Y += v.DY
	return b
}

// ReflectOffWall mirrors the vertical travel component.
func ReflectOffWall(angle float64) float64 {
	return utils.NormalizeAngle(-angle)
}

// ReflectOffPaddle mirrors the horizontal travel component.
func ReflectOffPaddle(angle float64) float64 {
	return utils.NormalizeAngle(-math.Pi - angle)
}

// centredBall places a ball of the given breadth at the arena centre.
func centredBall(arenaWidth, arenaHeight, breadth int, angle float64) Ball {
	return Ball{
		X:       arenaWidth/2 - breadth/2,
		Y:       arenaHeight/2 - breadth/2,
		Breadth: breadth,
		Angle:   utils.NormalizeAngle(angle),
	}
}

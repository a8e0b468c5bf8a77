// File: game/paddle.go
package game

import (
	"github.com/lguibr/duopong/utils"
)

// Paddle is a vertical bar that only moves along y.
type Paddle struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (p Paddle) Rect() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// ClampPaddleY keeps a paddle top ordinate inside the arena.
func ClampPaddleY(y, paddleHeight, arenaHeight int) int {
	return utils.Clamp(y, 0, arenaHeight-paddleHeight)
}

// FollowTarget moves the paddle straight to the requested ordinate.
func (p Paddle) FollowTarget(targetY, arenaHeight int) Paddle {
	p.Y = ClampPaddleY(targetY, p.Height, arenaHeight)
	return p
}

// TrackBall is the opponent policy: centre the paddle on the ball's top edge
// offset by half a paddle, within the arena.
func TrackBall(ball Ball, paddle Paddle, arenaHeight int) int {
	return ClampPaddleY(ball.Y-paddle.Height/2, paddle.Height, arenaHeight)
}

func newPaddles(cfg utils.Config) (primary, secondary Paddle) {
	primary = Paddle{
		X:      cfg.PaddleWallPadding,
		Width:  cfg.PaddleWidth,
		Height: cfg.PaddleHeight,
	}
	primary.Y = ClampPaddleY(cfg.PrimaryPaddleStartY, primary.Height, cfg.ArenaHeight)

	secondary = Paddle{
		X:      cfg.ArenaWidth - cfg.PaddleWallPadding - cfg.PaddleWidth,
		Width:  cfg.PaddleWidth,
		Height: cfg.PaddleHeight,
	}
	secondary.Y = ClampPaddleY(cfg.SecondaryPaddleStartY, secondary.Height, cfg.ArenaHeight)
	return primary, secondary
}

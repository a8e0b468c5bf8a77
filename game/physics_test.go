package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testArenaWidth  = 800
	testArenaHeight = 600
	testSpeed       = 10.0
)

var (
	testPrimary   = Paddle{X: 10, Y: 280, Width: 12, Height: 64}
	testSecondary = Paddle{X: 778, Y: 10, Width: 12, Height: 64}
)

func step(ball Ball) (Ball, []AudioCue, RoundOutcome) {
	return stepBall(ball, testSpeed, testArenaWidth, testArenaHeight, testPrimary, testSecondary)
}

func TestBall_Velocity(t *testing.T) {
	testCases := []struct {
		name     string
		angle    float64
		expected Vector
	}{
		{"Right", 0, Vector{DX: 10}},
		{"Left", math.Pi, Vector{DX: -10}},
		{"Down", math.Pi / 2, Vector{DY: 10}},
		{"Launch angle truncates", math.Pi / 4, Vector{DX: 7, DY: 7}},
		{"Up and left truncates towards zero", -3 * math.Pi / 4, Vector{DX: -7, DY: -7}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Ball{Angle: tc.angle}.Velocity(testSpeed))
		})
	}
}

func TestReflection_PreservesSpeed(t *testing.T) {
	for _, angle := range []float64{math.Pi / 4, 0.3, 1.1, 2.5, -0.7, -2.2} {
		before := Ball{Angle: angle}.Velocity(testSpeed)

		afterWall := Ball{Angle: ReflectOffWall(angle)}.Velocity(testSpeed)
		assert.Equal(t, before.Magnitude(), afterWall.Magnitude(), "wall bounce at %v", angle)
		assert.Equal(t, before.DX, afterWall.DX, "wall bounce keeps horizontal travel at %v", angle)
		assert.Equal(t, -before.DY, afterWall.DY, "wall bounce flips vertical travel at %v", angle)

		afterPaddle := Ball{Angle: ReflectOffPaddle(angle)}.Velocity(testSpeed)
		assert.Equal(t, before.Magnitude(), afterPaddle.Magnitude(), "paddle bounce at %v", angle)
		assert.Equal(t, -before.DX, afterPaddle.DX, "paddle bounce flips horizontal travel at %v", angle)
		assert.Equal(t, before.DY, afterPaddle.DY, "paddle bounce keeps vertical travel at %v", angle)
	}
}

func TestStepBall_WallPhase(t *testing.T) {
	testCases := []struct {
		name          string
		ball          Ball
		expectedX     int
		expectedY     int
		expectedAngle float64
	}{
		{
			name:          "Starting below the floor clamps without horizontal travel",
			ball:          Ball{X: 400, Y: 596, Breadth: 8, Angle: math.Pi / 4},
			expectedX:     400,
			expectedY:     592,
			expectedAngle: -math.Pi / 4,
		},
		{
			name:          "Reaching the floor mid tick travels the same fraction",
			ball:          Ball{X: 400, Y: 588, Breadth: 8, Angle: math.Pi / 4},
			expectedX:     404,
			expectedY:     592,
			expectedAngle: -math.Pi / 4,
		},
		{
			name:          "Reaching the ceiling",
			ball:          Ball{X: 400, Y: 3, Breadth: 8, Angle: -3 * math.Pi / 4},
			expectedX:     397,
			expectedY:     0,
			expectedAngle: 3 * math.Pi / 4,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			next, cues, outcome := step(tc.ball)
			assert.False(t, outcome.Scored)
			assert.Equal(t, []AudioCue{CueWallBounce}, cues)
			assert.Equal(t, tc.expectedX, next.X)
			assert.Equal(t, tc.expectedY, next.Y)
			assert.InDelta(t, tc.expectedAngle, next.Angle, 1e-9)
		})
	}
}

func TestStepBall_WallBounceSkipsPaddles(t *testing.T) {
	// Heading into the primary paddle's face and the floor in the same tick.
	low := Paddle{X: 10, Y: 536, Width: 12, Height: 64}
	ball := Ball{X: 24, Y: 590, Breadth: 8, Angle: 3 * math.Pi / 4}

	next, cues, outcome := stepBall(ball, testSpeed, testArenaWidth, testArenaHeight, low, testSecondary)

	assert.False(t, outcome.Scored)
	assert.Equal(t, []AudioCue{CueWallBounce}, cues)
	assert.Equal(t, 592, next.Y)
	assert.InDelta(t, -3*math.Pi/4, next.Angle, 1e-9)
}

func TestStepBall_PaddlePhase(t *testing.T) {
	testCases := []struct {
		name          string
		ball          Ball
		expectedX     int
		expectedY     int
		expectedAngle float64
		expectedCues  []AudioCue
	}{
		{
			name:          "Primary paddle stops the ball on its face",
			ball:          Ball{X: 30, Y: 300, Breadth: 8, Angle: math.Pi},
			expectedX:     22,
			expectedY:     300,
			expectedAngle: 0,
			expectedCues:  []AudioCue{CuePaddleHit},
		},
		{
			name:          "Secondary paddle stops the ball on its face",
			ball:          Ball{X: 760, Y: 20, Breadth: 8, Angle: 0},
			expectedX:     770,
			expectedY:     20,
			expectedAngle: math.Pi,
			expectedCues:  []AudioCue{CuePaddleHit},
		},
		{
			name:          "Diagonal hit advances only to the contact point",
			ball:          Ball{X: 26, Y: 300, Breadth: 8, Angle: 3 * math.Pi / 4},
			expectedX:     22,
			expectedY:     304,
			expectedAngle: math.Pi / 4,
			expectedCues:  []AudioCue{CuePaddleHit},
		},
		{
			name:          "Grazing the top face passes through without reflection",
			ball:          Ball{X: 12, Y: 270, Breadth: 8, Angle: math.Pi / 2},
			expectedX:     12,
			expectedY:     280,
			expectedAngle: math.Pi / 2,
			expectedCues:  nil,
		},
		{
			name:          "Open court moves the full displacement",
			ball:          Ball{X: 400, Y: 300, Breadth: 8, Angle: math.Pi / 4},
			expectedX:     407,
			expectedY:     307,
			expectedAngle: math.Pi / 4,
			expectedCues:  nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			next, cues, outcome := step(tc.ball)
			assert.False(t, outcome.Scored)
			assert.Equal(t, tc.expectedCues, cues)
			assert.Equal(t, tc.expectedX, next.X)
			assert.Equal(t, tc.expectedY, next.Y)
			assert.InDelta(t, math.Cos(tc.expectedAngle), math.Cos(next.Angle), 1e-9)
			assert.InDelta(t, math.Sin(tc.expectedAngle), math.Sin(next.Angle), 1e-9)
		})
	}
}

func TestStepBall_EmbeddedBallIsPushedOutOfThePaddle(t *testing.T) {
	ball := Ball{X: 5, Y: 300, Breadth: 8, Angle: math.Pi}

	contact := goalSideContact(ball, ball.Velocity(testSpeed), testPrimary, SidePrimary)
	require.True(t, contact.Hit)
	assert.True(t, contact.Horizontal())
	assert.Equal(t, 0.0, contact.Time)

	next, cues, outcome := step(ball)
	assert.False(t, outcome.Scored)
	assert.Equal(t, []AudioCue{CuePaddleHit}, cues)
	assert.Equal(t, 22, next.X)
	assert.Equal(t, 300, next.Y)
	assert.InDelta(t, 1.0, math.Cos(next.Angle), 1e-9, "ball should now travel right")

	embeddedRight := Ball{X: 782, Y: 30, Breadth: 8, Angle: 0}
	next, _, _ = step(embeddedRight)
	assert.Equal(t, 770, next.X)
	assert.InDelta(t, -1.0, math.Cos(next.Angle), 1e-9)
}

func TestStepBall_GoalLines(t *testing.T) {
	testCases := []struct {
		name   string
		ball   Ball
		scorer Side
	}{
		{"Left goal scores for the secondary side", Ball{X: 3, Y: 100, Breadth: 8, Angle: math.Pi}, SideSecondary},
		{"Right goal scores for the primary side", Ball{X: 785, Y: 300, Breadth: 8, Angle: 0}, SidePrimary},
		{"Landing exactly on the left line", Ball{X: 10, Y: 100, Breadth: 8, Angle: math.Pi}, SideSecondary},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			next, _, outcome := step(tc.ball)
			require.True(t, outcome.Scored)
			assert.Equal(t, tc.scorer, outcome.Scorer)
			assert.Equal(t, tc.ball, next, "position must not be committed on a scoring tick")
		})
	}
}

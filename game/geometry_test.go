package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_Overlaps(t *testing.T) {
	paddle := Rect{X: 10, Y: 280, W: 12, H: 64}

	testCases := []struct {
		name     string
		other    Rect
		expected bool
	}{
		{"Inside", Rect{X: 12, Y: 300, W: 8, H: 8}, true},
		{"Straddling the right face", Rect{X: 18, Y: 300, W: 8, H: 8}, true},
		{"Touching the right face", Rect{X: 22, Y: 300, W: 8, H: 8}, false},
		{"Touching the top face", Rect{X: 12, Y: 272, W: 8, H: 8}, false},
		{"Far away", Rect{X: 400, Y: 300, W: 8, H: 8}, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, paddle.Overlaps(tc.other))
			assert.Equal(t, tc.expected, tc.other.Overlaps(paddle), "overlap is symmetric")
		})
	}
}

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 4, H: 2}
	assert.True(t, r.Contains(10, 20))
	assert.True(t, r.Contains(13, 21))
	assert.False(t, r.Contains(14, 21))
	assert.False(t, r.Contains(13, 22))
	assert.False(t, Rect{X: 0, Y: 0}.Contains(0, 0), "empty rectangles contain nothing")
}

func TestVector(t *testing.T) {
	a := Vector{DX: 3, DY: -4}
	assert.Equal(t, 5.0, a.Magnitude())
	assert.Equal(t, Vector{DX: 4, DY: -2}, a.Add(Vector{DX: 1, DY: 2}))
	assert.Equal(t, Vector{DX: 2, DY: -6}, a.Sub(Vector{DX: 1, DY: 2}))
	assert.True(t, Vector{}.IsZero())
	assert.Equal(t, Rect{X: 13, Y: 16, W: 1, H: 1}, Rect{X: 10, Y: 20, W: 1, H: 1}.Translate(a))
}

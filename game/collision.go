// File: game/collision.go
package game

import (
	"math"

	"github.com/lguibr/duopong/utils"
)

// CollisionResult describes the first contact of a swept rectangle within one tick.
// Time is the fraction of the displacement travelled before contact, in [0, 1].
// Normal points out of the struck face: exactly one component is non-zero.
type CollisionResult struct {
	Hit    bool    `json:"hit"`
	Normal Vector  `json:"normal"`
	Time   float64 `json:"time"`
}

// NoCollision is returned whenever the paths do not meet during the tick.
var NoCollision = CollisionResult{}

// Horizontal reports whether the struck face is a left or right face.
func (c CollisionResult) Horizontal() bool {
	return c.Hit && c.Normal.DX != 0
}

// Sweep moves the moving rectangle along displacement and reports when it first
// touches the stationary one. Rectangles that already overlap at the start of the
// tick on both axes are not reported: they are either separating or embedded, and
// the caller decides what an embedded contact means.
func Sweep(moving Rect, displacement Vector, stationary Rect) CollisionResult {
	xEntry, xExit, xCanMeet := axisTimes(moving.X, moving.W, displacement.DX, stationary.X, stationary.W)
	yEntry, yExit, yCanMeet := axisTimes(moving.Y, moving.H, displacement.DY, stationary.Y, stationary.H)
	if !xCanMeet || !yCanMeet {
		return NoCollision
	}

	entry := math.Max(xEntry, yEntry)
	exit := math.Min(xExit, yExit)

	if entry > exit || (xEntry < 0 && yEntry < 0) || xEntry > 1 || yEntry > 1 {
		return NoCollision
	}

	result := CollisionResult{Hit: true, Time: entry}
	if xEntry > yEntry {
		result.Normal = Vector{DX: -utils.Sign(displacement.DX)}
	} else {
		result.Normal = Vector{DY: -utils.Sign(displacement.DY)}
	}
	return result
}

// axisTimes returns the normalised entry and exit times along one axis.
// A still axis never bounds the collision in time, but it can rule it out when the
// projections are disjoint, which is reported through canMeet.
func axisTimes(pos, size, velocity, otherPos, otherSize int) (entry, exit float64, canMeet bool) {
	if velocity == 0 {
		if pos < otherPos+otherSize && otherPos < pos+size {
			return math.Inf(-1), math.Inf(1), true
		}
		return 0, 0, false
	}

	var entryDistance, exitDistance int
	if velocity > 0 {
		entryDistance = otherPos - (pos + size)
		exitDistance = (otherPos + otherSize) - pos
	} else {
		entryDistance = (otherPos + otherSize) - pos
		exitDistance = otherPos - (pos + size)
	}

	v := float64(velocity)
	return float64(entryDistance) / v, float64(exitDistance) / v, true
}

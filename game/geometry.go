// File: game/geometry.go
package game

import (
	"github.com/lguibr/duopong/utils"
)

// Rect is an axis-aligned rectangle in arena pixels. Y grows downwards.
type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Vector is an integer per-tick displacement.
type Vector struct {
	DX int `json:"dx"`
	DY int `json:"dy"`
}

func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

// Contains reports whether the pixel (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	if r.W <= 0 || r.H <= 0 {
		return false
	}
	return utils.CheckPointWithinBounds(x, y, [2]int{r.X, r.Y}, [2]int{r.Right() - 1, r.Bottom() - 1})
}

// Overlaps reports whether r and other share at least one pixel.
// Rectangles that only touch along an edge do not overlap.
func (r Rect) Overlaps(other Rect) bool {
	return r.X < other.Right() && other.X < r.Right() &&
		r.Y < other.Bottom() && other.Y < r.Bottom()
}

func (r Rect) Translate(v Vector) Rect {
	moved := utils.SumVectors([2]int{r.X, r.Y}, [2]int{v.DX, v.DY})
	return Rect{X: moved[0], Y: moved[1], W: r.W, H: r.H}
}

func (v Vector) Add(other Vector) Vector {
	sum := utils.SumVectors([2]int{v.DX, v.DY}, [2]int{other.DX, other.DY})
	return Vector{DX: sum[0], DY: sum[1]}
}

func (v Vector) Sub(other Vector) Vector {
	diff := utils.SubtractVectors([2]int{v.DX, v.DY}, [2]int{other.DX, other.DY})
	return Vector{DX: diff[0], DY: diff[1]}
}

func (v Vector) Magnitude() float64 {
	return utils.Magnitude([2]int{v.DX, v.DY})
}

func (v Vector) IsZero() bool { return v.DX == 0 && v.DY == 0 }

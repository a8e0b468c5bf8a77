package render

import (
	"github.com/lguibr/duopong/game"
	"github.com/lguibr/duopong/utils"
)

// RGBPixel is one cell of a rasterised frame.
type RGBPixel struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Palette resolves the colour tags carried by frames.
type Palette struct {
	Background RGBPixel
	Paddle     RGBPixel
	Ball       RGBPixel
}

// NewPalette builds the palette from the configured colours.
func NewPalette(cfg utils.Config) Palette {
	return Palette{
		Background: pixelOf(cfg.BackgroundColor),
		Paddle:     pixelOf(cfg.PaddleColor),
		Ball:       pixelOf(cfg.BallColor),
	}
}

// Color returns the pixel for a tag, falling back to the paddle colour for unknown tags.
func (p Palette) Color(tag game.ColorTag) RGBPixel {
	switch tag {
	case game.ColorBall:
		return p.Ball
	default:
		return p.Paddle
	}
}

func pixelOf(c [3]int) RGBPixel {
	return RGBPixel{R: channel(c[0]), G: channel(c[1]), B: channel(c[2])}
}

func channel(v int) uint8 {
	return uint8(utils.Clamp(v, 0, 255))
}

// Rasterize scales the frame's rectangles from arena pixels onto a cols x rows grid,
// indexed grid[row][col]. Every visible rectangle covers at least one cell.
func Rasterize(frame game.Frame, arenaWidth, arenaHeight, cols, rows int, palette Palette) [][]RGBPixel {
	if cols <= 0 || rows <= 0 || arenaWidth <= 0 || arenaHeight <= 0 {
		return nil
	}

	grid := make([][]RGBPixel, rows)
	for i := range grid {
		grid[i] = make([]RGBPixel, cols)
		for j := range grid[i] {
			grid[i][j] = palette.Background
		}
	}

	for _, intent := range frame.Rects {
		c0, c1 := scaleSpan(intent.Rect.X, intent.Rect.W, arenaWidth, cols)
		r0, r1 := scaleSpan(intent.Rect.Y, intent.Rect.H, arenaHeight, rows)
		color := palette.Color(intent.Color)
		for row := r0; row < r1; row++ {
			for col := c0; col < c1; col++ {
				grid[row][col] = color
			}
		}
	}

	return grid
}

// scaleSpan maps [pos, pos+size) in arena units onto cell indices [start, end).
func scaleSpan(pos, size, arenaSize, cells int) (int, int) {
	start := pos * cells / arenaSize
	end := ((pos+size)*cells + arenaSize - 1) / arenaSize
	start = utils.Clamp(start, 0, cells-1)
	end = utils.Clamp(end, 0, cells)
	if size > 0 && end <= start {
		end = start + 1
	}
	return start, end
}

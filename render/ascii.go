package render

import (
	"fmt"
	"strings"

	"github.com/lguibr/duopong/game"
	"github.com/lguibr/duopong/utils"
)

// ASCII characters for grayscale, from lighter to darker
const asciiChars = " .,:;i1tfLCG08@"

const ansiReset = "\033[0m"

// rgbToGray averages the three channels
func rgbToGray(pixel RGBPixel) uint8 {
	return uint8((int(pixel.R) + int(pixel.G) + int(pixel.B)) / 3)
}

// grayToAscii maps a grayscale value to an ASCII character
func grayToAscii(gray uint8) byte {
	index := int(gray) * (len(asciiChars) - 1) / 255
	return asciiChars[index]
}

// rgbToAnsi converts an RGB pixel to an ANSI escape code for that color
func rgbToAnsi(pixel RGBPixel) string {
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", pixel.R, pixel.G, pixel.B)
}

// RenderToASCII converts a pixel grid to coloured ASCII, one line per row.
// Colour codes are only emitted when the colour changes and reset at every line end.
func RenderToASCII(pixels [][]RGBPixel) string {
	var ascii strings.Builder
	for _, row := range pixels {
		var current *RGBPixel
		for i := range row {
			pixel := row[i]
			if current == nil || *current != pixel {
				ascii.WriteString(rgbToAnsi(pixel))
				current = &row[i]
			}
			ascii.WriteByte(grayToAscii(rgbToGray(pixel)))
		}
		if len(row) > 0 {
			ascii.WriteString(ansiReset)
		}
		ascii.WriteByte('\n')
	}
	return ascii.String()
}

// ScoreLine is the textual scoreline shared by every host.
func ScoreLine(score game.Score) string {
	return fmt.Sprintf("Player: %d  Opponent: %d", score.Primary, score.Secondary)
}

// FrameToASCII renders the scoreline followed by the arena at the configured resolution.
func FrameToASCII(frame game.Frame, cfg utils.Config) string {
	pixels := Rasterize(frame, cfg.ArenaWidth, cfg.ArenaHeight, cfg.AsciiColumns, cfg.AsciiRows, NewPalette(cfg))
	return ScoreLine(frame.Score) + "\n" + RenderToASCII(pixels)
}

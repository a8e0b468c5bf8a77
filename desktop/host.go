package desktop

import (
	"errors"
	"image/color"
	"log"
	"strconv"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lguibr/duopong/game"
	"github.com/lguibr/duopong/render"
	"github.com/lguibr/duopong/utils"
	"golang.org/x/image/font/basicfont"
)

const windowTitle = "VBP"

// CuePlayer plays the audio cues of a frame.
type CuePlayer interface {
	PlayAll(cues []game.AudioCue)
}

// Host is an ebiten.Game driving one local session. The game advances once per
// Update, so ball speed follows the ebiten tick rate.
type Host struct {
	cfg     utils.Config
	game    *game.Game
	cues    CuePlayer
	palette render.Palette
	face    text.Face

	frame    game.Frame
	frames   uint64
	prevKeys map[ebiten.Key]bool
	copyLine func(string) error
}

// NewHost creates a host for g. cues may be nil.
func NewHost(g *game.Game, cues CuePlayer) *Host {
	cfg := g.Config()
	return &Host{
		cfg:      cfg,
		game:     g,
		cues:     cues,
		palette:  render.NewPalette(cfg),
		face:     text.NewGoXFace(basicfont.Face7x13),
		frame:    g.Frame(),
		prevKeys: make(map[ebiten.Key]bool),
		copyLine: clipboard.WriteAll,
	}
}

// Run opens the window and blocks until it is closed.
func Run(g *game.Game, cues CuePlayer) error {
	cfg := g.Config()
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowSize(cfg.ArenaWidth, cfg.ArenaHeight)
	err := ebiten.RunGame(NewHost(g, cues))
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

func (h *Host) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	// C: copy the scoreline.
	pressed := ebiten.IsKeyPressed(ebiten.KeyC)
	if pressed && !h.prevKeys[ebiten.KeyC] {
		h.copyScore()
	}
	h.prevKeys[ebiten.KeyC] = pressed

	_, y := ebiten.CursorPosition()
	h.step(y)
	return nil
}

// step runs one tick with the cursor ordinate as the paddle target.
func (h *Host) step(cursorY int) {
	h.frame = h.game.Tick(game.Input{TargetY: cursorY, Frame: h.frames})
	h.frames++
	if h.cues != nil {
		h.cues.PlayAll(h.frame.Cues)
	}
}

func (h *Host) copyScore() {
	line := render.ScoreLine(h.frame.Score)
	if err := h.copyLine(line); err != nil {
		log.Printf("[DESKTOP] WARN: copying scoreline failed: %v", err)
	}
}

func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(rgba(h.palette.Background))

	for _, intent := range h.frame.Rects {
		r := intent.Rect
		vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), rgba(h.palette.Color(intent.Color)), false)
	}

	for _, score := range h.frame.Scores {
		value := strconv.Itoa(score.Value)
		width, _ := text.Measure(value, h.face, 0)
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(score.AnchorX)-width/2, 16)
		op.ColorScale.ScaleWithColor(rgba(h.palette.Paddle))
		text.Draw(screen, value, h.face, op)
	}

	ebitenutil.DebugPrintAt(screen, "C: copy score  Esc: quit", 8, h.cfg.ArenaHeight-18)
}

func (h *Host) Layout(_, _ int) (int, int) {
	return h.cfg.ArenaWidth, h.cfg.ArenaHeight
}

func rgba(p render.RGBPixel) color.RGBA {
	return color.RGBA{R: p.R, G: p.G, B: p.B, A: 255}
}

package terminal

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lguibr/duopong/game"
	"github.com/lguibr/duopong/render"
	"github.com/lguibr/duopong/utils"
)

// CuePlayer plays the audio cues of a frame.
type CuePlayer interface {
	PlayAll(cues []game.AudioCue)
}

// canvas is the subset of tcell.Screen the host draws on.
type canvas interface {
	Size() (int, int)
	Clear()
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
}

// Host runs one local session in a terminal. Row 0 holds the scores, the
// remaining rows show the arena.
type Host struct {
	cfg     utils.Config
	game    *game.Game
	stepper *game.FixedStepper
	cues    CuePlayer
	palette render.Palette

	targetY int
	frames  uint64
	frame   game.Frame
	last    time.Time
}

// NewHost creates a host for g. cues may be nil.
func NewHost(g *game.Game, cues CuePlayer) *Host {
	cfg := g.Config()
	return &Host{
		cfg:     cfg,
		game:    g,
		stepper: game.NewFixedStepper(g, cfg.TickPeriod, cfg.MaxCatchUpTicks),
		cues:    cues,
		palette: render.NewPalette(cfg),
		targetY: g.Primary().Y,
		frame:   g.Frame(),
	}
}

// Run opens the terminal and plays until the user quits.
func Run(g *game.Game, cues CuePlayer) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialising screen: %w", err)
	}
	defer screen.Fini()

	screen.EnableMouse()
	screen.HideCursor()

	NewHost(g, cues).loop(screen)
	return nil
}

func (h *Host) loop(screen tcell.Screen) {
	ticker := time.NewTicker(h.cfg.TickPeriod)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	h.last = time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !h.handleEvent(ev, screen) {
				return
			}

		case now := <-ticker.C:
			h.advance(now.Sub(h.last))
			h.last = now
			h.draw(screen)
		}
	}
}

// handleEvent applies input. It returns false when the user asked to quit.
func (h *Host) handleEvent(ev tcell.Event, screen canvas) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
			return false
		case ev.Key() == tcell.KeyUp:
			h.setTarget(h.targetY - h.cfg.TargetStep)
		case ev.Key() == tcell.KeyDown:
			h.setTarget(h.targetY + h.cfg.TargetStep)
		}

	case *tcell.EventMouse:
		_, y := ev.Position()
		_, height := screen.Size()
		h.setTarget(h.arenaY(y, height) - h.cfg.PaddleHeight/2)

	case *tcell.EventResize:
		if s, ok := screen.(tcell.Screen); ok {
			s.Sync()
		}
	}
	return true
}

// setTarget keeps the target inside the reachable range so key presses take effect immediately.
func (h *Host) setTarget(y int) {
	h.targetY = utils.Clamp(y, 0, h.cfg.ArenaHeight-h.cfg.PaddleHeight)
}

// arenaY maps a terminal row to an arena ordinate.
func (h *Host) arenaY(row, height int) int {
	rows := height - 1
	if rows <= 0 {
		return 0
	}
	return (row - 1) * h.cfg.ArenaHeight / rows
}

// advance runs as many ticks as elapsed covers and plays their cues.
func (h *Host) advance(elapsed time.Duration) {
	for _, frame := range h.stepper.Advance(elapsed, game.Input{TargetY: h.targetY, Frame: h.frames}) {
		h.frames++
		h.frame = frame
		if h.cues != nil {
			h.cues.PlayAll(frame.Cues)
		}
	}
}

func (h *Host) draw(screen canvas) {
	width, height := screen.Size()
	screen.Clear()
	if width <= 0 || height <= 1 {
		screen.Show()
		return
	}

	pixels := render.Rasterize(h.frame, h.cfg.ArenaWidth, h.cfg.ArenaHeight, width, height-1, h.palette)
	for row, line := range pixels {
		for col, pixel := range line {
			if pixel == h.palette.Background {
				continue
			}
			color := tcell.NewRGBColor(int32(pixel.R), int32(pixel.G), int32(pixel.B))
			screen.SetContent(col, row+1, '█', nil, tcell.StyleDefault.Foreground(color))
		}
	}

	for _, score := range h.frame.Scores {
		text := strconv.Itoa(score.Value)
		col := score.AnchorX*width/h.cfg.ArenaWidth - len(text)/2
		for i, r := range text {
			screen.SetContent(col+i, 0, r, nil, tcell.StyleDefault.Bold(true))
		}
	}

	screen.Show()
}

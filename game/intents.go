// File: game/intents.go
package game

// RectKind names what a filled rectangle represents.
type RectKind string

const (
	RectPaddlePrimary   RectKind = "paddle_primary"
	RectPaddleSecondary RectKind = "paddle_secondary"
	RectBall            RectKind = "ball"
)

// ColorTag is resolved to an actual colour by the host palette.
type ColorTag string

const (
	ColorPaddle ColorTag = "paddle"
	ColorBall   ColorTag = "ball"
)

// AudioCue asks the host mixer to play a sound.
type AudioCue string

const (
	CueWallBounce AudioCue = "wall_bounce"
	CuePaddleHit  AudioCue = "paddle_hit"
	CuePointLost  AudioCue = "point_lost"
)

// RectIntent is one filled rectangle to draw.
type RectIntent struct {
	Kind  RectKind `json:"kind"`
	Rect  Rect     `json:"rect"`
	Color ColorTag `json:"color"`
}

// ScoreIntent asks the host text renderer to paint a score value centred on AnchorX.
type ScoreIntent struct {
	Side    Side `json:"side"`
	Value   int  `json:"value"`
	AnchorX int  `json:"anchorX"`
}

// Frame is everything a host needs to present one tick.
// Rects are always ordered primary paddle, secondary paddle, ball.
type Frame struct {
	Rects  []RectIntent  `json:"rects"`
	Scores []ScoreIntent `json:"scores"`
	Cues   []AudioCue    `json:"cues"`
	Score  Score         `json:"score"`
	Tick   uint64        `json:"tick"`
	Point  *PointEvent   `json:"point,omitempty"` // Set on the tick that completed a round
}

// HasCue reports whether the frame carries the given cue.
func (f Frame) HasCue(cue AudioCue) bool {
	for _, c := range f.Cues {
		if c == cue {
			return true
		}
	}
	return false
}

// RectOf returns the rectangle of the given kind.
func (f Frame) RectOf(kind RectKind) (Rect, bool) {
	for _, r := range f.Rects {
		if r.Kind == kind {
			return r.Rect, true
		}
	}
	return Rect{}, false
}

func buildFrame(primary, secondary Paddle, ball Ball, score Score, arenaWidth int, tick uint64, cues []AudioCue) Frame {
	if cues == nil {
		cues = []AudioCue{}
	}
	return Frame{
		Rects: []RectIntent{
			{Kind: RectPaddlePrimary, Rect: primary.Rect(), Color: ColorPaddle},
			{Kind: RectPaddleSecondary, Rect: secondary.Rect(), Color: ColorPaddle},
			{Kind: RectBall, Rect: ball.Rect(), Color: ColorBall},
		},
		Scores: []ScoreIntent{
			{Side: SidePrimary, Value: score.Primary, AnchorX: arenaWidth / 4},
			{Side: SideSecondary, Value: score.Secondary, AnchorX: 3 * arenaWidth / 4},
		},
		Cues:  cues,
		Score: score,
		Tick:  tick,
	}
}

package audio

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/lguibr/duopong/game"
)

const sampleRate = beep.SampleRate(44100)

// ErrUnknownCue is returned for cues without a synthesised sound.
var ErrUnknownCue = errors.New("unknown audio cue")

// note is one sine segment of a cue.
type note struct {
	freq     float64
	duration time.Duration
	volume   float64 // Linear gain in (0, 1]
}

var cueNotes = map[game.AudioCue][]note{
	game.CueWallBounce: {{freq: 440, duration: 40 * time.Millisecond, volume: 0.4}},
	game.CuePaddleHit:  {{freq: 880, duration: 50 * time.Millisecond, volume: 0.5}},
	game.CuePointLost: {
		{freq: 392, duration: 120 * time.Millisecond, volume: 0.5},
		{freq: 262, duration: 200 * time.Millisecond, volume: 0.5},
	},
}

// cueDuration is the total play time of a cue.
func cueDuration(cue game.AudioCue) time.Duration {
	var total time.Duration
	for _, n := range cueNotes[cue] {
		total += n.duration
	}
	return total
}

// cueStreamer synthesises the finite streamer for a cue.
func cueStreamer(sr beep.SampleRate, cue game.AudioCue) (beep.Streamer, error) {
	notes, ok := cueNotes[cue]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCue, cue)
	}

	segments := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		sine, err := generators.SineTone(sr, n.freq)
		if err != nil {
			return nil, fmt.Errorf("cue %s: %w", cue, err)
		}
		segments = append(segments, newVolume(beep.Take(sr.N(n.duration), sine), n.volume))
	}
	return beep.Seq(segments...), nil
}

// newVolume wraps s with a linear gain; zero or negative gain is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

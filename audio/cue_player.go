package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lguibr/duopong/game"
)

// CuePlayer plays the audio cues of a frame through the system speaker.
// Until Initialize succeeds every Play is a no-op, so hosts without audio keep running.
type CuePlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewCuePlayer creates a player with an empty mixer.
func NewCuePlayer() *CuePlayer {
	return &CuePlayer{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer.
func (p *CuePlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues a single cue on the mixer.
func (p *CuePlayer) Play(cue game.AudioCue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	streamer, err := cueStreamer(sampleRate, cue)
	if err != nil {
		log.Printf("[AUDIO] WARN: %v", err)
		return
	}

	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
}

// PlayAll queues every cue of a frame.
func (p *CuePlayer) PlayAll(cues []game.AudioCue) {
	for _, cue := range cues {
		p.Play(cue)
	}
}

// Initialized reports whether the speaker is open.
func (p *CuePlayer) Initialized() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Cleanup silences pending cues and closes the speaker.
func (p *CuePlayer) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	p.initialized = false
}

// File: game/game_actor_handlers.go
package game

import (
	"context"
	"log"
)

// handleTick advances the game and publishes the resulting frame.
func (a *GameActor) handleTick() {
	a.input.Frame++
	frame := a.game.Tick(a.input)
	a.lastFrame = frame

	a.forwardToBroadcaster(BroadcastFrame{Frame: frame})

	if frame.Point != nil {
		log.Printf("[GAME] Score - Player: %d, Opponent: %d", frame.Score.Primary, frame.Score.Secondary)
		a.recordPoint(*frame.Point)
	}
}

func (a *GameActor) recordPoint(event PointEvent) {
	if a.opts.Recorder == nil {
		return
	}
	recorder := a.opts.Recorder
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), recordPointTimeout)
		defer cancel()
		if err := recorder.RecordPoint(ctx, event); err != nil {
			log.Printf("[GAME] WARN: failed to record point at tick %d: %v", event.Tick, err)
		}
	}()
}

func (a *GameActor) handleSetPaddleTarget(msg SetPaddleTarget) {
	if a.controller == "" || msg.ClientID != a.controller {
		return
	}
	a.input.TargetY = msg.Y
}

func (a *GameActor) handleClaimControl(msg ClaimControlRequest) ClaimControlResponse {
	if msg.ClientID == "" {
		return ClaimControlResponse{Granted: false}
	}
	if a.controller == "" {
		a.controller = msg.ClientID
		log.Printf("[GAME] %s now controls the primary paddle", msg.ClientID)
	}
	return ClaimControlResponse{Granted: a.controller == msg.ClientID}
}

func (a *GameActor) handleReleaseControl(msg ReleaseControl) {
	if msg.ClientID == "" || msg.ClientID != a.controller {
		return
	}
	log.Printf("[GAME] %s released the primary paddle", msg.ClientID)
	a.controller = ""
}

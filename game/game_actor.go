// File: game/game_actor.go
package game

import (
	"context"
	"fmt"
	"log"
	"runtime/debug"
	"time"

	"github.com/lguibr/duopong/bollywood"
	"github.com/lguibr/duopong/utils"
)

const recordPointTimeout = 2 * time.Second

// PointRecorder persists completed rounds. It is called off the actor goroutine.
type PointRecorder interface {
	RecordPoint(ctx context.Context, event PointEvent) error
}

// GameActorOptions wires the GameActor to its collaborators. Every field is optional.
type GameActorOptions struct {
	Broadcaster *bollywood.PID // Receives a BroadcastFrame after every tick
	Recorder    PointRecorder
	ManualTicks bool // Do not start the ticker; GameTick must be sent explicitly
}

// GameActor owns the single Game of the process and serialises ticks, inputs and queries.
type GameActor struct {
	cfg          utils.Config
	game         *Game
	opts         GameActorOptions
	engine       *bollywood.Engine
	selfPID      *bollywood.PID
	ticker       *time.Ticker
	stopTickerCh chan struct{}

	input      Input
	controller string // Client currently steering the primary paddle, empty when free
	lastFrame  Frame
}

// NewGameActorProducer validates cfg and creates a producer for the GameActor.
func NewGameActorProducer(engine *bollywood.Engine, cfg utils.Config, opts GameActorOptions) (bollywood.Producer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("game actor: %w", err)
	}
	return func() bollywood.Actor {
		g := MustNewGame(cfg)
		return &GameActor{
			cfg:          cfg,
			game:         g,
			opts:         opts,
			engine:       engine,
			stopTickerCh: make(chan struct{}),
			input:        Input{TargetY: g.Primary().Y},
			lastFrame:    g.Frame(),
		}
	}, nil
}

// Receive is the main message handler for the GameActor.
func (a *GameActor) Receive(ctx bollywood.Context) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[GAME] PANIC recovered in GameActor %s Receive: %v\nStack trace:\n%s", a.selfPID, r, string(debug.Stack()))
		}
	}()

	if a.selfPID == nil {
		a.selfPID = ctx.Self()
	}

	switch m := ctx.Message().(type) {
	case bollywood.Started:
		log.Printf("[GAME] GameActor %s started (%dx%d arena, tick %s)", a.selfPID, a.cfg.ArenaWidth, a.cfg.ArenaHeight, a.cfg.TickPeriod)
		if !a.opts.ManualTicks {
			a.ticker = time.NewTicker(a.cfg.TickPeriod)
			go a.runTickerLoop(a.selfPID)
		}

	case GameTick:
		a.handleTick()

	case SetPaddleTarget:
		a.handleSetPaddleTarget(m)

	case ClaimControlRequest:
		ctx.Reply(a.handleClaimControl(m))

	case ReleaseControl:
		a.handleReleaseControl(m)

	case GetFrameRequest:
		ctx.Reply(a.lastFrame)

	case GetScoreRequest:
		ctx.Reply(a.game.Score())

	case Subscribe:
		a.forwardToBroadcaster(AddSink{Sink: m.Sink})

	case Unsubscribe:
		a.forwardToBroadcaster(RemoveSink{Sink: m.Sink})

	case bollywood.Stopping:
		log.Printf("[GAME] GameActor %s stopping at tick %d, score %d-%d", a.selfPID, a.game.Ticks(), a.game.Score().Primary, a.game.Score().Secondary)
		a.stopTicker()

	case bollywood.Stopped:
		// Actor stopped

	default:
		log.Printf("[GAME] GameActor %s received unknown message type: %T", a.selfPID, m)
	}
}

// runTickerLoop sends GameTick messages to the actor's own mailbox at regular intervals.
func (a *GameActor) runTickerLoop(self *bollywood.PID) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[GAME] PANIC recovered in GameActor %s ticker loop: %v\nStack trace:\n%s", self, r, string(debug.Stack()))
		}
	}()

	ticker := a.ticker
	for {
		select {
		case <-a.stopTickerCh:
			return
		case <-ticker.C:
			select {
			case <-a.stopTickerCh:
				return
			default:
				a.engine.Send(self, GameTick{}, nil)
			}
		}
	}
}

func (a *GameActor) stopTicker() {
	if a.ticker != nil {
		a.ticker.Stop()
	}
	select {
	case <-a.stopTickerCh:
	default:
		close(a.stopTickerCh)
	}
}

func (a *GameActor) forwardToBroadcaster(msg interface{}) {
	if a.opts.Broadcaster == nil {
		return
	}
	a.engine.Send(a.opts.Broadcaster, msg, a.selfPID)
}

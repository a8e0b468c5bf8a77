// File: game/broadcaster_actor.go
package game

import (
	"log"
	"runtime/debug"

	"github.com/lguibr/duopong/bollywood"
)

// FrameSink receives every frame of the session. A sink returning an error is dropped.
type FrameSink interface {
	SendFrame(frame Frame) error
}

// BroadcasterActor fans frames out to subscribers so slow writers never stall the game loop.
type BroadcasterActor struct {
	sinks   map[FrameSink]struct{}
	order   []FrameSink // Delivery order, oldest subscriber first
	selfPID *bollywood.PID
}

// NewBroadcasterProducer creates a producer for BroadcasterActor.
func NewBroadcasterProducer() bollywood.Producer {
	return func() bollywood.Actor {
		return &BroadcasterActor{
			sinks: make(map[FrameSink]struct{}),
		}
	}
}

// Receive handles messages for the BroadcasterActor.
func (a *BroadcasterActor) Receive(ctx bollywood.Context) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[BROADCAST] PANIC recovered in BroadcasterActor %s Receive: %v\nStack trace:\n%s", a.selfPID, r, string(debug.Stack()))
		}
	}()

	if a.selfPID == nil {
		a.selfPID = ctx.Self()
	}

	switch msg := ctx.Message().(type) {
	case bollywood.Started:
		// Actor started

	case AddSink:
		a.add(msg.Sink)

	case RemoveSink:
		a.remove(msg.Sink)

	case BroadcastFrame:
		a.broadcast(msg.Frame)

	case internalSinkCountRequest:
		ctx.Reply(len(a.order))

	case bollywood.Stopping:
		if len(a.order) > 0 {
			log.Printf("[BROADCAST] %s stopping, releasing %d sinks", a.selfPID, len(a.order))
		}
		a.sinks = make(map[FrameSink]struct{})
		a.order = nil

	case bollywood.Stopped:
		// Actor stopped

	default:
		log.Printf("[BROADCAST] %s received unknown message type: %T", a.selfPID, msg)
	}
}

func (a *BroadcasterActor) add(sink FrameSink) {
	if sink == nil {
		return
	}
	if _, exists := a.sinks[sink]; exists {
		return
	}
	a.sinks[sink] = struct{}{}
	a.order = append(a.order, sink)
}

func (a *BroadcasterActor) remove(sink FrameSink) {
	if _, exists := a.sinks[sink]; !exists {
		return
	}
	delete(a.sinks, sink)
	for i, s := range a.order {
		if s == sink {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
}

// broadcast delivers the frame to every sink and drops the ones that failed.
func (a *BroadcasterActor) broadcast(frame Frame) {
	if len(a.order) == 0 {
		return
	}

	var failed []FrameSink
	for _, sink := range a.order {
		if err := sink.SendFrame(frame); err != nil {
			log.Printf("[BROADCAST] dropping sink %T after send error: %v", sink, err)
			failed = append(failed, sink)
		}
	}
	for _, sink := range failed {
		a.remove(sink)
	}
}

package bollywood

import (
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"
)

const defaultMailboxSize = 1024

// process represents the running instance of an actor, including its state and mailbox.
type process struct {
	engine   *Engine
	pid      *PID
	actor    Actor
	props    *Props
	mailbox  chan *messageEnvelope
	stopCh   chan struct{}
	stopOnce sync.Once
	done     chan struct{}
	stopped  atomic.Bool
}

func newProcess(engine *Engine, pid *PID, props *Props) *process {
	return &process{
		engine:  engine,
		pid:     pid,
		props:   props,
		mailbox: make(chan *messageEnvelope, props.mailboxSize),
		stopCh:  make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// sendMessage enqueues an envelope without blocking the caller.
// It reports false when the message was dropped.
func (p *process) sendMessage(envelope *messageEnvelope) bool {
	if p.stopped.Load() && !isSystemMessage(envelope.Message) {
		return false
	}
	select {
	case p.mailbox <- envelope:
		return true
	default:
		fmt.Printf("Actor %s mailbox full, dropping message type %T\n", p.pid, envelope.Message)
		return false
	}
}

// requestStop closes the stop channel exactly once.
func (p *process) requestStop() {
	p.stopOnce.Do(func() { close(p.stopCh) })
}

// run is the main loop for the actor process.
func (p *process) run() {
	defer func() {
		p.stopped.Store(true)
		if p.actor != nil {
			p.invokeReceive(&messageEnvelope{Message: Stopped{}})
		}
		p.engine.remove(p.pid)
		close(p.done)
	}()

	p.actor = p.props.Produce()
	if p.actor == nil {
		fmt.Printf("Actor %s producer returned nil actor\n", p.pid)
		return
	}

	for {
		select {
		case <-p.stopCh:
			if p.stopped.CompareAndSwap(false, true) {
				p.invokeReceive(&messageEnvelope{Message: Stopping{}})
			}
			return

		case envelope := <-p.mailbox:
			if _, isStopping := envelope.Message.(Stopping); isStopping {
				if p.stopped.CompareAndSwap(false, true) {
					p.invokeReceive(envelope)
				}
				return
			}
			if p.stopped.Load() && !isSystemMessage(envelope.Message) {
				continue
			}
			p.invokeReceive(envelope)
		}
	}
}

// invokeReceive calls the actor's Receive method, recovering from panics within it.
// A panicking actor is stopped and any pending Ask receives an error.
func (p *process) invokeReceive(envelope *messageEnvelope) {
	ctx := &context{
		engine:    p.engine,
		self:      p.pid,
		sender:    envelope.Sender,
		message:   envelope.Message,
		requestID: envelope.RequestID,
		replyCh:   envelope.replyCh,
	}

	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Actor %s panicked during Receive(%T): %v\nStack trace:\n%s\n", p.pid, envelope.Message, r, string(debug.Stack()))
			ctx.Reply(fmt.Errorf("actor %s panicked: %v", p.pid, r))
			p.requestStop()
		}
	}()

	p.actor.Receive(ctx)
}

package bollywood

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

var (
	// ErrTimeout is returned by Ask when no reply arrives in time.
	ErrTimeout = errors.New("bollywood: ask timed out")
	// ErrActorNotFound is returned by Ask when the target is not running.
	ErrActorNotFound = errors.New("bollywood: actor not found")
)

// Engine manages the lifecycle and message dispatching for actors.
type Engine struct {
	pidCounter     uint64
	requestCounter uint64
	actors         map[string]*process
	mu             sync.RWMutex // Protects the actors map
	stopping       atomic.Bool
}

// NewEngine creates a new actor engine.
func NewEngine() *Engine {
	return &Engine{
		actors: make(map[string]*process),
	}
}

func (e *Engine) nextPID() *PID {
	id := atomic.AddUint64(&e.pidCounter, 1)
	return &PID{ID: fmt.Sprintf("actor-%d", id)}
}

// Spawn creates and starts a new actor based on the provided Props.
// Started is always the first message the actor sees.
func (e *Engine) Spawn(props *Props) *PID {
	if e.stopping.Load() {
		fmt.Println("Engine is stopping, cannot spawn new actors")
		return nil
	}

	pid := e.nextPID()
	proc := newProcess(e, pid, props)
	proc.sendMessage(&messageEnvelope{Message: Started{}})

	e.mu.Lock()
	e.actors[pid.ID] = proc
	e.mu.Unlock()

	go proc.run()
	return pid
}

func (e *Engine) lookup(pid *PID) (*process, bool) {
	if pid == nil {
		return nil, false
	}
	e.mu.RLock()
	proc, ok := e.actors[pid.ID]
	e.mu.RUnlock()
	return proc, ok
}

// Send delivers a message to the actor identified by the PID.
// sender can be nil if the message originates from outside the actor system.
func (e *Engine) Send(pid *PID, message interface{}, sender *PID) {
	if e.stopping.Load() && !isSystemMessage(message) {
		return
	}
	if proc, ok := e.lookup(pid); ok {
		proc.sendMessage(&messageEnvelope{Sender: sender, Message: message})
	}
}

// Ask sends a message and waits for the actor to call Context.Reply.
// A reply of type error is returned as the error.
func (e *Engine) Ask(pid *PID, message interface{}, timeout time.Duration) (interface{}, error) {
	proc, ok := e.lookup(pid)
	if !ok || e.stopping.Load() {
		return nil, fmt.Errorf("%w: %s", ErrActorNotFound, pid)
	}

	replyCh := make(chan interface{}, 1)
	envelope := &messageEnvelope{
		Message:   message,
		RequestID: fmt.Sprintf("ask-%d", atomic.AddUint64(&e.requestCounter, 1)),
		replyCh:   replyCh,
	}
	if !proc.sendMessage(envelope) {
		return nil, fmt.Errorf("%w: %s did not accept %T", ErrActorNotFound, pid, message)
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case reply := <-replyCh:
		return unwrapReply(reply)
	case <-proc.done:
		select {
		case reply := <-replyCh:
			return unwrapReply(reply)
		default:
		}
		return nil, fmt.Errorf("%w: %s stopped before replying", ErrActorNotFound, pid)
	case <-timer.C:
		return nil, fmt.Errorf("%w: %s did not answer %T within %s", ErrTimeout, pid, message, timeout)
	}
}

func unwrapReply(reply interface{}) (interface{}, error) {
	if err, isErr := reply.(error); isErr {
		return nil, err
	}
	return reply, nil
}

// Stop requests an actor to stop processing messages and shut down.
func (e *Engine) Stop(pid *PID) {
	if proc, ok := e.lookup(pid); ok {
		proc.requestStop()
	}
}

// Alive reports whether the actor is still registered with the engine.
func (e *Engine) Alive(pid *PID) bool {
	_, ok := e.lookup(pid)
	return ok
}

func (e *Engine) remove(pid *PID) {
	e.mu.Lock()
	delete(e.actors, pid.ID)
	e.mu.Unlock()
}

// Shutdown stops all actors and waits for them to terminate gracefully.
func (e *Engine) Shutdown(timeout time.Duration) {
	if !e.stopping.CompareAndSwap(false, true) {
		fmt.Println("Engine already shutting down")
		return
	}

	e.mu.RLock()
	procs := make([]*process, 0, len(e.actors))
	for _, proc := range e.actors {
		procs = append(procs, proc)
	}
	e.mu.RUnlock()

	for _, proc := range procs {
		proc.requestStop()
	}

	deadline := time.After(timeout)
	for _, proc := range procs {
		select {
		case <-proc.done:
		case <-deadline:
			e.mu.RLock()
			remaining := len(e.actors)
			e.mu.RUnlock()
			fmt.Printf("Engine shutdown timeout: %d actors did not stop gracefully.\n", remaining)
			return
		}
	}
}

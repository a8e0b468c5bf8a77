package bollywood

import (
	"errors"
	"sync"
	"testing"
	"time"
)

type recordingActor struct {
	mu       sync.Mutex
	received []interface{}
}

func (a *recordingActor) Receive(ctx Context) {
	a.mu.Lock()
	a.received = append(a.received, ctx.Message())
	a.mu.Unlock()

	switch msg := ctx.Message().(type) {
	case string:
		if ctx.RequestID() != "" {
			ctx.Reply("echo:" + msg)
		}
	case error:
		ctx.Reply(msg)
	case int:
		panic("boom")
	}
}

func (a *recordingActor) messages() []interface{} {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]interface{}, len(a.received))
	copy(out, a.received)
	return out
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return cond()
}

func TestEngine_StartedIsFirstMessage(t *testing.T) {
	engine := NewEngine()
	defer engine.Shutdown(time.Second)

	actor := &recordingActor{}
	pid := engine.Spawn(NewProps(func() Actor { return actor }))
	engine.Send(pid, "hello", nil)

	if !waitFor(t, time.Second, func() bool { return len(actor.messages()) >= 2 }) {
		t.Fatalf("expected two messages, got %v", actor.messages())
	}
	msgs := actor.messages()
	if _, ok := msgs[0].(Started); !ok {
		t.Errorf("first message = %T, want Started", msgs[0])
	}
	if msgs[1] != "hello" {
		t.Errorf("second message = %v, want hello", msgs[1])
	}
}

func TestEngine_Ask(t *testing.T) {
	engine := NewEngine()
	defer engine.Shutdown(time.Second)

	pid := engine.Spawn(NewProps(func() Actor { return &recordingActor{} }))

	reply, err := engine.Ask(pid, "ping", 200*time.Millisecond)
	if err != nil {
		t.Fatalf("Ask returned error: %v", err)
	}
	if reply != "echo:ping" {
		t.Errorf("reply = %v, want echo:ping", reply)
	}

	sentinel := errors.New("refused")
	_, err = engine.Ask(pid, sentinel, 200*time.Millisecond)
	if !errors.Is(err, sentinel) {
		t.Errorf("expected replied error, got %v", err)
	}

	_, err = engine.Ask(pid, 3.5, 30*time.Millisecond)
	if !errors.Is(err, ErrTimeout) {
		t.Errorf("expected ErrTimeout for unanswered ask, got %v", err)
	}

	_, err = engine.Ask(&PID{ID: "actor-missing"}, "ping", 30*time.Millisecond)
	if !errors.Is(err, ErrActorNotFound) {
		t.Errorf("expected ErrActorNotFound, got %v", err)
	}
}

func TestEngine_PanicStopsActor(t *testing.T) {
	engine := NewEngine()
	defer engine.Shutdown(time.Second)

	actor := &recordingActor{}
	pid := engine.Spawn(NewProps(func() Actor { return actor }))

	_, err := engine.Ask(pid, 1, 200*time.Millisecond)
	if err == nil {
		t.Fatal("expected an error from a panicking actor")
	}
	if !waitFor(t, time.Second, func() bool { return !engine.Alive(pid) }) {
		t.Fatal("actor still alive after panic")
	}
	msgs := actor.messages()
	if _, ok := msgs[len(msgs)-1].(Stopped); !ok {
		t.Errorf("last message = %T, want Stopped", msgs[len(msgs)-1])
	}
}

func TestEngine_StopDeliversStoppingThenStopped(t *testing.T) {
	engine := NewEngine()
	defer engine.Shutdown(time.Second)

	actor := &recordingActor{}
	pid := engine.Spawn(NewProps(func() Actor { return actor }))
	if !waitFor(t, time.Second, func() bool { return len(actor.messages()) == 1 }) {
		t.Fatal("actor never started")
	}

	engine.Stop(pid)
	if !waitFor(t, time.Second, func() bool { return !engine.Alive(pid) }) {
		t.Fatal("actor did not stop")
	}

	msgs := actor.messages()
	if len(msgs) != 3 {
		t.Fatalf("expected Started, Stopping, Stopped; got %v", msgs)
	}
	if _, ok := msgs[1].(Stopping); !ok {
		t.Errorf("second message = %T, want Stopping", msgs[1])
	}
	if _, ok := msgs[2].(Stopped); !ok {
		t.Errorf("third message = %T, want Stopped", msgs[2])
	}
}

func TestEngine_ShutdownRejectsSpawn(t *testing.T) {
	engine := NewEngine()
	engine.Spawn(NewProps(func() Actor { return &recordingActor{} }))
	engine.Shutdown(time.Second)

	if pid := engine.Spawn(NewProps(func() Actor { return &recordingActor{} })); pid != nil {
		t.Errorf("expected nil PID after shutdown, got %s", pid)
	}
}

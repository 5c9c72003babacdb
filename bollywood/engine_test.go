package bollywood

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/lguibr/solopong/internal/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingActor struct {
	mu       sync.Mutex
	received []interface{}
}

type ping struct{ n int }
type boom struct{}

func (a *recordingActor) Receive(ctx Context) {
	a.mu.Lock()
	a.received = append(a.received, ctx.Message())
	a.mu.Unlock()

	switch m := ctx.Message().(type) {
	case ping:
		ctx.Reply(m.n + 1)
	case boom:
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

func newTestEngine() *Engine {
	return NewEngineWithLogger(log.Discard())
}

func TestEngine_SpawnDeliversStartedFirst(t *testing.T) {
	engine := newTestEngine()
	actor := &recordingActor{}
	pid := engine.Spawn(NewProps(func() Actor { return actor }))
	require.NotNil(t, pid)

	engine.Send(pid, "hello", nil)

	require.Eventually(t, func() bool { return len(actor.messages()) == 2 }, time.Second, 5*time.Millisecond)
	msgs := actor.messages()
	assert.IsType(t, Started{}, msgs[0])
	assert.Equal(t, "hello", msgs[1])

	engine.Shutdown(time.Second)
}

func TestEngine_AskReplies(t *testing.T) {
	engine := newTestEngine()
	pid := engine.Spawn(NewProps(func() Actor { return &recordingActor{} }))

	reply, err := engine.Ask(pid, ping{n: 41}, time.Second)
	require.NoError(t, err)
	assert.Equal(t, 42, reply)

	engine.Shutdown(time.Second)
}

func TestEngine_AskTimeoutAndNotFound(t *testing.T) {
	engine := newTestEngine()
	pid := engine.Spawn(NewProps(func() Actor { return &recordingActor{} }))

	_, err := engine.Ask(pid, "no reply for strings", 20*time.Millisecond)
	assert.True(t, errors.Is(err, ErrTimeout))

	_, err = engine.Ask(&PID{ID: "actor-999"}, ping{}, 20*time.Millisecond)
	assert.ErrorIs(t, err, ErrActorNotFound)

	engine.Shutdown(time.Second)
}

func TestEngine_StopRunsStoppingAndStopped(t *testing.T) {
	engine := newTestEngine()
	actor := &recordingActor{}
	pid := engine.Spawn(NewProps(func() Actor { return actor }))

	engine.Stop(pid)

	require.Eventually(t, func() bool { return engine.Running() == 0 }, time.Second, 5*time.Millisecond)
	msgs := actor.messages()
	require.GreaterOrEqual(t, len(msgs), 2)
	assert.IsType(t, Stopping{}, msgs[len(msgs)-2])
	assert.IsType(t, Stopped{}, msgs[len(msgs)-1])

	// Messages to a stopped actor are dropped silently.
	assert.NotPanics(t, func() { engine.Send(pid, "late", nil) })
}

func TestEngine_PanicInReceiveIsContained(t *testing.T) {
	engine := newTestEngine()
	actor := &recordingActor{}
	pid := engine.Spawn(NewProps(func() Actor { return actor }))

	engine.Send(pid, boom{}, nil)
	reply, err := engine.Ask(pid, ping{n: 1}, time.Second)
	require.NoError(t, err)
	assert.Equal(t, 2, reply)

	engine.Shutdown(time.Second)
}

func TestEngine_ShutdownRejectsNewWork(t *testing.T) {
	engine := newTestEngine()
	engine.Spawn(NewProps(func() Actor { return &recordingActor{} }))
	engine.Shutdown(time.Second)

	assert.Equal(t, 0, engine.Running())
	assert.Nil(t, engine.Spawn(NewProps(func() Actor { return &recordingActor{} })))
	_, err := engine.Ask(&PID{ID: "actor-1"}, ping{}, time.Millisecond)
	assert.ErrorIs(t, err, ErrEngineStopping)
}

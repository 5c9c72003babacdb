package game

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/lguibr/solopong/bollywood"
	"github.com/lguibr/solopong/internal/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func subscriberCount(t *testing.T, engine *bollywood.Engine, pid *bollywood.PID) int {
	t.Helper()
	reply, err := engine.Ask(pid, GetSubscriberCountRequest{}, time.Second)
	require.NoError(t, err)
	return reply.(int)
}

func TestBroadcasterActor_DropsFailingSinks(t *testing.T) {
	engine := bollywood.NewEngineWithLogger(log.Discard())
	defer engine.Shutdown(time.Second)
	pid := engine.Spawn(bollywood.NewProps(NewBroadcasterProducer(log.Discard())))

	good := &frameRecorder{}
	bad := &frameRecorder{err: errors.New("connection reset")}
	engine.Send(pid, Subscribe{ID: "good", Sink: good}, nil)
	engine.Send(pid, Subscribe{ID: "bad", Sink: bad}, nil)
	engine.Send(pid, Subscribe{ID: "", Sink: good}, nil)
	assert.Equal(t, 2, subscriberCount(t, engine, pid))

	engine.Send(pid, broadcastFrame{Frame: Frame{Snapshot: Snapshot{Tick: 1}}}, nil)

	require.Eventually(t, func() bool { return subscriberCount(t, engine, pid) == 1 }, time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool { return len(good.Frames()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, uint64(1), good.Frames()[0].Snapshot.Tick)
}

func TestBroadcasterActor_ResubscribeReplacesSink(t *testing.T) {
	engine := bollywood.NewEngineWithLogger(log.Discard())
	defer engine.Shutdown(time.Second)
	pid := engine.Spawn(bollywood.NewProps(NewBroadcasterProducer(log.Discard())))

	first := &frameRecorder{}
	second := &frameRecorder{}
	engine.Send(pid, Subscribe{ID: "v", Sink: first}, nil)
	engine.Send(pid, Subscribe{ID: "v", Sink: FrameSinkFunc(second.Deliver)}, nil)
	engine.Send(pid, broadcastFrame{Frame: Frame{}}, nil)

	assert.Equal(t, 1, subscriberCount(t, engine, pid))
	require.Eventually(t, func() bool { return len(second.Frames()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Empty(t, first.Frames())
}

// blockingSink never returns from Deliver until released.
type blockingSink struct {
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func newBlockingSink() *blockingSink {
	return &blockingSink{entered: make(chan struct{}), release: make(chan struct{})}
}

func (b *blockingSink) Deliver(Frame) error {
	b.once.Do(func() { close(b.entered) })
	<-b.release
	return nil
}

func TestBroadcasterActor_StuckViewerDoesNotStarveOthers(t *testing.T) {
	engine := bollywood.NewEngineWithLogger(log.Discard())
	defer engine.Shutdown(time.Second)
	pid := engine.Spawn(bollywood.NewProps(NewBroadcasterProducer(log.Discard())))

	stuck := newBlockingSink()
	defer close(stuck.release)
	healthy := &frameRecorder{}
	engine.Send(pid, Subscribe{ID: "stuck", Sink: stuck}, nil)
	engine.Send(pid, Subscribe{ID: "healthy", Sink: healthy}, nil)

	// More frames than a viewer's queue holds.
	total := viewerBuffer * 3
	for i := 1; i <= total; i++ {
		engine.Send(pid, broadcastFrame{Frame: Frame{Snapshot: Snapshot{Tick: uint64(i)}}}, nil)
		if i%viewerBuffer == 0 {
			// Let the healthy viewer drain before the next burst.
			want := i
			require.Eventually(t, func() bool { return len(healthy.Frames()) == want }, time.Second, 2*time.Millisecond)
		}
	}

	<-stuck.entered
	frames := healthy.Frames()
	require.Len(t, frames, total)
	for i, frame := range frames {
		assert.Equal(t, uint64(i+1), frame.Snapshot.Tick)
	}
	assert.Equal(t, 2, subscriberCount(t, engine, pid), "a slow viewer stays subscribed")
}

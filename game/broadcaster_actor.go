// File: game/broadcaster_actor.go
package game

import (
	"runtime/debug"

	"github.com/lguibr/solopong/bollywood"
	"github.com/lguibr/solopong/internal/log"
)

// viewerBuffer is how many frames a viewer may fall behind before frames
// are dropped for it.
const viewerBuffer = 32

// viewer delivers frames to one sink from its own goroutine, so a slow
// or stuck sink only ever delays itself.
type viewer struct {
	id     string
	sink   FrameSink
	frames chan Frame
	quit   chan struct{}
}

func newViewer(id string, sink FrameSink) *viewer {
	return &viewer{
		id:     id,
		sink:   sink,
		frames: make(chan Frame, viewerBuffer),
		quit:   make(chan struct{}),
	}
}

// run delivers queued frames until the viewer is closed or a delivery
// fails. A failure is reported back to the broadcaster.
func (v *viewer) run(engine *bollywood.Engine, broadcaster *bollywood.PID) {
	for {
		select {
		case <-v.quit:
			return
		case frame := <-v.frames:
			if err := v.sink.Deliver(frame); err != nil {
				engine.Send(broadcaster, viewerFailed{viewer: v, err: err}, nil)
				return
			}
		}
	}
}

// offer queues a frame without blocking. It reports false when the viewer
// is too far behind and the frame was dropped.
func (v *viewer) offer(frame Frame) bool {
	select {
	case v.frames <- frame:
		return true
	default:
		return false
	}
}

func (v *viewer) close() { close(v.quit) }

// viewerFailed is posted by a viewer goroutine whose sink returned an error.
type viewerFailed struct {
	viewer *viewer
	err    error
}

// BroadcasterActor fans frames out to the viewers of one session, off the
// simulation's goroutine. Each viewer has its own queue and goroutine, so a
// slow viewer never stalls a tick or the other viewers.
type BroadcasterActor struct {
	viewers map[string]*viewer
	order   []string // subscription order
	selfPID *bollywood.PID
	engine  *bollywood.Engine
	logger  *log.Logger
}

// NewBroadcasterProducer creates a producer for BroadcasterActor.
func NewBroadcasterProducer(logger *log.Logger) bollywood.Producer {
	return func() bollywood.Actor {
		return &BroadcasterActor{
			viewers: make(map[string]*viewer),
			logger:  logger,
		}
	}
}

// Receive handles messages for the BroadcasterActor.
func (a *BroadcasterActor) Receive(ctx bollywood.Context) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Errorf("PANIC recovered in BroadcasterActor %s Receive: %v\nStack trace:\n%s", a.selfPID, r, string(debug.Stack()))
		}
	}()

	if a.selfPID == nil {
		a.selfPID = ctx.Self()
		a.engine = ctx.Engine()
	}

	switch msg := ctx.Message().(type) {
	case bollywood.Started:

	case Subscribe:
		if msg.Sink == nil || msg.ID == "" {
			a.logger.Warnf("Broadcaster %s: ignoring subscription with empty id or sink", a.selfPID)
			return
		}
		if old, exists := a.viewers[msg.ID]; exists {
			old.close()
		} else {
			a.order = append(a.order, msg.ID)
		}
		v := newViewer(msg.ID, msg.Sink)
		a.viewers[msg.ID] = v
		go v.run(a.engine, a.selfPID)
		a.logger.Debugf("Broadcaster %s: %s subscribed (%d viewers)", a.selfPID, msg.ID, len(a.viewers))

	case Unsubscribe:
		a.remove(msg.ID)

	case viewerFailed:
		// A replaced viewer may report late; only drop the current one.
		if current, ok := a.viewers[msg.viewer.id]; ok && current == msg.viewer {
			a.logger.Infof("Broadcaster %s: dropping viewer %s: %v", a.selfPID, msg.viewer.id, msg.err)
			a.remove(msg.viewer.id)
		}

	case broadcastFrame:
		a.broadcast(msg.Frame)

	case GetSubscriberCountRequest:
		ctx.Reply(len(a.viewers))

	case bollywood.Stopping:
		for _, v := range a.viewers {
			v.close()
		}
		a.viewers = make(map[string]*viewer)
		a.order = nil

	case bollywood.Stopped:

	default:
		a.logger.Warnf("Broadcaster %s: unknown message type: %T", a.selfPID, msg)
	}
}

func (a *BroadcasterActor) broadcast(frame Frame) {
	for _, id := range a.order {
		v, ok := a.viewers[id]
		if !ok {
			continue
		}
		if !v.offer(frame) {
			a.logger.Debugf("Broadcaster %s: %s is behind, dropped frame %d", a.selfPID, id, frame.Snapshot.Tick)
		}
	}
}

func (a *BroadcasterActor) remove(id string) {
	v, ok := a.viewers[id]
	if !ok {
		return
	}
	v.close()
	delete(a.viewers, id)
	for i, existing := range a.order {
		if existing == id {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
	a.logger.Debugf("Broadcaster %s: %s unsubscribed (%d viewers)", a.selfPID, id, len(a.viewers))
}

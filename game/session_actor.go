// File: game/session_actor.go
package game

import (
	"fmt"
	"math/rand"
	"runtime/debug"
	"sync/atomic"
	"time"

	"github.com/lguibr/solopong/bollywood"
	"github.com/lguibr/solopong/internal/log"
	"github.com/lguibr/solopong/utils"
)

// SessionArgs holds arguments for creating a SessionActor.
type SessionArgs struct {
	Config utils.Config
	Rng    *rand.Rand  // nil seeds from Config.Seed
	Logger *log.Logger // nil uses log.Default()
	// ManualTick disables the internal ticker; the owner sends Tick
	// messages itself.
	ManualTick bool
}

// SessionActor owns one simulation. Its mailbox is the session's single
// logical thread: pointer moves, ticks, subscriptions and queries are
// handled one at a time, in arrival order.
type SessionActor struct {
	cfg          utils.Config
	sim          *Simulation
	input        *InputAdapter
	scoreboard   Scoreboard
	logger       *log.Logger
	manualTick   bool
	selfPID      *bollywood.PID
	broadcaster  *bollywood.PID
	stopTickerCh chan struct{}
}

// NewSessionProps validates the configuration and returns props for a
// SessionActor. Configuration errors surface here, once, rather than
// inside the actor. Every actor produced from the props gets its own
// simulation; only the first one uses args.Rng, later ones are seeded
// from the config.
func NewSessionProps(args SessionArgs) (*bollywood.Props, error) {
	if err := args.Config.Validate(); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	logger := args.Logger
	if logger == nil {
		logger = log.Default()
	}
	var rngTaken atomic.Bool
	return bollywood.NewProps(func() bollywood.Actor {
		var rng *rand.Rand
		if rngTaken.CompareAndSwap(false, true) {
			rng = args.Rng
		}
		sim, err := NewSimulation(args.Config, rng)
		if err != nil {
			// Unreachable: the config was validated above.
			panic(fmt.Sprintf("session: %v", err))
		}
		return &SessionActor{
			cfg:          args.Config,
			sim:          sim,
			input:        NewInputAdapter(args.Config),
			logger:       logger,
			manualTick:   args.ManualTick,
			stopTickerCh: make(chan struct{}),
		}
	}), nil
}

// Receive is the main message handler for the SessionActor.
func (a *SessionActor) Receive(ctx bollywood.Context) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Errorf("PANIC recovered in SessionActor %s Receive: %v\nStack trace:\n%s", a.selfPID, r, string(debug.Stack()))
		}
	}()

	if a.selfPID == nil {
		a.selfPID = ctx.Self()
	}

	switch msg := ctx.Message().(type) {
	case bollywood.Started:
		a.broadcaster = ctx.Engine().Spawn(bollywood.NewProps(NewBroadcasterProducer(a.logger)))
		if !a.manualTick {
			go a.runTickerLoop(ctx.Engine(), a.selfPID, a.cfg.TickPeriod)
		}
		a.logger.Infof("SessionActor %s: started (%gx%g, tick %v)", a.selfPID, a.cfg.Width, a.cfg.Height, a.cfg.TickPeriod)

	case PointerMove:
		a.input.OnPointerMove(msg.Y)

	case Tick:
		a.handleTick(ctx, msg)

	case Subscribe, Unsubscribe:
		if a.broadcaster != nil {
			ctx.Engine().Send(a.broadcaster, msg, a.selfPID)
		}

	case GetFrameRequest:
		ctx.Reply(a.frame(a.sim.Snapshot()))

	case ResetSession:
		a.sim.Reset()
		a.scoreboard.Reset()
		a.input = NewInputAdapter(a.cfg)
		a.logger.Infof("SessionActor %s: reset", a.selfPID)

	case bollywood.Stopping:
		a.stopTicker()
		if a.broadcaster != nil {
			ctx.Engine().Stop(a.broadcaster)
		}
		a.logger.Infof("SessionActor %s: stopping at tick %d, score %d-%d", a.selfPID, a.sim.World().Tick, a.scoreboard.Score().Player, a.scoreboard.Score().Opponent)

	case bollywood.Stopped:

	default:
		a.logger.Warnf("SessionActor %s: unknown message type: %T", a.selfPID, msg)
	}
}

func (a *SessionActor) handleTick(ctx bollywood.Context, msg Tick) {
	dt := msg.Dt
	if dt <= 0 {
		dt = a.cfg.TickPeriod
	}
	snap := a.sim.Advance(dt, a.input.Target())
	if a.scoreboard.Record(snap.Events) {
		score := a.scoreboard.Score()
		a.logger.Debugf("SessionActor %s: %s at tick %d, score %d-%d", a.selfPID, snap.Events, snap.Tick, score.Player, score.Opponent)
	}
	if a.broadcaster != nil {
		ctx.Engine().Send(a.broadcaster, broadcastFrame{Frame: a.frame(snap)}, a.selfPID)
	}
}

func (a *SessionActor) frame(snap Snapshot) Frame {
	return Frame{Snapshot: snap, Score: a.scoreboard.Score()}
}

// runTickerLoop posts Tick messages to the session at a fixed period.
func (a *SessionActor) runTickerLoop(engine *bollywood.Engine, self *bollywood.PID, period time.Duration) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	for {
		select {
		case <-a.stopTickerCh:
			return
		case <-ticker.C:
			engine.Send(self, Tick{}, nil)
		}
	}
}

func (a *SessionActor) stopTicker() {
	select {
	case <-a.stopTickerCh:
	default:
		close(a.stopTickerCh)
	}
}

// File: game/messages.go
package game

import "time"

// --- Input (host -> SessionActor) ---

// PointerMove carries a pointer y relative to the playfield origin.
type PointerMove struct {
	Y float64 `json:"y"`
}

// --- Loop ---

// Tick advances the session once. A zero Dt uses the configured tick
// period.
type Tick struct {
	Dt time.Duration
}

// ResetSession puts the simulation and the scoreboard back to the start.
type ResetSession struct{}

// --- Viewers ---

// FrameSink receives every frame a session produces, in order. Deliver
// is called from the broadcaster's goroutine; an error unsubscribes the
// sink.
type FrameSink interface {
	Deliver(frame Frame) error
}

// FrameSinkFunc adapts a function to FrameSink.
type FrameSinkFunc func(frame Frame) error

func (f FrameSinkFunc) Deliver(frame Frame) error { return f(frame) }

// Subscribe registers a viewer under ID. Re-using an ID replaces the sink.
type Subscribe struct {
	ID   string
	Sink FrameSink
}

// Unsubscribe removes the viewer registered under ID.
type Unsubscribe struct {
	ID string
}

// --- Queries (via Engine.Ask) ---

// GetFrameRequest asks a SessionActor for its current Frame.
type GetFrameRequest struct{}

// GetSubscriberCountRequest asks a BroadcasterActor how many sinks it holds.
// The reply is an int.
type GetSubscriberCountRequest struct{}

// --- Internal ---

// broadcastFrame is sent by the SessionActor to its broadcaster after each tick.
type broadcastFrame struct {
	Frame Frame
}

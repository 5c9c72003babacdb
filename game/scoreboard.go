package game

// Score is the running tally of points for one session.
type Score struct {
	Player   int `json:"player" msgpack:"player"`
	Opponent int `json:"opponent" msgpack:"opponent"`
}

// Scoreboard counts points from tick events. The simulation itself keeps
// no score.
type Scoreboard struct {
	score Score
}

// Record tallies the scoring events of one tick and reports whether a
// point was scored.
func (s *Scoreboard) Record(events Events) bool {
	scored := false
	if events.Has(EventPlayerScored) {
		s.score.Player++
		scored = true
	}
	if events.Has(EventOpponentScored) {
		s.score.Opponent++
		scored = true
	}
	return scored
}

func (s *Scoreboard) Score() Score { return s.score }

func (s *Scoreboard) Reset() { s.score = Score{} }

// Frame is what viewers receive each tick.
type Frame struct {
	Snapshot Snapshot `json:"snapshot" msgpack:"snapshot"`
	Score    Score    `json:"score" msgpack:"score"`
}

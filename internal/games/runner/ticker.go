package runner

import "time"

// ScoreTicker converts elapsed simulation time into fixed-period ticks.
// It replaces a wall-clock interval timer: the game loop feeds it the frame
// duration so scoring stays ordered with input and physics.
type ScoreTicker struct {
	interval time.Duration
	elapsed  time.Duration
}

// NewScoreTicker creates a ticker firing every interval.
func NewScoreTicker(interval time.Duration) *ScoreTicker {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	return &ScoreTicker{interval: interval}
}

// Advance adds dt and returns how many periods completed.
// Leftover time carries into the next call.
func (t *ScoreTicker) Advance(dt time.Duration) int {
	if dt <= 0 {
		return 0
	}
	t.elapsed += dt
	fired := int(t.elapsed / t.interval)
	t.elapsed -= time.Duration(fired) * t.interval
	return fired
}

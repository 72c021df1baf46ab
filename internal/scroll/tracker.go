// Package scroll tracks which way the page is being scrolled.
package scroll

import "go.uber.org/zap"

// Direction is the current scroll direction.
type Direction int

const (
	// Down is the initial state.
	Down Direction = iota
	Up
)

func (d Direction) String() string {
	switch d {
	case Down:
		return "down"
	case Up:
		return "up"
	default:
		return "unknown"
	}
}

// Tracker is a two-state machine fed with vertical scroll offsets.
type Tracker struct {
	dir  Direction
	last float64
	log  *zap.Logger
}

// NewTracker returns a tracker in the Down state with a last offset of 0.
func NewTracker(log *zap.Logger) *Tracker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Tracker{dir: Down, log: log}
}

// Observe records a new scroll offset. An offset strictly greater than the
// previous one means Down; anything else, including an equal offset, means
// Up. Negative offsets are remembered as 0.
func (t *Tracker) Observe(offset float64) Direction {
	prev := t.dir
	if offset > t.last {
		t.dir = Down
	} else {
		t.dir = Up
	}
	t.last = max(offset, 0)

	if t.dir != prev {
		t.log.Debug("scroll direction changed",
			zap.Stringer("direction", t.dir),
			zap.Float64("offset", offset),
		)
	}
	return t.dir
}

// Direction returns the current state.
func (t *Tracker) Direction() Direction {
	return t.dir
}

// LastOffset returns the remembered offset.
func (t *Tracker) LastOffset() float64 {
	return t.last
}

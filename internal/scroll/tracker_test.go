package scroll

import "testing"

func TestTrackerInitialState(t *testing.T) {
	tr := NewTracker(nil)
	if tr.Direction() != Down {
		t.Errorf("initial direction = %v, want down", tr.Direction())
	}
	if tr.LastOffset() != 0 {
		t.Errorf("initial offset = %g, want 0", tr.LastOffset())
	}
}

func TestTrackerSequences(t *testing.T) {
	tests := []struct {
		name    string
		offsets []float64
		want    []Direction
	}{
		{
			// Deliberately Up for the first 0, unlike the documented example
			// that starts Down: 0 is not greater than the initial 0, and the
			// repeated 10 ties to Up as well.
			name:    "tie at repeated offset",
			offsets: []float64{0, 10, 10, 5},
			want:    []Direction{Up, Down, Up, Up},
		},
		{
			name:    "steady scroll down",
			offsets: []float64{100, 200, 300},
			want:    []Direction{Down, Down, Down},
		},
		{
			name:    "down then back up",
			offsets: []float64{300, 200, 250, 0},
			want:    []Direction{Down, Up, Down, Up},
		},
		{
			// Rubber-band offsets are stored as 0, so 0 afterwards is a tie.
			name:    "negative offsets clamp to zero",
			offsets: []float64{50, -20, 0, 1},
			want:    []Direction{Down, Up, Up, Down},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker(nil)
			for i, off := range tt.offsets {
				got := tr.Observe(off)
				if got != tt.want[i] {
					t.Errorf("step %d (offset %g): got %v, want %v", i, off, got, tt.want[i])
				}
				if got != tr.Direction() {
					t.Errorf("step %d: Observe returned %v but Direction() is %v", i, got, tr.Direction())
				}
			}
		})
	}
}

func TestTrackerRemembersClampedOffset(t *testing.T) {
	tr := NewTracker(nil)
	tr.Observe(-35)
	if tr.LastOffset() != 0 {
		t.Errorf("last offset = %g, want 0", tr.LastOffset())
	}
	tr.Observe(12.5)
	if tr.LastOffset() != 12.5 {
		t.Errorf("last offset = %g, want 12.5", tr.LastOffset())
	}
}

func TestDirectionString(t *testing.T) {
	if Down.String() != "down" || Up.String() != "up" {
		t.Errorf("unexpected names %q, %q", Down, Up)
	}
	if Direction(9).String() != "unknown" {
		t.Errorf("unexpected name for invalid direction: %q", Direction(9))
	}
}

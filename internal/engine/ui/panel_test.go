package ui

import (
	"testing"

	"github.com/Faultbox/terrain-backdrop/internal/noise"
	"github.com/Faultbox/terrain-backdrop/internal/params"
	"github.com/Faultbox/terrain-backdrop/internal/scene"
	"github.com/Faultbox/terrain-backdrop/pkg/math"
)

func newTestPanel(t *testing.T, tuning params.Tuning) (*Panel, *scene.Scene, *[]params.Field) {
	t.Helper()
	p := params.New(tuning, nil)
	s := scene.New(scene.DefaultConfig(), noise.Func(func(x, y float64) float64 { return 0 }), p, nil)
	t.Cleanup(s.Close)

	var changed []params.Field
	p.Subscribe(func(c params.Change) { changed = append(changed, c.Field) })
	return NewPanel(s, nil), s, &changed
}

func TestApplyUntouchedIsSilent(t *testing.T) {
	tuning := params.DefaultTuning()
	tuning.SegmentsY = 60 // non-square grid must survive
	panel, s, changed := newTestPanel(t, tuning)
	cam := s.CameraPosition()

	panel.apply(panel.read(), actions{})

	if len(*changed) != 0 {
		t.Errorf("untouched panel emitted %v", *changed)
	}
	if s.CameraPosition() != cam {
		t.Errorf("camera moved to %+v", s.CameraPosition())
	}
	if _, y := s.Params.Segments(); y != 60 {
		t.Errorf("segments y = %d, want 60", y)
	}
}

func TestApplyEdits(t *testing.T) {
	panel, s, changed := newTestPanel(t, params.DefaultTuning())

	v := panel.read()
	v.CamX, v.CamY = 25, 50
	v.Peak = 40
	v.Segments = 120
	v.Color = [3]float32{0, 1, 0}
	v.Scale = [3]float32{2, 1, 1}
	panel.apply(v, actions{})

	want := []params.Field{params.FieldPeak, params.FieldSegments, params.FieldColor, params.FieldScale}
	if len(*changed) != len(want) {
		t.Fatalf("changes = %v, want %v", *changed, want)
	}
	for i := range want {
		if (*changed)[i] != want[i] {
			t.Fatalf("changes = %v, want %v", *changed, want)
		}
	}

	tu := s.Params.Tuning()
	if tu.SegmentsX != 120 || tu.SegmentsY != 120 {
		t.Errorf("segments = %dx%d", tu.SegmentsX, tu.SegmentsY)
	}
	if tu.Color != 0x00FF00 {
		t.Errorf("color = %#x", tu.Color)
	}
	if x, _ := s.Field.Segments(); x != 120 {
		t.Errorf("field not rebuilt: %d segments", x)
	}
	cam := s.CameraPosition()
	if cam.X != 25 || cam.Y != 50 {
		t.Errorf("camera = %+v", cam)
	}
}

func TestApplyButtons(t *testing.T) {
	shots := 0
	panel, s, _ := newTestPanel(t, params.DefaultTuning())
	panel.onScreenshot = func() { shots++ }

	v := panel.read()
	v.Scale = [3]float32{3, 3, 3}
	panel.apply(v, actions{Stop: true, Reset: true, Screenshot: true})

	if s.Params.Speed() != 0 {
		t.Errorf("speed = %g after Stop", s.Params.Speed())
	}
	// Reset runs after the edits, so the scale edit is undone.
	tu := s.Params.Tuning()
	if tu.Scale != (math.Vec3{X: 1, Y: 1, Z: 1}) || !tu.Wireframe {
		t.Errorf("after reset: scale %+v wireframe %v", tu.Scale, tu.Wireframe)
	}
	if s.CameraPosition() != scene.ResetCameraPosition {
		t.Errorf("camera = %+v", s.CameraPosition())
	}
	if shots != 1 {
		t.Errorf("screenshot callback ran %d times", shots)
	}
}

func TestFooterShowsPageOffset(t *testing.T) {
	panel, s, _ := newTestPanel(t, params.DefaultTuning())
	s.Wheel(-3)

	got := footer(panel.scene.Page.Offset(), panel.scene.Tracker.Direction())
	if want := "Page: 300 px (down)"; got != want {
		t.Errorf("footer = %q, want %q", got, want)
	}
}

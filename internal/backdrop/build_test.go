package backdrop

import (
	"testing"

	"go.uber.org/zap"

	"github.com/Faultbox/terrain-backdrop/internal/config"
)

func TestNewSceneFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Terrain.SegmentsX = 10
	cfg.Terrain.SegmentsY = 20
	cfg.Terrain.Peak = 500 // clamped by params
	cfg.Noise.Kind = "simplex"
	cfg.Graphics.Width, cfg.Graphics.Height = 1000, 500

	s, err := NewScene(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("NewScene() error = %v", err)
	}
	defer s.Close()

	if x, y := s.Field.Segments(); x != 10 || y != 20 {
		t.Errorf("segments = %dx%d, want 10x20", x, y)
	}
	if w, d := s.Field.Extent(); w != 300 || d != 300 {
		t.Errorf("extent = %gx%g, want 300x300", w, d)
	}
	if s.Params.Peak() != 100 {
		t.Errorf("peak = %g, want clamped 100", s.Params.Peak())
	}
	if s.Params.Tuning().Color != 0xFF866C {
		t.Errorf("color = %#x", s.Params.Tuning().Color)
	}
	if s.Camera.Aspect != 2 {
		t.Errorf("aspect = %g, want 2", s.Camera.Aspect)
	}
	if s.Page.Height() != 4000 {
		t.Errorf("page height = %g, want 4000", s.Page.Height())
	}

	// One frame produces finite, bounded heights.
	s.Tick(1.0 / 60)
	for i, h := range s.Field.Heights() {
		if h > 100 || h < -100 || h != h {
			t.Fatalf("height %d = %g out of range", i, h)
		}
	}
}

func TestNewSceneRejectsUnknownNoise(t *testing.T) {
	cfg := config.Default()
	cfg.Noise.Kind = "value"
	if _, err := NewScene(cfg, zap.NewNop()); err == nil {
		t.Error("expected error for unknown noise kind")
	}
}

func TestNewScreenshots(t *testing.T) {
	cfg := config.Default()
	cfg.Screenshot.Format = "BMP"
	if _, err := NewScreenshots(cfg); err != nil {
		t.Errorf("NewScreenshots() error = %v", err)
	}

	cfg.Screenshot.Format = "gif"
	if _, err := NewScreenshots(cfg); err == nil {
		t.Error("expected error for gif")
	}
}

func TestFrameDelta(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{1.0 / 60, 1.0 / 60},
		{0, 0},
		{-0.5, 0},
		{3, maxFrameDelta},
	}
	for _, tt := range tests {
		if got := FrameDelta(tt.in); got != tt.want {
			t.Errorf("FrameDelta(%g) = %g, want %g", tt.in, got, tt.want)
		}
	}
}

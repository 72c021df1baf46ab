package terrain

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/terrain-backdrop/internal/noise"
	"github.com/Faultbox/terrain-backdrop/pkg/math"
)

// sumNoise is the test stub noise(u, v) = u + v.
var sumNoise = noise.Func(func(u, v float64) float64 { return u + v })

func TestRebuildVertexCount(t *testing.T) {
	tests := []struct {
		segX, segY int
		wantX      int
		wantY      int
	}{
		{1, 1, 1, 1},
		{2, 2, 2, 2},
		{80, 80, 80, 80},
		{250, 3, 250, 3},
		{0, -4, 1, 1}, // clamped
	}

	f := NewField(sumNoise, 300, 300, 1, 1, nil)
	for _, tt := range tests {
		f.Rebuild(tt.segX, tt.segY)

		gotX, gotY := f.Segments()
		if gotX != tt.wantX || gotY != tt.wantY {
			t.Errorf("Rebuild(%d, %d): segments = %dx%d, want %dx%d",
				tt.segX, tt.segY, gotX, gotY, tt.wantX, tt.wantY)
		}
		if want := (tt.wantX + 1) * (tt.wantY + 1); len(f.Vertices) != want {
			t.Errorf("Rebuild(%d, %d): %d vertices, want %d", tt.segX, tt.segY, len(f.Vertices), want)
		}
		if want := tt.wantX * tt.wantY * 6; len(f.Indices) != want {
			t.Errorf("Rebuild(%d, %d): %d indices, want %d", tt.segX, tt.segY, len(f.Indices), want)
		}
		for _, idx := range f.Indices {
			if int(idx) >= len(f.Vertices) {
				t.Fatalf("index %d out of range (%d vertices)", idx, len(f.Vertices))
			}
		}
	}
}

func TestRebuildEvenSpacing(t *testing.T) {
	f := NewField(sumNoise, 300, 200, 4, 5, nil)

	cols := 5
	for i, v := range f.Vertices {
		ix := i % cols
		iy := i / cols
		wantX := float32(ix)*75 - 150
		wantY := 100 - float32(iy)*40
		if v.Position[0] != wantX || v.Position[1] != wantY {
			t.Errorf("vertex %d at (%g, %g), want (%g, %g)",
				i, v.Position[0], v.Position[1], wantX, wantY)
		}
	}

	first := f.Vertices[0].Position
	last := f.Vertices[len(f.Vertices)-1].Position
	if first[0] != -150 || first[1] != 100 || last[0] != 150 || last[1] != -100 {
		t.Errorf("grid spans (%g,%g)..(%g,%g), want (-150,100)..(150,-100)",
			first[0], first[1], last[0], last[1])
	}
}

func TestRebuildReplacesGrid(t *testing.T) {
	f := NewField(sumNoise, 300, 300, 2, 2, nil)
	old := f.Vertices
	f.ClearDirty()

	f.Rebuild(3, 3)

	if &old[0] == &f.Vertices[0] {
		t.Error("Rebuild should allocate a new grid")
	}
	if f.Dirty()&DirtyIndices == 0 || f.Dirty()&DirtyPositions == 0 {
		t.Errorf("Rebuild should mark positions and indices dirty, got %b", f.Dirty())
	}
}

func TestRecomputeKnownPattern(t *testing.T) {
	f := NewField(sumNoise, 300, 300, 2, 2, nil)
	f.Recompute(math.Vec3{}, 10, 1)

	// Rows run from y=+150 down to y=-150, columns from x=-150 to x=150.
	want := []float32{
		0, 1500, 3000,
		-1500, 0, 1500,
		-3000, -1500, 0,
	}
	got := f.Heights()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("height[%d] = %g, want %g", i, got[i], want[i])
		}
	}
}

func TestRecomputeUsesOffsetXZ(t *testing.T) {
	var gotU, gotV []float64
	rec := noise.Func(func(u, v float64) float64 {
		gotU = append(gotU, u)
		gotV = append(gotV, v)
		return 1
	})

	f := NewField(rec, 2, 2, 1, 1, nil)
	f.Recompute(math.Vec3{X: 4, Y: 1000, Z: -6}, 3, 2)

	// Vertex 0 sits at (-1, 1).
	if gotU[0] != (4-1)/2.0 || gotV[0] != (-6+1)/2.0 {
		t.Errorf("first sample at (%g, %g), want (1.5, -2.5)", gotU[0], gotV[0])
	}
	for i, h := range f.Heights() {
		if h != 3 {
			t.Errorf("height[%d] = %g, want 3", i, h)
		}
	}
}

func TestRecomputeIsDeterministic(t *testing.T) {
	src, err := noise.New(noise.KindPerlin, 99, 1)
	if err != nil {
		t.Fatalf("noise.New: %v", err)
	}

	a := NewField(src, 300, 300, 20, 20, nil)
	a.Recompute(math.Vec3{X: 3, Z: 12.5}, 15, 50)
	first := a.Heights()
	a.Recompute(math.Vec3{X: 3, Z: 12.5}, 15, 50)
	second := a.Heights()

	src2, _ := noise.New(noise.KindPerlin, 99, 1)
	b := NewField(src2, 300, 300, 20, 20, nil)
	b.Recompute(math.Vec3{X: 3, Z: 12.5}, 15, 50)
	other := b.Heights()

	for i := range first {
		if first[i] != second[i] || first[i] != other[i] {
			t.Fatalf("height[%d] differs: %g, %g, %g", i, first[i], second[i], other[i])
		}
	}
}

func TestRecomputeZeroAmplitudeIsFlat(t *testing.T) {
	src, _ := noise.New(noise.KindSimplex, 5, 2)
	f := NewField(src, 300, 300, 10, 10, nil)

	for _, amp := range []float32{0, -4} {
		for _, smooth := range []float32{0, 1, 50} {
			f.Recompute(math.Vec3{X: 17, Z: -230}, amp, smooth)
			for i, h := range f.Heights() {
				if h != 0 {
					t.Fatalf("amp=%g smooth=%g: height[%d] = %g, want 0", amp, smooth, i, h)
				}
			}
		}
	}
}

func TestRecomputeZeroSmoothingStaysFinite(t *testing.T) {
	src, _ := noise.New(noise.KindPerlin, 1, 1)
	f := NewField(src, 300, 300, 8, 8, nil)

	nan := float32(gomath.NaN())
	for _, smooth := range []float32{0, -1, nan} {
		f.Recompute(math.Vec3{X: 1, Z: 2}, 100, smooth)
		for i, v := range f.Vertices {
			h := float64(v.Position[2])
			if gomath.IsNaN(h) || gomath.IsInf(h, 0) {
				t.Fatalf("smooth=%g: height[%d] is not finite", smooth, i)
			}
			for _, c := range v.Normal {
				if gomath.IsNaN(float64(c)) {
					t.Fatalf("smooth=%g: normal[%d] is NaN", smooth, i)
				}
			}
		}
	}
}

func TestRecomputeDropsNonFiniteSamples(t *testing.T) {
	bad := noise.Func(func(u, v float64) float64 { return gomath.Inf(1) })
	f := NewField(bad, 10, 10, 1, 1, nil)
	f.Recompute(math.Vec3{}, 1, 1)

	for i, h := range f.Heights() {
		if h != 0 {
			t.Errorf("height[%d] = %g, want 0", i, h)
		}
	}
}

func TestRecomputeMarksDirty(t *testing.T) {
	f := NewField(sumNoise, 10, 10, 1, 1, nil)
	f.ClearDirty()

	f.Recompute(math.Vec3{}, 1, 1)
	if f.Dirty() != DirtyPositions {
		t.Errorf("Dirty() = %b, want positions only", f.Dirty())
	}
}

func TestNormals(t *testing.T) {
	flat := noise.Func(func(u, v float64) float64 { return 0 })
	f := NewField(flat, 10, 10, 3, 3, nil)
	f.Recompute(math.Vec3{}, 1, 1)
	for i, v := range f.Vertices {
		if v.Normal != [3]float32{0, 0, 1} {
			t.Fatalf("flat normal[%d] = %v, want +Z", i, v.Normal)
		}
	}

	// z = x tilts every normal toward -X.
	ramp := noise.Func(func(u, v float64) float64 { return u })
	f = NewField(ramp, 10, 10, 3, 3, nil)
	f.Recompute(math.Vec3{}, 1, 1)
	inv := float32(1 / gomath.Sqrt2)
	for i, v := range f.Vertices {
		n := v.Normal
		if absf(n[0]+inv) > 1e-5 || absf(n[1]) > 1e-5 || absf(n[2]-inv) > 1e-5 {
			t.Fatalf("ramp normal[%d] = %v, want (-0.707, 0, 0.707)", i, n)
		}
	}
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

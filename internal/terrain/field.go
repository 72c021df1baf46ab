package terrain

import (
	gomath "math"

	"go.uber.org/zap"

	"github.com/Faultbox/terrain-backdrop/internal/noise"
	"github.com/Faultbox/terrain-backdrop/pkg/math"
)

// Field owns a rectangular grid of vertices spanning a fixed physical extent
// and re-samples its heights from a noise source.
type Field struct {
	width, depth float32
	segX, segY   int

	Vertices []Vertex
	Indices  []uint32

	src   noise.Source
	dirty Dirty
	log   *zap.Logger
}

// NewField creates a field of width x depth world units divided into
// segX x segY cells. A nil logger disables logging.
func NewField(src noise.Source, width, depth float32, segX, segY int, log *zap.Logger) *Field {
	if log == nil {
		log = zap.NewNop()
	}
	f := &Field{
		width: width,
		depth: depth,
		src:   src,
		log:   log,
	}
	f.Rebuild(segX, segY)
	return f
}

// Segments returns the current segment counts.
func (f *Field) Segments() (segX, segY int) {
	return f.segX, f.segY
}

// Extent returns the physical size of the grid.
func (f *Field) Extent() (width, depth float32) {
	return f.width, f.depth
}

// Dirty returns the pending upload flags.
func (f *Field) Dirty() Dirty {
	return f.dirty
}

// ClearDirty is called by the renderer after uploading.
func (f *Field) ClearDirty() {
	f.dirty = 0
}

// Rebuild discards the grid and allocates a new one with
// (segX+1)*(segY+1) vertices. Segment counts below 1 are raised to 1.
func (f *Field) Rebuild(segX, segY int) {
	segX = max(segX, 1)
	segY = max(segY, 1)

	cols := segX + 1
	rows := segY + 1
	cellW := f.width / float32(segX)
	cellD := f.depth / float32(segY)
	halfW := f.width / 2
	halfD := f.depth / 2

	// Row-major, first row at +depth/2 like a standard plane geometry.
	vertices := make([]Vertex, 0, cols*rows)
	for iy := range rows {
		y := halfD - float32(iy)*cellD
		for ix := range cols {
			x := float32(ix)*cellW - halfW
			vertices = append(vertices, Vertex{
				Position: [3]float32{x, y, 0},
				Normal:   [3]float32{0, 0, 1},
			})
		}
	}

	// Two triangles per cell.
	indices := make([]uint32, 0, segX*segY*6)
	for iy := range segY {
		for ix := range segX {
			a := uint32(ix + cols*iy)
			b := uint32(ix + cols*(iy+1))
			c := uint32(ix + 1 + cols*(iy+1))
			d := uint32(ix + 1 + cols*iy)
			indices = append(indices, a, b, d, b, c, d)
		}
	}

	f.segX, f.segY = segX, segY
	f.Vertices = vertices
	f.Indices = indices
	f.dirty |= DirtyPositions | DirtyIndices

	f.log.Debug("terrain grid rebuilt",
		zap.Int("segmentsX", segX),
		zap.Int("segmentsY", segY),
		zap.Int("vertices", len(vertices)),
	)
}

// Recompute sets every vertex height to
// amplitude * noise((offset.X+x)/smoothing, (offset.Z+y)/smoothing),
// then refreshes normals and marks the positions dirty. It must run every
// frame because the offset keeps moving.
//
// Amplitude is clamped to >= 0 and smoothing to >= MinSmoothing.
func (f *Field) Recompute(offset math.Vec3, amplitude, smoothing float32) {
	amp := float64(max(amplitude, 0))
	s := float64(smoothing)
	if !(s >= MinSmoothing) { // also catches NaN
		s = MinSmoothing
	}
	ox := float64(offset.X)
	oz := float64(offset.Z)

	for i := range f.Vertices {
		p := &f.Vertices[i].Position
		h := amp * f.src.Noise((ox+float64(p[0]))/s, (oz+float64(p[1]))/s)
		if gomath.IsNaN(h) || gomath.IsInf(h, 0) {
			h = 0
		}
		p[2] = float32(h)
	}

	f.ComputeNormals()
	f.dirty |= DirtyPositions
}

// ComputeNormals recomputes smooth per-vertex normals by summing the
// area-weighted normals of adjacent triangles.
func (f *Field) ComputeNormals() {
	for i := range f.Vertices {
		f.Vertices[i].Normal = [3]float32{}
	}

	for t := 0; t+2 < len(f.Indices); t += 3 {
		ia, ib, ic := f.Indices[t], f.Indices[t+1], f.Indices[t+2]
		a := f.Vertices[ia].Position
		b := f.Vertices[ib].Position
		c := f.Vertices[ic].Position

		n := cross(sub(c, b), sub(a, b))
		addTo(&f.Vertices[ia].Normal, n)
		addTo(&f.Vertices[ib].Normal, n)
		addTo(&f.Vertices[ic].Normal, n)
	}

	for i := range f.Vertices {
		f.Vertices[i].Normal = normalize(f.Vertices[i].Normal)
	}
}

// Heights returns a copy of the current vertex heights in grid order.
func (f *Field) Heights() []float32 {
	out := make([]float32, len(f.Vertices))
	for i := range f.Vertices {
		out[i] = f.Vertices[i].Position[2]
	}
	return out
}

// Helper functions

func sub(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func cross(a, b [3]float32) [3]float32 {
	return [3]float32{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func addTo(dst *[3]float32, v [3]float32) {
	dst[0] += v[0]
	dst[1] += v[1]
	dst[2] += v[2]
}

func normalize(v [3]float32) [3]float32 {
	l := float32(gomath.Sqrt(float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])))
	if l < 1e-8 {
		return [3]float32{0, 0, 1}
	}
	return [3]float32{v[0] / l, v[1] / l, v[2] / l}
}

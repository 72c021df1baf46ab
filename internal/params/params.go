// Package params holds the live-tunable backdrop parameters and notifies
// subscribers when one of them changes.
package params

import (
	gomath "math"

	"go.uber.org/zap"

	"github.com/Faultbox/terrain-backdrop/pkg/math"
)

// Ranges exposed by the panel. Setters clamp to them.
const (
	PeakMax     = 100
	SmoothMax   = 100
	SpeedMax    = 100
	SegmentsMin = 1
	SegmentsMax = 250
	ScaleMax    = 3
)

// Field identifies which parameter changed.
type Field int

const (
	FieldPeak Field = iota
	FieldSmooth
	FieldSpeed
	FieldSegments
	FieldColor
	FieldScale
	FieldWireframe
)

var fieldNames = [...]string{"peak", "smooth", "speed", "segments", "color", "scale", "wireframe"}

func (f Field) String() string {
	if int(f) < len(fieldNames) {
		return fieldNames[f]
	}
	return "unknown"
}

// Color is a 0xRRGGBB surface color.
type Color uint32

// RGB returns the color as normalized float components.
func (c Color) RGB() [3]float32 {
	return [3]float32{
		float32((c>>16)&0xFF) / 255,
		float32((c>>8)&0xFF) / 255,
		float32(c&0xFF) / 255,
	}
}

// ColorFromRGB builds a Color from normalized components, clamping each to [0, 1].
func ColorFromRGB(rgb [3]float32) Color {
	var c Color
	for _, v := range rgb {
		c = c<<8 | Color(gomath.Round(float64(clampf(v, 0, 1)*255)))
	}
	return c
}

// Tuning is a snapshot of every parameter.
type Tuning struct {
	Peak      float32 // height amplitude
	Smooth    float32 // noise sampling divisor
	Speed     float32 // travel speed, world units per second
	SegmentsX int
	SegmentsY int
	Color     Color
	Scale     math.Vec3 // mesh scale (width, height, length)
	Wireframe bool
}

// DefaultTuning returns the starting values.
func DefaultTuning() Tuning {
	return Tuning{
		Peak:      15,
		Smooth:    50,
		Speed:     10,
		SegmentsX: 80,
		SegmentsY: 80,
		Color:     0xFF866C,
		Scale:     math.Vec3{X: 1, Y: 1, Z: 1},
	}
}

// Change is delivered to subscribers after a parameter was updated.
type Change struct {
	Field  Field
	Tuning Tuning // values after the change
}

// Listener receives change events.
type Listener func(Change)

// Params is the single source of truth for tuning values. It is used from
// one goroutine; a change is visible to the next read.
type Params struct {
	t         Tuning
	listeners map[int]Listener
	order     []int
	nextID    int
	log       *zap.Logger
}

// New creates Params with t clamped to the declared ranges.
func New(t Tuning, log *zap.Logger) *Params {
	if log == nil {
		log = zap.NewNop()
	}
	p := &Params{
		listeners: make(map[int]Listener),
		log:       log,
	}
	p.t = Tuning{
		Peak:      clampf(t.Peak, 0, PeakMax),
		Smooth:    clampf(t.Smooth, 0, SmoothMax),
		Speed:     clampf(t.Speed, 0, SpeedMax),
		SegmentsX: clampi(t.SegmentsX, SegmentsMin, SegmentsMax),
		SegmentsY: clampi(t.SegmentsY, SegmentsMin, SegmentsMax),
		Color:     t.Color & 0xFFFFFF,
		Scale:     clampScale(t.Scale),
		Wireframe: t.Wireframe,
	}
	return p
}

// Subscribe registers l and returns a function that removes it.
// Listeners run in subscription order.
func (p *Params) Subscribe(l Listener) (unsubscribe func()) {
	id := p.nextID
	p.nextID++
	p.listeners[id] = l
	p.order = append(p.order, id)

	return func() {
		delete(p.listeners, id)
		for i, v := range p.order {
			if v == id {
				p.order = append(p.order[:i], p.order[i+1:]...)
				break
			}
		}
	}
}

// Tuning returns a snapshot of all values.
func (p *Params) Tuning() Tuning { return p.t }

// Peak returns the amplitude.
func (p *Params) Peak() float32 { return p.t.Peak }

// Smooth returns the smoothing divisor.
func (p *Params) Smooth() float32 { return p.t.Smooth }

// Speed returns the travel speed.
func (p *Params) Speed() float32 { return p.t.Speed }

// Segments returns the grid segment counts.
func (p *Params) Segments() (x, y int) { return p.t.SegmentsX, p.t.SegmentsY }

// SetPeak sets the amplitude, clamped to [0, PeakMax].
func (p *Params) SetPeak(v float32) {
	v = clampf(v, 0, PeakMax)
	if v == p.t.Peak {
		return
	}
	p.t.Peak = v
	p.emit(FieldPeak)
}

// SetSmooth sets the smoothing divisor, clamped to [0, SmoothMax]. Zero is
// allowed here; the terrain guards the division.
func (p *Params) SetSmooth(v float32) {
	v = clampf(v, 0, SmoothMax)
	if v == p.t.Smooth {
		return
	}
	p.t.Smooth = v
	p.emit(FieldSmooth)
}

// SetSpeed sets the travel speed, clamped to [0, SpeedMax].
func (p *Params) SetSpeed(v float32) {
	v = clampf(v, 0, SpeedMax)
	if v == p.t.Speed {
		return
	}
	p.t.Speed = v
	p.emit(FieldSpeed)
}

// SetSegments sets both segment counts, clamped to [SegmentsMin, SegmentsMax].
func (p *Params) SetSegments(x, y int) {
	x = clampi(x, SegmentsMin, SegmentsMax)
	y = clampi(y, SegmentsMin, SegmentsMax)
	if x == p.t.SegmentsX && y == p.t.SegmentsY {
		return
	}
	p.t.SegmentsX, p.t.SegmentsY = x, y
	p.emit(FieldSegments)
}

// SetColor sets the surface color.
func (p *Params) SetColor(c Color) {
	c &= 0xFFFFFF
	if c == p.t.Color {
		return
	}
	p.t.Color = c
	p.emit(FieldColor)
}

// SetScale sets the mesh scale, each axis clamped to [0, ScaleMax].
func (p *Params) SetScale(s math.Vec3) {
	s = clampScale(s)
	if s == p.t.Scale {
		return
	}
	p.t.Scale = s
	p.emit(FieldScale)
}

// SetWireframe toggles wireframe rendering.
func (p *Params) SetWireframe(on bool) {
	if on == p.t.Wireframe {
		return
	}
	p.t.Wireframe = on
	p.emit(FieldWireframe)
}

func (p *Params) emit(f Field) {
	p.log.Debug("parameter changed", zap.Stringer("field", f))

	ev := Change{Field: f, Tuning: p.t}
	// Copy so listeners may unsubscribe while being notified.
	ids := append([]int(nil), p.order...)
	for _, id := range ids {
		if l, ok := p.listeners[id]; ok {
			l(ev)
		}
	}
}

func clampScale(s math.Vec3) math.Vec3 {
	return math.Vec3{
		X: clampf(s.X, 0, ScaleMax),
		Y: clampf(s.Y, 0, ScaleMax),
		Z: clampf(s.Z, 0, ScaleMax),
	}
}

// clampf maps NaN to lo.
func clampf(v, lo, hi float32) float32 {
	if !(v >= lo) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampi(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

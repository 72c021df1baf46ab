// Package noise provides the deterministic 2D noise sources that displace
// the terrain.
package noise

import (
	"fmt"
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Kind names a noise generator.
type Kind string

const (
	KindPerlin  Kind = "perlin"
	KindSimplex Kind = "simplex"
)

// Source is a pure, continuous 2D noise function with values in about [-1, 1].
// The same inputs always produce the same output for a given seed.
type Source interface {
	Noise(x, y float64) float64
}

// Func adapts a plain function to Source.
type Func func(x, y float64) float64

// Noise implements Source.
func (f Func) Noise(x, y float64) float64 {
	return f(x, y)
}

// New creates a seeded noise source of the given kind.
func New(kind Kind, seed int64, octaves int) (Source, error) {
	if octaves < 1 {
		octaves = 1
	}
	switch kind {
	case KindPerlin:
		return NewPerlin(seed, octaves), nil
	case KindSimplex:
		return NewSimplex(seed, octaves), nil
	default:
		return nil, fmt.Errorf("unknown noise kind %q", kind)
	}
}

// Perlin is gradient noise from github.com/aquilax/go-perlin.
type Perlin struct {
	p *perlin.Perlin
}

// NewPerlin creates a Perlin source. alpha and beta follow the usual
// halving-amplitude, doubling-frequency octave layout.
func NewPerlin(seed int64, octaves int) *Perlin {
	return &Perlin{p: perlin.NewPerlin(2, 2, int32(octaves), seed)}
}

// Noise implements Source.
func (n *Perlin) Noise(x, y float64) float64 {
	return n.p.Noise2D(x, y)
}

// Simplex is OpenSimplex noise summed over octaves and normalized back to [-1, 1].
type Simplex struct {
	os         opensimplex.Noise
	amplitudes []float64
	ampSum     float64
}

// NewSimplex creates a Simplex source with persistence 0.5 between octaves.
func NewSimplex(seed int64, octaves int) *Simplex {
	s := &Simplex{
		os:         opensimplex.New(seed),
		amplitudes: make([]float64, octaves),
	}
	for i := range s.amplitudes {
		s.amplitudes[i] = math.Pow(0.5, float64(i))
		s.ampSum += s.amplitudes[i]
	}
	return s
}

// Noise implements Source.
func (n *Simplex) Noise(x, y float64) float64 {
	var sum float64
	for i, amp := range n.amplitudes {
		freq := float64(int(1) << i)
		sum += amp * n.os.Eval2(x*freq, y*freq)
	}
	return sum / n.ampSum
}

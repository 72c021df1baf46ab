// Package terrain maintains the procedurally displaced height field that
// forms the backdrop surface.
package terrain

// MinSmoothing is the smallest divisor used when sampling noise.
const MinSmoothing = 1e-6

// Vertex is one height field vertex as uploaded to the GPU.
// Position X/Y are fixed grid coordinates in mesh-local space; Z is the
// displaced height.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
}

// VertexStride is the size of Vertex in bytes.
const VertexStride = 6 * 4

// Dirty flags tell the renderer which buffers need a re-upload.
type Dirty uint8

const (
	DirtyPositions Dirty = 1 << iota // positions and normals changed
	DirtyIndices                     // grid was rebuilt; index buffer changed
)

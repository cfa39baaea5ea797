package scene

import "github.com/go-gl/mathgl/mgl32"

// Geometry is interleaved vertex data plus an optional index list.
// Vertices are laid out as position (3 floats) followed by texcoord (2 floats).
type Geometry struct {
	Name     string
	Vertices []float32
	Indices  []uint32
}

// GeometryStride is the number of floats per vertex in a Geometry.
const GeometryStride = 5

// VertexCount returns the number of vertices described by Vertices.
func (g *Geometry) VertexCount() int {
	return len(g.Vertices) / GeometryStride
}

// CubeGeometry returns a unit cube centred on the origin as 36 non-indexed
// vertices (two triangles per face) with per-face texture coordinates.
func CubeGeometry() *Geometry {
	vertices := []float32{
		// positions        // texcoords
		-0.5, -0.5, -0.5, 0.0, 0.0,
		0.5, -0.5, -0.5, 1.0, 0.0,
		0.5, 0.5, -0.5, 1.0, 1.0,
		0.5, 0.5, -0.5, 1.0, 1.0,
		-0.5, 0.5, -0.5, 0.0, 1.0,
		-0.5, -0.5, -0.5, 0.0, 0.0,

		-0.5, -0.5, 0.5, 0.0, 0.0,
		0.5, -0.5, 0.5, 1.0, 0.0,
		0.5, 0.5, 0.5, 1.0, 1.0,
		0.5, 0.5, 0.5, 1.0, 1.0,
		-0.5, 0.5, 0.5, 0.0, 1.0,
		-0.5, -0.5, 0.5, 0.0, 0.0,

		-0.5, 0.5, 0.5, 1.0, 0.0,
		-0.5, 0.5, -0.5, 1.0, 1.0,
		-0.5, -0.5, -0.5, 0.0, 1.0,
		-0.5, -0.5, -0.5, 0.0, 1.0,
		-0.5, -0.5, 0.5, 0.0, 0.0,
		-0.5, 0.5, 0.5, 1.0, 0.0,

		0.5, 0.5, 0.5, 1.0, 0.0,
		0.5, 0.5, -0.5, 1.0, 1.0,
		0.5, -0.5, -0.5, 0.0, 1.0,
		0.5, -0.5, -0.5, 0.0, 1.0,
		0.5, -0.5, 0.5, 0.0, 0.0,
		0.5, 0.5, 0.5, 1.0, 0.0,

		-0.5, -0.5, -0.5, 0.0, 1.0,
		0.5, -0.5, -0.5, 1.0, 1.0,
		0.5, -0.5, 0.5, 1.0, 0.0,
		0.5, -0.5, 0.5, 1.0, 0.0,
		-0.5, -0.5, 0.5, 0.0, 0.0,
		-0.5, -0.5, -0.5, 0.0, 1.0,

		-0.5, 0.5, -0.5, 0.0, 1.0,
		0.5, 0.5, -0.5, 1.0, 1.0,
		0.5, 0.5, 0.5, 1.0, 0.0,
		0.5, 0.5, 0.5, 1.0, 0.0,
		-0.5, 0.5, 0.5, 0.0, 0.0,
		-0.5, 0.5, -0.5, 0.0, 1.0,
	}
	return &Geometry{Name: "Cube", Vertices: vertices}
}

// QuadGeometry returns an indexed unit quad in the XY plane.
func QuadGeometry() *Geometry {
	return &Geometry{
		Name: "Quad",
		Vertices: []float32{
			0.5, 0.5, 0.0, 1.0, 1.0,
			0.5, -0.5, 0.0, 1.0, 0.0,
			-0.5, -0.5, 0.0, 0.0, 0.0,
			-0.5, 0.5, 0.0, 0.0, 1.0,
		},
		Indices: []uint32{0, 1, 3, 1, 2, 3},
	}
}

// CubePositions are the world-space centres of the demo cubes.
var CubePositions = []mgl32.Vec3{
	{0.0, 0.0, 0.0},
	{2.0, 5.0, -15.0},
	{-1.5, -2.2, -2.5},
	{-3.8, -2.0, -12.3},
	{2.4, -0.4, -3.5},
	{-1.7, 3.0, -7.5},
	{1.3, -2.0, -2.5},
	{1.5, 2.0, -2.5},
	{1.5, 0.2, -1.5},
	{-1.3, 1.0, -1.5},
}

// CubeModelMatrix places cube i at CubePositions[i], tilted 20 degrees per
// index around a fixed axis and spun by angle radians.
func CubeModelMatrix(i int, angle float32) mgl32.Mat4 {
	p := CubePositions[i%len(CubePositions)]
	axis := mgl32.Vec3{1.0, 0.3, 0.5}.Normalize()
	tilt := mgl32.DegToRad(20 * float32(i))
	return mgl32.Translate3D(p[0], p[1], p[2]).Mul4(mgl32.HomogRotate3D(tilt+angle, axis))
}

// LampModelMatrix places a small cube at pos to mark the light source.
func LampModelMatrix(pos mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(pos[0], pos[1], pos[2]).Mul4(mgl32.Scale3D(0.2, 0.2, 0.2))
}

// Package geom builds the annular-wedge polygon meshes used by the ring game
// for both rendering and collision outlines. Meshes are plain triangle lists;
// the same data drives the screen rasterizer and the physics sensors.
package geom

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidGeometry is returned when wedge parameters would produce
// degenerate (zero-area) geometry. Fatal at startup.
var ErrInvalidGeometry = errors.New("geom: invalid geometry")

// Vec2 is a 2D point or vector in world units.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Perp returns v rotated 90 degrees counterclockwise.
func (v Vec2) Perp() Vec2 {
	return Vec2{-v.Y, v.X}
}

// Rotated returns v rotated by angle radians about the origin.
func (v Vec2) Rotated(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Len returns the euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Triangle is a single triangle given by three corners.
type Triangle [3]Vec2

// Mesh is a triangle-list polygon mesh. Indices refer to Vertices in groups
// of three; every index must be < len(Vertices).
type Mesh struct {
	Vertices []Vec2
	Indices  []uint32
}

// TriangleCount returns the number of triangles in the mesh.
func (m Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Triangle returns the i-th triangle of the mesh.
func (m Mesh) Triangle(i int) Triangle {
	return Triangle{
		m.Vertices[m.Indices[3*i]],
		m.Vertices[m.Indices[3*i+1]],
		m.Vertices[m.Indices[3*i+2]],
	}
}

// Rotated returns a copy of the mesh with every vertex rotated by angle
// radians about the origin. Indices are shared, not copied.
func (m Mesh) Rotated(angle float64) Mesh {
	out := Mesh{
		Vertices: make([]Vec2, len(m.Vertices)),
		Indices:  m.Indices,
	}
	for i, v := range m.Vertices {
		out.Vertices[i] = v.Rotated(angle)
	}
	return out
}

// Contains reports whether p lies inside any triangle of the mesh.
func (m Mesh) Contains(p Vec2) bool {
	for i := 0; i < m.TriangleCount(); i++ {
		if m.Triangle(i).Contains(p) {
			return true
		}
	}
	return false
}

// AnnularWedge builds a wedge of the annulus [rInner, rOuter] spanning
// [-halfAngle, +halfAngle], measured from the positive Y axis. The wedge is a
// fan of 2*(resolution+1) vertices alternating inner/outer radius points
// swept linearly across the angular span, stitched into resolution quads of
// two triangles each.
//
// Vertex layout: even indices sit on the inner radius, odd on the outer.
// For each quad i (stepping the even index by 2) the triangles are
// (i, i+2, i+1) and (i+1, i+2, i+3).
func AnnularWedge(rInner, rOuter, halfAngle float64, resolution int) (Mesh, error) {
	if resolution < 1 {
		return Mesh{}, fmt.Errorf("%w: resolution %d, must be >= 1", ErrInvalidGeometry, resolution)
	}
	if halfAngle <= 0 {
		return Mesh{}, fmt.Errorf("%w: angular half-width %v, must be positive", ErrInvalidGeometry, halfAngle)
	}
	if rInner < 0 || rOuter <= rInner {
		return Mesh{}, fmt.Errorf("%w: radius band [%v, %v]", ErrInvalidGeometry, rInner, rOuter)
	}

	startAngle := -halfAngle
	increment := 2 * halfAngle / float64(resolution)

	vertices := make([]Vec2, 0, 2*(resolution+1))
	for i := 0; i <= resolution; i++ {
		angle := startAngle + float64(i)*increment
		sin, cos := math.Sincos(angle)
		vertices = append(vertices,
			Vec2{X: sin * rInner, Y: cos * rInner},
			Vec2{X: sin * rOuter, Y: cos * rOuter},
		)
	}

	indices := make([]uint32, 0, 6*resolution)
	for i := 0; i < 2*resolution-1; i += 2 {
		u := uint32(i)
		indices = append(indices, u, u+2, u+1)
		indices = append(indices, u+1, u+2, u+3)
	}

	return Mesh{Vertices: vertices, Indices: indices}, nil
}

package geom

// Triangle intersection via the separating axis theorem. Two convex shapes
// are disjoint iff some edge normal of either shape separates their vertex
// projections. Touching shapes (zero-width overlap) count as intersecting.

// Contains reports whether p lies inside the triangle (borders included).
// Works for either winding order by checking that p is on the same side of
// all three edges.
func (t Triangle) Contains(p Vec2) bool {
	d1 := cross(p.Sub(t[0]), t[1].Sub(t[0]))
	d2 := cross(p.Sub(t[1]), t[2].Sub(t[1]))
	d3 := cross(p.Sub(t[2]), t[0].Sub(t[2]))

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// Intersects reports whether two triangles overlap.
func (t Triangle) Intersects(o Triangle) bool {
	for i := 0; i < 3; i++ {
		axis := t[(i+1)%3].Sub(t[i]).Perp()
		if separates(axis, t, o) {
			return false
		}
	}
	for i := 0; i < 3; i++ {
		axis := o[(i+1)%3].Sub(o[i]).Perp()
		if separates(axis, t, o) {
			return false
		}
	}
	return true
}

// MeshesIntersect reports whether any triangle of a overlaps any triangle
// of b. Pairwise SAT over small fans; both meshes here are at most a few
// triangles, so the quadratic pairing is not worth optimizing.
func MeshesIntersect(a, b Mesh) bool {
	for i := 0; i < a.TriangleCount(); i++ {
		ta := a.Triangle(i)
		for j := 0; j < b.TriangleCount(); j++ {
			if ta.Intersects(b.Triangle(j)) {
				return true
			}
		}
	}
	return false
}

// separates reports whether axis separates the projections of a and b.
func separates(axis Vec2, a, b Triangle) bool {
	aMin, aMax := project(axis, a)
	bMin, bMax := project(axis, b)
	return aMax < bMin || bMax < aMin
}

// project returns the min and max of the triangle's vertices projected
// onto axis.
func project(axis Vec2, t Triangle) (min, max float64) {
	min = axis.Dot(t[0])
	max = min
	for _, v := range t[1:] {
		d := axis.Dot(v)
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}

// cross returns the z-component of the 2D cross product a x b.
func cross(a, b Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

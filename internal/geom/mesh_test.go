package geom

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestAnnularWedgeCounts(t *testing.T) {
	tests := []struct {
		name       string
		resolution int
		halfAngle  float64
	}{
		{"needle quad", 1, math.Pi / 64},
		{"target wedge", 5, 25 * math.Pi / 180},
		{"coarse", 2, 0.5},
		{"fine", 32, 1.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := AnnularWedge(43, 52, tc.halfAngle, tc.resolution)
			if err != nil {
				t.Fatalf("AnnularWedge() error = %v", err)
			}

			wantVerts := 2 * (tc.resolution + 1)
			if len(m.Vertices) != wantVerts {
				t.Errorf("vertex count = %d, expected %d", len(m.Vertices), wantVerts)
			}

			wantTris := 2 * tc.resolution
			if m.TriangleCount() != wantTris {
				t.Errorf("triangle count = %d, expected %d", m.TriangleCount(), wantTris)
			}

			for i, idx := range m.Indices {
				if int(idx) >= wantVerts {
					t.Errorf("index %d at position %d out of range [0,%d)", idx, i, wantVerts)
				}
			}
		})
	}
}

func TestAnnularWedgeTargetGeometry(t *testing.T) {
	// The standard target zone: resolution 5 spanning +-25 degrees.
	m, err := AnnularWedge(43, 52, 25*math.Pi/180, 5)
	if err != nil {
		t.Fatalf("AnnularWedge() error = %v", err)
	}

	if len(m.Vertices) != 12 {
		t.Errorf("vertex count = %d, expected 12", len(m.Vertices))
	}
	if m.TriangleCount() != 10 {
		t.Errorf("triangle count = %d, expected 10", m.TriangleCount())
	}
	for _, idx := range m.Indices {
		if idx > 11 {
			t.Errorf("index %d out of range [0,11]", idx)
		}
	}
}

func TestAnnularWedgeVertexLayout(t *testing.T) {
	rInner, rOuter := 40.0, 55.0
	halfAngle := math.Pi / 8
	m, err := AnnularWedge(rInner, rOuter, halfAngle, 4)
	if err != nil {
		t.Fatalf("AnnularWedge() error = %v", err)
	}

	// Even vertices sit on the inner radius, odd on the outer.
	for i, v := range m.Vertices {
		want := rOuter
		if i%2 == 0 {
			want = rInner
		}
		if !almostEqual(v.Len(), want) {
			t.Errorf("vertex %d radius = %v, expected %v", i, v.Len(), want)
		}
	}

	// The sweep starts at -halfAngle from the +Y axis and ends at +halfAngle.
	first := m.Vertices[0]
	if !almostEqual(first.X, math.Sin(-halfAngle)*rInner) || !almostEqual(first.Y, math.Cos(-halfAngle)*rInner) {
		t.Errorf("first vertex = %+v, expected start of sweep at -halfAngle", first)
	}
	last := m.Vertices[len(m.Vertices)-1]
	if !almostEqual(last.X, math.Sin(halfAngle)*rOuter) || !almostEqual(last.Y, math.Cos(halfAngle)*rOuter) {
		t.Errorf("last vertex = %+v, expected end of sweep at +halfAngle", last)
	}
}

func TestAnnularWedgeInvalid(t *testing.T) {
	tests := []struct {
		name           string
		rInner, rOuter float64
		halfAngle      float64
		resolution     int
	}{
		{"zero resolution", 43, 52, 0.5, 0},
		{"negative resolution", 43, 52, 0.5, -3},
		{"zero span", 43, 52, 0, 5},
		{"negative span", 43, 52, -0.1, 5},
		{"inverted radii", 52, 43, 0.5, 5},
		{"equal radii", 43, 43, 0.5, 5},
		{"negative inner radius", -1, 52, 0.5, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := AnnularWedge(tc.rInner, tc.rOuter, tc.halfAngle, tc.resolution)
			if !errors.Is(err, ErrInvalidGeometry) {
				t.Errorf("AnnularWedge() error = %v, expected ErrInvalidGeometry", err)
			}
		})
	}
}

func TestMeshRotated(t *testing.T) {
	m, err := AnnularWedge(40, 55, math.Pi/64, 1)
	if err != nil {
		t.Fatalf("AnnularWedge() error = %v", err)
	}

	rotated := m.Rotated(math.Pi / 2)

	if len(rotated.Vertices) != len(m.Vertices) {
		t.Fatalf("rotated vertex count = %d, expected %d", len(rotated.Vertices), len(m.Vertices))
	}

	// Rotation preserves radius and triangle connectivity.
	for i := range m.Vertices {
		if !almostEqual(rotated.Vertices[i].Len(), m.Vertices[i].Len()) {
			t.Errorf("vertex %d radius changed: %v -> %v", i, m.Vertices[i].Len(), rotated.Vertices[i].Len())
		}
	}
	for i := range m.Indices {
		if rotated.Indices[i] != m.Indices[i] {
			t.Errorf("index %d changed by rotation", i)
		}
	}

	// A quarter turn counterclockwise moves the +Y apex to -X.
	apex := Vec2{0, 1}.Rotated(math.Pi / 2)
	if !almostEqual(apex.X, -1) || !almostEqual(apex.Y, 0) {
		t.Errorf("Rotated(pi/2) of (0,1) = %+v, expected (-1,0)", apex)
	}
}

func TestMeshContains(t *testing.T) {
	m, err := AnnularWedge(43, 52, 25*math.Pi/180, 5)
	if err != nil {
		t.Fatalf("AnnularWedge() error = %v", err)
	}

	tests := []struct {
		name     string
		p        Vec2
		expected bool
	}{
		{"center of wedge", Vec2{0, 47.5}, true},
		{"inside near inner edge", Vec2{0, 43.5}, true},
		{"below inner radius", Vec2{0, 40}, false},
		{"above outer radius", Vec2{0, 54}, false},
		{"opposite side of ring", Vec2{0, -47.5}, false},
		{"outside angular span", Vec2{47.5, 0}, false},
		{"origin", Vec2{0, 0}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := m.Contains(tc.p); got != tc.expected {
				t.Errorf("Contains(%+v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

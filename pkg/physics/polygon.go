// pkg/physics/polygon.go
package physics

import "math"

// Polygon is an immutable, ordered list of vertices. The vertex order is the
// winding order used for drawing and is preserved by every operation.
// The zero value is an empty polygon.
type Polygon struct {
	vertices []Vector2D
}

// NewPolygon creates a polygon from the given vertices. The slice is copied.
func NewPolygon(vertices ...Vector2D) Polygon {
	v := make([]Vector2D, len(vertices))
	copy(v, vertices)
	return Polygon{vertices: v}
}

// Vertices returns a copy of the polygon's vertices in construction order.
func (p Polygon) Vertices() []Vector2D {
	v := make([]Vector2D, len(p.vertices))
	copy(v, p.vertices)
	return v
}

// Len returns the number of vertices
func (p Polygon) Len() int {
	return len(p.vertices)
}

// Vertex returns the i-th vertex. It panics if i is out of range.
func (p Polygon) Vertex(i int) Vector2D {
	return p.vertices[i]
}

// Transform rotates every vertex about the local origin by rotation (radians)
// and then translates it, returning a new polygon in the target frame.
func (p Polygon) Transform(rotation float64, translation Vector2D) Polygon {
	out := make([]Vector2D, len(p.vertices))
	for i, v := range p.vertices {
		if rotation != 0 {
			v = v.Rotate(rotation)
		}
		out[i] = v.Add(translation)
	}
	return Polygon{vertices: out}
}

// Scale multiplies every vertex by factor
func (p Polygon) Scale(factor float64) Polygon {
	out := make([]Vector2D, len(p.vertices))
	for i, v := range p.vertices {
		out[i] = v.Scale(factor)
	}
	return Polygon{vertices: out}
}

// Centroid returns the mean of the vertices
func (p Polygon) Centroid() Vector2D {
	if len(p.vertices) == 0 {
		return Vector2D{}
	}
	var sum Vector2D
	for _, v := range p.vertices {
		sum = sum.Add(v)
	}
	return sum.Scale(1 / float64(len(p.vertices)))
}

// BoundingRadius returns the largest distance from the local origin to a vertex
func (p Polygon) BoundingRadius() float64 {
	var r float64
	for _, v := range p.vertices {
		r = math.Max(r, v.Length())
	}
	return r
}

// Contains reports whether point lies inside the polygon (even-odd rule).
func (p Polygon) Contains(point Vector2D) bool {
	inside := false
	n := len(p.vertices)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := p.vertices[i], p.vertices[j]
		if (a.Y > point.Y) != (b.Y > point.Y) &&
			point.X < (b.X-a.X)*(point.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}

package geometry

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Triangle is one face of the static level mesh.
// The normal follows the mesh winding: cross(E1, E2), normalized.
type Triangle struct {
	points [3]mgl64.Vec3
	normal mgl64.Vec3
}

// NewTriangle builds a triangle, rejecting zero-length edges and collinear points
func NewTriangle(p0, p1, p2 mgl64.Vec3) (Triangle, error) {
	t := Triangle{points: [3]mgl64.Vec3{p0, p1, p2}}

	for i := 0; i < 3; i++ {
		if t.Edge(i).Len() < Epsilon {
			return Triangle{}, fmt.Errorf("edge %d of %v: %w", i, t.points, ErrDegenerateTriangle)
		}
	}

	cross := t.Edge(1).Cross(t.Edge(2))
	if cross.Len() < Epsilon {
		return Triangle{}, fmt.Errorf("zero area %v: %w", t.points, ErrDegenerateTriangle)
	}
	t.normal = cross.Normalize()

	return t, nil
}

// Point returns vertex i (0, 1 or 2)
func (t Triangle) Point(i int) mgl64.Vec3 {
	return t.points[i]
}

// Edge returns edge i: P1-P0, P2-P1 or P0-P2
func (t Triangle) Edge(i int) mgl64.Vec3 {
	return t.points[(i+1)%3].Sub(t.points[i])
}

func (t Triangle) Normal() mgl64.Vec3 {
	return t.normal
}

func (t Triangle) Centroid() mgl64.Vec3 {
	return t.points[0].Add(t.points[1]).Add(t.points[2]).Mul(1.0 / 3.0)
}

func (t Triangle) AABB() AABB {
	return AABBFromBounds(t.points[0], t.points[1]).Union(AABBFromBounds(t.points[2], t.points[2]))
}

// Contains reports whether p, assumed to lie in the triangle's plane, is inside it.
// A point is inside when dot(cross(p - Vi, Ei), N) <= 0 for all three edges.
func (t Triangle) Contains(p mgl64.Vec3) bool {
	for i := 0; i < 3; i++ {
		if p.Sub(t.points[i]).Cross(t.Edge(i)).Dot(t.normal) > 0 {
			return false
		}
	}
	return true
}

// ClosestEdgePoint returns the point on the triangle's boundary closest to p
func (t Triangle) ClosestEdgePoint(p mgl64.Vec3) mgl64.Vec3 {
	var best mgl64.Vec3
	bestDist := -1.0

	for i := 0; i < 3; i++ {
		point := ClosestPointOnSegment(t.points[i], t.points[(i+1)%3], p)
		if dist := p.Sub(point).Len(); bestDist < 0 || dist < bestDist {
			bestDist = dist
			best = point
		}
	}

	return best
}

package collide

import (
	"math"

	"github.com/akmonengine/glide/geometry"
)

// SphereTriangle tests a sphere against the front side of a triangle.
//
// The sphere centre is projected onto the triangle plane. If the projection lies inside
// the triangle, the contact points along the plane normal. Otherwise, the three edges
// are checked and the contact points away from the nearest edge point, which handles
// spheres overlapping an edge or a vertex.
//
// A sphere whose centre is behind the plane never collides: bodies that already crossed
// a face pass through it. A body fast enough to cross a face within one tick tunnels.
func SphereTriangle(sphere geometry.Sphere, tri geometry.Triangle) (Contact, bool) {
	normal := tri.Normal()
	dist := sphere.Origin.Sub(tri.Point(0)).Dot(normal)

	// Epsilon absorbs rounding for centres lying on the plane
	if dist < -geometry.Epsilon {
		return Contact{}, false
	}
	if math.Abs(dist) > sphere.Radius {
		return Contact{}, false
	}

	point0 := sphere.Origin.Sub(normal.Mul(dist))
	inside := tri.Contains(point0)

	intersects := false
	if !inside {
		for i := 0; i < 3; i++ {
			point := geometry.ClosestPointOnSegment(tri.Point(i), tri.Point((i+1)%3), sphere.Origin)
			if sphere.Origin.Sub(point).Len() < sphere.Radius {
				intersects = true
				break
			}
		}
	}

	if !inside && !intersects {
		return Contact{}, false
	}

	intersection := sphere.Origin.Sub(point0)
	if !inside {
		intersection = sphere.Origin.Sub(tri.ClosestEdgePoint(sphere.Origin))
	}

	length := intersection.Len()
	if length < geometry.Epsilon {
		// centre lies on the surface
		return Contact{Normal: normal, Depth: sphere.Radius}, true
	}

	return Contact{
		Normal: intersection.Mul(1.0 / length),
		Depth:  sphere.Radius - length,
	}, true
}

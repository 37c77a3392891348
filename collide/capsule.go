package collide

import (
	"math"

	"github.com/akmonengine/glide/geometry"
	"github.com/go-gl/mathgl/mgl64"
)

// ParallelThreshold is the value of dot(Up, N) under which a capsule axis is
// considered parallel to a triangle plane
const ParallelThreshold = 0.001

// CapsuleTriangle tests an upright capsule against a triangle by picking the one
// sphere along the capsule axis that is closest to the triangle, then running
// SphereTriangle with it.
//
// The reference point on the triangle is the intersection of the capsule axis with the
// triangle plane, moved onto the nearest edge when it falls outside. When the axis is
// parallel to the plane (walls), the first vertex is used. Clamping that point onto the
// axis segment between the end spheres gives the sphere centre.
//
// This is one sphere per triangle, not a swept test. A capsule moving fast relative
// to a triangle edge can miss it.
func CapsuleTriangle(capsule geometry.Capsule, tri geometry.Triangle) (Contact, bool) {
	normal := tri.Normal()
	cosine := geometry.Up.Dot(normal)

	var reference mgl64.Vec3
	if cosine < ParallelThreshold {
		reference = tri.Point(0)
	} else {
		t := normal.Dot(tri.Point(0).Sub(capsule.Base)) / math.Abs(cosine)
		linePlane := capsule.Base.Add(geometry.Up.Mul(t))

		if tri.Contains(linePlane) {
			reference = linePlane
		} else {
			reference = tri.ClosestEdgePoint(linePlane)
		}
	}

	center := geometry.ClosestPointOnSegment(capsule.BaseSphere().Origin, capsule.TopSphere().Origin, reference)

	return SphereTriangle(geometry.Sphere{Origin: center, Radius: capsule.Radius}, tri)
}

// Package collide implements the narrow-phase tests between the moving colliders of
// entities and the static triangles of a level.
//
// Every test answers with a Contact, the minimum translation vector of the overlap:
// moving the shape by Normal * Depth separates it from the triangle.
//
// Supported pairs:
//   - AABB vs AABB: AABBs
//   - Sphere vs Triangle: SphereTriangle
//   - Capsule vs Triangle: CapsuleTriangle (reduced to one sphere test)
//
// Triangle is the dispatch table for shape-vs-triangle tests. Its type parameter only
// admits spheres and capsules, so an unsupported pair such as an AABB against a triangle
// is rejected by the compiler instead of failing at run time.
package collide

import (
	"github.com/akmonengine/glide/geometry"
	"github.com/go-gl/mathgl/mgl64"
)

// Contact is the penetration of a shape into a triangle
type Contact struct {
	Normal mgl64.Vec3
	Depth  float64
}

// Collider is the set of shapes that can be tested against a triangle
type Collider interface {
	geometry.Sphere | geometry.Capsule
}

// Triangle tests any supported shape against a triangle
func Triangle[S Collider](shape S, tri geometry.Triangle) (Contact, bool) {
	switch s := any(shape).(type) {
	case geometry.Sphere:
		return SphereTriangle(s, tri)
	case geometry.Capsule:
		return CapsuleTriangle(s, tri)
	}

	return Contact{}, false
}

// AABBs reports whether two boxes strictly overlap
func AABBs(a, b geometry.AABB) bool {
	return a.Overlaps(b)
}

// Hit is a contact together with the index of the triangle that produced it
type Hit struct {
	Index int
	Contact
}

// FirstHit returns the first triangle in order that the shape overlaps
func FirstHit[S Collider](shape S, tris []geometry.Triangle) (Hit, bool) {
	for i, tri := range tris {
		if contact, ok := Triangle(shape, tri); ok {
			return Hit{Index: i, Contact: contact}, true
		}
	}

	return Hit{}, false
}

// AllHits tests the shape, unmoved, against every triangle.
// Unlike the integrator it does not resolve contacts between triangles.
func AllHits[S Collider](shape S, tris []geometry.Triangle) []Hit {
	var hits []Hit
	for i, tri := range tris {
		if contact, ok := Triangle(shape, tri); ok {
			hits = append(hits, Hit{Index: i, Contact: contact})
		}
	}

	return hits
}

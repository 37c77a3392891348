package geometry

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AABB represents an axis-aligned bounding box, stored as its min corner and its extents
type AABB struct {
	Position mgl64.Vec3
	Size     mgl64.Vec3
}

// NewAABB builds a box from its min corner and non-negative extents
func NewAABB(position, size mgl64.Vec3) (AABB, error) {
	if size.X() < 0 || size.Y() < 0 || size.Z() < 0 {
		return AABB{}, fmt.Errorf("aabb size %v: %w", size, ErrNegativeSize)
	}

	return AABB{Position: position, Size: size}, nil
}

// AABBFromBounds builds the box spanning two corners, in any order
func AABBFromBounds(a, b mgl64.Vec3) AABB {
	min := mgl64.Vec3{math.Min(a.X(), b.X()), math.Min(a.Y(), b.Y()), math.Min(a.Z(), b.Z())}
	max := mgl64.Vec3{math.Max(a.X(), b.X()), math.Max(a.Y(), b.Y()), math.Max(a.Z(), b.Z())}

	return AABB{Position: min, Size: max.Sub(min)}
}

func (a AABB) Kind() Kind { return KindAABB }

func (a AABB) AABB() AABB { return a }

func (AABB) solid() {}

func (a AABB) Min() mgl64.Vec3 {
	return a.Position
}

func (a AABB) Max() mgl64.Vec3 {
	return a.Position.Add(a.Size)
}

func (a AABB) Center() mgl64.Vec3 {
	return a.Position.Add(a.Size.Mul(0.5))
}

// ContainsPoint checks if a point is inside the AABB, bounds included
func (a AABB) ContainsPoint(point mgl64.Vec3) bool {
	max := a.Max()
	return point.X() >= a.Position.X() && point.X() <= max.X() &&
		point.Y() >= a.Position.Y() && point.Y() <= max.Y() &&
		point.Z() >= a.Position.Z() && point.Z() <= max.Z()
}

// Overlaps checks if two AABBs overlap on all three axes.
// Boxes that only touch do not overlap.
func (a AABB) Overlaps(other AABB) bool {
	aMax, bMax := a.Max(), other.Max()

	return a.Position.X() < bMax.X() && aMax.X() > other.Position.X() &&
		a.Position.Y() < bMax.Y() && aMax.Y() > other.Position.Y() &&
		a.Position.Z() < bMax.Z() && aMax.Z() > other.Position.Z()
}

// Union returns the smallest box containing both boxes
func (a AABB) Union(other AABB) AABB {
	aMax, bMax := a.Max(), other.Max()
	min := mgl64.Vec3{
		math.Min(a.Position.X(), other.Position.X()),
		math.Min(a.Position.Y(), other.Position.Y()),
		math.Min(a.Position.Z(), other.Position.Z()),
	}
	max := mgl64.Vec3{
		math.Max(aMax.X(), bMax.X()),
		math.Max(aMax.Y(), bMax.Y()),
		math.Max(aMax.Z(), bMax.Z()),
	}

	return AABB{Position: min, Size: max.Sub(min)}
}

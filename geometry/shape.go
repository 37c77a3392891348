// Package geometry holds the value types used by the collision code: triangles of the
// level mesh, axis-aligned boxes, spheres and upright capsules.
//
// Every type is a plain value. Constructors validate their input so that degenerate
// geometry is rejected when a level or an entity is created, never in the middle of a tick.
package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon is the length under which edges, segments and contact vectors are treated as zero
const Epsilon = 1e-9

var (
	ErrNegativeSize       = errors.New("negative size")
	ErrDegenerateTriangle = errors.New("degenerate triangle")
)

// Up is the fixed axis of capsules and the vertical axis of the world
var Up = mgl64.Vec3{0, 0, 1}

// Kind represents the type of collision shape
type Kind int

const (
	KindAABB Kind = iota
	KindSphere
	KindCapsule
)

func (k Kind) String() string {
	switch k {
	case KindAABB:
		return "aabb"
	case KindSphere:
		return "sphere"
	case KindCapsule:
		return "capsule"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Solid is the closed set of shapes: AABB, Sphere and Capsule.
// The unexported method keeps other packages from adding variants.
type Solid interface {
	Kind() Kind
	AABB() AABB
	solid()
}

// Sphere represents a spherical collision shape
type Sphere struct {
	Origin mgl64.Vec3
	Radius float64
}

func NewSphere(origin mgl64.Vec3, radius float64) (Sphere, error) {
	if radius < 0 {
		return Sphere{}, fmt.Errorf("sphere radius %v: %w", radius, ErrNegativeSize)
	}

	return Sphere{Origin: origin, Radius: radius}, nil
}

func (s Sphere) Kind() Kind { return KindSphere }

// AABB calculates the axis-aligned bounding box for the sphere
func (s Sphere) AABB() AABB {
	radiusVec := mgl64.Vec3{s.Radius, s.Radius, s.Radius}

	return AABB{
		Position: s.Origin.Sub(radiusVec),
		Size:     radiusVec.Mul(2),
	}
}

func (Sphere) solid() {}

// Capsule represents an upright capsule standing on Base.
// Radius never exceeds Height/2, so the two end spheres overlap at most on a point.
type Capsule struct {
	Base   mgl64.Vec3
	Radius float64
	Height float64
}

// NewCapsule rejects negative dimensions and clamps the radius to half the height
func NewCapsule(base mgl64.Vec3, radius, height float64) (Capsule, error) {
	if radius < 0 || height < 0 {
		return Capsule{}, fmt.Errorf("capsule radius %v height %v: %w", radius, height, ErrNegativeSize)
	}

	return Capsule{
		Base:   base,
		Radius: math.Min(radius, height/2.0),
		Height: height,
	}, nil
}

func (c Capsule) Kind() Kind { return KindCapsule }

func (c Capsule) Top() mgl64.Vec3 {
	return c.Base.Add(Up.Mul(c.Height))
}

// BaseSphere is the lower end sphere, centred Radius above Base
func (c Capsule) BaseSphere() Sphere {
	return Sphere{Origin: c.Base.Add(Up.Mul(c.Radius)), Radius: c.Radius}
}

// TopSphere is the upper end sphere, centred Radius below Top
func (c Capsule) TopSphere() Sphere {
	return Sphere{Origin: c.Top().Sub(Up.Mul(c.Radius)), Radius: c.Radius}
}

func (c Capsule) AABB() AABB {
	radiusVec := mgl64.Vec3{c.Radius, c.Radius, 0}

	return AABBFromBounds(c.Base.Sub(radiusVec), c.Top().Add(radiusVec))
}

func (c Capsule) Translate(offset mgl64.Vec3) Capsule {
	c.Base = c.Base.Add(offset)
	return c
}

func (Capsule) solid() {}

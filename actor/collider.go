package actor

import (
	"fmt"
	"math"

	"github.com/akmonengine/glide/collide"
	"github.com/akmonengine/glide/geometry"
	"github.com/go-gl/mathgl/mgl64"
)

// Collider is the collision shape of an entity kind, placed relative to the entity
// position. Only spheres and capsules can be colliders: they are the shapes the
// integrator knows how to test against level triangles.
type Collider interface {
	Kind() geometry.Kind
	// At returns the shape placed at position, for debug drawing
	At(position mgl64.Vec3) geometry.Solid
	// Intersect tests the shape placed at position against a level triangle
	Intersect(position mgl64.Vec3, tri geometry.Triangle) (collide.Contact, bool)
	validate() error
}

// SphereCollider is a sphere centred on the entity position
type SphereCollider struct {
	Radius float64
}

func (c SphereCollider) Kind() geometry.Kind { return geometry.KindSphere }

func (c SphereCollider) sphere(position mgl64.Vec3) geometry.Sphere {
	return geometry.Sphere{Origin: position, Radius: c.Radius}
}

func (c SphereCollider) At(position mgl64.Vec3) geometry.Solid {
	return c.sphere(position)
}

func (c SphereCollider) Intersect(position mgl64.Vec3, tri geometry.Triangle) (collide.Contact, bool) {
	return collide.Triangle(c.sphere(position), tri)
}

func (c SphereCollider) validate() error {
	_, err := geometry.NewSphere(mgl64.Vec3{}, c.Radius)
	return err
}

// CapsuleCollider is an upright capsule standing on the entity position
type CapsuleCollider struct {
	Radius float64
	Height float64
}

func (c CapsuleCollider) Kind() geometry.Kind { return geometry.KindCapsule }

func (c CapsuleCollider) capsule(position mgl64.Vec3) geometry.Capsule {
	return geometry.Capsule{
		Base:   position,
		Radius: math.Min(c.Radius, c.Height/2.0),
		Height: c.Height,
	}
}

func (c CapsuleCollider) At(position mgl64.Vec3) geometry.Solid {
	return c.capsule(position)
}

func (c CapsuleCollider) Intersect(position mgl64.Vec3, tri geometry.Triangle) (collide.Contact, bool) {
	return collide.Triangle(c.capsule(position), tri)
}

func (c CapsuleCollider) validate() error {
	if _, err := geometry.NewCapsule(mgl64.Vec3{}, c.Radius, c.Height); err != nil {
		return fmt.Errorf("capsule collider: %w", err)
	}
	return nil
}

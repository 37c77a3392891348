package geometry

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// =============================================================================
// Sphere Tests
// =============================================================================

func TestNewSphere(t *testing.T) {
	if _, err := NewSphere(mgl64.Vec3{}, -1); !errors.Is(err, ErrNegativeSize) {
		t.Errorf("negative radius: err = %v, want ErrNegativeSize", err)
	}

	s, err := NewSphere(mgl64.Vec3{1, 2, 3}, 0.5)
	if err != nil {
		t.Fatalf("NewSphere: %v", err)
	}

	a := s.AABB()
	if !vec3AlmostEqual(a.Min(), mgl64.Vec3{0.5, 1.5, 2.5}, 1e-12) {
		t.Errorf("AABB().Min() = %v", a.Min())
	}
	if !vec3AlmostEqual(a.Max(), mgl64.Vec3{1.5, 2.5, 3.5}, 1e-12) {
		t.Errorf("AABB().Max() = %v", a.Max())
	}
}

// =============================================================================
// Capsule Tests
// =============================================================================

func TestNewCapsule_Validation(t *testing.T) {
	tests := []struct {
		name   string
		radius float64
		height float64
	}{
		{"negative radius", -0.5, 1.8},
		{"negative height", 0.5, -1.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCapsule(mgl64.Vec3{}, tt.radius, tt.height)
			if !errors.Is(err, ErrNegativeSize) {
				t.Errorf("err = %v, want ErrNegativeSize", err)
			}
		})
	}
}

func TestNewCapsule_ClampsRadius(t *testing.T) {
	c, err := NewCapsule(mgl64.Vec3{}, 2, 1)
	if err != nil {
		t.Fatalf("NewCapsule: %v", err)
	}

	if c.Radius != 0.5 {
		t.Errorf("Radius = %v, want 0.5 (height/2)", c.Radius)
	}
	if !vec3AlmostEqual(c.BaseSphere().Origin, c.TopSphere().Origin, 1e-12) {
		t.Errorf("end spheres should meet at one point, got %v and %v", c.BaseSphere().Origin, c.TopSphere().Origin)
	}
}

func TestCapsule_Derived(t *testing.T) {
	c, err := NewCapsule(mgl64.Vec3{1, 2, 3}, 0.5, 1.8)
	if err != nil {
		t.Fatalf("NewCapsule: %v", err)
	}

	if !vec3AlmostEqual(c.Top(), mgl64.Vec3{1, 2, 4.8}, 1e-12) {
		t.Errorf("Top() = %v, want (1, 2, 4.8)", c.Top())
	}
	if !vec3AlmostEqual(c.BaseSphere().Origin, mgl64.Vec3{1, 2, 3.5}, 1e-12) {
		t.Errorf("BaseSphere().Origin = %v, want (1, 2, 3.5)", c.BaseSphere().Origin)
	}
	if !vec3AlmostEqual(c.TopSphere().Origin, mgl64.Vec3{1, 2, 4.3}, 1e-12) {
		t.Errorf("TopSphere().Origin = %v, want (1, 2, 4.3)", c.TopSphere().Origin)
	}
	if c.BaseSphere().Radius != 0.5 || c.TopSphere().Radius != 0.5 {
		t.Error("end spheres should share the capsule radius")
	}

	a := c.AABB()
	if !vec3AlmostEqual(a.Min(), mgl64.Vec3{0.5, 1.5, 3}, 1e-12) {
		t.Errorf("AABB().Min() = %v", a.Min())
	}
	if !vec3AlmostEqual(a.Max(), mgl64.Vec3{1.5, 2.5, 4.8}, 1e-12) {
		t.Errorf("AABB().Max() = %v", a.Max())
	}

	moved := c.Translate(mgl64.Vec3{0, 0, -3})
	if !vec3AlmostEqual(moved.Base, mgl64.Vec3{1, 2, 0}, 1e-12) {
		t.Errorf("Translate().Base = %v", moved.Base)
	}
	if c.Base != (mgl64.Vec3{1, 2, 3}) {
		t.Error("Translate should not modify the receiver")
	}
}

// =============================================================================
// Solid Variant Tests
// =============================================================================

func TestSolid_Kinds(t *testing.T) {
	tests := []struct {
		solid Solid
		want  Kind
		name  string
	}{
		{AABB{}, KindAABB, "aabb"},
		{Sphere{}, KindSphere, "sphere"},
		{Capsule{}, KindCapsule, "capsule"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.solid.Kind() != tt.want {
				t.Errorf("Kind() = %v, want %v", tt.solid.Kind(), tt.want)
			}
			if tt.solid.Kind().String() != tt.name {
				t.Errorf("String() = %q, want %q", tt.solid.Kind().String(), tt.name)
			}
		})
	}
}

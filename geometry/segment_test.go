package geometry

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func almostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func vec3AlmostEqual(a, b mgl64.Vec3, tolerance float64) bool {
	return almostEqual(a.X(), b.X(), tolerance) &&
		almostEqual(a.Y(), b.Y(), tolerance) &&
		almostEqual(a.Z(), b.Z(), tolerance)
}

// =============================================================================
// ClosestPointOnSegment Tests
// =============================================================================

func TestClosestPointOnSegment(t *testing.T) {
	a := mgl64.Vec3{0, 0, 0}
	b := mgl64.Vec3{10, 0, 0}

	tests := []struct {
		name  string
		point mgl64.Vec3
		want  mgl64.Vec3
	}{
		{
			name:  "beyond end clamps to b",
			point: mgl64.Vec3{15, 3, 0},
			want:  mgl64.Vec3{10, 0, 0},
		},
		{
			name:  "before start clamps to a",
			point: mgl64.Vec3{-4, 2, 7},
			want:  mgl64.Vec3{0, 0, 0},
		},
		{
			name:  "perpendicular foot",
			point: mgl64.Vec3{4, 5, 0},
			want:  mgl64.Vec3{4, 0, 0},
		},
		{
			name:  "perpendicular foot out of plane",
			point: mgl64.Vec3{7, 0, -3},
			want:  mgl64.Vec3{7, 0, 0},
		},
		{
			name:  "collinear inside",
			point: mgl64.Vec3{2.5, 0, 0},
			want:  mgl64.Vec3{2.5, 0, 0},
		},
		{
			name:  "collinear beyond b",
			point: mgl64.Vec3{20, 0, 0},
			want:  mgl64.Vec3{10, 0, 0},
		},
		{
			name:  "collinear before a",
			point: mgl64.Vec3{-1, 0, 0},
			want:  mgl64.Vec3{0, 0, 0},
		},
		{
			name:  "exactly on endpoint",
			point: mgl64.Vec3{10, 0, 0},
			want:  mgl64.Vec3{10, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClosestPointOnSegment(a, b, tt.point)
			if !vec3AlmostEqual(got, tt.want, 1e-12) {
				t.Errorf("ClosestPointOnSegment(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

func TestClosestPointOnSegment_Reversed(t *testing.T) {
	got := ClosestPointOnSegment(mgl64.Vec3{10, 0, 0}, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{15, 3, 0})
	if !vec3AlmostEqual(got, mgl64.Vec3{10, 0, 0}, 1e-12) {
		t.Errorf("got %v, want (10, 0, 0)", got)
	}
}

func TestClosestPointOnSegment_ZeroLength(t *testing.T) {
	a := mgl64.Vec3{1, 2, 3}

	got := ClosestPointOnSegment(a, a, mgl64.Vec3{5, 5, 5})
	if got != a {
		t.Errorf("zero-length segment should return its start, got %v", got)
	}
	if math.IsNaN(got.X()) || math.IsNaN(got.Y()) || math.IsNaN(got.Z()) {
		t.Error("zero-length segment produced NaN")
	}
}

func TestClamp(t *testing.T) {
	if got := clamp(-0.5, 0.0, 1.0); got != 0 {
		t.Errorf("clamp(-0.5) = %v, want 0", got)
	}
	if got := clamp(1.5, 0.0, 1.0); got != 1 {
		t.Errorf("clamp(1.5) = %v, want 1", got)
	}
	if got := clamp(float32(0.25), 0, 1); got != 0.25 {
		t.Errorf("clamp(0.25) = %v, want 0.25", got)
	}
}

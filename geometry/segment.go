package geometry

import (
	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/exp/constraints"
)

func clamp[T constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClosestPointOnSegment returns the point of segment [a, b] closest to p.
// The projection parameter is clamped to [0, 1], so points beyond either end map
// onto that endpoint. A zero-length segment returns a.
func ClosestPointOnSegment(a, b, p mgl64.Vec3) mgl64.Vec3 {
	ab := b.Sub(a)
	lenSq := ab.Dot(ab)
	if lenSq < Epsilon*Epsilon {
		return a
	}

	t := clamp(p.Sub(a).Dot(ab)/lenSq, 0.0, 1.0)
	return a.Add(ab.Mul(t))
}

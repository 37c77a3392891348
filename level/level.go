// Package level holds the static collision geometry of a loaded map: an ordered list of
// validated triangles and the named reference points (spawns) placed in it.
//
// A Level is immutable once built. Every triangle is checked when the level is created,
// so a malformed mesh is rejected at load time and the simulation never sees it.
package level

import (
	"errors"
	"fmt"
	"maps"

	"github.com/akmonengine/glide/geometry"
	"github.com/go-gl/mathgl/mgl64"
)

// PlayerStart is the point name used for the player spawn
const PlayerStart = "info_player_start"

var (
	ErrInvalidMesh  = errors.New("invalid mesh")
	ErrUnknownPoint = errors.New("unknown point")
)

type Level struct {
	triangles []geometry.Triangle
	points    map[string]mgl64.Vec3
	bounds    geometry.AABB
}

// New builds a level from an indexed triangle list.
// indices holds three vertex indices per triangle, in the winding of the source mesh.
func New(vertices []mgl64.Vec3, indices []int, points map[string]mgl64.Vec3) (*Level, error) {
	triangles, err := buildTriangles(vertices, indices)
	if err != nil {
		return nil, err
	}

	return newLevel(triangles, points), nil
}

// FromPolygons builds a level from convex faces, fan-triangulated around their first vertex
func FromPolygons(polygons [][]mgl64.Vec3, points map[string]mgl64.Vec3) (*Level, error) {
	triangles, err := fanTriangles(polygons)
	if err != nil {
		return nil, err
	}

	return newLevel(triangles, points), nil
}

func buildTriangles(vertices []mgl64.Vec3, indices []int) ([]geometry.Triangle, error) {
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("%d indices is not a multiple of 3: %w", len(indices), ErrInvalidMesh)
	}

	triangles := make([]geometry.Triangle, 0, len(indices)/3)
	for i := 0; i < len(indices); i += 3 {
		var corners [3]mgl64.Vec3
		for k := 0; k < 3; k++ {
			index := indices[i+k]
			if index < 0 || index >= len(vertices) {
				return nil, fmt.Errorf("triangle %d: index %d out of range [0, %d): %w", i/3, index, len(vertices), ErrInvalidMesh)
			}
			corners[k] = vertices[index]
		}

		tri, err := geometry.NewTriangle(corners[0], corners[1], corners[2])
		if err != nil {
			return nil, fmt.Errorf("triangle %d: %w", i/3, err)
		}
		triangles = append(triangles, tri)
	}

	return triangles, nil
}

// fanTriangles triangulates each polygon independently, so no index can reach the
// vertices of another polygon
func fanTriangles(polygons [][]mgl64.Vec3) ([]geometry.Triangle, error) {
	var vertices []mgl64.Vec3
	var indices []int

	for p, polygon := range polygons {
		if len(polygon) < 3 {
			return nil, fmt.Errorf("polygon %d has %d vertices: %w", p, len(polygon), ErrInvalidMesh)
		}

		start := len(vertices)
		for i := 0; i < len(polygon)-2; i++ {
			indices = append(indices, start, start+i+1, start+i+2)
		}
		vertices = append(vertices, polygon...)
	}

	return buildTriangles(vertices, indices)
}

func newLevel(triangles []geometry.Triangle, points map[string]mgl64.Vec3) *Level {
	l := &Level{
		triangles: triangles,
		points:    maps.Clone(points),
	}
	if l.points == nil {
		l.points = make(map[string]mgl64.Vec3)
	}

	for i, tri := range triangles {
		if i == 0 {
			l.bounds = tri.AABB()
			continue
		}
		l.bounds = l.bounds.Union(tri.AABB())
	}

	return l
}

// Triangles returns the collision triangles in mesh order.
// The slice is shared: callers must not modify it.
func (l *Level) Triangles() []geometry.Triangle {
	return l.triangles
}

func (l *Level) Len() int {
	return len(l.triangles)
}

// Point returns a named reference point, such as PlayerStart
func (l *Level) Point(name string) (mgl64.Vec3, bool) {
	p, ok := l.points[name]
	return p, ok
}

// MustPoint is like Point but panics when the point does not exist
func (l *Level) MustPoint(name string) mgl64.Vec3 {
	p, ok := l.points[name]
	if !ok {
		panic(fmt.Errorf("%q: %w", name, ErrUnknownPoint))
	}
	return p
}

// Points returns a copy of all named points
func (l *Level) Points() map[string]mgl64.Vec3 {
	return maps.Clone(l.points)
}

// Bounds is the box around every triangle; zero for an empty level
func (l *Level) Bounds() geometry.AABB {
	return l.bounds
}

// Floor builds a square level of two upward-facing triangles centred on the origin at
// height z, with PlayerStart at its centre
func Floor(halfExtent, z float64) (*Level, error) {
	vertices := []mgl64.Vec3{
		{-halfExtent, -halfExtent, z},
		{halfExtent, -halfExtent, z},
		{halfExtent, halfExtent, z},
		{-halfExtent, halfExtent, z},
	}

	return New(vertices, []int{0, 1, 2, 0, 2, 3}, map[string]mgl64.Vec3{PlayerStart: {0, 0, z}})
}

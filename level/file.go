package level

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// File is the YAML description of a level.
//
// Geometry is given either as indexed triangles (vertices + indices) or as convex
// polygons; both may be present, polygons are appended after the indexed triangles.
// Scale multiplies every coordinate, including points (map units are often 1/32).
type File struct {
	Scale    float64               `yaml:"scale"`
	Vertices [][3]float64          `yaml:"vertices"`
	Indices  []int                 `yaml:"indices"`
	Polygons [][][3]float64        `yaml:"polygons"`
	Points   map[string][3]float64 `yaml:"points"`
}

// Load reads and validates a level file
func Load(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading level %s: %w", path, err)
	}

	l, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading level %s: %w", path, err)
	}
	return l, nil
}

// Parse decodes a YAML level description
func Parse(data []byte) (*Level, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	return f.Build()
}

// Build validates the description and produces the level
func (f File) Build() (*Level, error) {
	scale := f.Scale
	if scale == 0 {
		scale = 1
	}
	toVec := func(v [3]float64) mgl64.Vec3 {
		return mgl64.Vec3{v[0], v[1], v[2]}.Mul(scale)
	}

	vertices := make([]mgl64.Vec3, 0, len(f.Vertices))
	for _, v := range f.Vertices {
		vertices = append(vertices, toVec(v))
	}

	// indices only address the indexed vertices, never the polygon ones
	triangles, err := buildTriangles(vertices, f.Indices)
	if err != nil {
		return nil, err
	}

	polygons := make([][]mgl64.Vec3, 0, len(f.Polygons))
	for _, polygon := range f.Polygons {
		face := make([]mgl64.Vec3, 0, len(polygon))
		for _, v := range polygon {
			face = append(face, toVec(v))
		}
		polygons = append(polygons, face)
	}

	fan, err := fanTriangles(polygons)
	if err != nil {
		return nil, fmt.Errorf("polygons: %w", err)
	}
	triangles = append(triangles, fan...)

	points := make(map[string]mgl64.Vec3, len(f.Points))
	for name, p := range f.Points {
		points[name] = toVec(p)
	}

	return newLevel(triangles, points), nil
}

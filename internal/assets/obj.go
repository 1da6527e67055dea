// Package assets loads the meshes and images the renderer uploads at
// startup. Nothing here touches OpenGL.
package assets

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	ErrNoFaces    = errors.New("obj: no faces")
	ErrIndexRange = errors.New("obj: index out of range")
)

// Mesh is an indexed triangle mesh with one normal per position.
type Mesh struct {
	Positions []float32 // x, y, z per vertex
	Normals   []float32 // x, y, z per vertex
	Indices   []uint32  // three per triangle
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.Positions) / 3 }

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int { return len(m.Indices) / 3 }

// Bounds returns the axis-aligned bounding box of the mesh.
func (m *Mesh) Bounds() (lo, hi mgl32.Vec3) {
	if len(m.Positions) < 3 {
		return
	}
	lo = mgl32.Vec3{m.Positions[0], m.Positions[1], m.Positions[2]}
	hi = lo
	for i := 3; i+2 < len(m.Positions); i += 3 {
		for a := 0; a < 3; a++ {
			v := m.Positions[i+a]
			if v < lo[a] {
				lo[a] = v
			}
			if v > hi[a] {
				hi[a] = v
			}
		}
	}
	return lo, hi
}

// LoadOBJ reads and parses a Wavefront OBJ file.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open mesh: %w", err)
	}
	defer f.Close()
	m, err := ParseOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// ParseOBJ parses v, vn and f records. Faces may use v, v/t, v//n or v/t/n
// references; polygons are fan-triangulated. Normals are shared by vertex
// index, so a file with normals must list one per position. Files without
// normals get smooth normals averaged from the faces.
func ParseOBJ(r io.Reader) (*Mesh, error) {
	var (
		pos     []float32
		nor     []float32
		indices []uint32
	)

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		switch fields[0] {
		case "v":
			xyz, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			pos = append(pos, xyz...)
		case "vn":
			xyz, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			nor = append(nor, xyz...)
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs 3 vertices, got %d", line, len(fields)-1)
			}
			face := make([]uint32, 0, len(fields)-1)
			for _, ref := range fields[1:] {
				idx, err := parseFaceRef(ref, len(pos)/3)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", line, err)
				}
				face = append(face, idx)
			}
			for i := 1; i+1 < len(face); i++ {
				indices = append(indices, face[0], face[i], face[i+1])
			}
		default:
			// vt, o, g, s, usemtl, mtllib: not needed for flat-coloured meshes.
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read obj: %w", err)
	}
	if len(indices) == 0 {
		return nil, ErrNoFaces
	}

	m := &Mesh{Positions: pos, Indices: indices}
	switch {
	case len(nor) == 0:
		m.Normals = smoothNormals(pos, indices)
	case len(nor) != len(pos):
		return nil, fmt.Errorf("obj: %d normals for %d positions", len(nor)/3, len(pos)/3)
	default:
		m.Normals = nor
	}
	return m, nil
}

func parseFloats(fields []string, n int) ([]float32, error) {
	if len(fields) < n {
		return nil, fmt.Errorf("want %d components, got %d", n, len(fields))
	}
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		v, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", fields[i], err)
		}
		out[i] = float32(v)
	}
	return out, nil
}

// parseFaceRef returns the zero-based position index of a face reference.
func parseFaceRef(ref string, count int) (uint32, error) {
	head, _, _ := strings.Cut(ref, "/")
	v, err := strconv.Atoi(head)
	if err != nil {
		return 0, fmt.Errorf("face ref %q: %w", ref, err)
	}
	if v < 1 || v > count {
		return 0, fmt.Errorf("face ref %q (have %d vertices): %w", ref, count, ErrIndexRange)
	}
	return uint32(v - 1), nil
}

func smoothNormals(pos []float32, indices []uint32) []float32 {
	acc := make([]mgl32.Vec3, len(pos)/3)
	vert := func(i uint32) mgl32.Vec3 {
		return mgl32.Vec3{pos[3*i], pos[3*i+1], pos[3*i+2]}
	}
	for t := 0; t+2 < len(indices); t += 3 {
		a, b, c := indices[t], indices[t+1], indices[t+2]
		n := vert(b).Sub(vert(a)).Cross(vert(c).Sub(vert(a)))
		acc[a] = acc[a].Add(n)
		acc[b] = acc[b].Add(n)
		acc[c] = acc[c].Add(n)
	}
	out := make([]float32, 0, len(pos))
	for _, n := range acc {
		if n.Len() > 0 {
			n = n.Normalize()
		}
		out = append(out, n[0], n[1], n[2])
	}
	return out
}

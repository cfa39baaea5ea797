package scene

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// LoadGeometry imports a model file by extension: .gltf and .glb through
// LoadGLTFGeometry, .obj through LoadOBJGeometry.
func LoadGeometry(path string) (*Geometry, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gltf", ".glb":
		return LoadGLTFGeometry(path)
	case ".obj":
		return LoadOBJGeometry(path)
	}
	return nil, &AssetLoadError{Path: path, Err: fmt.Errorf("unsupported model format %q", filepath.Ext(path))}
}

// LoadOBJGeometry reads the faces of a Wavefront .obj file into one indexed
// stride-5 Geometry. Objects and groups are merged; normals and materials are
// ignored.
func LoadOBJGeometry(path string) (*Geometry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &AssetLoadError{Path: path, Err: err}
	}
	defer f.Close()

	g, err := parseOBJ(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)), f)
	if err != nil {
		return nil, &AssetLoadError{Path: path, Err: err}
	}
	return g, nil
}

// objRef is one face corner: 0-based position and UV indices (-1 = absent).
type objRef struct{ v, vt int }

func parseOBJ(name string, r io.Reader) (*Geometry, error) {
	var positions [][3]float32
	var uvs [][2]float32
	var corners []objRef

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "v":
			p, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			positions = append(positions, [3]float32{p[0], p[1], p[2]})

		case "vt":
			// v is optional and defaults to 0
			n := min(len(fields)-1, 2)
			t, err := parseFloats(fields[1:], max(n, 1))
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			uv := [2]float32{t[0]}
			if n == 2 {
				uv[1] = t[1]
			}
			uvs = append(uvs, uv)

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face with %d vertices", lineNo, len(fields)-1)
			}
			refs := make([]objRef, 0, len(fields)-1)
			for _, tok := range fields[1:] {
				ref, err := parseFaceVertex(tok, len(positions), len(uvs))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				refs = append(refs, ref)
			}
			// fan triangulation: 0-1-2, 0-2-3, ...
			for i := 1; i+1 < len(refs); i++ {
				corners = append(corners, refs[0], refs[i], refs[i+1])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan obj: %w", err)
	}
	if len(corners) == 0 {
		return nil, ErrNoGeometry
	}

	// deduplicate identical corners
	g := &Geometry{Name: name}
	seen := make(map[objRef]uint32)
	for _, c := range corners {
		idx, ok := seen[c]
		if !ok {
			idx = uint32(g.VertexCount())
			seen[c] = idx
			p := positions[c.v]
			var uv [2]float32
			if c.vt >= 0 {
				uv = uvs[c.vt]
			}
			g.Vertices = append(g.Vertices, p[0], p[1], p[2], uv[0], uv[1])
		}
		g.Indices = append(g.Indices, idx)
	}
	return g, nil
}

func parseFloats(fields []string, n int) ([]float32, error) {
	if len(fields) < n {
		return nil, fmt.Errorf("expected %d values, got %d", n, len(fields))
	}
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, err
		}
		out[i] = float32(f)
	}
	return out, nil
}

// parseFaceVertex parses "v", "v/vt", "v//vn" or "v/vt/vn". OBJ indices are
// 1-based; negative ones count back from the last element read so far.
func parseFaceVertex(tok string, numPositions, numUVs int) (objRef, error) {
	parts := strings.Split(tok, "/")
	v, err := resolveOBJIndex(parts[0], numPositions)
	if err != nil {
		return objRef{}, fmt.Errorf("face vertex %q: %w", tok, err)
	}
	ref := objRef{v: v, vt: -1}
	if len(parts) > 1 && parts[1] != "" {
		if ref.vt, err = resolveOBJIndex(parts[1], numUVs); err != nil {
			return objRef{}, fmt.Errorf("face texcoord %q: %w", tok, err)
		}
	}
	return ref, nil
}

var errOBJIndex = errors.New("index out of range")

func resolveOBJIndex(s string, count int) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	switch {
	case n > 0 && n <= count:
		return n - 1, nil
	case n < 0 && -n <= count:
		return count + n, nil
	}
	return 0, errOBJIndex
}

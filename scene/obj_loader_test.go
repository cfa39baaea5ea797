package scene

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const quadOBJ = `# unit quad
o quad
v -0.5 -0.5 0
v 0.5 -0.5 0
v 0.5 0.5 0
v -0.5 0.5 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 0 1
f 1/1/1 2/2/1 3/3/1 4/4/1
`

func TestParseOBJQuad(t *testing.T) {
	g, err := parseOBJ("quad", strings.NewReader(quadOBJ))
	if err != nil {
		t.Fatalf("parseOBJ: %v", err)
	}
	if g.VertexCount() != 4 {
		t.Errorf("expected 4 deduplicated vertices, got %d", g.VertexCount())
	}
	expected := []uint32{0, 1, 2, 0, 2, 3}
	if len(g.Indices) != len(expected) {
		t.Fatalf("expected indices %v, got %v", expected, g.Indices)
	}
	for i := range expected {
		if g.Indices[i] != expected[i] {
			t.Errorf("index %d: expected %d, got %d", i, expected[i], g.Indices[i])
		}
	}
	// third vertex: position (0.5, 0.5, 0), uv (1, 1)
	v := g.Vertices[2*GeometryStride : 3*GeometryStride]
	if v[0] != 0.5 || v[1] != 0.5 || v[3] != 1 || v[4] != 1 {
		t.Errorf("unexpected vertex %v", v)
	}
}

func TestParseOBJNegativeIndicesAndNoUV(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf -3 -2 -1\n"
	g, err := parseOBJ("tri", strings.NewReader(src))
	if err != nil {
		t.Fatalf("parseOBJ: %v", err)
	}
	if g.VertexCount() != 3 || len(g.Indices) != 3 {
		t.Fatalf("expected one triangle, got %d vertices / %d indices", g.VertexCount(), len(g.Indices))
	}
	if g.Vertices[3] != 0 || g.Vertices[4] != 0 {
		t.Errorf("missing texcoords should default to 0, got %v", g.Vertices[3:5])
	}
}

func TestParseOBJSingleComponentTexcoord(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nvt 0.25\nvt 0.75 0.5\nf 1/1 2/2 3/1\n"
	g, err := parseOBJ("tri", strings.NewReader(src))
	if err != nil {
		t.Fatalf("parseOBJ: %v", err)
	}
	if u, v := g.Vertices[3], g.Vertices[4]; u != 0.25 || v != 0 {
		t.Errorf("vt u: expected (0.25, 0), got (%v, %v)", u, v)
	}
	if u, v := g.Vertices[GeometryStride+3], g.Vertices[GeometryStride+4]; u != 0.75 || v != 0.5 {
		t.Errorf("vt u v: expected (0.75, 0.5), got (%v, %v)", u, v)
	}
}

func TestParseOBJErrors(t *testing.T) {
	tests := map[string]string{
		"bad float":    "v 0 x 0\n",
		"out of range": "v 0 0 0\nf 1 2 3\n",
		"degenerate":   "v 0 0 0\nv 1 0 0\nf 1 2\n",
		"bad texcoord": "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1/1 2/1 3/1\n",
		"short vertex": "v 0 0\n",
		"empty vt":     "vt\n",
	}
	for name, src := range tests {
		if _, err := parseOBJ(name, strings.NewReader(src)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}

	if _, err := parseOBJ("empty", strings.NewReader("v 0 0 0\n")); !errors.Is(err, ErrNoGeometry) {
		t.Errorf("expected ErrNoGeometry, got %v", err)
	}
}

func TestLoadGeometryByExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quad.OBJ")
	if err := os.WriteFile(path, []byte(quadOBJ), 0644); err != nil {
		t.Fatal(err)
	}
	g, err := LoadGeometry(path)
	if err != nil {
		t.Fatalf("LoadGeometry: %v", err)
	}
	if g.Name != "quad" || g.VertexCount() != 4 {
		t.Errorf("unexpected geometry %q with %d vertices", g.Name, g.VertexCount())
	}

	var assetErr *AssetLoadError
	if _, err := LoadGeometry(filepath.Join(dir, "model.fbx")); !errors.As(err, &assetErr) {
		t.Errorf("expected AssetLoadError for unsupported format, got %v", err)
	}
	if _, err := LoadGeometry(filepath.Join(dir, "missing.obj")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
}

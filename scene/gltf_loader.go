package scene

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// ErrNoGeometry is returned when a model file holds no triangles.
var ErrNoGeometry = errors.New("model has no mesh geometry")

// LoadGLTFGeometry opens a .glb or .gltf file and returns the first primitive
// of its first mesh as interleaved position/texcoord Geometry. Primitives
// without TEXCOORD_0 get zero texture coordinates.
func LoadGLTFGeometry(path string) (*Geometry, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, &AssetLoadError{Path: path, Err: err}
	}
	g, err := geometryFromDocument(doc)
	if err != nil {
		return nil, &AssetLoadError{Path: path, Err: err}
	}
	return g, nil
}

func geometryFromDocument(doc *gltf.Document) (*Geometry, error) {
	for mi, gm := range doc.Meshes {
		if len(gm.Primitives) == 0 {
			continue
		}
		if len(doc.Meshes) > 1 || len(gm.Primitives) > 1 {
			slog.Debug("gltf: using first primitive only", "mesh", mi, "meshes", len(doc.Meshes), "primitives", len(gm.Primitives))
		}
		name := gm.Name
		if name == "" {
			name = fmt.Sprintf("mesh_%d", mi)
		}
		return loadGLTFPrimitive(doc, name, gm.Primitives[0])
	}
	return nil, ErrNoGeometry
}

// loadGLTFPrimitive converts one glTF mesh primitive into Geometry.
func loadGLTFPrimitive(doc *gltf.Document, name string, prim *gltf.Primitive) (*Geometry, error) {
	if prim.Mode != gltf.PrimitiveTriangles {
		return nil, fmt.Errorf("primitive mode %v: only triangles are supported", prim.Mode)
	}

	// Positions are required
	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return nil, fmt.Errorf("no POSITION attribute")
	}
	posAcc, err := accessor(doc, posIdx)
	if err != nil {
		return nil, fmt.Errorf("positions: %w", err)
	}
	positions, err := modeler.ReadPosition(doc, posAcc, nil)
	if err != nil {
		return nil, fmt.Errorf("positions: %w", err)
	}

	var uvs [][2]float32
	if idx, ok := prim.Attributes["TEXCOORD_0"]; ok {
		uvAcc, err := accessor(doc, idx)
		if err != nil {
			return nil, fmt.Errorf("texcoords: %w", err)
		}
		uvs, err = modeler.ReadTextureCoord(doc, uvAcc, nil)
		if err != nil {
			return nil, fmt.Errorf("texcoords: %w", err)
		}
	}

	vertices := make([]float32, 0, len(positions)*GeometryStride)
	for i, p := range positions {
		var uv [2]float32
		if i < len(uvs) {
			uv = uvs[i]
		}
		vertices = append(vertices, p[0], p[1], p[2], uv[0], uv[1])
	}

	var indices []uint32
	if prim.Indices != nil {
		idxAcc, err := accessor(doc, *prim.Indices)
		if err != nil {
			return nil, fmt.Errorf("indices: %w", err)
		}
		indices, err = modeler.ReadIndices(doc, idxAcc, nil)
		if err != nil {
			return nil, fmt.Errorf("indices: %w", err)
		}
		for _, ix := range indices {
			if int(ix) >= len(positions) {
				return nil, fmt.Errorf("index %d out of range for %d vertices", ix, len(positions))
			}
		}
	}

	return &Geometry{Name: name, Vertices: vertices, Indices: indices}, nil
}

// accessor returns doc.Accessors[i], rejecting indices the file does not define.
func accessor(doc *gltf.Document, i int) (*gltf.Accessor, error) {
	if i < 0 || i >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d out of range", i)
	}
	return doc.Accessors[i], nil
}

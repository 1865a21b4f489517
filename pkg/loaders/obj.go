package loaders

import (
	"fmt"

	"github.com/g3n/engine/loader/obj"

	"github.com/miminashca/Ray-Tracing/pkg/core"
	"github.com/miminashca/Ray-Tracing/pkg/geometry"
	"github.com/miminashca/Ray-Tracing/pkg/material"
)

// MeshGroupData is one run of triangles sharing a material, ready to be
// added to a scene as a mesh group
type MeshGroupData struct {
	Triangles []geometry.Triangle
	Material  *material.Material
}

// LoadOBJ reads a Wavefront OBJ file (plus its material library, resolved
// from the OBJ when mtlPath is empty) and converts it into per-material
// triangle runs. Faces with more than three vertices are fan-triangulated;
// vertex normals are used when present, otherwise the face normal is used.
// Positions are scaled and offset into world space.
func LoadOBJ(objPath, mtlPath string, scale float64, offset core.Vec3) ([]MeshGroupData, error) {
	decoder, err := obj.Decode(objPath, mtlPath)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", objPath, err)
	}

	vertexAt := func(index int) core.Vec3 {
		return core.NewVec3(
			float64(decoder.Vertices[index*3]),
			float64(decoder.Vertices[index*3+1]),
			float64(decoder.Vertices[index*3+2]),
		).Multiply(scale).Add(offset)
	}
	normalAt := func(index int) core.Vec3 {
		return core.NewVec3(
			float64(decoder.Normals[index*3]),
			float64(decoder.Normals[index*3+1]),
			float64(decoder.Normals[index*3+2]),
		).Normalize()
	}

	// Group triangles by material name so each run shares one material
	byMaterial := make(map[string][]geometry.Triangle)
	var order []string

	for _, object := range decoder.Objects {
		for _, face := range object.Faces {
			if len(face.Vertices) < 3 {
				continue
			}
			if _, seen := byMaterial[face.Material]; !seen {
				order = append(order, face.Material)
			}

			smooth := len(face.Normals) == len(face.Vertices)
			for i := 1; i < len(face.Vertices)-1; i++ {
				v0 := vertexAt(face.Vertices[0])
				v1 := vertexAt(face.Vertices[i])
				v2 := vertexAt(face.Vertices[i+1])

				var tri geometry.Triangle
				if smooth {
					tri = geometry.NewSmoothTriangle(v0, v1, v2,
						normalAt(face.Normals[0]),
						normalAt(face.Normals[i]),
						normalAt(face.Normals[i+1]))
				} else {
					tri = geometry.NewTriangle(v0, v1, v2)
				}
				byMaterial[face.Material] = append(byMaterial[face.Material], tri)
			}
		}
	}

	groups := make([]MeshGroupData, 0, len(order))
	for _, name := range order {
		groups = append(groups, MeshGroupData{
			Triangles: byMaterial[name],
			Material:  convertMaterial(decoder.Materials[name]),
		})
	}
	return groups, nil
}

// convertMaterial maps an OBJ material onto the bounce-model material.
// Shininess (0..1000) maps to smoothness, and the specular color's luminance
// is used as the chance of a specular bounce.
func convertMaterial(m *obj.Material) *material.Material {
	if m == nil {
		return material.NewDiffuse(core.NewVec3(0.8, 0.8, 0.8))
	}

	diffuse := core.NewVec3(float64(m.Diffuse.R), float64(m.Diffuse.G), float64(m.Diffuse.B))
	specular := core.NewVec3(float64(m.Specular.R), float64(m.Specular.G), float64(m.Specular.B))
	emissive := core.NewVec3(float64(m.Emissive.R), float64(m.Emissive.G), float64(m.Emissive.B))

	emissionStrength := 0.0
	if emissive.Length() > 0 {
		emissionStrength = 1.0
	}

	return &material.Material{
		Color:               diffuse,
		EmissionColor:       emissive,
		EmissionStrength:    emissionStrength,
		SpecularColor:       specular,
		Smoothness:          min(1.0, float64(m.Shininess)/1000.0),
		SpecularProbability: min(1.0, specular.Luminance()),
	}
}

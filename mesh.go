// Copyright (c) 2026, The XRGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stereo

import (
	"slices"

	"cogentcore.org/core/gpu"
	"cogentcore.org/core/math32"
	"github.com/xrgo/stereo/shading"
)

// Mesh records the element counts and vertex family of an indexed
// triangle mesh. All pipelines share one attribute layout; a mesh only
// fills the attributes its family uses and carries zeros for the rest,
// so any mesh can be bound to any pipeline, with the flat family
// (position, color) meaningful for FlatColor, and the lit family
// (position, normal, texcoord) for the other variants.
type Mesh struct {

	// number of vertex points.
	NVertex int

	// number of triangle indexes.
	NIndex int

	// Flat is true for the flat vertex family (per-vertex color,
	// no normals or texture coordinates).
	Flat bool

	// staging buffers, uploaded by Config.
	pos, norm, texCoord, clr math32.ArrayF32
	index                    []uint16
}

func (mv *Mesh) alloc() {
	mv.pos = make(math32.ArrayF32, mv.NVertex*3)
	mv.norm = make(math32.ArrayF32, mv.NVertex*3)
	mv.texCoord = make(math32.ArrayF32, mv.NVertex*2)
	mv.clr = make(math32.ArrayF32, mv.NVertex*3)
	mv.index = make([]uint16, mv.NIndex)
}

// AddFlatMesh adds a mesh in the flat vertex family (position and
// per-vertex color), for rendering with the FlatColor variant.
// All meshes must be added before Config is called.
func (st *Stereo) AddFlatMesh(name string, vtx []shading.FlatVertex, index []uint16) *Mesh {
	st.Lock()
	defer st.Unlock()

	mv := &Mesh{NVertex: len(vtx), NIndex: len(index), Flat: true}
	mv.alloc()
	for i, v := range vtx {
		mv.pos.SetVector3(i*3, v.Position)
		mv.clr.SetVector3(i*3, v.Color)
	}
	copy(mv.index, index)
	st.meshes.Add(name, mv)
	return mv
}

// AddLitMesh adds a mesh in the lit vertex family (position, normal,
// texture coordinate), for rendering with the NormalDebug,
// DirectionalLit, GradientLit and TexturedLit variants.
// All meshes must be added before Config is called.
func (st *Stereo) AddLitMesh(name string, vtx []shading.LitVertex, index []uint16) *Mesh {
	st.Lock()
	defer st.Unlock()

	mv := &Mesh{NVertex: len(vtx), NIndex: len(index)}
	mv.alloc()
	for i, v := range vtx {
		mv.pos.SetVector3(i*3, v.Position)
		mv.norm.SetVector3(i*3, v.Normal)
		mv.texCoord.Set(i*2, v.TexCoord.X, v.TexCoord.Y)
	}
	copy(mv.index, index)
	st.meshes.Add(name, mv)
	return mv
}

// MeshByName returns the mesh of the given name, or nil if not found.
func (st *Stereo) MeshByName(name string) *Mesh {
	st.Lock()
	defer st.Unlock()
	mv, ok := st.meshes.ValueByKeyTry(name)
	if !ok {
		return nil
	}
	return mv
}

// configMeshes uploads all staged mesh data to the per-mesh vertex
// values. Must be called under lock, after the system is configured.
func (st *Stereo) configMeshes() {
	vars := st.Sys.Vars()
	for i, kv := range st.meshes.Order {
		mv := kv.Value
		idx := mv.index
		if len(idx)%2 == 1 { // index buffer sizes must be 4 byte aligned
			idx = append(slices.Clip(idx), 0)
		}
		gpu.SetValueFrom(vars.ValueByIndex(gpu.VertexGroup, "Pos", i), mv.pos)
		gpu.SetValueFrom(vars.ValueByIndex(gpu.VertexGroup, "Norm", i), mv.norm)
		gpu.SetValueFrom(vars.ValueByIndex(gpu.VertexGroup, "TexCoord", i), mv.texCoord)
		gpu.SetValueFrom(vars.ValueByIndex(gpu.VertexGroup, "Color", i), mv.clr)
		gpu.SetValueFrom(vars.ValueByIndex(gpu.VertexGroup, "Index", i), idx)
	}
}

// DebugTetrahedron is a small lopsided tetrahedron in the flat vertex
// family, anchored near the origin with one gray corner and red, green
// and blue corners along the +x, +y and +z directions. Handy as a
// stand-in for untextured content and for checking handedness and eye
// separation.
func DebugTetrahedron() ([]shading.FlatVertex, []uint16) {
	vtx := []shading.FlatVertex{
		{Position: math32.Vec3(-0.1, -0.1, -0.1), Color: math32.Vec3(0.5, 0.5, 0.5)},
		{Position: math32.Vec3(0.1, -0.1, -0.1), Color: math32.Vec3(1, 0, 0)},
		{Position: math32.Vec3(-0.1, 0.1, -0.1), Color: math32.Vec3(0, 1, 0)},
		{Position: math32.Vec3(-0.1, -0.1, 0.1), Color: math32.Vec3(0, 0, 1)},
	}
	index := []uint16{0, 1, 2, 0, 2, 3, 0, 3, 1}
	return vtx, index
}

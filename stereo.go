// Copyright (c) 2026, The XRGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stereo implements a stereo (dual-eye) rendering front-end in a
// gpu GraphicsSystem: five material-variant pipelines sharing one set of
// binding contracts. The host supplies the per-frame view-projection pair,
// per-draw model matrices, meshes and textures; rendering runs once per eye,
// selecting the eye's matrix through a small per-pass uniform.
//
// Add all meshes and textures first and call Config prior to the first
// render. Rendering starts with RenderStart, followed by SetEye and Use*
// calls to specify what each draw uses, a Render call per draw, and
// finally RenderEnd.
package stereo

import (
	"fmt"
	"sync"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/ordmap"
	"cogentcore.org/core/gpu"
	"github.com/xrgo/stereo/shading"
)

// Current has the current render state, set by the Use* methods,
// consumed by the next Render call.
type Current struct {

	// active material variant, selects the bound pipeline.
	Variant Variant

	// index of the current mesh in to the ordered mesh list.
	MeshIndex int

	// index in to the per-draw model matrix slots.
	ObjectIndex int

	// index of the current texture, for TexturedLit.
	TextureIndex int
}

// Stereo is the stereo rendering system. It holds the five material
// pipelines, the frame/draw/material binding contracts, and the mesh and
// texture registries.
type Stereo struct {

	// rendering system
	Sys *gpu.GraphicsSystem

	// ViewProjection is the current frame's matrix pair,
	// set by [Stereo.SetViewProjection].
	ViewProjection shading.ViewProjection

	// state for current rendering
	Cur Current

	// meshes, in added order; vertex values are indexed by mesh order.
	meshes ordmap.Map[string, *Mesh]

	// textures, in added order. Index 0 is the built-in white texture.
	textures ordmap.Map[string, *Texture]

	// number of per-draw model matrix slots, set by SetObjectN.
	objectN int

	// overall lock on system, use Lock, Unlock
	sync.Mutex
}

// NewStereo returns a new Stereo system rendering to the given Renderer
// (Surface or RenderTexture), with variables and pipelines configured.
// Add meshes and textures, then call Config.
func NewStereo(gp *gpu.GPU, rd gpu.Renderer) *Stereo {
	st := &Stereo{}
	st.configSystem(gp, rd)
	return st
}

func (st *Stereo) Release() {
	st.Sys.Release()
}

// Config configures the underlying system after all meshes and textures
// have been added, uploading the mesh, texture and eye values.
// Call SetViewProjection and SetObject after this to fill in the frame
// and per-draw uniforms.
func (st *Stereo) Config() {
	st.Lock()
	defer st.Unlock()
	vars := st.Sys.Vars()
	vars.VertexGroup().SetNValues(max(1, st.meshes.Len()))
	errors.Log1(vars.GroupTry(TextureGroup)).SetNValues(st.textures.Len())
	st.Sys.Config()
	st.configEyes()
	st.configMeshes()
	st.configTextures()
	st.setObjectN(st.objectNOrDefault())
}

func (st *Stereo) objectNOrDefault() int {
	if st.objectN == 0 {
		return 1
	}
	return st.objectN
}

// UseVariant selects the material variant pipeline for the next Render.
func (st *Stereo) UseVariant(v Variant) {
	st.Lock()
	defer st.Unlock()
	st.Cur.Variant = v
}

// UseMeshName selects the mesh by name for the next Render.
// The mesh's vertex family must match the current variant's family;
// a mismatch is a configuration error reported at Render.
func (st *Stereo) UseMeshName(name string) error {
	idx, ok := st.meshes.IndexByKeyTry(name)
	if !ok {
		err := fmt.Errorf("stereo.UseMeshName: name not found: %s", name)
		return errors.Log(err)
	}
	return st.UseMeshIndex(idx)
}

// UseMeshIndex selects the mesh by index for the next Render.
func (st *Stereo) UseMeshIndex(idx int) error {
	st.Lock()
	defer st.Unlock()
	if err := st.meshes.IndexIsValid(idx); err != nil {
		return errors.Log(err)
	}
	vars := st.Sys.Vars()
	for _, nm := range vertexVarNames {
		errors.Log1(vars.SetCurrentValue(gpu.VertexGroup, nm, idx))
	}
	st.Cur.MeshIndex = idx
	return nil
}

// UseObjectIndex selects the per-draw model matrix slot for the next
// Render. The slot must have been allocated with SetObjectN and filled
// with SetObject.
func (st *Stereo) UseObjectIndex(idx int) error {
	st.Lock()
	defer st.Unlock()
	if idx < 0 || idx >= st.objectN {
		err := fmt.Errorf("stereo.UseObjectIndex: index %d out of range %d", idx, st.objectN)
		return errors.Log(err)
	}
	vl := st.Sys.Vars().ValueByIndex(ObjectGroup, "Object", 0)
	vl.SetDynamicIndex(idx)
	st.Cur.ObjectIndex = idx
	return nil
}

// UseTextureName selects the texture by name for the next TexturedLit
// Render.
func (st *Stereo) UseTextureName(name string) error {
	idx, ok := st.textures.IndexByKeyTry(name)
	if !ok {
		err := fmt.Errorf("stereo.UseTextureName: name not found: %s", name)
		return errors.Log(err)
	}
	return st.UseTextureIndex(idx)
}

// UseTextureIndex selects the texture by index for the next TexturedLit
// Render.
func (st *Stereo) UseTextureIndex(idx int) error {
	st.Lock()
	defer st.Unlock()
	if err := st.textures.IndexIsValid(idx); err != nil {
		return errors.Log(err)
	}
	errors.Log1(st.Sys.Vars().SetCurrentValue(TextureGroup, "TexSampler", idx))
	st.Cur.TextureIndex = idx
	return nil
}

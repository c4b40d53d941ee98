// Copyright (c) 2026, The XRGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stereo

import (
	"embed"
	"image"
	"image/color"
	"unsafe"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/gpu"
	"cogentcore.org/core/math32"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/xrgo/stereo/shading"
)

//go:embed shaders/*.wgsl
var shaders embed.FS

// Group numbers, ordered by update frequency: the camera pair is written
// once per frame, the eye selection once per eye pass, object matrices
// once per draw, textures once per material.
const (
	CameraGroup  = 0
	EyeGroup     = 1
	ObjectGroup  = 2
	TextureGroup = 3
)

// vertexVarNames are the vertex attribute variables, in shader location
// order. All pipelines share this layout; each variant's shader declares
// only the locations its family consumes (Pos, Norm, TexCoord for the lit
// family; Pos, Color for the flat family).
var vertexVarNames = []string{"Pos", "Norm", "TexCoord", "Color", "Index"}

// eyeUniform is the per-pass eye selection block, padded to uniform
// alignment.
type eyeUniform struct {
	Index            uint32
	pad0, pad1, pad2 uint32
}

// objectUniform is the per-draw transform block: the lowest-latency
// update path, a dynamic-offset uniform standing in for push constants.
type objectUniform struct {
	Model math32.Matrix4
}

// configPipeline sets the fixed graphics state shared by all variants:
// triangle list, no culling, no alpha blending (alpha is always written
// as 1). Multisampling follows the Renderer; the reference host uses 4x.
func (st *Stereo) configPipeline(pl *gpu.GraphicsPipeline) {
	pl.SetGraphicsDefaults()
	pl.SetCullMode(wgpu.CullModeNone)
	pl.SetFrontFace(wgpu.FrontFaceCCW)
	pl.SetAlphaBlend(false)
}

// configSystem builds the five variant pipelines and declares the
// vertex/uniform/texture variable contracts.
func (st *Stereo) configSystem(gp *gpu.GPU, rd gpu.Renderer) {
	st.Sys = gpu.NewGraphicsSystem(gp, "stereo", rd)
	sy := st.Sys

	for v := FlatColor; v < VariantsN; v++ {
		pl := sy.AddGraphicsPipeline(v.PipelineName())
		st.configPipeline(pl)
		sh := pl.AddShader(v.PipelineName())
		errors.Log(sh.OpenFileFS(shaders, "shaders/"+v.PipelineName()+".wgsl"))
		pl.AddEntry(sh, gpu.VertexShader, "vs_main")
		pl.AddEntry(sh, gpu.FragmentShader, "fs_main")
	}

	vars := sy.Vars()
	vgp := vars.AddVertexGroup()
	cgp := vars.AddGroup(gpu.Uniform, "Camera")         // CameraGroup
	egp := vars.AddGroup(gpu.Uniform, "Eye")            // EyeGroup
	ogp := vars.AddGroup(gpu.Uniform, "Object")         // ObjectGroup
	tgp := vars.AddGroup(gpu.SampledTexture, "Texture") // TextureGroup

	vgp.Add("Pos", gpu.Float32Vector3, 0, gpu.VertexShader)
	vgp.Add("Norm", gpu.Float32Vector3, 0, gpu.VertexShader)
	vgp.Add("TexCoord", gpu.Float32Vector2, 0, gpu.VertexShader)
	vgp.Add("Color", gpu.Float32Vector3, 0, gpu.VertexShader)
	idxv := vgp.Add("Index", gpu.Uint16, 0, gpu.VertexShader)
	idxv.Role = gpu.Index

	cgp.AddStruct("Camera", int(unsafe.Sizeof(shading.ViewProjection{})), 1, gpu.VertexShader)
	egp.AddStruct("Eye", int(unsafe.Sizeof(eyeUniform{})), 1, gpu.VertexShader)

	ov := ogp.AddStruct("Object", int(unsafe.Sizeof(objectUniform{})), 1, gpu.VertexShader)
	ov.DynamicOffset = true

	tgp.Add("TexSampler", gpu.TextureRGBA32, 1, gpu.FragmentShader)

	vgp.SetNValues(1)
	cgp.SetNValues(1)
	egp.SetNValues(int(shading.NumEyes))
	ogp.SetNValues(1)
	tgp.SetNValues(1)

	// texture value 0 is a built-in uniform white image, so TexturedLit
	// with no texture selected reduces to DirectionalLit, and the flat
	// pipelines always have a valid texture binding.
	st.textures.Add("white", &Texture{Image: whiteImage()})
}

// configEyes uploads the two fixed eye-index values; [Stereo.SetEye]
// selects between them per pass.
func (st *Stereo) configEyes() {
	vars := st.Sys.Vars()
	for e := shading.LeftEye; e < shading.NumEyes; e++ {
		vl := vars.ValueByIndex(EyeGroup, "Eye", int(e))
		gpu.SetValueFrom(vl, []eyeUniform{{Index: uint32(e)}})
	}
}

func whiteImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			img.Set(x, y, color.RGBA{255, 255, 255, 255})
		}
	}
	return img
}

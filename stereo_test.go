// Copyright (c) 2026, The XRGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stereo

import (
	"image"
	"image/color"
	"testing"

	"cogentcore.org/core/gpu"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/xrgo/stereo/shading"
)

// quad is a unit quad in the lit family, facing +z.
func quad() ([]shading.LitVertex, []uint16) {
	vtx := []shading.LitVertex{
		{Position: math32.Vec3(-0.5, -0.5, 0), Normal: math32.Vec3(0, 0, 1), TexCoord: math32.Vec2(0, 1)},
		{Position: math32.Vec3(0.5, -0.5, 0), Normal: math32.Vec3(0, 0, 1), TexCoord: math32.Vec2(1, 1)},
		{Position: math32.Vec3(0.5, 0.5, 0), Normal: math32.Vec3(0, 0, 1), TexCoord: math32.Vec2(1, 0)},
		{Position: math32.Vec3(-0.5, 0.5, 0), Normal: math32.Vec3(0, 0, 1), TexCoord: math32.Vec2(0, 0)},
	}
	index := []uint16{0, 1, 2, 0, 2, 3}
	return vtx, index
}

func TestMeshRegistry(t *testing.T) {
	st := &Stereo{}
	vtx, index := DebugTetrahedron()
	mv := st.AddFlatMesh("tetra", vtx, index)
	assert.Equal(t, 4, mv.NVertex)
	assert.Equal(t, 9, mv.NIndex)
	assert.True(t, mv.Flat)

	qvtx, qidx := quad()
	qm := st.AddLitMesh("quad", qvtx, qidx)
	assert.Equal(t, 4, qm.NVertex)
	assert.Equal(t, 6, qm.NIndex)
	assert.False(t, qm.Flat)

	assert.Equal(t, mv, st.MeshByName("tetra"))
	assert.Equal(t, qm, st.MeshByName("quad"))
	assert.Nil(t, st.MeshByName("nope"))
}

func TestStereoEyeViews(t *testing.T) {
	var proj, view math32.Matrix4
	proj.SetPerspective(45, 1, 0.01, 100)
	view.SetIdentity()
	left, right := StereoViewProjections(&proj, &view, &view)

	// a centered point must land in the left half for the left eye
	// and the right half for the right eye.
	p := math32.Vec3(0, 0, -2)
	lp := math32.Vector4FromVector3(p, 1).MulMatrix4(&left)
	rp := math32.Vector4FromVector3(p, 1).MulMatrix4(&right)
	assert.Less(t, lp.X/lp.W, float32(0))
	assert.Greater(t, rp.X/rp.W, float32(0))
}

func TestStereoRender(t *testing.T) {
	t.Skip("Need software GPU on CI")
	gp, dev, err := gpu.NoDisplayGPU("stereo")
	assert.NoError(t, err)
	sz := image.Point{960, 320}
	rt := gpu.NewRenderTexture(gp, dev, sz, 4, gpu.Depth32)
	st := NewStereo(gp, rt)
	defer st.Release()
	st.Sys.SetClearColor(color.RGBA{50, 50, 50, 255})

	tvtx, tidx := DebugTetrahedron()
	st.AddFlatMesh("tetra", tvtx, tidx)
	qvtx, qidx := quad()
	st.AddLitMesh("quad", qvtx, qidx)

	checker := image.NewRGBA(image.Rect(0, 0, 2, 2))
	checker.Set(0, 0, color.RGBA{255, 0, 0, 255})
	checker.Set(1, 0, color.RGBA{0, 255, 0, 255})
	checker.Set(0, 1, color.RGBA{0, 0, 255, 255})
	checker.Set(1, 1, color.RGBA{255, 255, 255, 255})
	st.AddTexture("checker", checker)

	st.SetObjectN(2)
	st.Config()

	var proj, view math32.Matrix4
	proj.SetPerspective(45, 1.5, 0.01, 100)
	view.SetIdentity()
	left, right := StereoViewProjections(&proj, &view, &view)
	st.SetViewProjection(&left, &right)

	var q math32.Quat
	q.SetIdentity()
	var model math32.Matrix4
	model.SetTransform(math32.Vec3(-0.3, 0, -2), q, math32.Vec3(1, 1, 1))
	assert.NoError(t, st.SetObject(0, &model))
	model.SetTransform(math32.Vec3(0.3, 0, -2), q, math32.Vec3(1, 1, 1))
	assert.NoError(t, st.SetObject(1, &model))

	rp, err := st.RenderStart()
	assert.NoError(t, err)
	for e := shading.LeftEye; e < shading.NumEyes; e++ {
		st.SetEye(e)
		st.UseVariant(FlatColor)
		assert.NoError(t, st.UseMeshName("tetra"))
		assert.NoError(t, st.UseObjectIndex(0))
		st.Render(rp)

		st.UseVariant(TexturedLit)
		assert.NoError(t, st.UseMeshName("quad"))
		assert.NoError(t, st.UseObjectIndex(1))
		assert.NoError(t, st.UseTextureName("checker"))
		st.Render(rp)
	}
	st.RenderEnd(rp)
}

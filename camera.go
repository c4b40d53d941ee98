// Copyright (c) 2026, The XRGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stereo

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/gpu"
	"cogentcore.org/core/math32"
	"github.com/xrgo/stereo/shading"
)

// SetViewProjection sets both eyes' view-projection matrices for the
// current frame and uploads them, so they are ready to use. Call at most
// once per frame, before RenderStart.
func (st *Stereo) SetViewProjection(left, right *math32.Matrix4) {
	st.Lock()
	defer st.Unlock()
	st.ViewProjection[shading.LeftEye] = *left
	st.ViewProjection[shading.RightEye] = *right
	vl := st.Sys.Vars().ValueByIndex(CameraGroup, "Camera", 0)
	gpu.SetValueFrom(vl, []shading.ViewProjection{st.ViewProjection})
}

// SetEye selects the eye for the next draws within the current render
// pass. The eye index is a per-pass uniform here rather than a hardware
// multiview replica index: without a multiview mechanism the pipeline is
// invoked once per eye, which is functionally equivalent at the cost of
// two submissions per object.
func (st *Stereo) SetEye(eye shading.Eye) {
	st.Lock()
	defer st.Unlock()
	errors.Log1(st.Sys.Vars().SetCurrentValue(EyeGroup, "Eye", int(eye)))
}

// StereoViewProjections composes the per-eye view-projection matrices for
// a symmetric side-by-side presentation of both eyes on one target:
// each eye's projection is squeezed into its half of clip space.
// An XR host supplies its own per-eye matrices instead.
func StereoViewProjections(proj, leftView, rightView *math32.Matrix4) (left, right math32.Matrix4) {
	var q math32.Quat
	q.SetIdentity()

	var half math32.Matrix4
	half.SetTransform(math32.Vec3(-0.5, 0, 0), q, math32.Vec3(0.5, 1, 1))
	var lvp math32.Matrix4
	lvp.MulMatrices(proj, leftView)
	left.MulMatrices(&half, &lvp)

	half.SetTransform(math32.Vec3(0.5, 0, 0), q, math32.Vec3(0.5, 1, 1))
	var rvp math32.Matrix4
	rvp.MulMatrices(proj, rightView)
	right.MulMatrices(&half, &rvp)
	return
}

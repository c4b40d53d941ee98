// Copyright (c) 2026, The XRGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stereo

import (
	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// RenderStart starts the render pass, writing the staged per-draw model
// matrices up to the GPU first. Returns the encoder to pass to SetEye,
// Use* and Render calls, ending with RenderEnd. An error means the
// render target is not available (e.g., a zero-size surface during
// window resizing) and the frame should be skipped.
func (st *Stereo) RenderStart() (*wgpu.RenderPassEncoder, error) {
	st.Lock()
	defer st.Unlock()
	vl := st.Sys.Vars().ValueByIndex(ObjectGroup, "Object", 0)
	errors.Log(vl.WriteDynamicBuffer())
	return st.Sys.BeginRenderPass()
}

// Render draws the current settings: the variant pipeline from
// UseVariant, the mesh from UseMesh*, the model matrix slot from
// UseObjectIndex, the eye from SetEye, and for TexturedLit the texture
// from UseTexture*.
func (st *Stereo) Render(rp *wgpu.RenderPassEncoder) {
	st.Lock()
	defer st.Unlock()
	pl := st.Sys.GraphicsPipelines[st.Cur.Variant.PipelineName()]
	pl.BindPipeline(rp)
	pl.BindDrawIndexed(rp)
}

// RenderEnd ends the render pass and submits it.
func (st *Stereo) RenderEnd(rp *wgpu.RenderPassEncoder) {
	rp.End()
	st.Sys.EndRenderPass(rp)
}

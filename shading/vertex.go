// Copyright (c) 2026, The XRGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shading

import "cogentcore.org/core/math32"

// FlatVertex is the attribute tuple for the flat-colored vertex family:
// object-space position plus a pass-through color.
type FlatVertex struct {
	Position math32.Vector3
	Color    math32.Vector3
}

// LitVertex is the attribute tuple for the lit/textured vertex family:
// object-space position, object-space normal, and a texture coordinate.
type LitVertex struct {
	Position math32.Vector3
	Normal   math32.Vector3
	TexCoord math32.Vector2
}

// FlatOutput is the vertex stage output for the flat family.
type FlatOutput struct {
	ClipPosition math32.Vector4
	Color        math32.Vector3
}

// LitOutput is the vertex stage output for the lit family.
type LitOutput struct {
	ClipPosition math32.Vector4
	Normal       math32.Vector3
	TexCoord     math32.Vector2
}

// Project transforms an object-space position into clip space for the given
// eye: viewProj[eye] × model × (pos, 1).
func Project(vp *ViewProjection, model *math32.Matrix4, eye Eye, pos math32.Vector3) math32.Vector4 {
	world := math32.Vector4FromVector3(pos, 1).MulMatrix4(model)
	return world.MulMatrix4(&vp[eye])
}

// TransformNormal transforms an object-space normal to world space as a
// direction: (model × (n, 0)).xyz. The w component of zero excludes
// translation. The result is not normalized and is not corrected by an
// inverse-transpose, so a non-uniform scale on the model matrix skews the
// normal; that matches the rendered output this contract was lifted from.
func TransformNormal(model *math32.Matrix4, normal math32.Vector3) math32.Vector3 {
	return normal.MulMatrix4AsVector4(model, 0)
}

// ProjectFlat runs the stereo vertex stage for the flat family:
// projected position plus untransformed color.
func ProjectFlat(vp *ViewProjection, model *math32.Matrix4, eye Eye, v FlatVertex) FlatOutput {
	return FlatOutput{
		ClipPosition: Project(vp, model, eye, v.Position),
		Color:        v.Color,
	}
}

// ProjectLit runs the stereo vertex stage for the lit family:
// projected position, world-space normal, untransformed texture coordinate.
func ProjectLit(vp *ViewProjection, model *math32.Matrix4, eye Eye, v LitVertex) LitOutput {
	return LitOutput{
		ClipPosition: Project(vp, model, eye, v.Position),
		Normal:       TransformNormal(model, v.Normal),
		TexCoord:     v.TexCoord,
	}
}

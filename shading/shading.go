// Copyright (c) 2026, The XRGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shading defines the stereo rendering contract as pure functions:
// per-eye projection, the shared directional light model, and the five
// fragment variants. The WGSL shaders in the parent package mirror these
// functions exactly, so this package is both the reference implementation
// and the place where the math is tested.
package shading

import "cogentcore.org/core/math32"

// Eye selects one of the two per-frame view-projection matrices.
type Eye int32

const (
	LeftEye Eye = iota
	RightEye

	// NumEyes is the stereo view count.
	NumEyes
)

// ViewProjection is the per-frame pair of view-projection matrices,
// one per eye. It is written once per frame before any draw using it.
type ViewProjection [NumEyes]math32.Matrix4

// LightDirection is the fixed directional light shared by all lit variants:
// normalize(0.1, 1.0, 0.3). It is compile-time configuration, not a runtime
// input; the lit functions take the direction as a parameter so a dynamic
// light is a drop-in change.
var LightDirection = math32.Vec3(0.1, 1.0, 0.3).Normal()

// Gradient endpoints for [GradientLit], as 0..1 RGB.
var (
	GradientDark = math32.Vec3(26.0/255.0, 32.0/255.0, 52.0/255.0)
	GradientWarm = math32.Vec3(255.0/255.0, 217.0/255.0, 127.0/255.0)
)

// HalfLambert returns dot(normal, lightDir)*0.5 + 0.5, remapping the signed
// dot product into [0, 1] for a softened diffuse look. All lit variants use
// this one term, so swapping materials never changes the perceived lighting,
// only how the illumination value maps to color.
func HalfLambert(normal, lightDir math32.Vector3) float32 {
	return normal.Dot(lightDir)*0.5 + 0.5
}

// FlatColor passes the interpolated vertex color through, alpha 1.
func FlatColor(color math32.Vector3) math32.Vector4 {
	return math32.Vec4(color.X, color.Y, color.Z, 1)
}

// NormalDebug visualizes the interpolated normal as a color,
// remapping signed [-1, 1] components into [0, 1].
func NormalDebug(normal math32.Vector3) math32.Vector4 {
	return math32.Vec4(0.5*normal.X+0.5, 0.5*normal.Y+0.5, 0.5*normal.Z+0.5, 1)
}

// DirectionalLit returns the grayscale half-Lambert shading of the
// interpolated normal under the given light direction.
func DirectionalLit(normal, lightDir math32.Vector3) math32.Vector4 {
	nl := HalfLambert(normal, lightDir)
	return math32.Vec4(nl, nl, nl, 1)
}

// GradientLit maps the half-Lambert term through the fixed dark-to-warm
// gradient: ndotl = 0 is [GradientDark], ndotl = 1 is [GradientWarm].
func GradientLit(normal, lightDir math32.Vector3) math32.Vector4 {
	nl := HalfLambert(normal, lightDir)
	c := GradientDark.Lerp(GradientWarm, nl)
	return math32.Vec4(c.X, c.Y, c.Z, 1)
}

// TexturedLit samples the bound texture at the interpolated texture
// coordinate and scales its RGB by the half-Lambert term.
func TexturedLit(normal math32.Vector3, texcoord math32.Vector2, tex Sampler, lightDir math32.Vector3) math32.Vector4 {
	nl := HalfLambert(normal, lightDir)
	c := tex.SampleRGB(texcoord).MulScalar(nl)
	return math32.Vec4(c.X, c.Y, c.Z, 1)
}

// Copyright (c) 2026, The XRGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shading

import (
	"image"
	"image/color"
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

const standardTol = float32(1.0e-6)

func tolAssertVec3(t *testing.T, tol float32, vt, va math32.Vector3) {
	t.Helper()
	tolassert.EqualTol(t, vt.X, va.X, tol)
	tolassert.EqualTol(t, vt.Y, va.Y, tol)
	tolassert.EqualTol(t, vt.Z, va.Z, tol)
}

func tolAssertVec4(t *testing.T, tol float32, vt, va math32.Vector4) {
	t.Helper()
	tolassert.EqualTol(t, vt.X, va.X, tol)
	tolassert.EqualTol(t, vt.Y, va.Y, tol)
	tolassert.EqualTol(t, vt.Z, va.Z, tol)
	tolassert.EqualTol(t, vt.W, va.W, tol)
}

func TestLightDirection(t *testing.T) {
	tolassert.EqualTol(t, 1, LightDirection.Length(), standardTol)
	// same direction as the unnormalized (0.1, 1.0, 0.3)
	tolAssertVec3(t, standardTol, math32.Vec3(0.1, 1.0, 0.3).Normal(), LightDirection)
}

func TestFlatColorIdentity(t *testing.T) {
	for _, c := range []math32.Vector3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 1},
		{X: 0.25, Y: 0.5, Z: 0.75},
		{X: 0.5, Y: 0.5, Z: 0.5},
	} {
		out := FlatColor(c)
		assert.Equal(t, c.X, out.X)
		assert.Equal(t, c.Y, out.Y)
		assert.Equal(t, c.Z, out.Z)
		assert.Equal(t, float32(1), out.W)
	}
}

func TestNormalDebugRange(t *testing.T) {
	normals := []math32.Vector3{
		math32.Vec3(1, 0, 0),
		math32.Vec3(-1, 0, 0),
		math32.Vec3(0, -1, 0),
		math32.Vec3(0, 0, 1),
		math32.Vec3(1, 1, 1).Normal(),
		math32.Vec3(-1, 2, -3).Normal(),
	}
	for _, n := range normals {
		out := NormalDebug(n)
		for _, v := range []float32{out.X, out.Y, out.Z} {
			assert.GreaterOrEqual(t, v, float32(0))
			assert.LessOrEqual(t, v, float32(1))
		}
		assert.Equal(t, float32(1), out.W)
	}
	// exact remap of the canonical up normal
	tolAssertVec4(t, standardTol, math32.Vec4(0.5, 1, 0.5, 1), NormalDebug(math32.Vec3(0, 1, 0)))
}

func TestDirectionalLitUpNormal(t *testing.T) {
	// ndotl for normal (0, 1, 0) is dot((0,1,0), normalize(0.1,1,0.3))*0.5+0.5
	// = (1/sqrt(1.1))*0.5 + 0.5
	want := float32(1.0/math32.Sqrt(1.1))*0.5 + 0.5
	out := DirectionalLit(math32.Vec3(0, 1, 0), LightDirection)
	tolAssertVec4(t, standardTol, math32.Vec4(want, want, want, 1), out)
}

func TestDirectionalAndGradientShareLightModel(t *testing.T) {
	normals := []math32.Vector3{
		math32.Vec3(0, 1, 0),
		math32.Vec3(1, 0, 0),
		math32.Vec3(0, -1, 0),
		math32.Vec3(1, 1, -1).Normal(),
		LightDirection,
		LightDirection.Negate(),
	}
	for _, n := range normals {
		gray := DirectionalLit(n, LightDirection).X
		grad := GradientLit(n, LightDirection)
		blend := GradientDark.Lerp(GradientWarm, gray)
		tolAssertVec4(t, standardTol, math32.Vec4(blend.X, blend.Y, blend.Z, 1), grad)
	}
}

func TestGradientEndpoints(t *testing.T) {
	// normal aligned with the light: ndotl = 1, warm endpoint
	warm := GradientLit(LightDirection, LightDirection)
	tolAssertVec4(t, standardTol, math32.Vec4(GradientWarm.X, GradientWarm.Y, GradientWarm.Z, 1), warm)

	// normal opposing the light: ndotl = 0, dark endpoint
	dark := GradientLit(LightDirection.Negate(), LightDirection)
	tolAssertVec4(t, standardTol, math32.Vec4(GradientDark.X, GradientDark.Y, GradientDark.Z, 1), dark)

	// perpendicular normal: ndotl = 0.5, midpoint within tolerance
	perp := LightDirection.Cross(math32.Vec3(0, 0, 1)).Normal()
	tolassert.EqualTol(t, 0, perp.Dot(LightDirection), standardTol)
	mid := GradientDark.Lerp(GradientWarm, 0.5)
	out := GradientLit(perp, LightDirection)
	tolAssertVec4(t, standardTol, math32.Vec4(mid.X, mid.Y, mid.Z, 1), out)
}

func TestTexturedLitWhiteEqualsDirectional(t *testing.T) {
	white := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			white.Set(x, y, color.RGBA{255, 255, 255, 255})
		}
	}
	sp := NewImageSampler(white)
	normals := []math32.Vector3{
		math32.Vec3(0, 1, 0),
		math32.Vec3(1, 0, 0).Normal(),
		math32.Vec3(-1, 1, 2).Normal(),
	}
	coords := []math32.Vector2{
		math32.Vec2(0, 0),
		math32.Vec2(0.5, 0.5),
		math32.Vec2(1.25, -0.75), // wraps
	}
	for _, n := range normals {
		for _, tc := range coords {
			want := DirectionalLit(n, LightDirection)
			got := TexturedLit(n, tc, sp, LightDirection)
			tolAssertVec4(t, standardTol, want, got)
		}
	}
}

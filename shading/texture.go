// Copyright (c) 2026, The XRGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shading

import (
	"image"

	"cogentcore.org/core/math32"
)

// Sampler reads RGB texels at a texture coordinate, for [TexturedLit].
// Coordinates outside [0, 1) wrap according to the sampler's addressing mode.
type Sampler interface {
	SampleRGB(texcoord math32.Vector2) math32.Vector3
}

// Filter is the texture minification/magnification filter.
type Filter int32

const (
	// Nearest samples the single closest texel.
	Nearest Filter = iota

	// Linear blends the four closest texels bilinearly.
	// This is the default, matching the material sampler configuration.
	Linear
)

// ImageSampler samples a Go image with repeat addressing in both axes.
// The zero Filter value is Nearest; use [NewImageSampler] for the standard
// material configuration (Linear).
type ImageSampler struct {
	Image  image.Image
	Filter Filter
}

// NewImageSampler returns an ImageSampler with Linear filtering,
// the standard material configuration.
func NewImageSampler(img image.Image) *ImageSampler {
	return &ImageSampler{Image: img, Filter: Linear}
}

// SampleRGB returns the filtered RGB value at the given coordinate,
// with each channel in [0, 1].
func (sp *ImageSampler) SampleRGB(tc math32.Vector2) math32.Vector3 {
	b := sp.Image.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return math32.Vector3{}
	}
	if sp.Filter == Nearest {
		x := wrapTexel(int(math32.Floor(tc.X*float32(w))), w)
		y := wrapTexel(int(math32.Floor(tc.Y*float32(h))), h)
		return sp.texel(x, y)
	}
	// texel centers are at (i+0.5)/w
	fx := tc.X*float32(w) - 0.5
	fy := tc.Y*float32(h) - 0.5
	x0 := int(math32.Floor(fx))
	y0 := int(math32.Floor(fy))
	ax := fx - float32(x0)
	ay := fy - float32(y0)
	c00 := sp.texel(wrapTexel(x0, w), wrapTexel(y0, h))
	c10 := sp.texel(wrapTexel(x0+1, w), wrapTexel(y0, h))
	c01 := sp.texel(wrapTexel(x0, w), wrapTexel(y0+1, h))
	c11 := sp.texel(wrapTexel(x0+1, w), wrapTexel(y0+1, h))
	top := c00.Lerp(c10, ax)
	bot := c01.Lerp(c11, ax)
	return top.Lerp(bot, ay)
}

func (sp *ImageSampler) texel(x, y int) math32.Vector3 {
	b := sp.Image.Bounds()
	r, g, bl, _ := sp.Image.At(b.Min.X+x, b.Min.Y+y).RGBA()
	return math32.Vec3(float32(r)/0xffff, float32(g)/0xffff, float32(bl)/0xffff)
}

func wrapTexel(x, n int) int {
	x %= n
	if x < 0 {
		x += n
	}
	return x
}

// Copyright (c) 2026, The XRGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stereo

// Variant is one of the closed set of material shading variants.
// Each variant is a self-consistent vertex+fragment pipeline with a fixed
// attribute and uniform contract; selection happens at pipeline-build time,
// never as a branch inside a shader.
type Variant int32

const (
	// FlatColor passes the per-vertex color through unlit.
	FlatColor Variant = iota

	// NormalDebug visualizes the world-space normal as a color.
	NormalDebug

	// DirectionalLit shades grayscale with the fixed directional light.
	DirectionalLit

	// GradientLit maps the directional light term through a fixed
	// dark-to-warm gradient.
	GradientLit

	// TexturedLit modulates a sampled texture by the directional
	// light term.
	TexturedLit

	VariantsN
)

var variantNames = [VariantsN]string{
	"flatcolor",
	"normaldebug",
	"directionallit",
	"gradientlit",
	"texturedlit",
}

func (v Variant) String() string {
	if v < 0 || v >= VariantsN {
		return "invalid"
	}
	return variantNames[v]
}

// PipelineName is the name of the graphics pipeline (and shader file)
// implementing this variant.
func (v Variant) PipelineName() string { return v.String() }

// Lit reports whether the variant consumes the normal+texcoord vertex
// family. FlatColor is the only variant on the position+color family.
func (v Variant) Lit() bool { return v != FlatColor }

// Textured reports whether the variant samples a bound texture.
func (v Variant) Textured() bool { return v == TexturedLit }

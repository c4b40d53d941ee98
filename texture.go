// Copyright (c) 2026, The XRGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stereo

import "image"

// Texture is a material base-color image, sampled by the TexturedLit
// variant with bilinear filtering and repeat addressing.
type Texture struct {
	Image image.Image
}

// AddTexture adds a texture of the given name. Texture index 0 is the
// built-in white texture; all others follow in added order. All textures
// must be added before Config is called.
func (st *Stereo) AddTexture(name string, img image.Image) *Texture {
	st.Lock()
	defer st.Unlock()
	tx := &Texture{Image: img}
	st.textures.Add(name, tx)
	return tx
}

// configTextures uploads all texture images to their GPU values.
// Must be called under lock, after the system is configured.
func (st *Stereo) configTextures() {
	vars := st.Sys.Vars()
	for i, kv := range st.textures.Order {
		vl := vars.ValueByIndex(TextureGroup, "TexSampler", i)
		vl.SetFromGoImage(kv.Value.Image, 0)
	}
}

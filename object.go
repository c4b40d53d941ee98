// Copyright (c) 2026, The XRGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stereo

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/gpu"
	"cogentcore.org/core/math32"
)

// SetObjectN sets the number of per-draw model matrix slots, allocating
// one dynamic-offset region per slot in the Object uniform buffer.
// Call before Config, or whenever the number of draws changes; after
// Config the slots must be (re)filled with SetObject.
func (st *Stereo) SetObjectN(n int) {
	st.Lock()
	defer st.Unlock()
	st.setObjectN(n)
}

// setObjectN must be called under lock.
func (st *Stereo) setObjectN(n int) {
	st.objectN = n
	vl := st.Sys.Vars().ValueByIndex(ObjectGroup, "Object", 0)
	vl.SetDynamicN(n)
}

// SetObject sets the model matrix for the given per-draw slot, staged in
// the dynamic Object buffer; RenderStart writes all staged slots to the
// GPU in one transfer.
func (st *Stereo) SetObject(idx int, model *math32.Matrix4) error {
	st.Lock()
	defer st.Unlock()
	if idx < 0 || idx >= st.objectN {
		err := fmt.Errorf("stereo.SetObject: index %d out of range %d", idx, st.objectN)
		return errors.Log(err)
	}
	vl := st.Sys.Vars().ValueByIndex(ObjectGroup, "Object", 0)
	gpu.SetDynamicValueFrom(vl, idx, []objectUniform{{Model: *model}})
	return nil
}

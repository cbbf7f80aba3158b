// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "github.com/cpmech/dfngen/inp"

// RunExplicitStep drives one explicit timestep for g: it replays the
// implicit tape entry at g.ExplicitTS (explicit and implicit
// timesteps coincide per gridblock), running nucleation, microfracture
// growth and macrofracture propagation in that order. A no-op once the
// implicit tape is exhausted (the gridblock has nothing left to drive
// explicitly against).
func RunExplicitStep(g *Gridblock, ctrl inp.DFNGenerationControl) error {
	if g.ExplicitTS >= len(g.State.History) {
		return nil
	}
	snap := g.State.History[g.ExplicitTS]

	nucleateStep(g, ctrl, snap.Time, snap.Dt)
	growMicrofractures(g, ctrl, snap.Time, snap.Dt)
	propagateStep(g, ctrl, snap.Time, snap.Dt)

	g.ExplicitTime = snap.Time
	return nil
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/dfngen/ele/dipset"
	"github.com/cpmech/dfngen/inp"
)

func Test_nucleatestep_macrofractures(tst *testing.T) {
	g := newTestGridblock(0)
	var ctrl inp.DFNGenerationControl
	ctrl.SetDefault() // MicrofractureDFNMinimumRadius stays 0: nucleation creates macrofractures directly

	dt := firstNucleationLTime(g) * 2 // window wide enough to cover the first event
	nucleateStep(g, ctrl, dt, dt)

	if len(g.Sets[0].Segments) == 0 {
		tst.Fatalf("expected at least one nucleated segment pair, got none")
	}
	if len(g.Sets[0].Segments)%2 != 0 {
		tst.Errorf("segments must nucleate in IPlus/IMinus pairs, got %d", len(g.Sets[0].Segments))
	}
	for _, seg := range g.Sets[0].Segments {
		if seg.GlobalID < 0 {
			tst.Errorf("nucleated segment must be registered in the global registry")
		}
	}
}

func Test_nucleatestep_microfractures(tst *testing.T) {
	g := newTestGridblock(0)
	var ctrl inp.DFNGenerationControl
	ctrl.SetDefault()
	ctrl.MicrofractureDFNMinimumRadius = 1.0 // below halfH=5, so microfractures are generated first

	dt := firstNucleationLTime(g) * 2
	nucleateStep(g, ctrl, dt, dt)

	if len(g.Sets[0].Microfractures) == 0 {
		tst.Fatalf("expected at least one nucleated microfracture, got none")
	}
	for _, mf := range g.Sets[0].Microfractures {
		if mf.GlobalID < 0 {
			tst.Errorf("nucleated microfracture must be registered in the global registry")
		}
	}
}

func Test_nucleatestep_skips_inactive_dipsets(tst *testing.T) {
	g := newTestGridblock(0)
	g.Sets[0].Dipsets[0].Stage = dipset.NotActivated
	var ctrl inp.DFNGenerationControl
	ctrl.SetDefault()

	dt := firstNucleationLTime(g) * 2
	nucleateStep(g, ctrl, dt, dt)

	if len(g.Sets[0].Segments) != 0 || len(g.Sets[0].Microfractures) != 0 {
		tst.Errorf("a dipset that has not yet activated must not nucleate anything")
	}
}

func Test_nucleatestep_respects_shadow(tst *testing.T) {
	g := newTestGridblock(0)
	var ctrl inp.DFNGenerationControl
	ctrl.SetDefault()

	// fill the whole set with a wide existing segment so every candidate
	// point falls in its stress shadow
	d := g.Sets[0].Dipsets[0]
	_, okBefore := sampleInteriorPoint(g, 0)
	if !okBefore {
		tst.Fatalf("test fixture must support interior sampling")
	}
	dt := firstNucleationLTime(g) * 2
	nucleateStep(g, ctrl, dt, dt) // primes a segment via the dipset being Growing
	before := len(g.Sets[0].Segments)
	if before == 0 {
		tst.Fatalf("fixture must nucleate at least one segment before the shadow is widened")
	}
	d.Waa, d.Was = 1000, 1000 // blanket the whole set in shadow
	nucleateStep(g, ctrl, 2*dt, dt)
	if len(g.Sets[0].Segments) != before {
		tst.Errorf("expected no further nucleation once the set is blanketed in shadow, went from %d to %d", before, len(g.Sets[0].Segments))
	}
}

// firstNucleationLTime returns the LTime the gridblock's sole dipset would
// solve for sequence number 1, used by the tests above to pick a dt window
// guaranteed to cover the first nucleation event regardless of the fixture's
// material parameters.
func firstNucleationLTime(g *Gridblock) float64 {
	d := g.Sets[0].Dipsets[0]
	ltime := d.NucleationLTime(1, g.Volume(), g.Props, g.Geom.MeanThickness())
	if ltime < 0.1 {
		ltime = 0.1
	}
	return ltime
}

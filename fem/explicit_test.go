// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/dfngen/dfn"
	"github.com/cpmech/dfngen/ele/dipset"
	"github.com/cpmech/dfngen/geom"
	"github.com/cpmech/dfngen/inp"
	"github.com/cpmech/dfngen/mdl"
	"github.com/cpmech/dfngen/rnd"
	"github.com/cpmech/gosl/fun"
)

// newTestGridblock builds a single flat, horizontal gridblock with one
// fracture set of one Mode1 dipset, a fresh registry and RNG, and a short
// implicit tape already recorded — the fixture every C8 test below starts
// from.
func newTestGridblock(nsteps int) *Gridblock {
	g := &Gridblock{Tag: 1, Index: 0}
	g.nucleationSeq = make(map[*dipset.FractureDipSet]float64)
	g.RNG = rnd.NewStream(9973).Child(0)
	g.Registry = dfn.NewGlobalRegistry()
	g.Props = mdl.NewMechanicalProperties(fun.Prms{
		&fun.Prm{N: "E", V: 20e9}, &fun.Prm{N: "nu", V: 0.2},
		&fun.Prm{N: "beta", V: 3.0}, &fun.Prm{N: "A", V: 1e-6},
		&fun.Prm{N: "B", V: 1.0}, &fun.Prm{N: "c", V: 1.0}, &fun.Prm{N: "b", V: 3.0},
	})

	sw := geom.PointXYZ{X: 0, Y: 0, Z: -1000}
	nw := geom.PointXYZ{X: 0, Y: 100, Z: -1000}
	ne := geom.PointXYZ{X: 100, Y: 100, Z: -1000}
	se := geom.PointXYZ{X: 100, Y: 0, Z: -1000}
	g.SetCorners(sw, nw, ne, se, 10)

	var ctrl inp.PropagationControl
	ctrl.SetDefault()
	g.SetPropagationControl(ctrl)
	g.ResetFracturesMode(1, 1.0, 1.0, dipset.Mode1, false)
	g.Sets[0].Dipsets[0].Stage = dipset.Growing

	t := 0.0
	dt := 1.0
	for i := 0; i < nsteps; i++ {
		t += dt
		g.State.Advance(t, dt)
	}
	return g
}

func Test_runexplicitstep01(tst *testing.T) {
	g := newTestGridblock(5)
	var ctrl inp.DFNGenerationControl
	ctrl.SetDefault()

	for i := 0; i < 5; i++ {
		if err := RunExplicitStep(g, ctrl); err != nil {
			tst.Fatalf("RunExplicitStep failed at ts=%d: %v", i, err)
		}
	}
	if g.ExplicitTS != 0 {
		tst.Errorf("RunExplicitStep must not itself advance ExplicitTS; that is FractureGrid.GenerateDFN's job")
	}
}

func Test_runexplicitstep_noop_past_tape(tst *testing.T) {
	g := newTestGridblock(1)
	g.ExplicitTS = 5
	var ctrl inp.DFNGenerationControl
	ctrl.SetDefault()
	if err := RunExplicitStep(g, ctrl); err != nil {
		tst.Fatalf("past-tape step must be a no-op, got error: %v", err)
	}
}

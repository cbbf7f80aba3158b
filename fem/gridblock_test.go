// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"testing"

	"github.com/cpmech/dfngen/ele/dipset"
	"github.com/cpmech/dfngen/geom"
	"github.com/cpmech/dfngen/inp"
)

func Test_volume(tst *testing.T) {
	g := newTestGridblock(0)
	want := 100.0 * 100.0 * 10.0
	if got := g.Volume(); math.Abs(got-want) > 1e-6 {
		tst.Errorf("Volume() = %g, want %g", got, want)
	}
}

func Test_resetfractures_biazimuthal(tst *testing.T) {
	g := newTestGridblock(0)
	g.ResetFractures(4, 1.0, 1.0, true, false)
	if len(g.Sets) != 4 {
		tst.Fatalf("expected 4 sets, got %d", len(g.Sets))
	}
	for i, s := range g.Sets {
		if len(s.Dipsets) != 1 {
			tst.Errorf("set %d: expected 1 biazimuthal dipset, got %d", i, len(s.Dipsets))
		}
	}
	if g.Proj == nil {
		tst.Errorf("ResetFractures must install cross-set projection matrices")
	}
}

func Test_resetfractures_includereverse(tst *testing.T) {
	g := newTestGridblock(0)
	g.ResetFractures(2, 1.0, 1.0, false, true)
	for i, s := range g.Sets {
		if len(s.Dipsets) != 2 {
			tst.Errorf("set %d: includeReverse must add the mirrored dipset, got %d dipsets", i, len(s.Dipsets))
		}
	}
}

func Test_resetfracturesmode_singledipset(tst *testing.T) {
	g := newTestGridblock(0)
	g.ResetFracturesMode(3, 1.0, 1.0, dipset.Mode2, false)
	if len(g.Sets) != 3 {
		tst.Fatalf("expected 3 sets, got %d", len(g.Sets))
	}
	for _, s := range g.Sets {
		if len(s.Dipsets) != 1 {
			tst.Errorf("expected exactly 1 dipset per set, got %d", len(s.Dipsets))
		}
		if s.Dipsets[0].Mode != dipset.Mode2 {
			tst.Errorf("dipset mode not threaded through, got %v", s.Dipsets[0].Mode)
		}
	}
}

func Test_resetfractures_panics_on_zero_sets(tst *testing.T) {
	defer func() {
		if recover() == nil {
			tst.Errorf("ResetFractures(0, ...) must panic")
		}
	}()
	g := newTestGridblock(0)
	g.ResetFractures(0, 1.0, 1.0, true, false)
}

func Test_toglobal_tolocal_roundtrip(tst *testing.T) {
	g := newTestGridblock(0)
	p := geom.PointIJK{I: 37.5, J: -12.25, K: 0}
	global := g.ToGlobalForSet(0, p)
	back := g.ToLocalForSet(0, global)
	const tol = 1e-9
	if math.Abs(back.I-p.I) > tol || math.Abs(back.J-p.J) > tol {
		tst.Errorf("roundtrip mismatch: got (%g,%g), want (%g,%g)", back.I, back.J, p.I, p.J)
	}
}

func Test_alldipsets(tst *testing.T) {
	g := newTestGridblock(0)
	g.ResetFractures(2, 1.0, 1.0, false, true)
	all := g.AllDipsets()
	if len(all) != 2 {
		tst.Fatalf("expected 2 sets, got %d", len(all))
	}
	for i, s := range all {
		if len(s) != 2 {
			tst.Errorf("set %d: expected 2 dipsets, got %d", i, len(s))
		}
	}
}

func Test_allactivated(tst *testing.T) {
	g := newTestGridblock(0)
	if g.AllActivated() {
		tst.Errorf("a freshly Growing dipset must not report AllActivated")
	}
	g.Sets[0].Dipsets[0].Stage = dipset.Deactivated
	if !g.AllActivated() {
		tst.Errorf("once every dipset is Deactivated, AllActivated must be true")
	}
}

func Test_setpropagationcontrol_fills_defaults(tst *testing.T) {
	g := &Gridblock{}
	g.SetPropagationControl(inp.PropagationControl{})
	if g.Control.MaxTimesteps == 0 {
		tst.Errorf("SetPropagationControl must apply SetDefault()")
	}
}

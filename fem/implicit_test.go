// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"testing"

	"github.com/cpmech/dfngen/inp"
	"github.com/cpmech/dfngen/tsr"
)

// Test_runimplicit_nostrainrelaxation checks that across an implicit run
// with NoStrainRelaxation, ε_tot(t) == applied strain rate * t.
func Test_runimplicit_nostrainrelaxation(tst *testing.T) {
	g := newTestGridblock(0)
	g.Sets = nil // strain integration does not depend on fracture sets

	rateXX := 1e-9
	duration := 100.0
	g.Control.DeformationEpisodes = []inp.DeformationEpisode{
		{Duration: duration, StrainRateLoaded: true, AppliedStrainRateXX: rateXX},
	}
	g.Control.MaxTimesteps = 10

	if err := RunImplicit(g); err != nil {
		tst.Fatalf("RunImplicit failed: %v", err)
	}

	want := rateXX * duration
	got := g.State.EpsTot.Get(tsr.XX)
	if math.Abs(got-want) > 1e-15 {
		tst.Errorf("EpsTot.XX = %g, want %g", got, want)
	}
	if len(g.State.History) == 0 {
		tst.Fatalf("expected at least one tape entry")
	}
	last := g.State.History[len(g.State.History)-1]
	if math.Abs(last.Time-duration) > 1e-9 {
		tst.Errorf("tape's last entry time = %g, want %g", last.Time, duration)
	}
}

func Test_runimplicit_timestep_limit(tst *testing.T) {
	g := newTestGridblock(0)
	g.Sets = nil
	g.Control.DeformationEpisodes = []inp.DeformationEpisode{
		{Duration: 100.0, StrainRateLoaded: true, AppliedStrainRateXX: 1e-9},
	}
	g.Control.MaxTimesteps = 2
	g.Control.MaxTimestepDuration = 1.0 // forces many small steps, so the low limit is hit first

	err := RunImplicit(g)
	if err == nil {
		tst.Fatalf("expected a TimestepLimitHit error")
	}
	if _, ok := err.(*TimestepLimitHit); !ok {
		tst.Errorf("expected *TimestepLimitHit, got %T", err)
	}
}

func Test_runimplicit_reappendable(tst *testing.T) {
	g := newTestGridblock(0)
	g.Sets = nil
	g.Control.MaxTimesteps = 10
	g.Control.DeformationEpisodes = []inp.DeformationEpisode{
		{Duration: 10.0, StrainRateLoaded: true, AppliedStrainRateXX: 1e-9},
	}
	if err := RunImplicit(g); err != nil {
		tst.Fatalf("first RunImplicit failed: %v", err)
	}
	firstLen := len(g.State.History)

	g.Control.DeformationEpisodes = []inp.DeformationEpisode{
		{Duration: 5.0, StrainRateLoaded: true, AppliedStrainRateXX: 2e-9},
	}
	if err := RunImplicit(g); err != nil {
		tst.Fatalf("second RunImplicit failed: %v", err)
	}
	if len(g.State.History) <= firstLen {
		tst.Errorf("second call must append further tape entries, had %d, now %d", firstLen, len(g.State.History))
	}
	last := g.State.History[len(g.State.History)-1]
	if math.Abs(last.Time-15.0) > 1e-9 {
		tst.Errorf("appended episode must continue from the prior episode's end time, got last.Time=%g", last.Time)
	}
}

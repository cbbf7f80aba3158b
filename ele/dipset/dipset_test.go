// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dipset

import (
	"math"
	"testing"

	"github.com/cpmech/dfngen/mdl"
	"github.com/cpmech/dfngen/tsr"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

func testProps(b float64) *mdl.MechanicalProperties {
	prms := fun.Prms{
		&fun.Prm{N: "E", V: 30e9},
		&fun.Prm{N: "nu", V: 0.25},
		&fun.Prm{N: "mu", V: 0.6},
		&fun.Prm{N: "A", V: 1e-20},
		&fun.Prm{N: "B", V: 1.0},
		&fun.Prm{N: "c", V: 1.0},
		&fun.Prm{N: "b", V: b},
	}
	return mdl.NewMechanicalProperties(prms)
}

func Test_dipset_construction01(tst *testing.T) {

	chk.PrintTitle("dipset_construction01")

	h := 10.0
	d := NewFractureDipSet(math.Pi/2, Mode1, JPlus, 1, 0, 2.0, 1.0, h)
	io.Pforan("d.CapB = %v\n", d.CapB)
	chk.Scalar(tst, "CapB", 1e-9, d.CapB, 2.0*h*math.Pow(h, 1.0))
	chk.Scalar(tst, "TotalP30", 1e-15, d.TotalP30(), 0)
	if d.Stage != NotActivated {
		tst.Errorf("new dipset must start NotActivated")
	}
}

// Test_drivingstress_mode1 checks that a vertical fracture (dip=pi/2, normal
// along J) under a pure sigma_JJ tension resolves its Mode1 driving stress
// to exactly sigma_JJ.
func Test_drivingstress_mode1(tst *testing.T) {

	chk.PrintTitle("drivingstress_mode1")

	props := testProps(2.0)
	d := NewFractureDipSet(math.Pi/2, Mode1, JPlus, 1, 0, 2.0, 1.0, 10.0)

	var sig tsr.Tensor2S
	sig.Set(tsr.YY, 5e6)
	sd := d.DrivingStress(sig, props)
	io.Pforan("sigma_d (mode1) = %v\n", sd)
	chk.Scalar(tst, "sigma_d", 1e-6, sd, 5e6)
}

// Test_drivingstress_mode2 checks that the Mode2/3 driving stress is
// resolved shear minus friction times resolved normal.
func Test_drivingstress_mode2(tst *testing.T) {

	chk.PrintTitle("drivingstress_mode2")

	props := testProps(2.0)
	d := NewFractureDipSet(math.Pi/2, Mode2, JPlus, 1, 0, 2.0, 1.0, 10.0)

	var sig tsr.Tensor2S
	sig.Set(tsr.XY, 3e6)
	sd := d.DrivingStress(sig, props)
	io.Pforan("sigma_d (mode2) = %v\n", sd)
	if sd <= 0 {
		tst.Errorf("pure shear on a mode2 set should drive propagation: got %v", sd)
	}
}

func Test_propagationrate01(tst *testing.T) {

	chk.PrintTitle("propagationrate01")

	props := testProps(2.0)
	d := NewFractureDipSet(math.Pi/2, Mode1, JPlus, 1, 0, 2.0, 1.0, 10.0)

	r0 := d.PropagationRate(0, props, 10.0)
	chk.Scalar(tst, "rate(sigD<=0)", 1e-15, r0, 0)

	r1 := d.PropagationRate(1e6, props, 10.0)
	r2 := d.PropagationRate(2e6, props, 10.0)
	io.Pforan("rate(1e6)=%v rate(2e6)=%v\n", r1, r2)
	if r2 <= r1 {
		tst.Errorf("propagation rate must increase with driving stress: r1=%v r2=%v", r1, r2)
	}
}

// Test_nucleationltime_b2 checks the closed-form b==2 branch is monotonic:
// a larger target sequence number N requires a larger accumulated clock.
func Test_nucleationltime_b2(tst *testing.T) {

	chk.PrintTitle("nucleationltime_b2")

	props := testProps(2.0)
	d := NewFractureDipSet(math.Pi/2, Mode1, JPlus, 1, 0, 1.0, 1.0, 10.0)

	volume := 1000.0
	l1 := d.NucleationLTime(1.0, volume, props, 10.0)
	l2 := d.NucleationLTime(2.0, volume, props, 10.0)
	io.Pforan("LTime(N=1)=%v LTime(N=2)=%v\n", l1, l2)
	if l2 <= l1 {
		tst.Errorf("nucleation LTime must increase with N: l1=%v l2=%v", l1, l2)
	}
}

// Test_nucleationltime_general exercises the b!=2 branch for monotonicity.
func Test_nucleationltime_general(tst *testing.T) {

	chk.PrintTitle("nucleationltime_general")

	props := testProps(3.0)
	d := NewFractureDipSet(math.Pi/2, Mode1, JPlus, 1, 0, 1.0, 1.0, 10.0)

	volume := 1000.0
	l1 := d.NucleationLTime(1.0, volume, props, 10.0)
	l2 := d.NucleationLTime(5.0, volume, props, 10.0)
	io.Pforan("LTime(N=1)=%v LTime(N=5)=%v\n", l1, l2)
	if l2 <= l1 {
		tst.Errorf("nucleation LTime must increase with N: l1=%v l2=%v", l1, l2)
	}
}

func Test_evolutionstage01(tst *testing.T) {

	chk.PrintTitle("evolutionstage01")

	d := NewFractureDipSet(math.Pi/2, Mode1, JPlus, 1, 0, 1.0, 1.0, 10.0)
	th := DeactivationThresholds{
		ActiveTotalMFP30Ratio: 0.1,
		MinimumClearZoneVolume: 1.0,
		ResidualActivityCutoff: 0.05,
	}

	d.UpdateEvolutionStage(0, 1, 10, 1, th)
	if d.Stage != NotActivated {
		tst.Errorf("zero driving stress must not activate the dipset")
	}

	d.UpdateEvolutionStage(1e6, 1, 10, 1, th)
	if d.Stage != Growing {
		tst.Errorf("positive driving stress must activate the dipset: got %v", d.Stage)
	}

	d.UpdateEvolutionStage(1e6, 0.05, 10, 1, th)
	if d.Stage != ResidualActivity {
		tst.Errorf("falling below the active-total ratio must demote to ResidualActivity: got %v", d.Stage)
	}

	d.UpdateEvolutionStage(1e6, 0.05, 10, 0.01, th)
	if d.Stage != Deactivated {
		tst.Errorf("falling below the residual-activity cutoff must deactivate: got %v", d.Stage)
	}

	d.ReactivateIfSignFlipped(1e6, -1e6)
	if d.Stage != NotActivated {
		tst.Errorf("a sign flip across an episode boundary must reset to NotActivated: got %v", d.Stage)
	}
}

func Test_accumulategamma01(tst *testing.T) {

	chk.PrintTitle("accumulategamma01")

	props := testProps(2.0)
	d := NewFractureDipSet(math.Pi/2, Mode1, JPlus, 1, 0, 1.0, 1.0, 10.0)

	d.AccumulateGamma(-1, 1, 10, props) // no-op, non-positive driving stress
	chk.Scalar(tst, "CumGamma after no-op", 1e-15, d.CumGamma, 0)

	d.AccumulateGamma(2, 1, 10, props)
	chk.Scalar(tst, "CumGamma", 1e-9, d.CumGamma, math.Pow(2, props.AExponent))
	chk.Scalar(tst, "CumHGamma", 1e-9, d.CumHGamma, 10*math.Pow(2, props.AExponent))
}

// Test_addmacrofractures01 checks the monotone-non-decreasing total
// invariant across a sequence of additions and a deactivation.
func Test_addmacrofractures01(tst *testing.T) {

	chk.PrintTitle("addmacrofractures01")

	d := NewFractureDipSet(math.Pi/2, Mode1, JPlus, 1, 0, 1.0, 1.0, 10.0)

	d.AddMacrofractures(3, 5.0, 1e-4, 1000.0)
	total1 := d.TotalP30()
	chk.Scalar(tst, "P30Active after first add", 1e-15, d.P30Active, 3)
	if d.P32Total <= 0 || d.P33Total <= 0 {
		tst.Errorf("P32Total/P33Total must be positive after a macrofracture add")
	}

	d.AddMacrofractures(2, 8.0, 1e-4, 1000.0)
	total2 := d.TotalP30()
	if total2 < total1 {
		tst.Errorf("total P30 must be monotone non-decreasing: total1=%v total2=%v", total1, total2)
	}

	d.Deactivate(1, true)
	total3 := d.TotalP30()
	io.Pforan("total1=%v total2=%v total3=%v\n", total1, total2, total3)
	chk.Scalar(tst, "total unchanged by deactivation", 1e-9, total3, total2)
	chk.Scalar(tst, "P30StaticI after deactivation", 1e-9, d.P30StaticI, 1)

	mean := d.MeanHalfLength()
	chk.Scalar(tst, "mean half-length", 1e-9, mean, (5.0+8.0)/2.0)
}

func Test_aperture01(tst *testing.T) {

	chk.PrintTitle("aperture01")

	u := Aperture(Uniform, 1e-4, 0, 0, BartonBandisParams{})
	chk.Scalar(tst, "uniform aperture", 1e-15, u, 1e-4)

	sd := Aperture(SizeDependent, 1e-4, 25.0, 0, BartonBandisParams{})
	chk.Scalar(tst, "size-dependent aperture", 1e-12, sd, 1e-4*5.0)

	bb := BartonBandisParams{JRC: 10, JCS: 100e6, Sigc: 0}
	a0 := Aperture(BartonBandis, 0, 0, 0, bb)
	bb.Sigc = 1e6
	a1 := Aperture(BartonBandis, 0, 0, 0, bb)
	io.Pforan("barton-bandis a0=%v a1=%v\n", a0, a1)
	if a1 >= a0 {
		tst.Errorf("joint closure must reduce aperture under increasing normal stress")
	}
}

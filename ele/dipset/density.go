// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dipset

import (
	"math"

	"github.com/cpmech/dfngen/mdl"
)

// AccumulateGamma integrates the driving-stress clock that nucleation times
// are drawn from: Cum_Γ += σ_d^b·dt, and the layer-thickness-weighted twin
// Cum_hΓ += h·σ_d^b·dt. Non-positive driving stress contributes nothing (no
// growth while compressive/unloaded).
func (d *FractureDipSet) AccumulateGamma(sigD, dt, h float64, props *mdl.MechanicalProperties) {
	if sigD <= 0 {
		return
	}
	gam := math.Pow(sigD, props.AExponent) * dt
	d.CumGamma += gam
	d.CumHGamma += h * gam
}

// AddMicrofractures records newly nucleated microfractures (P30 only; they
// do not yet contribute area/volume density until they convert to
// macrofractures at r=h/2).
func (d *FractureDipSet) AddMicrofractures(count float64) {
	d.P30Active += count
}

// AddMacrofractures records newly nucleated (or microfracture-converted)
// macrofracture half-lengths, updating P30/P32/P33 consistently: each
// macrofracture is modelled as a thin rectangular sheet of height h and
// along-strike length 2*halfLength, so its contribution to the
// area-density P32 is 2*halfLength*h per unit volume, and to the
// volumetric-aperture density P33 is that area contribution times the
// current mean aperture.
func (d *FractureDipSet) AddMacrofractures(count, halfLength, aperture, volume float64) {
	if volume <= 0 || count <= 0 {
		return
	}
	d.P30Active += count
	dp32 := count * 2 * halfLength / volume
	d.P32Active += dp32
	d.P32Total += dp32
	dp33 := dp32 * aperture
	d.P33Active += dp33
	d.P33Total += dp33
	d.MacrofractureHalfLen = append(d.MacrofractureHalfLen, halfLength)
}

// Deactivate moves population from the active to the relevant static
// sub-population (static-I if terminated against set I, static-J against
// set J) without changing the total — preserving the monotone-total
// invariant of the accumulated population.
func (d *FractureDipSet) Deactivate(count float64, staticAgainstI bool) {
	if count > d.P30Active {
		count = d.P30Active
	}
	d.P30Active -= count
	if staticAgainstI {
		d.P30StaticI += count
	} else {
		d.P30StaticJ += count
	}
}

// MeanHalfLength returns the arithmetic mean of the recorded macrofracture
// half-length distribution, used by the implicit driver's density update
// and its aperture computation.
func (d *FractureDipSet) MeanHalfLength() float64 {
	if len(d.MacrofractureHalfLen) == 0 {
		return 0
	}
	var s float64
	for _, v := range d.MacrofractureHalfLen {
		s += v
	}
	return s / float64(len(d.MacrofractureHalfLen))
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dipset

import "math"

// ApertureControl selects the aperture/porosity model; its four variants
// are all derived quantities, never state.
type ApertureControl int

const (
	Uniform ApertureControl = iota
	SizeDependent
	Dynamic
	BartonBandis
)

// BartonBandisParams holds the joint-roughness/wall-strength parameters used
// by the BartonBandis aperture model
type BartonBandisParams struct {
	JRC  float64 // joint roughness coefficient
	JCS  float64 // joint wall compressive strength
	Sigc float64 // normal stress across the joint (compressive positive)
}

// Aperture returns the derived fracture aperture for the given control mode.
// uniformValue is the user-supplied constant used by Uniform; halfLength is
// the fracture's own half-length (SizeDependent); sigD is the current
// driving stress (Dynamic — aperture tracks how "open" the fracture
// currently is relative to its subcritical growth envelope).
func Aperture(mode ApertureControl, uniformValue, halfLength, sigD float64, bb BartonBandisParams) float64 {
	switch mode {
	case Uniform:
		return uniformValue
	case SizeDependent:
		return uniformValue * math.Sqrt(math.Max(0, halfLength))
	case Dynamic:
		if sigD <= 0 {
			return 0
		}
		return uniformValue * math.Min(1, sigD)
	case BartonBandis:
		return bartonBandisAperture(bb)
	}
	return uniformValue
}

// bartonBandisAperture implements the empirical Barton-Bandis joint closure
// relation: mechanical aperture reduces from its maximum under increasing
// effective normal stress, e0/(1 + 9*sigma_n/(JRC*(0.04*JCS - 0.2))) for
// sigma_n > 0, clamped at the maximum (zero stress) aperture e0 derived from
// JRC.
func bartonBandisAperture(p BartonBandisParams) float64 {
	e0 := p.JRC / 5.0 // empirical maximum-aperture proxy from roughness
	if p.Sigc <= 0 {
		return e0
	}
	denom := p.JRC * (0.04*p.JCS - 0.2)
	if denom <= 0 {
		return e0
	}
	closure := e0 / (1 + 9*p.Sigc/denom)
	if closure < 0 {
		return 0
	}
	return closure
}

// Porosity returns the fracture porosity contribution for a dipset: the
// volumetric-aperture density P33 already IS the porosity, since aperture
// and porosity are both reported derived quantities rather than state —
// this helper exists purely to name the conversion explicitly at call sites
// in package out.
func (d *FractureDipSet) Porosity() float64 { return d.P33Total }

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mdl implements the per-gridblock mechanical properties and
// current stress-strain state, grounded on the
// parameter-record and state-value idiom of msolid/elasticity.go and
// msolid/state.go.
package mdl

import (
	"math"

	"github.com/cpmech/dfngen/tsr"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/utl"
)

// MechanicalProperties holds the elastic and thermo-poro-elastic parameters
// of one gridblock's rock, plus the fracture-growth law parameters shared by
// every dipset in the block. Immutable during deformation episodes; built
// once at gridblock construction.
type MechanicalProperties struct {
	E, Nu float64 // Young's modulus, Poisson's ratio
	Biot  float64 // Biot coefficient
	K     float64 // bulk modulus
	Alpha float64 // thermal-expansion coefficient

	Friction float64 // μ
	Cohesion float64

	Beta float64 // subcritical-growth exponent β
	A    float64 // subcritical-growth pre-factor A

	InitDensityB float64 // B, initial microfracture density law prefactor
	InitDensityC float64 // c, initial microfracture density law exponent

	AExponent float64 // b; b==2 is the logarithmic special case

	RelaxTimeRock     float64 // t_r
	RelaxTimeFracture float64 // t_f

	sr tsr.Tensor4 // derived intact-rock compliance, cached
}

// NewMechanicalProperties builds properties from a parameter record
// (fun.Prms, per msolid's SmallElasticity.Init idiom) and derives the
// intact-rock compliance tensor S_r.
func NewMechanicalProperties(prms fun.Prms) *MechanicalProperties {
	o := new(MechanicalProperties)
	hasE, hasNu := false, false
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E, hasE = p.V, true
		case "nu":
			o.Nu, hasNu = p.V, true
		case "biot":
			o.Biot = p.V
		case "K":
			o.K = p.V
		case "alpha":
			o.Alpha = p.V
		case "mu":
			o.Friction = p.V
		case "cohesion":
			o.Cohesion = p.V
		case "beta":
			o.Beta = p.V
		case "A":
			o.A = p.V
		case "B":
			o.InitDensityB = p.V
		case "c":
			o.InitDensityC = p.V
		case "b":
			o.AExponent = p.V
		case "tr":
			o.RelaxTimeRock = p.V
		case "tf":
			o.RelaxTimeFracture = p.V
		}
	}
	if !hasE || !hasNu {
		utl.Panic("mdl: MechanicalProperties requires E and nu")
	}
	if o.K == 0 {
		o.K = o.E / (3.0 * (1.0 - 2.0*o.Nu))
	}
	o.sr = tsr.IsotropicCompliance(o.E, o.Nu)
	return o
}

// Compliance returns the intact-rock compliance tensor S_r
func (o *MechanicalProperties) Compliance() tsr.Tensor4 { return o.sr }

// Beta2Special reports whether b==2, the special case that switches several
// formulae from power-law to logarithmic.
func (o *MechanicalProperties) Beta2Special() bool { return o.AExponent == 2 }

// SubgrowthBeta returns β = b/(b-2) used throughout the nucleation and
// propagation-distance formulae for the b≠2 branch. Panics if called in the
// b==2 special case (callers must branch on Beta2Special first).
func (o *MechanicalProperties) SubgrowthBeta() float64 {
	if o.Beta2Special() {
		utl.Panic("mdl: SubgrowthBeta is undefined for b==2 (use the logarithmic form)")
	}
	return o.AExponent / (o.AExponent - 2.0)
}

// InitialMicrofractureDensity returns the initial microfracture density
// with radius >= r: B*V*r^-c.
func (o *MechanicalProperties) InitialMicrofractureDensity(volume, r float64) float64 {
	if r <= 0 {
		return math.Inf(1)
	}
	return o.InitDensityB * volume * math.Pow(r, -o.InitDensityC)
}

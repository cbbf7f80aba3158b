// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dipset

import (
	"math"

	"github.com/cpmech/dfngen/mdl"
	"github.com/cpmech/dfngen/tsr"
	"github.com/cpmech/gosl/num"
)

// DrivingStress projects the current effective stress tensor onto the
// dipset's slip system: the resolved normal stress for Mode1, or the
// resolved shear minus friction*normal for Modes 2 and 3.
func (d *FractureDipSet) DrivingStress(sigEff tsr.Tensor2S, props *mdl.MechanicalProperties) float64 {
	n := d.normal()
	sn := resolvedNormal(sigEff, n)
	switch d.Mode {
	case Mode1:
		return sn
	default:
		tau := resolvedShear(sigEff, n, d.SlipVector())
		return tau - props.Friction*sn
	}
}

// normal returns the fracture plane's unit normal in the IJK frame
func (d *FractureDipSet) normal() tsr.VectorXYZ {
	return tsr.NewVectorXYZ(0, math.Sin(d.Dip), math.Cos(d.Dip))
}

// resolvedNormal returns n.sigma.n
func resolvedNormal(sig tsr.Tensor2S, n tsr.VectorXYZ) float64 {
	var s float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			s += n.V[i] * sig.At(i, j) * n.V[j]
		}
	}
	return s
}

// resolvedShear returns the magnitude of the shear traction on the plane
// with normal n, projected onto the slip direction t
func resolvedShear(sig tsr.Tensor2S, n, t tsr.VectorXYZ) float64 {
	var trac tsr.VectorXYZ
	for i := 0; i < 3; i++ {
		var s float64
		for j := 0; j < 3; j++ {
			s += sig.At(i, j) * n.V[j]
		}
		trac.V[i] = s
	}
	return trac.Dot(t.Unit())
}

// PropagationRate returns the subcritical propagation rate of a
// macrofracture tip: 2*A*sigma_d^b * (h/2)^(b/2). Returns 0 for a
// non-positive driving stress (no propagation).
func (d *FractureDipSet) PropagationRate(sigD float64, props *mdl.MechanicalProperties, h float64) float64 {
	if sigD <= 0 {
		return 0
	}
	return 2 * props.A * math.Pow(sigD, props.AExponent) * math.Pow(h/2, props.AExponent/2)
}

// nucleationResidual holds the fixed quantities of the nucleation density
// law's implicit equation so its residual/Jacobian can be handed to
// num.NlSolver, the same Newton driver ana/pressurised_cylinder.go reaches
// for whenever a nonlinear scalar relation has no robust closed form worth
// hand-deriving (its elastic/plastic boundary solve follows the identical
// Init(ndim, ffcn, nil, jfcn, ...)/Solve shape).
type nucleationResidual struct {
	dipset      *FractureDipSet
	props       *mdl.MechanicalProperties
	n, volume   float64
	beta, halfH float64
}

func (r nucleationResidual) denom() float64 {
	return r.beta * math.Pow(r.halfH, r.props.AExponent/2)
}

// fx is N - B*V*(CumΓ + LTime/denom)^(-β*c), the root sought over LTime.
func (r nucleationResidual) fx(fx, X []float64) (err error) {
	gamma := r.dipset.CumGamma + X[0]/r.denom()
	fx[0] = r.n - r.dipset.CapBOrB(r.props)*r.volume*math.Pow(gamma, -r.beta*r.props.InitDensityC)
	return
}

// dfdx is the analytic derivative of fx with respect to LTime.
func (r nucleationResidual) dfdx(dfdx [][]float64, X []float64) (err error) {
	denom := r.denom()
	gamma := r.dipset.CumGamma + X[0]/denom
	exp := -r.beta*r.props.InitDensityC - 1
	dfdx[0][0] = r.props.InitDensityC * r.dipset.CapBOrB(r.props) * r.volume * math.Pow(gamma, exp) / denom
	return
}

// NucleationLTime solves N = B*V*(CumΓ + LTime/(β*(h/2)^(b/2)))^(-β*c) for
// LTime given the target sequence number N. The b==2 special case is
// exactly invertible (a logarithm), so it keeps the closed form; the
// general case is monotonic but not worth a hand-derived inverse, so it is
// solved with a Newton step via num.NlSolver, seeded from the algebraic
// inverse of the case it is closest to.
func (d *FractureDipSet) NucleationLTime(n, volume float64, props *mdl.MechanicalProperties, h float64) float64 {
	halfH := h / 2
	if props.Beta2Special() {
		// N = B*V*exp(-c*(CumΓ + LTime/halfH)) => LTime = halfH*(ln(B*V/N)/c - CumΓ)
		return halfH * (math.Log(d.CapBOrB(props)*volume/n)/props.InitDensityC - d.CumGamma)
	}
	beta := props.SubgrowthBeta()
	scale := beta * math.Pow(halfH, props.AExponent/2)
	guess := scale * (math.Pow(n/(props.InitDensityB*volume), -1.0/(beta*props.InitDensityC)) - d.CumGamma)

	r := nucleationResidual{dipset: d, props: props, n: n, volume: volume, beta: beta, halfH: halfH}
	var nls num.NlSolver
	defer nls.Clean()
	Res := []float64{guess}
	nls.Init(1, r.fx, nil, r.dfdx, true, false, nil)
	nls.Solve(Res, true)
	return Res[0]
}

// CapBOrB returns the B coefficient to use in the density law; kept as a
// seam so a dipset-specific B (set at construction) takes precedence over
// the parent MechanicalProperties' default B.
func (d *FractureDipSet) CapBOrB(props *mdl.MechanicalProperties) float64 {
	if d.B != 0 {
		return d.B
	}
	return props.InitDensityB
}

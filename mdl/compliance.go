// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import "github.com/cpmech/dfngen/tsr"

// EffectiveCompliance selects and builds the scenario's effective
// compliance: EvenlyDistributedStress sums the
// intact-rock compliance with each fracture set's own compliance
// contribution (S_b_eff); StressShadow uses the isotropic intact-rock
// compliance alone, since in that scenario the fractures' influence is
// carried entirely through the stress-shadow bookkeeping rather than
// through a softened bulk compliance.
func EffectiveCompliance(mode FractureDistributionMode, intact tsr.Tensor4, perSet []tsr.Tensor4) tsr.Tensor4 {
	switch mode {
	case StressShadow, DuctileBoundary:
		return intact
	default: // EvenlyDistributedStress
		c := intact
		for _, s := range perSet {
			c = c.Add(s)
		}
		return c
	}
}

// RelaxApplied computes ε_dashed from the applied strain rate per the
// three relaxation models. epsNonCompact is the current
// non-compactional elastic strain (ε_non_comp); sFOverSbEff is S_F/S_b_eff
// for the fracture-only model, pre-divided per component where meaningful.
func RelaxApplied(model StrainRelaxationModel, applied, epsNonCompact tsr.Tensor2S, tr, tf float64, sFOverSbEff tsr.Tensor2S) tsr.Tensor2S {
	switch model {
	case NoStrainRelaxation:
		return applied
	case UniformStrainRelaxation:
		return applied.Sub(epsNonCompact.Scale(1.0 / tr))
	case FractureOnlyStrainRelaxation:
		correction := sFOverSbEff.Mul(epsNonCompact).Scale(1.0 / tf)
		return applied.Sub(correction)
	}
	return applied
}

// SnapRateToZero applies a rounding guard: if a strain
// component equals its equilibrium value within float precision, its rate
// is snapped to exactly zero rather than left as rounding noise.
func SnapRateToZero(rate, current, equilibrium tsr.Tensor2S) tsr.Tensor2S {
	r := rate
	for _, c := range tsr.Tensor2SComponents {
		if current.Get(c) == equilibrium.Get(c) {
			r.Set(c, 0)
		}
	}
	return r
}

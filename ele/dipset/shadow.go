// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dipset

// DeactivationThresholds bundles the cutoffs that drive the evolution-stage
// state machine; supplied by inp.PropagationControl.
type DeactivationThresholds struct {
	HistoricMFP33TerminationRatio float64 // carried with the thresholds; UpdateEvolutionStage does not read it
	ActiveTotalMFP30Ratio         float64 // Growing -> ResidualActivity trigger
	MinimumClearZoneVolume        float64
	ResidualActivityCutoff        float64 // ResidualActivity -> Deactivated trigger
}

// UpdateStressShadowWidths recomputes Waa (azimuthal/opening contribution)
// and Was (strike-slip shear contribution) from the dipset's slip vector,
// aperture and p32; the driving stress is not used. aperture is the current mean fracture
// aperture (a derived quantity); p32 is this dipset's current P32.
func (d *FractureDipSet) UpdateStressShadowWidths(aperture, p32 float64) {
	slip := d.SlipVector()
	normalComp := slip.V[1] // J component: opening across the set-perpendicular direction
	shearComp := slip.V[0]  // I component: strike-slip
	d.Waa = aperture * absf(normalComp) * p32
	d.Was = aperture * absf(shearComp) * p32
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// UpdateEvolutionStage advances the dipset's lifecycle marker:
// NotActivated -> Growing when sigD first becomes positive; Growing ->
// ResidualActivity when out-competed (activeTotalRatio or clearZoneVolume
// fall below the configured thresholds); ResidualActivity -> Deactivated
// when the residual-activity fraction itself falls below its cutoff.
// Transitions are monotone: Deactivated is terminal within a deformation
// episode. A new episode may reactivate via the NotActivated path if sigD's
// sign flips again — ReactivateIfSignFlipped performs that reset; the
// implicit driver does not call it.
func (d *FractureDipSet) UpdateEvolutionStage(sigD, activeTotalRatio, clearZoneVolume, residualActivityFraction float64, th DeactivationThresholds) {
	switch d.Stage {
	case NotActivated:
		if sigD > 0 {
			d.Stage = Growing
		}
	case Growing:
		if activeTotalRatio < th.ActiveTotalMFP30Ratio || clearZoneVolume < th.MinimumClearZoneVolume {
			d.Stage = ResidualActivity
		}
	case ResidualActivity:
		if residualActivityFraction < th.ResidualActivityCutoff {
			d.Stage = Deactivated
		}
	case Deactivated:
		// terminal within this episode
	}
}

// ReactivateIfSignFlipped implements the episode-boundary reactivation path:
// a new deformation episode may bring a Deactivated dipset back to
// NotActivated if the sign of the driving stress has flipped relative to
// when it deactivated.
func (d *FractureDipSet) ReactivateIfSignFlipped(lastSigD, newSigD float64) {
	if d.Stage == Deactivated && lastSigD != 0 && newSigD != 0 {
		if (lastSigD > 0) != (newSigD > 0) {
			d.Stage = NotActivated
		}
	}
}

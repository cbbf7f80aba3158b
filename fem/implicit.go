// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/dfngen/coupling"
	"github.com/cpmech/dfngen/ele/dipset"
	"github.com/cpmech/dfngen/inp"
	"github.com/cpmech/dfngen/mdl"
	"github.com/cpmech/dfngen/tsr"
	"github.com/cpmech/gosl/io"
)

// TimestepLimitHit is returned by RunImplicit when an episode exhausts
// MaxTimesteps before reaching its end time.
type TimestepLimitHit struct {
	Episode, Timestep int
}

func (e *TimestepLimitHit) Error() string {
	return io.Sf("fem: maxTimesteps reached in episode %d at timestep %d", e.Episode, e.Timestep)
}

// RunImplicit runs the implicit engine (C7) over every configured
// deformation episode in order, appending to the gridblock's state and
// dipset tapes. Re-callable: a later call appends further
// episodes rather than restarting from lithostatic.
func RunImplicit(g *Gridblock) error {
	t := 0.0
	if n := len(g.State.History); n > 0 {
		t = g.State.History[n-1].Time
	}
	for epIdx, ep := range g.Control.DeformationEpisodes {
		tEnd := t + ep.Duration
		if ep.OpenEnded() {
			tEnd = math.Inf(1)
		}
		applyEpisodeRates(g, ep)

		ts := 0
		for t < tEnd {
			if ep.RunUntilDeactivation && g.AllActivated() {
				break
			}
			if ts >= g.Control.MaxTimesteps {
				return &TimestepLimitHit{Episode: epIdx, Timestep: ts}
			}

			dt := chooseTimestep(g, tEnd-t)
			t += dt

			stepOnce(g, ep, t, dt)

			ts++
			if math.IsInf(tEnd, 1) && g.AllActivated() {
				break
			}
		}
	}
	return nil
}

// applyEpisodeRates installs this episode's strain-rate or stress-rate
// load into the gridblock's state.
func applyEpisodeRates(g *Gridblock, ep inp.DeformationEpisode) {
	if ep.StrainRateLoaded {
		g.State.EpsTotRate = tsr.NewTensor2S(ep.AppliedStrainRateXX, ep.AppliedStrainRateYY, 0, 0, 0, 0)
	} else {
		g.State.SigEffRate = tsr.NewTensor2S(0, 0, ep.AppliedStressRateZZ*ep.StressArchingFactor, 0, 0, 0)
	}
}

// chooseTimestep picks Δt as the minimum of the
// time remaining in the episode, the user-configured maximum, and the
// per-dipset optimal Δt bounding ΔMFP33 growth to MaxTSMFP33Increase.
func chooseTimestep(g *Gridblock, remaining float64) float64 {
	dt := remaining
	if g.Control.MaxTimestepDuration > 0 && g.Control.MaxTimestepDuration < dt {
		dt = g.Control.MaxTimestepDuration
	}
	if g.Control.MaxTSMFP33Increase > 0 {
		for _, s := range g.Sets {
			for _, d := range s.Dipsets {
				sigD := d.DrivingStress(g.State.SigEff, g.Props)
				if sigD <= 0 {
					continue
				}
				rate := d.PropagationRate(sigD, g.Props, g.Geom.MeanThickness())
				if rate <= 0 {
					continue
				}
				optimal := g.Control.MaxTSMFP33Increase / rate
				if optimal < dt {
					dt = optimal
				}
			}
		}
	}
	if dt <= 0 || math.IsInf(dt, 1) {
		dt = 1
	}
	return dt
}

// stepOnce runs one implicit timestep: resolve the load, refresh
// stress-shadow widths and cross-set volumes, update evolution stages,
// accumulate driving-stress integrals, update the density arrays, then
// advance state and emit tape entries.
func stepOnce(g *Gridblock, ep inp.DeformationEpisode, t, dt float64) {

	// 3: resolve stress/strain per the loading type and relaxation model
	if !ep.StrainRateLoaded {
		S := mdl.EffectiveCompliance(mdl.StressShadow, g.Props.Compliance(), nil)
		g.State.EpsTotRate = S.Dot(g.State.SigEffRate)
	} else {
		applied := g.State.EpsTotRate
		relaxed := mdl.RelaxApplied(mdl.NoStrainRelaxation, applied, g.State.EpsElNonCompact, g.Props.RelaxTimeRock, g.Props.RelaxTimeFracture, tsr.Tensor2S{})
		g.State.EpsTotRate = relaxed
	}

	// 4: snapshot prior shadow widths, recompute them, refresh clear-zone
	// and cross-set volumes if anything changed
	changed := false
	for _, s := range g.Sets {
		for _, d := range s.Dipsets {
			prevWaa, prevWas := d.Waa, d.Was
			sigD := d.DrivingStress(g.State.SigEff, g.Props)
			aperture := apertureFor(g, d, sigD)
			d.UpdateStressShadowWidths(aperture, d.P32Active)
			if d.Waa != prevWaa || d.Was != prevWas {
				changed = true
			}
		}
	}
	if changed {
		refreshCrossSetVolumes(g)
	}

	// 5: update evolution stages pre density-update
	updateEvolutionStages(g)

	// 6: driving-stress integrals (CumGamma) feed NucleationLTime elsewhere;
	// here they are simply accumulated for this step.
	for _, s := range g.Sets {
		for _, d := range s.Dipsets {
			sigD := d.DrivingStress(g.State.SigEff, g.Props)
			d.AccumulateGamma(sigD, dt, g.Geom.MeanThickness(), g.Props)
		}
	}

	// 7: deactivation rates and density-array update; gather every set's
	// contribution first, then write through atomically to avoid order
	// bias between sets.
	type densityUpdate struct {
		d     *dipset.FractureDipSet
		count float64
		hl    float64
		ap    float64
		vol   float64
	}
	var updates []densityUpdate
	vol := g.Volume()
	for _, s := range g.Sets {
		for _, d := range s.Dipsets {
			sigD := d.DrivingStress(g.State.SigEff, g.Props)
			if sigD <= 0 {
				continue
			}
			rate := d.PropagationRate(sigD, g.Props, g.Geom.MeanThickness())
			hl := d.MeanHalfLength() + rate*dt/2
			ap := apertureFor(g, d, sigD)
			updates = append(updates, densityUpdate{d: d, count: rate * dt / math.Max(hl, 1e-12), hl: hl, ap: ap, vol: vol})
		}
	}
	for _, u := range updates {
		u.d.AddMacrofractures(u.count, u.hl, u.ap, u.vol)
	}

	// 8-9: refresh cross-set volumes again and re-check deactivation
	refreshCrossSetVolumes(g)
	updateEvolutionStages(g)

	// 10: advance state and emit tape entries
	g.State.Advance(t, dt)
	g.State.Depth = g.Geom.MeanDepth()
	g.State.Thickness = g.Geom.MeanThickness()
	for _, s := range g.Sets {
		for _, d := range s.Dipsets {
			d.RecordSnapshot(t, d.DrivingStress(g.State.SigEff, g.Props))
		}
	}
}

// apertureFor resolves the gridblock's configured aperture model for one
// dipset.
func apertureFor(g *Gridblock, d *dipset.FractureDipSet, sigD float64) float64 {
	mode := dipset.Uniform
	switch g.Control.FractureApertureControl {
	case inp.ApertureSizeDependent:
		mode = dipset.SizeDependent
	case inp.ApertureDynamic:
		mode = dipset.Dynamic
	case inp.ApertureBartonBandis:
		mode = dipset.BartonBandis
	}
	return dipset.Aperture(mode, 1e-4, d.MeanHalfLength(), sigD, dipset.BartonBandisParams{})
}

// updateEvolutionStages runs UpdateEvolutionStage for every dipset using
// the gridblock's thresholds.
func updateEvolutionStages(g *Gridblock) {
	th := dipset.DeactivationThresholds{
		HistoricMFP33TerminationRatio: g.Control.HistoricAMFP33TerminationRatio,
		ActiveTotalMFP30Ratio:         g.Control.ActiveTotalMFP30TerminationRatio,
		MinimumClearZoneVolume:        g.Control.MinimumClearZoneVolume,
		ResidualActivityCutoff:        g.Control.ActiveTotalMFP30TerminationRatio,
	}
	for _, s := range g.Sets {
		for _, d := range s.Dipsets {
			sigD := d.DrivingStress(g.State.SigEff, g.Props)
			activeRatio := 1.0
			if total := d.TotalP30(); total > 0 {
				activeRatio = d.P30Active / total
			}
			clearZone := s.ClearZoneVolume(d.Waa+d.Was, g.Volume())
			d.UpdateEvolutionStage(sigD, activeRatio, clearZone, activeRatio, th)
		}
	}
}

// refreshCrossSetVolumes rebuilds every dipset's OtherFSShadowVolume /
// OtherFSExclusionVolume via package coupling.
func refreshCrossSetVolumes(g *Gridblock) {
	if g.Proj == nil || len(g.Sets) == 0 {
		return
	}
	vols := make([]coupling.SetVolumes, len(g.Sets))
	for i, s := range g.Sets {
		var p32, maxW float64
		for _, d := range s.Dipsets {
			p32 += d.P32Active
			if w := d.Waa + d.Was; w > maxW {
				maxW = w
			}
		}
		psi := 1 - s.ClearZoneVolume(maxW, g.Volume())
		vols[i] = coupling.SetVolumes{Psi: psi, P32: p32, H: g.Geom.MeanThickness()}
	}
	coupling.ApplyCrossSetShadows(g.Proj, vols, g.AllDipsets(), g.Control.AnisotropyCutoff)
}

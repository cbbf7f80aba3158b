// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import "github.com/cpmech/dfngen/tsr"

// StrainRelaxationModel selects how applied strain is relaxed onto the
// effective stress state
type StrainRelaxationModel int

const (
	NoStrainRelaxation StrainRelaxationModel = iota
	UniformStrainRelaxation
	FractureOnlyStrainRelaxation
)

// FractureDistributionMode selects the scenario's effective compliance
// source
type FractureDistributionMode int

const (
	EvenlyDistributedStress FractureDistributionMode = iota
	StressShadow
	DuctileBoundary
)

// StressStrainState holds the current total/elastic/relaxed strain and
// effective stress for one gridblock, plus the loading-history tape.
// Owned by a gridblock; reset to lithostatic at simulation start and
// evolved by the implicit driver (package fem).
type StressStrainState struct {
	EpsTot          tsr.Tensor2S // current total strain
	EpsEl           tsr.Tensor2S // elastic strain
	EpsElCompact    tsr.Tensor2S // compactional part of elastic strain
	EpsElNonCompact tsr.Tensor2S // non-compactional part of elastic strain
	EpsRelF         tsr.Tensor2S // relaxed strain on fractures

	SigEff tsr.Tensor2S // current effective stress

	EpsTotRate tsr.Tensor2S // d(EpsTot)/dt, current episode
	SigEffRate tsr.Tensor2S // d(SigEff)/dt, current episode

	Depth                 float64 // current depth at deformation
	Thickness             float64 // current layer thickness
	FluidOverpressureRate float64
	GeothermalGradient    float64

	History []StateSnapshot // history tape, one entry per timestep
}

// StateSnapshot is one history-tape entry
type StateSnapshot struct {
	Time      float64
	Dt        float64
	EpsTot    tsr.Tensor2S
	SigEff    tsr.Tensor2S
	Depth     float64
	Thickness float64
}

// ResetLithostatic resets the state to a lithostatic stress/strain
// condition at simulation start.
func (s *StressStrainState) ResetLithostatic(overburdenSigZZ, depth, thickness float64) {
	*s = StressStrainState{
		SigEff:    tsr.NewTensor2S(0, 0, overburdenSigZZ, 0, 0, 0),
		Depth:     depth,
		Thickness: thickness,
	}
}

// Advance integrates the total strain and effective stress over Δt using
// the current rates, records depth/thickness, and appends a tape entry
// entry.
func (s *StressStrainState) Advance(t, dt float64) {
	s.EpsTot = s.EpsTot.Add(s.EpsTotRate.Scale(dt))
	s.SigEff = s.SigEff.Add(s.SigEffRate.Scale(dt))
	s.History = append(s.History, StateSnapshot{
		Time: t, Dt: dt,
		EpsTot: s.EpsTot, SigEff: s.SigEff,
		Depth: s.Depth, Thickness: s.Thickness,
	})
}

// At returns the tape entry recorded for timestep index ts. Requesting an
// index beyond what has been recorded is a programmer error, not a
// recoverable condition.
func (s *StressStrainState) At(ts int) StateSnapshot {
	if ts < 0 || ts >= len(s.History) {
		panic("mdl: tape cursor requested beyond recorded history")
	}
	return s.History[ts]
}

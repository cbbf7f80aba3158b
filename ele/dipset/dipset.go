// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package dipset implements a FractureDipSet, a population of co-oriented,
// co-dipping fractures sharing a B/c initial-density law, grounded on the
// parameter+state idiom of msolid/dp.go (Drucker-Prager: a parametrised
// yield/flow law driving a state machine) generalised to a subcritical
// fracture growth law.
package dipset

import (
	"math"

	"github.com/cpmech/dfngen/tsr"
)

// FractureMode is the dipset's mode of slip
type FractureMode int

const (
	Mode1 FractureMode = iota // opening (tensile)
	Mode2                     // in-plane shear
	Mode3                     // out-of-plane shear
)

// DipDirection selects which side of strike the dipset dips towards
type DipDirection int

const (
	JPlus DipDirection = iota
	JMinus
	Biazimuthal
)

// EvolutionStage is a dipset's lifecycle marker
type EvolutionStage int

const (
	NotActivated EvolutionStage = iota
	Growing
	ResidualActivity
	Deactivated
)

// FractureDipSet holds the parameters and evolving state of one dipset.
// Strike is shared with the parent fracture set and supplied by the caller
// at query time rather than duplicated here.
type FractureDipSet struct {
	// parameters
	Dip                 float64 // δ, radians
	Mode                FractureMode
	DipDir              DipDirection
	DisplacementSense   float64
	DisplacementPitch   float64
	B, C                float64 // initial-density law
	CapB                float64 // B*h*h^c, volumetric initial density

	// evolving state
	MicrofractureBins    []float64 // radius-distribution bins
	MacrofractureHalfLen []float64 // half-length distribution, sampled at an index grid

	P30Active, P30StaticI, P30StaticJ float64
	P32Active, P32Total               float64
	P33Active, P33Total               float64

	Waa, Was float64 // stress-shadow width components (azimuthal, strike-slip)

	Stage EvolutionStage

	CumGamma  float64 // Cum_Γ: cumulative driving-stress integral
	CumHGamma float64 // cumulative h·Γ integral

	// written by package coupling (C6) for consumption in deactivation checks
	OtherFSShadowVolume    float64
	OtherFSExclusionVolume float64

	Tape []Snapshot
}

// Snapshot is one density-tape entry
type Snapshot struct {
	Time                               float64
	P30Active, P30StaticI, P30StaticJ  float64
	P32Active, P32Total                float64
	P33Active, P33Total                float64
	CumGamma                           float64
	Waa, Was                           float64
	Stage                              EvolutionStage
	DrivingStress                      float64
}

// NewFractureDipSet builds a dipset from its static parameters. h is the
// layer thickness used to derive CapB = B*h*h^c.
func NewFractureDipSet(dip float64, mode FractureMode, dipDir DipDirection, sense, pitch, b, c, h float64) *FractureDipSet {
	d := &FractureDipSet{
		Dip: dip, Mode: mode, DipDir: dipDir,
		DisplacementSense: sense, DisplacementPitch: pitch,
		B: b, C: c,
		Stage: NotActivated,
	}
	d.CapB = b * h * math.Pow(h, c)
	return d
}

// TotalP30 returns the monotone-non-decreasing sum of active and static
// sub-populations.
func (d *FractureDipSet) TotalP30() float64 {
	return d.P30Active + d.P30StaticI + d.P30StaticJ
}

// RecordSnapshot appends the current state to the history tape. Once
// Deactivated, the tape still records (for output) but TotalP30 must not
// have grown since the previous entry — enforced by the caller (package
// fem), which stops emitting new fractures once Deactivated.
func (d *FractureDipSet) RecordSnapshot(t, drivingStress float64) {
	d.Tape = append(d.Tape, Snapshot{
		Time: t,
		P30Active: d.P30Active, P30StaticI: d.P30StaticI, P30StaticJ: d.P30StaticJ,
		P32Active: d.P32Active, P32Total: d.P32Total,
		P33Active: d.P33Active, P33Total: d.P33Total,
		CumGamma: d.CumGamma, Waa: d.Waa, Was: d.Was,
		Stage: d.Stage, DrivingStress: drivingStress,
	})
}

// At returns the tape entry at index ts; requesting beyond recorded range is
// a programmer error.
func (d *FractureDipSet) At(ts int) Snapshot {
	if ts < 0 || ts >= len(d.Tape) {
		panic("dipset: tape cursor requested beyond recorded history")
	}
	return d.Tape[ts]
}

// SlipVector returns the unit displacement vector of this dipset in the
// fracture-set-local (I,J,K) frame, derived from dip and displacement
// pitch. Mode1 (opening) has no in-plane slip component; Modes 2/3 slip
// along the pitch direction within the fracture plane.
func (d *FractureDipSet) SlipVector() tsr.VectorXYZ {
	// fracture plane normal in IJK is (0, sin(dip), cos(dip)) for a
	// JPlus-dipping set (J perpendicular to strike, K vertical); slip lies
	// in-plane along the pitch angle measured from the strike (I) direction.
	cd, sd := math.Cos(d.Dip), math.Sin(d.Dip)
	if d.Mode == Mode1 {
		return tsr.NewVectorXYZ(0, sd, cd) // opening: along the normal
	}
	cp, sp := math.Cos(d.DisplacementPitch), math.Sin(d.DisplacementPitch)
	return tsr.NewVectorXYZ(cp, -sp*cd, sp*sd)
}

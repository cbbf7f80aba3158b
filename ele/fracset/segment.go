// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fracset implements C5 of the fracture-network engine: a
// GridblockFractureSet collecting co-strike dipsets and the macrofracture
// segment list they have nucleated, plus the intersection/shadow/boundary
// geometric queries the explicit driver clips propagation against. Grounded
// on the cached-geometry idiom of geom/gridblock.go and the element-state
// idiom of ele/solid.
package fracset

import (
	"math"

	"github.com/cpmech/dfngen/ele/dipset"
	"github.com/cpmech/dfngen/geom"
)

// TerminationKind enumerates a segment endpoint's fate
type TerminationKind int

const (
	Propagating TerminationKind = iota
	Intersection
	ConnectedStressShadow
	NonconnectedStressShadow
	ConnectedGridblockBound
	NonconnectedGridblockBound
	Pinchout
	Relay
	Convergence
)

// Segment is one macrofracture segment in the set-local (I,J,K) frame: a
// straight tip-propagating element running from Start to End. DipsetIndex
// names the owning dipset within the parent set; NucleationTS records the
// explicit timestep of nucleation, and NucleationLTime is the key segments
// are sorted by when propagation runs in nucleation order.
type Segment struct {
	Start, End   geom.PointIJK
	DipsetIndex  int
	NucleationTS int
	NucleationLTime float64

	Active bool

	EndKind     TerminationKind
	TermSegment *Segment // set when EndKind references another segment

	GlobalID int // identity in the dfn package's global registry, -1 until assigned

	// Tracking marks a segment whose tip is following a shared gridblock
	// edge (boundary-tracking mode) rather than cutting across the
	// interior; TrackingBoundary names which edge.
	Tracking         bool
	TrackingBoundary Boundary
}

// Direction returns the unit propagation direction from Start to End; the
// zero vector if the segment has zero length (not yet propagated).
func (s *Segment) Direction() geom.PointIJK {
	d := s.End.Sub(s.Start)
	n := math.Hypot(d.I, d.J)
	if n == 0 {
		return geom.PointIJK{}
	}
	return geom.PointIJK{I: d.I / n, J: d.J / n, K: d.K / n}
}

// Length returns the in-plane (I,J) length of the segment
func (s *Segment) Length() float64 {
	return s.Start.DistIJ(s.End)
}

// Advance moves the propagating tip (End) by ds along the current
// direction, leaving Start fixed.
func (s *Segment) Advance(ds float64) {
	dir := s.Direction()
	s.End = geom.PointIJK{
		I: s.End.I + ds*dir.I,
		J: s.End.J + ds*dir.J,
		K: s.End.K + ds*dir.K,
	}
}

// NewSegmentPair builds the IPlus/IMinus pair nucleated at centre, along the
// set's strike-parallel I axis (the dip direction is not used): the two segments start zero-length at centre and propagate in opposite I
// directions.
func NewSegmentPair(centre geom.PointIJK, dipsetIdx, ts int, ltime float64) (iPlus, iMinus *Segment) {
	iPlus = &Segment{Start: centre, End: geom.PointIJK{I: centre.I + 1e-9, J: centre.J, K: centre.K},
		DipsetIndex: dipsetIdx, NucleationTS: ts, NucleationLTime: ltime, Active: true, GlobalID: -1}
	iMinus = &Segment{Start: centre, End: geom.PointIJK{I: centre.I - 1e-9, J: centre.J, K: centre.K},
		DipsetIndex: dipsetIdx, NucleationTS: ts, NucleationLTime: ltime, Active: true, GlobalID: -1}
	return
}

// MicrofractureIJK is a spherical microfracture in set-local coordinates,
// tracked until it converts to a macrofracture-segment pair at r=h/2.
type MicrofractureIJK struct {
	Centre      geom.PointIJK
	Radius      float64
	DipsetIndex int
	Active      bool
	GlobalID    int
}

// GrowRadius advances a microfracture's radius by one timestep:
// r_new^(1/beta) = r_curr^(1/beta) + dt/(beta*(h/2)^(b/2)), using the
// logarithmic form when b==2.
func GrowRadius(rCurr, dt, beta, b, halfH float64) float64 {
	if b == 2 {
		return rCurr * math.Exp(dt/(beta*math.Pow(halfH, b/2)))
	}
	invBeta := 1.0 / beta
	base := math.Pow(rCurr, invBeta) + dt/(beta*math.Pow(halfH, b/2))
	if base < 0 {
		return 0
	}
	return math.Pow(base, beta)
}

// dipsetOf is a convenience accessor used by the set's geometric queries to
// reach the owning dipset's stress-shadow widths.
func dipsetOf(dipsets []*dipset.FractureDipSet, idx int) *dipset.FractureDipSet {
	if idx < 0 || idx >= len(dipsets) {
		return nil
	}
	return dipsets[idx]
}

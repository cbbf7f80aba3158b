// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fracset

import (
	"math"

	"github.com/cpmech/dfngen/ele/dipset"
	"github.com/cpmech/dfngen/geom"
)

// GridblockFractureSet collects the co-strike dipsets of one fracture set
// within a gridblock, plus the macrofracture segments and microfractures
// they have nucleated. Corner points are cached in the
// set-local (I,J,K) frame and refreshed whenever the owning gridblock's
// geometry changes.
type GridblockFractureSet struct {
	Strike float64 // radians, measured from north

	Dipsets        []*dipset.FractureDipSet
	Segments       []*Segment
	Microfractures []*MicrofractureIJK

	// CornersIJK holds the four top-surface corners in this set's local
	// frame, in SW,SE,NE,NW order, matching geom.GridblockGeometry's
	// corner ordering.
	CornersIJK [4]geom.PointIJK
}

// NewGridblockFractureSet builds an empty set at the given strike
func NewGridblockFractureSet(strike float64) *GridblockFractureSet {
	return &GridblockFractureSet{Strike: strike}
}

// RefreshCorners recomputes CornersIJK from the owning gridblock's global
// geometry; called whenever set_corners (or set_corners_with_bottom) runs
// whenever the owning gridblock's geometry changes.
func (s *GridblockFractureSet) RefreshCorners(g *geom.GridblockGeometry, origin geom.PointXYZ, midPlaneZ float64) {
	corners := [4]geom.PointXYZ{
		{X: g.TopX[0], Y: g.TopY[0], Z: g.TopZ[0]},
		{X: g.TopX[1], Y: g.TopY[1], Z: g.TopZ[1]},
		{X: g.TopX[2], Y: g.TopY[2], Z: g.TopZ[2]},
		{X: g.TopX[3], Y: g.TopY[3], Z: g.TopZ[3]},
	}
	for i, c := range corners {
		s.CornersIJK[i] = geom.ToLocal(c, origin, s.Strike, midPlaneZ)
	}
}

// activeSegmentWidth returns the dipset-specific stress-shadow width W
// (InStressShadow/InExclusionZone test distances against W/2): Waa+Was, the sum of the
// azimuthal and strike-slip contributions.
func (s *GridblockFractureSet) activeSegmentWidth(seg *Segment) float64 {
	d := dipsetOf(s.Dipsets, seg.DipsetIndex)
	if d == nil {
		return 0
	}
	return d.Waa + d.Was
}

// distToSegment returns the perpendicular (I,J) distance from p to the
// infinite line through seg, clamped to the nearest endpoint if p projects
// outside [Start,End].
func distToSegment(p geom.PointIJK, seg *Segment) float64 {
	dI, dJ := seg.End.I-seg.Start.I, seg.End.J-seg.Start.J
	length2 := dI*dI + dJ*dJ
	if length2 == 0 {
		return p.DistIJ(seg.Start)
	}
	t := ((p.I-seg.Start.I)*dI + (p.J-seg.Start.J)*dJ) / length2
	t = math.Max(0, math.Min(1, t))
	proj := geom.PointIJK{I: seg.Start.I + t*dI, J: seg.Start.J + t*dJ}
	return p.DistIJ(proj)
}

// InStressShadow reports whether point lies inside the projected width
// W/2 on either side of any active macrofracture segment in this set.
func (s *GridblockFractureSet) InStressShadow(p geom.PointIJK) bool {
	for _, seg := range s.Segments {
		if !seg.Active {
			continue
		}
		w := s.activeSegmentWidth(seg)
		if w <= 0 {
			continue
		}
		if distToSegment(p, seg) <= w/2 {
			return true
		}
	}
	return false
}

// InExclusionZone is InStressShadow with the width expanded by wOther, the
// propagating fracture's own half-shadow projected onto this set.
func (s *GridblockFractureSet) InExclusionZone(p geom.PointIJK, wOther float64) bool {
	for _, seg := range s.Segments {
		if !seg.Active {
			continue
		}
		w := s.activeSegmentWidth(seg) + wOther
		if w <= 0 {
			continue
		}
		if distToSegment(p, seg) <= w/2 {
			return true
		}
	}
	return false
}

// CheckIntersection clips maxProp at the nearest crossing of seg against
// every candidate segment in otherSet, returning true and the terminating
// segment if a nearer crossing was found.
func (s *GridblockFractureSet) CheckIntersection(seg *Segment, otherSet *GridblockFractureSet, maxProp *float64) (bool, *Segment) {
	origin, dir := seg.End, seg.Direction()
	var found *Segment
	hit := false
	for _, other := range otherSet.Segments {
		if !other.Active {
			continue
		}
		cross := geom.RayCrossesSegment(origin, dir, other.Start, other.End)
		if cross.Kind != geom.CrossoverClipped {
			continue
		}
		if cross.Param >= 0 && cross.Param <= *maxProp {
			*maxProp = cross.Param
			found = other
			hit = true
		}
	}
	return hit, found
}

// CheckStressShadowInteraction is CheckIntersection against the "shadow
// boundary" offset by W/2 perpendicular to each candidate segment in
// otherSet; tested on both offset lines since the
// propagating tip may approach from either side.
func (s *GridblockFractureSet) CheckStressShadowInteraction(seg *Segment, otherSet *GridblockFractureSet, maxProp *float64) (bool, *Segment) {
	origin, dir := seg.End, seg.Direction()
	var found *Segment
	hit := false
	for _, other := range otherSet.Segments {
		if !other.Active {
			continue
		}
		w := otherSet.activeSegmentWidth(other)
		if w <= 0 {
			continue
		}
		perp := perpendicular(other.Direction())
		half := w / 2
		for _, sign := range [2]float64{1, -1} {
			offset := geom.PointIJK{I: perp.I * half * sign, J: perp.J * half * sign}
			a := geom.PointIJK{I: other.Start.I + offset.I, J: other.Start.J + offset.J, K: other.Start.K}
			b := geom.PointIJK{I: other.End.I + offset.I, J: other.End.J + offset.J, K: other.End.K}
			cross := geom.RayCrossesSegment(origin, dir, a, b)
			if cross.Kind != geom.CrossoverClipped {
				continue
			}
			if cross.Param >= 0 && cross.Param <= *maxProp {
				*maxProp = cross.Param
				found = other
				hit = true
			}
		}
	}
	return hit, found
}

// perpendicular returns the in-plane 90-degree rotation of d
func perpendicular(d geom.PointIJK) geom.PointIJK {
	return geom.PointIJK{I: -d.J, J: d.I}
}

// Boundary names the four gridblock sides in IJK
type Boundary int

const (
	BoundNorth Boundary = iota
	BoundEast
	BoundSouth
	BoundWest
)

// CheckBoundaryIntersection clips maxProp against the four gridblock
// boundaries formed by CornersIJK, identifying which one is hit. Corner
// order is SW(0),SE(1),NE(2),NW(3): South=SW-SE,
// East=SE-NE, North=NE-NW, West=NW-SW.
func (s *GridblockFractureSet) CheckBoundaryIntersection(seg *Segment, maxProp *float64) (bool, Boundary) {
	edges := [4]struct {
		a, b geom.PointIJK
		name Boundary
	}{
		{s.CornersIJK[0], s.CornersIJK[1], BoundSouth},
		{s.CornersIJK[1], s.CornersIJK[2], BoundEast},
		{s.CornersIJK[2], s.CornersIJK[3], BoundNorth},
		{s.CornersIJK[3], s.CornersIJK[0], BoundWest},
	}
	origin, dir := seg.End, seg.Direction()
	hit := false
	var which Boundary
	for _, e := range edges {
		cross := geom.RayCrossesAxisAlignedBound(origin, dir, e.a, e.b)
		if cross.Kind != geom.CrossoverClipped {
			continue
		}
		if cross.Param >= 0 && cross.Param <= *maxProp {
			*maxProp = cross.Param
			which = e.name
			hit = true
		}
	}
	return hit, which
}

// cornerBoundaries lists, for each corner index (SW,SE,NE,NW), the two
// edges meeting there.
var cornerBoundaries = [4][2]Boundary{
	{BoundSouth, BoundWest},
	{BoundSouth, BoundEast},
	{BoundEast, BoundNorth},
	{BoundNorth, BoundWest},
}

// AdjacentBoundary returns the edge a boundary-tracking segment transitions
// onto after reaching the given corner while following current.
func AdjacentBoundary(current Boundary, corner int) Boundary {
	pair := cornerBoundaries[corner]
	if pair[0] == current {
		return pair[1]
	}
	return pair[0]
}

// EdgeDirection returns the unit vector along boundary b, following the
// CornersIJK winding order (SW,SE,NE,NW) — the axis a boundary-tracking
// segment follows once it switches from crossing the edge to running
// along it.
func (s *GridblockFractureSet) EdgeDirection(b Boundary) geom.PointIJK {
	var a, z geom.PointIJK
	switch b {
	case BoundSouth:
		a, z = s.CornersIJK[0], s.CornersIJK[1]
	case BoundEast:
		a, z = s.CornersIJK[1], s.CornersIJK[2]
	case BoundNorth:
		a, z = s.CornersIJK[2], s.CornersIJK[3]
	default: // BoundWest
		a, z = s.CornersIJK[3], s.CornersIJK[0]
	}
	d := z.Sub(a)
	n := math.Hypot(d.I, d.J)
	if n == 0 {
		return geom.PointIJK{}
	}
	return geom.PointIJK{I: d.I / n, J: d.J / n}
}

// CheckCornerIntersection tests whether a boundary-tracking segment's
// propagation crosses a gridblock corner, at which point it transitions to
// the adjacent edge.
func (s *GridblockFractureSet) CheckCornerIntersection(seg *Segment, maxProp *float64) (bool, int) {
	origin, dir := seg.End, seg.Direction()
	hit := false
	corner := -1
	for i, c := range s.CornersIJK {
		d := c.DistIJ(origin)
		if d == 0 {
			continue
		}
		// a corner lies on the ray if the direction to it matches dir closely
		toC := geom.PointIJK{I: c.I - origin.I, J: c.J - origin.J}
		n := math.Hypot(toC.I, toC.J)
		if n == 0 {
			continue
		}
		cosang := (toC.I*dir.I + toC.J*dir.J) / n
		if cosang > 1-1e-9 && n <= *maxProp {
			*maxProp = n
			corner = i
			hit = true
		}
	}
	return hit, corner
}

// CheckFractureConvergence tests whether two boundary-tracking segments
// running along the same edge converge within the remaining propagation
// budget.
func (s *GridblockFractureSet) CheckFractureConvergence(seg *Segment, otherSet *GridblockFractureSet, maxProp *float64) (bool, *Segment) {
	return s.CheckIntersection(seg, otherSet, maxProp)
}

// ClearZoneVolume returns the estimated volume fraction of the gridblock
// not within distance W of any active macrofracture in this set, derived
// from the swept-band approximation 2*W*length per segment.
func (s *GridblockFractureSet) ClearZoneVolume(w, totalVolume float64) float64 {
	if totalVolume <= 0 {
		return 0
	}
	var covered float64
	for _, seg := range s.Segments {
		if !seg.Active {
			continue
		}
		covered += 2 * w * seg.Length()
	}
	frac := 1 - covered/totalVolume
	if frac < 0 {
		return 0
	}
	if frac > 1 {
		return 1
	}
	return frac
}

// InverseProximityZoneVolume returns the volume fraction lying outside the
// shadow-widened exclusion zone of width w; the complement
// of the swept-band coverage used by ClearZoneVolume.
func (s *GridblockFractureSet) InverseProximityZoneVolume(w, totalVolume float64) float64 {
	return s.ClearZoneVolume(w, totalVolume)
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"sort"

	"github.com/cpmech/dfngen/dfn"
	"github.com/cpmech/dfngen/ele/fracset"
	"github.com/cpmech/dfngen/geom"
	"github.com/cpmech/dfngen/inp"
)

// growMicrofractures advances every active microfracture's radius by one
// step, converting any that reach the layer half-thickness into a
// macrofracture-segment pair.
func growMicrofractures(g *Gridblock, ctrl inp.DFNGenerationControl, t, dt float64) {
	halfH := g.Geom.MeanThickness() / 2
	for si, s := range g.Sets {
		for _, mf := range s.Microfractures {
			if !mf.Active {
				continue
			}
			d := s.Dipsets[mf.DipsetIndex]
			rNew := fracset.GrowRadius(mf.Radius, dt, g.Props.Beta, g.Props.AExponent, halfH)
			if rNew >= halfH {
				mf.Radius = halfH
				mf.Centre.K = 0
				mf.Active = false
				wOther := d.Waa + d.Was
				if !s.InExclusionZone(mf.Centre, wOther) {
					iPlus, iMinus := fracset.NewSegmentPair(mf.Centre, mf.DipsetIndex, g.ExplicitTS, t)
					s.Segments = append(s.Segments, iPlus, iMinus)
					fPlus := g.Registry.NewFracture(dfn.SegmentRef{GridblockIdx: g.Index, SetIdx: si, SegmentIdx: len(s.Segments) - 2})
					fMinus := g.Registry.NewFracture(dfn.SegmentRef{GridblockIdx: g.Index, SetIdx: si, SegmentIdx: len(s.Segments) - 1})
					iPlus.GlobalID, iMinus.GlobalID = fPlus.ID, fMinus.ID
				}
				continue
			}
			mf.Radius = rNew
			if g.Control.FractureNucleationPosition == "" {
				mf.Centre.K = clamp(mf.Centre.K, -(halfH - rNew), halfH-rNew)
			}
		}
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// propagateStep extends every active segment in the gridblock by its
// dipset's propagation budget for this step, processed in nucleation-time
// order (or per-set order when the looser mode is selected).
func propagateStep(g *Gridblock, ctrl inp.DFNGenerationControl, t, dt float64) {
	type indexed struct {
		si  int
		seg *fracset.Segment
	}
	var all []indexed
	for si, s := range g.Sets {
		for _, seg := range s.Segments {
			if seg.Active {
				all = append(all, indexed{si, seg})
			}
		}
	}
	if ctrl.PropagateFracturesInNucleationOrder {
		sort.SliceStable(all, func(i, j int) bool {
			return all[i].seg.NucleationLTime < all[j].seg.NucleationLTime
		})
	}
	for _, it := range all {
		if !it.seg.Active {
			continue // may have been deactivated as the "other" side of an earlier relay/merge this step
		}
		budget := propagationBudget(g, it.si, it.seg, t, dt)
		if budget <= 0 {
			continue
		}
		extendFracture(g, it.si, it.seg, ctrl, budget)
	}
}

// propagationBudget returns Δs for this step: the dipset's subcritical
// growth rate times the residual of dt since nucleation, halved since both
// tips of a pair share the rate.
func propagationBudget(g *Gridblock, si int, seg *fracset.Segment, t, dt float64) float64 {
	d := g.Sets[si].Dipsets[seg.DipsetIndex]
	sigD := d.DrivingStress(g.State.SigEff, g.Props)
	rate := d.PropagationRate(sigD, g.Props, g.Geom.MeanThickness())
	residual := dt
	if age := t - seg.NucleationLTime; age < dt {
		residual = age
	}
	if residual < 0 {
		residual = 0
	}
	return rate * residual / 2
}

// extendFracture clips budget at the nearest intersection, stress-shadow
// interaction or gridblock boundary and advances seg's tip accordingly.
// Returns the distance actually advanced.
func extendFracture(g *Gridblock, si int, seg *fracset.Segment, ctrl inp.DFNGenerationControl, budget float64) float64 {
	if seg.Tracking {
		return extendBoundaryTrackingFracture(g, si, seg, seg.TrackingBoundary, budget, ctrl)
	}

	s := g.Sets[si]
	maxProp := budget
	kind := fracset.Propagating
	var termSeg *fracset.Segment

	for sj, s2 := range g.Sets {
		if sj == si {
			continue
		}
		if hit, other := s.CheckIntersection(seg, s2, &maxProp); hit {
			kind, termSeg = fracset.Intersection, other
		}
	}
	for _, s2 := range g.Sets {
		if hit, other := s.CheckStressShadowInteraction(seg, s2, &maxProp); hit {
			kind, termSeg = fracset.ConnectedStressShadow, other
		}
	}
	boundaryHit, boundary := s.CheckBoundaryIntersection(seg, &maxProp)
	if boundaryHit {
		kind = fracset.ConnectedGridblockBound
	}

	seg.Advance(maxProp)
	residual := budget - maxProp

	switch kind {
	case fracset.ConnectedGridblockBound:
		resolveBoundaryTermination(g, si, seg, boundary, ctrl, residual)
	case fracset.ConnectedStressShadow:
		resolveShadowTermination(g, si, seg, termSeg, ctrl)
	case fracset.Intersection:
		seg.Active = false
		seg.EndKind = fracset.Intersection
		seg.TermSegment = termSeg
	default:
		seg.EndKind = fracset.Propagating
	}
	return maxProp
}

// resolveShadowTermination deactivates both tips, records the mutual
// TerminatingSegment references, optionally adds a Relay link, and merges
// the two physical fractures' global identity.
func resolveShadowTermination(g *Gridblock, si int, seg, other *fracset.Segment, ctrl inp.DFNGenerationControl) {
	seg.Active = false
	seg.EndKind = fracset.ConnectedStressShadow
	seg.TermSegment = other

	other.Active = false
	other.EndKind = fracset.ConnectedStressShadow
	other.TermSegment = seg

	if ctrl.LinkFracturesInStressShadow {
		relay := &fracset.Segment{
			Start: seg.End, End: other.End,
			DipsetIndex: seg.DipsetIndex, NucleationTS: seg.NucleationTS, NucleationLTime: seg.NucleationLTime,
			EndKind: fracset.Relay, TermSegment: other, GlobalID: -1,
		}
		g.Sets[si].Segments = append(g.Sets[si].Segments, relay)
	}

	if g.Registry != nil && seg.GlobalID >= 0 && other.GlobalID >= 0 {
		g.Registry.Merge(seg.GlobalID, other.GlobalID)
	}
}

// resolveBoundaryTermination resolves the absent/thin/same-gridblock/hand-off
// outcomes for a segment reaching a gridblock edge. The same-gridblock case
// (the neighbour across this edge is the gridblock the segment is already
// in — a fracture that has "re-entered from where it came") switches the
// segment into boundary-tracking mode with whatever propagation budget
// remains, instead of handing off or terminating.
func resolveBoundaryTermination(g *Gridblock, si int, seg *fracset.Segment, boundary fracset.Boundary, ctrl inp.DFNGenerationControl, residual float64) {
	nb := neighbourAt(g, boundary)
	if nb == g {
		seg.EndKind = fracset.ConnectedGridblockBound
		extendBoundaryTrackingFracture(g, si, seg, boundary, residual, ctrl)
		return
	}
	seg.Active = false
	if nb == nil {
		seg.EndKind = fracset.NonconnectedGridblockBound
		return
	}
	if nb.Geom.MeanThickness() < ctrl.MinimumLayerThickness {
		seg.EndKind = fracset.Pinchout
		return
	}
	seg.EndKind = fracset.ConnectedGridblockBound
	crossingXYZ := g.ToGlobalForSet(si, seg.End)
	crossingTime := currentRealTime(g)
	propagateMFIntoGridblock(g, nb, si, seg, boundary, crossingXYZ, crossingTime, ctrl)
}

// extendBoundaryTrackingFracture runs boundary-tracking mode: the segment's
// propagation axis is the shared edge itself, clipped at the nearest
// convergence with another boundary-tracking segment (via
// CheckFractureConvergence) and at the nearest grid corner (via
// CheckCornerIntersection); reaching a corner hands the remaining budget
// to the adjacent edge. Returns the distance actually advanced this call.
func extendBoundaryTrackingFracture(g *Gridblock, si int, seg *fracset.Segment, boundary fracset.Boundary, budget float64, ctrl inp.DFNGenerationControl) float64 {
	seg.Active = true
	seg.Tracking = true
	seg.TrackingBoundary = boundary
	if budget <= 0 {
		return 0
	}

	s := g.Sets[si]
	dir := s.EdgeDirection(boundary)
	seg.End = geom.PointIJK{I: seg.End.I + 1e-9*dir.I, J: seg.End.J + 1e-9*dir.J, K: seg.End.K}

	// a boundary-tracking segment only converges against other segments
	// that are themselves tracking the same edge
	trackers := &fracset.GridblockFractureSet{Strike: s.Strike, CornersIJK: s.CornersIJK}
	for _, cand := range s.Segments {
		if cand != seg && cand.Active && cand.Tracking && cand.TrackingBoundary == boundary {
			trackers.Segments = append(trackers.Segments, cand)
		}
	}

	maxProp := budget
	converged, other := s.CheckFractureConvergence(seg, trackers, &maxProp)
	cornerHit, corner := s.CheckCornerIntersection(seg, &maxProp)

	seg.Advance(maxProp)
	advanced := maxProp

	switch {
	case converged:
		seg.Active = false
		seg.EndKind = fracset.Convergence
		seg.TermSegment = other
		if other != nil {
			other.Active = false
			other.EndKind = fracset.Convergence
			other.TermSegment = seg
		}
		if g.Registry != nil && other != nil && seg.GlobalID >= 0 && other.GlobalID >= 0 {
			g.Registry.Merge(seg.GlobalID, other.GlobalID)
		}
	case cornerHit:
		next := fracset.AdjacentBoundary(boundary, corner)
		advanced += extendBoundaryTrackingFracture(g, si, seg, next, budget-maxProp, ctrl)
	default:
		seg.EndKind = fracset.Propagating
	}
	return advanced
}

func neighbourAt(g *Gridblock, b fracset.Boundary) *Gridblock {
	switch b {
	case fracset.BoundNorth:
		return g.North
	case fracset.BoundEast:
		return g.East
	case fracset.BoundSouth:
		return g.South
	case fracset.BoundWest:
		return g.West
	}
	return nil
}

// currentRealTime returns the real time of the explicit step currently
// executing in g, read off the implicit tape entry it is replaying
// (explicit and implicit timesteps coincide per gridblock).
func currentRealTime(g *Gridblock) float64 {
	if g.ExplicitTS < len(g.State.History) {
		return g.State.History[g.ExplicitTS].Time
	}
	return g.ExplicitTime
}

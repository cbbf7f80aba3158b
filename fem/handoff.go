// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/dfngen/dfn"
	"github.com/cpmech/dfngen/ele/fracset"
	"github.com/cpmech/dfngen/geom"
	"github.com/cpmech/dfngen/inp"
	"github.com/cpmech/dfngen/mdl"
)

// propagateMFIntoGridblock runs cross-gridblock hand-off: the initiator
// segment has just reached fromBoundary; a new segment is seeded in the
// neighbour, linked to the initiator's global macrofracture identity, and —
// if the neighbour has already advanced its own explicit cursor past the
// crossing time — replayed forward from the nucleation timestep to catch
// up. Before the new segment is added to any list, it is checked against
// the neighbour's boundary-tracking segments at the landing point: a hit
// there terminates the initiator as an Intersection instead of handing off.
func propagateMFIntoGridblock(g, nb *Gridblock, si int, initiator *fracset.Segment, fromBoundary fracset.Boundary, crossingXYZ geom.PointXYZ, crossingRealTime float64, ctrl inp.DFNGenerationControl) {
	setIdx := bestMatchingSet(g, nb, si, ctrl.MaxConsistencyAngle)
	dipsetIdx := bestMatchingDipset(g, nb, si, setIdx, initiator.DipsetIndex)
	if setIdx < 0 || dipsetIdx < 0 {
		return
	}

	landing := nb.ToLocalForSet(setIdx, crossingXYZ)
	dir := directionIntoNeighbour(fromBoundary)
	seg := &fracset.Segment{
		Start: landing,
		End:   geom.PointIJK{I: landing.I + dir.I*1e-9, J: landing.J + dir.J*1e-9, K: landing.K},
		DipsetIndex:     dipsetIdx,
		NucleationTS:    nucleationTimestepFor(nb, crossingRealTime),
		NucleationLTime: crossingRealTime,
		Active:          true,
		GlobalID:        -1,
	}

	if hit, tracker := boundaryTrackerHit(nb.Sets[setIdx], seg); hit {
		initiator.Active = false
		initiator.EndKind = fracset.Intersection
		initiator.TermSegment = tracker
		return
	}

	nb.Sets[setIdx].Segments = append(nb.Sets[setIdx].Segments, seg)
	f := nb.Registry.NewFracture(dfn.SegmentRef{GridblockIdx: nb.Index, SetIdx: setIdx, SegmentIdx: len(nb.Sets[setIdx].Segments) - 1})
	seg.GlobalID = f.ID
	if initiator.GlobalID >= 0 {
		nb.Registry.Merge(initiator.GlobalID, seg.GlobalID)
	}

	if seg.NucleationTS < nb.ExplicitTS {
		replayFromNucleation(nb, setIdx, seg, ctrl)
	}
}

// boundaryTrackerHit reports whether a newly landed segment lands squarely
// on (DistIJ within tolerance of) one of the neighbour set's active
// boundary-tracking segments — the zero-length segment has no direction to
// cross with, so this is a point-in-proximity test rather than a ray cross.
func boundaryTrackerHit(s *fracset.GridblockFractureSet, seg *fracset.Segment) (bool, *fracset.Segment) {
	const tol = 1e-6
	for _, cand := range s.Segments {
		if !cand.Active || !cand.Tracking {
			continue
		}
		if seg.Start.DistIJ(cand.Start) <= tol || seg.Start.DistIJ(cand.End) <= tol {
			return true, cand
		}
	}
	return false, nil
}

// bestMatchingSet picks the neighbour fracture set whose strike is closest
// to g's set si, preferring the same index when it falls within
// maxConsistencyAngle.
func bestMatchingSet(g, nb *Gridblock, si int, maxConsistencyAngle float64) int {
	if si < len(nb.Sets) && angleDiff(g.Sets[si].Strike, nb.Sets[si].Strike) <= maxConsistencyAngle {
		return si
	}
	best, bestDiff := -1, math.Inf(1)
	strike := g.Sets[si].Strike
	for i, s := range nb.Sets {
		d := angleDiff(strike, s.Strike)
		if d < bestDiff {
			best, bestDiff = i, d
		}
	}
	return best
}

func angleDiff(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), math.Pi)
	if d > math.Pi/2 {
		d = math.Pi - d
	}
	return d
}

// bestMatchingDipset picks the neighbour dipset with the closest dip,
// considering the mirror dip (pi - dip) for biazimuthal dipsets.
func bestMatchingDipset(g, nb *Gridblock, si, setIdx, dipsetIdx int) int {
	if setIdx < 0 || dipsetIdx < 0 || dipsetIdx >= len(g.Sets[si].Dipsets) {
		return -1
	}
	dip := g.Sets[si].Dipsets[dipsetIdx].Dip
	best, bestDiff := -1, math.Inf(1)
	for i, d := range nb.Sets[setIdx].Dipsets {
		diff := math.Min(math.Abs(d.Dip-dip), math.Abs(d.Dip-(math.Pi-dip)))
		if diff < bestDiff {
			best, bestDiff = i, diff
		}
	}
	return best
}

// directionIntoNeighbour returns the set-local propagation direction a
// segment takes on entering the neighbour across fromBoundary: it
// continues outward from the shared edge.
func directionIntoNeighbour(fromBoundary fracset.Boundary) geom.PointIJK {
	switch fromBoundary {
	case fracset.BoundNorth:
		return geom.PointIJK{I: 0, J: 1}
	case fracset.BoundSouth:
		return geom.PointIJK{I: 0, J: -1}
	case fracset.BoundEast:
		return geom.PointIJK{I: 1, J: 0}
	default: // BoundWest
		return geom.PointIJK{I: -1, J: 0}
	}
}

// nucleationTimestepFor finds the neighbour's timestep index whose history
// entry covers crossingRealTime.
func nucleationTimestepFor(nb *Gridblock, crossingRealTime float64) int {
	for i, snap := range nb.State.History {
		if snap.Time >= crossingRealTime {
			return i
		}
	}
	return nb.ExplicitTS
}

// replayFromNucleation rolls the neighbour's explicit cursor back to the
// hand-off segment's nucleation timestep and re-runs ExtendFracture through
// its own recorded history up to its current explicit time, then restores
// the cursor.
func replayFromNucleation(nb *Gridblock, setIdx int, seg *fracset.Segment, ctrl inp.DFNGenerationControl) {
	saved := nb.ExplicitTS
	for ts := seg.NucleationTS; ts < saved && ts < len(nb.State.History) && seg.Active; ts++ {
		nb.ExplicitTS = ts
		snap := nb.State.History[ts]
		budget := replayBudget(nb, setIdx, seg, snap)
		if budget > 0 {
			extendFracture(nb, setIdx, seg, ctrl, budget)
		}
	}
	nb.ExplicitTS = saved
}

func replayBudget(nb *Gridblock, setIdx int, seg *fracset.Segment, snap mdl.StateSnapshot) float64 {
	d := nb.Sets[setIdx].Dipsets[seg.DipsetIndex]
	sigD := d.DrivingStress(snap.SigEff, nb.Props)
	rate := d.PropagationRate(sigD, nb.Props, snap.Thickness)
	return rate * snap.Dt / 2
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/dfngen/dfn"
	"github.com/cpmech/dfngen/ele/dipset"
	"github.com/cpmech/dfngen/ele/fracset"
	"github.com/cpmech/dfngen/geom"
	"github.com/cpmech/dfngen/inp"
)

// nucleateStep runs the nucleation check for every set/dipset in g over the
// window [t-dt, t]: solves NucleationLTime for successive integer sequence
// numbers, and for every one that falls within this step either creates a
// microfracture or a macrofracture-segment pair, gated by the stress-shadow
// exclusion test.
func nucleateStep(g *Gridblock, ctrl inp.DFNGenerationControl, t, dt float64) {
	h := g.Geom.MeanThickness()
	halfH := h / 2
	volume := g.Volume()
	microfractures := ctrl.MicrofractureDFNMinimumRadius > 0 && ctrl.MicrofractureDFNMinimumRadius < halfH

	for si, s := range g.Sets {
		for _, d := range s.Dipsets {
			if d.Stage != dipset.Growing && d.Stage != dipset.ResidualActivity {
				continue
			}
			n := g.nextNucleationSeq(d)
			for {
				ltime := d.NucleationLTime(n, volume, g.Props, h)
				if ltime > dt {
					if ctrl.ProbabilisticFractureNucleationLimit > 0 && ltime > 0 {
						frac := dt / ltime
						if frac > 0 && frac < 1 && g.RNG.Bernoulli(frac) {
							tryNucleate(g, ctrl, si, s, d, microfractures, t-dt+ltime*frac)
						}
					}
					break
				}
				tryNucleate(g, ctrl, si, s, d, microfractures, t-dt+math.Max(ltime, 0))
				n++
			}
			g.advanceNucleationSeq(d, n)
		}
	}
}

// tryNucleate samples a candidate point inside the gridblock and, unless it
// falls in an existing stress shadow, creates the appropriate fracture
// object. tEvent is the real simulation time the nucleation event falls at.
// The Segment/MicrofractureIJK NucleationLTime field is populated from tEvent
// rather than a full LTime-tape inversion; NucleationTS
// records the coarser explicit-timestep index used for tape lookups during
// cross-gridblock hand-off.
func tryNucleate(g *Gridblock, ctrl inp.DFNGenerationControl, si int, s *fracset.GridblockFractureSet, d *dipset.FractureDipSet, microfractures bool, tEvent float64) {
	p, ok := sampleInteriorPoint(g, si)
	if !ok {
		return
	}
	if inAnyShadow(g, ctrl, si, p) {
		return
	}
	di := dipsetIndexOf(s, d)
	if microfractures {
		mf := &fracset.MicrofractureIJK{Centre: p, Radius: 1e-9, DipsetIndex: di, Active: true, GlobalID: -1}
		s.Microfractures = append(s.Microfractures, mf)
		global := g.Registry.NewMicrofracture(g.Index, si, di, g.ToGlobalForSet(si, p), mf.Radius)
		mf.GlobalID = global.ID
		d.AddMicrofractures(1)
		return
	}
	if d.DipDir == dipset.Biazimuthal {
		_ = g.RNG.Bernoulli(0.5) // dip direction drawn uniformly; both senses already covered by IPlus/IMinus below
	}
	iPlus, iMinus := fracset.NewSegmentPair(p, di, g.ExplicitTS, tEvent)
	s.Segments = append(s.Segments, iPlus, iMinus)
	fPlus := g.Registry.NewFracture(dfn.SegmentRef{GridblockIdx: g.Index, SetIdx: si, SegmentIdx: len(s.Segments) - 2})
	fMinus := g.Registry.NewFracture(dfn.SegmentRef{GridblockIdx: g.Index, SetIdx: si, SegmentIdx: len(s.Segments) - 1})
	iPlus.GlobalID = fPlus.ID
	iMinus.GlobalID = fMinus.ID
}

func dipsetIndexOf(s *fracset.GridblockFractureSet, d *dipset.FractureDipSet) int {
	for i, c := range s.Dipsets {
		if c == d {
			return i
		}
	}
	return -1
}

// sampleInteriorPoint draws a uniform random point within set si's cached
// IJK bounding box and a uniform K within the layer half-thickness.
func sampleInteriorPoint(g *Gridblock, si int) (geom.PointIJK, bool) {
	s := g.Sets[si]
	loI, hiI := s.CornersIJK[0].I, s.CornersIJK[0].I
	loJ, hiJ := s.CornersIJK[0].J, s.CornersIJK[0].J
	for _, c := range s.CornersIJK {
		if c.I < loI {
			loI = c.I
		}
		if c.I > hiI {
			hiI = c.I
		}
		if c.J < loJ {
			loJ = c.J
		}
		if c.J > hiJ {
			hiJ = c.J
		}
	}
	if hiI <= loI || hiJ <= loJ {
		return geom.PointIJK{}, false
	}
	halfH := g.Geom.MeanThickness() / 2
	return geom.PointIJK{
		I: g.RNG.Uniform(loI, hiI),
		J: g.RNG.Uniform(loJ, hiJ),
		K: g.RNG.Uniform(-halfH, halfH),
	}, true
}

// inAnyShadow tests p against this gridblock's own sets and, when
// search-neighbours is enabled, against the same-index set in every
// present neighbour, optionally including neighbour-gridblock shadows when
// search-neighbours is on.
func inAnyShadow(g *Gridblock, ctrl inp.DFNGenerationControl, si int, p geom.PointIJK) bool {
	if g.Sets[si].InStressShadow(p) {
		return true
	}
	if ctrl.SearchNeighbouringGridblocks == inp.SearchNone {
		return false
	}
	global := g.ToGlobalForSet(si, p)
	for _, nb := range []*Gridblock{g.North, g.East, g.South, g.West} {
		if nb == nil || si >= len(nb.Sets) {
			continue
		}
		local := nb.ToLocalForSet(si, global)
		if nb.Sets[si].InStressShadow(local) {
			return true
		}
	}
	return false
}

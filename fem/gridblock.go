// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements C7 (the implicit per-gridblock driver) and C8
// (the explicit DFN driver), the two engines that turn a GridConfig into a
// populated fracture network, grounded on gofem's Domain/Solver split:
// Gridblock plays the role of Domain (owned state, per-stage reset),
// FractureGrid plays the role of the top-level simulation loop
// (fem/fem.go), and the episode/timestep loop is grounded on
// sol-lin-implicit.go's `for t < tf` shape.
package fem

import (
	"math"

	"github.com/cpmech/dfngen/coupling"
	"github.com/cpmech/dfngen/dfn"
	"github.com/cpmech/dfngen/ele/dipset"
	"github.com/cpmech/dfngen/ele/fracset"
	"github.com/cpmech/dfngen/geom"
	"github.com/cpmech/dfngen/inp"
	"github.com/cpmech/dfngen/mdl"
	"github.com/cpmech/dfngen/rnd"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Gridblock owns one cell's geometry, mechanical properties, evolving
// stress-strain state, fracture sets, cross-set coupling matrices and
// propagation control.
type Gridblock struct {
	Tag   int
	Index int // position within the owning FractureGrid.Gridblocks, used for SegmentRef/RNG child streams
	Geom  geom.GridblockGeometry
	Props *mdl.MechanicalProperties
	State mdl.StressStrainState

	Sets []*fracset.GridblockFractureSet
	Proj *coupling.ProjectionMatrices

	Control inp.PropagationControl

	North, East, South, West *Gridblock // nil if absent at the grid edge

	RNG *rnd.Stream

	Registry *dfn.GlobalRegistry

	// explicit-driver cursor state
	ExplicitTS   int
	ExplicitTime float64

	// nucleationSeq tracks, per dipset, the next integer sequence number
	// NucleationLTime should be solved for; lazily
	// initialised to 1 on first use.
	nucleationSeq map[*dipset.FractureDipSet]float64
}

// NewGridblock builds a gridblock from its config and material record,
// deriving its RNG child stream from the grid-level seed at index idx
// so parallel and sequential processing reproduce the same network.
func NewGridblock(cfg inp.GridblockConfig, mat inp.MaterialConfig, gridSeed uint64, idx int) *Gridblock {
	g := &Gridblock{Tag: cfg.Tag, Index: idx}
	g.Props = mdl.NewMechanicalProperties(materialPrms(mat))
	g.RNG = rnd.NewStream(gridSeed).Child(idx)
	g.nucleationSeq = make(map[*dipset.FractureDipSet]float64)

	sw := geom.PointXYZ{X: cfg.SWTop[0], Y: cfg.SWTop[1], Z: cfg.SWTop[2]}
	nw := geom.PointXYZ{X: cfg.NWTop[0], Y: cfg.NWTop[1], Z: cfg.NWTop[2]}
	ne := geom.PointXYZ{X: cfg.NETop[0], Y: cfg.NETop[1], Z: cfg.NETop[2]}
	se := geom.PointXYZ{X: cfg.SETop[0], Y: cfg.SETop[1], Z: cfg.SETop[2]}
	if cfg.Thickness != 0 {
		g.SetCorners(sw, nw, ne, se, cfg.Thickness)
	} else {
		swBot := geom.PointXYZ{X: cfg.SWBot[0], Y: cfg.SWBot[1], Z: cfg.SWBot[2]}
		nwBot := geom.PointXYZ{X: cfg.NWBot[0], Y: cfg.NWBot[1], Z: cfg.NWBot[2]}
		neBot := geom.PointXYZ{X: cfg.NEBot[0], Y: cfg.NEBot[1], Z: cfg.NEBot[2]}
		seBot := geom.PointXYZ{X: cfg.SEBot[0], Y: cfg.SEBot[1], Z: cfg.SEBot[2]}
		g.SetCornersWithBottom(sw, nw, ne, se, swBot, nwBot, neBot, seBot)
	}
	depth := g.Geom.MeanDepth()
	thickness := g.Geom.MeanThickness()
	g.State.ResetLithostatic(0, depth, thickness)
	return g
}

// materialPrms converts a MaterialConfig's flat {N,V} list into fun.Prms
func materialPrms(mat inp.MaterialConfig) fun.Prms {
	prms := make(fun.Prms, len(mat.Prms))
	for i, p := range mat.Prms {
		prms[i] = &fun.Prm{N: p.N, V: p.V}
	}
	return prms
}

// SetCorners sets the four top corners with a uniform thickness,
// re-running every dependent set's cached IJK corners.
func (g *Gridblock) SetCorners(sw, nw, ne, se geom.PointXYZ, thickness float64) {
	g.Geom.SetCorners(sw, nw, ne, se, thickness)
	g.refreshSetCorners()
}

// SetCornersWithBottom is SetCorners for a gridblock whose thickness
// varies from corner to corner.
func (g *Gridblock) SetCornersWithBottom(sw, nw, ne, se, swBot, nwBot, neBot, seBot geom.PointXYZ) {
	g.Geom.SetCornersWithBottom(sw, nw, ne, se, swBot, nwBot, neBot, seBot)
	g.refreshSetCorners()
}

func (g *Gridblock) refreshSetCorners() {
	origin := geom.PointXYZ{X: g.Geom.TopX[0], Y: g.Geom.TopY[0], Z: g.Geom.TopZ[0]}
	midZ := g.meanMidPlaneZ()
	for _, s := range g.Sets {
		s.RefreshCorners(&g.Geom, origin, midZ)
	}
}

// meanMidPlaneZ returns the average, over the four corner pillars, of the
// layer mid-plane elevation (TopZ+BotZ)/2 — the K=0 reference used by the
// set-local frame.
func (g *Gridblock) meanMidPlaneZ() float64 {
	var s float64
	for i := 0; i < 4; i++ {
		s += 0.5 * (g.Geom.TopZ[i] + g.Geom.BotZ[i])
	}
	return s / 4
}

// ResetFractures rebuilds the gridblock's fracture sets with noSets
// strikes evenly spaced over [0,pi), each holding one dipset (biazimuthal
// when biazimuthalConjugate is set, JPlus otherwise; two mirrored dipsets
// when includeReverse is set), per the density
// law B,c.
func (g *Gridblock) ResetFractures(noSets int, B, c float64, biazimuthalConjugate, includeReverse bool) {
	dipDir := dipset.JPlus
	if biazimuthalConjugate {
		dipDir = dipset.Biazimuthal
	}
	g.resetFractures(noSets, B, c, dipset.Mode1, dipDir, includeReverse)
}

// ResetFracturesMode is the single-dipset-per-set overload.
func (g *Gridblock) ResetFracturesMode(noSets int, B, c float64, mode dipset.FractureMode, includeReverse bool) {
	g.resetFractures(noSets, B, c, mode, dipset.JPlus, includeReverse)
}

func (g *Gridblock) resetFractures(noSets int, B, c float64, mode dipset.FractureMode, dipDir dipset.DipDirection, includeReverse bool) {
	if noSets <= 0 {
		chk.Panic("fem: ResetFractures requires noSets > 0, got %d", noSets)
	}
	h := g.Geom.MeanThickness()
	strikes := make([]float64, noSets)
	g.Sets = make([]*fracset.GridblockFractureSet, noSets)
	for i := 0; i < noSets; i++ {
		strike := float64(i) / float64(noSets) * math.Pi
		strikes[i] = strike
		set := fracset.NewGridblockFractureSet(strike)
		set.Dipsets = append(set.Dipsets, dipset.NewFractureDipSet(math.Pi/2, mode, dipDir, 1, 0, B, c, h))
		if includeReverse {
			set.Dipsets = append(set.Dipsets, dipset.NewFractureDipSet(math.Pi/2, mode, dipDir, -1, math.Pi, B, c, h))
		}
		g.Sets[i] = set
	}
	g.Proj = coupling.NewProjectionMatrices(strikes)
	g.refreshSetCorners()
}

// SetPropagationControl installs the implicit/explicit control record
// record.
func (g *Gridblock) SetPropagationControl(ctrl inp.PropagationControl) {
	ctrl.SetDefault()
	g.Control = ctrl
}

// Volume returns the gridblock's total volume (horizontal area times mean
// thickness), used throughout the density formulae.
func (g *Gridblock) Volume() float64 {
	return g.Geom.HorizontalArea() * g.Geom.MeanThickness()
}

// AllDipsets returns every dipset across every set, in set-major order;
// used by the cross-set coupling step and by output.
func (g *Gridblock) AllDipsets() [][]*dipset.FractureDipSet {
	out := make([][]*dipset.FractureDipSet, len(g.Sets))
	for i, s := range g.Sets {
		out[i] = s.Dipsets
	}
	return out
}

// originXYZ returns the SW-top corner used as the origin of every set's
// local (I,J,K) frame, matching refreshSetCorners.
func (g *Gridblock) originXYZ() geom.PointXYZ {
	return geom.PointXYZ{X: g.Geom.TopX[0], Y: g.Geom.TopY[0], Z: g.Geom.TopZ[0]}
}

// ToGlobalForSet maps a point in set si's local (I,J,K) frame to the
// gridblock's global (X,Y,Z) frame.
func (g *Gridblock) ToGlobalForSet(si int, p geom.PointIJK) geom.PointXYZ {
	return geom.ToGlobal(p, g.originXYZ(), g.Sets[si].Strike, g.meanMidPlaneZ())
}

// ToLocalForSet maps a global point into set si's local (I,J,K) frame.
func (g *Gridblock) ToLocalForSet(si int, p geom.PointXYZ) geom.PointIJK {
	return geom.ToLocal(p, g.originXYZ(), g.Sets[si].Strike, g.meanMidPlaneZ())
}

// nextNucleationSeq returns and does not yet advance the integer sequence
// number the next nucleation event for d should solve NucleationLTime at.
func (g *Gridblock) nextNucleationSeq(d *dipset.FractureDipSet) float64 {
	if n, ok := g.nucleationSeq[d]; ok {
		return n
	}
	return 1
}

func (g *Gridblock) advanceNucleationSeq(d *dipset.FractureDipSet, n float64) {
	g.nucleationSeq[d] = n
}

// AllActivated reports whether every dipset in every set has reached
// Deactivated.
func (g *Gridblock) AllActivated() bool {
	for _, s := range g.Sets {
		for _, d := range s.Dipsets {
			if d.Stage != dipset.Deactivated {
				return false
			}
		}
	}
	return true
}

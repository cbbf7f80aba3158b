// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/dfngen/dfn"
	"github.com/cpmech/dfngen/inp"
	"github.com/cpmech/dfngen/rnd"
	"github.com/cpmech/gosl/chk"
)

// FractureGrid is the top-level simulation object: a row-major NI×NJ array
// of gridblocks sharing one RNG seed and one global DFN registry. Grounded
// on fem/fem.go (FEM's top-level simulation struct that owns the domain
// list and drives Run()).
type FractureGrid struct {
	Gridblocks []*Gridblock
	NI, NJ     int
	Registry   *dfn.GlobalRegistry
	Seed       uint64
}

// NewFractureGrid builds a grid from a GridConfig, wiring each
// gridblock's neighbour pointers from the resolved NI×NJ layout.
func NewFractureGrid(cfg *inp.GridConfig, seed uint64) *FractureGrid {
	fg := &FractureGrid{NI: cfg.NI, NJ: cfg.NJ, Registry: dfn.NewGlobalRegistry(), Seed: seed}
	fg.Gridblocks = make([]*Gridblock, len(cfg.Gridblocks))
	for i, gc := range cfg.Gridblocks {
		mat := cfg.MaterialByName(gc.MaterialName)
		if mat == nil {
			chk.Panic("fem: gridblock tag %d references unknown material %q", gc.Tag, gc.MaterialName)
		}
		g := NewGridblock(gc, *mat, seed, i)
		g.Registry = fg.Registry
		fg.Gridblocks[i] = g
	}
	for i, gc := range cfg.Gridblocks {
		fg.Gridblocks[i].North = fg.neighbourOrNil(gc.NorthNeighbour)
		fg.Gridblocks[i].East = fg.neighbourOrNil(gc.EastNeighbour)
		fg.Gridblocks[i].South = fg.neighbourOrNil(gc.SouthNeighbour)
		fg.Gridblocks[i].West = fg.neighbourOrNil(gc.WestNeighbour)
	}
	return fg
}

func (fg *FractureGrid) neighbourOrNil(idx int) *Gridblock {
	if idx < 0 {
		return nil
	}
	return fg.Gridblocks[idx]
}

// CalculateFractureData runs the implicit engine (C7) on every gridblock.
// Gridblocks have no inter-dependence in the implicit phase — it is
// embarrassingly parallel; a parallel implementation would fan these out
// over a worker pool sharing nothing but the RNG's already-split child
// streams. Re-callable to append further episodes onto an existing run.
func (fg *FractureGrid) CalculateFractureData() error {
	for _, g := range fg.Gridblocks {
		if err := RunImplicit(g); err != nil {
			if limit, ok := err.(*TimestepLimitHit); ok {
				return limit
			}
			return chk.Err("fem: implicit driver failed on gridblock %d: %v", g.Tag, err)
		}
	}
	return nil
}

// GenerateDFN drives the explicit engine (C8) across every gridblock in
// timestep lock-step. Unlike the implicit phase this is not embarrassingly
// parallel: hand-off through PropagateMFIntoGridblock mutates neighbour
// state and must be visible before the neighbour's own propagation
// continues, so gridblocks are advanced strictly one at a time within a
// lock-step round.
func (fg *FractureGrid) GenerateDFN(ctrl inp.DFNGenerationControl) error {
	stream := rnd.NewStream(fg.Seed)
	for i, g := range fg.Gridblocks {
		g.RNG = stream.Child(i)
	}
	maxTS := 0
	for _, g := range fg.Gridblocks {
		if g.Control.MaxTimesteps > maxTS {
			maxTS = g.Control.MaxTimesteps
		}
	}
	for ts := 0; ts < maxTS; ts++ {
		for _, g := range fg.Gridblocks {
			if g.ExplicitTS != ts {
				continue // this gridblock already advanced further via a hand-off rollback/replay
			}
			if err := RunExplicitStep(g, ctrl); err != nil {
				return chk.Err("fem: explicit driver failed on gridblock %d at timestep %d: %v", g.Tag, ts, err)
			}
			g.ExplicitTS++
		}
	}
	return nil
}

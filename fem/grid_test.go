// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/dfngen/ele/dipset"
	"github.com/cpmech/dfngen/inp"
)

// newTestGridConfig builds a 2x1 grid (west, east) of flat, identical
// gridblocks sharing one material, resolving neighbour indices the same
// way inp.ReadGridConfig does for a JSON file.
func newTestGridConfig() *inp.GridConfig {
	mat := inp.MaterialConfig{Name: "shale", Prms: []inp.MaterialParam{
		{N: "E", V: 20e9}, {N: "nu", V: 0.2},
		{N: "beta", V: 3.0}, {N: "A", V: 1e-6},
		{N: "B", V: 1.0}, {N: "c", V: 1.0}, {N: "b", V: 3.0},
	}}
	gb := func(tag int, x0 float64) inp.GridblockConfig {
		return inp.GridblockConfig{
			Tag:          tag,
			SWTop:        [3]float64{x0, 0, -1000},
			NWTop:        [3]float64{x0, 100, -1000},
			NETop:        [3]float64{x0 + 100, 100, -1000},
			SETop:        [3]float64{x0 + 100, 0, -1000},
			Thickness:    10,
			MaterialName: "shale",
		}
	}
	cfg := &inp.GridConfig{
		NI: 2, NJ: 1,
		Gridblocks: []inp.GridblockConfig{gb(1, 0), gb(2, 100)},
		Materials:  []inp.MaterialConfig{mat},
	}
	cfg.Propagation.SetDefault()
	cfg.DFN.SetDefault()
	return cfg
}

func Test_newfracturegrid_wires_neighbours(tst *testing.T) {
	cfg := newTestGridConfig()
	grid := NewFractureGrid(cfg, 1234)
	if len(grid.Gridblocks) != 2 {
		tst.Fatalf("expected 2 gridblocks, got %d", len(grid.Gridblocks))
	}
	west, east := grid.Gridblocks[0], grid.Gridblocks[1]
	if west.East != east {
		tst.Errorf("west gridblock's East neighbour must be east")
	}
	if east.West != west {
		tst.Errorf("east gridblock's West neighbour must be west")
	}
	if west.North != nil || west.South != nil || west.West != nil {
		tst.Errorf("west gridblock on the grid boundary must have nil N/S/W")
	}
	if west.Registry != grid.Registry || east.Registry != grid.Registry {
		tst.Errorf("every gridblock must share the grid's global registry")
	}
}

func Test_calculatefracturedata_runs_every_gridblock(tst *testing.T) {
	cfg := newTestGridConfig()
	grid := NewFractureGrid(cfg, 1234)
	for _, g := range grid.Gridblocks {
		g.Control.DeformationEpisodes = []inp.DeformationEpisode{
			{Duration: 10, StrainRateLoaded: true, AppliedStrainRateXX: 1e-9},
		}
		g.Control.MaxTimesteps = 10
	}
	if err := grid.CalculateFractureData(); err != nil {
		tst.Fatalf("CalculateFractureData failed: %v", err)
	}
	for i, g := range grid.Gridblocks {
		if len(g.State.History) == 0 {
			tst.Errorf("gridblock %d: expected a recorded tape after CalculateFractureData", i)
		}
	}
}

func Test_calculatefracturedata_surfaces_timestep_limit(tst *testing.T) {
	cfg := newTestGridConfig()
	grid := NewFractureGrid(cfg, 1234)
	g := grid.Gridblocks[0]
	g.Control.DeformationEpisodes = []inp.DeformationEpisode{
		{Duration: 100, StrainRateLoaded: true, AppliedStrainRateXX: 1e-9},
	}
	g.Control.MaxTimesteps = 1
	g.Control.MaxTimestepDuration = 1.0

	err := grid.CalculateFractureData()
	if err == nil {
		tst.Fatalf("expected a TimestepLimitHit to surface unwrapped")
	}
	if _, ok := err.(*TimestepLimitHit); !ok {
		tst.Errorf("CalculateFractureData must surface *TimestepLimitHit unwrapped, got %T", err)
	}
}

func Test_generatedfn_advances_every_gridblock(tst *testing.T) {
	cfg := newTestGridConfig()
	grid := NewFractureGrid(cfg, 1234)
	for _, g := range grid.Gridblocks {
		g.ResetFractures(1, 1.0, 1.0, true, false)
		g.SetPropagationControl(cfg.Propagation)
		for _, s := range g.Sets {
			for _, d := range s.Dipsets {
				d.Stage = dipset.Growing
			}
		}
		g.Control.MaxTimesteps = 3
	}
	if err := grid.GenerateDFN(cfg.DFN); err != nil {
		tst.Fatalf("GenerateDFN failed: %v", err)
	}
	for i, g := range grid.Gridblocks {
		if g.ExplicitTS != 3 {
			tst.Errorf("gridblock %d: expected ExplicitTS=3 after a 3-round GenerateDFN, got %d", i, g.ExplicitTS)
		}
	}
}

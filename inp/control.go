// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.dfn) JSON file:
// grid/material configuration, the implicit driver's PropagationControl,
// the explicit driver's DFNGenerationControl, and the deformation-episode
// schedule, grounded on the flat JSON-tagged struct idiom of gofem's own
// inp/sim.go.
package inp

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// TimeUnits selects the real-time unit deformation episode durations and
// subcritical-growth clocks are expressed in.
type TimeUnits int

const (
	Seconds TimeUnits = iota
	Years
	Ma
)

// ApertureControl mirrors dipset.ApertureControl as a JSON-friendly string
// enum for config files.
type ApertureControl string

const (
	ApertureUniform       ApertureControl = "Uniform"
	ApertureSizeDependent ApertureControl = "SizeDependent"
	ApertureDynamic       ApertureControl = "Dynamic"
	ApertureBartonBandis  ApertureControl = "BartonBandis"
)

// SearchNeighbours selects how far ExtendFracture looks for intersecting
// segments outside the current gridblock.
type SearchNeighbours string

const (
	SearchNone      SearchNeighbours = "None"
	SearchAll       SearchNeighbours = "All"
	SearchAutomatic SearchNeighbours = "Automatic"
)

// PropagationControl configures the implicit driver (C7), one record per
// gridblock or shared across a region.
type PropagationControl struct {
	MaxTSMFP33Increase                float64 `json:"maxTSMFP33Increase"`
	HistoricAMFP33TerminationRatio    float64 `json:"historicAMFP33TerminationRatio"`
	ActiveTotalMFP30TerminationRatio  float64 `json:"activeTotalMFP30TerminationRatio"`
	MinimumClearZoneVolume            float64 `json:"minimumClearZoneVolume"`
	MaxTimesteps                      int     `json:"maxTimesteps"`
	MaxTimestepDuration               float64 `json:"maxTimestepDuration"`
	NoRBins                           int     `json:"noRBins"`
	CheckAllFStressShadows            bool    `json:"checkAllFStressShadows"`
	CalculateRelaxedStrainPartitioning bool   `json:"calculateRelaxedStrainPartitioning"`
	OutputBulkRockElasticTensors      bool    `json:"outputBulkRockElasticTensors"`
	CalculatePopulationDistributionData bool  `json:"calculatePopulationDistributionData"`
	CalculateFracturePorosity        bool    `json:"calculateFracturePorosity"`
	FractureApertureControl          ApertureControl `json:"fractureApertureControl"`
	FractureNucleationPosition       string  `json:"fractureNucleationPosition"`
	DeformationEpisodes              []DeformationEpisode `json:"deformationEpisodes"`
	InitialAppliedEpsilonHminAzimuth float64 `json:"initialAppliedEpsilonHminAzimuth"`
	TimeUnits                        TimeUnits `json:"timeUnits"`
	AnisotropyCutoff                 float64 `json:"anisotropyCutoff"`
}

// SetDefault fills a PropagationControl with the conservative defaults the
// implicit driver falls back to when a field is left at its JSON zero
// value, mirroring inp's SolverData.SetDefault convention of safe,
// always-terminating values.
func (o *PropagationControl) SetDefault() {
	if o.MaxTimesteps == 0 {
		o.MaxTimesteps = 1000
	}
	if o.MaxTimestepDuration == 0 {
		o.MaxTimestepDuration = 1e9
	}
	if o.NoRBins == 0 {
		o.NoRBins = 10
	}
	if o.AnisotropyCutoff == 0 {
		o.AnisotropyCutoff = 0.5
	}
	if o.FractureApertureControl == "" {
		o.FractureApertureControl = ApertureUniform
	}
	if o.ActiveTotalMFP30TerminationRatio == 0 {
		o.ActiveTotalMFP30TerminationRatio = 0.01
	}
	if o.MinimumClearZoneVolume == 0 {
		o.MinimumClearZoneVolume = 0.01
	}
}

// DeformationEpisode is one entry of PropagationControl's schedule
// either strain-rate or stress-rate loaded, for a finite duration or
// open-ended ("run until deactivation").
type DeformationEpisode struct {
	Duration              float64 `json:"duration"` // 0 (or negative) means open-ended
	StrainRateLoaded      bool    `json:"strainRateLoaded"`
	AppliedStrainRateXX   float64 `json:"appliedStrainRateXX"`
	AppliedStrainRateYY   float64 `json:"appliedStrainRateYY"`
	AppliedStressRateZZ   float64 `json:"appliedStressRateZZ"`
	FluidOverpressureRate float64 `json:"fluidOverpressureRate"`
	TemperatureChangeRate float64 `json:"temperatureChangeRate"`
	UpliftRate            float64 `json:"upliftRate"`
	StressArchingFactor   float64 `json:"stressArchingFactor"`
	RunUntilDeactivation  bool    `json:"runUntilDeactivation"`
}

// OpenEnded reports whether this episode has no fixed duration
func (e DeformationEpisode) OpenEnded() bool { return e.Duration <= 0 }

// DFNGenerationControl configures the explicit driver (C8).
type DFNGenerationControl struct {
	MicrofractureDFNMinimumRadius     float64          `json:"microfractureDFNMinimumRadius"`
	MacrofractureDFNMinimumLength     float64          `json:"macrofractureDFNMinimumLength"`
	CropToGrid                       bool             `json:"cropToGrid"`
	ProbabilisticFractureNucleationLimit float64      `json:"probabilisticFractureNucleationLimit"`
	MaxConsistencyAngle              float64          `json:"maxConsistencyAngle"`
	MinimumLayerThickness            float64          `json:"minimumLayerThickness"`
	SearchNeighbouringGridblocks     SearchNeighbours `json:"searchNeighbouringGridblocks"`
	LinkFracturesInStressShadow      bool             `json:"linkFracturesInStressShadow"`
	PropagateFracturesInNucleationOrder bool          `json:"propagateFracturesInNucleationOrder"`
}

// SetDefault mirrors PropagationControl.SetDefault for the explicit driver
func (o *DFNGenerationControl) SetDefault() {
	if o.MaxConsistencyAngle == 0 {
		o.MaxConsistencyAngle = 0.3490658503988659 // 20 degrees
	}
	if o.SearchNeighbouringGridblocks == "" {
		o.SearchNeighbouringGridblocks = SearchAutomatic
	}
	o.PropagateFracturesInNucleationOrder = true
}

// GridblockConfig is the JSON description of one gridblock: corner
// points, thickness, mechanical properties and initial fluid/thermal
// state.
type GridblockConfig struct {
	Tag int `json:"tag"`

	SWTop [3]float64 `json:"swTop"`
	NWTop [3]float64 `json:"nwTop"`
	NETop [3]float64 `json:"neTop"`
	SETop [3]float64 `json:"seTop"`

	Thickness float64 `json:"thickness"` // uniform thickness; 0 means bottom corners are supplied explicitly
	SWBot     [3]float64 `json:"swBot"`
	NWBot     [3]float64 `json:"nwBot"`
	NEBot     [3]float64 `json:"neBot"`
	SEBot     [3]float64 `json:"seBot"`

	MaterialName string `json:"material"` // key into GridConfig.Materials

	InitialFluidPressure float64 `json:"initialFluidPressure"`
	InitialTemperature    float64 `json:"initialTemperature"`

	NorthNeighbour, EastNeighbour, SouthNeighbour, WestNeighbour int `json:"-"` // resolved by GridConfig, -1 if absent
}

// MaterialConfig holds one named set of mechanical properties, in the
// fun.Prms record format NewMechanicalProperties consumes.
type MaterialConfig struct {
	Name  string             `json:"name"`
	Prms  []MaterialParam    `json:"prms"`
}

// MaterialParam is one named scalar parameter (mirrors gosl/fun.Prm's
// flat {N,V} shape so material files round-trip through plain JSON
// without pulling in fun's full parameter-dependency machinery).
type MaterialParam struct {
	N string  `json:"n"`
	V float64 `json:"v"`
}

// GridConfig is the top-level configuration read from a .dfn file: the
// gridblock layout, shared materials, and default propagation/DFN
// controls.
type GridConfig struct {
	Desc       string              `json:"desc"`
	Gridblocks []GridblockConfig   `json:"gridblocks"`
	NI         int                 `json:"ni"` // grid dimensions, row-major over Gridblocks
	NJ         int                 `json:"nj"`
	Materials  []MaterialConfig    `json:"materials"`

	Propagation PropagationControl  `json:"propagation"`
	DFN         DFNGenerationControl `json:"dfn"`
}

// ReadGridConfig reads a grid configuration from a JSON file, applies
// defaults, and resolves each gridblock's N/E/S/W neighbour indices from
// the NI×NJ row-major layout.
func ReadGridConfig(path string) *GridConfig {
	b, err := io.ReadFile(path)
	if err != nil {
		chk.Panic("inp: cannot read grid configuration file %q", path)
	}
	var o GridConfig
	o.Propagation.SetDefault()
	o.DFN.SetDefault()
	err = json.Unmarshal(b, &o)
	if err != nil {
		chk.Panic("inp: cannot unmarshal grid configuration file %q", path)
	}
	o.resolveNeighbours()
	return &o
}

// resolveNeighbours fills each gridblock's neighbour indices from the
// row-major NI×NJ layout, -1 for a block on the grid boundary.
func (o *GridConfig) resolveNeighbours() {
	n := len(o.Gridblocks)
	if o.NI*o.NJ != n {
		chk.Panic("inp: NI*NJ (%d*%d) does not match the number of gridblocks (%d)", o.NI, o.NJ, n)
	}
	idx := func(i, j int) int {
		if i < 0 || i >= o.NI || j < 0 || j >= o.NJ {
			return -1
		}
		return i*o.NJ + j
	}
	for i := 0; i < o.NI; i++ {
		for j := 0; j < o.NJ; j++ {
			k := idx(i, j)
			g := &o.Gridblocks[k]
			g.NorthNeighbour = idx(i, j+1)
			g.EastNeighbour = idx(i+1, j)
			g.SouthNeighbour = idx(i, j-1)
			g.WestNeighbour = idx(i-1, j)
		}
	}
}

// MaterialByName looks up a named material record
func (o *GridConfig) MaterialByName(name string) *MaterialConfig {
	for i := range o.Materials {
		if o.Materials[i].Name == name {
			return &o.Materials[i]
		}
	}
	return nil
}

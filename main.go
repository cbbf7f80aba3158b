// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"

	"github.com/cpmech/dfngen/ele/dipset"
	"github.com/cpmech/dfngen/fem"
	"github.com/cpmech/dfngen/inp"
	"github.com/cpmech/dfngen/out"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// command-line options
	noSets := flag.Int("nsets", 3, "number of fracture sets to reset each gridblock with")
	bParam := flag.Float64("B", 1.0, "initial-density law B parameter")
	cParam := flag.Float64("c", 1.0, "initial-density law c parameter")
	includeReverse := flag.Bool("reverse", false, "also add the mirrored dipset (strike+pi) to each set")
	biazimuthal := flag.Bool("biazimuthal", true, "dip sets nucleate on both sides of strike")
	dirout := flag.String("dirout", "/tmp/dfngen", "output directory for tapes and segment CSVs")
	seed := flag.Uint64("seed", 4321, "grid-level RNG seed")
	flag.Parse()

	var fnamepath string
	if len(flag.Args()) > 0 {
		fnamepath = flag.Arg(0)
	} else {
		chk.Panic("Please, provide a grid configuration filename. Ex.: layer.dfn")
	}

	io.PfWhite("\ndfngen -- fracture-network simulator\n\n")
	io.Pf("Copyright 2016 The Gofem Authors. All rights reserved.\n")
	io.Pf("Use of this source code is governed by a BSD-style\n")
	io.Pf("license that can be found in the LICENSE file.\n\n")

	// profiling?
	defer utl.DoProf(false)()

	// read configuration and build the grid
	cfg := inp.ReadGridConfig(fnamepath)
	fnkey := io.FnKey(fnamepath)
	grid := fem.NewFractureGrid(cfg, *seed)

	// reset fractures and install propagation control on every gridblock
	for i, g := range grid.Gridblocks {
		g.ResetFractures(*noSets, *bParam, *cParam, *biazimuthal, *includeReverse)
		g.SetPropagationControl(cfg.Propagation)
		io.Pf("gridblock %d (tag=%d): %d sets installed\n", i, g.Tag, len(g.Sets))
	}

	// run the implicit engine
	if err := grid.CalculateFractureData(); err != nil {
		if _, ok := err.(*fem.TimestepLimitHit); ok {
			io.Pfyel("warning: %v\n", err)
		} else {
			chk.Panic("implicit run failed: %v", err)
		}
	}

	// run the explicit engine
	if err := grid.GenerateDFN(cfg.DFN); err != nil {
		chk.Panic("explicit run failed: %v", err)
	}

	// write tapes and resolved geometry
	for _, g := range grid.Gridblocks {
		out.WriteStateTape(*dirout, fnkey, g.Tag, g.State.History)
		for si, s := range g.Sets {
			for di, d := range s.Dipsets {
				if d.Stage == dipset.NotActivated {
					continue
				}
				out.WriteDipsetTape(*dirout, fnkey, g.Tag, si, di, d)
			}
			out.WriteSegments(*dirout, fnkey, g.Tag, si, s.Segments)
		}
	}
	out.WriteRegistry(*dirout, fnkey, grid.Registry)

	io.Pfgreen("\nfinished: output written to %s\n", *dirout)
}

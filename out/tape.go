// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out writes the per-gridblock density tapes and the resolved
// segment geometry to disk, grounded on gofem's out package: a
// results-collection step (ResultsMap in the original) followed by
// gosl/io-driven buffer formatting (tools/GenVtu.go's bytes.Buffer +
// io.Ff + io.WriteFile idiom), adapted here to the dipset/state tapes and
// the DFN segment list instead of FE integration-point results.
package out

import (
	"bytes"

	"github.com/cpmech/dfngen/dfn"
	"github.com/cpmech/dfngen/ele/dipset"
	"github.com/cpmech/dfngen/ele/fracset"
	"github.com/cpmech/dfngen/mdl"
	"github.com/cpmech/dfngen/tsr"
	"github.com/cpmech/gosl/io"
)

// WriteStateTape writes one gridblock's StressStrainState history tape as
// CSV to dirout/fnkey_gbTAG_state.csv.
func WriteStateTape(dirout, fnkey string, tag int, hist []mdl.StateSnapshot) {
	var buf bytes.Buffer
	io.Ff(&buf, "time,dt,depth,thickness,sigEffXX,sigEffYY,sigEffZZ,epsTotXX,epsTotYY,epsTotZZ\n")
	for _, s := range hist {
		io.Ff(&buf, "%g,%g,%g,%g,%g,%g,%g,%g,%g,%g\n",
			s.Time, s.Dt, s.Depth, s.Thickness,
			s.SigEff.Get(tsr.XX), s.SigEff.Get(tsr.YY), s.SigEff.Get(tsr.ZZ),
			s.EpsTot.Get(tsr.XX), s.EpsTot.Get(tsr.YY), s.EpsTot.Get(tsr.ZZ))
	}
	io.WriteFile(io.Sf("%s/%s_gb%d_state.csv", dirout, fnkey, tag), &buf)
}

// WriteDipsetTape writes one dipset's density tape as CSV to
// dirout/fnkey_gbTAG_setSI_dipDI.csv.
func WriteDipsetTape(dirout, fnkey string, tag, si, di int, d *dipset.FractureDipSet) {
	var buf bytes.Buffer
	io.Ff(&buf, "time,p30active,p30staticI,p30staticJ,p32active,p32total,p33active,p33total,cumGamma,waa,was,stage,drivingStress\n")
	for _, s := range d.Tape {
		io.Ff(&buf, "%g,%g,%g,%g,%g,%g,%g,%g,%g,%g,%g,%d,%g\n",
			s.Time, s.P30Active, s.P30StaticI, s.P30StaticJ,
			s.P32Active, s.P32Total, s.P33Active, s.P33Total,
			s.CumGamma, s.Waa, s.Was, int(s.Stage), s.DrivingStress)
	}
	io.WriteFile(io.Sf("%s/%s_gb%d_set%d_dip%d.csv", dirout, fnkey, tag, si, di), &buf)
}

// WriteSegments writes the resolved macrofracture segment geometry for one
// gridblock's fracture set as CSV: one row per segment, in the set's local
// (I,J,K) frame, with its resolved global identity.
func WriteSegments(dirout, fnkey string, tag, si int, segs []*fracset.Segment) {
	var buf bytes.Buffer
	io.Ff(&buf, "startI,startJ,startK,endI,endJ,endK,dipset,active,endKind,globalID\n")
	for _, s := range segs {
		io.Ff(&buf, "%g,%g,%g,%g,%g,%g,%d,%v,%d,%d\n",
			s.Start.I, s.Start.J, s.Start.K,
			s.End.I, s.End.J, s.End.K,
			s.DipsetIndex, s.Active, int(s.EndKind), s.GlobalID)
	}
	io.WriteFile(io.Sf("%s/%s_gb%d_set%d_segments.csv", dirout, fnkey, tag, si), &buf)
}

// WriteRegistry writes the global DFN registry's macrofracture and
// microfracture identities as CSV to dirout/fnkey_registry.csv, one row per
// entry with its merge-resolved canonical identity.
func WriteRegistry(dirout, fnkey string, reg *dfn.GlobalRegistry) {
	var buf bytes.Buffer
	io.Ff(&buf, "kind,id,canonicalID\n")
	for _, m := range reg.Macrofractures {
		io.Ff(&buf, "macro,%d,%d\n", m.ID, reg.Resolve(m.ID))
	}
	for _, m := range reg.Microfractures {
		io.Ff(&buf, "micro,%d,%d\n", m.ID, reg.Resolve(m.ID))
	}
	io.WriteFile(io.Sf("%s/%s_registry.csv", dirout, fnkey), &buf)
}

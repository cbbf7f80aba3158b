// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Optional diagnostic plots, grounded on mreten/plot.go's
// plt.Plot+plt.Gll+plt.Save sequence and tools/ResidPlot.go's plt.Hist
// usage. Never required for correctness: callers that don't want plotting
// output simply don't call these.
package out

import (
	"github.com/cpmech/dfngen/ele/dipset"
	"github.com/cpmech/dfngen/ele/fracset"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

// PlotP32History plots one dipset's P32 (active and total) against time
// from its density tape, saved to dirout/fnkey_gbTAG_setSI_dipDI_p32.png.
func PlotP32History(dirout, fnkey string, tag, si, di int, d *dipset.FractureDipSet) {
	if len(d.Tape) == 0 {
		return
	}
	t := make([]float64, len(d.Tape))
	active := make([]float64, len(d.Tape))
	total := make([]float64, len(d.Tape))
	for i, s := range d.Tape {
		t[i], active[i], total[i] = s.Time, s.P32Active, s.P32Total
	}
	plt.Reset(false, nil)
	plt.Plot(t, active, &plt.A{C: "r", L: "P32 active"})
	plt.Plot(t, total, &plt.A{C: "b", L: "P32 total"})
	plt.Gll("time", "P32", "")
	plt.Save(dirout, io.Sf("%s_gb%d_set%d_dip%d_p32", fnkey, tag, si, di))
}

// PlotHalfLengthDistribution histograms the half-lengths of segs' resolved
// macrofractures, saved to dirout/fnkey_gbTAG_setSI_halflen.png.
func PlotHalfLengthDistribution(dirout, fnkey string, tag, si int, segs []*fracset.Segment) {
	var halfLengths []float64
	for _, s := range segs {
		halfLengths = append(halfLengths, s.Length()/2)
	}
	if len(halfLengths) == 0 {
		return
	}
	plt.Reset(false, nil)
	plt.Hist([][]float64{halfLengths}, []string{fnkey}, nil)
	plt.Gll("half-length", "count", "")
	plt.Save(dirout, io.Sf("%s_gb%d_set%d_halflen", fnkey, tag, si))
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/cpmech/dfngen/rnd"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Test_inverse01 checks corners SW=(0,0), NW=(0,1), NE=(2,1.5), SE=(1,0);
// for (X,Y)=(1,0.75) the returned (u,v) must satisfy
// absolute(u,v,0.5).X - 1 < 1e-9.
func Test_inverse01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("inverse01")

	var g GridblockGeometry
	sw := PointXYZ{X: 0, Y: 0, Z: 10}
	nw := PointXYZ{X: 0, Y: 1, Z: 10}
	ne := PointXYZ{X: 2, Y: 1.5, Z: 10}
	se := PointXYZ{X: 1, Y: 0, Z: 10}
	g.SetCorners(sw, nw, ne, se, 5.0)

	u, v, ok := g.Inverse(1, 0.75)
	if !ok {
		tst.Errorf("inverse should not fail for this non-degenerate quad")
		return
	}
	io.Pforan("u=%v v=%v\n", u, v)
	p := g.Absolute(u, v, 0.5)
	chk.Scalar(tst, "X", 1e-9, p.X, 1.0)
}

func Test_roundtrip01(tst *testing.T) {

	chk.PrintTitle("roundtrip01")

	var g GridblockGeometry
	sw := PointXYZ{X: 0, Y: 0, Z: 1000}
	nw := PointXYZ{X: 0, Y: 100, Z: 1000}
	ne := PointXYZ{X: 120, Y: 110, Z: 1005}
	se := PointXYZ{X: 100, Y: 0, Z: 995}
	g.SetCorners(sw, nw, ne, se, 20.0)

	s := rnd.NewStream(42)
	for i := 0; i < 50; i++ {
		u0 := s.Float64()
		v0 := s.Float64()
		w0 := s.Float64()
		p := g.Absolute(u0, v0, w0)
		u1, v1, ok := g.Inverse(p.X, p.Y)
		if !ok {
			tst.Errorf("inverse failed for a point produced by absolute()")
			continue
		}
		w1 := g.W(u1, v1, p.Z)
		chk.Scalar(tst, "u", 1e-8, u1, u0)
		chk.Scalar(tst, "v", 1e-8, v1, v0)
		chk.Scalar(tst, "w", 1e-8, w1, w0)
	}
}

func Test_quicksample_inside01(tst *testing.T) {

	chk.PrintTitle("quicksample_inside01")

	var g GridblockGeometry
	sw := PointXYZ{X: 0, Y: 0, Z: 500}
	nw := PointXYZ{X: 0, Y: 50, Z: 500}
	ne := PointXYZ{X: 60, Y: 55, Z: 500}
	se := PointXYZ{X: 55, Y: 0, Z: 500}
	g.SetCorners(sw, nw, ne, se, 10.0)

	s := rnd.NewStream(7)
	for i := 0; i < 20; i++ {
		p := g.QuickSample(s)
		if !g.Inside(p) {
			tst.Errorf("quick-sampled point %v should be inside the gridblock", p)
		}
	}
}

func Test_crossing01(tst *testing.T) {

	chk.PrintTitle("crossing01")

	origin := PointIJK{I: 0, J: 0}
	dir := PointIJK{I: 1, J: 0}
	segA := PointIJK{I: 5, J: -1}
	segB := PointIJK{I: 5, J: 1}
	c := RayCrossesSegment(origin, dir, segA, segB)
	if c.Kind != CrossoverClipped {
		tst.Errorf("expected a clipped crossing")
		return
	}
	chk.Scalar(tst, "param", 1e-12, c.Param, 5.0)
}

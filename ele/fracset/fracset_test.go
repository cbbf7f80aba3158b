// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fracset

import (
	"math"
	"testing"

	"github.com/cpmech/dfngen/ele/dipset"
	"github.com/cpmech/dfngen/geom"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_stressshadow01(tst *testing.T) {

	chk.PrintTitle("stressshadow01")

	s := NewGridblockFractureSet(0)
	d := dipset.NewFractureDipSet(math.Pi/2, dipset.Mode1, dipset.JPlus, 1, 0, 1.0, 1.0, 10.0)
	d.Waa = 4.0
	d.Was = 0
	s.Dipsets = []*dipset.FractureDipSet{d}

	seg := &Segment{
		Start:       geom.PointIJK{I: 0, J: 0},
		End:         geom.PointIJK{I: 10, J: 0},
		DipsetIndex: 0,
		Active:      true,
	}
	s.Segments = []*Segment{seg}

	near := geom.PointIJK{I: 5, J: 1}
	far := geom.PointIJK{I: 5, J: 10}
	io.Pforan("near in shadow = %v, far in shadow = %v\n", s.InStressShadow(near), s.InStressShadow(far))
	if !s.InStressShadow(near) {
		tst.Errorf("point within W/2 of the segment must be in its stress shadow")
	}
	if s.InStressShadow(far) {
		tst.Errorf("point far from the segment must not be in its stress shadow")
	}
}

func Test_intersection01(tst *testing.T) {

	chk.PrintTitle("intersection01")

	setA := NewGridblockFractureSet(0)
	setB := NewGridblockFractureSet(math.Pi / 2)

	segA := &Segment{Start: geom.PointIJK{I: 0, J: 5}, End: geom.PointIJK{I: 5, J: 5}, Active: true}
	segB := &Segment{Start: geom.PointIJK{I: 8, J: 0}, End: geom.PointIJK{I: 8, J: 10}, Active: true}
	setB.Segments = []*Segment{segB}

	maxProp := 100.0
	hit, term := setA.CheckIntersection(segA, setB, &maxProp)
	io.Pforan("hit=%v maxProp=%v\n", hit, maxProp)
	if !hit {
		tst.Errorf("a segment heading straight at another must register an intersection")
	}
	chk.Scalar(tst, "crossing distance", 1e-9, maxProp, 3.0)
	if term != segB {
		tst.Errorf("terminating segment must be segB")
	}
}

func Test_boundaryintersection01(tst *testing.T) {

	chk.PrintTitle("boundaryintersection01")

	s := NewGridblockFractureSet(0)
	s.CornersIJK = [4]geom.PointIJK{
		{I: 0, J: 0},
		{I: 10, J: 0},
		{I: 10, J: 10},
		{I: 0, J: 10},
	}

	seg := &Segment{Start: geom.PointIJK{I: 5, J: 5}, End: geom.PointIJK{I: 6, J: 5}, Active: true}
	maxProp := 100.0
	hit, which := s.CheckBoundaryIntersection(seg, &maxProp)
	io.Pforan("hit=%v which=%v maxProp=%v\n", hit, which, maxProp)
	if !hit {
		tst.Errorf("a segment heading east must hit the east boundary")
	}
	if which != BoundEast {
		tst.Errorf("expected BoundEast, got %v", which)
	}
	chk.Scalar(tst, "distance to east boundary", 1e-9, maxProp, 4.0)
}

func Test_clearzonevolume01(tst *testing.T) {

	chk.PrintTitle("clearzonevolume01")

	s := NewGridblockFractureSet(0)
	s.Segments = []*Segment{
		{Start: geom.PointIJK{I: 0, J: 0}, End: geom.PointIJK{I: 10, J: 0}, Active: true},
	}
	frac := s.ClearZoneVolume(1.0, 1000.0)
	io.Pforan("clear zone fraction = %v\n", frac)
	chk.Scalar(tst, "clear zone fraction", 1e-9, frac, 1-20.0/1000.0)

	fracFull := s.ClearZoneVolume(1.0, 1.0)
	chk.Scalar(tst, "clamped to zero", 1e-9, fracFull, 0)
}

func Test_growradius01(tst *testing.T) {

	chk.PrintTitle("growradius01")

	r1 := GrowRadius(1.0, 10.0, 2.0, 2.0, 5.0)
	r2 := GrowRadius(1.0, 10.0, 3.0, 3.0, 5.0)
	io.Pforan("r1 (b=2) = %v, r2 (b=3) = %v\n", r1, r2)
	if r1 <= 1.0 || r2 <= 1.0 {
		tst.Errorf("microfracture radius must grow under positive dt: r1=%v r2=%v", r1, r2)
	}
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dfn

import (
	"testing"

	"github.com/cpmech/dfngen/geom"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_registry01(tst *testing.T) {

	chk.PrintTitle("registry01")

	r := NewGlobalRegistry()
	fa := r.NewFracture(SegmentRef{GridblockIdx: 0, SetIdx: 0, SegmentIdx: 0})
	fb := r.NewFracture(SegmentRef{GridblockIdx: 1, SetIdx: 0, SegmentIdx: 2})

	r.Merge(fa.ID, fb.ID)
	io.Pforan("resolve(fb.ID) = %v, resolve(fa.ID) = %v\n", r.Resolve(fb.ID), r.Resolve(fa.ID))

	if r.Resolve(fb.ID) != fa.ID {
		tst.Errorf("fb must resolve to the surviving identity fa")
	}
	survivor := r.Fracture(fb.ID)
	if len(survivor.Segments) != 2 {
		tst.Errorf("survivor must carry both fractures' segments: got %d", len(survivor.Segments))
	}

	m := r.NewMicrofracture(0, 0, 0, geom.PointXYZ{X: 1, Y: 2, Z: 3}, 0.01)
	chk.Scalar(tst, "microfracture radius", 1e-15, m.Radius, 0.01)
}

func Test_registry_mergenoop(tst *testing.T) {

	chk.PrintTitle("registry_mergenoop")

	r := NewGlobalRegistry()
	fa := r.NewFracture(SegmentRef{})
	r.Merge(fa.ID, fa.ID) // merging with self must not duplicate segments
	if len(r.Fracture(fa.ID).Segments) != 1 {
		tst.Errorf("self-merge must be a no-op")
	}
}

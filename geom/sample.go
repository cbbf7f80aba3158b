// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "github.com/cpmech/dfngen/rnd"

// QuickSample draws a uniform (u,v,w) in [0,1]^3 and maps it forward with
// Absolute. Biased towards denser regions for non-parallelepiped cells, but
// always produces a point inside the gridblock.
func (g *GridblockGeometry) QuickSample(s *rnd.Stream) PointXYZ {
	u := s.Float64()
	v := s.Float64()
	w := s.Float64()
	return g.Absolute(u, v, w)
}

// SlowSample draws uniform (X,Y,Z) points in the gridblock's AABB and
// rejects until one lands inside; after 1000 rejections it falls back to
// QuickSample as a degenerate-geometry recovery policy.
func (g *GridblockGeometry) SlowSample(s *rnd.Stream) PointXYZ {
	lo, hi := g.AABB()
	for i := 0; i < 1000; i++ {
		p := PointXYZ{
			X: s.Uniform(lo.X, hi.X),
			Y: s.Uniform(lo.Y, hi.Y),
			Z: s.Uniform(lo.Z, hi.Z),
		}
		if g.Inside(p) {
			return p
		}
	}
	return g.QuickSample(s)
}

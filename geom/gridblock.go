// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// corner indices, consistent across Top and Bot: 0=SW, 1=SE, 2=NE, 3=NW
const (
	SW = 0
	SE = 1
	NE = 2
	NW = 3
)

// GridblockGeometry holds the 8 corner points of one gridblock prism (four
// vertical corner pillars — X,Y shared between top and bottom, only Z
// differs) and the cached invariants re-derived whenever
// the corners change.
type GridblockGeometry struct {
	TopX, TopY [4]float64 // corner X,Y (shared by top and bottom)
	TopZ       [4]float64
	BotZ       [4]float64

	// cached invariants (recomputed by refresh())
	x2, x3, x4, y2, y3, y4 float64
	au, av                 float64
	sideLengths            [4]float64
	cornerAnglesSW, cornerAnglesNE float64
	horizontalArea                float64
}

// SetCorners sets the four top corners (SW,NW,NE,SE order)
// with the bottom corners directly below at a uniform offset (thickness).
func (g *GridblockGeometry) SetCorners(swTop, nwTop, neTop, seTop PointXYZ, thickness float64) {
	g.TopX = [4]float64{swTop.X, seTop.X, neTop.X, nwTop.X}
	g.TopY = [4]float64{swTop.Y, seTop.Y, neTop.Y, nwTop.Y}
	g.TopZ = [4]float64{swTop.Z, seTop.Z, neTop.Z, nwTop.Z}
	for i := range g.BotZ {
		g.BotZ[i] = g.TopZ[i] - thickness
	}
	g.refresh()
}

// SetCornersWithBottom sets all eight corners explicitly, allowing a
// gridblock whose thickness varies from corner to corner.
func (g *GridblockGeometry) SetCornersWithBottom(swTop, nwTop, neTop, seTop, swBot, nwBot, neBot, seBot PointXYZ) {
	g.TopX = [4]float64{swTop.X, seTop.X, neTop.X, nwTop.X}
	g.TopY = [4]float64{swTop.Y, seTop.Y, neTop.Y, nwTop.Y}
	g.TopZ = [4]float64{swTop.Z, seTop.Z, neTop.Z, nwTop.Z}
	g.BotZ = [4]float64{swBot.Z, seBot.Z, neBot.Z, nwBot.Z}
	g.refresh()
}

// refresh recomputes cached invariants: X2,X3,X4,Y2,Y3,Y4,Au,Av, side
// lengths, SW/NE corner angles and horizontal-projected area.
func (g *GridblockGeometry) refresh() {
	x1, y1 := g.TopX[SW], g.TopY[SW]
	g.x2, g.y2 = g.TopX[SE]-x1, g.TopY[SE]-y1
	g.x3, g.y3 = g.TopX[NE]-x1, g.TopY[NE]-y1
	g.x4, g.y4 = g.TopX[NW]-x1, g.TopY[NW]-y1
	g.au = g.x2*g.y4 - g.x4*g.y2
	g.av = g.x2*g.y3 - g.x3*g.y2

	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		dx := g.TopX[j] - g.TopX[i]
		dy := g.TopY[j] - g.TopY[i]
		g.sideLengths[i] = math.Sqrt(dx*dx + dy*dy)
	}
	g.cornerAnglesSW = cornerAngle(g, SW, NW, SE)
	g.cornerAnglesNE = cornerAngle(g, NE, SE, NW)

	// shoelace formula over the four top corners for the horizontal area
	var area float64
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		area += g.TopX[i]*g.TopY[j] - g.TopX[j]*g.TopY[i]
	}
	g.horizontalArea = math.Abs(area) / 2
}

// cornerAngle returns the angle at corner `at` between the sides to `a` and
// `b`, via the dot product of the adjacent side vectors.
func cornerAngle(g *GridblockGeometry, at, a, b int) float64 {
	v1x, v1y := g.TopX[a]-g.TopX[at], g.TopY[a]-g.TopY[at]
	v2x, v2y := g.TopX[b]-g.TopX[at], g.TopY[b]-g.TopY[at]
	n1 := math.Sqrt(v1x*v1x + v1y*v1y)
	n2 := math.Sqrt(v2x*v2x + v2y*v2y)
	if n1 == 0 || n2 == 0 {
		return math.NaN()
	}
	cosang := (v1x*v2x + v1y*v2y) / (n1 * n2)
	cosang = math.Max(-1, math.Min(1, cosang))
	return math.Acos(cosang)
}

// HorizontalArea returns the horizontal-projected area of the top quad
func (g *GridblockGeometry) HorizontalArea() float64 { return g.horizontalArea }

// Degenerate reports whether the top quad is degenerate (zero area) — the
// geometric-singular case a caller must check before using the mapping.
func (g *GridblockGeometry) Degenerate() bool {
	return g.horizontalArea == 0 || math.IsNaN(g.cornerAnglesSW)
}

// Absolute maps (u,v,w) in [0,1]^3 onto the global frame. u,v are bilinear
// on the top/bottom surfaces; w blends linearly between them via p=w-0.5.
func (g *GridblockGeometry) Absolute(u, v, w float64) PointXYZ {
	checkBounds(u, v, w)
	x1, y1 := g.TopX[SW], g.TopY[SW]
	dX := g.x3 - g.x2 - g.x4
	dY := g.y3 - g.y2 - g.y4
	x := x1 + u*g.x2 + v*g.x4 + u*v*dX
	y := y1 + u*g.y2 + v*g.y4 + u*v*dY

	ztop := bilinear(g.TopZ, u, v)
	zbot := bilinear(g.BotZ, u, v)
	zmid := 0.5 * (ztop + zbot)
	thick := ztop - zbot
	p := w - 0.5
	z := zmid + p*thick

	return PointXYZ{X: x, Y: y, Z: z}
}

// bilinear evaluates the bilinear interpolant of four corner values
// (SW,SE,NE,NW order) at (u,v)
func bilinear(c [4]float64, u, v float64) float64 {
	d := c[NE] - c[SE] - c[NW]
	return c[SW] + u*(c[SE]-c[SW]) + v*(c[NW]-c[SW]) + u*v*(d+c[SW])
}

// Inverse maps a global (X,Y) point back to (u,v) on the top surface,
// solving the bilinear quadratic Au*u^2+Bu*u+Cu=0 and picking the root
// whose companion v lies closest to [0,1]. Returns ok=false (NaN,NaN) if
// both roots are complex (self-intersecting base quad).
func (g *GridblockGeometry) Inverse(x, y float64) (u, v float64, ok bool) {
	dx := x - g.TopX[SW]
	dy := y - g.TopY[SW]
	dX := g.x3 - g.x2 - g.x4
	dY := g.y3 - g.y2 - g.y4

	aq := g.au - g.av
	bq := dx*dY - g.au - dX*dy
	cq := dx*g.y4 - g.x4*dy

	var candidates []float64
	if aq == 0 {
		if bq == 0 {
			return math.NaN(), math.NaN(), false
		}
		candidates = []float64{-cq / bq}
	} else {
		disc := bq*bq - 4*aq*cq
		if disc < 0 {
			return math.NaN(), math.NaN(), false
		}
		sq := math.Sqrt(disc)
		candidates = []float64{(-bq + sq) / (2 * aq), (-bq - sq) / (2 * aq)}
	}

	best := math.NaN()
	bestV := math.NaN()
	bestDist := math.Inf(1)
	for _, uc := range candidates {
		denom := g.y4 + uc*dY
		if denom == 0 {
			continue
		}
		vc := (dy - uc*g.y2) / denom
		d := distFromUnitInterval(vc)
		if d < bestDist {
			bestDist = d
			best = uc
			bestV = vc
		}
	}
	if math.IsNaN(best) {
		return math.NaN(), math.NaN(), false
	}
	return best, bestV, true
}

func distFromUnitInterval(v float64) float64 {
	if v < 0 {
		return -v
	}
	if v > 1 {
		return v - 1
	}
	return 0
}

// W returns the w-coordinate of a point whose elevation is z at the given
// (u,v), by inverting the linear Z blend.
func (g *GridblockGeometry) W(u, v, z float64) float64 {
	ztop := bilinear(g.TopZ, u, v)
	zbot := bilinear(g.BotZ, u, v)
	thick := ztop - zbot
	if thick == 0 {
		return 0.5
	}
	zmid := 0.5 * (ztop + zbot)
	p := (z - zmid) / thick
	return p + 0.5
}

// Inside reports whether the global point (x,y,z) lies within the
// gridblock. Returns false when the inverse mapping fails (NaN) or any of
// u,v,w falls outside [0,1].
func (g *GridblockGeometry) Inside(p PointXYZ) bool {
	u, v, ok := g.Inverse(p.X, p.Y)
	if !ok {
		return false
	}
	if u < 0 || u > 1 || v < 0 || v > 1 {
		return false
	}
	w := g.W(u, v, p.Z)
	return w >= 0 && w <= 1
}

// Thickness returns the layer thickness (top-bottom Z) at (u,v)
func (g *GridblockGeometry) Thickness(u, v float64) float64 {
	return bilinear(g.TopZ, u, v) - bilinear(g.BotZ, u, v)
}

// MeanThickness returns the average of the four corner thicknesses, the
// documented fallback used when the inverse mapping fails.
func (g *GridblockGeometry) MeanThickness() float64 {
	var s float64
	for i := 0; i < 4; i++ {
		s += g.TopZ[i] - g.BotZ[i]
	}
	return s / 4
}

// MeanDepth returns the average of the four top-corner depths, the
// documented fallback for depth queries.
func (g *GridblockGeometry) MeanDepth() float64 {
	var s float64
	for i := 0; i < 4; i++ {
		s += -g.TopZ[i]
	}
	return s / 4
}

// AABB returns the axis-aligned bounding box of the prism, used by the
// slow (rejection) sampler.
func (g *GridblockGeometry) AABB() (lo, hi PointXYZ) {
	lo = PointXYZ{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	hi = PointXYZ{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	for i := 0; i < 4; i++ {
		lo.X = math.Min(lo.X, g.TopX[i])
		hi.X = math.Max(hi.X, g.TopX[i])
		lo.Y = math.Min(lo.Y, g.TopY[i])
		hi.Y = math.Max(hi.Y, g.TopY[i])
		lo.Z = math.Min(lo.Z, g.BotZ[i])
		hi.Z = math.Max(hi.Z, g.TopZ[i])
	}
	return
}

// checkBounds panics (programmer error) if any of u,v,w is NaN; used by
// callers that must never feed NaN/Inf forward.
func checkBounds(u, v, w float64) {
	if math.IsNaN(u) || math.IsNaN(v) || math.IsNaN(w) {
		chk.Panic("geom: absolute() received NaN (u,v,w)=(%v,%v,%v)", u, v, w)
	}
}

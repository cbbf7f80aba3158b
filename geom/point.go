// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geom implements the geometric primitives shared by the gridblock
// model: global (XYZ) and fracture-set-local (IJK) points, the gridblock
// trilinear (u,v,w) mapping and its inverse, and random sampling.
package geom

import "math"

// PointXYZ is a point in the global frame: X east, Y north, Z up.
// Value type, copied on pass.
type PointXYZ struct {
	X, Y, Z float64
}

// Depth returns -Z
func (p PointXYZ) Depth() float64 { return -p.Z }

// Sub returns p-q as a displacement
func (p PointXYZ) Sub(q PointXYZ) PointXYZ {
	return PointXYZ{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Add returns p+q
func (p PointXYZ) Add(q PointXYZ) PointXYZ {
	return PointXYZ{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

// Scale returns s*p
func (p PointXYZ) Scale(s float64) PointXYZ {
	return PointXYZ{s * p.X, s * p.Y, s * p.Z}
}

// Dist2D returns the horizontal (X,Y) distance between p and q
func (p PointXYZ) Dist2D(q PointXYZ) float64 {
	dx, dy := p.X-q.X, p.Y-q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// PointIJK is a point in a fracture-set-local frame: I parallel to strike,
// J perpendicular (positive on one chosen side of the set), K vertical
// relative to the layer mid-plane. Value type.
type PointIJK struct {
	I, J, K float64
}

// Sub returns p-q
func (p PointIJK) Sub(q PointIJK) PointIJK {
	return PointIJK{p.I - q.I, p.J - q.J, p.K - q.K}
}

// Add returns p+q
func (p PointIJK) Add(q PointIJK) PointIJK {
	return PointIJK{p.I + q.I, p.J + q.J, p.K + q.K}
}

// Scale returns s*p
func (p PointIJK) Scale(s float64) PointIJK {
	return PointIJK{s * p.I, s * p.J, s * p.K}
}

// DistIJ returns the in-plane (I,J) distance between p and q, ignoring K
func (p PointIJK) DistIJ(q PointIJK) float64 {
	di, dj := p.I-q.I, p.J-q.J
	return math.Sqrt(di*di + dj*dj)
}

// ToLocal converts a global point to this set's local frame, given the
// set's strike azimuth (radians, measured from north) and an origin point
// on the set's reference pillar. K is taken directly from depth relative to
// the supplied mid-plane elevation.
func ToLocal(p, origin PointXYZ, strikeRad, midPlaneZ float64) PointIJK {
	dx, dy := p.X-origin.X, p.Y-origin.Y
	s, c := math.Sin(strikeRad), math.Cos(strikeRad)
	// I along strike, J perpendicular (positive to the chosen side)
	i := dx*s + dy*c
	j := dx*c - dy*s
	return PointIJK{I: i, J: j, K: p.Z - midPlaneZ}
}

// ToGlobal converts a local IJK point back to the global frame
func ToGlobal(p PointIJK, origin PointXYZ, strikeRad, midPlaneZ float64) PointXYZ {
	s, c := math.Sin(strikeRad), math.Cos(strikeRad)
	x := origin.X + p.I*s + p.J*c
	y := origin.Y + p.I*c - p.J*s
	z := midPlaneZ + p.K
	return PointXYZ{X: x, Y: y, Z: z}
}

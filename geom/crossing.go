// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

// CrossoverKind distinguishes the outcome of a horizontal-plane line-crossing
// query: an explicit sum type carrying both the outcome and, where
// applicable, the crossing parameter, rather than a "null means failure"
// convention.
type CrossoverKind int

const (
	// CrossoverNone means the ray and segment do not cross within bounds
	CrossoverNone CrossoverKind = iota
	// CrossoverClipped means the ray crosses the segment at a finite
	// positive distance
	CrossoverClipped
	// CrossoverCoincident means the ray and segment are collinear — distinct
	// from CrossoverNone so callers never confuse "no crossing" with
	// "infinitely many crossings"
	CrossoverCoincident
)

// Crossover is the result of a ray/segment crossing test in the (I,J) plane
type Crossover struct {
	Kind  CrossoverKind
	Point PointIJK
	Param float64 // distance along the ray's direction vector
}

// RayCrossesSegment computes where the ray {origin + t*dir : t>=0} crosses
// the segment [segA,segB] in the horizontal (I,J) plane. K is linearly
// carried along the ray's direction.
func RayCrossesSegment(origin, dir, segA, segB PointIJK) Crossover {
	dx, dy := dir.I, dir.J
	bx, by := segB.I-segA.I, segB.J-segA.J
	det := -dx*by + bx*dy
	if det == 0 {
		ax, ay := segA.I-origin.I, segA.J-origin.J
		if (dx != 0 || dy != 0) && ax*dy-ay*dx == 0 {
			return Crossover{Kind: CrossoverCoincident}
		}
		return Crossover{Kind: CrossoverNone}
	}
	ax, ay := segA.I-origin.I, segA.J-origin.J
	t := (ax*(-by) - (-bx)*ay) / det
	s := (dx*ay - dy*ax) / det
	if t < 0 || s < 0 || s > 1 {
		return Crossover{Kind: CrossoverNone}
	}
	return Crossover{
		Kind:  CrossoverClipped,
		Param: t,
		Point: PointIJK{I: origin.I + t*dir.I, J: origin.J + t*dir.J, K: origin.K + t*dir.K},
	}
}

// RayCrossesAxisAlignedBound clips the ray against one axis-aligned
// gridblock boundary line (a constant-I or constant-J line segment, e.g. one
// of the four N/E/S/W boundaries), reusing RayCrossesSegment.
func RayCrossesAxisAlignedBound(origin, dir PointIJK, boundA, boundB PointIJK) Crossover {
	return RayCrossesSegment(origin, dir, boundA, boundB)
}

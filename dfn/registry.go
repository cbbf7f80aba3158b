// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package dfn implements C9, the global discrete-fracture-network
// registry: an arena-indexed store of macrofracture identities and
// nucleated microfractures shared across every gridblock, append-only
// during nucleation and mutate-by-reference during cross-gridblock
// merges. Grounded on the flat
// arena-over-slices idiom of fem/allelements.go.
package dfn

import "github.com/cpmech/dfngen/geom"

// SegmentRef locates one macrofracture segment within the owning
// FractureGrid: gridblock index, fracture-set index within that
// gridblock, and segment index within that set's segment slice.
type SegmentRef struct {
	GridblockIdx, SetIdx, SegmentIdx int
}

// GlobalMacrofracture is one physical fracture's identity across however
// many gridblock-local segments it has accumulated via nucleation,
// propagation and cross-gridblock hand-off.
type GlobalMacrofracture struct {
	ID       int
	Segments []SegmentRef
}

// GlobalMicrofracture is the XYZ-frame twin of a nucleated
// MicrofractureIJK, kept in the registry for whole-of-grid queries.
type GlobalMicrofracture struct {
	ID           int
	GridblockIdx int
	SetIdx       int
	DipsetIdx    int
	Centre       geom.PointXYZ
	Radius       float64
	Active       bool
}

// GlobalRegistry is the append-only-except-merge arena: macrofracture
// identities are never removed, only merged
// into another identity (Merge keeps its first argument, whatever its ID); a per-identity lock would serialise merges in
// a concurrent driver, but the reference engine is single-threaded.
type GlobalRegistry struct {
	Macrofractures  []*GlobalMacrofracture
	Microfractures  []*GlobalMicrofracture
	mergedInto      map[int]int // id -> id it was merged into, transitively resolved by Resolve
}

// NewGlobalRegistry builds an empty registry
func NewGlobalRegistry() *GlobalRegistry {
	return &GlobalRegistry{mergedInto: make(map[int]int)}
}

// NewFracture appends a new macrofracture identity and returns it
func (r *GlobalRegistry) NewFracture(seg SegmentRef) *GlobalMacrofracture {
	f := &GlobalMacrofracture{ID: len(r.Macrofractures), Segments: []SegmentRef{seg}}
	r.Macrofractures = append(r.Macrofractures, f)
	return f
}

// NewMicrofracture appends a new global microfracture record
func (r *GlobalRegistry) NewMicrofracture(gridblockIdx, setIdx, dipsetIdx int, centre geom.PointXYZ, radius float64) *GlobalMicrofracture {
	m := &GlobalMicrofracture{
		ID: len(r.Microfractures), GridblockIdx: gridblockIdx, SetIdx: setIdx, DipsetIdx: dipsetIdx,
		Centre: centre, Radius: radius, Active: true,
	}
	r.Microfractures = append(r.Microfractures, m)
	return m
}

// Resolve follows the merge chain to the current surviving identity for id
func (r *GlobalRegistry) Resolve(id int) int {
	for {
		next, ok := r.mergedInto[id]
		if !ok {
			return id
		}
		id = next
	}
}

// Fracture returns the surviving GlobalMacrofracture for id, following
// merges.
func (r *GlobalRegistry) Fracture(id int) *GlobalMacrofracture {
	return r.Macrofractures[r.Resolve(id)]
}

// Merge folds b's identity into a's: a survives, b's segments are appended to
// a, and b's ID is recorded as merged so future lookups resolve to a.
// Merging a fracture into itself (already-merged aliases colliding) is a
// no-op.
func (r *GlobalRegistry) Merge(a, b int) {
	ra, rb := r.Resolve(a), r.Resolve(b)
	if ra == rb {
		return
	}
	survivor := r.Macrofractures[ra]
	victim := r.Macrofractures[rb]
	survivor.Segments = append(survivor.Segments, victim.Segments...)
	victim.Segments = nil
	r.mergedInto[rb] = ra
}

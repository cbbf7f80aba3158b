// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package rnd implements a seedable, named random source with deterministic
// per-gridblock child streams, so a parallel run reproduces the same
// network as a sequential one. gosl/rnd's own sampling idiom
// (rnd.Init(seed) plus package-level Int/Float64/named-distribution
// samplers) is global mutable state with no per-object child-stream
// derivation, so it can't serve this requirement; this package wraps
// math/rand's *rand.Rand instead, one instance per Stream.
package rnd

import "math/rand"

// Stream is a named, seedable random source
type Stream struct {
	seed uint64
	src  *rand.Rand
}

// NewStream builds a stream from a 64-bit seed
func NewStream(seed uint64) *Stream {
	return &Stream{seed: seed, src: rand.New(rand.NewSource(int64(seed)))}
}

// Float64 returns a uniform sample in [0,1)
func (s *Stream) Float64() float64 { return s.src.Float64() }

// Uniform returns a uniform sample in [lo,hi)
func (s *Stream) Uniform(lo, hi float64) float64 {
	return lo + s.Float64()*(hi-lo)
}

// Bernoulli returns true with probability p (p clamped to [0,1])
func (s *Stream) Bernoulli(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return s.Float64() < p
}

// splitMix64 is the SplitMix64 step function, used to derive deterministic,
// well-distributed child seeds from an index.
func splitMix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	z := x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// Child derives a deterministic child stream for gridblock index idx,
// independent of iteration/scheduling order.
func (s *Stream) Child(idx int) *Stream {
	childSeed := splitMix64(s.seed ^ splitMix64(uint64(idx)))
	return NewStream(childSeed)
}

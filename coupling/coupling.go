// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package coupling implements C6, the cross-set stress-shadow coupling
// that links every fracture set in a gridblock to every other: the
// strike-projection matrices Faa/Fas and the isotropic/anisotropic
// algorithms that turn per-set shadow volumes into the "other-FS" volumes
// each dipset needs for its deactivation checks. Grounded on the
// dense-matrix assembly idiom of fem/element.go's AddToKb (build once from
// geometry, read many times per timestep).
package coupling

import (
	"math"

	"github.com/cpmech/dfngen/ele/dipset"
	"github.com/cpmech/gosl/la"
)

// ProjectionMatrices holds the strike-only projection factors Faa(I,J) and
// Fas(I,J) between every pair of fracture sets in a gridblock. Built once
// from the sets' strikes and unchanged for the life of
// the gridblock.
type ProjectionMatrices struct {
	Faa, Fas *la.Matrix
}

// NewProjectionMatrices builds Faa/Fas from the strike (radians) of each
// set: Faa(I,J) = cos(strike_I - strike_J)^2 (opening-mode projection);
// Fas(I,J) = |sin(strike_I - strike_J)*cos(strike_I - strike_J)| (the
// analogous shear projection), both pure functions of the strike
// difference.
func NewProjectionMatrices(strikes []float64) *ProjectionMatrices {
	n := len(strikes)
	p := &ProjectionMatrices{Faa: la.NewMatrix(n, n), Fas: la.NewMatrix(n, n)}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d := strikes[i] - strikes[j]
			c := math.Cos(d)
			s := math.Sin(d)
			p.Faa.Set(i, j, c*c)
			p.Fas.Set(i, j, math.Abs(s*c))
		}
	}
	return p
}

// StressShadowWidth returns the mean stress-shadow width seen by a
// fracture in set K from a fracture in set I: W = Faa(I,K)*Waa +
// Fas(I,K)*Was.
func (p *ProjectionMatrices) StressShadowWidth(i, k int, waa, was float64) float64 {
	return p.Faa.Get(i, k)*waa + p.Fas.Get(i, k)*was
}

// SetVolumes is the per-set input to the cross-set algorithms: the set's
// own stress-shadow volume fraction (psi, from clear-zone volume) and its
// P32 density, used by both the isotropic and anisotropic regimes.
type SetVolumes struct {
	Psi float64 // 1 - clear-zone volume fraction: fraction of the gridblock shadowed by this set
	P32 float64
	H   float64 // layer thickness used by this set's dipsets
}

// anisotropyIndex returns a P32-anisotropy proxy: the coefficient of
// variation of the sets' P32 values (0 for a perfectly isotropic network,
// growing as one set dominates).
func anisotropyIndex(vols []SetVolumes) float64 {
	n := len(vols)
	if n == 0 {
		return 0
	}
	var mean float64
	for _, v := range vols {
		mean += v.P32
	}
	mean /= float64(n)
	if mean == 0 {
		return 0
	}
	var variance float64
	for _, v := range vols {
		d := v.P32 - mean
		variance += d * d
	}
	variance /= float64(n)
	return math.Sqrt(variance) / mean
}

// ApplyCrossSetShadows runs the regime selected by comparing the network's
// P32-anisotropy index against anisotropyCutoff and writes the resulting
// other-FS stress-shadow volume and exclusion-zone volume back into every
// dipset of every set. sets[i] owns dipsets[i].
func ApplyCrossSetShadows(p *ProjectionMatrices, vols []SetVolumes, dipsets [][]*dipset.FractureDipSet, anisotropyCutoff float64) {
	if anisotropyIndex(vols) <= anisotropyCutoff {
		applyIsotropic(vols, dipsets)
		return
	}
	applyAnisotropic(p, vols, dipsets)
}

// applyIsotropic accumulates, for each "seen-by" set K, the independent
// product of inverse-stress-shadow volumes over every other set I.
func applyIsotropic(vols []SetVolumes, dipsets [][]*dipset.FractureDipSet) {
	n := len(vols)
	for k := 0; k < n; k++ {
		shadow := 1.0
		for i := 0; i < n; i++ {
			if i == k {
				continue
			}
			shadow *= 1 - vols[i].Psi
		}
		shadowVolume := 1 - shadow
		for _, d := range dipsets[k] {
			d.OtherFSShadowVolume = shadowVolume
			d.OtherFSExclusionVolume = shadowVolume
		}
	}
}

// applyAnisotropic computes the tip-overlap matrix between every pair of
// sets and adjusts each set's stress-shadow volume contribution by the
// fraction of its own extent already overlapped by neighbouring sets'
// widened shadows. h is taken per
// "seen-by" set K; sIJ_MFP30 is approximated here by the total P30
// (TotalP30) of the seen-by set K's dipset being corrected.
func applyAnisotropic(p *ProjectionMatrices, vols []SetVolumes, dipsets [][]*dipset.FractureDipSet) {
	n := len(vols)
	for k := 0; k < n; k++ {
		for _, d := range dipsets[k] {
			var overlapTerm float64
			for i := 0; i < n; i++ {
				if i == k {
					continue
				}
				strikeSin := math.Sqrt(math.Max(0, 1-p.Faa.Get(i, k))) // |sin(strike_I-strike_K)| from Faa=cos^2
				if strikeSin == 0 || vols[i].P32 == 0 {
					continue
				}
				sIJMFP30 := d.TotalP30()
				overlap := sIJMFP30 * vols[k].H / (strikeSin * vols[i].P32)
				w := p.StressShadowWidth(i, k, d.Waa, d.Was)
				overlapTerm += overlap * w / 2
			}
			correction := 1 - math.Min(1, overlapTerm)
			d.OtherFSShadowVolume = vols[k].Psi * correction
			d.OtherFSExclusionVolume = vols[k].Psi * correction
		}
	}
}

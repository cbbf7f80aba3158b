// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coupling

import (
	"math"
	"testing"

	"github.com/cpmech/dfngen/ele/dipset"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_projection01(tst *testing.T) {

	chk.PrintTitle("projection01")

	p := NewProjectionMatrices([]float64{0, math.Pi / 2})
	io.Pforan("Faa = %+v\n", p.Faa)

	chk.Scalar(tst, "Faa(0,0)", 1e-12, p.Faa.Get(0, 0), 1)
	chk.Scalar(tst, "Faa(0,1)", 1e-9, p.Faa.Get(0, 1), 0)
	chk.Scalar(tst, "Fas(0,1)", 1e-9, p.Fas.Get(0, 1), 0)
}

func Test_isotropic01(tst *testing.T) {

	chk.PrintTitle("isotropic01")

	p := NewProjectionMatrices([]float64{0, math.Pi / 4})
	vols := []SetVolumes{{Psi: 0.5, P32: 1.0, H: 10}, {Psi: 0.5, P32: 1.0, H: 10}}

	d0 := dipset.NewFractureDipSet(math.Pi/2, dipset.Mode1, dipset.JPlus, 1, 0, 1, 1, 10)
	d1 := dipset.NewFractureDipSet(math.Pi/2, dipset.Mode1, dipset.JPlus, 1, 0, 1, 1, 10)
	dipsets := [][]*dipset.FractureDipSet{{d0}, {d1}}

	ApplyCrossSetShadows(p, vols, dipsets, 1.0) // cutoff=1 forces the isotropic branch (anisotropy index < 1 for equal P32)

	io.Pforan("d0.OtherFSShadowVolume = %v\n", d0.OtherFSShadowVolume)
	chk.Scalar(tst, "other-FS shadow volume (set 0, seen from set 1)", 1e-9, d0.OtherFSShadowVolume, 0.5)
	chk.Scalar(tst, "other-FS shadow volume (set 1, seen from set 0)", 1e-9, d1.OtherFSShadowVolume, 0.5)
}

func Test_anisotropic01(tst *testing.T) {

	chk.PrintTitle("anisotropic01")

	p := NewProjectionMatrices([]float64{0, math.Pi / 2})
	vols := []SetVolumes{{Psi: 0.5, P32: 5.0, H: 10}, {Psi: 0.5, P32: 0.1, H: 10}}

	d0 := dipset.NewFractureDipSet(math.Pi/2, dipset.Mode1, dipset.JPlus, 1, 0, 1, 1, 10)
	d0.AddMacrofractures(5, 10, 1e-4, 1000)
	d1 := dipset.NewFractureDipSet(math.Pi/2, dipset.Mode1, dipset.JPlus, 1, 0, 1, 1, 10)
	d1.AddMacrofractures(1, 10, 1e-4, 1000)
	dipsets := [][]*dipset.FractureDipSet{{d0}, {d1}}

	// force a high anisotropy index by giving the cutoff a value that the
	// skewed P32s (5.0 vs 0.1) will exceed
	ApplyCrossSetShadows(p, vols, dipsets, 0.01)

	io.Pforan("d0.OtherFSShadowVolume = %v, d1.OtherFSShadowVolume = %v\n", d0.OtherFSShadowVolume, d1.OtherFSShadowVolume)
	if d0.OtherFSShadowVolume > vols[0].Psi+1e-9 || d1.OtherFSShadowVolume > vols[1].Psi+1e-9 {
		tst.Errorf("anisotropic correction must not exceed the uncorrected shadow volume")
	}
}

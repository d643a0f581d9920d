// seehuhn.de/go/dcp - read and apply DNG camera profiles
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package dcp

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// whiteBalanceFor returns white balance multipliers for which a camera
// with the given colour matrix records the chromaticity xy as neutral,
// when camWb = inverse(cm) is used as the white balance matrix.
func whiteBalanceFor(t *testing.T, xy XY) [3]float64 {
	t.Helper()
	srgbXYZ, err := xyzSRGB.Inverse()
	require.NoError(t, err)
	return srgbXYZ.Apply(XYtoXYZ(xy))
}

func assertMatrixInDelta(t *testing.T, want, got Matrix3, delta float64) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], delta, "entry %d", i)
	}
}

func TestMakeXYZCAMSingleMatrix(t *testing.T) {
	p := roundTrip(t, &Profile{
		Illuminant1:  D65,
		Illuminant2:  LightSourceNone,
		ColorMatrix1: &testMatrixD65,
	})
	camWb, err := testMatrixD65.Inverse()
	require.NoError(t, err)

	mul := whiteBalanceFor(t, D50)
	wb := ColorTemp{Kelvin: 5000, Mul: mul}
	got, err := p.MakeXYZCAM(wb, [3]float64{1, 1, 1}, camWb, MixIlluminants)
	require.NoError(t, err)

	// For a D50 white, the result is the inverse colour matrix with
	// rows scaled so that camera white maps to sRGB white.
	rowSums := testMatrixD65.Mul(xyzSRGB).Apply([3]float64{1, 1, 1})
	want := camWb.Mul(Diag3(rowSums[0], rowSums[1], rowSums[2]))
	assertMatrixInDelta(t, want, got, 1e-9)

	// The pre-multipliers only change the white point estimate, not
	// the mapping of camera white.
	got, err = p.MakeXYZCAM(wb, [3]float64{2, 1, 1.5}, camWb, MixIlluminants)
	require.NoError(t, err)
	white := got.Apply([3]float64{1, 1, 1})
	srgbWhite := xyzSRGB.Apply([3]float64{1, 1, 1})
	for i := range white {
		assert.InDelta(t, srgbWhite[i], white[i], 1e-9)
	}
}

func TestMakeXYZCAMMix(t *testing.T) {
	cm1 := testMatrixA
	cm2 := mix3x3(testMatrixA, 2, Matrix3{}, 0)
	fm1 := xyzSRGB
	fm2 := xyzAdobeRGB

	dual := roundTrip(t, &Profile{
		Illuminant1:    StandardLightA,
		Illuminant2:    D65,
		ColorMatrix1:   &cm1,
		ColorMatrix2:   &cm2,
		ForwardMatrix1: &fm1,
		ForwardMatrix2: &fm2,
	})
	require.True(t, dual.Illuminants().WillInterpolate)
	warmOnly := roundTrip(t, &Profile{
		Illuminant1:    StandardLightA,
		Illuminant2:    LightSourceNone,
		ColorMatrix1:   &cm1,
		ForwardMatrix1: &fm1,
	})
	coldOnly := roundTrip(t, &Profile{
		Illuminant1:    D65,
		Illuminant2:    LightSourceNone,
		ColorMatrix1:   &cm2,
		ForwardMatrix1: &fm2,
	})

	camWb, err := cm1.Inverse()
	require.NoError(t, err)
	preMul := [3]float64{1, 1, 1}
	xyzCAM := func(p *Profile, xy XY, preferred Illuminant) Matrix3 {
		wb := ColorTemp{Kelvin: 5000, Mul: whiteBalanceFor(t, xy)}
		m, err := p.MakeXYZCAM(wb, preMul, camWb, preferred)
		require.NoError(t, err)
		return m
	}

	warm := XY{0.5267, 0.4133} // about 2000K
	cold := XY{0.2807, 0.2884} // about 10000K
	mid := XY{0.3805, 0.3768}  // about 4000K

	assertMatrixInDelta(t, xyzCAM(warmOnly, warm, MixIlluminants), xyzCAM(dual, warm, MixIlluminants), 1e-12)
	assertMatrixInDelta(t, xyzCAM(coldOnly, cold, MixIlluminants), xyzCAM(dual, cold, MixIlluminants), 1e-12)

	// preferring one illuminant disables the mixing
	assertMatrixInDelta(t, xyzCAM(warmOnly, cold, MixIlluminants), xyzCAM(dual, cold, PreferIlluminant1), 1e-12)
	assertMatrixInDelta(t, xyzCAM(coldOnly, warm, MixIlluminants), xyzCAM(dual, warm, PreferIlluminant2), 1e-12)

	m := xyzCAM(dual, mid, MixIlluminants)
	var d1, d2 float64
	m1 := xyzCAM(warmOnly, mid, MixIlluminants)
	m2 := xyzCAM(coldOnly, mid, MixIlluminants)
	for i := range m {
		d1 = max(d1, math.Abs(m[i]-m1[i]))
		d2 = max(d2, math.Abs(m[i]-m2[i]))
	}
	assert.Greater(t, d1, 1e-4)
	assert.Greater(t, d2, 1e-4)

	// in all cases, camera white maps to sRGB white
	srgbWhite := xyzSRGB.Apply([3]float64{1, 1, 1})
	for _, xy := range []XY{warm, mid, cold} {
		white := xyzCAM(dual, xy, MixIlluminants).Apply([3]float64{1, 1, 1})
		for i := range white {
			assert.InDelta(t, srgbWhite[i], white[i], 1e-9)
		}
	}
}

func TestMakeXYZCAMSingular(t *testing.T) {
	p := roundTrip(t, &Profile{
		Illuminant1:  D65,
		Illuminant2:  LightSourceNone,
		ColorMatrix1: &testMatrixD65,
	})
	wb := ColorTemp{Kelvin: 5000, Mul: [3]float64{1, 1, 1}}
	_, err := p.MakeXYZCAM(wb, [3]float64{1, 1, 1}, Matrix3{}, MixIlluminants)
	if !errors.Is(err, ErrSingularMatrix) {
		t.Errorf("got %v, want ErrSingularMatrix", err)
	}

	flat := Matrix3{
		1, 1, 1,
		1, 1, 1,
		1, 1, 1,
	}
	bad := roundTrip(t, &Profile{
		Illuminant1:  D65,
		Illuminant2:  LightSourceNone,
		ColorMatrix1: &flat,
	})
	_, err = bad.MakeXYZCAM(wb, [3]float64{1, 1, 1}, Identity3, MixIlluminants)
	if !errors.Is(err, ErrSingularMatrix) {
		t.Errorf("got %v, want ErrSingularMatrix", err)
	}
}

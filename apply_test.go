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
	"image"
	"testing"

	"github.com/mdouchement/hdr"
	"github.com/mdouchement/hdr/hdrcolor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPixels = [][3]float32{
	{20000, 22000, 18000},
	{5000, 4000, 6000},
	{40000, 41000, 39000},
	{1000, 3000, 2000},
	{0, 0, 0},
	{30000, 10000, 12000},
}

// testImage returns a 3x2 image holding testPixels.
func testImage() *PlanarImage {
	img := NewPlanarImage(3, 2)
	for i, c := range testPixels {
		img.SetRGB(i%3, i/3, c[0], c[1], c[2])
	}
	return img
}

func testOptions(t *testing.T) *ApplyOptions {
	t.Helper()
	camWb, err := testMatrixD65.Inverse()
	require.NoError(t, err)
	return &ApplyOptions{
		WorkingSpace: "sRGB",
		WhiteBalance: ColorTemp{Kelvin: 5000, Mul: whiteBalanceFor(t, D50)},
		PreMul:       [3]float64{1, 1, 1},
		CamWbMatrix:  camWb,
	}
}

func TestApplyMatrixOnly(t *testing.T) {
	p := roundTrip(t, &Profile{
		Illuminant1:  D65,
		Illuminant2:  LightSourceNone,
		ColorMatrix1: &testMatrixD65,
	})
	opts := testOptions(t)
	// requested, but the profile has neither
	opts.UseToneCurve = true
	opts.ApplyLookTable = true

	img := testImage()
	require.NoError(t, p.Apply(img, opts))

	mXYZCAM, err := p.MakeXYZCAM(opts.WhiteBalance, opts.PreMul, opts.CamWbMatrix, opts.PreferredIlluminant)
	require.NoError(t, err)
	mWork, err := DefaultSpaces.InverseMatrix("sRGB")
	require.NoError(t, err)
	mat := mWork.Mul(mXYZCAM)

	for i, c := range testPixels {
		want := mat.Apply([3]float64{float64(c[0]), float64(c[1]), float64(c[2])})
		r, g, b := img.RGBAt(i%3, i/3)
		assert.InDelta(t, want[0], r, 0.1)
		assert.InDelta(t, want[1], g, 0.1)
		assert.InDelta(t, want[2], b, 0.1)
	}
}

func TestApplyIdentityTable(t *testing.T) {
	direct := roundTrip(t, &Profile{
		Illuminant1:  D65,
		Illuminant2:  LightSourceNone,
		ColorMatrix1: &testMatrixD65,
	})
	withTable := roundTrip(t, &Profile{
		Illuminant1:  D65,
		Illuminant2:  LightSourceNone,
		ColorMatrix1: &testMatrixD65,
		LookTable: &HSVTable{
			HueDivisions: 1,
			SatDivisions: 1,
			ValDivisions: 1,
			Data:         []HSBModify{{0, 1, 1}},
		},
	})
	require.True(t, withTable.HasLookTable())

	opts := testOptions(t)
	opts.ApplyLookTable = true

	want := testImage()
	require.NoError(t, direct.Apply(want, opts))
	got := testImage()
	require.NoError(t, withTable.Apply(got, opts))

	for i := range want.R {
		assert.InDelta(t, want.R[i], got.R[i], 1)
		assert.InDelta(t, want.G[i], got.G[i], 1)
		assert.InDelta(t, want.B[i], got.B[i], 1)
	}
}

func TestApplyHDRImage(t *testing.T) {
	p := roundTrip(t, &Profile{
		Illuminant1:  D65,
		Illuminant2:  LightSourceNone,
		ColorMatrix1: &testMatrixD65,
	})
	opts := testOptions(t)

	want := testImage()
	require.NoError(t, p.Apply(want, opts))

	rgb := hdr.NewRGB(image.Rect(5, 5, 8, 7))
	for i, c := range testPixels {
		rgb.SetRGB(5+i%3, 5+i/3, hdrcolor.RGB{
			R: float64(c[0]) / 65535,
			G: float64(c[1]) / 65535,
			B: float64(c[2]) / 65535,
		})
	}
	img := NewHDRImage(rgb)
	w, h := img.Size()
	require.Equal(t, [2]int{3, 2}, [2]int{w, h})
	require.NoError(t, p.Apply(img, opts))

	for i := range testPixels {
		r, g, b := img.RGBAt(i%3, i/3)
		assert.InDelta(t, want.R[i], r, 0.1)
		assert.InDelta(t, want.G[i], g, 0.1)
		assert.InDelta(t, want.B[i], b, 0.1)
	}
}

func TestApplyErrors(t *testing.T) {
	p := roundTrip(t, &Profile{
		Illuminant1:  D65,
		Illuminant2:  LightSourceNone,
		ColorMatrix1: &testMatrixD65,
	})

	opts := testOptions(t)
	opts.WorkingSpace = "no such space"
	err := p.Apply(testImage(), opts)
	assert.True(t, errors.Is(err, ErrUnknownSpace), "got %v", err)

	opts = testOptions(t)
	opts.CamWbMatrix = Matrix3{}
	err = p.Apply(testImage(), opts)
	assert.True(t, errors.Is(err, ErrSingularMatrix), "got %v", err)

	_, err = p.NewApplyState("no such space", true, true, true)
	assert.True(t, errors.Is(err, ErrUnknownSpace), "got %v", err)
}

// tile returns the planes of a width×height tile with rows stride
// values apart, filled with test values.  The padding holds -1.
func tile(width, height, stride int) (r, g, b []float32) {
	n := (height-1)*stride + width
	r = make([]float32, n)
	g = make([]float32, n)
	b = make([]float32, n)
	for i := range r {
		r[i], g[i], b[i] = -1, -1, -1
	}
	k := 0
	for y := range height {
		for x := range width {
			c := testPixels[k%len(testPixels)]
			i := y*stride + x
			r[i], g[i], b[i] = c[0], c[1], c[2]
			k++
		}
	}
	return r, g, b
}

func TestApplyTileNoOp(t *testing.T) {
	p := roundTrip(t, &Profile{
		Illuminant1:  D65,
		Illuminant2:  LightSourceNone,
		ColorMatrix1: &testMatrixD65,
	})
	as, err := p.NewApplyState("sRGB", true, true, true)
	require.NoError(t, err)
	assert.False(t, as.UseToneCurve)
	assert.False(t, as.ApplyLookTable)
	assert.Equal(t, float32(1), as.BaselineScale)

	r, g, b := tile(3, 2, 3)
	r[0], g[0], b[0] = 70000, -20, 1e9
	wantR := append([]float32(nil), r...)
	wantG := append([]float32(nil), g...)
	wantB := append([]float32(nil), b...)

	as.ApplyTile(r, g, b, 3, 2, 3)
	assert.Equal(t, wantR, r)
	assert.Equal(t, wantG, g)
	assert.Equal(t, wantB, b)
}

func TestApplyTileBaseline(t *testing.T) {
	offset := 1.0
	p := roundTrip(t, &Profile{
		Illuminant1:            D65,
		Illuminant2:            LightSourceNone,
		ColorMatrix1:           &testMatrixD65,
		BaselineExposureOffset: &offset,
	})

	off, err := p.NewApplyState("sRGB", false, false, false)
	require.NoError(t, err)
	assert.Equal(t, float32(1), off.BaselineScale)

	as, err := p.NewApplyState("sRGB", false, false, true)
	require.NoError(t, err)
	assert.Equal(t, float32(2), as.BaselineScale)

	// two rows of two pixels, with one padding value per row
	r, g, b := tile(2, 2, 3)
	as.ApplyTile(r, g, b, 2, 2, 3)
	assert.Equal(t, []float32{40000, 10000, -1, 80000, 2000}, r)
	assert.Equal(t, []float32{44000, 8000, -1, 82000, 6000}, g)
	assert.Equal(t, []float32{36000, 12000, -1, 78000, 4000}, b)

	assert.Panics(t, func() {
		as.ApplyTile(r[:4], g, b, 2, 2, 3)
	})
}

func TestApplyTileLookTable(t *testing.T) {
	p := roundTrip(t, &Profile{
		Illuminant1:  D65,
		Illuminant2:  LightSourceNone,
		ColorMatrix1: &testMatrixD65,
		LookTable: &HSVTable{
			HueDivisions: 1,
			SatDivisions: 1,
			ValDivisions: 1,
			Data:         []HSBModify{{0, 1, 1}},
		},
	})

	for _, space := range []string{ProPhoto, "sRGB", "Adobe RGB"} {
		t.Run(space, func(t *testing.T) {
			as, err := p.NewApplyState(space, false, true, false)
			require.NoError(t, err)
			assert.True(t, as.ApplyLookTable)
			assert.Equal(t, space == ProPhoto, as.AlreadyProPhoto)

			r, g, b := tile(3, 2, 3)
			wantR := append([]float32(nil), r...)
			wantG := append([]float32(nil), g...)
			wantB := append([]float32(nil), b...)
			as.ApplyTile(r, g, b, 3, 2, 3)
			for i := range r {
				assert.InDelta(t, wantR[i], r[i], 2)
				assert.InDelta(t, wantG[i], g[i], 2)
				assert.InDelta(t, wantB[i], b[i], 2)
			}
		})
	}

	as, err := p.NewApplyState(ProPhoto, false, true, false)
	require.NoError(t, err)
	r := []float32{70000, -5}
	g := []float32{100, 100}
	b := []float32{100, 100}
	as.ApplyTile(r, g, b, 2, 1, 2)
	assert.InDelta(t, 65535, r[0], 0.01)
	assert.InDelta(t, 0, r[1], 0.01)
}

func TestApplyTileToneCurve(t *testing.T) {
	p := roundTrip(t, &Profile{
		Illuminant1:     D65,
		Illuminant2:     LightSourceNone,
		ColorMatrix1:    &testMatrixD65,
		ToneCurvePoints: []float32{0, 0, 0.5, 0.75, 1, 1},
	})
	as, err := p.NewApplyState(ProPhoto, true, true, false)
	require.NoError(t, err)
	assert.True(t, as.UseToneCurve)
	assert.False(t, as.ApplyLookTable)

	r, g, b := tile(3, 2, 3)
	wantR := append([]float32(nil), r...)
	wantG := append([]float32(nil), g...)
	wantB := append([]float32(nil), b...)
	for i := range wantR {
		wantR[i], wantG[i], wantB[i] = p.ToneCurve().Apply(wantR[i], wantG[i], wantB[i])
	}

	as.ApplyTile(r, g, b, 3, 2, 3)
	assert.Equal(t, wantR, r)
	assert.Equal(t, wantG, g)
	assert.Equal(t, wantB, b)
	assert.InDelta(t, 0.75*65535, p.ToneCurve().Evaluate(0.5)*65535, 1e-9)
}

// xyzSpace is a working space provider with XYZ as the only space.
type xyzSpace struct{}

func (xyzSpace) Matrix(name string) (Matrix3, error) {
	if name != "XYZ" {
		return Matrix3{}, ErrUnknownSpace
	}
	return Identity3, nil
}

func (xyzSpace) InverseMatrix(name string) (Matrix3, error) {
	return xyzSpace{}.Matrix(name)
}

func TestApplyStateWithSpaces(t *testing.T) {
	p := roundTrip(t, &Profile{
		Illuminant1:     D65,
		Illuminant2:     LightSourceNone,
		ColorMatrix1:    &testMatrixD65,
		ToneCurvePoints: []float32{0, 0, 1, 0.5},
	})
	_, err := p.NewApplyStateWithSpaces(xyzSpace{}, "sRGB", true, false, false)
	assert.True(t, errors.Is(err, ErrUnknownSpace))

	as, err := p.NewApplyStateWithSpaces(xyzSpace{}, "XYZ", true, false, false)
	require.NoError(t, err)
	assert.False(t, as.AlreadyProPhoto)

	// a grey in XYZ D50 stays grey, at half the luminance
	r := []float32{0.9642 * 20000}
	g := []float32{20000}
	b := []float32{0.8249 * 20000}
	as.ApplyTile(r, g, b, 1, 1, 1)
	assert.InDelta(t, 0.9642*10000, r[0], 5)
	assert.InDelta(t, 10000, g[0], 5)
	assert.InDelta(t, 0.8249*10000, b[0], 5)
}

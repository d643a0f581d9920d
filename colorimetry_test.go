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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestXYRoundTrip(t *testing.T) {
	points := []XY{
		D50,
		{0.3127, 0.3290},
		{0.4476, 0.4074},
		{0.2, 0.7},
		{0.64, 0.33},
	}
	for _, xy := range points {
		got := XYZtoXY(XYtoXYZ(xy))
		assert.InDelta(t, xy.X, got.X, 1e-12)
		assert.InDelta(t, xy.Y, got.Y, 1e-12)
	}
}

func TestXYZtoXYBlack(t *testing.T) {
	assert.Equal(t, D50, XYZtoXY([3]float64{0, 0, 0}))
	assert.Equal(t, D50, XYZtoXY([3]float64{-1, 0.5, 0}))
}

func TestXYtoXYZClamp(t *testing.T) {
	xyz := XYtoXYZ(XY{1, 1})
	for _, v := range xyz {
		assert.False(t, math.IsInf(v, 0) || math.IsNaN(v))
	}
	assert.InDelta(t, 1.0, xyz[0], 1e-9)
	assert.Equal(t, 1.0, xyz[1])
	assert.InDelta(t, 0.0, xyz[2], 1e-5)

	xyz = XYtoXYZ(XY{0, 0})
	for _, v := range xyz {
		assert.False(t, math.IsInf(v, 0) || math.IsNaN(v))
	}
}

func TestMapWhiteMatrix(t *testing.T) {
	d65 := XYtoXYZ(XY{0.3127, 0.3290})

	m := mapWhiteMatrix(d50XYZ, d50XYZ)
	for i := range m {
		assert.InDelta(t, Identity3[i], m[i], 1e-9)
	}

	m = mapWhiteMatrix(d50XYZ, d65)
	got := m.Apply(d50XYZ)
	for i := range got {
		assert.InDelta(t, d65[i], got[i], 1e-9)
	}
}

func TestSRGBGamma(t *testing.T) {
	assert.Equal(t, float32(0), SRGBGammaForward(0))
	assert.InDelta(t, 1, SRGBGammaForward(1), 1e-6)
	assert.InDelta(t, 0.7354, SRGBGammaForward(0.5), 1e-4)

	for _, y := range []float32{0, 0.001, 0.04, 0.2, 0.5, 0.9, 1, 1.5} {
		x := SRGBGammaInverse(y)
		assert.InDelta(t, y, SRGBGammaForward(x), 1e-5, "y=%g", y)
	}

	// the extension above 1 is continuous and increasing
	assert.Greater(t, SRGBGammaForward(1.01), SRGBGammaForward(1))
	assert.InDelta(t, SRGBGammaForward(1), SRGBGammaForward(1.0001), 1e-3)
}

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

import "math"

// XY is a point in the CIE 1931 xy chromaticity diagram.
type XY struct {
	X, Y float64
}

// D50 is the chromaticity of the D50 white point, used as the profile
// connection space white.
var D50 = XY{0.3457, 0.3585}

// d50XYZ is the XYZ value of D50 as used for white point mapping.
var d50XYZ = [3]float64{0.3457, 0.3585, 0.2958}

// XYZtoXY converts a tristimulus value to chromaticity coordinates.
// If X+Y+Z is not positive, the chromaticity of D50 is returned.
func XYZtoXY(xyz [3]float64) XY {
	total := xyz[0] + xyz[1] + xyz[2]
	if total > 0 {
		return XY{xyz[0] / total, xyz[1] / total}
	}
	return D50
}

// XYtoXYZ converts chromaticity coordinates to a tristimulus value with
// Y = 1.  Coordinates are restricted to the range of real chromaticities
// first, so that extreme inputs do not produce meaningless results.
func XYtoXYZ(xy XY) [3]float64 {
	x := clamp(xy.X, 0.000001, 0.999999)
	y := clamp(xy.Y, 0.000001, 0.999999)
	if x+y > 0.999999 {
		scale := 0.999999 / (x + y)
		x *= scale
		y *= scale
	}
	return [3]float64{x / y, 1, (1 - x - y) / y}
}

// bradford is the linearized Bradford cone response matrix.
var (
	bradford = Matrix3{
		0.8951, 0.2664, -0.1614,
		-0.7502, 1.7135, 0.0367,
		0.0389, -0.0685, 1.0296,
	}
	bradfordInv = mustInvert(bradford)
)

// mapWhiteMatrix returns the Bradford chromatic adaptation matrix which
// maps white1 to white2.  The per-channel scale factors are limited to
// the range [0.1, 10].
func mapWhiteMatrix(white1, white2 [3]float64) Matrix3 {
	w1 := bradford.Apply(white1)
	w2 := bradford.Apply(white2)

	var a [3]float64
	for i := range 3 {
		// negative cone responses carry no meaning
		v1 := max(w1[i], 0)
		v2 := max(w2[i], 0)
		s := 10.0
		if v1 > 0 {
			s = v2 / v1
		}
		a[i] = clamp(s, 0.1, 10)
	}

	return bradfordInv.Mul(Diag3(a[0], a[1], a[2])).Mul(bradford)
}

// SRGBGammaForward applies the sRGB transfer function.
// Values above 1 are extended linearly, since pixel data is not clipped.
func SRGBGammaForward(x float32) float32 {
	switch {
	case x <= 0.0031308:
		return x * 12.92
	case x > 1:
		return 1 + (x-1)*(1.055*(1.0/2.4))
	default:
		return 1.055*float32(math.Pow(float64(x), 1.0/2.4)) - 0.055
	}
}

// SRGBGammaInverse is the inverse of [SRGBGammaForward].
func SRGBGammaInverse(y float32) float32 {
	switch {
	case y <= 0.0031308*12.92:
		return y * (1.0 / 12.92)
	case y > 1:
		return 1 + (y-1)/(1.055*(1.0/2.4))
	default:
		return float32(math.Pow(float64((y+0.055)*(1.0/1.055)), 2.4))
	}
}

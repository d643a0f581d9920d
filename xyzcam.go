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

// WhiteBalance describes the white balance chosen for an image.
type WhiteBalance interface {
	// Multipliers returns the channel multipliers in sRGB space.
	Multipliers() (r, g, b float64)

	// Temperature returns the colour temperature in Kelvin.
	Temperature() float64
}

// ColorTemp is a simple implementation of [WhiteBalance].
type ColorTemp struct {
	Kelvin float64
	Mul    [3]float64
}

// Multipliers implements the [WhiteBalance] interface.
func (c ColorTemp) Multipliers() (r, g, b float64) {
	return c.Mul[0], c.Mul[1], c.Mul[2]
}

// Temperature implements the [WhiteBalance] interface.
func (c ColorTemp) Temperature() float64 {
	return c.Kelvin
}

// Illuminant selects which calibration illuminant of a dual-illuminant
// profile is used.
type Illuminant int

const (
	// MixIlluminants interpolates between the two illuminants according
	// to the white balance.
	MixIlluminants Illuminant = 0

	PreferIlluminant1 Illuminant = 1
	PreferIlluminant2 Illuminant = 2
)

// matrixChoice reports which of a pair of optional matrices take part in
// the computation, after applying the illuminant preference.
func matrixChoice(m1, m2 *Matrix3, preferred Illuminant) (use1, use2 bool) {
	use1 = m1 != nil
	use2 = m2 != nil
	switch preferred {
	case PreferIlluminant1:
		if use1 {
			use2 = false
		}
	case PreferIlluminant2:
		if use2 {
			use1 = false
		}
	}
	return use1, use2
}

// pick returns the matrix for the given mix weight of the first matrix.
func pick(m1, m2 *Matrix3, use1, use2 bool, mix float64) Matrix3 {
	switch {
	case use1 && use2:
		if mix >= 1 {
			return *m1
		} else if mix <= 0 {
			return *m2
		}
		return mix3x3(*m1, mix, *m2, 1-mix)
	case use1:
		return *m1
	default:
		return *m2
	}
}

// findXYZtoCamera returns the colour matrix for the given white point.
func (p *Profile) findXYZtoCamera(white XY, preferred Illuminant) Matrix3 {
	use1, use2 := matrixChoice(p.ColorMatrix1, p.ColorMatrix2, preferred)

	var mix float64
	if use1 && use2 {
		wbTemp, _ := XYCoord2Temperature(white)
		mix = illuminantMix(wbTemp, p.temperature1, p.temperature2)
	}
	return pick(p.ColorMatrix1, p.ColorMatrix2, use1, use2, mix)
}

// neutralToXY finds the white point for which the camera records the
// given neutral values.  If the iteration does not converge, the average
// of the last two estimates is returned.
func (p *Profile) neutralToXY(neutral [3]float64, preferred Illuminant) (XY, error) {
	const maxPasses = 30

	last := D50
	for pass := range maxPasses {
		xyzToCamera := p.findXYZtoCamera(last, preferred)
		inv, err := xyzToCamera.Inverse()
		if err != nil {
			return XY{}, err
		}
		next := XYZtoXY(inv.Apply(neutral))

		if math.Abs(next.X-last.X)+math.Abs(next.Y-last.Y) < 0.0000001 {
			return next, nil
		}

		// Most likely, we are in a two value oscillation.
		if pass == maxPasses-1 {
			next.X = (last.X + next.X) * 0.5
			next.Y = (last.Y + next.Y) * 0.5
		}
		last = next
	}
	return last, nil
}

// MakeXYZCAM computes the matrix which converts camera RGB to XYZ D50
// for the given white balance.
//
// The white balance multipliers are given in sRGB space.  They are
// converted to camera space using camWbMatrix (the camera RGB to XYZ
// matrix used by the raw decoder) and the raw pre-multipliers preMul.
// The resulting neutral is converted into a white point, which selects
// the mix between the two calibration illuminants.
func (p *Profile) MakeXYZCAM(wb WhiteBalance, preMul [3]float64, camWbMatrix Matrix3, preferred Illuminant) (Matrix3, error) {
	var neutral [3]float64
	{
		r, g, b := wb.Multipliers()
		camXYZ, err := camWbMatrix.Inverse()
		if err != nil {
			return Matrix3{}, err
		}
		camRGB := camXYZ.Mul(xyzSRGB)
		camWB := camRGB.Apply([3]float64{r, g, b})
		var maxEntry float64
		for i := range neutral {
			neutral[i] = camWB[i] / preMul[i]
			maxEntry = max(maxEntry, neutral[i])
		}
		for i := range neutral {
			neutral[i] /= maxEntry
		}
	}

	whiteXY, err := p.neutralToXY(neutral, preferred)
	if err != nil {
		return Matrix3{}, err
	}

	useFwd1, useFwd2 := matrixChoice(p.ForwardMatrix1, p.ForwardMatrix2, preferred)
	useCol1, useCol2 := matrixChoice(p.ColorMatrix1, p.ColorMatrix2, preferred)

	mix := 1.0
	if (useCol1 && useCol2) || (useFwd1 && useFwd2) {
		wbTemp, _ := XYCoord2Temperature(whiteXY)
		mix = illuminantMix(wbTemp, p.temperature1, p.temperature2)
	}

	mCol := pick(p.ColorMatrix1, p.ColorMatrix2, useCol1, useCol2, mix)
	whiteXYZ := XYtoXYZ(whiteXY)

	var camXYZ Matrix3
	if useFwd1 || useFwd2 {
		mFwd := pick(p.ForwardMatrix1, p.ForwardMatrix2, useFwd1, useFwd2, mix)

		cameraWhite := mCol.Apply(whiteXYZ)
		whiteDiagInv, err := Diag3(cameraWhite[0], cameraWhite[1], cameraWhite[2]).Inverse()
		if err != nil {
			return Matrix3{}, err
		}
		xyzCam := mFwd.Mul(whiteDiagInv)
		camXYZ, err = xyzCam.Inverse()
		if err != nil {
			return Matrix3{}, err
		}
	} else {
		camXYZ = mCol.Mul(mapWhiteMatrix(d50XYZ, whiteXYZ))
	}

	// Normalise so that camera white (1, 1, 1) maps to sRGB white.
	camRGB := camXYZ.Mul(xyzSRGB)
	for i := range 3 {
		row := camRGB[3*i : 3*i+3]
		sum := row[0] + row[1] + row[2]
		for j := range row {
			row[j] /= sum
		}
	}
	rgbCam, err := camRGB.Inverse()
	if err != nil {
		return Matrix3{}, err
	}
	return xyzSRGB.Mul(rgbCam), nil
}

// MakeHueSatMap returns the hue/saturation map for the given white
// balance, or nil if the profile has none.
//
// The result is either one of the profile's own tables, which must not be
// modified, or a newly allocated table interpolated between the two
// illuminants, which belongs to the caller.
func (p *Profile) MakeHueSatMap(wb WhiteBalance, preferred Illuminant) *HSVTable {
	if p.HueSatMap1 == nil {
		return nil
	}
	if p.HueSatMap2 == nil {
		return p.HueSatMap1
	}

	switch preferred {
	case PreferIlluminant1:
		return p.HueSatMap1
	case PreferIlluminant2:
		return p.HueSatMap2
	}

	if p.temperature1 <= 0 || p.temperature2 <= 0 || p.temperature1 == p.temperature2 {
		return p.HueSatMap1
	}

	t1, t2 := p.temperature1, p.temperature2
	reverse := t1 > t2
	if reverse {
		t1, t2 = t2, t1
	}
	mix := illuminantMix(wb.Temperature(), t1, t2)
	if reverse {
		mix = 1 - mix
	}

	switch {
	case mix >= 1:
		return p.HueSatMap1
	case mix <= 0:
		return p.HueSatMap2
	}
	return p.HueSatMap1.mix(float32(mix), p.HueSatMap2)
}

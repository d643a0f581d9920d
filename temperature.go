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
	"fmt"
	"math"
)

// LightSource is an EXIF light source code, as used by the
// CalibrationIlluminant tags of a camera profile.
type LightSource int

// These are the light sources which have a defined colour temperature.
const (
	LightSourceNone LightSource = -1 // the profile has no such illuminant

	Unknown              LightSource = 0
	Daylight             LightSource = 1
	Fluorescent          LightSource = 2
	Tungsten             LightSource = 3
	Flash                LightSource = 4
	FineWeather          LightSource = 9
	CloudyWeather        LightSource = 10
	Shade                LightSource = 11
	DaylightFluorescent  LightSource = 12 // D 5700 - 7100K
	DayWhiteFluorescent  LightSource = 13 // N 4600 - 5500K
	CoolWhiteFluorescent LightSource = 14 // W 3800 - 4500K
	WhiteFluorescent     LightSource = 15 // WW 3250 - 3800K
	WarmWhiteFluorescent LightSource = 16 // L 2600 - 3250K
	StandardLightA       LightSource = 17
	StandardLightB       LightSource = 18
	StandardLightC       LightSource = 19
	D55                  LightSource = 20
	D65                  LightSource = 21
	D75                  LightSource = 22
	D50Illuminant        LightSource = 23
	ISOStudioTungsten    LightSource = 24
	Other                LightSource = 255
)

func (l LightSource) String() string {
	switch l {
	case LightSourceNone:
		return "none"
	case Unknown:
		return "Unknown"
	case Daylight:
		return "Daylight"
	case Fluorescent:
		return "Fluorescent"
	case Tungsten:
		return "Tungsten"
	case Flash:
		return "Flash"
	case FineWeather:
		return "Fine weather"
	case CloudyWeather:
		return "Cloudy weather"
	case Shade:
		return "Shade"
	case DaylightFluorescent:
		return "Daylight fluorescent"
	case DayWhiteFluorescent:
		return "Day white fluorescent"
	case CoolWhiteFluorescent:
		return "Cool white fluorescent"
	case WhiteFluorescent:
		return "White fluorescent"
	case WarmWhiteFluorescent:
		return "Warm white fluorescent"
	case StandardLightA:
		return "Standard light A"
	case StandardLightB:
		return "Standard light B"
	case StandardLightC:
		return "Standard light C"
	case D55:
		return "D55"
	case D65:
		return "D65"
	case D75:
		return "D75"
	case D50Illuminant:
		return "D50"
	case ISOStudioTungsten:
		return "ISO studio tungsten"
	case Other:
		return "Other"
	default:
		return fmt.Sprintf("LightSource(%d)", int(l))
	}
}

// Temperature returns the correlated colour temperature of the light
// source in Kelvin.  The values are those used by the DNG SDK.
// For light sources without a defined temperature, 0 is returned.
func (l LightSource) Temperature() float64 {
	switch l {
	case StandardLightA, Tungsten:
		return 2850
	case ISOStudioTungsten:
		return 3200
	case D50Illuminant:
		return 5000
	case D55, Daylight, FineWeather, Flash, StandardLightB:
		return 5500
	case D65, StandardLightC, CloudyWeather:
		return 6500
	case D75, Shade:
		return 7500
	case DaylightFluorescent:
		return (5700 + 7100) * 0.5
	case DayWhiteFluorescent:
		return (4600 + 5500) * 0.5
	case CoolWhiteFluorescent, Fluorescent:
		return (3800 + 4500) * 0.5
	case WhiteFluorescent:
		return (3250 + 3800) * 0.5
	case WarmWhiteFluorescent:
		return (2600 + 3250) * 0.5
	default:
		return 0
	}
}

// isotherm is one row of the Robertson isotemperature table: the
// reciprocal temperature in mired, the uv coordinates of the blackbody
// point and the slope of the isotemperature line.
type isotherm struct {
	r, u, v, t float64
}

var isotherms = [31]isotherm{
	{0, 0.18006, 0.26352, -0.24341},
	{10, 0.18066, 0.26589, -0.25479},
	{20, 0.18133, 0.26846, -0.26876},
	{30, 0.18208, 0.27119, -0.28539},
	{40, 0.18293, 0.27407, -0.30470},
	{50, 0.18388, 0.27709, -0.32675},
	{60, 0.18494, 0.28021, -0.35156},
	{70, 0.18611, 0.28342, -0.37915},
	{80, 0.18740, 0.28668, -0.40955},
	{90, 0.18880, 0.28997, -0.44278},
	{100, 0.19032, 0.29326, -0.47888},
	{125, 0.19462, 0.30141, -0.58204},
	{150, 0.19962, 0.30921, -0.70471},
	{175, 0.20525, 0.31647, -0.84901},
	{200, 0.21142, 0.32312, -1.0182},
	{225, 0.21807, 0.32909, -1.2168},
	{250, 0.22511, 0.33439, -1.4512},
	{275, 0.23247, 0.33904, -1.7298},
	{300, 0.24010, 0.34308, -2.0637},
	{325, 0.24702, 0.34655, -2.4681},
	{350, 0.25591, 0.34951, -2.9641},
	{375, 0.26400, 0.35200, -3.5814},
	{400, 0.27218, 0.35407, -4.3633},
	{425, 0.28039, 0.35577, -5.3762},
	{450, 0.28863, 0.35714, -6.7262},
	{475, 0.29685, 0.35823, -8.5955},
	{500, 0.30505, 0.35907, -11.324},
	{525, 0.31320, 0.35968, -15.628},
	{550, 0.32129, 0.36011, -23.325},
	{575, 0.32931, 0.36038, -40.770},
	{600, 0.33724, 0.36051, -116.45},
}

// XYCoord2Temperature returns the correlated colour temperature (in
// Kelvin) and the tint of a white point, using the same search as the
// DNG SDK so that dual-illuminant profiles mix identically.
func XYCoord2Temperature(white XY) (temp, tint float64) {
	const tintScale = -3000.0

	// uv coordinates
	den := 1.5 - white.X + 6.0*white.Y
	u := 2.0 * white.X / den
	v := 3.0 * white.Y / den

	var lastDt, lastDu, lastDv float64
	for index := 1; index < len(isotherms); index++ {
		// unit vector along the isotemperature line
		du := 1.0
		dv := isotherms[index].t
		l := math.Sqrt(1 + dv*dv)
		du /= l
		dv /= l

		uu := u - isotherms[index].u
		vv := v - isotherms[index].v

		// signed distance from the line
		dt := -uu*dv + vv*du

		if dt <= 0 || index == len(isotherms)-1 {
			if dt > 0 {
				dt = 0
			}
			dt = -dt

			var f float64
			if index > 1 {
				f = dt / (lastDt + dt)
			}

			prev, cur := isotherms[index-1], isotherms[index]
			temp = 1e6 / (prev.r*f + cur.r*(1-f))

			uu = u - (prev.u*f + cur.u*(1-f))
			vv = v - (prev.v*f + cur.v*(1-f))

			du = du*(1-f) + lastDu*f
			dv = dv*(1-f) + lastDv*f
			l = math.Sqrt(du*du + dv*dv)
			du /= l
			dv /= l

			tint = (uu*du + vv*dv) * tintScale
			break
		}

		lastDt = dt
		lastDu = du
		lastDv = dv
	}
	return temp, tint
}

// illuminantMix returns the weight of the first illuminant when mixing
// data calibrated for temperatures t1 and t2 for a white balance of wbTemp.
// The weight is interpolated linearly in inverse temperature and is 1 for
// wbTemp <= t1 and 0 for wbTemp >= t2.
func illuminantMix(wbTemp, t1, t2 float64) float64 {
	switch {
	case wbTemp <= t1:
		return 1
	case wbTemp >= t2:
		return 0
	default:
		invT := 1 / wbTemp
		return (invT - 1/t2) / (1/t1 - 1/t2)
	}
}

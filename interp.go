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
	"fmt"
)

// HSBModify is one entry of a hue/saturation/value table.
type HSBModify struct {
	HueShift float32 // in degrees
	SatScale float32
	ValScale float32
}

// HSVTable is a hue/saturation/value correction table, as stored in the
// ProfileHueSatMap and ProfileLookTable tags.
//
// The entries are ordered with the saturation index varying fastest,
// then hue, then value.  If ValDivisions is smaller than 2, the table is
// two-dimensional and applies to all values alike.
//
// Tables must be created using [NewHSVTable] or [Decode].  A table is not
// modified after construction and can be used concurrently.
type HSVTable struct {
	HueDivisions int
	SatDivisions int
	ValDivisions int

	// SRGBGamma indicates that the value axis is indexed by sRGB-encoded
	// values instead of linear ones.
	SRGBGamma bool

	Data []HSBModify

	info hsdTableInfo
}

// hsdTableInfo holds index arithmetic constants for [HSVTable.Apply].
type hsdTableInfo struct {
	hScale, sScale, vScale float32

	maxHueIndex0, maxSatIndex0, maxValIndex0 int
	hueStep, valStep                         int

	// offsets of the next bin along the saturation and value axes,
	// 0 for single-bin axes
	satNeighbour, valNeighbour int
}

// NewHSVTable creates a new table with the given dimensions.
// The table takes ownership of data, which must contain at least
// hue·sat·max(val, 1) entries.
func NewHSVTable(hue, sat, val int, srgbGamma bool, data []HSBModify) (*HSVTable, error) {
	if hue < 1 || sat < 1 || val < 0 {
		return nil, fmt.Errorf("%w: %d×%d×%d", errInvalidDims, hue, sat, val)
	}
	// len(data) >= hue·sat·val, without overflow
	if len(data)/hue/sat/max(val, 1) < 1 {
		return nil, fmt.Errorf("%w: %d entries for %d×%d×%d table",
			errShortTable, len(data), hue, sat, val)
	}

	t := &HSVTable{
		HueDivisions: hue,
		SatDivisions: sat,
		ValDivisions: val,
		SRGBGamma:    srgbGamma,
		Data:         data,
	}
	t.info = hsdTableInfo{
		sScale:       float32(sat - 1),
		vScale:       float32(val - 1),
		maxHueIndex0: hue - 1,
		maxSatIndex0: sat - 2,
		maxValIndex0: val - 2,
		hueStep:      sat,
		valStep:      hue * sat,
	}
	if hue >= 2 {
		t.info.hScale = float32(hue) / 6
	}
	if sat >= 2 {
		t.info.satNeighbour = 1
	}
	if val >= 2 {
		t.info.valNeighbour = t.info.valStep
	}
	return t, nil
}

// Apply maps a colour through the table.  The hue h is in the range
// [0, 6), saturation and value are nominally in [0, 1].
//
// The table entries surrounding (h, s, v) are interpolated linearly,
// with hue wrapping around and saturation and value clamped to the table
// range.  The hue shift is added to h without wrapping, saturation is
// scaled without clipping.
func (t *HSVTable) Apply(h, s, v float32) (float32, float32, float32) {
	pc := &t.info
	d := t.Data

	var hueShift, satScale, valScale float32
	vEncoded := v

	hScaled := h * pc.hScale
	sScaled := s * pc.sScale

	hIndex0 := max(int(hScaled), 0)
	sIndex0 := max(min(int(sScaled), pc.maxSatIndex0), 0)

	hIndex1 := hIndex0 + 1
	if hIndex0 >= pc.maxHueIndex0 {
		hIndex0 = pc.maxHueIndex0
		hIndex1 = 0
	}

	hFract1 := hScaled - float32(hIndex0)
	sFract1 := sScaled - float32(sIndex0)
	hFract0 := 1 - hFract1
	sFract0 := 1 - sFract1

	if t.ValDivisions < 2 {
		e00 := hIndex0*pc.hueStep + sIndex0
		e01 := e00 + (hIndex1-hIndex0)*pc.hueStep

		hueShift0 := hFract0*d[e00].HueShift + hFract1*d[e01].HueShift
		satScale0 := hFract0*d[e00].SatScale + hFract1*d[e01].SatScale
		valScale0 := hFract0*d[e00].ValScale + hFract1*d[e01].ValScale

		e00 += pc.satNeighbour
		e01 += pc.satNeighbour

		hueShift1 := hFract0*d[e00].HueShift + hFract1*d[e01].HueShift
		satScale1 := hFract0*d[e00].SatScale + hFract1*d[e01].SatScale
		valScale1 := hFract0*d[e00].ValScale + hFract1*d[e01].ValScale

		hueShift = sFract0*hueShift0 + sFract1*hueShift1
		satScale = sFract0*satScale0 + sFract1*satScale1
		valScale = sFract0*valScale0 + sFract1*valScale1
	} else {
		if t.SRGBGamma {
			vEncoded = SRGBGammaForward(v)
		}
		vScaled := vEncoded * pc.vScale
		vIndex0 := max(min(int(vScaled), pc.maxValIndex0), 0)
		vFract1 := vScaled - float32(vIndex0)
		vFract0 := 1 - vFract1

		e00 := vIndex0*pc.valStep + hIndex0*pc.hueStep + sIndex0
		e01 := e00 + (hIndex1-hIndex0)*pc.hueStep
		e10 := e00 + pc.valNeighbour
		e11 := e01 + pc.valNeighbour

		blend := func(e00, e01, e10, e11 int) (float32, float32, float32) {
			hs := vFract0*(hFract0*d[e00].HueShift+hFract1*d[e01].HueShift) +
				vFract1*(hFract0*d[e10].HueShift+hFract1*d[e11].HueShift)
			ss := vFract0*(hFract0*d[e00].SatScale+hFract1*d[e01].SatScale) +
				vFract1*(hFract0*d[e10].SatScale+hFract1*d[e11].SatScale)
			vs := vFract0*(hFract0*d[e00].ValScale+hFract1*d[e01].ValScale) +
				vFract1*(hFract0*d[e10].ValScale+hFract1*d[e11].ValScale)
			return hs, ss, vs
		}

		hueShift0, satScale0, valScale0 := blend(e00, e01, e10, e11)
		n := pc.satNeighbour
		hueShift1, satScale1, valScale1 := blend(e00+n, e01+n, e10+n, e11+n)

		hueShift = sFract0*hueShift0 + sFract1*hueShift1
		satScale = sFract0*satScale0 + sFract1*satScale1
		valScale = sFract0*valScale0 + sFract1*valScale1
	}

	h += hueShift * (6.0 / 360.0)
	s *= satScale
	if t.SRGBGamma {
		v = SRGBGammaInverse(vEncoded * valScale)
	} else {
		v *= valScale
	}
	return h, s, v
}

// mix returns a new table with entries w1·t + (1-w1)·other.
// Both tables must have the same dimensions.
func (t *HSVTable) mix(w1 float32, other *HSVTable) *HSVTable {
	w2 := 1 - w1
	n := min(len(t.Data), len(other.Data))
	data := make([]HSBModify, n)
	for i := range data {
		a, b := t.Data[i], other.Data[i]
		data[i] = HSBModify{
			HueShift: w1*a.HueShift + w2*b.HueShift,
			SatScale: w1*a.SatScale + w2*b.SatScale,
			ValScale: w1*a.ValScale + w2*b.ValScale,
		}
	}
	res := *t
	res.Data = data
	return &res
}

var (
	errInvalidDims = errors.New("invalid table dimensions")
	errShortTable  = errors.New("table data too short")
)

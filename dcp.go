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

// Package dcp reads DNG camera profiles and applies them to images.
//
// A DNG camera profile (DCP) describes how the colours recorded by a
// particular camera model map to device-independent colours.  It contains
// one or two colour matrices, optional forward matrices, optional
// hue/saturation/value correction tables, an optional "look" table and an
// optional tone curve.  Where data is given for two calibration
// illuminants, the profile is interpolated according to the colour
// temperature of the white balance.
//
// # Reading Profiles
//
// Use [Decode] to read a profile from binary data, or [ReadFile] to read a
// profile from disk:
//
//	p, err := dcp.ReadFile("Canon EOS 5D Mark II.dcp")
//	if err != nil {
//	    // handle error
//	}
//
// A [Store] caches decoded profiles and finds the standard profile for a
// camera model in a directory of profiles.
//
// # Applying Profiles
//
// [Profile.Apply] converts a whole image from camera RGB into a working
// space:
//
//	err := p.Apply(img, &dcp.ApplyOptions{
//	    WorkingSpace:   "sRGB",
//	    WhiteBalance:   dcp.ColorTemp{Kelvin: 5200, Mul: [3]float64{1, 1, 1}},
//	    PreMul:         preMul,
//	    CamWbMatrix:    xyzCam,
//	    ApplyHueSatMap: true,
//	    ApplyLookTable: true,
//	    UseToneCurve:   true,
//	})
//
// For pipelines which have already converted the image to a working space,
// [Profile.NewApplyState] and [ApplyState.ApplyTile] apply the look table,
// tone curve and baseline exposure to individual tiles.
//
// Pixel values are on a scale where 65535 corresponds to full scale.
package dcp

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Profile is a decoded DNG camera profile.
//
// The exported fields reflect the tags found in the file.  A Profile
// returned by [Decode] is not modified by any method of this package and
// can be shared between goroutines.
type Profile struct {
	ProfileName string
	CameraModel string // UniqueCameraModel
	Copyright   string

	Illuminant1 LightSource
	Illuminant2 LightSource // LightSourceNone if there is no second illuminant

	ColorMatrix1   *Matrix3 // XYZ to camera, always present
	ColorMatrix2   *Matrix3
	ForwardMatrix1 *Matrix3 // white balanced camera to XYZ D50
	ForwardMatrix2 *Matrix3

	// HueSatMap1 and HueSatMap2 are the hue/saturation corrections for the
	// two illuminants.  If both are present, they have the same
	// dimensions.
	HueSatMap1 *HSVTable
	HueSatMap2 *HSVTable
	LookTable  *HSVTable

	// ToneCurvePoints holds the control points of the ProfileToneCurve tag
	// as x0, y0, x1, y1, ...
	ToneCurvePoints []float32

	BaselineExposureOffset *float64

	temperature1    float64
	temperature2    float64
	toneCurve       *ToneCurve
	willInterpolate bool
}

// Decode decodes a camera profile from the given data.
// Both DCP files and DNG files with embedded profile tags are supported.
// The function takes over ownership of the data.
func Decode(data []byte) (*Profile, error) {
	dir, err := ReadTags(data)
	if err != nil {
		return nil, err
	}
	return newProfile(dir)
}

// Load reads a camera profile from r.
func Load(r io.Reader) (*Profile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// ReadFile reads a camera profile from the named file.
func ReadFile(fname string) (*Profile, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	p, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return p, nil
}

func newProfile(dir TagDirectory) (*Profile, error) {
	p := &Profile{
		Illuminant1: LightSourceNone,
		Illuminant2: LightSourceNone,
	}

	if tag := dir.Get(TagProfileName); tag != nil {
		p.ProfileName = tag.String()
	}
	if tag := dir.Get(TagUniqueCameraModel); tag != nil {
		p.CameraModel = tag.String()
	}
	if tag := dir.Get(TagProfileCopyright); tag != nil {
		p.Copyright = tag.String()
	}

	if tag := dir.Get(TagCalibrationIlluminant1); tag != nil && tag.Count() > 0 {
		p.Illuminant1 = LightSource(tag.Int(0))
	}
	if tag := dir.Get(TagCalibrationIlluminant2); tag != nil && tag.Count() > 0 {
		p.Illuminant2 = LightSource(tag.Int(0))
	}
	p.temperature1 = p.Illuminant1.Temperature()
	p.temperature2 = p.Illuminant2.Temperature()

	var err error
	p.ForwardMatrix1, err = readMatrix(dir, TagForwardMatrix1)
	if err != nil {
		return nil, err
	}
	p.ForwardMatrix2, err = readMatrix(dir, TagForwardMatrix2)
	if err != nil {
		return nil, err
	}

	p.ColorMatrix1, err = readMatrix(dir, TagColorMatrix1)
	if err != nil {
		return nil, err
	}
	if p.ColorMatrix1 == nil {
		return nil, ErrMissingColorMatrix
	}

	p.LookTable, err = readTable(dir, TagProfileLookTableDims, TagProfileLookTableEncoding, TagProfileLookTableData)
	if err != nil {
		return nil, err
	}
	p.HueSatMap1, err = readTable(dir, TagProfileHueSatMapDims, TagProfileHueSatMapEncoding, TagProfileHueSatMapData1)
	if err != nil {
		return nil, err
	}

	if p.Illuminant2 != LightSourceNone {
		p.ColorMatrix2, err = readMatrix(dir, TagColorMatrix2)
		if err != nil {
			return nil, err
		}
		if p.ColorMatrix2 == nil {
			m := *p.ColorMatrix1
			p.ColorMatrix2 = &m
		}

		if p.HueSatMap1 != nil {
			p.HueSatMap2, err = readTable(dir, TagProfileHueSatMapDims, TagProfileHueSatMapEncoding, TagProfileHueSatMapData2)
			if err != nil {
				return nil, err
			}
		}
	}

	if tag := dir.Get(TagBaselineExposureOffset); tag != nil && tag.Count() > 0 {
		x := tag.Float(0)
		p.BaselineExposureOffset = &x
	}

	if tag := dir.Get(TagProfileToneCurve); tag != nil {
		n := tag.Count() &^ 1
		p.ToneCurvePoints = make([]float32, n)
		for i := range p.ToneCurvePoints {
			p.ToneCurvePoints[i] = float32(tag.Float(i))
		}
	}

	p.setup()
	return p, nil
}

// readTable reads one of the hue/saturation/value tables.  If either the
// dimensions or the data are missing, nil is returned.
func readTable(dir TagDirectory, dimsID, encodingID, dataID TagType) (*HSVTable, error) {
	dims := dir.Get(dimsID)
	data := dir.Get(dataID)
	if dims == nil || data == nil {
		return nil, nil
	}

	hue, sat, val, err := readTableDims(dims)
	if err != nil {
		return nil, err
	}
	encoding := dir.Get(encodingID)
	srgb := encoding != nil && encoding.Count() > 0 && encoding.Int(0) != 0

	t, err := NewHSVTable(hue, sat, val, srgb, readTableData(data))
	if err != nil {
		return nil, invalidProfile(data.offset, fmt.Sprintf("%s: %v", dataID, err))
	}
	return t, nil
}

// setup computes the derived profile data.
func (p *Profile) setup() {
	p.toneCurve = nil
	if p.ToneCurvePoints != nil {
		isLinear := true
		points := make([]float64, len(p.ToneCurvePoints))
		for i := 0; i+1 < len(p.ToneCurvePoints); i += 2 {
			x, y := p.ToneCurvePoints[i], p.ToneCurvePoints[i+1]
			if x != y {
				isLinear = false
			}
			points[i] = float64(x)
			points[i+1] = float64(y)
		}
		if !isLinear {
			p.toneCurve = NewToneCurve(points)
		}
	} else if strings.Contains(p.Copyright, "Adobe Systems") {
		// Adobe profiles without a curve expect the Adobe default curve.
		n := len(adobeDefaultCurve)
		points := make([]float64, 0, 2*n)
		for i, y := range adobeDefaultCurve {
			points = append(points, float64(i)/float64(n-1), float64(y))
		}
		p.toneCurve = NewToneCurve(points)
	}

	p.willInterpolate = false
	if p.ForwardMatrix1 != nil && p.ForwardMatrix2 != nil {
		if *p.ForwardMatrix1 != *p.ForwardMatrix2 {
			p.willInterpolate = true
		}
		if p.HueSatMap1 != nil && p.HueSatMap2 != nil {
			p.willInterpolate = true
		}
	}
	if p.ColorMatrix1 != nil && p.ColorMatrix2 != nil {
		if *p.ColorMatrix1 != *p.ColorMatrix2 {
			p.willInterpolate = true
		}
		if p.HueSatMap1 != nil && p.HueSatMap2 != nil {
			p.willInterpolate = true
		}
	}
}

// Illuminants describes the calibration illuminants of a profile.
type Illuminants struct {
	Light1, Light2 LightSource
	Temp1, Temp2   float64 // in Kelvin, 0 if unknown

	// WillInterpolate is true if the profile data for the two illuminants
	// differ, so that applying the profile depends on the white balance.
	WillInterpolate bool
}

// Illuminants returns the calibration illuminants of the profile.
func (p *Profile) Illuminants() Illuminants {
	return Illuminants{
		Light1:          p.Illuminant1,
		Light2:          p.Illuminant2,
		Temp1:           p.temperature1,
		Temp2:           p.temperature2,
		WillInterpolate: p.willInterpolate,
	}
}

// HasToneCurve reports whether the profile has a non-identity tone curve.
// This includes the Adobe default curve implied for Adobe profiles.
func (p *Profile) HasToneCurve() bool {
	return p.toneCurve != nil
}

// ToneCurve returns the tone curve of the profile, or nil if there is none.
func (p *Profile) ToneCurve() *ToneCurve {
	return p.toneCurve
}

// HasLookTable reports whether the profile has a look table.
func (p *Profile) HasLookTable() bool {
	return p.LookTable != nil
}

// HasHueSatMap reports whether the profile has a hue/saturation map.
func (p *Profile) HasHueSatMap() bool {
	return p.HueSatMap1 != nil
}

// HasForwardMatrix reports whether the profile has a forward matrix.
func (p *Profile) HasForwardMatrix() bool {
	return p.ForwardMatrix1 != nil || p.ForwardMatrix2 != nil
}

// HasBaselineExposureOffset reports whether the profile specifies a
// baseline exposure offset.
func (p *Profile) HasBaselineExposureOffset() bool {
	return p.BaselineExposureOffset != nil
}

// ErrMissingColorMatrix is returned by [Decode] if the ColorMatrix1 tag,
// which every camera profile must have, is missing.
var ErrMissingColorMatrix = errors.New("dcp: missing ColorMatrix1")

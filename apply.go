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

// ApplyOptions specifies how [Profile.Apply] converts an image.
type ApplyOptions struct {
	// WorkingSpace is the name of the output colour space.
	WorkingSpace string

	// Spaces provides the working space matrices.
	// If this is nil, [DefaultSpaces] is used.
	Spaces WorkingSpaces

	WhiteBalance        WhiteBalance
	PreMul              [3]float64 // raw channel pre-multipliers
	CamWbMatrix         Matrix3    // camera RGB to XYZ, as used for white balancing
	PreferredIlluminant Illuminant

	UseToneCurve   bool
	ApplyHueSatMap bool
	ApplyLookTable bool
}

// Apply converts img in place from camera RGB to the working space given
// in opts.
//
// If no tables and no tone curve are used, the conversion is a single
// matrix multiplication.  Otherwise the pixels are converted to ProPhoto
// RGB, where the hue/saturation map, the look table and the tone curve
// are applied, before converting to the working space.
func (p *Profile) Apply(img Image, opts *ApplyOptions) error {
	spaces := opts.Spaces
	if spaces == nil {
		spaces = DefaultSpaces
	}
	mWork, err := spaces.InverseMatrix(opts.WorkingSpace)
	if err != nil {
		return err
	}

	mXYZCAM, err := p.MakeXYZCAM(opts.WhiteBalance, opts.PreMul, opts.CamWbMatrix, opts.PreferredIlluminant)
	if err != nil {
		return fmt.Errorf("dcp: camera matrix: %w", err)
	}

	pl := &pipeline{scale: 1}
	if opts.ApplyHueSatMap {
		pl.hueSat = p.MakeHueSatMap(opts.WhiteBalance, opts.PreferredIlluminant)
	}
	if opts.ApplyLookTable {
		pl.look = p.LookTable
	}
	if opts.UseToneCurve {
		pl.curve = p.toneCurve
	}

	if pl.hueSat == nil && pl.look == nil && pl.curve == nil {
		// direct conversion from camera RGB to the working space
		mat := mWork.Mul(mXYZCAM).toFloat32()
		pl.toProPhoto = &mat
	} else {
		m2ProPhoto := proPhotoXYZ.Mul(mXYZCAM).toFloat32()
		m2Work := mWork.Mul(xyzProPhoto).toFloat32()
		pl.toProPhoto = &m2ProPhoto
		pl.toWork = &m2Work
	}

	pl.runImage(img)
	return nil
}

// ApplyState holds the settings for applying the look table, the tone
// curve and the baseline exposure offset of a profile to an image which
// has already been converted to a working space.
//
// An ApplyState is created once per image by [Profile.NewApplyState] and
// can then be used concurrently for all tiles of the image.
type ApplyState struct {
	UseToneCurve   bool
	ApplyLookTable bool

	// BaselineScale is the linear exposure scale factor.
	BaselineScale float32

	// AlreadyProPhoto is set if the working space is ProPhoto RGB.
	AlreadyProPhoto bool

	m2ProPhoto [9]float32
	m2Work     [9]float32

	pl pipeline
}

// NewApplyState prepares the tile pipeline for the given working space.
// Tone curve and look table are only used if the profile has them.  If
// applyBaselineExposure is set and the profile has a baseline exposure
// offset, pixels are scaled by 2 to the power of the offset.
func (p *Profile) NewApplyState(workingSpace string, useToneCurve, applyLookTable, applyBaselineExposure bool) (*ApplyState, error) {
	return p.newApplyState(DefaultSpaces, workingSpace, useToneCurve, applyLookTable, applyBaselineExposure)
}

// NewApplyStateWithSpaces is like [Profile.NewApplyState], but uses
// the given working space matrices.
func (p *Profile) NewApplyStateWithSpaces(spaces WorkingSpaces, workingSpace string, useToneCurve, applyLookTable, applyBaselineExposure bool) (*ApplyState, error) {
	return p.newApplyState(spaces, workingSpace, useToneCurve, applyLookTable, applyBaselineExposure)
}

func (p *Profile) newApplyState(spaces WorkingSpaces, workingSpace string, useToneCurve, applyLookTable, applyBaselineExposure bool) (*ApplyState, error) {
	as := &ApplyState{
		UseToneCurve:   useToneCurve && p.toneCurve != nil,
		ApplyLookTable: applyLookTable && p.LookTable != nil,
		BaselineScale:  1,
	}

	if p.BaselineExposureOffset != nil && applyBaselineExposure {
		as.BaselineScale = float32(math.Pow(2, *p.BaselineExposureOffset))
	}

	if workingSpace == ProPhoto {
		as.AlreadyProPhoto = true
	} else {
		mWork, err := spaces.Matrix(workingSpace)
		if err != nil {
			return nil, err
		}
		as.m2ProPhoto = proPhotoXYZ.Mul(mWork).toFloat32()

		mWorkInv, err := spaces.InverseMatrix(workingSpace)
		if err != nil {
			return nil, err
		}
		as.m2Work = mWorkInv.Mul(xyzProPhoto).toFloat32()
	}

	as.pl = pipeline{scale: as.BaselineScale}
	if as.UseToneCurve || as.ApplyLookTable {
		if !as.AlreadyProPhoto {
			as.pl.toProPhoto = &as.m2ProPhoto
			as.pl.toWork = &as.m2Work
		}
		// the table and curve domains are bounded
		as.pl.clip = true
		if as.ApplyLookTable {
			as.pl.look = p.LookTable
			as.pl.clipSV = true
		}
		if as.UseToneCurve {
			as.pl.curve = p.toneCurve
		}
	}
	return as, nil
}

// ApplyTile applies the state to a tile of width×height pixels, stored in
// three planes with rows tileWidth values apart.  If neither the tone
// curve nor the look table is used and the exposure scale is 1, the tile
// is left untouched.
func (as *ApplyState) ApplyTile(rc, gc, bc []float32, width, height, tileWidth int) {
	if height > 0 {
		need := (height-1)*tileWidth + width
		if len(rc) < need || len(gc) < need || len(bc) < need {
			panic("dcp: tile buffer too small")
		}
	}
	as.pl.runPlanes(rc, gc, bc, width, height, tileWidth)
}

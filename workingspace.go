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
	"slices"

	"golang.org/x/exp/maps"
)

// WorkingSpaces maps names of RGB working spaces to their conversion
// matrices.  All matrices refer to XYZ relative to a D50 white point.
type WorkingSpaces interface {
	// Matrix returns the matrix which converts from the working space to
	// XYZ.
	Matrix(name string) (Matrix3, error)

	// InverseMatrix returns the matrix which converts from XYZ to the
	// working space.
	InverseMatrix(name string) (Matrix3, error)
}

// ProPhoto is the name of the working space in which hue/saturation
// tables and tone curves are applied.
const ProPhoto = "ProPhoto"

// These are the RGB to XYZ matrices of the built-in working spaces,
// Bradford-adapted to D50.
var (
	xyzSRGB = Matrix3{
		0.4360747, 0.3850649, 0.1430804,
		0.2225045, 0.7168786, 0.0606169,
		0.0139322, 0.0971045, 0.7141733,
	}
	xyzProPhoto = Matrix3{
		0.7976749, 0.1351917, 0.0313534,
		0.2880402, 0.7118741, 0.0000857,
		0.0000000, 0.0000000, 0.8252100,
	}
	xyzAdobeRGB = Matrix3{
		0.6097559, 0.2052401, 0.1492240,
		0.3111242, 0.6256560, 0.0632197,
		0.0194811, 0.0608902, 0.7448387,
	}
	xyzWideGamut = Matrix3{
		0.7161046, 0.1009296, 0.1471858,
		0.2581874, 0.7249378, 0.0168748,
		0.0000000, 0.0517813, 0.7734287,
	}
	xyzRec2020 = Matrix3{
		0.6734241, 0.1656411, 0.1251286,
		0.2790177, 0.6753402, 0.0456377,
		-0.0019300, 0.0299784, 0.7973330,
	}

	proPhotoXYZ = mustInvert(xyzProPhoto)
)

// builtinSpaces implements WorkingSpaces using a fixed list of matrices.
type builtinSpaces map[string][2]Matrix3

func newBuiltinSpaces(fwd map[string]Matrix3) builtinSpaces {
	res := make(builtinSpaces, len(fwd))
	for name, m := range fwd {
		res[name] = [2]Matrix3{m, mustInvert(m)}
	}
	return res
}

// DefaultSpaces contains the working spaces "sRGB", "Adobe RGB",
// "ProPhoto", "WideGamut" and "Rec2020".
var DefaultSpaces WorkingSpaces = newBuiltinSpaces(map[string]Matrix3{
	"sRGB":      xyzSRGB,
	"Adobe RGB": xyzAdobeRGB,
	ProPhoto:    xyzProPhoto,
	"WideGamut": xyzWideGamut,
	"Rec2020":   xyzRec2020,
})

func (s builtinSpaces) Matrix(name string) (Matrix3, error) {
	m, ok := s[name]
	if !ok {
		return Matrix3{}, fmt.Errorf("%w %q", ErrUnknownSpace, name)
	}
	return m[0], nil
}

func (s builtinSpaces) InverseMatrix(name string) (Matrix3, error) {
	m, ok := s[name]
	if !ok {
		return Matrix3{}, fmt.Errorf("%w %q", ErrUnknownSpace, name)
	}
	return m[1], nil
}

// SpaceNames returns the sorted names of the built-in working spaces.
func SpaceNames() []string {
	names := maps.Keys(DefaultSpaces.(builtinSpaces))
	slices.Sort(names)
	return names
}

// ErrUnknownSpace is returned when a working space name is not known.
var ErrUnknownSpace = errors.New("dcp: unknown working space")

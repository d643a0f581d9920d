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

import "errors"

// Matrix3 is a 3x3 matrix, stored in row-major order.
type Matrix3 [9]float64

// Identity3 is the 3x3 identity matrix.
var Identity3 = Matrix3{
	1, 0, 0,
	0, 1, 0,
	0, 0, 1,
}

// Diag3 returns the diagonal matrix with the given entries.
func Diag3(a, b, c float64) Matrix3 {
	return Matrix3{
		a, 0, 0,
		0, b, 0,
		0, 0, c,
	}
}

// Mul returns the matrix product m·n.
func (m Matrix3) Mul(n Matrix3) Matrix3 {
	var res Matrix3
	for i := range 3 {
		for j := range 3 {
			var sum float64
			for k := range 3 {
				sum += m[3*i+k] * n[3*k+j]
			}
			res[3*i+j] = sum
		}
	}
	return res
}

// Apply returns the product of m with the column vector v.
func (m Matrix3) Apply(v [3]float64) [3]float64 {
	return [3]float64{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

// Inverse returns the inverse of m.
// If the determinant of m is smaller than 1e-10 in magnitude,
// [ErrSingularMatrix] is returned.
func (m Matrix3) Inverse() (Matrix3, error) {
	a00, a01, a02 := m[0], m[1], m[2]
	a10, a11, a12 := m[3], m[4], m[5]
	a20, a21, a22 := m[6], m[7], m[8]

	cof := Matrix3{
		a11*a22 - a21*a12, a21*a02 - a01*a22, a01*a12 - a11*a02,
		a20*a12 - a10*a22, a00*a22 - a20*a02, a10*a02 - a00*a12,
		a10*a21 - a20*a11, a20*a01 - a00*a21, a00*a11 - a10*a01,
	}

	det := a00*cof[0] + a01*cof[3] + a02*cof[6]
	if det > -1e-10 && det < 1e-10 {
		return Matrix3{}, ErrSingularMatrix
	}

	for i := range cof {
		cof[i] /= det
	}
	return cof, nil
}

// mustInvert inverts one of the constant matrices built into the package.
func mustInvert(m Matrix3) Matrix3 {
	inv, err := m.Inverse()
	if err != nil {
		panic(err)
	}
	return inv
}

// mix3x3 returns wA·A + wB·B.
func mix3x3(a Matrix3, wA float64, b Matrix3, wB float64) Matrix3 {
	var res Matrix3
	for i := range res {
		res[i] = a[i]*wA + b[i]*wB
	}
	return res
}

// toFloat32 converts the matrix coefficients for use in the pixel loops.
func (m Matrix3) toFloat32() [9]float32 {
	var res [9]float32
	for i, x := range m {
		res[i] = float32(x)
	}
	return res
}

// ErrSingularMatrix is returned when a matrix required by a colour
// computation cannot be inverted.
var ErrSingularMatrix = errors.New("dcp: singular matrix")

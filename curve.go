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

import "sort"

// ToneCurve is a tone curve given by a list of control points, which are
// joined by a natural cubic spline.  The curve maps [0, 1] to [0, 1] and
// is applied identically to the red, green and blue channels.
//
// A nil *ToneCurve is valid and represents the identity.  A ToneCurve is
// not modified after construction and can be used concurrently.
type ToneCurve struct {
	x, y []float64
	ypp  []float64 // second derivatives of the spline at the control points

	// samples of the curve at evenly spaced inputs, on the 0-65535 pixel
	// scale
	table []float32
}

const toneTableSize = 65536

// NewToneCurve creates a tone curve from control points, given as pairs
// x0, y0, x1, y1, ...  The x values must be increasing.  A trailing
// unpaired value is ignored.  If no points are given, nil is returned.
func NewToneCurve(points []float64) *ToneCurve {
	n := len(points) / 2
	if n == 0 {
		return nil
	}

	c := &ToneCurve{
		x: make([]float64, n),
		y: make([]float64, n),
	}
	for i := range n {
		c.x[i] = points[2*i]
		c.y[i] = points[2*i+1]
	}
	c.ypp = naturalSpline(c.x, c.y)

	c.table = make([]float32, toneTableSize)
	for i := range c.table {
		c.table[i] = float32(c.Evaluate(float64(i)/(toneTableSize-1)) * 65535)
	}
	return c
}

// naturalSpline computes the second derivatives of the natural cubic
// spline through the given points.
func naturalSpline(x, y []float64) []float64 {
	n := len(x)
	ypp := make([]float64, n)
	if n < 3 {
		return ypp
	}

	u := make([]float64, n)
	for i := 1; i < n-1; i++ {
		sig := (x[i] - x[i-1]) / (x[i+1] - x[i-1])
		p := sig*ypp[i-1] + 2
		ypp[i] = (sig - 1) / p
		u[i] = (y[i+1]-y[i])/(x[i+1]-x[i]) - (y[i]-y[i-1])/(x[i]-x[i-1])
		u[i] = (6*u[i]/(x[i+1]-x[i-1]) - sig*u[i-1]) / p
	}
	for k := n - 2; k >= 0; k-- {
		ypp[k] = ypp[k]*ypp[k+1] + u[k]
	}
	return ypp
}

// Evaluate computes the output value for an input value x in [0, 1].
// Inputs outside the range of the control points give the value of the
// nearest end point.  The output is clamped to [0, 1].
func (c *ToneCurve) Evaluate(x float64) float64 {
	if c == nil {
		return x
	}

	n := len(c.x)
	if n == 1 || x <= c.x[0] {
		return clamp(c.y[0], 0, 1)
	}
	if x >= c.x[n-1] {
		return clamp(c.y[n-1], 0, 1)
	}

	hi := sort.SearchFloat64s(c.x, x)
	if hi == 0 || hi == n {
		// unordered control points, or x is NaN
		return clamp(c.y[min(hi, n-1)], 0, 1)
	}
	if c.x[hi] == x {
		return clamp(c.y[hi], 0, 1)
	}
	lo := hi - 1

	h := c.x[hi] - c.x[lo]
	a := (c.x[hi] - x) / h
	b := (x - c.x[lo]) / h
	y := a*c.y[lo] + b*c.y[hi] +
		((a*a*a-a)*c.ypp[lo]+(b*b*b-b)*c.ypp[hi])*(h*h)/6
	return clamp(y, 0, 1)
}

// Apply maps the three channels of a pixel, given on the 0-65535 scale,
// through the curve.
func (c *ToneCurve) Apply(r, g, b float32) (float32, float32, float32) {
	if c == nil {
		return r, g, b
	}
	return c.lookup(r), c.lookup(g), c.lookup(b)
}

// IsSet reports whether the curve changes pixel values.
func (c *ToneCurve) IsSet() bool {
	return c != nil
}

// lookup evaluates the sampled curve with linear interpolation.
// Inputs outside [0, 65535] are clipped.
func (c *ToneCurve) lookup(v float32) float32 {
	last := len(c.table) - 1
	if !(v >= 0) {
		return c.table[0]
	}
	if v >= float32(last) {
		return c.table[last]
	}
	idx := int(v)
	frac := v - float32(idx)
	return c.table[idx] + frac*(c.table[idx+1]-c.table[idx])
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

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
	"github.com/mdouchement/hdr"
	"github.com/mdouchement/hdr/hdrcolor"
)

// Image is a buffer of RGB pixels, on a scale where 65535 corresponds to
// full scale.  Values outside [0, 65535] are allowed.
//
// [Profile.Apply] calls SetRGB concurrently for different pixels.
type Image interface {
	Size() (width, height int)
	RGBAt(x, y int) (r, g, b float32)
	SetRGB(x, y int, r, g, b float32)
}

// PlanarImage is an [Image] which stores the three channels in separate
// planes.
type PlanarImage struct {
	Width, Height int
	R, G, B       []float32
}

// NewPlanarImage allocates a new image with all pixels set to zero.
func NewPlanarImage(width, height int) *PlanarImage {
	n := width * height
	return &PlanarImage{
		Width:  width,
		Height: height,
		R:      make([]float32, n),
		G:      make([]float32, n),
		B:      make([]float32, n),
	}
}

// Size implements the [Image] interface.
func (m *PlanarImage) Size() (width, height int) {
	return m.Width, m.Height
}

// RGBAt implements the [Image] interface.
func (m *PlanarImage) RGBAt(x, y int) (r, g, b float32) {
	i := y*m.Width + x
	return m.R[i], m.G[i], m.B[i]
}

// SetRGB implements the [Image] interface.
func (m *PlanarImage) SetRGB(x, y int, r, g, b float32) {
	i := y*m.Width + x
	m.R[i], m.G[i], m.B[i] = r, g, b
}

// HDRImage adapts a floating point RGB image from the
// github.com/mdouchement/hdr package, where 1 corresponds to full scale.
type HDRImage struct {
	RGB *hdr.RGB
}

// NewHDRImage wraps m as an [Image].
func NewHDRImage(m *hdr.RGB) HDRImage {
	return HDRImage{RGB: m}
}

// Size implements the [Image] interface.
func (m HDRImage) Size() (width, height int) {
	b := m.RGB.Bounds()
	return b.Dx(), b.Dy()
}

// RGBAt implements the [Image] interface.
func (m HDRImage) RGBAt(x, y int) (r, g, b float32) {
	o := m.RGB.Bounds().Min
	rr, gg, bb, _ := m.RGB.HDRAt(o.X+x, o.Y+y).HDRRGBA()
	return float32(rr * 65535), float32(gg * 65535), float32(bb * 65535)
}

// SetRGB implements the [Image] interface.
func (m HDRImage) SetRGB(x, y int, r, g, b float32) {
	o := m.RGB.Bounds().Min
	m.RGB.SetRGB(o.X+x, o.Y+y, hdrcolor.RGB{
		R: float64(r) / 65535,
		G: float64(g) / 65535,
		B: float64(b) / 65535,
	})
}

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
	"runtime"
	"sync"
)

// pipeline is the per-pixel transform shared by [Profile.Apply] and
// [ApplyState.ApplyTile].  The stages run in field order; a stage is
// skipped if its field holds the zero value (or 1 for scale).
type pipeline struct {
	scale float32 // exposure scale

	toProPhoto *[9]float32

	// clip clips the ProPhoto values to [0, 65535.5]
	clip bool

	hueSat *HSVTable
	look   *HSVTable

	// clipSV clips saturation and value to [0, 1] after the look table
	clipSV bool

	curve *ToneCurve

	toWork *[9]float32
}

func (p *pipeline) isIdentity() bool {
	return p.scale == 1 && p.toProPhoto == nil && !p.clip &&
		p.hueSat == nil && p.look == nil && p.curve == nil && p.toWork == nil
}

func (p *pipeline) pixel(r, g, b float32) (float32, float32, float32) {
	if p.scale != 1 {
		r *= p.scale
		g *= p.scale
		b *= p.scale
	}

	if m := p.toProPhoto; m != nil {
		r, g, b = m[0]*r+m[1]*g+m[2]*b,
			m[3]*r+m[4]*g+m[5]*b,
			m[6]*r+m[7]*g+m[8]*b
	}

	if p.clip {
		r = clipPixel(r)
		g = clipPixel(g)
		b = clipPixel(b)
	}

	// Out-of-gamut pixels with negative components only get the matrices.
	if (p.hueSat != nil || p.look != nil) && r >= 0 && g >= 0 && b >= 0 {
		h, s, v := rgbToHSV(r, g, b)
		h *= 6

		if p.hueSat != nil {
			h, s, v = p.hueSat.Apply(h, s, v)
		}
		if p.look != nil {
			h, s, v = p.look.Apply(h, s, v)
			if p.clipSV {
				s = clip01(s)
				v = clip01(v)
			}
		}

		if h < 0 {
			h += 6
		}
		if h >= 6 {
			h -= 6
		}
		r, g, b = hsvToRGB(h/6, s, v)
	}

	if p.curve != nil {
		r, g, b = p.curve.Apply(r, g, b)
	}

	if m := p.toWork; m != nil {
		r, g, b = m[0]*r+m[1]*g+m[2]*b,
			m[3]*r+m[4]*g+m[5]*b,
			m[6]*r+m[7]*g+m[8]*b
	}
	return r, g, b
}

// runImage applies the pipeline to every pixel of img.
func (p *pipeline) runImage(img Image) {
	if p.isIdentity() {
		return
	}
	width, height := img.Size()
	parallelRows(height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := range width {
				r, g, b := img.RGBAt(x, y)
				r, g, b = p.pixel(r, g, b)
				img.SetRGB(x, y, r, g, b)
			}
		}
	})
}

// runPlanes applies the pipeline to a tile stored as three planes with
// the given row stride.
func (p *pipeline) runPlanes(rc, gc, bc []float32, width, height, stride int) {
	if p.isIdentity() {
		return
	}
	parallelRows(height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			row := y * stride
			for i := row; i < row+width; i++ {
				rc[i], gc[i], bc[i] = p.pixel(rc[i], gc[i], bc[i])
			}
		}
	})
}

// parallelRows splits the rows [0, height) into one contiguous block per
// CPU and calls fn for each block concurrently.
func parallelRows(height int, fn func(y0, y1 int)) {
	if height <= 0 {
		return
	}
	numWorkers := min(runtime.NumCPU(), height)
	if numWorkers <= 1 {
		fn(0, height)
		return
	}

	rowsPerWorker := height / numWorkers
	var wg sync.WaitGroup
	for worker := range numWorkers {
		startY := worker * rowsPerWorker
		endY := startY + rowsPerWorker
		if worker == numWorkers-1 {
			endY = height
		}

		wg.Add(1)
		go func(startY, endY int) {
			defer wg.Done()
			fn(startY, endY)
		}(startY, endY)
	}
	wg.Wait()
}

func clipPixel(x float32) float32 {
	if x > 0 {
		if x < 65535.5 {
			return x
		}
		return 65535.5
	}
	return 0
}

func clip01(x float32) float32 {
	if x > 0 {
		if x < 1 {
			return x
		}
		return 1
	}
	return 0
}

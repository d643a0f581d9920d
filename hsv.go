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

// rgbToHSV converts a pixel on the 0-65535 scale to hue, saturation and
// value.  The hue is in [0, 1], saturation and value are relative to
// full scale.
func rgbToHSV(r, g, b float32) (h, s, v float32) {
	red := float64(r) / 65535
	green := float64(g) / 65535
	blue := float64(b) / 65535

	lo := min(red, green, blue)
	hi := max(red, green, blue)
	delta := hi - lo

	v = float32(hi)
	if delta < 0.00001 && delta > -0.00001 {
		return 0, 0, v
	}

	s = float32(delta / hi)

	var hue float64
	switch hi {
	case red:
		hue = (green - blue) / delta
	case green:
		hue = 2 + (blue-red)/delta
	default:
		hue = 4 + (red-green)/delta
	}
	hue /= 6
	if hue < 0 {
		hue++
	}
	if hue > 1 {
		hue--
	}
	return float32(hue), s, v
}

// hsvToRGB is the inverse of rgbToHSV.
func hsvToRGB(h, s, v float32) (r, g, b float32) {
	h1 := h * 6
	i := int(h1)
	f := h1 - float32(i)

	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	switch i {
	case 1, -5:
		r, g, b = q, v, p
	case 2, -4:
		r, g, b = p, v, t
	case 3, -3:
		r, g, b = p, q, v
	case 4, -2:
		r, g, b = t, p, v
	case 5, -1:
		r, g, b = v, p, q
	default:
		r, g, b = v, t, p
	}
	return r * 65535, g * 65535, b * 65535
}

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
	"encoding/binary"
	"math"
	"sort"
)

// Encode converts the profile to the binary DCP format.
//
// Matrices and the baseline exposure offset are stored as signed
// rationals with denominator 10000, tables and tone curve points as
// 32-bit floats.  The tables HueSatMap1 and HueSatMap2 must have the same
// dimensions.
func (p *Profile) Encode() []byte {
	w := &tagWriter{}

	if p.CameraModel != "" {
		w.addASCII(TagUniqueCameraModel, p.CameraModel)
	}
	if p.ProfileName != "" {
		w.addASCII(TagProfileName, p.ProfileName)
	}
	if p.Copyright != "" {
		w.addASCII(TagProfileCopyright, p.Copyright)
	}

	if p.Illuminant1 != LightSourceNone {
		w.addShorts(TagCalibrationIlluminant1, uint16(p.Illuminant1))
	}
	if p.Illuminant2 != LightSourceNone {
		w.addShorts(TagCalibrationIlluminant2, uint16(p.Illuminant2))
	}

	for _, m := range []struct {
		id  TagType
		mat *Matrix3
	}{
		{TagColorMatrix1, p.ColorMatrix1},
		{TagColorMatrix2, p.ColorMatrix2},
		{TagForwardMatrix1, p.ForwardMatrix1},
		{TagForwardMatrix2, p.ForwardMatrix2},
	} {
		if m.mat != nil {
			w.addSRationals(m.id, m.mat[:]...)
		}
	}

	if t := p.HueSatMap1; t != nil {
		w.addTableDims(TagProfileHueSatMapDims, t)
		w.addLongs(TagProfileHueSatMapEncoding, boolToUint32(t.SRGBGamma))
		w.addTableData(TagProfileHueSatMapData1, t)
		if p.HueSatMap2 != nil {
			w.addTableData(TagProfileHueSatMapData2, p.HueSatMap2)
		}
	}
	if t := p.LookTable; t != nil {
		w.addTableDims(TagProfileLookTableDims, t)
		w.addLongs(TagProfileLookTableEncoding, boolToUint32(t.SRGBGamma))
		w.addTableData(TagProfileLookTableData, t)
	}

	if p.ToneCurvePoints != nil {
		w.addFloats(TagProfileToneCurve, p.ToneCurvePoints...)
	}
	if p.BaselineExposureOffset != nil {
		w.addSRationals(TagBaselineExposureOffset, *p.BaselineExposureOffset)
	}

	return w.bytes()
}

// tagWriter collects the entries of a TIFF image file directory.
type tagWriter struct {
	entries []tagEntry
}

type tagEntry struct {
	id    TagType
	typ   FieldType
	count int
	data  []byte
}

var le = binary.LittleEndian

func (w *tagWriter) add(id TagType, typ FieldType, count int, data []byte) {
	w.entries = append(w.entries, tagEntry{id: id, typ: typ, count: count, data: data})
}

func (w *tagWriter) addASCII(id TagType, s string) {
	data := append([]byte(s), 0)
	w.add(id, TypeASCII, len(data), data)
}

func (w *tagWriter) addShorts(id TagType, values ...uint16) {
	data := make([]byte, 2*len(values))
	for i, v := range values {
		le.PutUint16(data[2*i:], v)
	}
	w.add(id, TypeShort, len(values), data)
}

func (w *tagWriter) addLongs(id TagType, values ...uint32) {
	data := make([]byte, 4*len(values))
	for i, v := range values {
		le.PutUint32(data[4*i:], v)
	}
	w.add(id, TypeLong, len(values), data)
}

func (w *tagWriter) addFloats(id TagType, values ...float32) {
	data := make([]byte, 4*len(values))
	for i, v := range values {
		le.PutUint32(data[4*i:], math.Float32bits(v))
	}
	w.add(id, TypeFloat, len(values), data)
}

func (w *tagWriter) addSRationals(id TagType, values ...float64) {
	const den = 10000
	data := make([]byte, 8*len(values))
	for i, v := range values {
		num := math.Round(v * den)
		num = max(min(num, math.MaxInt32), math.MinInt32)
		le.PutUint32(data[8*i:], uint32(int32(num)))
		le.PutUint32(data[8*i+4:], den)
	}
	w.add(id, TypeSRational, len(values), data)
}

func (w *tagWriter) addTableDims(id TagType, t *HSVTable) {
	w.addLongs(id, uint32(t.HueDivisions), uint32(t.SatDivisions), uint32(t.ValDivisions))
}

func (w *tagWriter) addTableData(id TagType, t *HSVTable) {
	values := make([]float32, 0, 3*len(t.Data))
	for _, e := range t.Data {
		values = append(values, e.HueShift, e.SatScale, e.ValScale)
	}
	w.addFloats(id, values...)
}

// bytes lays out the file: the header, the directory and then the values
// which do not fit into the directory entries.
func (w *tagWriter) bytes() []byte {
	entries := make([]tagEntry, len(w.entries))
	copy(entries, w.entries)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].id < entries[j].id
	})

	const ifdOffset = 8
	pos := ifdOffset + 2 + 12*len(entries) + 4
	size := pos
	for _, e := range entries {
		if len(e.data) > 4 {
			size += (len(e.data) + 1) &^ 1
		}
	}

	buf := make([]byte, size)
	copy(buf, "IIRC")
	le.PutUint32(buf[4:], ifdOffset)
	le.PutUint16(buf[ifdOffset:], uint16(len(entries)))
	for i, e := range entries {
		entry := buf[ifdOffset+2+12*i:]
		le.PutUint16(entry[0:], uint16(e.id))
		le.PutUint16(entry[2:], uint16(e.typ))
		le.PutUint32(entry[4:], uint32(e.count))
		if len(e.data) <= 4 {
			copy(entry[8:12], e.data)
			continue
		}
		le.PutUint32(entry[8:], uint32(pos))
		copy(buf[pos:], e.data)
		pos += (len(e.data) + 1) &^ 1
	}
	// the next-directory offset stays zero

	return buf
}

func boolToUint32(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

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
	"fmt"
	"math"
	"strings"
)

// FieldType is the data type of a TIFF field.
type FieldType uint16

// TIFF field types.
const (
	TypeByte      FieldType = 1
	TypeASCII     FieldType = 2
	TypeShort     FieldType = 3
	TypeLong      FieldType = 4
	TypeRational  FieldType = 5
	TypeSByte     FieldType = 6
	TypeUndefined FieldType = 7
	TypeSShort    FieldType = 8
	TypeSLong     FieldType = 9
	TypeSRational FieldType = 10
	TypeFloat     FieldType = 11
	TypeDouble    FieldType = 12
)

// Size returns the number of bytes used by one value of the type,
// or 0 if the type is unknown.
func (t FieldType) Size() int {
	switch t {
	case TypeByte, TypeASCII, TypeSByte, TypeUndefined:
		return 1
	case TypeShort, TypeSShort:
		return 2
	case TypeLong, TypeSLong, TypeFloat:
		return 4
	case TypeRational, TypeSRational, TypeDouble:
		return 8
	default:
		return 0
	}
}

// Tag is one entry of a TIFF image file directory.
// Values are accessed by element index; the element size is given by
// the field type.  Accessing an element at or beyond Count panics.
type Tag struct {
	ID   TagType
	Type FieldType

	count  int
	data   []byte
	order  binary.ByteOrder
	offset int // position of the directory entry in the file
}

// Count returns the number of values stored in the tag.
func (t *Tag) Count() int {
	return t.count
}

// Int returns the i-th value of the tag, converted to an integer.
func (t *Tag) Int(i int) int {
	switch t.Type {
	case TypeByte, TypeUndefined, TypeASCII:
		return int(t.data[i])
	case TypeSByte:
		return int(int8(t.data[i]))
	case TypeShort:
		return int(t.order.Uint16(t.data[2*i:]))
	case TypeSShort:
		return int(int16(t.order.Uint16(t.data[2*i:])))
	case TypeLong:
		return int(t.order.Uint32(t.data[4*i:]))
	case TypeSLong:
		return int(int32(t.order.Uint32(t.data[4*i:])))
	default:
		return int(t.Float(i))
	}
}

// Float returns the i-th value of the tag as a floating point number.
// Rationals with a zero denominator give 0.
func (t *Tag) Float(i int) float64 {
	switch t.Type {
	case TypeRational:
		num := t.order.Uint32(t.data[8*i:])
		den := t.order.Uint32(t.data[8*i+4:])
		if den == 0 {
			return 0
		}
		return float64(num) / float64(den)
	case TypeSRational:
		num := int32(t.order.Uint32(t.data[8*i:]))
		den := int32(t.order.Uint32(t.data[8*i+4:]))
		if den == 0 {
			return 0
		}
		return float64(num) / float64(den)
	case TypeFloat:
		return float64(math.Float32frombits(t.order.Uint32(t.data[4*i:])))
	case TypeDouble:
		return math.Float64frombits(t.order.Uint64(t.data[8*i:]))
	default:
		return float64(t.Int(i))
	}
}

// String returns the value of an ASCII tag, without trailing NUL bytes.
// For other types, a printable summary of the values is returned.
func (t *Tag) String() string {
	if t.Type == TypeASCII || t.Type == TypeUndefined || t.Type == TypeByte {
		return strings.TrimRight(string(t.data), "\x00")
	}

	var b strings.Builder
	for i := range t.count {
		if i > 0 {
			b.WriteByte(' ')
		}
		if i >= 8 {
			fmt.Fprintf(&b, "... (%d values)", t.count)
			break
		}
		switch t.Type {
		case TypeRational, TypeSRational, TypeFloat, TypeDouble:
			fmt.Fprintf(&b, "%g", t.Float(i))
		default:
			fmt.Fprintf(&b, "%d", t.Int(i))
		}
	}
	return b.String()
}

// TagDirectory holds the tags of the first image file directory of a
// TIFF-structured file.
type TagDirectory map[TagType]*Tag

// Get returns the tag with the given ID, or nil if the tag is not present.
func (d TagDirectory) Get(id TagType) *Tag {
	return d[id]
}

// TIFF and DCP file signatures.
const (
	tiffMagic = 42
	dcpMagic  = 0x4352 // "RC" in little endian byte order
)

// ReadTags parses the first image file directory of a TIFF-structured
// file.  Both regular TIFF/DNG files and DNG camera profiles (which use a
// different magic number) are accepted.  Entries with unknown field
// types are skipped.
//
// The returned tags refer to the given data; the caller must not modify
// data afterwards.
func ReadTags(data []byte) (TagDirectory, error) {
	if len(data) < 8 {
		return nil, invalidProfile(0, "file is too short")
	}

	var order binary.ByteOrder
	switch string(data[:2]) {
	case "II":
		order = binary.LittleEndian
	case "MM":
		order = binary.BigEndian
	default:
		return nil, invalidProfile(0, "invalid byte order mark")
	}
	magic := order.Uint16(data[2:])
	if magic != tiffMagic && magic != dcpMagic {
		return nil, invalidProfile(2, "invalid magic number")
	}

	ifd := uint64(order.Uint32(data[4:]))
	if ifd < 8 || ifd+2 > uint64(len(data)) {
		return nil, invalidProfile(4, "directory offset out of range")
	}
	numEntries := uint64(order.Uint16(data[ifd:]))
	if ifd+2+numEntries*12 > uint64(len(data)) {
		return nil, invalidProfile(int(ifd), "directory extends past end of file")
	}

	dir := make(TagDirectory, numEntries)
	for i := range numEntries {
		pos := int(ifd + 2 + i*12)
		entry := data[pos : pos+12]

		id := TagType(order.Uint16(entry[0:]))
		typ := FieldType(order.Uint16(entry[2:]))
		count := uint64(order.Uint32(entry[4:]))

		size := typ.Size()
		if size == 0 {
			continue
		}
		if _, seen := dir[id]; seen {
			continue
		}

		n := count * uint64(size)
		var body []byte
		if n <= 4 {
			body = entry[8 : 8+n]
		} else {
			start := uint64(order.Uint32(entry[8:]))
			if start+n > uint64(len(data)) {
				return nil, invalidProfile(pos, fmt.Sprintf("tag %d is out of bounds", id))
			}
			body = data[start : start+n]
		}

		dir[id] = &Tag{
			ID:     id,
			Type:   typ,
			count:  int(count),
			data:   body,
			order:  order,
			offset: pos,
		}
	}
	return dir, nil
}

// InvalidProfileError indicates that a camera profile contains invalid
// binary data and cannot be decoded.
type InvalidProfileError struct {
	Offset int
	Reason string
}

func invalidProfile(offset int, reason string) error {
	return &InvalidProfileError{Offset: offset, Reason: reason}
}

func (e *InvalidProfileError) Error() string {
	return fmt.Sprintf("dcp: invalid profile (byte %d): %s", e.Offset, e.Reason)
}

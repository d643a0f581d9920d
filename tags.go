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

import "fmt"

// The TagType identifies a tag in a camera profile.
type TagType uint16

func (t TagType) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Tag(%d)", uint16(t))
}

// These are the tags used by DNG camera profiles.
const (
	TagUniqueCameraModel        TagType = 50708
	TagColorMatrix1             TagType = 50721
	TagColorMatrix2             TagType = 50722
	TagCalibrationIlluminant1   TagType = 50778
	TagCalibrationIlluminant2   TagType = 50779
	TagProfileCalibrationSig    TagType = 50932
	TagProfileName              TagType = 50936
	TagProfileHueSatMapDims     TagType = 50937
	TagProfileHueSatMapData1    TagType = 50938
	TagProfileHueSatMapData2    TagType = 50939
	TagProfileToneCurve         TagType = 50940
	TagProfileEmbedPolicy       TagType = 50941
	TagProfileCopyright         TagType = 50942
	TagForwardMatrix1           TagType = 50964
	TagForwardMatrix2           TagType = 50965
	TagProfileLookTableDims     TagType = 50981
	TagProfileLookTableData     TagType = 50982
	TagProfileHueSatMapEncoding TagType = 51107
	TagProfileLookTableEncoding TagType = 51108
	TagBaselineExposureOffset   TagType = 51109
)

var tagNames = map[TagType]string{
	TagUniqueCameraModel:        "UniqueCameraModel",
	TagColorMatrix1:             "ColorMatrix1",
	TagColorMatrix2:             "ColorMatrix2",
	TagCalibrationIlluminant1:   "CalibrationIlluminant1",
	TagCalibrationIlluminant2:   "CalibrationIlluminant2",
	TagProfileCalibrationSig:    "ProfileCalibrationSignature",
	TagProfileName:              "ProfileName",
	TagProfileHueSatMapDims:     "ProfileHueSatMapDims",
	TagProfileHueSatMapData1:    "ProfileHueSatMapData1",
	TagProfileHueSatMapData2:    "ProfileHueSatMapData2",
	TagProfileToneCurve:         "ProfileToneCurve",
	TagProfileEmbedPolicy:       "ProfileEmbedPolicy",
	TagProfileCopyright:         "ProfileCopyright",
	TagForwardMatrix1:           "ForwardMatrix1",
	TagForwardMatrix2:           "ForwardMatrix2",
	TagProfileLookTableDims:     "ProfileLookTableDims",
	TagProfileLookTableData:     "ProfileLookTableData",
	TagProfileHueSatMapEncoding: "ProfileHueSatMapEncoding",
	TagProfileLookTableEncoding: "ProfileLookTableEncoding",
	TagBaselineExposureOffset:   "BaselineExposureOffset",
}

// readMatrix reads a 3x3 matrix tag, stored in row-major order.
func readMatrix(dir TagDirectory, id TagType) (*Matrix3, error) {
	tag := dir.Get(id)
	if tag == nil {
		return nil, nil
	}
	if tag.Count() < 9 {
		return nil, invalidProfile(tag.offset, fmt.Sprintf("%s has %d values, need 9", id, tag.Count()))
	}
	m := &Matrix3{}
	for i := range m {
		m[i] = tag.Float(i)
	}
	return m, nil
}

// readTableDims reads the hue, saturation and value divisions of a table.
func readTableDims(tag *Tag) (hue, sat, val int, err error) {
	if tag.Count() < 3 {
		return 0, 0, 0, invalidProfile(tag.offset, fmt.Sprintf("%s has %d values, need 3", tag.ID, tag.Count()))
	}
	return tag.Int(0), tag.Int(1), tag.Int(2), nil
}

// readTableData reads the (hue shift, saturation scale, value scale)
// triples of a table.
func readTableData(tag *Tag) []HSBModify {
	n := tag.Count() / 3
	data := make([]HSBModify, n)
	for i := range data {
		data[i] = HSBModify{
			HueShift: float32(tag.Float(3 * i)),
			SatScale: float32(tag.Float(3*i + 1)),
			ValScale: float32(tag.Float(3*i + 2)),
		}
	}
	return data
}

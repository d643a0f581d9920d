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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHSVTableErrors(t *testing.T) {
	tests := []struct {
		name          string
		hue, sat, val int
		n             int
		want          error
	}{
		{"no hue", 0, 1, 1, 10, errInvalidDims},
		{"no sat", 1, 0, 1, 10, errInvalidDims},
		{"negative val", 1, 1, -1, 10, errInvalidDims},
		{"short 2d", 6, 2, 0, 11, errShortTable},
		{"short 3d", 6, 2, 2, 23, errShortTable},
		{"overflow", 1 << 30, 1 << 30, 1 << 30, 8, errShortTable},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			data := make([]HSBModify, test.n)
			_, err := NewHSVTable(test.hue, test.sat, test.val, false, data)
			if !errors.Is(err, test.want) {
				t.Errorf("got %v, want %v", err, test.want)
			}
		})
	}

	_, err := NewHSVTable(6, 2, 2, false, make([]HSBModify, 24))
	assert.NoError(t, err)
}

func TestHSVTableSingleBin(t *testing.T) {
	identity, err := NewHSVTable(1, 1, 1, false, []HSBModify{{0, 1, 1}})
	require.NoError(t, err)

	inputs := [][3]float32{
		{0, 0, 0},
		{3.5, 0.4, 0.6},
		{5.99, 1, 1},
		{2, 0.5, 1.5},
	}
	for _, in := range inputs {
		h, s, v := identity.Apply(in[0], in[1], in[2])
		assert.Equal(t, in, [3]float32{h, s, v})
	}

	shift, err := NewHSVTable(1, 1, 0, false, []HSBModify{{30, 2, 0.5}})
	require.NoError(t, err)
	h, s, v := shift.Apply(1, 0.25, 0.5)
	assert.InDelta(t, 1.5, h, 1e-6)
	assert.InDelta(t, 0.5, s, 1e-6)
	assert.InDelta(t, 0.25, v, 1e-6)
}

func TestHSVTableHue(t *testing.T) {
	// six hue bins, the saturation scale grows with the hue index
	data := make([]HSBModify, 6*2)
	for hIdx := range 6 {
		for sIdx := range 2 {
			data[hIdx*2+sIdx] = HSBModify{SatScale: float32(1 + hIdx), ValScale: 1}
		}
	}
	table, err := NewHSVTable(6, 2, 1, false, data)
	require.NoError(t, err)

	tests := []struct {
		h, wantS float32
	}{
		{0, 0.5},
		{1, 1},
		{1.5, 1.25},
		{4.25, 2.625},
		{5.5, 1.75}, // wraps around to the first bin
	}
	for _, test := range tests {
		h, s, v := table.Apply(test.h, 0.5, 0.8)
		assert.Equal(t, test.h, h)
		assert.InDelta(t, test.wantS, s, 1e-6, "h=%g", test.h)
		assert.Equal(t, float32(0.8), v)
	}
}

func TestHSVTableSaturation(t *testing.T) {
	data := []HSBModify{
		{SatScale: 1, ValScale: 1},
		{SatScale: 2, ValScale: 1},
	}
	table, err := NewHSVTable(1, 2, 0, false, data)
	require.NoError(t, err)

	_, s, _ := table.Apply(0, 0.25, 0.5)
	assert.InDelta(t, 0.3125, s, 1e-6)

	// saturation beyond the table range uses the last bin
	_, s, _ = table.Apply(0, 1, 0.5)
	assert.InDelta(t, 2, s, 1e-6)
}

func TestHSVTableValue(t *testing.T) {
	data := []HSBModify{
		{SatScale: 1, ValScale: 1},
		{SatScale: 1, ValScale: 2},
		{SatScale: 1, ValScale: 3},
	}
	table, err := NewHSVTable(1, 1, 3, false, data)
	require.NoError(t, err)

	tests := []struct {
		v, want float32
	}{
		{0, 0},
		{0.25, 0.375},
		{0.5, 1},
		{0.75, 1.875},
	}
	for _, test := range tests {
		_, _, v := table.Apply(2, 0.5, test.v)
		assert.InDelta(t, test.want, v, 1e-6, "v=%g", test.v)
	}

	flat := []HSBModify{{0, 1, 1}, {0, 1, 1}}
	gamma, err := NewHSVTable(1, 1, 2, true, flat)
	require.NoError(t, err)
	for _, in := range []float32{0, 0.001, 0.2, 0.7, 1} {
		_, _, v := gamma.Apply(0, 0, in)
		assert.InDelta(t, in, v, 1e-5)
	}
}

func TestHSVTableMix(t *testing.T) {
	a, err := NewHSVTable(1, 2, 0, false, []HSBModify{{0, 1, 1}, {10, 1, 2}})
	require.NoError(t, err)
	b, err := NewHSVTable(1, 2, 0, false, []HSBModify{{20, 3, 1}, {30, 3, 4}})
	require.NoError(t, err)

	m := a.mix(0.25, b)
	want := []HSBModify{{15, 2.5, 1}, {25, 2.5, 3.5}}
	assert.Equal(t, want, m.Data)
	assert.Equal(t, a.HueDivisions, m.HueDivisions)
	assert.Equal(t, a.SatDivisions, m.SatDivisions)

	// the inputs are unchanged
	assert.Equal(t, []HSBModify{{0, 1, 1}, {10, 1, 2}}, a.Data)
}

func TestMakeHueSatMap(t *testing.T) {
	a, err := NewHSVTable(1, 1, 0, false, []HSBModify{{0, 1, 1}})
	require.NoError(t, err)
	b, err := NewHSVTable(1, 1, 0, false, []HSBModify{{0, 2, 1}})
	require.NoError(t, err)

	p := &Profile{
		HueSatMap1:   a,
		HueSatMap2:   b,
		temperature1: 2850,
		temperature2: 6500,
	}
	reversed := &Profile{
		HueSatMap1:   a,
		HueSatMap2:   b,
		temperature1: 6500,
		temperature2: 2850,
	}
	mid := 2 / (1.0/2850 + 1.0/6500)

	assert.Same(t, a, p.MakeHueSatMap(ColorTemp{Kelvin: 2000}, MixIlluminants))
	assert.Same(t, b, p.MakeHueSatMap(ColorTemp{Kelvin: 8000}, MixIlluminants))
	assert.Same(t, b, p.MakeHueSatMap(ColorTemp{Kelvin: 2000}, PreferIlluminant2))
	assert.Same(t, a, p.MakeHueSatMap(ColorTemp{Kelvin: 8000}, PreferIlluminant1))
	assert.Same(t, b, reversed.MakeHueSatMap(ColorTemp{Kelvin: 2000}, MixIlluminants))
	assert.Same(t, a, reversed.MakeHueSatMap(ColorTemp{Kelvin: 8000}, MixIlluminants))

	m := p.MakeHueSatMap(ColorTemp{Kelvin: mid}, MixIlluminants)
	require.NotSame(t, a, m)
	require.NotSame(t, b, m)
	assert.InDelta(t, 1.5, m.Data[0].SatScale, 1e-6)
	_, s, _ := m.Apply(0, 0.5, 0.5)
	assert.InDelta(t, 0.75, s, 1e-6)

	single := &Profile{HueSatMap1: a}
	assert.Same(t, a, single.MakeHueSatMap(ColorTemp{Kelvin: mid}, MixIlluminants))
	assert.Nil(t, (&Profile{}).MakeHueSatMap(ColorTemp{Kelvin: mid}, MixIlluminants))
}

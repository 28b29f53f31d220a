// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package unaligned

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type pixel [4]uint8

type label uint16

func TestWidthBytes(t *testing.T) {
	want := []int{1, 2, 4, 8, 16, 32, 64}
	for i, w := range Widths {
		assert.Equal(t, want[i], w.Bytes(), "%v", w)
		assert.True(t, w.Valid())
	}
	assert.False(t, Width(24).Valid())
	assert.Equal(t, "bits128", Width128.String())
	assert.Equal(t, "invalid", Width(0).String())
}

func TestClassOf(t *testing.T) {
	tests := []struct {
		name string
		got  func() (Width, bool)
		want Width
		ok   bool
	}{
		{"uint8", ClassOf[uint8], Width8, true},
		{"[1]int8", ClassOf[[1]int8], Width8, true},
		{"int16", ClassOf[int16], Width16, true},
		{"[2]uint8", ClassOf[[2]uint8], Width16, true},
		{"float32", ClassOf[float32], Width32, true},
		{"pixel", ClassOf[pixel], Width32, true},
		{"label", ClassOf[label], Width16, true},
		{"[2]float32", ClassOf[[2]float32], Width64, true},
		{"[1]float64", ClassOf[[1]float64], Width64, true},
		{"[16]uint8", ClassOf[[16]uint8], Width128, true},
		{"[4]uint32", ClassOf[[4]uint32], Width128, true},
		{"[2]int64", ClassOf[[2]int64], Width128, true},
		{"[8]float32", ClassOf[[8]float32], Width256, true},
		{"[64]int8", ClassOf[[64]int8], Width512, true},
		{"Cell[[4]uint32]", ClassOf[Cell[[4]uint32]], Width128, true},
		{"[4]Cell[uint32]", ClassOf[[4]Cell[uint32]], Width128, true},
		{"Cell[int64]", ClassOf[Cell[int64]], Width64, true},
		{"[3]uint32", ClassOf[[3]uint32], 0, false},
		{"[16]bool", ClassOf[[16]bool], 0, false},
		{"bool", ClassOf[bool], 0, false},
		{"int", ClassOf[int], 0, false},
		{"uintptr", ClassOf[uintptr], 0, false},
		{"complex64", ClassOf[complex64], 0, false},
		{"struct", ClassOf[struct{ a, b uint64 }], 0, false},
		{"[0]uint8", ClassOf[[0]uint8], 0, false},
		{"[128]uint8", ClassOf[[128]uint8], 0, false},
		{"Cell[[4]Cell[uint32]]", ClassOf[Cell[[4]Cell[uint32]]], 0, false},
		{"*uint64", ClassOf[*uint64], 0, false},
		{"[5]uint16", ClassOf[[5]uint16], 0, false},
		{"[3]Cell[uint8]", ClassOf[[3]Cell[uint8]], 0, false},
		{"Cell[[3]uint32]", ClassOf[Cell[[3]uint32]], 0, false},
		{"[3]float64", ClassOf[[3]float64], 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, ok := tt.got()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, w)
		})
	}
}

func TestFeatureNames(t *testing.T) {
	for _, f := range Features {
		got, ok := LookupFeature(f.String())
		assert.True(t, ok, f.String())
		assert.Equal(t, f, got)
	}
	_, ok := LookupFeature("mmx")
	assert.False(t, ok)
	assert.Equal(t, "unknown", Feature(-1).String())
	assert.False(t, Has(Feature(100)))
}

func TestLevelNamesAPath(t *testing.T) {
	switch Level() {
	case "portable", "archsimd-avx", "archsimd-avx2", "archsimd-avx512":
	default:
		t.Errorf("Level() = %q", Level())
	}
}

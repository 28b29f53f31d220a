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

package wasm32

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ajroetker/go-unaligned/unaligned"
)

func TestV128RoundTrip(t *testing.T) {
	src := [4]float32{1, -2, float32(math.Inf(1)), 0.5}
	var dst [16]int8
	V128Store(&dst, V128Load(&src))
	assert.Equal(t, src, V128As[[4]float32](V128From(dst)))

	c := unaligned.NewCell([2]uint64{math.MaxUint64, 7})
	v := V128Load(&c)
	if hostLittleEndian() {
		assert.Equal(t, [2]uint64{math.MaxUint64, 7}, v.U64s())
	}

	var out unaligned.Cell[[8]int16]
	V128Store(&out, v)
	assert.Equal(t, V128From(c.Get()), V128From(out.Get()))
}

func hostLittleEndian() bool {
	var b [2]byte
	binary.NativeEndian.PutUint16(b[:], 1)
	return b[0] == 1
}

// V128From is the memory image of its argument, the same bytes a load
// produces; lane getters read it in WebAssembly order.
func TestV128FromMatchesLoad(t *testing.T) {
	u32 := [4]uint32{0x01020304, 0x05060708, 0x090a0b0c, 0x0d0e0f10}
	i16 := [8]int16{-1, 2, -3, 4, -5, 6, -7, 8}
	f64 := [2]float64{1.5, -0.25}

	assert.Equal(t, V128Load(&u32), V128From(u32))
	assert.Equal(t, V128Load(&i16), V128From(i16))
	assert.Equal(t, V128Load(&f64), V128From(f64))
	assert.Equal(t, u32, V128As[[4]uint32](V128From(u32)))

	if !hostLittleEndian() {
		t.Skip("lane getters decode little-endian; host order differs")
	}
	assert.Equal(t, u32, V128From(u32).U32s())
	assert.Equal(t, i16, V128From(i16).I16s())
	assert.Equal(t, V128{4, 3, 2, 1, 8, 7, 6, 5, 0xc, 0xb, 0xa, 9, 0x10, 0xf, 0xe, 0xd}, V128From(u32))
}

func TestV128CellWindows(t *testing.T) {
	x := []uint32{0, 1, 2, 3, 4}
	cells := unaligned.CellsOf(x)
	V128Store((*[4]unaligned.Cell[uint32])(cells[1:]), V128Load((*[4]unaligned.Cell[uint32])(cells[:4])))
	assert.Equal(t, []uint32{0, 0, 1, 2, 3}, x)
}

func TestSplat(t *testing.T) {
	b := uint8(0x7F)
	for i, got := range V128Load8Splat(&b) {
		assert.Equal(t, b, got, "lane %d", i)
	}

	h := [2]uint8{0x34, 0x12}
	assert.Equal(t, [8]uint16{0x1234, 0x1234, 0x1234, 0x1234, 0x1234, 0x1234, 0x1234, 0x1234}, V128Load16Splat(&h).U16s())

	w := int32(-9)
	assert.Equal(t, [4]int32{-9, -9, -9, -9}, V128Load32Splat(&w).I32s())

	d := unaligned.NewCell(int64(math.MinInt64))
	assert.Equal(t, [2]int64{math.MinInt64, math.MinInt64}, V128Load64Splat(&d).I64s())
}

func TestZeroLoads(t *testing.T) {
	w := [4]uint8{1, 2, 3, 4}
	assert.Equal(t, [4]uint32{0x04030201, 0, 0, 0}, V128Load32Zero(&w).U32s())

	d := uint64(0xDEADBEEF00C0FFEE)
	assert.Equal(t, [2]uint64{d, 0}, V128Load64Zero(&d).U64s())
}

func TestExtendLoads(t *testing.T) {
	bytes := [8]int8{-1, 1, -128, 127, 0, -2, 2, -3}
	assert.Equal(t, [8]int16{-1, 1, -128, 127, 0, -2, 2, -3}, I16x8LoadExtendI8x8(&bytes).I16s())
	assert.Equal(t, [8]uint16{255, 1, 128, 127, 0, 254, 2, 253}, I16x8LoadExtendU8x8(&bytes).U16s())
	assert.Equal(t, I16x8LoadExtendU8x8(&bytes), U16x8LoadExtendU8x8(&bytes))

	halves := [4]int16{-1, math.MaxInt16, math.MinInt16, 5}
	assert.Equal(t, [4]int32{-1, math.MaxInt16, math.MinInt16, 5}, I32x4LoadExtendI16x4(&halves).I32s())
	assert.Equal(t, [4]uint32{0xFFFF, 0x7FFF, 0x8000, 5}, I32x4LoadExtendU16x4(&halves).U32s())
	assert.Equal(t, I32x4LoadExtendU16x4(&halves), U32x4LoadExtendU16x4(&halves))

	words := [2]int32{-1, math.MaxInt32}
	assert.Equal(t, [2]int64{-1, math.MaxInt32}, I64x2LoadExtendI32x2(&words).I64s())
	assert.Equal(t, [2]uint64{0xFFFFFFFF, math.MaxInt32}, I64x2LoadExtendU32x2(&words).U64s())
	assert.Equal(t, I64x2LoadExtendU32x2(&words), U64x2LoadExtendU32x2(&words))
}

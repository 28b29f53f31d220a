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

package raw

import (
	"bytes"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pattern(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i*7 + 3)
	}
	return b
}

func TestPathString(t *testing.T) {
	tests := []struct {
		p    Path
		want string
	}{
		{PathPortable, "portable"},
		{PathAVX, "archsimd-avx"},
		{PathAVX2, "archsimd-avx2"},
		{PathAVX512, "archsimd-avx512"},
		{Path(99), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.p.String(), "Path(%d)", int(tt.p))
	}
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"true", true},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Run(tt.val, func(t *testing.T) {
			t.Setenv("UNALIGNED_NO_SIMD", tt.val)
			assert.Equal(t, tt.want, NoSimdEnv())
		})
	}
}

// The source buffer is walked at each misalignment within a cache line.
func TestMovesAtEveryOffset(t *testing.T) {
	src := pattern(128)
	for off := range 64 {
		p := unsafe.Pointer(&src[off])
		l1, l2, l4, l8 := Load1(p), Load2(p), Load4(p), Load8(p)
		l16, l32, l64 := Load16(p), Load32(p), Load64(p)

		require.Equal(t, src[off:off+1], l1[:], "Load1 at %d", off)
		require.Equal(t, src[off:off+2], l2[:], "Load2 at %d", off)
		require.Equal(t, src[off:off+4], l4[:], "Load4 at %d", off)
		require.Equal(t, src[off:off+8], l8[:], "Load8 at %d", off)
		require.Equal(t, src[off:off+16], l16[:], "Load16 at %d", off)
		require.Equal(t, src[off:off+32], l32[:], "Load32 at %d", off)
		require.Equal(t, src[off:off+64], l64[:], "Load64 at %d", off)
	}
}

func TestStoresTouchOnlyTheirWidth(t *testing.T) {
	for _, width := range []int{1, 2, 4, 8, 16, 32, 64} {
		for off := range 17 {
			dst := bytes.Repeat([]byte{0xAA}, 96)
			val := pattern(width)
			p := unsafe.Pointer(&dst[off])
			switch width {
			case 1:
				Store1(p, [1]byte(val))
			case 2:
				Store2(p, [2]byte(val))
			case 4:
				Store4(p, [4]byte(val))
			case 8:
				Store8(p, [8]byte(val))
			case 16:
				Store16(p, [16]byte(val))
			case 32:
				Store32(p, [32]byte(val))
			case 64:
				Store64(p, [64]byte(val))
			}
			want := bytes.Repeat([]byte{0xAA}, 96)
			copy(want[off:], val)
			require.Equal(t, want, dst, "Store%d at %d", width, off)
		}
	}
}

// The wide moves must agree between the archsimd path and the plain copy.
func TestWideMovesMatchPortable(t *testing.T) {
	src := pattern(160)
	for off := range 33 {
		p := unsafe.Pointer(&src[off])
		assert.Equal(t, *(*[16]byte)(p), Load16(p), "Load16 at %d on %v", off, CurrentPath())
		assert.Equal(t, *(*[32]byte)(p), Load32(p), "Load32 at %d on %v", off, CurrentPath())
		assert.Equal(t, *(*[64]byte)(p), Load64(p), "Load64 at %d on %v", off, CurrentPath())
	}
}

func TestDeinterleave(t *testing.T) {
	// Four two-field structures of uint16, two registers of four lanes:
	// memory a0 b0 a1 b1 a2 b2 a3 b3.
	src := [8]uint16{10, 20, 11, 21, 12, 22, 13, 23}
	var dst [2][4]uint16
	Deinterleave(unsafe.Pointer(&dst), unsafe.Pointer(&src), 2, 8, 2)
	assert.Equal(t, [2][4]uint16{{10, 11, 12, 13}, {20, 21, 22, 23}}, dst)

	var back [8]uint16
	Interleave(unsafe.Pointer(&back), unsafe.Pointer(&dst), 2, 8, 2)
	assert.Equal(t, src, back)
}

func TestDeinterleaveInPlace(t *testing.T) {
	buf := [12]uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	Deinterleave(unsafe.Pointer(&buf), unsafe.Pointer(&buf), 3, 4, 1)
	assert.Equal(t, [12]uint8{0, 3, 6, 9, 1, 4, 7, 10, 2, 5, 8, 11}, buf)
}

func TestReplicate(t *testing.T) {
	src := [3]uint32{7, 8, 9}
	var dst [3][4]uint32
	Replicate(unsafe.Pointer(&dst), unsafe.Pointer(&src), 3, 16, 4)
	assert.Equal(t, [3][4]uint32{{7, 7, 7, 7}, {8, 8, 8, 8}, {9, 9, 9, 9}}, dst)
}

func TestSplat(t *testing.T) {
	v := uint16(0xBEEF)
	var dst [32]uint16
	Splat(unsafe.Pointer(&dst), 64, unsafe.Pointer(&v), 2)
	for i, got := range dst {
		require.Equal(t, v, got, "dst[%d]", i)
	}
}

func TestCopyBlocks(t *testing.T) {
	src := pattern(49)
	var dst [3][16]byte
	CopyBlocks(unsafe.Pointer(&dst), unsafe.Pointer(&src[1]), 3, 16)
	for i := range 3 {
		assert.Equal(t, src[1+i*16:1+(i+1)*16], dst[i][:], "block %d", i)
	}

	var half [2][8]byte
	CopyBlocks(unsafe.Pointer(&half), unsafe.Pointer(&src[3]), 2, 8)
	assert.Equal(t, src[3:19], append(half[0][:], half[1][:]...))
}

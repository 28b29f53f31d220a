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

// Package wasm32 wraps the WebAssembly SIMD128 memory instructions.
//
// Unlike the x86 wrappers, every function here accepts both exclusive
// references and cell forms of its width through the unaligned.BytesN
// constraints, since the WebAssembly instructions carry no alignment or
// aliasing requirement of their own.
//
// Lanes are little-endian, as in WebAssembly.
package wasm32

import (
	"encoding/binary"
	"unsafe"

	"github.com/ajroetker/go-unaligned/internal/raw"
	"github.com/ajroetker/go-unaligned/unaligned"
)

// V128 is a 128-bit WebAssembly vector value.
type V128 [16]byte

// V128From builds a vector from the in-memory bytes of any 16-byte shape.
// The result equals V128Load(&v) on every host. The lane getters decode
// those bytes in WebAssembly's little-endian order, so V128From(v).U32s()
// gives back the lanes of a [4]uint32 only on little-endian hosts.
func V128From[T unaligned.Bits128](v T) V128 {
	return *(*V128)(unsafe.Pointer(&v))
}

// V128As reinterprets v as any 16-byte shape. It is the inverse of
// V128From and, like it, keeps the host's byte order.
func V128As[T unaligned.Bits128](v V128) T {
	return *(*T)(unsafe.Pointer(&v))
}

// I16s returns v as eight signed 16-bit lanes.
func (v V128) I16s() (l [8]int16) {
	for i := range l {
		l[i] = int16(binary.LittleEndian.Uint16(v[2*i:]))
	}
	return l
}

// U16s returns v as eight unsigned 16-bit lanes.
func (v V128) U16s() (l [8]uint16) {
	for i := range l {
		l[i] = binary.LittleEndian.Uint16(v[2*i:])
	}
	return l
}

// I32s returns v as four signed 32-bit lanes.
func (v V128) I32s() (l [4]int32) {
	for i := range l {
		l[i] = int32(binary.LittleEndian.Uint32(v[4*i:]))
	}
	return l
}

// U32s returns v as four unsigned 32-bit lanes.
func (v V128) U32s() (l [4]uint32) {
	for i := range l {
		l[i] = binary.LittleEndian.Uint32(v[4*i:])
	}
	return l
}

// I64s returns v as two signed 64-bit lanes.
func (v V128) I64s() (l [2]int64) {
	for i := range l {
		l[i] = int64(binary.LittleEndian.Uint64(v[8*i:]))
	}
	return l
}

// U64s returns v as two unsigned 64-bit lanes.
func (v V128) U64s() (l [2]uint64) {
	for i := range l {
		l[i] = binary.LittleEndian.Uint64(v[8*i:])
	}
	return l
}

// V128Load loads 16 bytes.
func V128Load[T unaligned.Bytes16](from *T) V128 {
	return V128(raw.Load16(unsafe.Pointer(from)))
}

// V128Store stores 16 bytes.
func V128Store[T unaligned.Bytes16](into *T, v V128) {
	raw.Store16(unsafe.Pointer(into), v)
}

func splat(from unsafe.Pointer, size int) (r V128) {
	raw.Splat(unsafe.Pointer(&r), 16, from, size)
	return r
}

// V128Load8Splat loads one byte into all sixteen lanes.
func V128Load8Splat[T unaligned.Bytes1](from *T) V128 {
	return splat(unsafe.Pointer(from), 1)
}

// V128Load16Splat loads 2 bytes into all eight lanes.
func V128Load16Splat[T unaligned.Bytes2](from *T) V128 {
	return splat(unsafe.Pointer(from), 2)
}

// V128Load32Splat loads 4 bytes into all four lanes.
func V128Load32Splat[T unaligned.Bytes4](from *T) V128 {
	return splat(unsafe.Pointer(from), 4)
}

// V128Load64Splat loads 8 bytes into both lanes.
func V128Load64Splat[T unaligned.Bytes8](from *T) V128 {
	return splat(unsafe.Pointer(from), 8)
}

// V128Load32Zero loads 4 bytes into the low lane and zeroes the rest.
func V128Load32Zero[T unaligned.Bytes4](from *T) (r V128) {
	raw.Store4(unsafe.Pointer(&r), raw.Load4(unsafe.Pointer(from)))
	return r
}

// V128Load64Zero loads 8 bytes into the low lane and zeroes the rest.
func V128Load64Zero[T unaligned.Bytes8](from *T) (r V128) {
	raw.Store8(unsafe.Pointer(&r), raw.Load8(unsafe.Pointer(from)))
	return r
}

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
	"unsafe"

	"github.com/ajroetker/go-unaligned/internal/raw"
	"github.com/ajroetker/go-unaligned/unaligned"
)

// I16x8LoadExtendI8x8 loads eight 8-bit lanes and sign-extends each to
// 16 bits.
func I16x8LoadExtendI8x8[T unaligned.Bytes8](from *T) (r V128) {
	in := raw.Load8(unsafe.Pointer(from))
	for i, b := range in {
		binary.LittleEndian.PutUint16(r[2*i:], uint16(int16(int8(b))))
	}
	return r
}

// I16x8LoadExtendU8x8 loads eight 8-bit lanes and zero-extends each to
// 16 bits.
func I16x8LoadExtendU8x8[T unaligned.Bytes8](from *T) (r V128) {
	in := raw.Load8(unsafe.Pointer(from))
	for i, b := range in {
		binary.LittleEndian.PutUint16(r[2*i:], uint16(b))
	}
	return r
}

// I32x4LoadExtendI16x4 loads four 16-bit lanes and sign-extends each to
// 32 bits.
func I32x4LoadExtendI16x4[T unaligned.Bytes8](from *T) (r V128) {
	in := raw.Load8(unsafe.Pointer(from))
	for i := range 4 {
		v := int16(binary.LittleEndian.Uint16(in[2*i:]))
		binary.LittleEndian.PutUint32(r[4*i:], uint32(int32(v)))
	}
	return r
}

// I32x4LoadExtendU16x4 loads four 16-bit lanes and zero-extends each to
// 32 bits.
func I32x4LoadExtendU16x4[T unaligned.Bytes8](from *T) (r V128) {
	in := raw.Load8(unsafe.Pointer(from))
	for i := range 4 {
		binary.LittleEndian.PutUint32(r[4*i:], uint32(binary.LittleEndian.Uint16(in[2*i:])))
	}
	return r
}

// I64x2LoadExtendI32x2 loads two 32-bit lanes and sign-extends each to
// 64 bits.
func I64x2LoadExtendI32x2[T unaligned.Bytes8](from *T) (r V128) {
	in := raw.Load8(unsafe.Pointer(from))
	for i := range 2 {
		v := int32(binary.LittleEndian.Uint32(in[4*i:]))
		binary.LittleEndian.PutUint64(r[8*i:], uint64(int64(v)))
	}
	return r
}

// I64x2LoadExtendU32x2 loads two 32-bit lanes and zero-extends each to
// 64 bits.
func I64x2LoadExtendU32x2[T unaligned.Bytes8](from *T) (r V128) {
	in := raw.Load8(unsafe.Pointer(from))
	for i := range 2 {
		binary.LittleEndian.PutUint64(r[8*i:], uint64(binary.LittleEndian.Uint32(in[4*i:])))
	}
	return r
}

// U16x8LoadExtendU8x8 is I16x8LoadExtendU8x8 under its unsigned name.
func U16x8LoadExtendU8x8[T unaligned.Bytes8](from *T) V128 {
	return I16x8LoadExtendU8x8(from)
}

// U32x4LoadExtendU16x4 is I32x4LoadExtendU16x4 under its unsigned name.
func U32x4LoadExtendU16x4[T unaligned.Bytes8](from *T) V128 {
	return I32x4LoadExtendU16x4(from)
}

// U64x2LoadExtendU32x2 is I64x2LoadExtendU32x2 under its unsigned name.
func U64x2LoadExtendU32x2[T unaligned.Bytes8](from *T) V128 {
	return I64x2LoadExtendU32x2(from)
}

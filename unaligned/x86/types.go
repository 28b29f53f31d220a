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

package x86

import (
	"unsafe"

	"github.com/ajroetker/go-unaligned/unaligned"
)

// M128 is a 128-bit vector of four float32 lanes.
type M128 [16]byte

// M128d is a 128-bit vector of two float64 lanes.
type M128d [16]byte

// M128i is a 128-bit integer vector with no fixed lane type.
type M128i [16]byte

// M256 is a 256-bit vector of eight float32 lanes.
type M256 [32]byte

// M256d is a 256-bit vector of four float64 lanes.
type M256d [32]byte

// M256i is a 256-bit integer vector with no fixed lane type.
type M256i [32]byte

// M512i is a 512-bit integer vector with no fixed lane type.
type M512i [64]byte

// Float32s returns the lanes of v.
func (v M128) Float32s() [4]float32 { return *(*[4]float32)(unsafe.Pointer(&v)) }

// Float64s returns the lanes of v.
func (v M128d) Float64s() [2]float64 { return *(*[2]float64)(unsafe.Pointer(&v)) }

// Float32s returns the lanes of v.
func (v M256) Float32s() [8]float32 { return *(*[8]float32)(unsafe.Pointer(&v)) }

// Float64s returns the lanes of v.
func (v M256d) Float64s() [4]float64 { return *(*[4]float64)(unsafe.Pointer(&v)) }

// Lo returns the low 128 bits of v.
func (v M256i) Lo() M128i { return M128i(v[:16]) }

// Hi returns the high 128 bits of v.
func (v M256i) Hi() M128i { return M128i(v[16:]) }

// SetPs returns a vector with lanes l in memory order.
func SetPs(l [4]float32) M128 { return *(*M128)(unsafe.Pointer(&l)) }

// SetPd returns a vector with lanes l in memory order.
func SetPd(l [2]float64) M128d { return *(*M128d)(unsafe.Pointer(&l)) }

// Set256Ps returns a vector with lanes l in memory order.
func Set256Ps(l [8]float32) M256 { return *(*M256)(unsafe.Pointer(&l)) }

// Set256Pd returns a vector with lanes l in memory order.
func Set256Pd(l [4]float64) M256d { return *(*M256d)(unsafe.Pointer(&l)) }

// M128iFrom reinterprets any 16-byte shape as an integer vector.
func M128iFrom[T unaligned.Bits128](v T) M128i { return *(*M128i)(unsafe.Pointer(&v)) }

// M128iAs reinterprets v as any 16-byte shape.
func M128iAs[T unaligned.Bits128](v M128i) T { return *(*T)(unsafe.Pointer(&v)) }

// M256iFrom reinterprets any 32-byte shape as an integer vector.
func M256iFrom[T unaligned.Bits256](v T) M256i { return *(*M256i)(unsafe.Pointer(&v)) }

// M256iAs reinterprets v as any 32-byte shape.
func M256iAs[T unaligned.Bits256](v M256i) T { return *(*T)(unsafe.Pointer(&v)) }

// M512iFrom reinterprets any 64-byte shape as an integer vector.
func M512iFrom[T unaligned.Bits512](v T) M512i { return *(*M512i)(unsafe.Pointer(&v)) }

// M512iAs reinterprets v as any 64-byte shape.
func M512iAs[T unaligned.Bits512](v M512i) T { return *(*T)(unsafe.Pointer(&v)) }

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

	"github.com/ajroetker/go-unaligned/internal/raw"
	"github.com/ajroetker/go-unaligned/unaligned"
)

// MmLoadPd1 loads one float64 into both lanes.
func MmLoadPd1(from *float64) M128d {
	var r M128d
	raw.Splat(unsafe.Pointer(&r), 16, unsafe.Pointer(from), 8)
	return r
}

// MmLoad1Pd is an alias of MmLoadPd1.
func MmLoad1Pd(from *float64) M128d {
	return MmLoadPd1(from)
}

// MmLoadSd loads one float64 into the low lane and zeroes the high lane.
func MmLoadSd(from *float64) M128d {
	var r M128d
	raw.Store8(unsafe.Pointer(&r), raw.Load8(unsafe.Pointer(from)))
	return r
}

// MmLoadhPd replaces the high lane of a with the float64 at from.
func MmLoadhPd(a M128d, from *float64) M128d {
	raw.Store8(unsafe.Pointer(&a[8]), raw.Load8(unsafe.Pointer(from)))
	return a
}

// MmLoadlPd replaces the low lane of a with the float64 at from.
func MmLoadlPd(a M128d, from *float64) M128d {
	raw.Store8(unsafe.Pointer(&a), raw.Load8(unsafe.Pointer(from)))
	return a
}

// MmLoadlEpi64 loads the first 8 bytes of from into the low half and
// zeroes the high half.
func MmLoadlEpi64[T unaligned.Bits128](from *T) M128i {
	var r M128i
	raw.Store8(unsafe.Pointer(&r), raw.Load8(unsafe.Pointer(from)))
	return r
}

// MmLoaduPd loads two float64 values.
func MmLoaduPd(from *[2]float64) M128d {
	return M128d(raw.Load16(unsafe.Pointer(from)))
}

// MmLoaduSi128 loads 16 bytes.
func MmLoaduSi128[T unaligned.Bits128](from *T) M128i {
	return M128i(raw.Load16(unsafe.Pointer(from)))
}

// MmLoaduSi16 loads 2 bytes into the low lane and zeroes the rest.
func MmLoaduSi16[T unaligned.Bits16](from *T) M128i {
	var r M128i
	raw.Store2(unsafe.Pointer(&r), raw.Load2(unsafe.Pointer(from)))
	return r
}

// MmLoaduSi32 loads 4 bytes into the low lane and zeroes the rest.
func MmLoaduSi32[T unaligned.Bits32](from *T) M128i {
	var r M128i
	raw.Store4(unsafe.Pointer(&r), raw.Load4(unsafe.Pointer(from)))
	return r
}

// MmLoaduSi64 loads 8 bytes into the low lane and zeroes the rest.
func MmLoaduSi64[T unaligned.Bits64](from *T) M128i {
	var r M128i
	raw.Store8(unsafe.Pointer(&r), raw.Load8(unsafe.Pointer(from)))
	return r
}

// MmStoreSd stores the low lane of a.
func MmStoreSd(into *float64, a M128d) {
	raw.Store8(unsafe.Pointer(into), raw.Load8(unsafe.Pointer(&a)))
}

// MmStorehPd stores the high lane of a.
func MmStorehPd(into *float64, a M128d) {
	raw.Store8(unsafe.Pointer(into), raw.Load8(unsafe.Pointer(&a[8])))
}

// MmStorelEpi64 stores the low 8 bytes of a into the first half of into.
// The second half is left untouched.
func MmStorelEpi64[T unaligned.Bits128](into *T, a M128i) {
	raw.Store8(unsafe.Pointer(into), raw.Load8(unsafe.Pointer(&a)))
}

// MmStorelPd stores the low lane of a.
func MmStorelPd(into *float64, a M128d) {
	raw.Store8(unsafe.Pointer(into), raw.Load8(unsafe.Pointer(&a)))
}

// MmStoreuPd stores both lanes of a.
func MmStoreuPd(into *[2]float64, a M128d) {
	raw.Store16(unsafe.Pointer(into), a)
}

// MmStoreuSi128 stores all 16 bytes of a.
func MmStoreuSi128[T unaligned.Bits128](into *T, a M128i) {
	raw.Store16(unsafe.Pointer(into), a)
}

// MmStoreuSi16 stores the low 2 bytes of a.
func MmStoreuSi16[T unaligned.Bits16](into *T, a M128i) {
	raw.Store2(unsafe.Pointer(into), raw.Load2(unsafe.Pointer(&a)))
}

// MmStoreuSi32 stores the low 4 bytes of a.
func MmStoreuSi32[T unaligned.Bits32](into *T, a M128i) {
	raw.Store4(unsafe.Pointer(into), raw.Load4(unsafe.Pointer(&a)))
}

// MmStoreuSi64 stores the low 8 bytes of a.
func MmStoreuSi64[T unaligned.Bits64](into *T, a M128i) {
	raw.Store8(unsafe.Pointer(into), raw.Load8(unsafe.Pointer(&a)))
}

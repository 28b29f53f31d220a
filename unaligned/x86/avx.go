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

// Mm256BroadcastPd loads a 128-bit vector into both halves of the result.
func Mm256BroadcastPd(from *M128d) M256d {
	v := raw.Load16(unsafe.Pointer(from))
	var r M256d
	raw.Store16(unsafe.Pointer(&r), v)
	raw.Store16(unsafe.Pointer(&r[16]), v)
	return r
}

// Mm256BroadcastPs loads a 128-bit vector into both halves of the result.
func Mm256BroadcastPs(from *M128) M256 {
	v := raw.Load16(unsafe.Pointer(from))
	var r M256
	raw.Store16(unsafe.Pointer(&r), v)
	raw.Store16(unsafe.Pointer(&r[16]), v)
	return r
}

// Mm256BroadcastSd loads one float64 into all four lanes.
func Mm256BroadcastSd(from *float64) M256d {
	var r M256d
	raw.Splat(unsafe.Pointer(&r), 32, unsafe.Pointer(from), 8)
	return r
}

// MmBroadcastSs loads one float32 into all four lanes.
func MmBroadcastSs(from *float32) M128 {
	return MmLoad1Ps(from)
}

// Mm256BroadcastSs loads one float32 into all eight lanes.
func Mm256BroadcastSs(from *float32) M256 {
	var r M256
	raw.Splat(unsafe.Pointer(&r), 32, unsafe.Pointer(from), 4)
	return r
}

// Mm256LoaduPd loads four float64 values.
func Mm256LoaduPd(from *[4]float64) M256d {
	return M256d(raw.Load32(unsafe.Pointer(from)))
}

// Mm256LoaduPs loads eight float32 values.
func Mm256LoaduPs(from *[8]float32) M256 {
	return M256(raw.Load32(unsafe.Pointer(from)))
}

// Mm256LoaduSi256 loads 32 bytes.
func Mm256LoaduSi256[T unaligned.Bits256](from *T) M256i {
	return M256i(raw.Load32(unsafe.Pointer(from)))
}

func loadu2(r unsafe.Pointer, hi, lo unsafe.Pointer) {
	raw.Store16(r, raw.Load16(lo))
	raw.Store16(unsafe.Add(r, 16), raw.Load16(hi))
}

func storeu2(hi, lo unsafe.Pointer, a unsafe.Pointer) {
	raw.Store16(lo, raw.Load16(a))
	raw.Store16(hi, raw.Load16(unsafe.Add(a, 16)))
}

// Mm256Loadu2M128 loads the high half from hi and the low half from lo.
func Mm256Loadu2M128(hi, lo *[4]float32) M256 {
	var r M256
	loadu2(unsafe.Pointer(&r), unsafe.Pointer(hi), unsafe.Pointer(lo))
	return r
}

// Mm256Loadu2M128d loads the high half from hi and the low half from lo.
func Mm256Loadu2M128d(hi, lo *[2]float64) M256d {
	var r M256d
	loadu2(unsafe.Pointer(&r), unsafe.Pointer(hi), unsafe.Pointer(lo))
	return r
}

// Mm256Loadu2M128i loads the high half from hi and the low half from lo.
func Mm256Loadu2M128i[T unaligned.Bits128](hi, lo *T) M256i {
	var r M256i
	loadu2(unsafe.Pointer(&r), unsafe.Pointer(hi), unsafe.Pointer(lo))
	return r
}

// Mm256StoreuPd stores all four lanes of a.
func Mm256StoreuPd(into *[4]float64, a M256d) {
	raw.Store32(unsafe.Pointer(into), a)
}

// Mm256StoreuPs stores all eight lanes of a.
func Mm256StoreuPs(into *[8]float32, a M256) {
	raw.Store32(unsafe.Pointer(into), a)
}

// Mm256StoreuSi256 stores all 32 bytes of a.
func Mm256StoreuSi256[T unaligned.Bits256](into *T, a M256i) {
	raw.Store32(unsafe.Pointer(into), a)
}

// Mm256Storeu2M128 stores the high half of a to hi and the low half to lo.
func Mm256Storeu2M128(hi, lo *[4]float32, a M256) {
	storeu2(unsafe.Pointer(hi), unsafe.Pointer(lo), unsafe.Pointer(&a))
}

// Mm256Storeu2M128d stores the high half of a to hi and the low half to lo.
func Mm256Storeu2M128d(hi, lo *[2]float64, a M256d) {
	storeu2(unsafe.Pointer(hi), unsafe.Pointer(lo), unsafe.Pointer(&a))
}

// Mm256Storeu2M128i stores the high half of a to hi and the low half to
// lo. When hi and lo overlap the high half is written last.
func Mm256Storeu2M128i[T unaligned.Bits128](hi, lo *T, a M256i) {
	storeu2(unsafe.Pointer(hi), unsafe.Pointer(lo), unsafe.Pointer(&a))
}

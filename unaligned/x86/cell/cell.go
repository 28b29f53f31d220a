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

// Package cell provides the x86 integer loads and stores over cell forms,
// so that overlapping windows of one buffer can be read and written
// through shared references.
//
//	a := []uint16{0, 1, 2, 3, 4, 5, 6, 7, 8}
//	cells := unaligned.CellsOf(a)
//	load := (*[8]unaligned.Cell[uint16])(cells[:8])
//	store := (*[8]unaligned.Cell[uint16])(cells[1:])
//	cell.MmStoreuSi128(store, cell.MmLoaduSi128(load))
//	// a is now [0 0 1 2 3 4 5 6 7]
//
// Each call reads or writes its full width in one move, so a store
// through one window is observed whole by every later load through any
// other window that covers the same bytes.
package cell

import (
	"unsafe"

	"github.com/ajroetker/go-unaligned/internal/raw"
	"github.com/ajroetker/go-unaligned/unaligned"
	"github.com/ajroetker/go-unaligned/unaligned/x86"
)

// MmLoadlEpi64 loads the first 8 bytes of from into the low half and
// zeroes the high half.
func MmLoadlEpi64[T unaligned.Cell128](from *T) x86.M128i {
	var r x86.M128i
	raw.Store8(unsafe.Pointer(&r), raw.Load8(unsafe.Pointer(from)))
	return r
}

// MmLoaduSi128 loads 16 bytes.
func MmLoaduSi128[T unaligned.Cell128](from *T) x86.M128i {
	return x86.M128i(raw.Load16(unsafe.Pointer(from)))
}

// MmStorelEpi64 stores the low 8 bytes of a into the first half of into.
func MmStorelEpi64[T unaligned.Cell128](into *T, a x86.M128i) {
	raw.Store8(unsafe.Pointer(into), raw.Load8(unsafe.Pointer(&a)))
}

// MmStoreuSi128 stores all 16 bytes of a.
func MmStoreuSi128[T unaligned.Cell128](into *T, a x86.M128i) {
	raw.Store16(unsafe.Pointer(into), a)
}

// Mm256LoaduSi256 loads 32 bytes.
func Mm256LoaduSi256[T unaligned.Cell256](from *T) x86.M256i {
	return x86.M256i(raw.Load32(unsafe.Pointer(from)))
}

// Mm256StoreuSi256 stores all 32 bytes of a.
func Mm256StoreuSi256[T unaligned.Cell256](into *T, a x86.M256i) {
	raw.Store32(unsafe.Pointer(into), a)
}

// Mm256Loadu2M128i loads the high half from hi and the low half from lo.
// Both halves are read before anything is returned, so hi and lo may
// overlap.
func Mm256Loadu2M128i[T unaligned.Cell128](hi, lo *T) x86.M256i {
	var r x86.M256i
	raw.Store16(unsafe.Pointer(&r), raw.Load16(unsafe.Pointer(lo)))
	raw.Store16(unsafe.Pointer(&r[16]), raw.Load16(unsafe.Pointer(hi)))
	return r
}

// Mm256Storeu2M128i stores the low half of a to lo, then the high half to
// hi. Where the two windows overlap the high half wins.
func Mm256Storeu2M128i[T unaligned.Cell128](hi, lo *T, a x86.M256i) {
	raw.Store16(unsafe.Pointer(lo), raw.Load16(unsafe.Pointer(&a)))
	raw.Store16(unsafe.Pointer(hi), raw.Load16(unsafe.Pointer(&a[16])))
}

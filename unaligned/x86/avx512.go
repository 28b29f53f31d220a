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

// The AVX-512BW element-typed loads and stores move the same bytes as
// their untyped counterparts; the element size only matters to the
// masked forms.

// MmLoaduEpi8 loads sixteen 8-bit lanes.
func MmLoaduEpi8[T unaligned.Bits128](from *T) M128i {
	return M128i(raw.Load16(unsafe.Pointer(from)))
}

// MmLoaduEpi16 loads eight 16-bit lanes.
func MmLoaduEpi16[T unaligned.Bits128](from *T) M128i {
	return M128i(raw.Load16(unsafe.Pointer(from)))
}

// Mm256LoaduEpi8 loads thirty-two 8-bit lanes.
func Mm256LoaduEpi8[T unaligned.Bits256](from *T) M256i {
	return M256i(raw.Load32(unsafe.Pointer(from)))
}

// Mm256LoaduEpi16 loads sixteen 16-bit lanes.
func Mm256LoaduEpi16[T unaligned.Bits256](from *T) M256i {
	return M256i(raw.Load32(unsafe.Pointer(from)))
}

// Mm512LoaduEpi8 loads sixty-four 8-bit lanes.
func Mm512LoaduEpi8[T unaligned.Bits512](from *T) M512i {
	return M512i(raw.Load64(unsafe.Pointer(from)))
}

// Mm512LoaduEpi16 loads thirty-two 16-bit lanes.
func Mm512LoaduEpi16[T unaligned.Bits512](from *T) M512i {
	return M512i(raw.Load64(unsafe.Pointer(from)))
}

// Mm512LoaduSi512 loads 64 bytes.
func Mm512LoaduSi512[T unaligned.Bits512](from *T) M512i {
	return M512i(raw.Load64(unsafe.Pointer(from)))
}

// MmStoreuEpi8 stores sixteen 8-bit lanes.
func MmStoreuEpi8[T unaligned.Bits128](into *T, a M128i) {
	raw.Store16(unsafe.Pointer(into), a)
}

// MmStoreuEpi16 stores eight 16-bit lanes.
func MmStoreuEpi16[T unaligned.Bits128](into *T, a M128i) {
	raw.Store16(unsafe.Pointer(into), a)
}

// Mm256StoreuEpi8 stores thirty-two 8-bit lanes.
func Mm256StoreuEpi8[T unaligned.Bits256](into *T, a M256i) {
	raw.Store32(unsafe.Pointer(into), a)
}

// Mm256StoreuEpi16 stores sixteen 16-bit lanes.
func Mm256StoreuEpi16[T unaligned.Bits256](into *T, a M256i) {
	raw.Store32(unsafe.Pointer(into), a)
}

// Mm512StoreuEpi8 stores sixty-four 8-bit lanes.
func Mm512StoreuEpi8[T unaligned.Bits512](into *T, a M512i) {
	raw.Store64(unsafe.Pointer(into), a)
}

// Mm512StoreuEpi16 stores thirty-two 16-bit lanes.
func Mm512StoreuEpi16[T unaligned.Bits512](into *T, a M512i) {
	raw.Store64(unsafe.Pointer(into), a)
}

// Mm512StoreuSi512 stores all 64 bytes of a.
func Mm512StoreuSi512[T unaligned.Bits512](into *T, a M512i) {
	raw.Store64(unsafe.Pointer(into), a)
}

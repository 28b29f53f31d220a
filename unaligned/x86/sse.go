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
)

// MmLoad1Ps loads one float32 into all four lanes.
func MmLoad1Ps(from *float32) M128 {
	var r M128
	raw.Splat(unsafe.Pointer(&r), 16, unsafe.Pointer(from), 4)
	return r
}

// MmLoadPs1 is an alias of MmLoad1Ps.
func MmLoadPs1(from *float32) M128 {
	return MmLoad1Ps(from)
}

// MmLoadSs loads one float32 into the low lane and zeroes the rest.
func MmLoadSs(from *float32) M128 {
	var r M128
	raw.Store4(unsafe.Pointer(&r), raw.Load4(unsafe.Pointer(from)))
	return r
}

// MmLoaduPs loads four float32 values.
func MmLoaduPs(from *[4]float32) M128 {
	return M128(raw.Load16(unsafe.Pointer(from)))
}

// MmStoreSs stores the low lane of a.
func MmStoreSs(into *float32, a M128) {
	raw.Store4(unsafe.Pointer(into), raw.Load4(unsafe.Pointer(&a)))
}

// MmStoreuPs stores all four lanes of a.
func MmStoreuPs(into *[4]float32, a M128) {
	raw.Store16(unsafe.Pointer(into), a)
}

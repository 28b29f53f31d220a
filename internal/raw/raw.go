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

// Package raw holds the address-based memory moves that the wrapper
// packages forward to. Every function here trusts its caller: the pointer
// must be valid for the full width being moved. The wrapper packages
// establish that through their type constraints before calling in.
//
// Moves of 16, 32 and 64 bytes go through simd/archsimd vector registers
// when the module is built with GOEXPERIMENT=simd on amd64 and the CPU
// reports the needed feature. Everything else is a whole-value copy.
package raw

import (
	"os"
	"strconv"
	"unsafe"
)

// Path names the implementation serving the wide moves.
type Path int

const (
	// PathPortable copies through ordinary Go array assignment.
	PathPortable Path = iota

	// PathAVX moves 16 bytes through XMM registers.
	PathAVX

	// PathAVX2 additionally moves 32 bytes through YMM registers.
	PathAVX2

	// PathAVX512 additionally moves 64 bytes through ZMM registers.
	PathAVX512
)

// String returns a human-readable name for the path.
func (p Path) String() string {
	switch p {
	case PathPortable:
		return "portable"
	case PathAVX:
		return "archsimd-avx"
	case PathAVX2:
		return "archsimd-avx2"
	case PathAVX512:
		return "archsimd-avx512"
	default:
		return "unknown"
	}
}

// currentPath is set by init() in move_*.go files.
var currentPath Path

// CurrentPath returns the path selected for this process.
func CurrentPath() Path {
	return currentPath
}

// NoSimdEnv checks if the UNALIGNED_NO_SIMD environment variable is set.
// When set, the wide moves use the portable copy regardless of CPU
// capabilities. This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("UNALIGNED_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// Load1 reads one byte at p.
func Load1(p unsafe.Pointer) [1]byte {
	return *(*[1]byte)(p)
}

// Load2 reads two bytes at p.
func Load2(p unsafe.Pointer) [2]byte {
	return *(*[2]byte)(p)
}

// Load4 reads four bytes at p.
func Load4(p unsafe.Pointer) [4]byte {
	return *(*[4]byte)(p)
}

// Load8 reads eight bytes at p.
func Load8(p unsafe.Pointer) [8]byte {
	return *(*[8]byte)(p)
}

// Store1 writes one byte at p.
func Store1(p unsafe.Pointer, v [1]byte) {
	*(*[1]byte)(p) = v
}

// Store2 writes two bytes at p.
func Store2(p unsafe.Pointer, v [2]byte) {
	*(*[2]byte)(p) = v
}

// Store4 writes four bytes at p.
func Store4(p unsafe.Pointer, v [4]byte) {
	*(*[4]byte)(p) = v
}

// Store8 writes eight bytes at p.
func Store8(p unsafe.Pointer, v [8]byte) {
	*(*[8]byte)(p) = v
}

// Load16 reads sixteen bytes at p.
func Load16(p unsafe.Pointer) [16]byte {
	return load16(p)
}

// Load32 reads thirty-two bytes at p.
func Load32(p unsafe.Pointer) [32]byte {
	return load32(p)
}

// Load64 reads sixty-four bytes at p.
func Load64(p unsafe.Pointer) [64]byte {
	return load64(p)
}

// Store16 writes sixteen bytes at p.
func Store16(p unsafe.Pointer, v [16]byte) {
	store16(p, v)
}

// Store32 writes thirty-two bytes at p.
func Store32(p unsafe.Pointer, v [32]byte) {
	store32(p, v)
}

// Store64 writes sixty-four bytes at p.
func Store64(p unsafe.Pointer, v [64]byte) {
	store64(p, v)
}

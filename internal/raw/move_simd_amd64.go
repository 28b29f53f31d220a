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

//go:build amd64 && goexperiment.simd

package raw

import (
	"simd/archsimd"
	"unsafe"
)

var (
	useXMM bool
	useYMM bool
	useZMM bool
)

func init() {
	if NoSimdEnv() {
		currentPath = PathPortable
		return
	}
	useXMM = archsimd.X86.AVX()
	useYMM = archsimd.X86.AVX2()
	useZMM = archsimd.X86.AVX512()
	switch {
	case useZMM:
		currentPath = PathAVX512
	case useYMM:
		currentPath = PathAVX2
	case useXMM:
		currentPath = PathAVX
	default:
		currentPath = PathPortable
	}
}

func load16(p unsafe.Pointer) (out [16]byte) {
	if !useXMM {
		return *(*[16]byte)(p)
	}
	archsimd.LoadUint8x16((*[16]uint8)(p)).Store(&out)
	return out
}

func load32(p unsafe.Pointer) (out [32]byte) {
	if !useYMM {
		return *(*[32]byte)(p)
	}
	archsimd.LoadUint8x32((*[32]uint8)(p)).Store(&out)
	return out
}

func load64(p unsafe.Pointer) (out [64]byte) {
	if !useZMM {
		return *(*[64]byte)(p)
	}
	archsimd.LoadUint8x64((*[64]uint8)(p)).Store(&out)
	return out
}

func store16(p unsafe.Pointer, v [16]byte) {
	if !useXMM {
		*(*[16]byte)(p) = v
		return
	}
	archsimd.LoadUint8x16(&v).Store((*[16]uint8)(p))
}

func store32(p unsafe.Pointer, v [32]byte) {
	if !useYMM {
		*(*[32]byte)(p) = v
		return
	}
	archsimd.LoadUint8x32(&v).Store((*[32]uint8)(p))
}

func store64(p unsafe.Pointer, v [64]byte) {
	if !useZMM {
		*(*[64]byte)(p) = v
		return
	}
	archsimd.LoadUint8x64(&v).Store((*[64]uint8)(p))
}

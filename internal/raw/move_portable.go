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

//go:build !amd64 || !goexperiment.simd

package raw

import "unsafe"

func init() {
	currentPath = PathPortable
}

func load16(p unsafe.Pointer) [16]byte { return *(*[16]byte)(p) }
func load32(p unsafe.Pointer) [32]byte { return *(*[32]byte)(p) }
func load64(p unsafe.Pointer) [64]byte { return *(*[64]byte)(p) }

func store16(p unsafe.Pointer, v [16]byte) { *(*[16]byte)(p) = v }
func store32(p unsafe.Pointer, v [32]byte) { *(*[32]byte)(p) = v }
func store64(p unsafe.Pointer, v [64]byte) { *(*[64]byte)(p) = v }

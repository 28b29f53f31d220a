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

// Package aarch64 wraps the NEON structure load and store intrinsics with
// signatures that take exactly the memory each instruction touches.
//
// NEON registers are typed by lane, so unlike the x86 wrappers these are
// not generic: Vld1qU8 takes a *[16]uint8 and returns a Uint8x16, and
// Vld1qU8X2 takes a *[2][16]uint8. The de-interleaving loads Vld2q, Vld3q
// and Vld4q take the flat array of structures; element i of each
// structure lands in register i. The Dup loads read a single structure
// and replicate element i across every lane of register i.
//
// Register types are byte arrays. Lanes and the FromLanes constructors
// convert to and from the element view.
//
// The z_*.go files are generated from the operation catalogue.
package aarch64

//go:generate go run ../../cmd/wrapgen --out .

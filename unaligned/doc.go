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

// Package unaligned classifies memory shapes by exact byte width so that
// vector load and store wrappers can accept any arrangement of the right
// size, and nothing else.
//
// A wrapper that moves 16 bytes is declared over the Bits128 constraint:
//
//	func MmLoaduSi128[T unaligned.Bits128](from *T) M128i
//
// and so accepts *[16]uint8, *[8]int16, *[4]float32, *[2]uint64 and any
// named type built on them. A *[3]uint32 or *[16]bool does not satisfy the
// constraint and the call fails to compile.
//
// The Cell type wraps a value so that it can be reached through several
// overlapping views at once. Cells only ever copy whole values in and out,
// which makes a wide store through one window visible through every other
// window that covers the same bytes. The CellN constraints admit cell
// forms of every BitsN shape.
//
// The package also reports which vector features the running CPU has, and
// which move path the wrappers resolved to at startup.
package unaligned

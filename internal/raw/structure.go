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

package raw

import "unsafe"

// maxStructBytes bounds every structure move: four 16-byte registers.
const maxStructBytes = 64

// CopyBlocks copies n consecutive blocks of size bytes from src to dst,
// one block-sized move at a time. size must be 8 or 16.
func CopyBlocks(dst, src unsafe.Pointer, n, size int) {
	for i := range n {
		off := uintptr(i * size)
		switch size {
		case 8:
			Store8(unsafe.Add(dst, off), Load8(unsafe.Add(src, off)))
		case 16:
			Store16(unsafe.Add(dst, off), Load16(unsafe.Add(src, off)))
		default:
			panic("raw: unsupported block size")
		}
	}
}

// Deinterleave reads regs*regBytes bytes at src holding interleaved
// structures of regs elements each, and writes them to dst so that
// register r holds element r of every structure.
func Deinterleave(dst, src unsafe.Pointer, regs, regBytes, elem int) {
	total := regs * regBytes
	var tmp [maxStructBytes]byte
	copy(tmp[:total], unsafe.Slice((*byte)(src), total))
	out := unsafe.Slice((*byte)(dst), total)
	for i := range total / elem {
		r, lane := i%regs, i/regs
		copy(out[r*regBytes+lane*elem:][:elem], tmp[i*elem:][:elem])
	}
}

// Interleave is the inverse of Deinterleave: register r of src supplies
// element r of each structure written to dst.
func Interleave(dst, src unsafe.Pointer, regs, regBytes, elem int) {
	total := regs * regBytes
	var tmp [maxStructBytes]byte
	copy(tmp[:total], unsafe.Slice((*byte)(src), total))
	out := unsafe.Slice((*byte)(dst), total)
	for i := range total / elem {
		r, lane := i%regs, i/regs
		copy(out[i*elem:][:elem], tmp[r*regBytes+lane*elem:][:elem])
	}
}

// Replicate reads one structure of regs elements at src and broadcasts
// element r to every lane of register r in dst.
func Replicate(dst, src unsafe.Pointer, regs, regBytes, elem int) {
	var in [maxStructBytes / 2]byte
	copy(in[:regs*elem], unsafe.Slice((*byte)(src), regs*elem))
	out := unsafe.Slice((*byte)(dst), regs*regBytes)
	for r := range regs {
		for lane := range regBytes / elem {
			copy(out[r*regBytes+lane*elem:][:elem], in[r*elem:][:elem])
		}
	}
}

// Splat reads one elem-byte value at src and fills all dstBytes of dst
// with copies of it.
func Splat(dst unsafe.Pointer, dstBytes int, src unsafe.Pointer, elem int) {
	Replicate(dst, src, 1, dstBytes, elem)
}

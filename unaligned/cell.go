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

package unaligned

import "unsafe"

// Cell is a mutable memory location that may be reached through any
// number of shared views. It never exposes a pointer to its contents:
// values are copied in and out whole, so a cell can sit under several
// overlapping windows without any view observing a torn or stale value
// produced by another view's write.
//
// Cell[T] has the same size and layout as T.
//
// Cells are not safe for concurrent use.
type Cell[T any] struct {
	v T
}

// NewCell returns a cell holding v.
func NewCell[T any](v T) Cell[T] {
	return Cell[T]{v: v}
}

// Get returns a copy of the stored value.
func (c *Cell[T]) Get() T {
	return c.v
}

// Set stores v.
func (c *Cell[T]) Set(v T) {
	c.v = v
}

// Replace stores v and returns the previous value.
func (c *Cell[T]) Replace(v T) T {
	old := c.v
	c.v = v
	return old
}

// Swap exchanges the values of two cells. Swapping a cell with itself is
// a no-op.
func (c *Cell[T]) Swap(other *Cell[T]) {
	if c == other {
		return
	}
	c.v, other.v = other.v, c.v
}

// Update applies f to the stored value and stores the result.
func (c *Cell[T]) Update(f func(T) T) T {
	c.v = f(c.v)
	return c.v
}

// FromPtr views the value at p as a cell. The caller gives up direct use
// of p for as long as the cell view is live.
func FromPtr[T any](p *T) *Cell[T] {
	return (*Cell[T])(unsafe.Pointer(p))
}

// CellsOf views s as a slice of cells sharing its backing array. Windows
// of a fixed length are taken with a slice-to-array-pointer conversion:
//
//	cells := unaligned.CellsOf(buf)
//	w := (*[4]unaligned.Cell[uint32])(cells[1:5])
func CellsOf[T any](s []T) []Cell[T] {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*Cell[T])(unsafe.Pointer(&s[0])), len(s))
}

// Values copies the contents of cells into a new slice.
func Values[T any](cells []Cell[T]) []T {
	out := make([]T, len(cells))
	for i := range cells {
		out[i] = cells[i].v
	}
	return out
}

// Cell8 is satisfied by every cell form of a 1-byte shape.
type Cell8 interface {
	Cell[uint8] | Cell[int8] | Cell[[1]uint8] | Cell[[1]int8] |
		[1]Cell[uint8] | [1]Cell[int8]
}

// Cell16 is satisfied by every cell form of a 2-byte shape.
type Cell16 interface {
	Cell[[2]uint8] | Cell[[2]int8] |
		Cell[[1]uint16] | Cell[[1]int16] |
		Cell[uint16] | Cell[int16] |
		[2]Cell[uint8] | [2]Cell[int8] |
		[1]Cell[uint16] | [1]Cell[int16]
}

// Cell32 is satisfied by every cell form of a 4-byte shape.
type Cell32 interface {
	Cell[[4]uint8] | Cell[[4]int8] |
		Cell[[2]uint16] | Cell[[2]int16] |
		Cell[[1]uint32] | Cell[[1]int32] | Cell[[1]float32] |
		Cell[uint32] | Cell[int32] | Cell[float32] |
		[4]Cell[uint8] | [4]Cell[int8] |
		[2]Cell[uint16] | [2]Cell[int16] |
		[1]Cell[uint32] | [1]Cell[int32] | [1]Cell[float32]
}

// Cell64 is satisfied by every cell form of an 8-byte shape.
type Cell64 interface {
	Cell[[8]uint8] | Cell[[8]int8] |
		Cell[[4]uint16] | Cell[[4]int16] |
		Cell[[2]uint32] | Cell[[2]int32] | Cell[[2]float32] |
		Cell[[1]uint64] | Cell[[1]int64] | Cell[[1]float64] |
		Cell[uint64] | Cell[int64] | Cell[float64] |
		[8]Cell[uint8] | [8]Cell[int8] |
		[4]Cell[uint16] | [4]Cell[int16] |
		[2]Cell[uint32] | [2]Cell[int32] | [2]Cell[float32] |
		[1]Cell[uint64] | [1]Cell[int64] | [1]Cell[float64]
}

// Cell128 is satisfied by every cell form of a 16-byte shape.
type Cell128 interface {
	Cell[[16]uint8] | Cell[[16]int8] |
		Cell[[8]uint16] | Cell[[8]int16] |
		Cell[[4]uint32] | Cell[[4]int32] | Cell[[4]float32] |
		Cell[[2]uint64] | Cell[[2]int64] | Cell[[2]float64] |
		[16]Cell[uint8] | [16]Cell[int8] |
		[8]Cell[uint16] | [8]Cell[int16] |
		[4]Cell[uint32] | [4]Cell[int32] | [4]Cell[float32] |
		[2]Cell[uint64] | [2]Cell[int64] | [2]Cell[float64]
}

// Cell256 is satisfied by every cell form of a 32-byte shape.
type Cell256 interface {
	Cell[[32]uint8] | Cell[[32]int8] |
		Cell[[16]uint16] | Cell[[16]int16] |
		Cell[[8]uint32] | Cell[[8]int32] | Cell[[8]float32] |
		Cell[[4]uint64] | Cell[[4]int64] | Cell[[4]float64] |
		[32]Cell[uint8] | [32]Cell[int8] |
		[16]Cell[uint16] | [16]Cell[int16] |
		[8]Cell[uint32] | [8]Cell[int32] | [8]Cell[float32] |
		[4]Cell[uint64] | [4]Cell[int64] | [4]Cell[float64]
}

// Cell512 is satisfied by every cell form of a 64-byte shape.
type Cell512 interface {
	Cell[[64]uint8] | Cell[[64]int8] |
		Cell[[32]uint16] | Cell[[32]int16] |
		Cell[[16]uint32] | Cell[[16]int32] | Cell[[16]float32] |
		Cell[[8]uint64] | Cell[[8]int64] | Cell[[8]float64] |
		[64]Cell[uint8] | [64]Cell[int8] |
		[32]Cell[uint16] | [32]Cell[int16] |
		[16]Cell[uint32] | [16]Cell[int32] | [16]Cell[float32] |
		[8]Cell[uint64] | [8]Cell[int64] | [8]Cell[float64]
}

// Bytes1 through Bytes64 admit both the exclusive and the cell form of
// a width class. They are named by byte count.
type (
	Bytes1  interface{ Bits8 | Cell8 }
	Bytes2  interface{ Bits16 | Cell16 }
	Bytes4  interface{ Bits32 | Cell32 }
	Bytes8  interface{ Bits64 | Cell64 }
	Bytes16 interface{ Bits128 | Cell128 }
	Bytes32 interface{ Bits256 | Cell256 }
	Bytes64 interface{ Bits512 | Cell512 }
)

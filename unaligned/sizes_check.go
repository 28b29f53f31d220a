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

// Each line fails to compile if the shape on it is not exactly the width
// of its class, in either direction. Cell forms must keep the layout of
// the value they wrap.
var (
	// 8 bits
	_ = [1]struct{}{}[unsafe.Sizeof([1]uint8{})-1]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[[1]uint8]{})-1]
	_ = [1]struct{}{}[unsafe.Sizeof([1]Cell[uint8]{})-1]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[uint8]{})-1]
	_ = [1]struct{}{}[unsafe.Sizeof([1]int8{})-1]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[[1]int8]{})-1]
	_ = [1]struct{}{}[unsafe.Sizeof([1]Cell[int8]{})-1]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[int8]{})-1]
	// 16 bits
	_ = [1]struct{}{}[unsafe.Sizeof([2]uint8{})-2]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[[2]uint8]{})-2]
	_ = [1]struct{}{}[unsafe.Sizeof([2]Cell[uint8]{})-2]
	_ = [1]struct{}{}[unsafe.Sizeof([2]int8{})-2]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[[2]int8]{})-2]
	_ = [1]struct{}{}[unsafe.Sizeof([2]Cell[int8]{})-2]
	_ = [1]struct{}{}[unsafe.Sizeof([1]uint16{})-2]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[[1]uint16]{})-2]
	_ = [1]struct{}{}[unsafe.Sizeof([1]Cell[uint16]{})-2]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[uint16]{})-2]
	_ = [1]struct{}{}[unsafe.Sizeof([1]int16{})-2]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[[1]int16]{})-2]
	_ = [1]struct{}{}[unsafe.Sizeof([1]Cell[int16]{})-2]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[int16]{})-2]
	// 32 bits
	_ = [1]struct{}{}[unsafe.Sizeof([4]uint8{})-4]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[[4]uint8]{})-4]
	_ = [1]struct{}{}[unsafe.Sizeof([4]Cell[uint8]{})-4]
	_ = [1]struct{}{}[unsafe.Sizeof([4]int8{})-4]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[[4]int8]{})-4]
	_ = [1]struct{}{}[unsafe.Sizeof([4]Cell[int8]{})-4]
	_ = [1]struct{}{}[unsafe.Sizeof([2]uint16{})-4]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[[2]uint16]{})-4]
	_ = [1]struct{}{}[unsafe.Sizeof([2]Cell[uint16]{})-4]
	_ = [1]struct{}{}[unsafe.Sizeof([2]int16{})-4]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[[2]int16]{})-4]
	_ = [1]struct{}{}[unsafe.Sizeof([2]Cell[int16]{})-4]
	_ = [1]struct{}{}[unsafe.Sizeof([1]uint32{})-4]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[[1]uint32]{})-4]
	_ = [1]struct{}{}[unsafe.Sizeof([1]Cell[uint32]{})-4]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[uint32]{})-4]
	_ = [1]struct{}{}[unsafe.Sizeof([1]int32{})-4]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[[1]int32]{})-4]
	_ = [1]struct{}{}[unsafe.Sizeof([1]Cell[int32]{})-4]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[int32]{})-4]
	_ = [1]struct{}{}[unsafe.Sizeof([1]float32{})-4]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[[1]float32]{})-4]
	_ = [1]struct{}{}[unsafe.Sizeof([1]Cell[float32]{})-4]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[float32]{})-4]
	// 64 bits
	_ = [1]struct{}{}[unsafe.Sizeof([8]uint8{})-8]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[[8]uint8]{})-8]
	_ = [1]struct{}{}[unsafe.Sizeof([8]Cell[uint8]{})-8]
	_ = [1]struct{}{}[unsafe.Sizeof([8]int8{})-8]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[[8]int8]{})-8]
	_ = [1]struct{}{}[unsafe.Sizeof([8]Cell[int8]{})-8]
	_ = [1]struct{}{}[unsafe.Sizeof([4]uint16{})-8]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[[4]uint16]{})-8]
	_ = [1]struct{}{}[unsafe.Sizeof([4]Cell[uint16]{})-8]
	_ = [1]struct{}{}[unsafe.Sizeof([4]int16{})-8]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[[4]int16]{})-8]
	_ = [1]struct{}{}[unsafe.Sizeof([4]Cell[int16]{})-8]
	_ = [1]struct{}{}[unsafe.Sizeof([2]uint32{})-8]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[[2]uint32]{})-8]
	_ = [1]struct{}{}[unsafe.Sizeof([2]Cell[uint32]{})-8]
	_ = [1]struct{}{}[unsafe.Sizeof([2]int32{})-8]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[[2]int32]{})-8]
	_ = [1]struct{}{}[unsafe.Sizeof([2]Cell[int32]{})-8]
	_ = [1]struct{}{}[unsafe.Sizeof([2]float32{})-8]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[[2]float32]{})-8]
	_ = [1]struct{}{}[unsafe.Sizeof([2]Cell[float32]{})-8]
	_ = [1]struct{}{}[unsafe.Sizeof([1]uint64{})-8]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[[1]uint64]{})-8]
	_ = [1]struct{}{}[unsafe.Sizeof([1]Cell[uint64]{})-8]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[uint64]{})-8]
	_ = [1]struct{}{}[unsafe.Sizeof([1]int64{})-8]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[[1]int64]{})-8]
	_ = [1]struct{}{}[unsafe.Sizeof([1]Cell[int64]{})-8]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[int64]{})-8]
	_ = [1]struct{}{}[unsafe.Sizeof([1]float64{})-8]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[[1]float64]{})-8]
	_ = [1]struct{}{}[unsafe.Sizeof([1]Cell[float64]{})-8]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[float64]{})-8]
	// 128 bits
	_ = [1]struct{}{}[unsafe.Sizeof([16]uint8{})-16]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[[16]uint8]{})-16]
	_ = [1]struct{}{}[unsafe.Sizeof([16]Cell[uint8]{})-16]
	_ = [1]struct{}{}[unsafe.Sizeof([16]int8{})-16]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[[16]int8]{})-16]
	_ = [1]struct{}{}[unsafe.Sizeof([16]Cell[int8]{})-16]
	_ = [1]struct{}{}[unsafe.Sizeof([8]uint16{})-16]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[[8]uint16]{})-16]
	_ = [1]struct{}{}[unsafe.Sizeof([8]Cell[uint16]{})-16]
	_ = [1]struct{}{}[unsafe.Sizeof([8]int16{})-16]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[[8]int16]{})-16]
	_ = [1]struct{}{}[unsafe.Sizeof([8]Cell[int16]{})-16]
	_ = [1]struct{}{}[unsafe.Sizeof([4]uint32{})-16]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[[4]uint32]{})-16]
	_ = [1]struct{}{}[unsafe.Sizeof([4]Cell[uint32]{})-16]
	_ = [1]struct{}{}[unsafe.Sizeof([4]int32{})-16]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[[4]int32]{})-16]
	_ = [1]struct{}{}[unsafe.Sizeof([4]Cell[int32]{})-16]
	_ = [1]struct{}{}[unsafe.Sizeof([4]float32{})-16]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[[4]float32]{})-16]
	_ = [1]struct{}{}[unsafe.Sizeof([4]Cell[float32]{})-16]
	_ = [1]struct{}{}[unsafe.Sizeof([2]uint64{})-16]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[[2]uint64]{})-16]
	_ = [1]struct{}{}[unsafe.Sizeof([2]Cell[uint64]{})-16]
	_ = [1]struct{}{}[unsafe.Sizeof([2]int64{})-16]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[[2]int64]{})-16]
	_ = [1]struct{}{}[unsafe.Sizeof([2]Cell[int64]{})-16]
	_ = [1]struct{}{}[unsafe.Sizeof([2]float64{})-16]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[[2]float64]{})-16]
	_ = [1]struct{}{}[unsafe.Sizeof([2]Cell[float64]{})-16]
	// 256 bits
	_ = [1]struct{}{}[unsafe.Sizeof([32]uint8{})-32]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[[32]uint8]{})-32]
	_ = [1]struct{}{}[unsafe.Sizeof([32]Cell[uint8]{})-32]
	_ = [1]struct{}{}[unsafe.Sizeof([32]int8{})-32]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[[32]int8]{})-32]
	_ = [1]struct{}{}[unsafe.Sizeof([32]Cell[int8]{})-32]
	_ = [1]struct{}{}[unsafe.Sizeof([16]uint16{})-32]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[[16]uint16]{})-32]
	_ = [1]struct{}{}[unsafe.Sizeof([16]Cell[uint16]{})-32]
	_ = [1]struct{}{}[unsafe.Sizeof([16]int16{})-32]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[[16]int16]{})-32]
	_ = [1]struct{}{}[unsafe.Sizeof([16]Cell[int16]{})-32]
	_ = [1]struct{}{}[unsafe.Sizeof([8]uint32{})-32]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[[8]uint32]{})-32]
	_ = [1]struct{}{}[unsafe.Sizeof([8]Cell[uint32]{})-32]
	_ = [1]struct{}{}[unsafe.Sizeof([8]int32{})-32]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[[8]int32]{})-32]
	_ = [1]struct{}{}[unsafe.Sizeof([8]Cell[int32]{})-32]
	_ = [1]struct{}{}[unsafe.Sizeof([8]float32{})-32]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[[8]float32]{})-32]
	_ = [1]struct{}{}[unsafe.Sizeof([8]Cell[float32]{})-32]
	_ = [1]struct{}{}[unsafe.Sizeof([4]uint64{})-32]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[[4]uint64]{})-32]
	_ = [1]struct{}{}[unsafe.Sizeof([4]Cell[uint64]{})-32]
	_ = [1]struct{}{}[unsafe.Sizeof([4]int64{})-32]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[[4]int64]{})-32]
	_ = [1]struct{}{}[unsafe.Sizeof([4]Cell[int64]{})-32]
	_ = [1]struct{}{}[unsafe.Sizeof([4]float64{})-32]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[[4]float64]{})-32]
	_ = [1]struct{}{}[unsafe.Sizeof([4]Cell[float64]{})-32]
	// 512 bits
	_ = [1]struct{}{}[unsafe.Sizeof([64]uint8{})-64]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[[64]uint8]{})-64]
	_ = [1]struct{}{}[unsafe.Sizeof([64]Cell[uint8]{})-64]
	_ = [1]struct{}{}[unsafe.Sizeof([64]int8{})-64]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[[64]int8]{})-64]
	_ = [1]struct{}{}[unsafe.Sizeof([64]Cell[int8]{})-64]
	_ = [1]struct{}{}[unsafe.Sizeof([32]uint16{})-64]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[[32]uint16]{})-64]
	_ = [1]struct{}{}[unsafe.Sizeof([32]Cell[uint16]{})-64]
	_ = [1]struct{}{}[unsafe.Sizeof([32]int16{})-64]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[[32]int16]{})-64]
	_ = [1]struct{}{}[unsafe.Sizeof([32]Cell[int16]{})-64]
	_ = [1]struct{}{}[unsafe.Sizeof([16]uint32{})-64]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[[16]uint32]{})-64]
	_ = [1]struct{}{}[unsafe.Sizeof([16]Cell[uint32]{})-64]
	_ = [1]struct{}{}[unsafe.Sizeof([16]int32{})-64]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[[16]int32]{})-64]
	_ = [1]struct{}{}[unsafe.Sizeof([16]Cell[int32]{})-64]
	_ = [1]struct{}{}[unsafe.Sizeof([16]float32{})-64]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[[16]float32]{})-64]
	_ = [1]struct{}{}[unsafe.Sizeof([16]Cell[float32]{})-64]
	_ = [1]struct{}{}[unsafe.Sizeof([8]uint64{})-64]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[[8]uint64]{})-64]
	_ = [1]struct{}{}[unsafe.Sizeof([8]Cell[uint64]{})-64]
	_ = [1]struct{}{}[unsafe.Sizeof([8]int64{})-64]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[[8]int64]{})-64]
	_ = [1]struct{}{}[unsafe.Sizeof([8]Cell[int64]{})-64]
	_ = [1]struct{}{}[unsafe.Sizeof([8]float64{})-64]
	_ = [1]struct{}{}[unsafe.Sizeof(Cell[[8]float64]{})-64]
	_ = [1]struct{}{}[unsafe.Sizeof([8]Cell[float64]{})-64]
)

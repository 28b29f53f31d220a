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

import (
	"reflect"
	"strconv"
)

// Width is the byte width class of a memory shape, measured in bits.
type Width int

const (
	Width8   Width = 8
	Width16  Width = 16
	Width32  Width = 32
	Width64  Width = 64
	Width128 Width = 128
	Width256 Width = 256
	Width512 Width = 512
)

// Widths lists every class in increasing order.
var Widths = []Width{Width8, Width16, Width32, Width64, Width128, Width256, Width512}

// Bytes returns the number of bytes a shape of this class occupies.
func (w Width) Bytes() int {
	return int(w) / 8
}

// Valid reports whether w is one of the defined classes.
func (w Width) Valid() bool {
	switch w {
	case Width8, Width16, Width32, Width64, Width128, Width256, Width512:
		return true
	}
	return false
}

func (w Width) String() string {
	if !w.Valid() {
		return "invalid"
	}
	return "bits" + strconv.Itoa(int(w))
}

// Bits8 is satisfied by every 1-byte shape.
type Bits8 interface {
	~uint8 | ~int8 | ~[1]uint8 | ~[1]int8
}

// Bits16 is satisfied by every 2-byte shape.
type Bits16 interface {
	~[2]uint8 | ~[2]int8 |
		~[1]uint16 | ~[1]int16 |
		~uint16 | ~int16
}

// Bits32 is satisfied by every 4-byte shape.
type Bits32 interface {
	~[4]uint8 | ~[4]int8 |
		~[2]uint16 | ~[2]int16 |
		~[1]uint32 | ~[1]int32 | ~[1]float32 |
		~uint32 | ~int32 | ~float32
}

// Bits64 is satisfied by every 8-byte shape.
type Bits64 interface {
	~[8]uint8 | ~[8]int8 |
		~[4]uint16 | ~[4]int16 |
		~[2]uint32 | ~[2]int32 | ~[2]float32 |
		~[1]uint64 | ~[1]int64 | ~[1]float64 |
		~uint64 | ~int64 | ~float64
}

// Bits128 is satisfied by every 16-byte shape.
type Bits128 interface {
	~[16]uint8 | ~[16]int8 |
		~[8]uint16 | ~[8]int16 |
		~[4]uint32 | ~[4]int32 | ~[4]float32 |
		~[2]uint64 | ~[2]int64 | ~[2]float64
}

// Bits256 is satisfied by every 32-byte shape.
type Bits256 interface {
	~[32]uint8 | ~[32]int8 |
		~[16]uint16 | ~[16]int16 |
		~[8]uint32 | ~[8]int32 | ~[8]float32 |
		~[4]uint64 | ~[4]int64 | ~[4]float64
}

// Bits512 is satisfied by every 64-byte shape.
type Bits512 interface {
	~[64]uint8 | ~[64]int8 |
		~[32]uint16 | ~[32]int16 |
		~[16]uint32 | ~[16]int32 | ~[16]float32 |
		~[8]uint64 | ~[8]int64 | ~[8]float64
}

var elemKinds = map[reflect.Kind]bool{
	reflect.Uint8:   true,
	reflect.Int8:    true,
	reflect.Uint16:  true,
	reflect.Int16:   true,
	reflect.Uint32:  true,
	reflect.Int32:   true,
	reflect.Float32: true,
	reflect.Uint64:  true,
	reflect.Int64:   true,
	reflect.Float64: true,
}

// ClassOf reports the width class T belongs to, if any. It mirrors the
// BitsN and CellN constraints at run time for tooling and diagnostics;
// the wrappers themselves are checked at compile time and never call it.
func ClassOf[T any]() (Width, bool) {
	return classOfType(reflect.TypeFor[T]())
}

func classOfType(t reflect.Type) (Width, bool) {
	celled := isCellType(t)
	if celled {
		t = t.Field(0).Type
	}
	switch t.Kind() {
	case reflect.Array:
		elem := t.Elem()
		if !celled && isCellType(elem) {
			elem = elem.Field(0).Type
		}
		if !elemKinds[elem.Kind()] || t.Len() == 0 {
			return 0, false
		}
		w := Width(t.Len() * int(elem.Size()) * 8)
		if !w.Valid() {
			return 0, false
		}
		return w, true
	default:
		if !elemKinds[t.Kind()] || t.Size() > 8 {
			return 0, false
		}
		return Width(t.Size() * 8), true
	}
}

var cellPkgPath = reflect.TypeFor[Cell[uint8]]().PkgPath()

func isCellType(t reflect.Type) bool {
	return t.Kind() == reflect.Struct && t.PkgPath() == cellPkgPath &&
		t.NumField() == 1 && len(t.Name()) > 5 && t.Name()[:5] == "Cell["
}

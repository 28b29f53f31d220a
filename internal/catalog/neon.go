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

package catalog

import (
	"fmt"

	"github.com/ajroetker/go-unaligned/unaligned"
)

// Elem is a NEON lane type.
type Elem struct {
	Suffix string // intrinsic suffix, such as "u8"
	Go     string // Go element type, such as "uint8"
	Vec    string // register type stem, such as "Uint8"
	Size   int    // bytes
}

// Elems lists the lane types in intrinsic order.
var Elems = []Elem{
	{"u8", "uint8", "Uint8", 1},
	{"s8", "int8", "Int8", 1},
	{"u16", "uint16", "Uint16", 2},
	{"s16", "int16", "Int16", 2},
	{"u32", "uint32", "Uint32", 4},
	{"s32", "int32", "Int32", 4},
	{"u64", "uint64", "Uint64", 8},
	{"s64", "int64", "Int64", 8},
	{"f32", "float32", "Float32", 4},
	{"f64", "float64", "Float64", 8},
}

// RegWidths are the two NEON register widths.
var RegWidths = []unaligned.Width{unaligned.Width64, unaligned.Width128}

// RegType names the register type of e lanes in a register of width w.
func RegType(e Elem, w unaligned.Width) string {
	return fmt.Sprintf("%sx%d", e.Vec, w.Bytes()/e.Size)
}

// TupleType names the type holding regs registers of RegType(e, w).
func TupleType(e Elem, w unaligned.Width, regs int) string {
	if regs == 1 {
		return RegType(e, w)
	}
	return fmt.Sprintf("%sx%d", RegType(e, w), regs)
}

// ValueType returns the Go type of the registers an AArch64 op loads or
// stores.
func (o Op) ValueType() string {
	return TupleType(o.Elem, o.Class, o.Regs)
}

// MemType returns the Go type of the memory an AArch64 op reads or writes.
func (o Op) MemType() string {
	e := o.Elem.Go
	switch o.Kind {
	case KindDeinterleave, KindInterleave:
		return fmt.Sprintf("[%d]%s", o.Regs*o.Lanes, e)
	case KindDup:
		if o.Regs == 1 {
			return e
		}
		return fmt.Sprintf("[%d]%s", o.Regs, e)
	}
	switch {
	case o.Lanes == 1 && o.Regs == 1:
		return e
	case o.Lanes == 1:
		return fmt.Sprintf("[%d]%s", o.Regs, e)
	case o.Regs == 1:
		return fmt.Sprintf("[%d]%s", o.Lanes, e)
	default:
		return fmt.Sprintf("[%d][%d]%s", o.Regs, o.Lanes, e)
	}
}

// MemBytes returns the number of bytes an AArch64 op touches.
func (o Op) MemBytes() int {
	if o.Kind == KindDup {
		return o.Regs * o.Elem.Size
	}
	return o.Regs * o.Class.Bytes()
}

func neonOp(name string, d Direction, k Kind, e Elem, w unaligned.Width, regs int) Op {
	return Op{
		Arch:      ArchAArch64,
		Feature:   unaligned.FeatureNEON,
		Name:      name,
		Direction: d,
		Kind:      k,
		Class:     w,
		Elem:      e,
		Regs:      regs,
		Lanes:     w.Bytes() / e.Size,
	}
}

func qSuffix(w unaligned.Width) string {
	if w == unaligned.Width128 {
		return "q"
	}
	return ""
}

func neonOps() []Op {
	var ops []Op
	for _, d := range []Direction{Load, Store} {
		mn := "vld1"
		if d == Store {
			mn = "vst1"
		}
		for _, e := range Elems {
			for _, w := range RegWidths {
				base := mn + qSuffix(w) + "_" + e.Suffix
				ops = append(ops, neonOp(base, d, KindPlain, e, w, 1))
				for regs := 2; regs <= 4; regs++ {
					ops = append(ops, neonOp(fmt.Sprintf("%s_x%d", base, regs), d, KindMulti, e, w, regs))
				}
			}
		}
	}
	for _, d := range []Direction{Load, Store} {
		mn, k := "vld", KindDeinterleave
		if d == Store {
			mn, k = "vst", KindInterleave
		}
		for _, e := range Elems {
			for regs := 2; regs <= 4; regs++ {
				name := fmt.Sprintf("%s%dq_%s", mn, regs, e.Suffix)
				ops = append(ops, neonOp(name, d, k, e, unaligned.Width128, regs))
			}
		}
	}
	for _, e := range Elems {
		for _, w := range RegWidths {
			for regs := 1; regs <= 4; regs++ {
				name := fmt.Sprintf("vld%d%s_dup_%s", regs, qSuffix(w), e.Suffix)
				ops = append(ops, neonOp(name, Load, KindDup, e, w, regs))
			}
		}
	}
	return ops
}

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

import "github.com/ajroetker/go-unaligned/unaligned"

func wasmOps() []Op {
	op := func(name string, d Direction, k Kind, w unaligned.Width) Op {
		return Op{
			Arch:      ArchWasm32,
			Feature:   unaligned.FeatureSIMD128,
			Name:      name,
			Direction: d,
			Form:      Shared,
			Kind:      k,
			Class:     w,
		}
	}
	return []Op{
		op("v128_load", Load, KindPlain, unaligned.Width128),
		op("v128_store", Store, KindPlain, unaligned.Width128),
		op("v128_load8_splat", Load, KindBroadcast, unaligned.Width8),
		op("v128_load16_splat", Load, KindBroadcast, unaligned.Width16),
		op("v128_load32_splat", Load, KindBroadcast, unaligned.Width32),
		op("v128_load64_splat", Load, KindBroadcast, unaligned.Width64),
		op("v128_load32_zero", Load, KindZero, unaligned.Width32),
		op("v128_load64_zero", Load, KindZero, unaligned.Width64),
		op("i16x8_load_extend_i8x8", Load, KindExtend, unaligned.Width64),
		op("i16x8_load_extend_u8x8", Load, KindExtend, unaligned.Width64),
		op("i32x4_load_extend_i16x4", Load, KindExtend, unaligned.Width64),
		op("i32x4_load_extend_u16x4", Load, KindExtend, unaligned.Width64),
		op("i64x2_load_extend_i32x2", Load, KindExtend, unaligned.Width64),
		op("i64x2_load_extend_u32x2", Load, KindExtend, unaligned.Width64),
		op("u16x8_load_extend_u8x8", Load, KindExtend, unaligned.Width64),
		op("u32x4_load_extend_u16x4", Load, KindExtend, unaligned.Width64),
		op("u64x2_load_extend_u32x2", Load, KindExtend, unaligned.Width64),
	}
}

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

func x86Op(f unaligned.Feature, name string, d Direction, k Kind, w unaligned.Width) Op {
	return Op{Arch: ArchX86, Feature: f, Name: name, Direction: d, Kind: k, Class: w}
}

func x86Ops() []Op {
	const (
		sse    = unaligned.FeatureSSE
		sse2   = unaligned.FeatureSSE2
		avx    = unaligned.FeatureAVX
		avx512 = unaligned.FeatureAVX512F
		bw     = unaligned.FeatureAVX512BW
	)
	ops := []Op{
		x86Op(sse, "_mm_load1_ps", Load, KindBroadcast, unaligned.Width32),
		x86Op(sse, "_mm_load_ps1", Load, KindBroadcast, unaligned.Width32),
		x86Op(sse, "_mm_load_ss", Load, KindZero, unaligned.Width32),
		x86Op(sse, "_mm_loadu_ps", Load, KindPlain, unaligned.Width128),
		x86Op(sse, "_mm_store_ss", Store, KindPartial, unaligned.Width32),
		x86Op(sse, "_mm_storeu_ps", Store, KindPlain, unaligned.Width128),

		x86Op(sse2, "_mm_load_pd1", Load, KindBroadcast, unaligned.Width64),
		x86Op(sse2, "_mm_load_sd", Load, KindZero, unaligned.Width64),
		x86Op(sse2, "_mm_load1_pd", Load, KindBroadcast, unaligned.Width64),
		x86Op(sse2, "_mm_loadh_pd", Load, KindPartial, unaligned.Width64),
		x86Op(sse2, "_mm_loadl_epi64", Load, KindZero, unaligned.Width128),
		x86Op(sse2, "_mm_loadl_pd", Load, KindPartial, unaligned.Width64),
		x86Op(sse2, "_mm_loadu_pd", Load, KindPlain, unaligned.Width128),
		x86Op(sse2, "_mm_loadu_si128", Load, KindPlain, unaligned.Width128),
		x86Op(sse2, "_mm_loadu_si16", Load, KindZero, unaligned.Width16),
		x86Op(sse2, "_mm_loadu_si32", Load, KindZero, unaligned.Width32),
		x86Op(sse2, "_mm_loadu_si64", Load, KindZero, unaligned.Width64),
		x86Op(sse2, "_mm_store_sd", Store, KindPartial, unaligned.Width64),
		x86Op(sse2, "_mm_storeh_pd", Store, KindPartial, unaligned.Width64),
		x86Op(sse2, "_mm_storel_epi64", Store, KindPartial, unaligned.Width128),
		x86Op(sse2, "_mm_storel_pd", Store, KindPartial, unaligned.Width64),
		x86Op(sse2, "_mm_storeu_pd", Store, KindPlain, unaligned.Width128),
		x86Op(sse2, "_mm_storeu_si128", Store, KindPlain, unaligned.Width128),
		x86Op(sse2, "_mm_storeu_si16", Store, KindPartial, unaligned.Width16),
		x86Op(sse2, "_mm_storeu_si32", Store, KindPartial, unaligned.Width32),
		x86Op(sse2, "_mm_storeu_si64", Store, KindPartial, unaligned.Width64),

		x86Op(avx, "_mm256_broadcast_pd", Load, KindBroadcast, unaligned.Width128),
		x86Op(avx, "_mm256_broadcast_ps", Load, KindBroadcast, unaligned.Width128),
		x86Op(avx, "_mm256_broadcast_sd", Load, KindBroadcast, unaligned.Width64),
		x86Op(avx, "_mm_broadcast_ss", Load, KindBroadcast, unaligned.Width32),
		x86Op(avx, "_mm256_broadcast_ss", Load, KindBroadcast, unaligned.Width32),
		x86Op(avx, "_mm256_loadu_pd", Load, KindPlain, unaligned.Width256),
		x86Op(avx, "_mm256_loadu_ps", Load, KindPlain, unaligned.Width256),
		x86Op(avx, "_mm256_loadu_si256", Load, KindPlain, unaligned.Width256),
		x86Op(avx, "_mm256_loadu2_m128", Load, KindPair, unaligned.Width128),
		x86Op(avx, "_mm256_loadu2_m128d", Load, KindPair, unaligned.Width128),
		x86Op(avx, "_mm256_loadu2_m128i", Load, KindPair, unaligned.Width128),
		x86Op(avx, "_mm256_storeu_pd", Store, KindPlain, unaligned.Width256),
		x86Op(avx, "_mm256_storeu_ps", Store, KindPlain, unaligned.Width256),
		x86Op(avx, "_mm256_storeu_si256", Store, KindPlain, unaligned.Width256),
		x86Op(avx, "_mm256_storeu2_m128", Store, KindPair, unaligned.Width128),
		x86Op(avx, "_mm256_storeu2_m128d", Store, KindPair, unaligned.Width128),
		x86Op(avx, "_mm256_storeu2_m128i", Store, KindPair, unaligned.Width128),

		x86Op(avx512, "_mm512_loadu_si512", Load, KindPlain, unaligned.Width512),
		x86Op(avx512, "_mm512_storeu_si512", Store, KindPlain, unaligned.Width512),
	}
	for _, v := range []struct {
		prefix string
		w      unaligned.Width
	}{
		{"_mm", unaligned.Width128},
		{"_mm256", unaligned.Width256},
		{"_mm512", unaligned.Width512},
	} {
		for _, lane := range []string{"epi8", "epi16"} {
			ops = append(ops,
				x86Op(bw, v.prefix+"_loadu_"+lane, Load, KindPlain, v.w),
				x86Op(bw, v.prefix+"_storeu_"+lane, Store, KindPlain, v.w),
			)
		}
	}

	// Cell overloads.
	for _, op := range []Op{
		x86Op(sse2, "_mm_loadl_epi64", Load, KindZero, unaligned.Width128),
		x86Op(sse2, "_mm_loadu_si128", Load, KindPlain, unaligned.Width128),
		x86Op(sse2, "_mm_storel_epi64", Store, KindPartial, unaligned.Width128),
		x86Op(sse2, "_mm_storeu_si128", Store, KindPlain, unaligned.Width128),
		x86Op(avx, "_mm256_loadu_si256", Load, KindPlain, unaligned.Width256),
		x86Op(avx, "_mm256_loadu2_m128i", Load, KindPair, unaligned.Width128),
		x86Op(avx, "_mm256_storeu_si256", Store, KindPlain, unaligned.Width256),
		x86Op(avx, "_mm256_storeu2_m128i", Store, KindPair, unaligned.Width128),
	} {
		op.Form = Shared
		ops = append(ops, op)
	}
	return ops
}

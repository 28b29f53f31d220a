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
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"

	"github.com/ajroetker/go-unaligned/unaligned"
)

func TestGoName(t *testing.T) {
	tests := []struct {
		mnemonic string
		want     string
	}{
		{"_mm_loadu_si128", "MmLoaduSi128"},
		{"_mm256_loadu2_m128i", "Mm256Loadu2M128i"},
		{"_mm_load_ps1", "MmLoadPs1"},
		{"_mm512_storeu_epi16", "Mm512StoreuEpi16"},
		{"vld1q_u8_x2", "Vld1qU8X2"},
		{"vld4_dup_f64", "Vld4DupF64"},
		{"v128_load32_splat", "V128Load32Splat"},
		{"i16x8_load_extend_i8x8", "I16x8LoadExtendI8x8"},
	}
	for _, tt := range tests {
		t.Run(tt.mnemonic, func(t *testing.T) {
			assert.Equal(t, tt.want, GoName(tt.mnemonic))
		})
	}
}

func TestCounts(t *testing.T) {
	count := func(arch, feature string) int {
		ops, err := Select(arch, feature)
		require.NoError(t, err)
		return len(ops)
	}
	assert.Equal(t, 300, count("aarch64", ""))
	assert.Equal(t, 17, count("wasm32", "simd128"))
	assert.Equal(t, 6, count("x86", "sse"))
	assert.Equal(t, 12, count("x86", "avx512bw"))
	assert.Equal(t, len(All()), count("", ""))
}

func TestSelectErrors(t *testing.T) {
	_, err := Select("mips", "")
	assert.ErrorIs(t, err, ErrUnknownArch)

	_, err = Select("", "mmx")
	assert.ErrorIs(t, err, ErrUnknownFeature)

	a, err := ParseArch("AArch64")
	require.NoError(t, err)
	assert.Equal(t, ArchAArch64, a)
}

func TestNamesUniquePerPackage(t *testing.T) {
	seen := map[string]bool{}
	for _, op := range All() {
		key := op.Package() + "." + op.GoName()
		assert.False(t, seen[key], "duplicate %s", key)
		seen[key] = true
	}
}

func TestNeonShapes(t *testing.T) {
	byName := map[string]Op{}
	for _, op := range All() {
		if op.Arch == ArchAArch64 {
			byName[op.Name] = op
		}
	}
	tests := []struct {
		name  string
		mem   string
		value string
		bytes int
	}{
		{"vld1q_u8", "[16]uint8", "Uint8x16", 16},
		{"vld1_u64", "uint64", "Uint64x1", 8},
		{"vld1_u64_x2", "[2]uint64", "Uint64x1x2", 16},
		{"vld1_u16_x2", "[2][4]uint16", "Uint16x4x2", 16},
		{"vst1q_f32_x4", "[4][4]float32", "Float32x4x4", 64},
		{"vld2q_u8", "[32]uint8", "Uint8x16x2", 32},
		{"vld3q_u64", "[6]uint64", "Uint64x2x3", 48},
		{"vst4q_s16", "[32]int16", "Int16x8x4", 64},
		{"vld1_dup_u64", "uint64", "Uint64x1", 8},
		{"vld1q_dup_u8", "uint8", "Uint8x16", 1},
		{"vld2_dup_u8", "[2]uint8", "Uint8x8x2", 2},
		{"vld4q_dup_f64", "[4]float64", "Float64x2x4", 32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, ok := byName[tt.name]
			require.True(t, ok)
			assert.Equal(t, tt.mem, op.MemType())
			assert.Equal(t, tt.value, op.ValueType())
			assert.Equal(t, tt.bytes, op.MemBytes())
		})
	}
}

func TestStringers(t *testing.T) {
	assert.Equal(t, "store", Store.String())
	assert.Equal(t, "cell", Shared.String())
	assert.Equal(t, "deinterleave", KindDeinterleave.String())
	assert.Equal(t, "unknown", Kind(-1).String())
}

// Every catalogue entry must be an exported function of its package, and
// every exported function named like an intrinsic must be in the catalogue.
func TestPackagesMatchCatalog(t *testing.T) {
	if testing.Short() {
		t.Skip("loads packages with the go command")
	}
	want := map[string]map[string]Op{}
	for _, op := range All() {
		if want[op.Package()] == nil {
			want[op.Package()] = map[string]Op{}
		}
		want[op.Package()][op.GoName()] = op
	}

	var paths []string
	for p := range want {
		paths = append(paths, p)
	}
	cfg := &packages.Config{Mode: packages.NeedName | packages.NeedTypes}
	pkgs, err := packages.Load(cfg, paths...)
	require.NoError(t, err)
	require.Len(t, pkgs, len(paths))

	for _, pkg := range pkgs {
		require.Empty(t, pkg.Errors, pkg.PkgPath)
		scope := pkg.Types.Scope()
		ops := want[pkg.PkgPath]
		for name, op := range ops {
			fn, ok := scope.Lookup(name).(*types.Func)
			if assert.True(t, ok, "%s.%s missing", pkg.PkgPath, name) {
				sig := fn.Type().(*types.Signature)
				if op.Direction == Store {
					assert.Zero(t, sig.Results().Len(), "%s returns a value", name)
				} else {
					assert.Equal(t, 1, sig.Results().Len(), "%s", name)
				}
			}
		}
		for _, name := range scope.Names() {
			if _, ok := scope.Lookup(name).(*types.Func); !ok || !looksLikeIntrinsic(name) {
				continue
			}
			assert.Contains(t, ops, name, "%s.%s not catalogued", pkg.PkgPath, name)
		}
	}
}

func looksLikeIntrinsic(name string) bool {
	for _, prefix := range []string{"Mm", "Vld", "Vst", "V128Load", "V128Store", "I16x8", "I32x4", "I64x2", "U16x8", "U32x4", "U64x2"} {
		if len(name) > len(prefix) && name[:len(prefix)] == prefix {
			return true
		}
	}
	return false
}

func TestFeaturesCovered(t *testing.T) {
	seen := map[unaligned.Feature]bool{}
	for _, op := range All() {
		seen[op.Feature] = true
	}
	for _, f := range unaligned.Features {
		if f == unaligned.FeatureAVX2 {
			continue
		}
		assert.True(t, seen[f], "no ops for %v", f)
	}
}

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

// Package catalog describes every wrapped memory operation as data. The
// wrapper generator renders the AArch64 package from it, the cpuinfo tool
// lists it, and tests use it to check that each package exports exactly
// the functions it should.
package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ajroetker/go-unaligned/unaligned"
)

var (
	// ErrUnknownArch is returned for an architecture family name that is
	// not in the catalogue.
	ErrUnknownArch = errors.New("unknown architecture")

	// ErrUnknownFeature is returned for a feature name that is not in the
	// catalogue.
	ErrUnknownFeature = errors.New("unknown feature")
)

// Arch is a wrapper family.
type Arch string

const (
	ArchX86     Arch = "x86"
	ArchAArch64 Arch = "aarch64"
	ArchWasm32  Arch = "wasm32"
)

// Arches lists the families in display order.
var Arches = []Arch{ArchX86, ArchAArch64, ArchWasm32}

// ParseArch returns the family with the given name.
func ParseArch(name string) (Arch, error) {
	a := Arch(strings.ToLower(name))
	if !slices.Contains(Arches, a) {
		return "", fmt.Errorf("%q: %w (valid: x86, aarch64, wasm32)", name, ErrUnknownArch)
	}
	return a, nil
}

// ParseFeature returns the feature with the given name.
func ParseFeature(name string) (unaligned.Feature, error) {
	f, ok := unaligned.LookupFeature(strings.ToLower(name))
	if !ok {
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownFeature)
	}
	return f, nil
}

// Direction says whether an op reads or writes memory.
type Direction int

const (
	Load Direction = iota
	Store
)

func (d Direction) String() string {
	if d == Store {
		return "store"
	}
	return "load"
}

// Form says how the memory reference is held.
type Form int

const (
	// Exclusive ops take a reference nobody else writes through during
	// the call.
	Exclusive Form = iota

	// Shared ops take cell forms and tolerate overlapping views.
	Shared
)

func (f Form) String() string {
	if f == Shared {
		return "cell"
	}
	return "exclusive"
}

// Kind groups ops by the shape of their memory access.
type Kind int

const (
	KindPlain        Kind = iota // one full-width move
	KindPartial                  // low or high part of a register
	KindPair                     // two half-width moves at separate addresses
	KindBroadcast                // one value repeated across the register
	KindMulti                    // several registers from consecutive memory
	KindDeinterleave             // structures split across registers
	KindInterleave               // registers merged into structures
	KindDup                      // one structure replicated per register
	KindZero                     // low lane loaded, rest zeroed
	KindExtend                   // narrow lanes widened
)

var kindNames = [...]string{
	KindPlain:        "plain",
	KindPartial:      "partial",
	KindPair:         "pair",
	KindBroadcast:    "broadcast",
	KindMulti:        "multi",
	KindDeinterleave: "deinterleave",
	KindInterleave:   "interleave",
	KindDup:          "dup",
	KindZero:         "zero",
	KindExtend:       "extend",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Op describes one wrapper function.
type Op struct {
	Arch      Arch
	Feature   unaligned.Feature
	Name      string // intrinsic mnemonic, such as "_mm_loadu_si128"
	Direction Direction
	Form      Form
	Kind      Kind

	// Class is the width of the memory reference for the generic x86 and
	// wasm32 ops, and the register width for AArch64.
	Class unaligned.Width

	// Elem, Regs and Lanes are set for AArch64 ops only.
	Elem  Elem
	Regs  int
	Lanes int
}

// Package returns the import path of the package that holds the wrapper.
func (o Op) Package() string {
	const root = "github.com/ajroetker/go-unaligned/unaligned/"
	if o.Form == Shared && o.Arch == ArchX86 {
		return root + "x86/cell"
	}
	return root + string(o.Arch)
}

// GoName returns the exported Go identifier of the wrapper.
func (o Op) GoName() string {
	return GoName(o.Name)
}

// GoName converts an intrinsic mnemonic to a Go identifier by title-casing
// each underscore-separated part: _mm256_loadu2_m128i becomes
// Mm256Loadu2M128i and vld1q_u8_x2 becomes Vld1qU8X2.
func GoName(mnemonic string) string {
	titler := cases.Title(language.English)
	var sb strings.Builder
	for part := range strings.SplitSeq(mnemonic, "_") {
		if part == "" {
			continue
		}
		sb.WriteString(titler.String(part))
	}
	return sb.String()
}

var all = slices.Concat(x86Ops(), neonOps(), wasmOps())

// All returns every op in a stable order: by family, then as declared.
func All() []Op {
	return slices.Clone(all)
}

// Select returns the ops of one family and feature. Empty strings match
// everything.
func Select(arch, feature string) ([]Op, error) {
	var (
		a    Arch
		f    unaligned.Feature
		err  error
		byF  = feature != ""
		byA  = arch != ""
		outs []Op
	)
	if byA {
		if a, err = ParseArch(arch); err != nil {
			return nil, err
		}
	}
	if byF {
		if f, err = ParseFeature(feature); err != nil {
			return nil, err
		}
	}
	for _, op := range all {
		if byA && op.Arch != a {
			continue
		}
		if byF && op.Feature != f {
			continue
		}
		outs = append(outs, op)
	}
	return outs, nil
}

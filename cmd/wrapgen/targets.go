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

package main

import (
	"fmt"

	"github.com/ajroetker/go-unaligned/internal/catalog"
)

// Target is one generated file.
type Target struct {
	Name   string                // "types", "vld1", ...
	File   string                // output file name
	Filter func(catalog.Op) bool // ops rendered into the file; nil for types
}

func aarch64(kinds ...catalog.Kind) func(catalog.Op) bool {
	return func(op catalog.Op) bool {
		if op.Arch != catalog.ArchAArch64 {
			return false
		}
		for _, k := range kinds {
			if op.Kind == k {
				return true
			}
		}
		return false
	}
}

// AllTargets returns every target in rendering order.
func AllTargets() []Target {
	isLoad := func(f func(catalog.Op) bool) func(catalog.Op) bool {
		return func(op catalog.Op) bool { return f(op) && op.Direction == catalog.Load }
	}
	isStore := func(f func(catalog.Op) bool) func(catalog.Op) bool {
		return func(op catalog.Op) bool { return f(op) && op.Direction == catalog.Store }
	}
	return []Target{
		{Name: "types", File: "z_types.go"},
		{Name: "vld1", File: "z_vld1.go", Filter: isLoad(aarch64(catalog.KindPlain, catalog.KindMulti))},
		{Name: "vst1", File: "z_vst1.go", Filter: isStore(aarch64(catalog.KindPlain, catalog.KindMulti))},
		{Name: "vldn", File: "z_vldn.go", Filter: aarch64(catalog.KindDeinterleave)},
		{Name: "vstn", File: "z_vstn.go", Filter: aarch64(catalog.KindInterleave)},
		{Name: "dup", File: "z_dup.go", Filter: aarch64(catalog.KindDup)},
	}
}

// GetTarget returns the target with the given name.
func GetTarget(name string) (Target, error) {
	for _, t := range AllTargets() {
		if t.Name == name {
			return t, nil
		}
	}
	return Target{}, fmt.Errorf("unknown target: %s (valid: types, vld1, vst1, vldn, vstn, dup)", name)
}

// Ops returns the catalogue entries rendered into t.
func (t Target) Ops() []catalog.Op {
	if t.Filter == nil {
		return nil
	}
	var ops []catalog.Op
	for _, op := range catalog.All() {
		if t.Filter(op) {
			ops = append(ops, op)
		}
	}
	return ops
}

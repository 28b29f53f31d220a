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

import "github.com/ajroetker/go-unaligned/internal/raw"

// Feature identifies a CPU vector extension that a wrapper family
// corresponds to.
type Feature int

const (
	FeatureSSE Feature = iota
	FeatureSSE2
	FeatureAVX
	FeatureAVX2
	FeatureAVX512F
	FeatureAVX512BW
	FeatureNEON
	FeatureSIMD128
)

var featureNames = [...]string{
	FeatureSSE:      "sse",
	FeatureSSE2:     "sse2",
	FeatureAVX:      "avx",
	FeatureAVX2:     "avx2",
	FeatureAVX512F:  "avx512f",
	FeatureAVX512BW: "avx512bw",
	FeatureNEON:     "neon",
	FeatureSIMD128:  "simd128",
}

// Features lists every known feature.
var Features = []Feature{
	FeatureSSE, FeatureSSE2, FeatureAVX, FeatureAVX2,
	FeatureAVX512F, FeatureAVX512BW, FeatureNEON, FeatureSIMD128,
}

// String returns the lower-case feature name used on the command line.
func (f Feature) String() string {
	if f < 0 || int(f) >= len(featureNames) {
		return "unknown"
	}
	return featureNames[f]
}

// LookupFeature returns the feature with the given name.
func LookupFeature(name string) (Feature, bool) {
	for i, n := range featureNames {
		if n == name {
			return Feature(i), true
		}
	}
	return 0, false
}

// detected is filled by init() in features_*.go files.
var detected [len(featureNames)]bool

// Has reports whether the running CPU supports f. The wrappers work
// without the feature; they fall back to portable moves.
func Has(f Feature) bool {
	if f < 0 || int(f) >= len(detected) {
		return false
	}
	return detected[f]
}

// Level returns the name of the move path the wrappers use in this
// process, such as "archsimd-avx2" or "portable".
func Level() string {
	return raw.CurrentPath().String()
}

// NoSimdEnv reports whether UNALIGNED_NO_SIMD is set. When set, the wide
// moves use portable copies regardless of CPU capabilities. The variable
// is read once at startup.
func NoSimdEnv() bool {
	return raw.NoSimdEnv()
}

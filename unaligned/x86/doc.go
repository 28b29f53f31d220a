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

// Package x86 wraps the unaligned load and store intrinsics of SSE, SSE2,
// AVX and AVX-512 behind signatures that take references of the right
// width.
//
// Functions are named after the intrinsic they stand for with each
// underscore-separated part title-cased, so _mm_loadu_si128 becomes
// MmLoaduSi128. Integer forms are generic over the unaligned.BitsN
// constraint of their width; float forms take the float array the
// intrinsic is defined on.
//
// Every function works on every GOARCH. On amd64 built with
// GOEXPERIMENT=simd the 16, 32 and 64 byte moves run through vector
// registers; elsewhere they are plain copies with identical results.
package x86

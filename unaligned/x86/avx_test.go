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

package x86

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

// ptrAs reinterprets a pointer to another shape of the same size.
func ptrAs[T any, S any](p *S) *T {
	return (*T)(unsafe.Pointer(p))
}

func TestBroadcast(t *testing.T) {
	x := 1.5
	assert.Equal(t, [4]float64{1.5, 1.5, 1.5, 1.5}, Mm256BroadcastSd(&x).Float64s())

	y := float32(-4)
	got := Mm256BroadcastSs(&y).Float32s()
	for i, v := range got {
		assert.Equal(t, y, v, "lane %d", i)
	}

	pd := SetPd([2]float64{1, 2})
	assert.Equal(t, [4]float64{1, 2, 1, 2}, Mm256BroadcastPd(&pd).Float64s())

	ps := SetPs([4]float32{1, 2, 3, 4})
	assert.Equal(t, [8]float32{1, 2, 3, 4, 1, 2, 3, 4}, Mm256BroadcastPs(&ps).Float32s())
}

func TestMm256RoundTrip(t *testing.T) {
	pd := [4]float64{1, 2, 3, 4}
	var pdOut [4]float64
	Mm256StoreuPd(&pdOut, Mm256LoaduPd(&pd))
	assert.Equal(t, pd, pdOut)

	ps := [8]float32{1, 2, 3, 4, 5, 6, 7, 8}
	var psOut [8]float32
	Mm256StoreuPs(&psOut, Mm256LoaduPs(&ps))
	assert.Equal(t, ps, psOut)

	si := [16]int16{-8, -7, -6, -5, -4, -3, -2, -1, 0, 1, 2, 3, 4, 5, 6, 7}
	var siOut [4]uint64
	Mm256StoreuSi256(&siOut, Mm256LoaduSi256(&si))
	assert.Equal(t, si, *ptrAs[[16]int16](&siOut))
}

// Loading two adjacent 16-byte halves with the dual-address form equals
// one direct 32-byte load.
func TestLoadu2MatchesDirectLoad(t *testing.T) {
	var buf [4]uint64
	for i := range buf {
		buf[i] = uint64(i+1) * 0x0101010101010101
	}
	lo := (*[2]uint64)(buf[0:2])
	hi := (*[2]uint64)(buf[2:4])
	assert.Equal(t, Mm256LoaduSi256(&buf), Mm256Loadu2M128i(hi, lo))

	v := Mm256Loadu2M128i(hi, lo)
	assert.Equal(t, M128iFrom(*lo), v.Lo())
	assert.Equal(t, M128iFrom(*hi), v.Hi())
}

func TestLoadu2Float(t *testing.T) {
	lo := [4]float32{1, 2, 3, 4}
	hi := [4]float32{5, 6, 7, 8}
	assert.Equal(t, [8]float32{1, 2, 3, 4, 5, 6, 7, 8}, Mm256Loadu2M128(&hi, &lo).Float32s())

	var lo2, hi2 [4]float32
	Mm256Storeu2M128(&hi2, &lo2, Set256Ps([8]float32{1, 2, 3, 4, 5, 6, 7, 8}))
	assert.Equal(t, lo, lo2)
	assert.Equal(t, hi, hi2)

	dlo := [2]float64{1, 2}
	dhi := [2]float64{3, 4}
	v := Mm256Loadu2M128d(&dhi, &dlo)
	assert.Equal(t, [4]float64{1, 2, 3, 4}, v.Float64s())

	var dlo2, dhi2 [2]float64
	Mm256Storeu2M128d(&dhi2, &dlo2, v)
	assert.Equal(t, dlo, dlo2)
	assert.Equal(t, dhi, dhi2)
}

func TestStoreu2Integer(t *testing.T) {
	var lo, hi [8]int16
	v := M256iFrom([16]int16{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15})
	Mm256Storeu2M128i(&hi, &lo, v)
	assert.Equal(t, [8]int16{0, 1, 2, 3, 4, 5, 6, 7}, lo)
	assert.Equal(t, [8]int16{8, 9, 10, 11, 12, 13, 14, 15}, hi)
}

package negative

import "github.com/ajroetker/go-unaligned/unaligned/aarch64"

// NEON wrappers are typed by lane.
func load(x *[16]int8) aarch64.Uint8x16 {
	return aarch64.Vld1qU8(x)
}

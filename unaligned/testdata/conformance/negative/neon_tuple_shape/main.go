package negative

import "github.com/ajroetker/go-unaligned/unaligned/aarch64"

// The _x2 form takes two registers' worth of rows, not a flat array.
func load(x *[32]uint8) aarch64.Uint8x16x2 {
	return aarch64.Vld1qU8X2(x)
}

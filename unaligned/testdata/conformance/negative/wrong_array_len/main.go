package negative

import "github.com/ajroetker/go-unaligned/unaligned/x86"

// Twelve bytes is not a 128-bit shape.
func load(x *[3]uint32) x86.M128i {
	return x86.MmLoaduSi128(x)
}

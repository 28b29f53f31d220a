package negative

import "github.com/ajroetker/go-unaligned/unaligned/x86"

// A 32-bit shape is not a 16-bit shape.
func load(x *[4]uint8) x86.M128i {
	return x86.MmLoaduSi16(x)
}

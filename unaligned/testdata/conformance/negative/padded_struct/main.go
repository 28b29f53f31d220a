package negative

import "github.com/ajroetker/go-unaligned/unaligned/x86"

type pair struct {
	a uint64
	b uint32
	_ uint32
}

// Structs may carry padding and are never admitted.
func load(x *pair) x86.M128i {
	return x86.MmLoaduSi128(x)
}

package negative

import "github.com/ajroetker/go-unaligned/unaligned/x86"

// int changes size with the platform.
func load(x *int) x86.M128i {
	return x86.MmLoaduSi64(x)
}

package negative

import "github.com/ajroetker/go-unaligned/unaligned/x86"

// bool has no defined bit pattern for arbitrary bytes.
func load(x *[16]bool) x86.M128i {
	return x86.MmLoaduSi128(x)
}

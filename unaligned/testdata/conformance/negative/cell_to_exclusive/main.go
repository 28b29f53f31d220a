package negative

import (
	"github.com/ajroetker/go-unaligned/unaligned"
	"github.com/ajroetker/go-unaligned/unaligned/x86"
)

// The exclusive wrappers do not accept cells.
func load(x *unaligned.Cell[[4]uint32]) x86.M128i {
	return x86.MmLoaduSi128(x)
}

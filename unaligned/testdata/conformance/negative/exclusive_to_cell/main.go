package negative

import (
	"github.com/ajroetker/go-unaligned/unaligned/x86"
	"github.com/ajroetker/go-unaligned/unaligned/x86/cell"
)

// The cell wrappers do not accept plain arrays.
func load(x *[4]uint32) x86.M128i {
	return cell.MmLoaduSi128(x)
}

package negative

import (
	"github.com/ajroetker/go-unaligned/unaligned"
	"github.com/ajroetker/go-unaligned/unaligned/x86"
	"github.com/ajroetker/go-unaligned/unaligned/x86/cell"
)

// Three cells of uint32 are twelve bytes.
func load(x *[3]unaligned.Cell[uint32]) x86.M128i {
	return cell.MmLoaduSi128(x)
}

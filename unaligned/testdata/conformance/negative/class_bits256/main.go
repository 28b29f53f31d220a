package negative

import "github.com/ajroetker/go-unaligned/unaligned"

func sink[T unaligned.Bits256]() {}

var _ = sink[[7]uint32]

package negative

import "github.com/ajroetker/go-unaligned/unaligned"

func sink[T unaligned.Bits8]() {}

var _ = sink[uint16]

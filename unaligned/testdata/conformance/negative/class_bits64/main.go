package negative

import "github.com/ajroetker/go-unaligned/unaligned"

func sink[T unaligned.Bits64]() {}

var _ = sink[[3]uint16]

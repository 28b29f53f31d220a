package negative

import "github.com/ajroetker/go-unaligned/unaligned"

func sink[T unaligned.Bits16]() {}

var _ = sink[[3]int8]

package negative

import "github.com/ajroetker/go-unaligned/unaligned"

func sink[T unaligned.Bits32]() {}

var _ = sink[[1]float64]

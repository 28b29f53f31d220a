package negative

import "github.com/ajroetker/go-unaligned/unaligned"

func sink[T unaligned.Bits512]() {}

var _ = sink[[8]float32]

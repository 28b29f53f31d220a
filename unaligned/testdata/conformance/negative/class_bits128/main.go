package negative

import "github.com/ajroetker/go-unaligned/unaligned"

func sink[T unaligned.Bits128]() {}

var _ = sink[[3]uint32]

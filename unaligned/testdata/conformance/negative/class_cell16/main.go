package negative

import "github.com/ajroetker/go-unaligned/unaligned"

func sink[T unaligned.Cell16]() {}

var _ = sink[[3]unaligned.Cell[uint8]]

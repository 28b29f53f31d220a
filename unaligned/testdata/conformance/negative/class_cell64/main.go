package negative

import "github.com/ajroetker/go-unaligned/unaligned"

func sink[T unaligned.Cell64]() {}

var _ = sink[unaligned.Cell[uint32]]

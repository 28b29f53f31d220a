package negative

import "github.com/ajroetker/go-unaligned/unaligned"

func sink[T unaligned.Cell512]() {}

var _ = sink[[32]unaligned.Cell[uint8]]

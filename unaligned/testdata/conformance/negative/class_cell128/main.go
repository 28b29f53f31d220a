package negative

import "github.com/ajroetker/go-unaligned/unaligned"

func sink[T unaligned.Cell128]() {}

var _ = sink[[8]unaligned.Cell[uint8]]

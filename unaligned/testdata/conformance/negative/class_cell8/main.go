package negative

import "github.com/ajroetker/go-unaligned/unaligned"

func sink[T unaligned.Cell8]() {}

var _ = sink[unaligned.Cell[uint16]]

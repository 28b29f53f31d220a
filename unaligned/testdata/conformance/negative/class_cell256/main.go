package negative

import "github.com/ajroetker/go-unaligned/unaligned"

func sink[T unaligned.Cell256]() {}

var _ = sink[unaligned.Cell[[4]uint32]]

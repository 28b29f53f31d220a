package negative

import "github.com/ajroetker/go-unaligned/unaligned/wasm32"

// load8_splat reads one byte, not two.
func load(x *[2]uint8) wasm32.V128 {
	return wasm32.V128Load8Splat(x)
}

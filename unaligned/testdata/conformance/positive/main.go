package positive

import (
	"github.com/ajroetker/go-unaligned/unaligned"
	"github.com/ajroetker/go-unaligned/unaligned/aarch64"
	"github.com/ajroetker/go-unaligned/unaligned/wasm32"
	"github.com/ajroetker/go-unaligned/unaligned/x86"
	"github.com/ajroetker/go-unaligned/unaligned/x86/cell"
)

type rgba [4]uint8

type sample int16

func exercise() {
	var (
		b16  [16]uint8
		h8   [8]int16
		f4   [4]float32
		d2   [2]float64
		q2   [2]int64
		u32  uint32
		px   rgba
		s    sample
		y32  [8]uint32
		z64  [16]float32
		cw   = unaligned.CellsOf(make([]uint32, 8))
		pair = unaligned.NewCell([2]uint64{})
	)
	v := x86.MmLoaduSi128(&b16)
	x86.MmStoreuSi128(&h8, v)
	x86.MmStoreuSi128(&f4, x86.MmLoaduSi128(&d2))
	x86.MmStorelEpi64(&q2, x86.MmLoadlEpi64(&q2))
	x86.MmStoreuSi32(&px, x86.MmLoaduSi32(&u32))
	x86.MmStoreuSi16(&s, x86.MmLoaduSi16(&s))
	x86.Mm256StoreuSi256(&y32, x86.Mm256LoaduSi256(&y32))
	x86.Mm512StoreuEpi8(&z64, x86.Mm512LoaduEpi16(&z64))

	w := (*[4]unaligned.Cell[uint32])(cw[0:4])
	cellStore(w, &pair)

	_ = wasm32.V128Load(&b16)
	_ = wasm32.V128Load(w)
	_ = wasm32.V128Load32Splat(&px)
	_ = wasm32.V128Load64Zero(&q2[0])
	_ = wasm32.I16x8LoadExtendU8x8((*[8]unaligned.Cell[uint8])(unaligned.CellsOf(b16[:8])))

	_ = aarch64.Vld1qU8(&b16)
	_ = aarch64.Vld2qS16(&[16]int16{})
	_ = aarch64.Vld4DupF32(&f4)
}

func cellStore(w *[4]unaligned.Cell[uint32], c *unaligned.Cell[[2]uint64]) {
	cell.MmStoreuSi128(w, cell.MmLoaduSi128(c))
}

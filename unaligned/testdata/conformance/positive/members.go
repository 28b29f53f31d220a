package positive

// Each function below instantiates one width class with every member
// shape it declares, plus a named type over one of them.

import "github.com/ajroetker/go-unaligned/unaligned"

type (
	u8named    uint8
	i16named   int16
	f32named   float32
	u64named   [2]uint32
	i64x2named [2]int64
	f32x8named [8]float32
	u8x64named [64]uint8
)

func bits8[T unaligned.Bits8]() {}
func cell8[T unaligned.Cell8]() {}
func bits16[T unaligned.Bits16]() {}
func cell16[T unaligned.Cell16]() {}
func bits32[T unaligned.Bits32]() {}
func cell32[T unaligned.Cell32]() {}
func bits64[T unaligned.Bits64]() {}
func cell64[T unaligned.Cell64]() {}
func bits128[T unaligned.Bits128]() {}
func cell128[T unaligned.Cell128]() {}
func bits256[T unaligned.Bits256]() {}
func cell256[T unaligned.Cell256]() {}
func bits512[T unaligned.Bits512]() {}
func cell512[T unaligned.Cell512]() {}
func bytes1[T unaligned.Bytes1]() {}
func bytes2[T unaligned.Bytes2]() {}
func bytes4[T unaligned.Bytes4]() {}
func bytes8[T unaligned.Bytes8]() {}
func bytes16[T unaligned.Bytes16]() {}
func bytes32[T unaligned.Bytes32]() {}
func bytes64[T unaligned.Bytes64]() {}

// Every 1-byte member.
func members8() {
	bits8[[1]uint8]()
	bytes1[[1]uint8]()
	bits8[[1]int8]()
	bytes1[[1]int8]()
	bits8[uint8]()
	bytes1[uint8]()
	bits8[int8]()
	bytes1[int8]()
	bits8[u8named]()
	bytes1[u8named]()
	cell8[unaligned.Cell[[1]uint8]]()
	bytes1[unaligned.Cell[[1]uint8]]()
	cell8[unaligned.Cell[[1]int8]]()
	bytes1[unaligned.Cell[[1]int8]]()
	cell8[unaligned.Cell[uint8]]()
	bytes1[unaligned.Cell[uint8]]()
	cell8[unaligned.Cell[int8]]()
	bytes1[unaligned.Cell[int8]]()
	cell8[[1]unaligned.Cell[uint8]]()
	bytes1[[1]unaligned.Cell[uint8]]()
	cell8[[1]unaligned.Cell[int8]]()
	bytes1[[1]unaligned.Cell[int8]]()
}

// Every 2-byte member.
func members16() {
	bits16[[2]uint8]()
	bytes2[[2]uint8]()
	bits16[[2]int8]()
	bytes2[[2]int8]()
	bits16[[1]uint16]()
	bytes2[[1]uint16]()
	bits16[[1]int16]()
	bytes2[[1]int16]()
	bits16[uint16]()
	bytes2[uint16]()
	bits16[int16]()
	bytes2[int16]()
	bits16[i16named]()
	bytes2[i16named]()
	cell16[unaligned.Cell[[2]uint8]]()
	bytes2[unaligned.Cell[[2]uint8]]()
	cell16[unaligned.Cell[[2]int8]]()
	bytes2[unaligned.Cell[[2]int8]]()
	cell16[unaligned.Cell[[1]uint16]]()
	bytes2[unaligned.Cell[[1]uint16]]()
	cell16[unaligned.Cell[[1]int16]]()
	bytes2[unaligned.Cell[[1]int16]]()
	cell16[unaligned.Cell[uint16]]()
	bytes2[unaligned.Cell[uint16]]()
	cell16[unaligned.Cell[int16]]()
	bytes2[unaligned.Cell[int16]]()
	cell16[[2]unaligned.Cell[uint8]]()
	bytes2[[2]unaligned.Cell[uint8]]()
	cell16[[2]unaligned.Cell[int8]]()
	bytes2[[2]unaligned.Cell[int8]]()
	cell16[[1]unaligned.Cell[uint16]]()
	bytes2[[1]unaligned.Cell[uint16]]()
	cell16[[1]unaligned.Cell[int16]]()
	bytes2[[1]unaligned.Cell[int16]]()
}

// Every 4-byte member.
func members32() {
	bits32[[4]uint8]()
	bytes4[[4]uint8]()
	bits32[[4]int8]()
	bytes4[[4]int8]()
	bits32[[2]uint16]()
	bytes4[[2]uint16]()
	bits32[[2]int16]()
	bytes4[[2]int16]()
	bits32[[1]uint32]()
	bytes4[[1]uint32]()
	bits32[[1]int32]()
	bytes4[[1]int32]()
	bits32[[1]float32]()
	bytes4[[1]float32]()
	bits32[uint32]()
	bytes4[uint32]()
	bits32[int32]()
	bytes4[int32]()
	bits32[float32]()
	bytes4[float32]()
	bits32[f32named]()
	bytes4[f32named]()
	cell32[unaligned.Cell[[4]uint8]]()
	bytes4[unaligned.Cell[[4]uint8]]()
	cell32[unaligned.Cell[[4]int8]]()
	bytes4[unaligned.Cell[[4]int8]]()
	cell32[unaligned.Cell[[2]uint16]]()
	bytes4[unaligned.Cell[[2]uint16]]()
	cell32[unaligned.Cell[[2]int16]]()
	bytes4[unaligned.Cell[[2]int16]]()
	cell32[unaligned.Cell[[1]uint32]]()
	bytes4[unaligned.Cell[[1]uint32]]()
	cell32[unaligned.Cell[[1]int32]]()
	bytes4[unaligned.Cell[[1]int32]]()
	cell32[unaligned.Cell[[1]float32]]()
	bytes4[unaligned.Cell[[1]float32]]()
	cell32[unaligned.Cell[uint32]]()
	bytes4[unaligned.Cell[uint32]]()
	cell32[unaligned.Cell[int32]]()
	bytes4[unaligned.Cell[int32]]()
	cell32[unaligned.Cell[float32]]()
	bytes4[unaligned.Cell[float32]]()
	cell32[[4]unaligned.Cell[uint8]]()
	bytes4[[4]unaligned.Cell[uint8]]()
	cell32[[4]unaligned.Cell[int8]]()
	bytes4[[4]unaligned.Cell[int8]]()
	cell32[[2]unaligned.Cell[uint16]]()
	bytes4[[2]unaligned.Cell[uint16]]()
	cell32[[2]unaligned.Cell[int16]]()
	bytes4[[2]unaligned.Cell[int16]]()
	cell32[[1]unaligned.Cell[uint32]]()
	bytes4[[1]unaligned.Cell[uint32]]()
	cell32[[1]unaligned.Cell[int32]]()
	bytes4[[1]unaligned.Cell[int32]]()
	cell32[[1]unaligned.Cell[float32]]()
	bytes4[[1]unaligned.Cell[float32]]()
}

// Every 8-byte member.
func members64() {
	bits64[[8]uint8]()
	bytes8[[8]uint8]()
	bits64[[8]int8]()
	bytes8[[8]int8]()
	bits64[[4]uint16]()
	bytes8[[4]uint16]()
	bits64[[4]int16]()
	bytes8[[4]int16]()
	bits64[[2]uint32]()
	bytes8[[2]uint32]()
	bits64[[2]int32]()
	bytes8[[2]int32]()
	bits64[[2]float32]()
	bytes8[[2]float32]()
	bits64[[1]uint64]()
	bytes8[[1]uint64]()
	bits64[[1]int64]()
	bytes8[[1]int64]()
	bits64[[1]float64]()
	bytes8[[1]float64]()
	bits64[uint64]()
	bytes8[uint64]()
	bits64[int64]()
	bytes8[int64]()
	bits64[float64]()
	bytes8[float64]()
	bits64[u64named]()
	bytes8[u64named]()
	cell64[unaligned.Cell[[8]uint8]]()
	bytes8[unaligned.Cell[[8]uint8]]()
	cell64[unaligned.Cell[[8]int8]]()
	bytes8[unaligned.Cell[[8]int8]]()
	cell64[unaligned.Cell[[4]uint16]]()
	bytes8[unaligned.Cell[[4]uint16]]()
	cell64[unaligned.Cell[[4]int16]]()
	bytes8[unaligned.Cell[[4]int16]]()
	cell64[unaligned.Cell[[2]uint32]]()
	bytes8[unaligned.Cell[[2]uint32]]()
	cell64[unaligned.Cell[[2]int32]]()
	bytes8[unaligned.Cell[[2]int32]]()
	cell64[unaligned.Cell[[2]float32]]()
	bytes8[unaligned.Cell[[2]float32]]()
	cell64[unaligned.Cell[[1]uint64]]()
	bytes8[unaligned.Cell[[1]uint64]]()
	cell64[unaligned.Cell[[1]int64]]()
	bytes8[unaligned.Cell[[1]int64]]()
	cell64[unaligned.Cell[[1]float64]]()
	bytes8[unaligned.Cell[[1]float64]]()
	cell64[unaligned.Cell[uint64]]()
	bytes8[unaligned.Cell[uint64]]()
	cell64[unaligned.Cell[int64]]()
	bytes8[unaligned.Cell[int64]]()
	cell64[unaligned.Cell[float64]]()
	bytes8[unaligned.Cell[float64]]()
	cell64[[8]unaligned.Cell[uint8]]()
	bytes8[[8]unaligned.Cell[uint8]]()
	cell64[[8]unaligned.Cell[int8]]()
	bytes8[[8]unaligned.Cell[int8]]()
	cell64[[4]unaligned.Cell[uint16]]()
	bytes8[[4]unaligned.Cell[uint16]]()
	cell64[[4]unaligned.Cell[int16]]()
	bytes8[[4]unaligned.Cell[int16]]()
	cell64[[2]unaligned.Cell[uint32]]()
	bytes8[[2]unaligned.Cell[uint32]]()
	cell64[[2]unaligned.Cell[int32]]()
	bytes8[[2]unaligned.Cell[int32]]()
	cell64[[2]unaligned.Cell[float32]]()
	bytes8[[2]unaligned.Cell[float32]]()
	cell64[[1]unaligned.Cell[uint64]]()
	bytes8[[1]unaligned.Cell[uint64]]()
	cell64[[1]unaligned.Cell[int64]]()
	bytes8[[1]unaligned.Cell[int64]]()
	cell64[[1]unaligned.Cell[float64]]()
	bytes8[[1]unaligned.Cell[float64]]()
}

// Every 16-byte member.
func members128() {
	bits128[[16]uint8]()
	bytes16[[16]uint8]()
	bits128[[16]int8]()
	bytes16[[16]int8]()
	bits128[[8]uint16]()
	bytes16[[8]uint16]()
	bits128[[8]int16]()
	bytes16[[8]int16]()
	bits128[[4]uint32]()
	bytes16[[4]uint32]()
	bits128[[4]int32]()
	bytes16[[4]int32]()
	bits128[[4]float32]()
	bytes16[[4]float32]()
	bits128[[2]uint64]()
	bytes16[[2]uint64]()
	bits128[[2]int64]()
	bytes16[[2]int64]()
	bits128[[2]float64]()
	bytes16[[2]float64]()
	bits128[i64x2named]()
	bytes16[i64x2named]()
	cell128[unaligned.Cell[[16]uint8]]()
	bytes16[unaligned.Cell[[16]uint8]]()
	cell128[unaligned.Cell[[16]int8]]()
	bytes16[unaligned.Cell[[16]int8]]()
	cell128[unaligned.Cell[[8]uint16]]()
	bytes16[unaligned.Cell[[8]uint16]]()
	cell128[unaligned.Cell[[8]int16]]()
	bytes16[unaligned.Cell[[8]int16]]()
	cell128[unaligned.Cell[[4]uint32]]()
	bytes16[unaligned.Cell[[4]uint32]]()
	cell128[unaligned.Cell[[4]int32]]()
	bytes16[unaligned.Cell[[4]int32]]()
	cell128[unaligned.Cell[[4]float32]]()
	bytes16[unaligned.Cell[[4]float32]]()
	cell128[unaligned.Cell[[2]uint64]]()
	bytes16[unaligned.Cell[[2]uint64]]()
	cell128[unaligned.Cell[[2]int64]]()
	bytes16[unaligned.Cell[[2]int64]]()
	cell128[unaligned.Cell[[2]float64]]()
	bytes16[unaligned.Cell[[2]float64]]()
	cell128[[16]unaligned.Cell[uint8]]()
	bytes16[[16]unaligned.Cell[uint8]]()
	cell128[[16]unaligned.Cell[int8]]()
	bytes16[[16]unaligned.Cell[int8]]()
	cell128[[8]unaligned.Cell[uint16]]()
	bytes16[[8]unaligned.Cell[uint16]]()
	cell128[[8]unaligned.Cell[int16]]()
	bytes16[[8]unaligned.Cell[int16]]()
	cell128[[4]unaligned.Cell[uint32]]()
	bytes16[[4]unaligned.Cell[uint32]]()
	cell128[[4]unaligned.Cell[int32]]()
	bytes16[[4]unaligned.Cell[int32]]()
	cell128[[4]unaligned.Cell[float32]]()
	bytes16[[4]unaligned.Cell[float32]]()
	cell128[[2]unaligned.Cell[uint64]]()
	bytes16[[2]unaligned.Cell[uint64]]()
	cell128[[2]unaligned.Cell[int64]]()
	bytes16[[2]unaligned.Cell[int64]]()
	cell128[[2]unaligned.Cell[float64]]()
	bytes16[[2]unaligned.Cell[float64]]()
}

// Every 32-byte member.
func members256() {
	bits256[[32]uint8]()
	bytes32[[32]uint8]()
	bits256[[32]int8]()
	bytes32[[32]int8]()
	bits256[[16]uint16]()
	bytes32[[16]uint16]()
	bits256[[16]int16]()
	bytes32[[16]int16]()
	bits256[[8]uint32]()
	bytes32[[8]uint32]()
	bits256[[8]int32]()
	bytes32[[8]int32]()
	bits256[[8]float32]()
	bytes32[[8]float32]()
	bits256[[4]uint64]()
	bytes32[[4]uint64]()
	bits256[[4]int64]()
	bytes32[[4]int64]()
	bits256[[4]float64]()
	bytes32[[4]float64]()
	bits256[f32x8named]()
	bytes32[f32x8named]()
	cell256[unaligned.Cell[[32]uint8]]()
	bytes32[unaligned.Cell[[32]uint8]]()
	cell256[unaligned.Cell[[32]int8]]()
	bytes32[unaligned.Cell[[32]int8]]()
	cell256[unaligned.Cell[[16]uint16]]()
	bytes32[unaligned.Cell[[16]uint16]]()
	cell256[unaligned.Cell[[16]int16]]()
	bytes32[unaligned.Cell[[16]int16]]()
	cell256[unaligned.Cell[[8]uint32]]()
	bytes32[unaligned.Cell[[8]uint32]]()
	cell256[unaligned.Cell[[8]int32]]()
	bytes32[unaligned.Cell[[8]int32]]()
	cell256[unaligned.Cell[[8]float32]]()
	bytes32[unaligned.Cell[[8]float32]]()
	cell256[unaligned.Cell[[4]uint64]]()
	bytes32[unaligned.Cell[[4]uint64]]()
	cell256[unaligned.Cell[[4]int64]]()
	bytes32[unaligned.Cell[[4]int64]]()
	cell256[unaligned.Cell[[4]float64]]()
	bytes32[unaligned.Cell[[4]float64]]()
	cell256[[32]unaligned.Cell[uint8]]()
	bytes32[[32]unaligned.Cell[uint8]]()
	cell256[[32]unaligned.Cell[int8]]()
	bytes32[[32]unaligned.Cell[int8]]()
	cell256[[16]unaligned.Cell[uint16]]()
	bytes32[[16]unaligned.Cell[uint16]]()
	cell256[[16]unaligned.Cell[int16]]()
	bytes32[[16]unaligned.Cell[int16]]()
	cell256[[8]unaligned.Cell[uint32]]()
	bytes32[[8]unaligned.Cell[uint32]]()
	cell256[[8]unaligned.Cell[int32]]()
	bytes32[[8]unaligned.Cell[int32]]()
	cell256[[8]unaligned.Cell[float32]]()
	bytes32[[8]unaligned.Cell[float32]]()
	cell256[[4]unaligned.Cell[uint64]]()
	bytes32[[4]unaligned.Cell[uint64]]()
	cell256[[4]unaligned.Cell[int64]]()
	bytes32[[4]unaligned.Cell[int64]]()
	cell256[[4]unaligned.Cell[float64]]()
	bytes32[[4]unaligned.Cell[float64]]()
}

// Every 64-byte member.
func members512() {
	bits512[[64]uint8]()
	bytes64[[64]uint8]()
	bits512[[64]int8]()
	bytes64[[64]int8]()
	bits512[[32]uint16]()
	bytes64[[32]uint16]()
	bits512[[32]int16]()
	bytes64[[32]int16]()
	bits512[[16]uint32]()
	bytes64[[16]uint32]()
	bits512[[16]int32]()
	bytes64[[16]int32]()
	bits512[[16]float32]()
	bytes64[[16]float32]()
	bits512[[8]uint64]()
	bytes64[[8]uint64]()
	bits512[[8]int64]()
	bytes64[[8]int64]()
	bits512[[8]float64]()
	bytes64[[8]float64]()
	bits512[u8x64named]()
	bytes64[u8x64named]()
	cell512[unaligned.Cell[[64]uint8]]()
	bytes64[unaligned.Cell[[64]uint8]]()
	cell512[unaligned.Cell[[64]int8]]()
	bytes64[unaligned.Cell[[64]int8]]()
	cell512[unaligned.Cell[[32]uint16]]()
	bytes64[unaligned.Cell[[32]uint16]]()
	cell512[unaligned.Cell[[32]int16]]()
	bytes64[unaligned.Cell[[32]int16]]()
	cell512[unaligned.Cell[[16]uint32]]()
	bytes64[unaligned.Cell[[16]uint32]]()
	cell512[unaligned.Cell[[16]int32]]()
	bytes64[unaligned.Cell[[16]int32]]()
	cell512[unaligned.Cell[[16]float32]]()
	bytes64[unaligned.Cell[[16]float32]]()
	cell512[unaligned.Cell[[8]uint64]]()
	bytes64[unaligned.Cell[[8]uint64]]()
	cell512[unaligned.Cell[[8]int64]]()
	bytes64[unaligned.Cell[[8]int64]]()
	cell512[unaligned.Cell[[8]float64]]()
	bytes64[unaligned.Cell[[8]float64]]()
	cell512[[64]unaligned.Cell[uint8]]()
	bytes64[[64]unaligned.Cell[uint8]]()
	cell512[[64]unaligned.Cell[int8]]()
	bytes64[[64]unaligned.Cell[int8]]()
	cell512[[32]unaligned.Cell[uint16]]()
	bytes64[[32]unaligned.Cell[uint16]]()
	cell512[[32]unaligned.Cell[int16]]()
	bytes64[[32]unaligned.Cell[int16]]()
	cell512[[16]unaligned.Cell[uint32]]()
	bytes64[[16]unaligned.Cell[uint32]]()
	cell512[[16]unaligned.Cell[int32]]()
	bytes64[[16]unaligned.Cell[int32]]()
	cell512[[16]unaligned.Cell[float32]]()
	bytes64[[16]unaligned.Cell[float32]]()
	cell512[[8]unaligned.Cell[uint64]]()
	bytes64[[8]unaligned.Cell[uint64]]()
	cell512[[8]unaligned.Cell[int64]]()
	bytes64[[8]unaligned.Cell[int64]]()
	cell512[[8]unaligned.Cell[float64]]()
	bytes64[[8]unaligned.Cell[float64]]()
}

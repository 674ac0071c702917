package pack

import "encoding/binary"

// WordsToBytes serializes words as little-endian bytes, 4 bytes per word,
// regardless of host byte order. It is the bridge between a Pack's native
// []uint32 buffer and a byte-oriented transport such as package framer.
func WordsToBytes(words []uint32) []byte {
	out := make([]byte, len(words)*4)
	for i, w := range words {
		binary.LittleEndian.PutUint32(out[i*4:], w)
	}
	return out
}

// BytesToWords deserializes a little-endian byte slice produced by
// WordsToBytes back into words. len(b) must be a multiple of 4; any
// trailing bytes that don't form a whole word are ignored.
func BytesToWords(b []byte) []uint32 {
	n := len(b) / 4
	out := make([]uint32, n)
	for i := 0; i < n; i++ {
		out[i] = binary.LittleEndian.Uint32(b[i*4:])
	}
	return out
}

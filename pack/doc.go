// Package pack implements bigpacks, a word-aligned, in-place, seekable
// binary serialization codec.
//
// A Pack is a cursor over a caller-supplied array of 32-bit words. It
// encodes and decodes self-describing typed elements — none, booleans,
// signed integers, floats, strings, binary blocks, and nested list/map
// containers — in that buffer; the cursor stack is a fixed-size array inside
// the Pack. PutString and PutBinary assemble each block in a temporary slice
// before copying it into the buffer, so those two calls allocate. The same
// cursor type both writes and reads: a response can be built in place over
// the buffer a request was just read from (see package postman).
//
// Every element begins with a header word whose low bits identify its
// kind; see tags.go for the exact bit layout. Multi-word payloads (64-bit
// integers, 64-bit floats, block and container bodies) are stored
// little-endian at word granularity, independent of host byte order.
//
// All mutating methods return a bool success flag instead of an error:
// capacity and structural failures are expected, frequent, and recoverable
// by construction, so returning a
// typed error for each would just be ceremony around a single bit of
// information the caller already checks. Reads never overrun the buffer,
// writes never leave a partial element behind on failure, and the zero
// value of a Pack is not usable until SetBuffer is called.
package pack

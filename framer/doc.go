// Package framer implements HDLC-style byte framing for half-duplex
// transmission of bigpacks payloads: each frame is a flag-delimited,
// byte-stuffed, CRC-32-protected sequence of bytes.
//
// Wire format: 0x7E <stuffed payload> <stuffed little-endian CRC-32> 0x7E.
// Inside the stuffed region, 0x7E and 0x7D are each replaced by 0x7D
// followed by the original byte XOR 0x20. The CRC is computed over the
// unstuffed payload only; a frame is valid iff it fits the receive buffer,
// carries at least three bytes, and the running CRC over payload+trailer
// equals the fixed residue 0x2144DF1C.
//
// Frame implements the byte-oriented receive/send state machines directly
// (PutReceivedByte / GetByteToSend) so a caller that owns raw byte I/O —
// a UART, a socket, a test harness — can drive it one byte at a time with
// no internal suspension points. Reader and Writer wrap that state machine
// behind io.Reader and io.Writer for the common case of framing over an
// existing byte stream, propagating code.hybscloud.com/iox's non-blocking
// control-flow sentinels when the underlying transport is non-blocking.
package framer

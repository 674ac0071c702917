package framer

import "hash/crc32"

// Mode selects which direction a Frame's state machine is currently
// driving.
type Mode uint8

const (
	Receiving Mode = iota
	Sending
)

const (
	flagByte     = 0x7E
	escapeByte   = 0x7D
	escapeXor    = 0x20
	magicResidue = 0x2144DF1C
	crcTrailer   = 4
)

// Frame is the core HDLC-style byte state machine: (buffer, max_length,
// length, index, crc, escape, start, mode) exactly as specified. It
// performs no I/O of its own — PutReceivedByte consumes one incoming byte
// at a time, GetByteToSend produces one outgoing byte at a time — so a
// caller can drive it from any transport, blocking or not, without the
// state machine itself ever suspending.
type Frame struct {
	buf       []byte
	maxLength int
	length    int
	index     int
	crc       uint32
	escape    bool
	start     bool
	mode      Mode
}

// SetBuffer binds f to buf and resets it to Receiving with no frame in
// progress.
func (f *Frame) SetBuffer(buf []byte) {
	f.buf = buf
	f.maxLength = len(buf)
	f.SetMode(Receiving)
	f.length = 0
}

// Mode reports the frame's current direction.
func (f *Frame) Mode() Mode { return f.mode }

// SetMode switches direction and resets the per-frame transmission state
// (index, crc, escape, start). It does not touch Length, so a sender sets
// Length before switching to Sending.
func (f *Frame) SetMode(m Mode) {
	f.mode = m
	f.index = 0
	f.crc = 0
	f.escape = false
	f.start = true
}

// Length returns the payload byte-length of the most recently received
// valid frame, or the payload length configured to transmit.
func (f *Frame) Length() int { return f.length }

// SetLength sets the payload length to transmit. Call before SetMode(Sending).
func (f *Frame) SetLength(n int) { f.length = n }

// Payload returns the payload bytes of the most recently received valid
// frame. Valid only immediately after PutReceivedByte reports a valid
// frame.
func (f *Frame) Payload() []byte { return f.buf[:f.length] }

// PutReceivedByte feeds one incoming byte to the receive state machine. It
// returns true iff value is the flag byte terminating a valid frame: one
// with at least three payload+CRC bytes accumulated, none of them dropped
// for lack of buffer space, and a running CRC equal to the fixed magic
// residue. On any flag byte — valid or not — the state resets for the next
// frame; Length is updated only for a valid frame. Bytes beyond maxLength
// are folded into the CRC but are not stored, and a frame that overflowed
// the buffer fails validation.
//
// PutReceivedByte is a no-op, always returning false, while the frame is
// in Sending mode.
func (f *Frame) PutReceivedByte(value byte) bool {
	if f.mode != Receiving {
		return false
	}
	switch value {
	case flagByte:
		valid := f.index > 2 && f.index <= f.maxLength && f.crc == magicResidue
		if valid {
			f.length = f.index - crcTrailer
		}
		f.SetMode(Receiving)
		return valid
	case escapeByte:
		f.escape = true
		return false
	default:
		v := value
		if f.escape {
			v ^= escapeXor
			f.escape = false
		}
		f.crc = crc32.Update(f.crc, crc32.IEEETable, []byte{v})
		if f.index < f.maxLength {
			f.buf[f.index] = v
			f.index++
		} else {
			// Mark the overflow: an index past maxLength fails the flag check.
			f.index = f.maxLength + 1
		}
		return false
	}
}

// GetByteToSend produces the next outgoing byte of the frame in progress:
// the leading flag, the stuffed payload, the stuffed little-endian CRC-32
// trailer, and the trailing flag, in that order. Once the trailing flag
// has been produced, the frame switches back to Receiving. While idle (not
// in Sending mode), it emits the flag byte as inter-frame fill.
func (f *Frame) GetByteToSend() byte {
	if f.mode != Sending {
		return flagByte
	}
	if f.start {
		f.start = false
		return flagByte
	}
	if f.index == f.length+crcTrailer {
		f.SetMode(Receiving)
		return flagByte
	}
	if f.index == f.length {
		f.buf[f.index+0] = byte(f.crc)
		f.buf[f.index+1] = byte(f.crc >> 8)
		f.buf[f.index+2] = byte(f.crc >> 16)
		f.buf[f.index+3] = byte(f.crc >> 24)
	}
	if f.escape {
		f.escape = false
		v := f.buf[f.index]
		f.crc = crc32.Update(f.crc, crc32.IEEETable, []byte{v})
		f.index++
		return v ^ escapeXor
	}
	if f.buf[f.index] == flagByte || f.buf[f.index] == escapeByte {
		f.escape = true
		return escapeByte
	}
	v := f.buf[f.index]
	f.crc = crc32.Update(f.crc, crc32.IEEETable, []byte{v})
	f.index++
	return v
}

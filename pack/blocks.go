package pack

import "encoding/binary"

// PutString appends s as a NUL-terminated string block. The payload is
// padded to a whole number of words; the terminator and any padding bytes
// beyond it are zeroed so GetString and Equals can rely on NUL
// termination. It fails, writing nothing, if the block would not fit.
func (p *Pack) PutString(s string) bool {
	byteLen := len(s) + 1
	wordCount := (byteLen + 3) / 4
	remainder := byteLen - (wordCount-1)*4
	header, ok := makeBlockHeader(kindString, wordCount, remainder)
	if !ok {
		return false
	}
	payload := make([]byte, wordCount*4)
	copy(payload, s) // remainder of payload, including the NUL, stays zero

	ws := make([]uint32, 1+wordCount)
	ws[0] = header
	for i := 0; i < wordCount; i++ {
		ws[1+i] = binary.LittleEndian.Uint32(payload[i*4:])
	}
	return p.putWords(ws)
}

// PutBinary appends data as an opaque binary block; its length is exact,
// given in words, with no implied terminator.
func (p *Pack) PutBinary(data []uint32) bool {
	header, ok := makeBlockHeader(kindBinary, len(data), 4)
	if !ok {
		return false
	}
	ws := make([]uint32, 1+len(data))
	ws[0] = header
	copy(ws[1:], data)
	return p.putWords(ws)
}

// blockByte returns the i'th payload byte (0-based, little-endian within
// each word) of a block spanning wc words starting at word index base.
func (p *Pack) blockByte(base, wc, i int) (byte, bool) {
	if i < 0 || i >= wc*4 {
		return 0, false
	}
	idx := base + i/4
	if idx < 0 || idx >= len(p.buf) {
		return 0, false
	}
	return byte(p.buf[idx] >> uint(8*(i%4))), true
}

// GetString copies the current string element's content into dst,
// truncating if necessary, and always NUL-terminates within dst's
// capacity (writing nothing if dst is empty). It returns the number of
// source payload words consumed — not the number of bytes copied — so
// callers can skip over the element regardless of truncation. If the
// current element is not a string, dst (if non-empty) is set to an empty
// string and 0 is returned.
func (p *Pack) GetString(dst []byte) int {
	h := p.currentHeader()
	if headerKind(h) != kindString {
		if len(dst) > 0 {
			dst[0] = 0
		}
		return 0
	}
	wc := blockWordCount(h)
	base := p.top().cur + 1
	contentLen := blockByteLen(h) - 1 // the header's remainder covers the NUL terminator too

	di := 0
	for i := 0; i < contentLen; i++ {
		b, ok := p.blockByte(base, wc, i)
		if !ok {
			break
		}
		if di < len(dst)-1 {
			dst[di] = b
			di++
		}
	}
	if len(dst) > 0 {
		dst[di] = 0
	}
	return wc
}

// GetBinary copies the current binary element's words into dst, up to
// len(dst) words, and returns the number of words copied. If the current
// element is not binary, 0 is returned and dst is untouched.
func (p *Pack) GetBinary(dst []uint32) int {
	h := p.currentHeader()
	if headerKind(h) != kindBinary {
		return 0
	}
	wc := blockWordCount(h)
	base := p.top().cur + 1
	n := wc
	if n > len(dst) {
		n = len(dst)
	}
	for i := 0; i < n; i++ {
		idx := base + i
		if idx >= 0 && idx < len(p.buf) {
			dst[i] = p.buf[idx]
		}
	}
	return n
}

// Equals reports whether the current element is a string whose content
// matches s byte-for-byte (s must not itself contain a NUL).
func (p *Pack) Equals(s string) bool {
	h := p.currentHeader()
	if headerKind(h) != kindString {
		return false
	}
	if blockByteLen(h)-1 != len(s) {
		return false
	}
	wc := blockWordCount(h)
	base := p.top().cur + 1
	for i := 0; i < len(s); i++ {
		b, ok := p.blockByte(base, wc, i)
		if !ok || b != s[i] {
			return false
		}
	}
	return true
}

// Match is Equals followed by Next on success — the idiom for
// random-access traversal of map keys: check each key with Match until one
// matches, then read the value.
func (p *Pack) Match(s string) bool {
	if p.Equals(s) {
		p.Next()
		return true
	}
	return false
}

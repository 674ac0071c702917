package framer

import (
	"bytes"
	"testing"
)

func sendFrame(t *testing.T, payload []byte) []byte {
	t.Helper()
	buf := make([]byte, len(payload)+crcTrailer)
	copy(buf, payload)
	var f Frame
	f.SetBuffer(buf)
	f.SetLength(len(payload))
	f.SetMode(Sending)

	var wire []byte
	for {
		wire = append(wire, f.GetByteToSend())
		if f.Mode() == Receiving {
			break
		}
	}
	return wire
}

func TestFrameRoundTrip(t *testing.T) {
	cases := []struct {
		name    string
		payload []byte
	}{
		{"empty", nil},
		{"ascii", []byte("hello, postman")},
		{"contains flag byte", []byte{0x01, flagByte, 0x02}},
		{"contains escape byte", []byte{0x01, escapeByte, 0x02}},
		{"all stuffable bytes", []byte{flagByte, escapeByte, flagByte, escapeByte}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			wire := sendFrame(t, tc.payload)

			if wire[0] != flagByte || wire[len(wire)-1] != flagByte {
				t.Fatalf("frame not flag-delimited: %x", wire)
			}

			recvBuf := make([]byte, 256)
			var f Frame
			f.SetBuffer(recvBuf)
			var valid bool
			for _, b := range wire[1:] {
				valid = f.PutReceivedByte(b)
			}
			if !valid {
				t.Fatalf("frame rejected as invalid")
			}
			if !bytes.Equal(f.Payload(), tc.payload) {
				t.Fatalf("payload = %x, want %x", f.Payload(), tc.payload)
			}
		})
	}
}

func TestFrameRejectsCorruptedByte(t *testing.T) {
	payload := []byte("resource state")
	wire := sendFrame(t, payload)

	// Flip a bit inside the stuffed payload region, away from either flag.
	corruptAt := len(wire) / 2
	wire[corruptAt] ^= 0x01

	recvBuf := make([]byte, 256)
	var f Frame
	f.SetBuffer(recvBuf)
	var valid bool
	for _, b := range wire[1:] {
		valid = f.PutReceivedByte(b)
	}
	if valid {
		t.Fatalf("corrupted frame reported valid")
	}
}

func TestFrameRejectsTruncatedFrame(t *testing.T) {
	wire := sendFrame(t, []byte("truncate me"))

	recvBuf := make([]byte, 256)
	var f Frame
	f.SetBuffer(recvBuf)
	var valid bool
	// Feed only the first byte after the leading flag, then close the frame early.
	valid = f.PutReceivedByte(wire[1])
	valid = f.PutReceivedByte(flagByte)
	if valid {
		t.Fatalf("truncated frame reported valid")
	}
}

func TestFrameIdleEmitsFlagFill(t *testing.T) {
	var f Frame
	f.SetBuffer(make([]byte, 16))
	for i := 0; i < 3; i++ {
		if got := f.GetByteToSend(); got != flagByte {
			t.Fatalf("idle byte %d = %#x, want flag", i, got)
		}
	}
}

func TestFrameRecoversAfterInvalidFrame(t *testing.T) {
	recvBuf := make([]byte, 256)
	var f Frame
	f.SetBuffer(recvBuf)

	// An invalid frame: just a lone flag immediately followed by another flag
	// (index <= 2, always invalid regardless of CRC).
	f.PutReceivedByte(flagByte)
	if valid := f.PutReceivedByte(flagByte); valid {
		t.Fatalf("empty frame reported valid")
	}

	wire := sendFrame(t, []byte("ok now"))
	var valid bool
	for _, b := range wire[1:] {
		valid = f.PutReceivedByte(b)
	}
	if !valid {
		t.Fatalf("frame after a discarded invalid one was rejected")
	}
	if string(f.Payload()) != "ok now" {
		t.Fatalf("payload = %q, want %q", f.Payload(), "ok now")
	}
}

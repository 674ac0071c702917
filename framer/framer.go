package framer

import (
	"bufio"
	"io"
)

// NewReader returns an io.Reader that reads HDLC-framed, CRC-validated
// messages from r. Invalid frames (bad CRC, truncated) are silently
// discarded; Read blocks (per RetryDelay) or returns ErrWouldBlock for the
// next valid frame.
func NewReader(r io.Reader, opts ...Option) *Reader {
	o := defaultOptions
	for _, fn := range opts {
		fn(&o)
	}
	rd := &Reader{r: r, br: bufio.NewReader(r), opts: o}
	rd.frame.SetBuffer(make([]byte, o.MaxLength+crcTrailer))
	return rd
}

// NewWriter returns an io.Writer that frames each Write call as one
// HDLC message with a CRC-32 trailer.
func NewWriter(w io.Writer, opts ...Option) *Writer {
	o := defaultOptions
	for _, fn := range opts {
		fn(&o)
	}
	wr := &Writer{w: w, opts: o}
	wr.payload = make([]byte, 0, o.MaxLength+crcTrailer)
	return wr
}

// NewReadWriter returns an io.ReadWriter that reads and writes framed
// messages over independent state machines sharing no state.
func NewReadWriter(r io.Reader, w io.Writer, opts ...Option) *ReadWriter {
	return &ReadWriter{Reader: NewReader(r, opts...), Writer: NewWriter(w, opts...)}
}

// NewPipe returns a synchronous in-memory framing pipe: bytes written
// through writer arrive, fully framed and validated, as payloads read from
// reader.
func NewPipe(opts ...Option) (reader io.Reader, writer io.Writer) {
	r, w := io.Pipe()
	return NewReader(r, opts...), NewWriter(w, opts...)
}

// Reader reads HDLC-framed messages from an underlying byte stream.
type Reader struct {
	r     io.Reader
	br    *bufio.Reader
	frame Frame
	opts  Options
}

func (rd *Reader) readByte() (byte, error) {
	for {
		b, err := rd.br.ReadByte()
		if err == nil {
			return b, nil
		}
		if err == ErrWouldBlock {
			if waitOnceOnWouldBlock(rd.opts.RetryDelay) {
				continue
			}
		}
		return 0, err
	}
}

// Read returns the payload of the next valid frame. Frames that fail CRC
// validation are discarded and Read continues reading toward the next one.
// If p is too small to hold the payload, Read returns io.ErrShortBuffer
// with the truncated prefix copied into p.
func (rd *Reader) Read(p []byte) (int, error) {
	if rd.r == nil {
		return 0, ErrInvalidArgument
	}
	for {
		b, err := rd.readByte()
		if err != nil {
			return 0, err
		}
		valid := rd.frame.PutReceivedByte(b)
		if b != flagByte {
			continue
		}
		if !valid {
			if rd.opts.Logger != nil {
				rd.opts.Logger.Warn("framer: discarded invalid frame")
			}
			continue
		}
		n := copy(p, rd.frame.Payload())
		if n < rd.frame.Length() {
			if rd.opts.Logger != nil {
				rd.opts.Logger.Warn("framer: payload truncated", "length", rd.frame.Length(), "bufsize", len(p))
			}
			return n, io.ErrShortBuffer
		}
		return n, nil
	}
}

// Writer writes each Write call as one HDLC-framed message.
type Writer struct {
	w       io.Writer
	frame   Frame
	payload []byte // staging buffer: payload bytes plus 4 bytes reserved for the CRC trailer
	stage   []byte // staging buffer: the fully stuffed wire bytes for one frame
	opts    Options
}

// Write frames p as one message and sends it to the underlying writer. It
// fails with ErrTooLong without writing anything if p exceeds MaxLength.
func (wr *Writer) Write(p []byte) (int, error) {
	if wr.w == nil {
		return 0, ErrInvalidArgument
	}
	if len(p) > wr.opts.MaxLength {
		return 0, ErrTooLong
	}

	need := len(p) + crcTrailer
	if cap(wr.payload) < need {
		wr.payload = make([]byte, need)
	} else {
		wr.payload = wr.payload[:need]
	}
	copy(wr.payload, p)

	wr.frame.SetBuffer(wr.payload)
	wr.frame.SetLength(len(p))
	wr.frame.SetMode(Sending)

	maxStage := 2 + 2*need // worst case: every byte stuffed, plus the two flags
	if cap(wr.stage) < maxStage {
		wr.stage = make([]byte, 0, maxStage)
	} else {
		wr.stage = wr.stage[:0]
	}
	for {
		wr.stage = append(wr.stage, wr.frame.GetByteToSend())
		if wr.frame.Mode() == Receiving {
			break
		}
	}

	if err := wr.writeAll(wr.stage); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (wr *Writer) writeAll(b []byte) error {
	total := 0
	for total < len(b) {
		n, err := wr.w.Write(b[total:])
		total += n
		if err != nil {
			if err == ErrWouldBlock || err == ErrMore {
				if waitOnceOnWouldBlock(wr.opts.RetryDelay) {
					continue
				}
			}
			return err
		}
		if n == 0 {
			return io.ErrShortWrite
		}
	}
	return nil
}

// ReadWriter groups a Reader and a Writer over independent transports (or
// independent directions of one full-duplex transport).
type ReadWriter struct {
	*Reader
	*Writer
}

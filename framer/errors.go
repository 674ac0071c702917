package framer

import (
	"errors"

	"code.hybscloud.com/iox"
)

var (
	// ErrInvalidArgument reports a nil reader/writer or an unconfigured Reader/Writer.
	ErrInvalidArgument = errors.New("framer: invalid argument")

	// ErrTooLong reports that a payload exceeds the configured maximum length.
	ErrTooLong = errors.New("framer: payload too long")
)

// These are re-exposed as package-level aliases so callers can reference
// the semantic control-flow errors without importing iox directly — the
// same convenience the teacher lineage's framing layer provides.
var (
	// ErrWouldBlock means "no further progress without waiting". It is an
	// expected, non-failure control-flow signal for non-blocking I/O.
	ErrWouldBlock = iox.ErrWouldBlock

	// ErrMore means the underlying operation remains active and more data
	// is expected; it is not io.EOF.
	ErrMore = iox.ErrMore
)

package framer

import (
	"time"

	"github.com/charmbracelet/log"
)

const defaultMaxLength = 4096

// Options configures a Reader/Writer/ReadWriter.
type Options struct {
	// MaxLength caps the payload length a Reader will accept and a Writer
	// will send. Zero selects defaultMaxLength.
	MaxLength int

	// RetryDelay controls how Read/Write handle iox.ErrWouldBlock from the
	// underlying transport:
	//   - negative: nonblock, return ErrWouldBlock immediately
	//   - zero: yield and retry
	//   - positive: sleep for the duration and retry
	RetryDelay time.Duration

	// Logger, if non-nil, receives the Reader's frame-validity events: frames
	// discarded as invalid (bad CRC, truncated, or longer than the buffer)
	// and payloads truncated to fit the caller's buffer. The Writer logs
	// nothing. Nil means no logging; the hot path stays allocation-free
	// either way.
	Logger *log.Logger
}

var defaultOptions = Options{
	MaxLength:  defaultMaxLength,
	RetryDelay: -1,
}

// Option configures Options.
type Option func(*Options)

// WithMaxLength sets the maximum payload length. Zero selects
// defaultMaxLength.
func WithMaxLength(n int) Option {
	if n == 0 {
		n = defaultMaxLength
	}
	return func(o *Options) { o.MaxLength = n }
}

// WithRetryDelay sets the retry/wait policy used when the underlying
// transport returns iox.ErrWouldBlock.
func WithRetryDelay(d time.Duration) Option {
	return func(o *Options) { o.RetryDelay = d }
}

// WithBlock enables cooperative blocking (yield-and-retry) on ErrWouldBlock.
func WithBlock() Option {
	return func(o *Options) { o.RetryDelay = 0 }
}

// WithNonblock forces non-blocking behavior (return ErrWouldBlock immediately).
func WithNonblock() Option {
	return func(o *Options) { o.RetryDelay = -1 }
}

// WithLogger attaches a structured logger for frame-validity events.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

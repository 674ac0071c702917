package postman

import (
	"github.com/charmbracelet/log"

	"github.com/francc/bigpacks/pack"
)

// defaultCapacity bounds the resource table when WithCapacity is not given.
const defaultCapacity = 8

// Handler answers one request already routed to its resource. It reads any
// remaining request arguments from reader and writes the response body —
// already positioned inside the open response list — to writer. Its return
// value becomes the response's status.
type Handler func(method Method, reader, writer *pack.Pack) Status

type resource struct {
	path    string
	handler Handler
}

// Postman routes pack-encoded requests to registered resources and writes
// the response back into the same buffer the request arrived in.
type Postman struct {
	reader    pack.Pack
	writer    pack.Pack
	resources []resource
	capacity  int
	logger    *log.Logger
}

// Option configures a Postman.
type Option func(*Postman)

// WithCapacity sets the maximum number of resources the table can hold.
func WithCapacity(n int) Option {
	return func(pm *Postman) { pm.capacity = n }
}

// WithLogger attaches a structured logger for dispatch events: the method,
// path, and resulting status of every request that reaches its request list.
// Requests rejected with 4.00 Bad Request are not logged.
func WithLogger(l *log.Logger) Option {
	return func(pm *Postman) { pm.logger = l }
}

// New returns a Postman with an empty resource table.
func New(opts ...Option) *Postman {
	pm := &Postman{capacity: defaultCapacity}
	for _, fn := range opts {
		fn(pm)
	}
	pm.resources = make([]resource, 0, pm.capacity)
	return pm
}

// RegisterResource binds path to handler. It reports false, registering
// nothing, once the table is at capacity.
func (pm *Postman) RegisterResource(path string, handler Handler) bool {
	if len(pm.resources) >= pm.capacity {
		return false
	}
	pm.resources = append(pm.resources, resource{path: path, handler: handler})
	return true
}

// HandlePack parses one request out of buf[0:length], dispatches it, and
// writes the response into buf in place. max_length is the full usable
// size of buf; the last word is reserved for the framer's CRC trailer when
// buf is transported as a framed message. It returns the response's length
// in words (buf[0:n] is the response to send). A request rejected before its
// list is reached (missing or zero method token) yields n == 0, although the
// 4.00 status token is still written at the start of buf.
func (pm *Postman) HandlePack(buf []uint32, length, maxLength int) int {
	status := NotFound
	var methodTok uint32

	pm.reader.SetBuffer(buf[:length])
	pm.writer.SetBuffer(buf[:maxLength-1])

	switch {
	case !pm.reader.Next() || !pm.reader.IsInteger():
		status = BadRequest
	default:
		methodTok = uint32(pm.reader.GetInteger())
		if methodTok == 0 {
			status = BadRequest
			break
		}
		// A status token's code byte (0x21 and up) is outside the inline
		// small-int range, so the token always takes two words. The response
		// body starts after that slot, or where the request list starts if
		// that is later.
		if !pm.reader.Next() || !pm.writer.SetOffset(max(pm.reader.Offset(), 8)) || !pm.writer.Next() {
			status = BadRequest
			break
		}
		if !pm.reader.IsList() {
			status = BadRequest
			break
		}
		method, correlation := splitToken(methodTok)
		if !pm.reader.Open() {
			if Method(method) == GET {
				pm.writer.CreateContainer(pack.ListContainer)
				for _, r := range pm.resources {
					pm.writer.PutString(r.path)
				}
				pm.writer.FinishContainer()
				status = Content
			} else {
				status = MethodNotAllowed
			}
			pm.logDispatch(Method(method), "", correlation, status)
			break
		}
		if !pm.reader.Next() || !pm.reader.IsString() {
			status = NotFound // integer paths not implemented yet
			pm.logDispatch(Method(method), "", correlation, status)
			break
		}
		status = pm.dispatch(Method(method), methodTok)
	}

	responseLength := pm.writer.Offset() / 4
	pm.writer.SetOffset(0)
	pm.writer.PutInteger(int32(statusToken(status, methodTok)))
	return responseLength
}

func (pm *Postman) dispatch(method Method, methodTok uint32) Status {
	for _, r := range pm.resources {
		if pm.reader.Equals(r.path) {
			// Leave the reader just past the path, so the handler's first
			// Next delivers the first argument.
			pm.reader.Next()
			pm.reader.SetOffset(pm.reader.Offset())
			pm.writer.CreateContainer(pack.ListContainer)
			status := r.handler(method, &pm.reader, &pm.writer)
			pm.writer.FinishContainer()
			pm.logDispatch(method, r.path, methodTok&correlationMask, status)
			return status
		}
	}
	pm.logDispatch(method, "", methodTok&correlationMask, NotFound)
	return NotFound
}

func (pm *Postman) logDispatch(method Method, path string, correlation uint32, status Status) {
	if pm.logger == nil {
		return
	}
	pm.logger.Debug("dispatch", "method", method, "path", path, "correlation", correlation, "status", status)
}

package postman

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/francc/bigpacks/pack"
)

// Postman instances share no state with one another; each goroutine below
// owns its own Postman and its own buffer, matching §5's "one instance, one
// caller at a time" contract — this is a test of independence, not of
// shared-instance safety, which remains out of contract.
func TestHandlePackConcurrentIndependentInstances(t *testing.T) {
	const workers = 16

	var g errgroup.Group
	for i := 0; i < workers; i++ {
		correlation := uint32(i)
		g.Go(func() error {
			pm := New()
			if !pm.RegisterResource("/echo", func(method Method, reader, writer *pack.Pack) Status {
				if !reader.Next() {
					return InternalServerError
				}
				writer.PutInteger(reader.GetInteger())
				return Content
			}) {
				return fmt.Errorf("worker %d: RegisterResource failed", correlation)
			}

			buf := make([]uint32, 32)
			req := pack.New()
			req.SetBuffer(buf)
			req.PutInteger(int32(methodToken(GET, correlation)))
			req.CreateContainer(pack.ListContainer)
			req.PutString("/echo")
			req.PutInteger(int32(correlation))
			req.FinishContainer()

			n := pm.HandlePack(buf, 16, len(buf))

			resp := pack.New()
			resp.SetBuffer(buf[:n])
			if !resp.Next() {
				return fmt.Errorf("worker %d: empty response", correlation)
			}
			code, gotCorrelation := splitToken(uint32(resp.GetInteger()))
			if code != uint8(Content) {
				return fmt.Errorf("worker %d: status = %#x, want %#x", correlation, code, uint8(Content))
			}
			if gotCorrelation != correlation {
				return fmt.Errorf("worker %d: correlation = %d, want %d", correlation, gotCorrelation, correlation)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

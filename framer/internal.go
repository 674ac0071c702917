package framer

import (
	"runtime"
	"time"
)

// waitOnceOnWouldBlock implements the RetryDelay policy: it reports
// whether the caller should retry after observing ErrWouldBlock.
func waitOnceOnWouldBlock(delay time.Duration) bool {
	if delay < 0 {
		return false
	}
	if delay == 0 {
		runtime.Gosched()
		return true
	}
	time.Sleep(delay)
	return true
}

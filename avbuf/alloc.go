// alloc.go implements the buffer allocator.

package avbuf

import (
	"context"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/xaionaro-go/avframe/pool"
	"github.com/xaionaro-go/xsync"
)

// AllocHook, when non-nil, runs before every allocation; a returned error
// fails the allocation. It exists to simulate allocator exhaustion in
// tests.
var AllocHook func(ctx context.Context) error

var bufferPool = pool.New(
	func() *Buffer { return &Buffer{} },
	resetBuffer,
	finalizeBuffer,
)

// AllocStatsT is a snapshot of the allocator accounting.
type AllocStatsT struct {
	Allocated uint64
	Freed     uint64
}

var (
	allocStatsLocker xsync.Mutex
	allocStats       AllocStatsT
)

// AllocStats returns a snapshot of how many records were handed out and
// returned so far.
func AllocStats(ctx context.Context) AllocStatsT {
	return xsync.DoR1(ctx, &allocStatsLocker, func() AllocStatsT {
		return allocStats
	})
}

// AllocBuffer returns a zeroed record with all timestamp fields set to
// NoPTSValue. It fails only when the allocator is exhausted.
func AllocBuffer(ctx context.Context) (_ret *Buffer, _err error) {
	logger.Tracef(ctx, "AllocBuffer(ctx)")
	defer func() { logger.Tracef(ctx, "/AllocBuffer(ctx): %p, %v", _ret, _err) }()

	if AllocHook != nil {
		if err := AllocHook(ctx); err != nil {
			return nil, err
		}
	}

	b := bufferPool.Get()
	b.freeCount.Store(0)
	resetBuffer(b)
	allocStatsLocker.Do(ctx, func() {
		allocStats.Allocated++
	})
	return b, nil
}

func putBuffer(ctx context.Context, b *Buffer) {
	allocStatsLocker.Do(ctx, func() {
		allocStats.Freed++
	})
	bufferPool.Put(b)
}

// finalizeBuffer is the last-resort release action: it fires when the
// garbage collector reclaims a record that never went through Free.
func finalizeBuffer(b *Buffer) {
	if b.freeCount.Load() != 0 {
		return
	}
	allocStatsLocker.Do(context.TODO(), func() {
		allocStats.Freed++
	})
}

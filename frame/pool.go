// pool.go provides pooled construction and release of owned frames.

package frame

import (
	"context"
)

// Pool hands out owned empty frames and takes them back. The buffer
// records themselves are recycled by the avbuf allocator, which also
// registers the finalizer-backed last-resort release; Put is simply the
// release action, so frames constructed elsewhere may be put here too.
var Pool = &FramePool{}

type FramePool struct{}

// Get returns an owned empty frame; it fails only on allocator
// exhaustion.
func (p *FramePool) Get(ctx context.Context) (*Frame, error) {
	return TryEmpty(ctx)
}

// Put releases the frames. Owned ones return their buffer records to
// the allocator, borrowed ones are left to their external owner.
func (p *FramePool) Put(ctx context.Context, frames ...*Frame) {
	for _, f := range frames {
		_ = f.Close(ctx)
	}
}

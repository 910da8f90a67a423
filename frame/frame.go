// frame.go defines the Frame type and its lifecycle.

// Package frame models a single decoded media unit and its metadata:
// timing, quality and corruption flags, key-frame status, side data and
// the metadata dictionary. A Frame either owns a freshly allocated buffer
// record or borrows one owned by an external decoder/filter stage.
package frame

import (
	"context"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/xaionaro-go/avframe/avbuf"
	"github.com/xaionaro-go/avframe/dictionary"
	"github.com/xaionaro-go/typing"
	"go.uber.org/atomic"
)

// Frame is a wrapper around an avbuf.Buffer carrying an ownership tag.
// An owned Frame releases the buffer (with everything attached to it)
// exactly once, on Close; a borrowed Frame never releases anything: the
// external owner does.
//
// A Frame may be moved across goroutines and read concurrently, as long
// as nobody mutates the underlying buffer meanwhile; the type performs
// no internal synchronization, mutation exclusivity is on the caller.
type Frame struct {
	buf      *avbuf.Buffer
	owned    bool
	released atomic.Bool
}

// Wrap borrows an externally owned buffer record. No allocation is
// performed; the record has to outlive the resulting Frame.
func Wrap(buf *avbuf.Buffer) *Frame {
	return &Frame{buf: buf}
}

// TryEmpty allocates a new zeroed buffer and returns a Frame owning it.
func TryEmpty(ctx context.Context) (_ret *Frame, _err error) {
	logger.Tracef(ctx, "TryEmpty(ctx)")
	defer func() { logger.Tracef(ctx, "/TryEmpty(ctx): %v, %v", _ret, _err) }()

	buf, err := avbuf.AllocBuffer(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to allocate a buffer: %w", err)
	}
	return &Frame{buf: buf, owned: true}, nil
}

// Empty is TryEmpty for callers that cannot proceed without a
// destination buffer: allocator exhaustion is fatal here.
func Empty(ctx context.Context) *Frame {
	f, err := TryEmpty(ctx)
	if err != nil {
		logger.Panic(ctx, fmt.Errorf("unable to allocate an empty frame: %w", err))
	}
	return f
}

// Close is the release action. It is idempotent; only the first call on
// an owned Frame frees the buffer, a borrowed Frame never frees it.
func (f *Frame) Close(ctx context.Context) error {
	if !f.released.CompareAndSwap(false, true) {
		return nil
	}
	if !f.owned {
		return nil
	}
	f.buf.Free(ctx)
	return nil
}

// IsEmpty reports whether no data plane is populated yet (a freshly
// allocated, undecoded frame). Side data does not count as payload.
func (f *Frame) IsEmpty() bool {
	return f.buf.Data[0] == nil
}

// IsKey reports whether the key-frame indicator is set.
func (f *Frame) IsKey() bool {
	return f.buf.KeyFrame == 1
}

// IsCorrupt reports whether the corrupt flag bit is set.
func (f *Frame) IsCorrupt() bool {
	return f.Flags().Contains(FlagCorrupt)
}

// PTS returns the presentation timestamp, unset when the buffer carries
// the no-timestamp sentinel.
func (f *Frame) PTS() typing.Optional[int64] {
	return TimestampFromRaw(f.buf.PTS)
}

// SetPTS is the exact inverse of PTS.
func (f *Frame) SetPTS(value typing.Optional[int64]) {
	f.buf.PTS = TimestampToRaw(value)
}

// Timestamp returns the best-effort timestamp computed by the upstream
// stage (it may be derived from the DTS when the PTS is absent).
func (f *Frame) Timestamp() typing.Optional[int64] {
	return TimestampFromRaw(f.buf.BestEffortTimestamp)
}

func (f *Frame) Quality() uint {
	if f.buf.Quality < 0 {
		return 0
	}
	return uint(f.buf.Quality)
}

// Flags decodes the raw flags bitfield, discarding unrecognized bits.
func (f *Frame) Flags() Flags {
	return FlagsFromRaw(f.buf.Flags)
}

// Metadata returns a non-owning read view over the attached metadata;
// an absent dictionary surfaces as an empty view.
func (f *Frame) Metadata() dictionary.Ref {
	return dictionary.WrapRef(f.buf.Metadata)
}

// SetMetadata transfers ownership of the dictionary into the Frame,
// replacing (and thereby releasing) any previously attached one.
func (f *Frame) SetMetadata(ctx context.Context, value *dictionary.Dictionary) {
	entries := value.Disown(ctx)
	if logger.FromCtx(ctx).Level() >= logger.LevelDebug {
		logger.Debugf(ctx, "SetMetadata(ctx): %s", spew.Sdump(entries))
	}
	f.buf.Metadata = entries
}

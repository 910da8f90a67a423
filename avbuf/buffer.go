// buffer.go defines the native frame record.

// Package avbuf implements the native buffer layer backing media frames:
// the raw frame record with its field layout, the allocator and the
// side-data primitives. The frame package builds its ownership model on
// top of this layer.
package avbuf

import (
	"context"

	"github.com/facebookincubator/go-belt/tool/logger"
	"go.uber.org/atomic"
)

// Buffer is the raw frame record. The exported fields mirror the native
// field layout the decoder/filter stages read and write directly; the
// frame package is the typed façade over them.
//
// A Buffer is not internally synchronized: concurrent readers are fine,
// mutation requires exclusive access (enforced by whoever owns the
// buffer).
type Buffer struct {
	// Data holds the data planes; Data[0] being nil means the buffer
	// carries no payload yet.
	Data [NumDataPlanes][]byte

	// PTS is the presentation timestamp, NoPTSValue when unset.
	PTS int64

	// BestEffortTimestamp is maintained by the upstream stage (it may
	// fall back to the DTS when the PTS is absent); NoPTSValue when
	// unset.
	BestEffortTimestamp int64

	PktDTS      int64
	PktDuration int64
	PktPos      int64
	PktSize     int64

	// KeyFrame is 1 when the frame is a key frame, 0 otherwise.
	KeyFrame int

	Quality int

	// Flags is the raw flags bitfield; see frame.FlagsFromRaw for the
	// decoded form.
	Flags int

	// Metadata is the native representation of the attached metadata
	// dictionary; nil when absent.
	Metadata map[string]string

	sideData []*SideData

	freeCount atomic.Int64
}

func resetBuffer(b *Buffer) {
	b.Data = [NumDataPlanes][]byte{}
	b.PTS = NoPTSValue
	b.BestEffortTimestamp = NoPTSValue
	b.PktDTS = NoPTSValue
	b.PktDuration = 0
	b.PktPos = -1
	b.PktSize = 0
	b.KeyFrame = 0
	b.Quality = 0
	b.Flags = 0
	b.Metadata = nil
	b.sideData = nil
}

// Free releases everything attached to the buffer: data planes, side
// data and metadata. The caller guarantees it is invoked at most once
// per allocation; the release counter exists so that tests can verify
// that guarantee.
func (b *Buffer) Free(ctx context.Context) {
	logger.Tracef(ctx, "Free()")
	b.freeCount.Inc()
	putBuffer(ctx, b)
}

// FreeCount reports how many times Free was invoked on this record since
// it was allocated. It only exists for release-accounting checks.
func (b *Buffer) FreeCount() int64 {
	return b.freeCount.Load()
}

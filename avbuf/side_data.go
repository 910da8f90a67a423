// side_data.go implements the per-buffer side-data records.

package avbuf

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/facebookincubator/go-belt/tool/logger"
)

// SideData is an auxiliary binary record attached to a Buffer, carrying
// data that is not part of the primary payload (motion vectors, HDR
// metadata and so on). It is owned by the Buffer it is attached to.
type SideData struct {
	kind SideDataType
	data []byte
}

func (sd *SideData) Kind() SideDataType {
	return sd.kind
}

func (sd *SideData) Size() int {
	return len(sd.data)
}

// Data returns the payload; writes through the returned slice are writes
// into the record.
func (sd *SideData) Data() []byte {
	return sd.data
}

// NewSideData allocates a zeroed payload of the requested size tagged
// with the given kind and attaches it to the buffer. Failure (entry
// limit, oversized request) is a recoverable condition, not a panic.
func (b *Buffer) NewSideData(
	ctx context.Context,
	kind SideDataType,
	size int,
) (_ret *SideData, _err error) {
	logger.Tracef(ctx, "NewSideData(ctx, %v, %d)", kind, size)
	defer func() { logger.Tracef(ctx, "/NewSideData(ctx, %v, %d): %v, %v", kind, size, _ret, _err) }()

	if size < 0 {
		return nil, fmt.Errorf("the requested size is negative: %d", size)
	}
	if size > MaxSideDataSize {
		return nil, fmt.Errorf(
			"unable to allocate %s of side data: the limit is %s",
			humanize.IBytes(uint64(size)), humanize.IBytes(uint64(MaxSideDataSize)),
		)
	}
	if len(b.sideData) >= MaxSideDataEntries {
		return nil, fmt.Errorf("unable to attach side data: already have %d entries", len(b.sideData))
	}

	sd := &SideData{
		kind: kind,
		data: make([]byte, size),
	}
	b.sideData = append(b.sideData, sd)
	return sd, nil
}

// SideData returns the first attached record of the given kind, or nil.
func (b *Buffer) SideData(kind SideDataType) *SideData {
	for _, sd := range b.sideData {
		if sd.kind == kind {
			return sd
		}
	}
	return nil
}

// RemoveSideData detaches and releases every record of the given kind.
// It is a no-op when no such record is attached.
func (b *Buffer) RemoveSideData(ctx context.Context, kind SideDataType) {
	logger.Tracef(ctx, "RemoveSideData(ctx, %v)", kind)
	filtered := b.sideData[:0]
	for _, sd := range b.sideData {
		if sd.kind == kind {
			sd.data = nil
			continue
		}
		filtered = append(filtered, sd)
	}
	b.sideData = filtered
}

// SideDataCount reports the amount of attached side-data records.
func (b *Buffer) SideDataCount() int {
	return len(b.sideData)
}

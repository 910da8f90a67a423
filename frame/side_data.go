// side_data.go implements the side-data operations of a Frame.

package frame

import (
	"context"
	"fmt"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/xaionaro-go/avframe/avbuf"
)

// SideData is a non-owning handle into a Frame-owned side-data record.
// It must not outlive the Frame; the Frame releases the record.
type SideData struct {
	raw *avbuf.SideData
}

func (sd *SideData) Kind() avbuf.SideDataType {
	return sd.raw.Kind()
}

func (sd *SideData) Size() int {
	return sd.raw.Size()
}

// Data returns the payload; writes through the returned slice mutate the
// record in place.
func (sd *SideData) Data() []byte {
	return sd.raw.Data()
}

// SetData copies the given bytes into the record's extent; the extent
// itself never grows.
func (sd *SideData) SetData(b []byte) int {
	return copy(sd.raw.Data(), b)
}

// SideData looks up the attached record of the given kind; nil when
// absent.
func (f *Frame) SideData(kind avbuf.SideDataType) *SideData {
	raw := f.buf.SideData(kind)
	if raw == nil {
		return nil
	}
	return &SideData{raw: raw}
}

// NewSideData attaches a new zeroed record of the requested size to the
// Frame. Failure is recoverable (the entry limit was hit or the request
// is oversized), unlike allocator exhaustion on frame construction.
func (f *Frame) NewSideData(
	ctx context.Context,
	kind avbuf.SideDataType,
	size int,
) (*SideData, error) {
	raw, err := f.buf.NewSideData(ctx, kind, size)
	if err != nil {
		return nil, fmt.Errorf("unable to attach side data of kind %v: %w", kind, err)
	}
	return &SideData{raw: raw}, nil
}

// RemoveSideData detaches and releases the matching record; a no-op when
// absent.
func (f *Frame) RemoveSideData(ctx context.Context, kind avbuf.SideDataType) {
	logger.Tracef(ctx, "RemoveSideData(ctx, %v)", kind)
	f.buf.RemoveSideData(ctx, kind)
}

// packet.go defines the packet-derived snapshot of a frame.

package frame

import (
	"fmt"
)

// Packet is a read-only snapshot of the packet-derived fields of a
// Frame: a value type recomputed on demand, with no lifecycle of its
// own.
type Packet struct {
	Duration int64
	Position int64
	Size     int

	PTS int64
	DTS int64
}

// Packet reads the packet-derived fields off the buffer. It is a pure
// read and always succeeds: fields unset upstream stay at their
// defaults.
func (f *Frame) Packet() Packet {
	return Packet{
		Duration: f.buf.PktDuration,
		Position: f.buf.PktPos,
		Size:     int(f.buf.PktSize),

		PTS: f.buf.PTS,
		DTS: f.buf.PktDTS,
	}
}

func (p Packet) String() string {
	return fmt.Sprintf("{pts:%d dts:%d dur:%d pos:%d size:%d}", p.PTS, p.DTS, p.Duration, p.Position, p.Size)
}

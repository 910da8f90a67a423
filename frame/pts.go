// pts.go translates between the sentinel-encoded timestamp fields and
// typed optionals.

package frame

import (
	"github.com/xaionaro-go/avframe/avbuf"
	"github.com/xaionaro-go/typing"
)

// TimestampFromRaw decodes a sentinel-encoded timestamp field: the
// avbuf.NoPTSValue sentinel surfaces as an unset optional, any other
// value as itself.
func TimestampFromRaw(value int64) typing.Optional[int64] {
	if value == avbuf.NoPTSValue {
		return typing.Optional[int64]{}
	}
	return typing.Opt(value)
}

// TimestampToRaw is the exact inverse of TimestampFromRaw.
func TimestampToRaw(value typing.Optional[int64]) int64 {
	if !value.IsSet() {
		return avbuf.NoPTSValue
	}
	return value.Get()
}

// consts.go defines the native constants of the buffer layer.

package avbuf

import (
	"math"
)

const (
	// NoPTSValue is the sentinel stored in timestamp fields that carry
	// no value (the AV_NOPTS_VALUE analogue).
	NoPTSValue = int64(math.MinInt64)

	// NumDataPlanes is the fixed amount of data plane slots per buffer.
	NumDataPlanes = 8

	// MaxSideDataEntries caps the amount of side-data entries per buffer.
	MaxSideDataEntries = 32

	// MaxSideDataSize caps a single side-data payload.
	MaxSideDataSize = 64 << 20
)

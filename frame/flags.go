// flags.go defines the frame status flags bitset.

package frame

import (
	"fmt"
	"strings"
)

// Flags is the decoded form of the raw frame flags bitfield. It is a
// pure value type: equality and containment queries only.
type Flags int

const (
	FlagCorrupt       = Flags(1 << 0)
	FlagKey           = Flags(1 << 1)
	FlagDiscard       = Flags(1 << 2)
	FlagInterlaced    = Flags(1 << 3)
	FlagTopFieldFirst = Flags(1 << 4)

	flagsKnown = FlagCorrupt | FlagKey | FlagDiscard | FlagInterlaced | FlagTopFieldFirst
)

// FlagsFromRaw decodes a raw bitfield, silently discarding unrecognized
// bits. The leniency is deliberate: upstream layers may set bits this
// layer does not know yet.
func FlagsFromRaw(raw int) Flags {
	return Flags(raw) & flagsKnown
}

// FlagsFromRawStrict is the strict variant: it rejects unrecognized bits
// instead of discarding them, for callers that want validation.
func FlagsFromRawStrict(raw int) (Flags, error) {
	if unknown := Flags(raw) &^ flagsKnown; unknown != 0 {
		return 0, fmt.Errorf("unrecognized flag bits: 0b%b", int(unknown))
	}
	return Flags(raw), nil
}

func (f Flags) Contains(other Flags) bool {
	return f&other == other
}

func (f Flags) Raw() int {
	return int(f)
}

func (f Flags) String() string {
	if f == 0 {
		return "none"
	}
	var result []string
	for _, item := range []struct {
		flag Flags
		name string
	}{
		{FlagCorrupt, "corrupt"},
		{FlagKey, "key"},
		{FlagDiscard, "discard"},
		{FlagInterlaced, "interlaced"},
		{FlagTopFieldFirst, "top_field_first"},
	} {
		if f.Contains(item.flag) {
			result = append(result, item.name)
		}
	}
	return strings.Join(result, "|")
}

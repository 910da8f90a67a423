// compliance.go defines the Compliance enum and its mapping to the
// native integer codes.

// Package codec provides codec-adjacent types for the frame model.
package codec

import (
	"fmt"
)

// Compliance is the policy knob controlling how strictly a codec
// enforces specification conformance.
type Compliance int

const (
	// ComplianceVeryStrict strictly conforms to an older, more strict
	// version of the spec or the reference software.
	ComplianceVeryStrict Compliance = iota
	// ComplianceStrict strictly conforms to all the things in the spec,
	// no matter what the consequences.
	ComplianceStrict
	ComplianceNormal
	// ComplianceUnofficial allows unofficial extensions.
	ComplianceUnofficial
	// ComplianceExperimental allows nonstandardized experimental things.
	ComplianceExperimental
)

const (
	complianceCodeVeryStrict   = 2
	complianceCodeStrict       = 1
	complianceCodeNormal       = 0
	complianceCodeUnofficial   = -1
	complianceCodeExperimental = -2
)

// ComplianceFromCode decodes a native integer code. Unrecognized codes
// fall back to ComplianceNormal on purpose (forward compatibility over
// strict validation); the round trip through Code is lossy for them.
func ComplianceFromCode(code int) Compliance {
	switch code {
	case complianceCodeVeryStrict:
		return ComplianceVeryStrict
	case complianceCodeStrict:
		return ComplianceStrict
	case complianceCodeNormal:
		return ComplianceNormal
	case complianceCodeUnofficial:
		return ComplianceUnofficial
	case complianceCodeExperimental:
		return ComplianceExperimental
	default:
		return ComplianceNormal
	}
}

// Code returns the native integer code of the compliance level.
func (c Compliance) Code() int {
	switch c {
	case ComplianceVeryStrict:
		return complianceCodeVeryStrict
	case ComplianceStrict:
		return complianceCodeStrict
	case ComplianceNormal:
		return complianceCodeNormal
	case ComplianceUnofficial:
		return complianceCodeUnofficial
	case ComplianceExperimental:
		return complianceCodeExperimental
	default:
		return complianceCodeNormal
	}
}

func (c Compliance) String() string {
	switch c {
	case ComplianceVeryStrict:
		return "very_strict"
	case ComplianceStrict:
		return "strict"
	case ComplianceNormal:
		return "normal"
	case ComplianceUnofficial:
		return "unofficial"
	case ComplianceExperimental:
		return "experimental"
	default:
		return "Compliance(" + fmt.Sprintf("%d", int(c)) + ")"
	}
}

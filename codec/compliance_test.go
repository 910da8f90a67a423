package codec

import (
	"testing"
)

func TestComplianceMapping(t *testing.T) {
	tests := []struct {
		code int
		want Compliance
	}{
		{2, ComplianceVeryStrict},
		{1, ComplianceStrict},
		{0, ComplianceNormal},
		{-1, ComplianceUnofficial},
		{-2, ComplianceExperimental},
	}

	for _, test := range tests {
		got := ComplianceFromCode(test.code)
		if got != test.want {
			t.Errorf("For code %d, expected %v, but got %v", test.code, test.want, got)
		}
		if got.Code() != test.code {
			t.Errorf("For %v, expected code %d, but got %d", got, test.code, got.Code())
		}
	}
}

func TestComplianceLenientDecoding(t *testing.T) {
	for _, code := range []int{3, -3, 42, -100, 1 << 20} {
		got := ComplianceFromCode(code)
		if got != ComplianceNormal {
			t.Errorf("For unknown code %d, expected the fallback %v, but got %v", code, ComplianceNormal, got)
		}
		// the round trip is lossy on purpose: the canonical code comes
		// back, not the unknown one.
		if got.Code() != 0 {
			t.Errorf("For unknown code %d, expected the canonical code 0, but got %d", code, got.Code())
		}
	}
}

func TestComplianceString(t *testing.T) {
	tests := []struct {
		value Compliance
		want  string
	}{
		{ComplianceVeryStrict, "very_strict"},
		{ComplianceStrict, "strict"},
		{ComplianceNormal, "normal"},
		{ComplianceUnofficial, "unofficial"},
		{ComplianceExperimental, "experimental"},
		{Compliance(99), "Compliance(99)"},
	}
	for _, test := range tests {
		if got := test.value.String(); got != test.want {
			t.Errorf("For %d, expected %q, but got %q", int(test.value), test.want, got)
		}
	}
}

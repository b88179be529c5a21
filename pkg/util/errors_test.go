package util

import (
	"errors"
	"strings"
	"testing"
)

func TestFieldErrorClassification(t *testing.T) {
	tests := []struct {
		name     string
		err      *FieldError
		sentinel error
	}{
		{"range", RangeError("data_vlan", "VLAN ID %d outside 1-4094", 5000), ErrOutOfRange},
		{"grammar", GrammarError("allowed_vlans", "descending range %q", "20-10"), ErrBadGrammar},
		{"conflict", ModeConflictError("native_vlan", "trunk-mode field"), ErrModeConflict},
		{"missing", MissingRequiredError("data_vlan", "access mode requires a data VLAN"), ErrMissingRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("%v should unwrap to %v", tt.err, tt.sentinel)
			}
			// Each error matches exactly one sentinel
			for _, other := range []error{ErrOutOfRange, ErrBadGrammar, ErrModeConflict, ErrMissingRequired} {
				if other != tt.sentinel && errors.Is(tt.err, other) {
					t.Errorf("%v should not unwrap to %v", tt.err, other)
				}
			}
		})
	}
}

func TestFieldErrorMessage(t *testing.T) {
	err := RangeError("voice_vlan", "VLAN ID %d outside 1-4094", 0)
	if got := err.Error(); !strings.HasPrefix(got, "voice_vlan: ") {
		t.Errorf("Error() = %q, want field-prefixed message", got)
	}

	bare := &FieldError{Detail: "something went wrong", Err: ErrBadGrammar}
	if got := bare.Error(); got != "something went wrong" {
		t.Errorf("Error() without field = %q", got)
	}
}

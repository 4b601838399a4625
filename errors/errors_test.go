package errors

import (
	"errors"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:   PhaseAudit,
				Kind:    KindDuplicateEntry,
				Token:   "lsb",
				Context: "prop",
				Detail:  "bit collision",
			},
			contains: []string{"[audit]", "duplicate_entry", "lsb", "prop", "bit collision"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseParse,
				Kind:  KindInvalidInput,
			},
			contains: []string{"[parse]", "invalid_input"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseParse,
				Kind:   KindInvalidInput,
				Detail: "bad mask",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[parse]", "invalid_input", "bad mask", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsSubstring(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseParse,
		Kind:  KindInvalidInput,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	// Test with errors.Unwrap
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseAudit,
		Kind:  KindMissingEntry,
		Token: "AttrLateInit",
	}

	// Same phase and kind
	if !err.Is(&Error{Phase: PhaseAudit, Kind: KindMissingEntry}) {
		t.Error("Is should match same phase and kind")
	}

	// Different phase
	if err.Is(&Error{Phase: PhaseParse, Kind: KindMissingEntry}) {
		t.Error("Is should not match different phase")
	}

	// Different kind
	if err.Is(&Error{Phase: PhaseAudit, Kind: KindDuplicateEntry}) {
		t.Error("Is should not match different kind")
	}

	// Test with errors.Is
	target := &Error{Phase: PhaseAudit, Kind: KindMissingEntry}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("UnknownContext", func(t *testing.T) {
		err := UnknownContext("clas")
		if err.Kind != KindUnknownContext {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnknownContext)
		}
		if err.Context != "clas" {
			t.Errorf("Context = %v, want 'clas'", err.Context)
		}
		if !containsSubstring(err.Detail, "clas") {
			t.Errorf("Detail = %v, should contain the bad name", err.Detail)
		}
	})

	t.Run("InvalidInput", func(t *testing.T) {
		err := InvalidInput(PhaseParse, "not a number")
		if err.Kind != KindInvalidInput {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidInput)
		}
	})

	t.Run("MissingEntry", func(t *testing.T) {
		err := MissingEntry("AttrLateInit", 1<<24)
		if err.Kind != KindMissingEntry {
			t.Errorf("Kind = %v, want %v", err.Kind, KindMissingEntry)
		}
		if err.Token != "AttrLateInit" {
			t.Errorf("Token = %v, want 'AttrLateInit'", err.Token)
		}
		if err.Value != uint32(1<<24) {
			t.Errorf("Value = %v, want %v", err.Value, uint32(1<<24))
		}
	})

	t.Run("MissingContext", func(t *testing.T) {
		err := MissingContext("abstract")
		if err.Kind != KindMissingEntry {
			t.Errorf("Kind = %v, want %v", err.Kind, KindMissingEntry)
		}
	})

	t.Run("DuplicateEntry", func(t *testing.T) {
		err := DuplicateEntry("prop", 1<<10, "interface", "lsb")
		if err.Kind != KindDuplicateEntry {
			t.Errorf("Kind = %v, want %v", err.Kind, KindDuplicateEntry)
		}
		if !containsSubstring(err.Detail, "interface") || !containsSubstring(err.Detail, "lsb") {
			t.Errorf("Detail = %v, should name both tokens", err.Detail)
		}
	})

	t.Run("BadToken", func(t *testing.T) {
		err := BadToken("late init")
		if err.Kind != KindBadToken {
			t.Errorf("Kind = %v, want %v", err.Kind, KindBadToken)
		}
	})

	t.Run("Overflow", func(t *testing.T) {
		err := Overflow(0x1_0000_0000, "Attr")
		if err.Kind != KindOverflow {
			t.Errorf("Kind = %v, want %v", err.Kind, KindOverflow)
		}
		if err.Value != uint64(0x1_0000_0000) {
			t.Errorf("Value = %v, want 0x1_0000_0000", err.Value)
		}
	})

	t.Run("Wrap", func(t *testing.T) {
		cause := errors.New("strconv failure")
		err := Wrap(PhaseParse, KindInvalidInput, cause, "parse mask")
		if !errors.Is(err.Unwrap(), cause) {
			t.Error("Wrap should keep the cause")
		}
		if !containsSubstring(err.Error(), "strconv failure") {
			t.Errorf("Error() = %v, should include cause", err.Error())
		}
	})
}

func containsSubstring(s, substr string) bool {
	return len(s) >= len(substr) && (s == substr || len(substr) == 0 ||
		(len(s) > 0 && containsSubstringHelper(s, substr)))
}

func containsSubstringHelper(s, substr string) bool {
	for i := 0; i <= len(s)-len(substr); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}

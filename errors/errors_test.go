package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestErrorFormat(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "phase and kind",
			err:  &Error{Phase: PhaseDecode, Kind: KindUnsupported},
			want: "[decode] unsupported",
		},
		{
			name: "with symbol",
			err:  &Error{Phase: PhaseInvoke, Kind: KindSymbolNotFound, Symbol: "my_sum"},
			want: "[invoke] symbol_not_found in my_sum",
		},
		{
			name: "with detail",
			err:  &Error{Phase: PhaseEncode, Kind: KindAllocation, Detail: "out of memory"},
			want: "[encode] allocation: out of memory",
		},
		{
			name: "with cause",
			err:  &Error{Phase: PhaseBuild, Kind: KindBuildFailed, Detail: "lake build", Cause: stderrors.New("exit 1")},
			want: "[build] build_failed: lake build (caused by: exit 1)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorIs(t *testing.T) {
	err := SymbolNotFound("my_sum")

	if !stderrors.Is(err, &Error{Phase: PhaseInvoke, Kind: KindSymbolNotFound}) {
		t.Error("expected Is to match on phase and kind")
	}
	if stderrors.Is(err, &Error{Phase: PhaseInvoke, Kind: KindNotFound}) {
		t.Error("expected Is to reject a different kind")
	}
	if stderrors.Is(err, &Error{Phase: PhaseDecode, Kind: KindSymbolNotFound}) {
		t.Error("expected Is to reject a different phase")
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("dlopen failed")
	err := Wrap(PhaseLocate, KindRuntimeUnavailable, cause, "load candidate")

	if !stderrors.Is(err, cause) {
		t.Error("expected wrapped cause to be reachable via errors.Is")
	}
}

func TestBuilder(t *testing.T) {
	err := New(PhaseDecode, KindTypeMismatch).
		Symbol("my_lookup").
		Detail("expected tag %d, got %d", 246, 0).
		Value(uint8(0)).
		Build()

	if err.Phase != PhaseDecode || err.Kind != KindTypeMismatch {
		t.Errorf("unexpected phase/kind: %v/%v", err.Phase, err.Kind)
	}
	if err.Symbol != "my_lookup" {
		t.Errorf("Symbol = %q", err.Symbol)
	}
	if err.Detail != "expected tag 246, got 0" {
		t.Errorf("Detail = %q", err.Detail)
	}
}

func TestRuntimeUnavailableMentionsOverride(t *testing.T) {
	for _, searched := range []string{"", "/opt/lean/bin"} {
		err := RuntimeUnavailable(searched)
		if !strings.Contains(err.Detail, "LEAN2GO_LEAN_BIN") {
			t.Errorf("RuntimeUnavailable(%q) detail should name the override, got %q", searched, err.Detail)
		}
		if searched != "" && !strings.Contains(err.Detail, searched) {
			t.Errorf("RuntimeUnavailable(%q) detail should name the searched dir, got %q", searched, err.Detail)
		}
	}
}

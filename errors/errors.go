package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseLocate   Phase = "locate"   // runtime library location
	PhaseEncode   Phase = "encode"   // Go to Lean object
	PhaseDecode   Phase = "decode"   // Lean object to Go
	PhaseInvoke   Phase = "invoke"   // foreign calls
	PhaseBuild    Phase = "build"    // lake/leanc toolchain
	PhaseParse    Phase = "parse"    // Lean source scanning
	PhaseGenerate Phase = "generate" // bindings emission
)

// Kind categorizes the error
type Kind string

const (
	KindRuntimeUnavailable Kind = "runtime_unavailable"
	KindSymbolNotFound     Kind = "symbol_not_found"
	KindUnsupported        Kind = "unsupported"
	KindAllocation         Kind = "allocation"
	KindTypeMismatch       Kind = "type_mismatch"
	KindNotFound           Kind = "not_found"
	KindInvalidInput       Kind = "invalid_input"
	KindBuildFailed        Kind = "build_failed"
)

// Error is the structured error type used throughout lean2go
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Symbol string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Symbol != "" {
		b.WriteString(" in ")
		b.WriteString(e.Symbol)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Symbol sets the export symbol the error relates to
func (b *Builder) Symbol(name string) *Builder {
	b.err.Symbol = name
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// RuntimeUnavailable reports that no Lean runtime library could be loaded.
// searched is the directory that was examined; it may be empty when no hint
// was available at all.
func RuntimeUnavailable(searched string) *Error {
	detail := "Lean runtime not found; set LEAN2GO_LEAN_BIN or ensure the Lean toolchain bin directory is available"
	if searched != "" {
		detail = fmt.Sprintf("Lean runtime not found in %s; set LEAN2GO_LEAN_BIN or ensure the Lean toolchain bin directory is available", searched)
	}
	return &Error{
		Phase:  PhaseLocate,
		Kind:   KindRuntimeUnavailable,
		Detail: detail,
	}
}

// SymbolNotFound reports that an export is absent from the target library.
func SymbolNotFound(symbol string) *Error {
	return &Error{
		Phase:  PhaseInvoke,
		Kind:   KindSymbolNotFound,
		Symbol: symbol,
		Detail: "export not found in library",
	}
}

// Unsupported creates an unsupported encoding/decoding error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// AllocationFailed reports a null result from the Lean allocator.
func AllocationFailed(size uintptr) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindAllocation,
		Detail: fmt.Sprintf("lean_alloc_object returned null for %d bytes", size),
	}
}

// TagMismatch reports an unexpected object tag on a decode path.
func TagMismatch(expected, got uint8) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindTypeMismatch,
		Detail: fmt.Sprintf("expected Lean object tag %d, got tag %d", expected, got),
		Value:  got,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// BuildFailed wraps a toolchain failure.
func BuildFailed(step string, cause error) *Error {
	return &Error{
		Phase:  PhaseBuild,
		Kind:   KindBuildFailed,
		Detail: step,
		Cause:  cause,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// Package errors provides structured error types for the lean2go library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes the export symbol, offending value, and
// cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindUnsupported).
//		Symbol("my_lookup").
//		Detail("boxed 32-bit scalar results are not supported").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.SymbolNotFound("my_sum")
//	err := errors.TagMismatch(246, tag)
//
// All errors implement the standard error interface and support errors.Is/As;
// Is matches on Phase and Kind, so each spec'd failure category is
// distinguishable by callers:
//
//	if stderrors.Is(err, &errors.Error{Phase: errors.PhaseLocate, Kind: errors.KindRuntimeUnavailable}) {
//		// no Lean runtime on this machine
//	}
package errors

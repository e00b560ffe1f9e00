/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package apis

// CategorizedError represents an error that is classified into one of the
// well-defined, machine-readable error *categories*.
//
// A category denotes a recognized class of request-handling failure, such as:
//   - "missing_param"  — a required parameter is absent,
//   - "validation"     — a field-level validation failed,
//   - "not_found"      — a referenced entity does not exist,
//   - "internal"       — unexpected server-side failure.
//
// Categories are intended to be stable and enumerable. They are the primary
// value that transport adapters (HTTP, gRPC) use to decide which status code
// and default message to return to the client.
//
// Implementations are expected to return a *canonicalized* category string —
// i.e., normalized to the format enforced by the resterr/category package
// (lowercase, underscores, length limits, etc.). Adapters should treat
// unknown or empty categories as internal/server errors.
type CategorizedError interface {
	error

	// ErrorCategory returns the machine-readable error category.
	//
	// The returned value MUST be non-empty and MUST already be normalized
	// according to the rules of the resterr subsystem. Callers should not try
	// to "fix" or "guess" the value here — if it's invalid, it should be
	// handled as an internal error at the boundary.
	ErrorCategory() string
}

// DetailedError represents an error that exposes zero or more field-level
// sub-errors. This is especially useful for validation scenarios where
// multiple fields may fail at once and the caller needs to show *all* of
// them.
//
// Implementations SHOULD return a slice that is safe to iterate over and that
// will not be modified by the callee. Returning nil is allowed and simply
// means "no sub-errors".
type DetailedError interface {
	error

	// ErrorFields returns field-level sub-errors. May return nil.
	ErrorFields() []FieldError
}

// DebuggableError represents an error that carries a separate diagnostic
// message intended for operators and logs, as opposed to the human-facing
// top-level message.
//
// The debug message typically comes from the underlying cause (driver error
// text, decode error position, etc.). Transport adapters decide whether the
// value is safe to expose to clients; by default it should only reach logs.
type DebuggableError interface {
	error

	// DebugMessage returns the diagnostic message. May return "".
	DebugMessage() string
}

// CausedError represents an error that exposes its underlying cause.
//
// While Go 1.13 introduced errors.Unwrap, having this interface in apis lets
// us work with wrapped errors even in places where we don't want to depend on
// errors.As / errors.Is directly, or where we want to keep the contract
// explicit.
//
// Implementations SHOULD return the direct, immediate cause of the error. If
// there is no underlying cause, they SHOULD return nil.
type CausedError interface {
	error

	// Cause returns the underlying error that triggered this error, if any.
	// May return nil.
	Cause() error
}

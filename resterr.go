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

package resterr

import (
	"fmt"

	"dirpx.dev/resterr/apis"
	"dirpx.dev/resterr/category"
)

// Error is the canonical rich error type of the translation layer.
//
// It carries:
//   - Category: the recognized failure class (required) — the dispatch key
//     that the status mapper operates on;
//   - Message: human-oriented description (what went wrong);
//   - Debug: optional diagnostic detail for operators; when empty, adapters
//     fall back to the Cause's text;
//   - Fields: field-level validation sub-errors (for "validation" and
//     per-field type mismatches);
//   - Details: arbitrary key/value payload for structured logging;
//   - Cause: wrapped underlying error for debugging / unwrapping.
//
// All mutation helpers (WithX) return a shallow copy, so Error instances
// can be safely shared and modified in a functional style.
type Error struct {
	// Category is the primary classification of the error, e.g.
	// "missing_param", "validation", "not_found". Must be a normalized
	// category from resterr/category.
	Category category.Category

	// Message is a human-readable explanation. This is what ends up in the
	// "message" field of the error payload. When empty, the mapper's default
	// message for the category is used instead.
	Message string

	// Debug is an optional diagnostic message for operators. It is logged on
	// every translation and only exposed to clients when the adapter is
	// explicitly configured to do so.
	Debug string

	// Fields is an optional list of field-level sub-errors. The slice is
	// treated as immutable: WithField/WithFields always copy it.
	Fields []apis.FieldError

	// Details is an optional, shallow map of extra fields for structured
	// logging (parameter names, rejected values, supported media types).
	// The map is treated as immutable: WithDetail/WithDetails always copy it.
	Details map[string]any

	// Cause holds the wrapped underlying error (if any). This is used for
	// errors.Is / errors.As and for debugging in lower layers.
	Cause error
}

// E is a convenience constructor for Error.
//
// Usage:
//
//	return resterr.E(category.NotFound, "order does not exist",
//	    resterr.WithDetailOption("order_id", id),
//	)
//
// It always returns a *new* Error and applies all provided options in order.
func E(c category.Category, msg string, opts ...Option) *Error {
	e := &Error{Category: c, Message: msg}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<category>: <message>
//
// This makes the error both human- and machine-scannable in logs.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *Error) Unwrap() error { return e.Cause }

// ErrorCategory implements apis.CategorizedError.
func (e *Error) ErrorCategory() string { return string(e.Category) }

// ErrorFields implements apis.DetailedError.
func (e *Error) ErrorFields() []apis.FieldError { return e.Fields }

// DebugMessage implements apis.DebuggableError.
//
// When no explicit debug message is set, the text of the cause is used, so
// the original failure survives into logs even for fully wrapped errors.
func (e *Error) DebugMessage() string {
	if e.Debug != "" {
		return e.Debug
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return ""
}

// WithMessage returns a shallow copy of e with a replaced human message.
// Useful when you want to keep the Category but present the message in a
// different language or context.
func (e *Error) WithMessage(msg string) *Error {
	cp := *e
	cp.Message = msg
	return &cp
}

// WithDebug returns a shallow copy of e with the given diagnostic message.
// The original error is not modified.
func (e *Error) WithDebug(msg string) *Error {
	cp := *e
	cp.Debug = msg
	return &cp
}

// WithField returns a shallow copy of e with one extra field-level sub-error
// appended.
//
// The method always copies the slice to preserve immutability. This prevents
// surprising modifications across goroutines or shared error values.
func (e *Error) WithField(f apis.FieldError) *Error {
	cp := *e
	fs := make([]apis.FieldError, len(cp.Fields), len(cp.Fields)+1)
	copy(fs, cp.Fields)
	cp.Fields = append(fs, f)
	return &cp
}

// WithFields returns a shallow copy of e with all provided sub-errors
// appended, in order.
func (e *Error) WithFields(fs []apis.FieldError) *Error {
	if len(fs) == 0 {
		return e
	}
	cp := *e
	merged := make([]apis.FieldError, 0, len(cp.Fields)+len(fs))
	merged = append(merged, cp.Fields...)
	merged = append(merged, fs...)
	cp.Fields = merged
	return &cp
}

// WithDetail returns a shallow copy of e with one extra key/value in Details.
//
// The method always copies the map to preserve immutability.
func (e *Error) WithDetail(k string, v any) *Error {
	cp := *e
	// No details yet — create a new single-entry map.
	if len(cp.Details) == 0 {
		cp.Details = map[string]any{k: v}
		return &cp
	}
	// Copy existing details and add one more.
	m := make(map[string]any, len(cp.Details)+1)
	for k0, v0 := range cp.Details {
		m[k0] = v0
	}
	m[k] = v
	cp.Details = m
	return &cp
}

// WithDetails returns a shallow copy of e with all provided kv merged into
// Details.
//
// If the Error already has Details, both maps are copied and merged,
// with kv taking precedence on key conflicts.
func (e *Error) WithDetails(kv map[string]any) *Error {
	if len(kv) == 0 {
		return e
	}
	cp := *e
	// No existing details — just copy kv.
	if len(cp.Details) == 0 {
		m := make(map[string]any, len(kv))
		for k, v := range kv {
			m[k] = v
		}
		cp.Details = m
		return &cp
	}
	// Merge existing + new.
	m := make(map[string]any, len(cp.Details)+len(kv))
	for k0, v0 := range cp.Details {
		m[k0] = v0
	}
	for k, v := range kv {
		m[k] = v
	}
	cp.Details = m
	return &cp
}

// WithCause returns a shallow copy of e with the given underlying cause
// attached. If err is nil, the original error is returned unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}

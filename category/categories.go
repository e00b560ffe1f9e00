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

package category

// Request-shape error categories
//
// These categories describe failures detected while reading the request
// itself: missing inputs, unreadable bodies, rejected content types. They
// are raised before any business logic runs.
const (
	// MissingParam indicates that a required request parameter was not
	// supplied at all (query parameter, form value, or header).
	// The error message is expected to name the missing parameter.
	//
	// Transport mapper is framework-specific.
	// Can be mapped to an HTTP 400.
	MissingParam Category = "missing_param"

	// UnsupportedMedia indicates that the request declared a content type
	// the endpoint cannot consume.
	// The error message is expected to name the rejected media type and the
	// list of supported ones.
	//
	// Transport mapper is framework-specific.
	// Can be mapped to an HTTP 415.
	UnsupportedMedia Category = "unsupported_media"

	// MalformedBody indicates that the request body could not be parsed at
	// all (broken JSON syntax, truncated payload, trailing garbage).
	// Distinct from Validation, which is about a parseable but invalid body.
	//
	// Transport mapper is framework-specific.
	// Can be mapped to an HTTP 400.
	MalformedBody Category = "malformed_body"

	// TypeMismatch indicates that a parameter or body field was present but
	// could not be converted to the required type (e.g. "abc" where an
	// integer is expected).
	// The error message is expected to name the parameter, the rejected
	// value, and the required type.
	//
	// Transport mapper is framework-specific.
	// Can be mapped to an HTTP 400.
	TypeMismatch Category = "type_mismatch"

	// Validation indicates that the request was structurally readable but
	// one or more fields violate validation rules.
	// Errors of this category usually carry a list of field-level
	// sub-errors so clients can render per-field feedback.
	//
	// Transport mapper is framework-specific.
	// Can be mapped to an HTTP 400.
	Validation Category = "validation"
)

// Routing / protocol error categories
//
// These categories describe failures at the dispatch layer, before a
// handler is ever selected.
const (
	// NoRoute indicates that no handler is registered for the requested
	// method/URL combination.
	// The error message is expected to name both.
	//
	// Transport mapper is framework-specific.
	// Can be mapped to an HTTP 404.
	NoRoute Category = "no_route"

	// MethodNotAllowed indicates that the URL is known but the HTTP method
	// is not supported on it.
	//
	// Transport mapper is framework-specific.
	// Can be mapped to an HTTP 405.
	MethodNotAllowed Category = "method_not_allowed"
)

// Resource / state error categories
//
// These categories describe common CRUD-level conditions surfaced by the
// application behind the translation layer.
const (
	// NotFound indicates that the requested entity does not exist in the
	// current scope or storage.
	// Use this for lookups by ID, name, key, or reference.
	//
	// Transport mapper is framework-specific.
	// Can be mapped to an HTTP 404.
	NotFound Category = "not_found"

	// AlreadyExists indicates that the target entity cannot be created
	// because an entity with the same identity already exists.
	//
	// Transport mapper is framework-specific.
	// Can be mapped to an HTTP 409.
	AlreadyExists Category = "already_exists"

	// IntegrityViolation indicates that a storage-level integrity
	// constraint rejected the operation (unique index, foreign key, check
	// constraint). The underlying driver error should be carried as the
	// cause.
	//
	// Transport mapper is framework-specific.
	// Can be mapped to an HTTP 409.
	IntegrityViolation Category = "integrity_violation"
)

// Server-side error categories
const (
	// NotWritable indicates that the server failed while serializing the
	// response body. The client request may have been perfectly valid.
	//
	// Transport mapper is framework-specific.
	// Can be mapped to an HTTP 500.
	NotWritable Category = "not_writable"

	// Internal indicates an internal, non-classified failure.
	// This is the fallback category for every error the translation layer
	// does not recognize. The root cause is attached as the error cause and
	// never exposed to clients by default.
	//
	// Transport mapper is framework-specific.
	// Can be mapped to an HTTP 500.
	Internal Category = "internal"
)

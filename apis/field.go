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

// FieldError represents a single field-level validation failure attached to
// an error. This is a *view type* — small, transport-friendly, and suitable
// for JSON serialization as one entry of the payload's "sub_errors" list.
//
// We keep it in apis so that different parts of the system (validators,
// HTTP/gRPC adapters, loggers) can speak about sub-errors without importing
// the concrete error implementation.
//
// Typical usages:
//   - report which field of which object failed validation;
//   - report the rejected value alongside the constraint message;
//   - report an argument whose value could not be converted.
type FieldError struct {
	// Object names the validated object or request DTO, e.g. "user" or
	// "createOrderRequest". For top-level parameters this may be empty.
	Object string `json:"object,omitempty"`

	// Field carries the logical path to the failing field, e.g. "email" or
	// "address.zip". For object-level errors this may be empty.
	Field string `json:"field,omitempty"`

	// RejectedValue is the value that failed validation, as supplied by the
	// client. It must be safe to marshal to JSON; implementations should
	// avoid placing secrets here.
	RejectedValue any `json:"rejected_value,omitempty"`

	// Message is the human-readable explanation of why the value was
	// rejected, e.g. "must not be blank" or "must be a positive integer".
	Message string `json:"message"`
}

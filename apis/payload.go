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

import "time"

// Payload is the uniform API error record written to clients.
//
// It is constructed fresh per failed request and immediately serialized;
// it has no identity and no lifecycle beyond a single response. Keeping it
// here (in apis) allows the HTTP adapter, the gRPC adapter and tests to
// share the same shape.
//
// The JSON field names are part of the wire contract and must not change.
type Payload struct {
	// Status is the HTTP status code selected for the error category.
	// It is repeated in the body so that clients reading the payload out of
	// band (logs, queues) do not need the transport envelope.
	Status int `json:"status"`

	// Timestamp records when the error response was built, in UTC.
	// Serialized as RFC 3339.
	Timestamp time.Time `json:"timestamp"`

	// Message is the top-level human-readable description of the failure.
	// This is what API consumers are expected to show or log.
	Message string `json:"message"`

	// Category is the machine-readable classification of the failure,
	// e.g. "validation" or "not_found".
	Category string `json:"category,omitempty"`

	// DebugMessage optionally carries diagnostic detail from the underlying
	// cause. Adapters only populate it when explicitly configured to expose
	// debug information.
	DebugMessage string `json:"debug_message,omitempty"`

	// SubErrors lists field-level validation failures, when the category
	// carries them (validation, type mismatches reported per field).
	SubErrors []FieldError `json:"sub_errors,omitempty"`
}

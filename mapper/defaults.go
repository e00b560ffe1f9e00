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

package mapper

import (
	"net/http"

	"dirpx.dev/resterr/category"
	"google.golang.org/grpc/codes"
)

// defaultHTTP defines the library's built-in HTTP mappings for the canonical
// categories. These are only defaults: callers are expected to override them
// at the boundary where HTTP is actually produced when their API contract
// differs (e.g. APIs that report unmatched routes as 400).
var defaultHTTP = map[category.Category]int{
	// Request shape.
	category.MissingParam:     http.StatusBadRequest,           // Required parameter absent from the request.
	category.UnsupportedMedia: http.StatusUnsupportedMediaType, // Declared content type not consumable.
	category.MalformedBody:    http.StatusBadRequest,           // Body could not be parsed at all.
	category.TypeMismatch:     http.StatusBadRequest,           // Value present but not convertible to the required type.
	category.Validation:       http.StatusBadRequest,           // Parseable body violating field-level rules.

	// Routing / protocol.
	category.NoRoute:          http.StatusNotFound,         // No handler registered for method+URL.
	category.MethodNotAllowed: http.StatusMethodNotAllowed, // URL known, method rejected.

	// Resource state.
	category.NotFound:           http.StatusNotFound, // Target entity does not exist.
	category.AlreadyExists:      http.StatusConflict, // Creation clash on existing identity.
	category.IntegrityViolation: http.StatusConflict, // Storage constraint rejected the operation.

	// Server side.
	category.NotWritable: http.StatusInternalServerError, // Response serialization failed.
	category.Internal:    http.StatusInternalServerError, // Generic internal failure; do not expose details.
}

// defaultGRPC defines the library's built-in gRPC mappings for the canonical
// categories. These values are chosen to align with canonical gRPC status
// codes while still preserving the HTTP-centric meanings of the categories.
// As with HTTP, callers may override these at the transport edge.
var defaultGRPC = map[category.Category]codes.Code{
	// Request shape — all client contract violations.
	category.MissingParam:     codes.InvalidArgument,
	category.UnsupportedMedia: codes.InvalidArgument,
	category.MalformedBody:    codes.InvalidArgument,
	category.TypeMismatch:     codes.InvalidArgument,
	category.Validation:       codes.InvalidArgument,

	// Routing / protocol — the closest gRPC notion of "no such endpoint".
	category.NoRoute:          codes.Unimplemented,
	category.MethodNotAllowed: codes.Unimplemented,

	// Resource state.
	category.NotFound:           codes.NotFound,
	category.AlreadyExists:      codes.AlreadyExists,
	category.IntegrityViolation: codes.FailedPrecondition, // Storage constraint; client must change the request.

	// Server side.
	category.NotWritable: codes.Internal,
	category.Internal:    codes.Internal,
}

// defaultMessage defines the default human-readable message per category.
// These are used when the error instance carries no message of its own —
// which is the common case for categories like not_found and internal, where
// the generic text is deliberately all a client should see.
var defaultMessage = map[category.Category]string{
	category.MissingParam:     "Required parameter is missing",
	category.UnsupportedMedia: "Media type is not supported",
	category.MalformedBody:    "Malformed JSON request",
	category.TypeMismatch:     "Parameter type mismatch",
	category.Validation:       "Validation error",

	category.NoRoute:          "No handler found for request",
	category.MethodNotAllowed: "Specified HTTP method is not allowed",

	category.NotFound:           "The entity with the specified ID was not found",
	category.AlreadyExists:      "The entity already exists",
	category.IntegrityViolation: "Data integrity violation",

	category.NotWritable: "Error writing JSON output",
	category.Internal:    "Internal error occurred",
}

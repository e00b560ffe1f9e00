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

import (
	"dirpx.dev/resterr/category"
	"google.golang.org/grpc/codes"
)

// Mapper is an immutable, concurrency-safe view of the dispatch table.
// It resolves a logical error category into transport statuses for HTTP and
// gRPC, plus the default human-readable message for that category.
type Mapper interface {
	// HTTPStatus returns the HTTP status code for the given category.
	// Unknown categories must resolve to the mapper's fallback status.
	HTTPStatus(c category.Category) int

	// GRPCStatus returns the gRPC status code for the given category.
	// Unknown categories must resolve to the mapper's fallback code.
	GRPCStatus(c category.Category) codes.Code

	// Message returns the default human-readable message for the category.
	// It is used when the error instance did not provide one of its own.
	Message(c category.Category) string

	// Status resolves HTTP, gRPC and message in a single call, using the
	// same matching logic.
	Status(c category.Category) Status

	// Explain returns a human-readable description of which rule matched.
	// Implementations may return an empty string in production builds.
	Explain(c category.Category) string
}

// Status represents a resolved triple for a single error category.
// It is the final output of the mapper and can be written directly to
// HTTP/gRPC responses.
type Status struct {
	HTTP    int        // Resolved HTTP status code (net/http compatible).
	GRPC    codes.Code // Resolved gRPC status code.
	Message string     // Default message for the category.
}

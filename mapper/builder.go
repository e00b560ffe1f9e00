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

type builder struct {
	// user-provided adjustments (applied on top of library defaults)

	// httpDefaults holds per-category HTTP defaults that override library
	// defaults.
	httpDefaults map[category.Category]int
	// grpcDefaults holds per-category gRPC defaults as ints; converted to
	// codes.Code in New().
	grpcDefaults map[category.Category]int
	// msgDefaults holds per-category default messages that override library
	// defaults.
	msgDefaults map[category.Category]string

	// httpOverride holds exact per-category HTTP overrides (higher than
	// defaults).
	httpOverride map[category.Category]int
	// grpcOverride holds exact per-category gRPC overrides as ints;
	// converted in New().
	grpcOverride map[category.Category]int
	// msgOverride holds exact per-category message overrides.
	msgOverride map[category.Category]string

	// global fallbacks used when a category has no default at all.
	fallbackHTTP int
	fallbackGRPC codes.Code
	fallbackMsg  string
}

// newBuilder creates an empty builder with maps pre-sized to hold typical
// numbers of entries.
func newBuilder() *builder {
	return &builder{
		// we size the maps roughly to the number of built-in defaults
		httpDefaults: make(map[category.Category]int, len(defaultHTTP)),
		grpcDefaults: make(map[category.Category]int, len(defaultGRPC)),
		msgDefaults:  make(map[category.Category]string, len(defaultMessage)),

		// overrides are usually few
		httpOverride: make(map[category.Category]int),
		grpcOverride: make(map[category.Category]int),
		msgOverride:  make(map[category.Category]string),

		// hard fallbacks if the category was never seen
		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: codes.Internal,
		fallbackMsg:  "Unexpected error",
	}
}

// categories returns every category the builder references, so New can
// validate all dispatch keys in one pass.
func (b *builder) categories() []category.Category {
	seen := make(map[category.Category]struct{})
	collect := func(c category.Category) {
		seen[c] = struct{}{}
	}
	for c := range b.httpDefaults {
		collect(c)
	}
	for c := range b.grpcDefaults {
		collect(c)
	}
	for c := range b.msgDefaults {
		collect(c)
	}
	for c := range b.httpOverride {
		collect(c)
	}
	for c := range b.grpcOverride {
		collect(c)
	}
	for c := range b.msgOverride {
		collect(c)
	}
	out := make([]category.Category, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	return out
}

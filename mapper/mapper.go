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
	"fmt"
	"strings"

	"dirpx.dev/resterr/apis"
	"dirpx.dev/resterr/category"
	"google.golang.org/grpc/codes"
)

// New constructs an immutable apis.Mapper snapshot.
//
// The resulting apis.Mapper is fully thread-safe and designed for long-lived
// reuse. Each build creates a self-contained mapper instance — no shared
// references to global state or user-provided structures remain.
//
// Build process overview:
//
//  1. Seed the builder with library defaults (HTTP, gRPC, messages).
//  2. Apply user-provided options (defaults, overrides, fallbacks).
//  3. Validate every referenced category (via category.Validate).
//  4. Freeze all maps into immutable copies (fresh allocations).
//
// Errors returned from this function indicate non-canonical categories in
// the supplied options.
func New(opts ...Option) (apis.Mapper, error) {
	// (0) Start with an empty builder.
	// We do not assume any pre-seeded state.
	b := newBuilder()

	// (1) Seed the builder with package-level defaults.
	// Copy into builder-owned maps to prevent external mutation.
	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		// Keep values as int for internal uniformity;
		// convert to codes.Code when freezing the final snapshot.
		b.grpcDefaults[k] = int(v)
	}
	for k, v := range defaultMessage {
		b.msgDefaults[k] = v
	}

	// (2) Apply user-supplied options (defaults, overrides, fallbacks).
	for _, opt := range opts {
		opt(b)
	}

	// (3) Validate every dispatch key the options introduced.
	for _, c := range b.categories() {
		if err := category.Validate(c); err != nil {
			return nil, fmt.Errorf("mapper: invalid category %q: %w", c, err)
		}
	}

	// (4) Freeze everything into a read-only snapshot.
	// Each map is freshly allocated.
	m := &mapper{
		httpDefault: freezeHTTP(b.httpDefaults),
		grpcDefault: freezeGRPC(b.grpcDefaults),
		msgDefault:  freezeMessages(b.msgDefaults),

		httpOverride: freezeHTTP(b.httpOverride),
		grpcOverride: freezeGRPC(b.grpcOverride),
		msgOverride:  freezeMessages(b.msgOverride),

		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
		fallbackMsg:  b.fallbackMsg,
	}

	return m, nil
}

// mapper is an immutable mapper implementation that combines per-category
// defaults and per-category exact overrides for three axes: HTTP status,
// gRPC status, and default message. Lookups are O(1) and safe for concurrent
// use once constructed.
type mapper struct {
	// httpDefault holds the base HTTP status for a given category.
	// Used when no override is present.
	httpDefault map[category.Category]int

	// grpcDefault holds the base gRPC status for a given category.
	grpcDefault map[category.Category]codes.Code

	// msgDefault holds the default human message for a given category.
	msgDefault map[category.Category]string

	// httpOverride holds explicit HTTP statuses for specific categories.
	// These take precedence over defaults.
	httpOverride map[category.Category]int

	// grpcOverride holds explicit gRPC statuses for specific categories.
	grpcOverride map[category.Category]codes.Code

	// msgOverride holds explicit messages for specific categories.
	msgOverride map[category.Category]string

	// fallbackHTTP is used when there is no mapping at all for a category.
	// Typically http.StatusInternalServerError.
	fallbackHTTP int

	// fallbackGRPC is used when there is no mapping at all for a category.
	// Typically codes.Internal.
	fallbackGRPC codes.Code

	// fallbackMsg is used when there is no message at all for a category.
	fallbackMsg string
}

// HTTPStatus resolves an HTTP status for the given category.
//
// Resolution order (highest to lowest):
//  1. exact per-category override (explicitly registered);
//  2. per-category default (library or user overridden);
//  3. hardcoded ultimate fallback (500).
func (m *mapper) HTTPStatus(c category.Category) int {
	// 1. Fast path: exact override for this category.
	if v, ok := m.httpOverride[c]; ok {
		return v
	}

	// 2. Per-category default.
	if v, ok := m.httpDefault[c]; ok {
		return v
	}

	// 3. Ultimate fallback: HTTP must never be zero.
	return m.fallbackHTTP
}

// GRPCStatus resolves a gRPC status for the given category.
// Uses the same precedence as HTTPStatus, but returns gRPC codes.
//
// Resolution order:
//  1. exact per-category override;
//  2. per-category default;
//  3. hardcoded fallback (codes.Internal).
func (m *mapper) GRPCStatus(c category.Category) codes.Code {
	// 1. Exact override.
	if v, ok := m.grpcOverride[c]; ok {
		return v
	}

	// 2. Default for this category.
	if v, ok := m.grpcDefault[c]; ok {
		return v
	}

	// 3. Ultimate fallback.
	return m.fallbackGRPC
}

// Message resolves the default human-readable message for the category.
// Uses the same precedence as the status axes.
func (m *mapper) Message(c category.Category) string {
	if v, ok := m.msgOverride[c]; ok {
		return v
	}
	if v, ok := m.msgDefault[c]; ok {
		return v
	}
	return m.fallbackMsg
}

// Status resolves HTTP, gRPC and message using the same inputs.
// This keeps all three decisions consistent for a single logical error.
func (m *mapper) Status(c category.Category) apis.Status {
	return apis.Status{
		HTTP:    m.HTTPStatus(c),
		GRPC:    m.GRPCStatus(c),
		Message: m.Message(c),
	}
}

// Explain produces a textual trace of how the mapper resolved the HTTP
// status, gRPC status and message for a particular category.
//
// This is primarily a diagnostic tool: it shows which tier matched
// (override, default, or fallback) on each axis.
//
// Example output:
//
//	category="no_route"
//	http: source=override -> 400
//	grpc: source=default -> UNIMPLEMENTED(12)
//	message: source=default -> "No handler found for request"
//
// Notes:
//   - source ∈ {override | default | fallback}
func (m *mapper) Explain(c category.Category) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "category=%q\n", c)

	// ---- HTTP ----
	if v, ok := m.httpOverride[c]; ok {
		_, _ = fmt.Fprintf(&b, "http: source=override -> %d\n", v)
	} else if v, ok := m.httpDefault[c]; ok {
		_, _ = fmt.Fprintf(&b, "http: source=default -> %d\n", v)
	} else {
		_, _ = fmt.Fprintf(&b, "http: source=fallback -> %d\n", m.fallbackHTTP)
	}

	// ---- gRPC ----
	if v, ok := m.grpcOverride[c]; ok {
		_, _ = fmt.Fprintf(&b, "grpc: source=override -> %s\n", grpcLabel(v))
	} else if v, ok := m.grpcDefault[c]; ok {
		_, _ = fmt.Fprintf(&b, "grpc: source=default -> %s\n", grpcLabel(v))
	} else {
		_, _ = fmt.Fprintf(&b, "grpc: source=fallback -> %s\n", grpcLabel(m.fallbackGRPC))
	}

	// ---- message ----
	if v, ok := m.msgOverride[c]; ok {
		_, _ = fmt.Fprintf(&b, "message: source=override -> %q\n", v)
	} else if v, ok := m.msgDefault[c]; ok {
		_, _ = fmt.Fprintf(&b, "message: source=default -> %q\n", v)
	} else {
		_, _ = fmt.Fprintf(&b, "message: source=fallback -> %q\n", m.fallbackMsg)
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// grpcLabel formats a gRPC code as NAME(number) for Explain output.
func grpcLabel(c codes.Code) string {
	return fmt.Sprintf("%s(%d)", strings.ToUpper(c.String()), int(c))
}

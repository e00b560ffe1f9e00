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
	"dirpx.dev/resterr/category"
	"google.golang.org/grpc/codes"
)

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithHTTPDefault sets or replaces the library-level default HTTP status
// for the given category. This affects the value used when no override is
// registered.
func WithHTTPDefault(c category.Category, http int) Option {
	return func(b *builder) { b.httpDefaults[c] = http }
}

// WithGRPCDefault sets or replaces the library-level default gRPC status
// for the given category. This affects the value used when no override is
// registered.
func WithGRPCDefault(c category.Category, grpc int) Option {
	return func(b *builder) { b.grpcDefaults[c] = grpc }
}

// WithMessageDefault sets or replaces the library-level default message for
// the given category.
func WithMessageDefault(c category.Category, msg string) Option {
	return func(b *builder) { b.msgDefaults[c] = msg }
}

// WithHTTPOverride registers an exact HTTP override for the given category.
// Overrides take precedence over defaults.
func WithHTTPOverride(c category.Category, http int) Option {
	return func(b *builder) { b.httpOverride[c] = http }
}

// WithGRPCOverride registers an exact gRPC override for the given category.
// Overrides take precedence over defaults.
func WithGRPCOverride(c category.Category, grpc int) Option {
	return func(b *builder) { b.grpcOverride[c] = grpc }
}

// WithMessageOverride registers an exact message override for the given
// category. Overrides take precedence over defaults.
func WithMessageOverride(c category.Category, msg string) Option {
	return func(b *builder) { b.msgOverride[c] = msg }
}

// WithHTTPFallback replaces the global HTTP fallback used for categories the
// mapper has no entry for. Defaults to 500.
func WithHTTPFallback(http int) Option {
	return func(b *builder) { b.fallbackHTTP = http }
}

// WithGRPCFallback replaces the global gRPC fallback used for categories the
// mapper has no entry for. Defaults to codes.Internal.
func WithGRPCFallback(grpc codes.Code) Option {
	return func(b *builder) { b.fallbackGRPC = grpc }
}

// WithMessageFallback replaces the global message fallback used for
// categories the mapper has no entry for.
func WithMessageFallback(msg string) Option {
	return func(b *builder) { b.fallbackMsg = msg }
}

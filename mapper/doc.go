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

// Package mapper provides deterministic, immutable mappings from logical
// resterr categories (dirpx.dev/resterr/category) to transport-level
// statuses for HTTP and gRPC and to default human-readable messages.
//
// # Overview
//
// In resterr every translated failure is expressed as a Category, e.g.
// category.MissingParam or category.NotFound. Transport layers (HTTP
// writers, gRPC interceptors) need to turn that category into a concrete
// status code and, when the error instance carries no message of its own, a
// default message. Package mapper does that in a way that is:
//
//   - immutable — a Mapper is a snapshot, safe for concurrent reuse;
//   - overridable — callers can change library defaults per Category;
//   - dual — HTTP and gRPC are resolved with the same logic;
//   - flat — resolution is a per-category lookup, with no hierarchy.
//
// # Resolution model
//
// A Mapper resolves each axis (HTTP, gRPC, message) in the following order:
//
//  1. exact override for the Category;
//  2. per-Category default (library or user-adjusted);
//  3. global fallback (500 / codes.Internal / a generic message).
//
// # Library defaults
//
// The package ships with defaults for every canonical category, mapping them
// to standard net/http constants and grpc/codes values (e.g.
// category.Validation -> 400 / InvalidArgument, category.NotFound -> 404 /
// NotFound, category.Internal -> 500 / Internal). These can be adjusted at
// build time.
//
// # Building a mapper
//
// A Mapper is created once and reused:
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride(category.NoRoute, http.StatusBadRequest),
//	    mapper.WithMessageOverride(category.Internal, "Internal error occured"),
//	)
//	if err != nil {
//	    // invalid category, etc.
//	}
//
//	st := m.Status(category.NotFound)
//	// st.HTTP == 404, st.GRPC == codes.NotFound
//
// # Rule files
//
// Deployments that need to adjust the table without recompiling can keep the
// overrides in a YAML rule file and load it with LoadRules:
//
//	opts, err := mapper.LoadRules("resterr.yaml")
//	if err != nil { ... }
//	m, err := mapper.New(opts...)
//
// # Diagnostics
//
// For debugging and tests, Mapper.Explain returns a human-readable trace of
// how a particular category was resolved, including which tier matched.
//
// This is intended for inspection and logging, not for stable machine
// parsing.
//
// # Immutability
//
// All user-provided inputs are copied during New. After construction, the
// Mapper does not observe further changes to the caller's maps or slices.
// This makes it safe to share a single instance across handlers, goroutines,
// and requests.
package mapper

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

// Package category provides parsing, normalization and validation for
// resterr error categories.
//
// A "category" is the machine-readable classification of a request-handling
// failure, such as "missing_param", "validation", "not_found" or
// "internal". Categories are the dispatch keys of the translation layer:
// the mapper resolves each one to an HTTP status, a gRPC code and a default
// message. Categories are meant to be:
//
//   - short and stable;
//   - lowercased;
//   - underscore-separated (not dash-separated);
//   - suitable for use in JSON payloads and for lookup in mapper tables.
//
// IMPORTANT: Empty categories ("") are NOT allowed. Every translated error
// MUST have a non-empty category.
//
// This package defines the canonical representation, the fixed set of
// categories the library recognizes, and the functions that convert
// arbitrary user input to canonical form.
package category

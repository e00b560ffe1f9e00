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

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Category is the canonical, validated representation of an error category.
//
// A category names one recognized class of request-handling failure — the
// dispatch key that the status mapper and the response builders operate on.
// It is defined as a separate type (not just string) so that other packages
// can explicitly declare which values they expect and to avoid accidental
// mixing of raw user input with normalized values.
//
// IMPORTANT: Empty categories ("") are NOT allowed. Every translated error
// MUST have a non-empty category.
type Category string

// MinLength and MaxLength define the allowed length range for a canonical
// resterr category.
//
// We keep these values as separate constants so they can be referenced in
// validation errors, tests, or in other packages that want to mirror the same
// constraints.
const (
	// MinLength is the minimum length for a valid category.
	// We require at least 3 characters so that ultra-short and ambiguous
	// identifiers like "a" or "x1" are not accepted.
	MinLength = 3

	// MaxLength is the maximum length for a valid category.
	// 64 characters is enough for descriptive categories like
	// "integrity_violation" while still preventing unbounded or accidental
	// long strings.
	MaxLength = 64
)

const (
	// categoryFmt is the canonical regular expression used to validate
	// category identifiers.
	//
	// Pattern breakdown:
	//
	//	^ - start of string;
	//	[a-z] - first character must be a lowercase ASCII letter;
	//	[a-z0-9_]{2,63} - the remaining characters may be lowercase letters,
	//	                  digits or underscore; the quantifier {2,63} makes the
	//	                  total length 3..64 characters (1 + 2..63);
	//	$ - end of string;
	//
	// IMPORTANT: the numeric range {2,63} is tied to MinLength / MaxLength
	// above. If you change MinLength / MaxLength, make sure to adjust this
	// pattern as well.
	categoryFmt = `^[a-z][a-z0-9_]{2,63}$`
)

var (
	// categoryRe is the compiled regular expression used at runtime to
	// validate that a string is a canonical resterr category.
	//
	// We precompile it so that repeated validations (e.g. in rule-file
	// parsing or in hot paths) do not pay the compilation cost over and
	// over again.
	//
	// Examples of valid categories:
	//   - "validation"
	//   - "not_found"
	//   - "missing_param"
	//   - "internal"
	//
	// Examples of invalid categories:
	//   - "Validation"  (uppercase)
	//   - "not-found"   (dash instead of underscore)
	//   - "x"           (too short)
	//   - "1invalid"    (does not start with a letter)
	categoryRe = regexp.MustCompile(categoryFmt)
)

var (
	// ErrCategoryInvalid is returned when a value cannot be parsed or
	// validated as a resterr category.
	//
	// Having a dedicated sentinel error makes it easier for callers and tests
	// to detect "this is about category format" vs "this is some other error".
	ErrCategoryInvalid = errors.New("resterr: invalid category")
)

// Ensure Category implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger config or API structs.
var (
	_ encoding.TextMarshaler   = (*Category)(nil)
	_ encoding.TextUnmarshaler = (*Category)(nil)
)

// Empty is the zero-value category. It is considered "not provided" and is
// valid to store in error structs. Callers that require a non-empty,
// canonical category should explicitly call Validate.
var Empty Category = ""

// Parse takes a user-provided string, normalizes it and validates it.
// On success it returns a canonical Category value.
func Parse(s string) (Category, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Category(s), nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level constants in init() or var blocks.
func MustParse(s string) Category {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Normalize takes an arbitrary string and tries to bring it closer to the
// canonical category form.
//
// This function is intentionally conservative: it only performs obvious,
// non-lossy transformations:
//
//   - trims surrounding spaces;
//   - lowercases the value;
//   - replaces '-' with '_';
//
// It does NOT guarantee that the result is valid — callers should still call
// Validate/Parse after normalization.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Validate checks whether the provided Category is valid.
// The empty category ("") is considered invalid.
func Validate(c Category) error {
	return validate(string(c))
}

// String returns the canonical string representation of the category.
func (c Category) String() string {
	return string(c)
}

// MarshalText implements encoding.TextMarshaler.
//
// It always returns the canonical string representation.
func (c Category) MarshalText() ([]byte, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning.
func (c *Category) UnmarshalText(text []byte) error {
	// We copy into a buffer to avoid changing the input slice.
	s := string(bytes.TrimSpace(text))
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// validate is a helper that checks whether the provided string is a valid
// category.
func validate(s string) error {
	if !categoryRe.MatchString(s) {
		return ErrCategoryInvalid
	}
	return nil
}

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
	"errors"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trim spaces", "  internal  ", "internal"},
		{"to lower", "VaLiDaTiOn", "validation"},
		{"dash to underscore", "not-found", "not_found"},
		{"mixed", "  MISSING-PARAM  ", "missing_param"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Category
	}{
		{"simple", "internal", Category("internal")},
		{"with spaces", "  not_found  ", Category("not_found")},
		{"upper", "VALIDATION", Category("validation")},
		{"dash", "already-exists", Category("already_exists")},
		{"min length", "abc", Category("abc")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"too short", "a"},
		{"starts with digit", "1invalid"},
		{"contains dot", "no.route"},
		{"contains space", "no route"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.in)
			if !errors.Is(err, ErrCategoryInvalid) {
				t.Fatalf("Parse(%q) error = %v, want ErrCategoryInvalid", tt.in, err)
			}
		})
	}
}

func TestCanonicalCategories_AreValid(t *testing.T) {
	all := []Category{
		MissingParam, UnsupportedMedia, MalformedBody, TypeMismatch,
		Validation, NoRoute, MethodNotAllowed, NotFound, AlreadyExists,
		IntegrityViolation, NotWritable, Internal,
	}
	for _, c := range all {
		if err := Validate(c); err != nil {
			t.Fatalf("canonical category %q does not validate: %v", c, err)
		}
	}
}

func TestTextMarshaling_RoundTrip(t *testing.T) {
	b, err := NotFound.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	var c Category
	if err := c.UnmarshalText(b); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if c != NotFound {
		t.Fatalf("round trip = %q, want %q", c, NotFound)
	}
}

func TestUnmarshalText_Normalizes(t *testing.T) {
	var c Category
	if err := c.UnmarshalText([]byte("  NOT-FOUND ")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if c != NotFound {
		t.Fatalf("got %q, want %q", c, NotFound)
	}
}

func TestMarshalText_RejectsInvalid(t *testing.T) {
	if _, err := Category("Bad Value").MarshalText(); err == nil {
		t.Fatal("MarshalText must reject non-canonical categories")
	}
}

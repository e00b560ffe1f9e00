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
	"strings"
	"sync"
	"testing"

	"google.golang.org/grpc/codes"

	"dirpx.dev/resterr/apis"
	"dirpx.dev/resterr/category"
)

func mustNew(t *testing.T, opts ...Option) apis.Mapper {
	t.Helper()
	m, err := New(opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func TestDefaults(t *testing.T) {
	m := mustNew(t)

	tests := []struct {
		name     string
		category category.Category
		want     apis.Status
	}{
		{"missing param", category.MissingParam, apis.Status{HTTP: 400, GRPC: codes.InvalidArgument, Message: "Required parameter is missing"}},
		{"unsupported media", category.UnsupportedMedia, apis.Status{HTTP: 415, GRPC: codes.InvalidArgument, Message: "Media type is not supported"}},
		{"malformed body", category.MalformedBody, apis.Status{HTTP: 400, GRPC: codes.InvalidArgument, Message: "Malformed JSON request"}},
		{"validation", category.Validation, apis.Status{HTTP: 400, GRPC: codes.InvalidArgument, Message: "Validation error"}},
		{"no route", category.NoRoute, apis.Status{HTTP: 404, GRPC: codes.Unimplemented, Message: "No handler found for request"}},
		{"method not allowed", category.MethodNotAllowed, apis.Status{HTTP: 405, GRPC: codes.Unimplemented, Message: "Specified HTTP method is not allowed"}},
		{"not found", category.NotFound, apis.Status{HTTP: 404, GRPC: codes.NotFound, Message: "The entity with the specified ID was not found"}},
		{"already exists", category.AlreadyExists, apis.Status{HTTP: 409, GRPC: codes.AlreadyExists, Message: "The entity already exists"}},
		{"integrity violation", category.IntegrityViolation, apis.Status{HTTP: 409, GRPC: codes.FailedPrecondition, Message: "Data integrity violation"}},
		{"internal", category.Internal, apis.Status{HTTP: 500, GRPC: codes.Internal, Message: "Internal error occurred"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Status(tt.category); got != tt.want {
				t.Fatalf("Status(%q) = %+v, want %+v", tt.category, got, tt.want)
			}
		})
	}
}

func TestOverride_BeatsDefault(t *testing.T) {
	m := mustNew(t,
		WithHTTPOverride(category.NoRoute, http.StatusBadRequest),
		WithGRPCOverride(category.NoRoute, int(codes.NotFound)),
		WithMessageOverride(category.Internal, "Something went wrong"),
	)

	if got := m.HTTPStatus(category.NoRoute); got != 400 {
		t.Fatalf("HTTPStatus = %d, want 400", got)
	}
	if got := m.GRPCStatus(category.NoRoute); got != codes.NotFound {
		t.Fatalf("GRPCStatus = %v, want NotFound", got)
	}
	if got := m.Message(category.Internal); got != "Something went wrong" {
		t.Fatalf("Message = %q", got)
	}

	// Untouched categories keep their defaults.
	if got := m.HTTPStatus(category.NotFound); got != 404 {
		t.Fatalf("HTTPStatus(not_found) = %d, want 404", got)
	}
}

func TestDefaultOption_ReplacesLibraryDefault(t *testing.T) {
	m := mustNew(t,
		WithHTTPDefault(category.IntegrityViolation, http.StatusUnprocessableEntity),
	)
	if got := m.HTTPStatus(category.IntegrityViolation); got != 422 {
		t.Fatalf("HTTPStatus = %d, want 422", got)
	}
}

func TestFallback_UnknownCategory(t *testing.T) {
	m := mustNew(t)

	c := category.Category("quota_exceeded")
	if got := m.HTTPStatus(c); got != http.StatusInternalServerError {
		t.Fatalf("HTTPStatus = %d, want 500", got)
	}
	if got := m.GRPCStatus(c); got != codes.Internal {
		t.Fatalf("GRPCStatus = %v, want Internal", got)
	}
	if got := m.Message(c); got != "Unexpected error" {
		t.Fatalf("Message = %q", got)
	}
}

func TestFallback_Configurable(t *testing.T) {
	m := mustNew(t,
		WithHTTPFallback(http.StatusBadGateway),
		WithGRPCFallback(codes.Unknown),
		WithMessageFallback("It broke"),
	)

	c := category.Category("quota_exceeded")
	want := apis.Status{HTTP: 502, GRPC: codes.Unknown, Message: "It broke"}
	if got := m.Status(c); got != want {
		t.Fatalf("Status = %+v, want %+v", got, want)
	}
}

func TestNew_RejectsInvalidCategory(t *testing.T) {
	_, err := New(WithHTTPOverride(category.Category("Not Canonical"), 400))
	if err == nil {
		t.Fatal("New must reject non-canonical option categories")
	}
	if !strings.Contains(err.Error(), "Not Canonical") {
		t.Fatalf("error %q should name the offending category", err)
	}
}

func TestMapper_ConcurrentReads(t *testing.T) {
	m := mustNew(t, WithHTTPOverride(category.NoRoute, 400))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = m.Status(category.NoRoute)
				_ = m.Status(category.NotFound)
				_ = m.Explain(category.Internal)
			}
		}()
	}
	wg.Wait()
}

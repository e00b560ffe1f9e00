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

package grpcx

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"

	"dirpx.dev/resterr"
	"dirpx.dev/resterr/apis"
	"dirpx.dev/resterr/mapper"
)

func newInterceptor(t *testing.T) grpc.UnaryServerInterceptor {
	t.Helper()
	m, err := mapper.New()
	if err != nil {
		t.Fatalf("mapper.New: %v", err)
	}
	return UnaryServerInterceptor(m, nil)
}

func invoke(t *testing.T, ic grpc.UnaryServerInterceptor, handlerErr error) error {
	t.Helper()
	info := &grpc.UnaryServerInfo{FullMethod: "/orders.v1.Orders/GetOrder"}
	_, err := ic(context.Background(), nil, info, func(ctx context.Context, req any) (any, error) {
		if handlerErr != nil {
			return nil, handlerErr
		}
		return "ok", nil
	})
	return err
}

func TestInterceptor_Success(t *testing.T) {
	ic := newInterceptor(t)
	info := &grpc.UnaryServerInfo{FullMethod: "/orders.v1.Orders/GetOrder"}
	resp, err := ic(context.Background(), nil, info, func(ctx context.Context, req any) (any, error) {
		return "ok", nil
	})
	if err != nil || resp != "ok" {
		t.Fatalf("resp=%v err=%v", resp, err)
	}
}

func TestInterceptor_CodeMapping(t *testing.T) {
	ic := newInterceptor(t)

	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"not found", resterr.NotFound("gone"), codes.NotFound},
		{"already exists", resterr.AlreadyExists("taken"), codes.AlreadyExists},
		{"validation", resterr.Validation(apis.FieldError{Field: "email", Message: "must not be blank"}), codes.InvalidArgument},
		{"missing param", resterr.MissingParam("team_name"), codes.InvalidArgument},
		{"integrity", resterr.IntegrityViolation(errors.New("duplicate key")), codes.FailedPrecondition},
		{"internal", resterr.Internal(errors.New("boom")), codes.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := invoke(t, ic, tt.err)
			st, ok := gstatus.FromError(err)
			if !ok {
				t.Fatalf("not a status error: %v", err)
			}
			if st.Code() != tt.want {
				t.Fatalf("code = %v, want %v", st.Code(), tt.want)
			}
		})
	}
}

func TestInterceptor_MessageFallsBackToMapper(t *testing.T) {
	ic := newInterceptor(t)

	err := invoke(t, ic, resterr.NotFound(""))
	st, _ := gstatus.FromError(err)
	if st.Message() != "The entity with the specified ID was not found" {
		t.Fatalf("message = %q", st.Message())
	}
}

func TestInterceptor_ErrorInfoDetail(t *testing.T) {
	ic := newInterceptor(t)

	err := invoke(t, ic, resterr.NotFound("gone").WithDetail("order_id", "o-17"))

	info, ok := ExtractErrorInfo(err)
	if !ok {
		t.Fatal("ErrorInfo detail missing")
	}
	if info.GetReason() != "NOT_FOUND" {
		t.Fatalf("reason = %q", info.GetReason())
	}
	if info.GetDomain() != ErrorDomain {
		t.Fatalf("domain = %q", info.GetDomain())
	}
	if info.GetMetadata()["order_id"] != "o-17" {
		t.Fatalf("metadata = %v", info.GetMetadata())
	}
}

func TestInterceptor_BadRequestDetail(t *testing.T) {
	ic := newInterceptor(t)

	err := invoke(t, ic, resterr.Validation(
		apis.FieldError{Object: "user", Field: "email", Message: "must be a valid email"},
		apis.FieldError{Object: "user", Field: "age", Message: "must be positive"},
	))

	br, ok := ExtractBadRequest(err)
	if !ok {
		t.Fatal("BadRequest detail missing")
	}
	if len(br.GetFieldViolations()) != 2 {
		t.Fatalf("violations = %d, want 2", len(br.GetFieldViolations()))
	}
	if br.GetFieldViolations()[0].GetField() != "email" {
		t.Fatalf("first violation = %+v", br.GetFieldViolations()[0])
	}

	// No field errors, no BadRequest detail.
	err = invoke(t, ic, resterr.NotFound("gone"))
	if _, ok := ExtractBadRequest(err); ok {
		t.Fatal("unexpected BadRequest detail")
	}
}

func TestInterceptor_ForeignErrorPassesThrough(t *testing.T) {
	ic := newInterceptor(t)

	orig := gstatus.Error(codes.PermissionDenied, "no access")
	err := invoke(t, ic, orig)
	if !errors.Is(err, orig) {
		t.Fatalf("foreign error must pass through untouched, got %v", err)
	}

	plain := errors.New("boom")
	if got := invoke(t, ic, plain); got != plain {
		t.Fatalf("plain error must pass through untouched, got %v", got)
	}
}

func TestExtract_NonStatusError(t *testing.T) {
	if _, ok := ExtractErrorInfo(nil); ok {
		t.Fatal("nil error must not yield details")
	}
	if _, ok := ExtractBadRequest(errors.New("plain")); ok {
		t.Fatal("plain error must not yield details")
	}
}

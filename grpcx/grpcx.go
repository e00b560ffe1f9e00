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
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"

	"dirpx.dev/resterr"
	"dirpx.dev/resterr/apis"
)

// ErrorDomain identifies this library in errdetails.ErrorInfo payloads.
const ErrorDomain = "resterr.dirpx.dev"

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// resterr errors into gRPC status errors with structured details.
//
// The provided apis.Mapper resolves categories into gRPC status codes.
// Each translated error is logged before it is returned, mirroring the HTTP
// side's logging contract. Errors that are not resterr errors (including
// statuses produced by other interceptors) pass through untouched.
//
// Attached details:
//   - errdetails.ErrorInfo carrying the category (upper-snake, per AIP-193)
//     and the error's structured details as string metadata;
//   - errdetails.BadRequest with one FieldViolation per field-level
//     sub-error, when the error carries any.
func UnaryServerInterceptor(m apis.Mapper, log *zap.Logger) grpc.UnaryServerInterceptor {
	if log == nil {
		log = zap.NewNop()
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		var de *resterr.Error
		if !errors.As(err, &de) {
			// Not ours — return as-is.
			return nil, err
		}

		st := m.Status(de.Category)

		msg := de.Message
		if msg == "" {
			msg = st.Message
		}

		log.Error("rpc failed",
			zap.String("category", string(de.Category)),
			zap.String("grpc_code", st.GRPC.String()),
			zap.String("method", info.FullMethod),
			zap.Error(err),
		)

		base := gstatus.New(st.GRPC, msg)

		details := []protoadapt.MessageV1{}
		details = append(details, &errdetails.ErrorInfo{
			Reason:   reasonFor(de),
			Domain:   ErrorDomain,
			Metadata: metadataFor(de),
		})
		if fields := de.ErrorFields(); len(fields) > 0 {
			br := &errdetails.BadRequest{}
			for _, f := range fields {
				br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
					Field:       f.Field,
					Description: f.Message,
				})
			}
			details = append(details, br)
		}

		// Try to attach details. If it fails — return base.
		if with, derr := base.WithDetails(details...); derr == nil {
			return nil, with.Err()
		}
		return nil, base.Err()
	}
}

// reasonFor renders the category in the UPPER_SNAKE_CASE form ErrorInfo
// expects.
func reasonFor(e *resterr.Error) string {
	return strings.ToUpper(string(e.Category))
}

// metadataFor flattens the error's details into the string map ErrorInfo
// carries. Values are rendered with %v; nested structures are not expanded.
func metadataFor(e *resterr.Error) map[string]string {
	if len(e.Details) == 0 {
		return nil
	}
	md := make(map[string]string, len(e.Details))
	for k, v := range e.Details {
		md[k] = fmt.Sprintf("%v", v)
	}
	return md
}

// ExtractErrorInfo pulls the errdetails.ErrorInfo out of a gRPC error, if
// present. Useful in tests and client code.
func ExtractErrorInfo(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Proto().GetDetails() {
		info := &errdetails.ErrorInfo{}
		if d.MessageIs(info) {
			if uerr := d.UnmarshalTo(info); uerr == nil {
				return info, true
			}
		}
	}
	return nil, false
}

// ExtractBadRequest pulls the errdetails.BadRequest out of a gRPC error, if
// present.
func ExtractBadRequest(err error) (*errdetails.BadRequest, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Proto().GetDetails() {
		br := &errdetails.BadRequest{}
		if d.MessageIs(br) {
			if uerr := d.UnmarshalTo(br); uerr == nil {
				return br, true
			}
		}
	}
	return nil, false
}

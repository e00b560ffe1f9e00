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

package resterr

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"dirpx.dev/resterr/apis"
	"dirpx.dev/resterr/category"
)

// Constructors in this file mirror the recognized failure classes one to
// one. Each produces an Error with the fixed category, a message enriched
// with the contextual values the client needs (missing parameter name,
// supported media types, mismatched argument), and structured details for
// logging.

// MissingParam reports that the required request parameter name was not
// supplied.
func MissingParam(name string) *Error {
	return E(category.MissingParam,
		fmt.Sprintf("%s parameter is missing", name),
		WithDetailOption("param", name),
	)
}

// UnsupportedMedia reports that the request declared media type got, which
// the endpoint cannot consume. The supported list is included in the message
// so clients can self-correct.
func UnsupportedMedia(got string, supported ...string) *Error {
	msg := fmt.Sprintf("%s media type is not supported", got)
	if len(supported) > 0 {
		msg = fmt.Sprintf("%s. Supported media types are %s",
			msg, strings.Join(supported, ", "))
	}
	return E(category.UnsupportedMedia, msg,
		WithDetailOption("media_type", got),
		WithDetailOption("supported", supported),
	)
}

// Validation reports that one or more fields violate validation rules.
// The sub-errors become the payload's "sub_errors" list.
func Validation(fields ...apis.FieldError) *Error {
	return E(category.Validation, "Validation error",
		WithFieldsOption(fields),
	)
}

// MalformedBody reports that the request body could not be parsed.
// The decode error is carried as the cause and surfaces as the debug
// message in logs.
func MalformedBody(cause error) *Error {
	return E(category.MalformedBody, "Malformed JSON request",
		WithCauseOption(cause),
	)
}

// NotWritable reports a server-side failure while serializing the response.
func NotWritable(cause error) *Error {
	return E(category.NotWritable, "Error writing JSON output",
		WithCauseOption(cause),
	)
}

// NoRoute reports that no handler is registered for the method/URL pair.
func NoRoute(method, url string) *Error {
	return E(category.NoRoute,
		fmt.Sprintf("Could not find the %s method for URL %s", method, url),
		WithDetailOption("method", method),
		WithDetailOption("url", url),
	)
}

// MethodNotAllowed reports that the URL exists but does not accept method.
func MethodNotAllowed(method string) *Error {
	return E(category.MethodNotAllowed,
		"Specified HTTP method is not allowed",
		WithDetailOption("method", method),
	)
}

// TypeMismatch reports that parameter name carried value, which could not be
// converted to the required type want. The mismatch is also recorded as a
// field-level sub-error so clients get per-parameter feedback.
func TypeMismatch(name string, value any, want string) *Error {
	return E(category.TypeMismatch,
		fmt.Sprintf("The parameter '%s' of value '%v' could not be converted to type '%s'",
			name, value, want),
		WithFieldOption(apis.FieldError{
			Field:         name,
			RejectedValue: value,
			Message:       fmt.Sprintf("must be of type %s", want),
		}),
	)
}

// NotFound reports that the requested entity does not exist. An empty msg
// selects the category's default message at render time.
func NotFound(msg string) *Error {
	return E(category.NotFound, msg)
}

// AlreadyExists reports that the entity cannot be created because its
// identity is already taken.
func AlreadyExists(msg string) *Error {
	return E(category.AlreadyExists, msg)
}

// IntegrityViolation reports that a storage-level constraint rejected the
// operation. The driver error is carried as the cause.
func IntegrityViolation(cause error) *Error {
	return E(category.IntegrityViolation, "Data integrity violation",
		WithCauseOption(cause),
	)
}

// Internal wraps an unrecognized error into the fallback category. The
// original error is preserved as the cause for logs; the client-facing
// message stays generic.
func Internal(cause error) *Error {
	return E(category.Internal, "", WithCauseOption(cause))
}

// From classifies an arbitrary error into an *Error.
//
// This is the dispatch entry of the translation layer: transport adapters
// call it on whatever error bubbled out of request handling and get back a
// categorized error they can resolve through the mapper.
//
// Classification order:
//
//  1. nil stays nil;
//  2. an *Error (anywhere in the chain) is returned as-is;
//  3. a foreign apis.CategorizedError keeps its category when it parses as
//     a canonical one;
//  4. well-known stdlib decode failures get their specific categories
//     (json syntax errors, json type errors, strconv conversions,
//     truncated bodies);
//  5. everything else falls through to Internal.
func From(err error) *Error {
	if err == nil {
		return nil
	}

	var e *Error
	if errors.As(err, &e) {
		return e
	}

	// Foreign error types may declare their own category; trust it only if
	// it is canonical.
	var ce apis.CategorizedError
	if errors.As(err, &ce) {
		if c, perr := category.Parse(ce.ErrorCategory()); perr == nil {
			return E(c, ce.Error(), WithCauseOption(err))
		}
	}

	var jsonSyntax *json.SyntaxError
	if errors.As(err, &jsonSyntax) {
		return MalformedBody(err)
	}

	var jsonType *json.UnmarshalTypeError
	if errors.As(err, &jsonType) {
		return TypeMismatch(jsonType.Field, jsonType.Value, jsonType.Type.String()).
			WithCause(err)
	}

	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return TypeMismatch("", numErr.Num, "number").WithCause(err)
	}

	// json.Decoder reports truncated bodies as bare EOFs.
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return MalformedBody(err)
	}

	return Internal(err)
}

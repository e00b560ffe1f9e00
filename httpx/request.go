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

package httpx

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"dirpx.dev/resterr"
)

// Request helpers raising the recognized error categories. Handlers use
// these to read inputs and simply return the error; the Writer does the
// rest.

// Param returns the named query parameter, or a missing_param error when it
// is absent or blank.
func Param(r *http.Request, name string) (string, error) {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return "", resterr.MissingParam(name)
	}
	return v, nil
}

// IntParam returns the named query parameter converted to int.
// Absence raises missing_param; a non-numeric value raises type_mismatch
// naming the parameter, the rejected value and the required type.
func IntParam(r *http.Request, name string) (int, error) {
	raw, err := Param(r, name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, resterr.TypeMismatch(name, raw, "int").WithCause(err)
	}
	return v, nil
}

// BoolParam returns the named query parameter converted to bool
// (strconv.ParseBool syntax). Absence raises missing_param; anything else
// unparseable raises type_mismatch.
func BoolParam(r *http.Request, name string) (bool, error) {
	raw, err := Param(r, name)
	if err != nil {
		return false, err
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, resterr.TypeMismatch(name, raw, "bool").WithCause(err)
	}
	return v, nil
}

// DecodeJSON decodes the request body into dst, classifying failures:
//
//   - broken syntax, empty or truncated bodies -> malformed_body;
//   - a value of the wrong JSON type for a field -> type_mismatch with the
//     field name;
//   - trailing content after the document -> malformed_body.
//
// Unknown fields are tolerated, matching common API behavior of accepting
// and ignoring extra client data.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return resterr.From(err)
	}
	// Reject a second JSON document or other trailing garbage.
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return resterr.MalformedBody(err)
	}
	return nil
}

// RequireContentType checks the request's Content-Type against the supported
// media types (compared by type/subtype, parameters ignored). A mismatch or
// unparseable header raises unsupported_media listing the supported types.
func RequireContentType(r *http.Request, supported ...string) error {
	raw := r.Header.Get("Content-Type")
	mt, _, err := mime.ParseMediaType(raw)
	if err != nil {
		return resterr.UnsupportedMedia(raw, supported...).WithCause(err)
	}
	for _, s := range supported {
		if strings.EqualFold(mt, s) {
			return nil
		}
	}
	return resterr.UnsupportedMedia(mt, supported...)
}

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

// Package httpx turns errors raised anywhere in request handling into the
// uniform JSON error payload, using a mapper snapshot to pick the status
// code and zap for the mandatory logging side effect.
package httpx

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"dirpx.dev/resterr"
	"dirpx.dev/resterr/adapter"
	"dirpx.dev/resterr/apis"
	"go.uber.org/zap"
)

// Writer is a thin adapter that knows how to turn any error into an HTTP
// error response using the provided status mapper.
//
// The zero value is not usable; construct with NewWriter. A single Writer is
// immutable and safe for concurrent use across all handlers.
type Writer struct {
	// Mapper resolves a category into (HTTP status, gRPC code, message).
	Mapper apis.Mapper

	// Logger receives one entry per translated error, before the response
	// is written.
	Logger *zap.Logger

	// ExposeDebug controls whether the payload's debug_message field is
	// populated. The debug message is always logged; it only leaves the
	// process when this is set (development / trusted environments).
	ExposeDebug bool
}

// NewWriter constructs a Writer. A nil logger is replaced with zap.NewNop so
// call sites never have to nil-check.
func NewWriter(m apis.Mapper, log *zap.Logger) Writer {
	if log == nil {
		log = zap.NewNop()
	}
	return Writer{Mapper: m, Logger: log}
}

// Write translates err into the JSON error payload and writes it to rw.
//
// The error is first classified via resterr.From (unrecognized errors fall
// through to the internal category), then resolved through the mapper, then
// logged, then serialized. r is used only for log context and may be nil.
//
// A nil err writes nothing.
func (w Writer) Write(rw http.ResponseWriter, r *http.Request, err error) {
	e := resterr.From(err)
	if e == nil {
		return
	}

	st := w.Mapper.Status(e.Category)
	w.log(r, e, st.HTTP)

	payload := adapter.ToPayload(e, st, time.Now())
	if !w.ExposeDebug {
		payload.DebugMessage = ""
	}

	body, merr := json.Marshal(payload)
	if merr != nil {
		// Serialization of the error payload itself failed (e.g. an
		// unmarshalable rejected value). Degrade to the not_writable
		// category with a fixed body so the client still gets JSON.
		w.writeNotWritable(rw, r, merr)
		return
	}

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(st.HTTP)
	if _, werr := rw.Write(body); werr != nil {
		w.Logger.Error("failed to write error response", zap.Error(werr))
	}
}

// writeNotWritable emits the fixed fallback body for response-serialization
// failures. The body is assembled by hand to avoid a second trip through the
// encoder that just failed.
func (w Writer) writeNotWritable(rw http.ResponseWriter, r *http.Request, cause error) {
	e := resterr.NotWritable(cause)
	st := w.Mapper.Status(e.Category)
	w.log(r, e, st.HTTP)

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(st.HTTP)
	body := fmt.Sprintf(`{"status":%d,"message":%q}`, st.HTTP, st.Message)
	if _, werr := rw.Write([]byte(body)); werr != nil {
		w.Logger.Error("failed to write error response", zap.Error(werr))
	}
}

// log records the translated error with its resolved status. Every branch of
// the translation layer funnels through here, so each failed request is
// logged exactly once before the response is written.
func (w Writer) log(r *http.Request, e *resterr.Error, status int) {
	fields := []zap.Field{
		zap.String("category", string(e.Category)),
		zap.Int("status", status),
	}
	if r != nil {
		fields = append(fields,
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
		)
	}
	if d := e.DebugMessage(); d != "" {
		fields = append(fields, zap.String("debug", d))
	}
	if len(e.Details) > 0 {
		fields = append(fields, zap.Any("details", e.Details))
	}
	if e.Cause != nil {
		fields = append(fields, zap.Error(e.Cause))
	}
	w.Logger.Error("request failed", fields...)
}

// HandlerFunc is a request handler that reports failures by returning an
// error instead of writing its own error responses.
type HandlerFunc func(http.ResponseWriter, *http.Request) error

// Handler adapts a HandlerFunc into a net/http handler: any returned error
// is translated and written by the Writer. This is the interception hook —
// application handlers stay free of status-code decisions.
func Handler(w Writer, h HandlerFunc) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		if err := h(rw, r); err != nil {
			w.Write(rw, r, err)
		}
	}
}

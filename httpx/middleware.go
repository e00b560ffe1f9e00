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
	"fmt"
	"net/http"
	"runtime/debug"

	"dirpx.dev/resterr"
	"go.uber.org/zap"
)

// Recover returns a middleware that converts panics in downstream handlers
// into internal-category error responses.
//
// The panic value and stack are logged; the client only sees the generic
// internal payload. Writing the response may itself fail if the handler
// already started the body — the translated write is best-effort.
func Recover(w Writer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					w.Logger.Error("panic recovered",
						zap.String("method", r.Method),
						zap.String("path", r.URL.Path),
						zap.Any("panic", rec),
						zap.String("stack", string(debug.Stack())),
					)
					w.Write(rw, r, resterr.Internal(fmt.Errorf("panic: %v", rec)))
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}

// NotFound returns a handler for mux fallthrough: requests that matched no
// registered route produce the no_route category, with the method and URL in
// the message.
//
// Wire it as the mux default, e.g.:
//
//	mux.Handle("/", httpx.NotFound(w))
func NotFound(w Writer) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		w.Write(rw, r, resterr.NoRoute(r.Method, r.URL.Path))
	})
}

// MethodNotAllowed returns a handler producing the method_not_allowed
// category, for routers that dispatch unsupported methods to a dedicated
// handler.
func MethodNotAllowed(w Writer) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		w.Write(rw, r, resterr.MethodNotAllowed(r.Method))
	})
}

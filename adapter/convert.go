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

package adapter

import (
	"time"

	"dirpx.dev/resterr"
	"dirpx.dev/resterr/apis"
)

// ToPayload converts a domain-level error together with its resolved
// transport status into the wire Payload.
//
// The payload is built fresh for a single response: the timestamp is the
// caller-supplied render time (normalized to UTC), the message falls back to
// the mapper's default for the category when the error instance carries
// none, and the field-level sub-errors are copied as-is.
//
// This function performs no redaction: the DebugMessage field is always
// populated from the error. It is up to the transport adapter to decide
// whether debug information may leave the process.
func ToPayload(e *resterr.Error, st apis.Status, at time.Time) apis.Payload {
	if e == nil {
		return apis.Payload{}
	}

	msg := e.Message
	if msg == "" {
		msg = st.Message
	}

	return apis.Payload{
		Status:       st.HTTP,
		Timestamp:    at.UTC(),
		Message:      msg,
		Category:     string(e.Category),
		DebugMessage: e.DebugMessage(),
		SubErrors:    e.ErrorFields(),
	}
}

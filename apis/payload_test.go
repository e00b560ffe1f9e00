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

package apis

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

// The payload field names are the wire contract; renaming a json tag is a
// breaking change for every client.
func TestPayload_WireNames(t *testing.T) {
	p := Payload{
		Status:       400,
		Timestamp:    time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		Message:      "Validation error",
		Category:     "validation",
		DebugMessage: "user.email rejected",
		SubErrors: []FieldError{
			{Object: "user", Field: "email", RejectedValue: "nope", Message: "must be a valid email"},
		},
	}

	b, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	s := string(b)

	for _, key := range []string{
		`"status":400`,
		`"timestamp":"2025-06-01T10:00:00Z"`,
		`"message":"Validation error"`,
		`"category":"validation"`,
		`"debug_message":"user.email rejected"`,
		`"sub_errors":[`,
		`"object":"user"`,
		`"field":"email"`,
		`"rejected_value":"nope"`,
	} {
		if !strings.Contains(s, key) {
			t.Fatalf("payload JSON missing %s:\n%s", key, s)
		}
	}
}

func TestPayload_OptionalFieldsOmitted(t *testing.T) {
	p := Payload{Status: 404, Timestamp: time.Now().UTC(), Message: "gone"}

	b, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	s := string(b)

	for _, key := range []string{"debug_message", "sub_errors", "category"} {
		if strings.Contains(s, key) {
			t.Fatalf("empty %s must be omitted:\n%s", key, s)
		}
	}
}

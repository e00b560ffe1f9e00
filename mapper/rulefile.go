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
	"fmt"
	"os"

	"dirpx.dev/resterr/category"
	"google.golang.org/grpc/codes"
	"gopkg.in/yaml.v3"
)

// ruleFile is the on-disk shape of a mapper rule file.
//
// Example:
//
//	fallback:
//	  http: 500
//	  grpc: 13
//	  message: Unexpected error
//	categories:
//	  no_route:
//	    http: 400
//	  internal:
//	    message: Internal error occured
//
// Omitted fields keep their library defaults. gRPC codes are the canonical
// numeric values from google.golang.org/grpc/codes.
type ruleFile struct {
	Fallback   *rule           `yaml:"fallback"`
	Categories map[string]rule `yaml:"categories"`
}

// rule adjusts a single category (or the global fallback). Zero values mean
// "not specified"; a rule file cannot set an HTTP status of 0.
type rule struct {
	HTTP    int    `yaml:"http"`
	GRPC    *int   `yaml:"grpc"`
	Message string `yaml:"message"`
}

// LoadRules reads a YAML rule file and converts it into mapper options.
// Category entries become exact overrides; the fallback entry replaces the
// global fallbacks.
//
// The returned options can be combined freely with programmatic ones:
//
//	opts, err := mapper.LoadRules(path)
//	if err != nil { ... }
//	m, err := mapper.New(append(opts, mapper.WithHTTPOverride(...))...)
func LoadRules(path string) ([]Option, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mapper: failed to read rule file: %w", err)
	}
	return ParseRules(data)
}

// ParseRules converts raw YAML rule-file content into mapper options.
// Split out from LoadRules so embedded or remote configs can reuse it.
func ParseRules(data []byte) ([]Option, error) {
	var rf ruleFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("mapper: failed to parse rule file: %w", err)
	}

	var opts []Option

	if fb := rf.Fallback; fb != nil {
		if fb.HTTP != 0 {
			opts = append(opts, WithHTTPFallback(fb.HTTP))
		}
		if fb.GRPC != nil {
			opts = append(opts, WithGRPCFallback(codes.Code(*fb.GRPC)))
		}
		if fb.Message != "" {
			opts = append(opts, WithMessageFallback(fb.Message))
		}
	}

	for raw, r := range rf.Categories {
		c, err := category.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("mapper: invalid category %q in rule file: %w", raw, err)
		}
		if r.HTTP != 0 {
			opts = append(opts, WithHTTPOverride(c, r.HTTP))
		}
		if r.GRPC != nil {
			opts = append(opts, WithGRPCOverride(c, *r.GRPC))
		}
		if r.Message != "" {
			opts = append(opts, WithMessageOverride(c, r.Message))
		}
	}

	return opts, nil
}

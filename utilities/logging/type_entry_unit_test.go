// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logging

import (
	"strings"
	"testing"
)

func TestUnitEntryString(t *testing.T) {
	var testCases = []struct {
		name         string
		entry        Entry
		wantContains []string
	}{
		{
			name: "severityDefaultsToInfo",
			entry: Entry{
				Message: "hello",
			},
			wantContains: []string{`"severity":"INFO"`, `"message":"hello"`},
		},
		{
			name: "severityKept",
			entry: Entry{
				Severity: "CRITICAL",
				Message:  "init_failed",
			},
			wantContains: []string{`"severity":"CRITICAL"`},
		},
		{
			name: "specialTraceField",
			entry: Entry{
				Message: "m",
				Trace:   "projects/p/traces/t",
			},
			wantContains: []string{`"logging.googleapis.com/trace":"projects/p/traces/t"`},
		},
		{
			name: "stepStackRendered",
			entry: Entry{
				Message: "finish",
				StepStack: Steps{
					Step{StepID: "topic1/12345"},
				},
			},
			wantContains: []string{`"step_stack":[{"step_id":"topic1/12345"`},
		},
		{
			name: "emptyOptionalFieldsOmitted",
			entry: Entry{
				Message: "start",
			},
			wantContains: []string{`{"severity":"INFO","message":"start"}`},
		},
	}
	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := tc.entry.String()
			for _, want := range tc.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("got %s want it to contain %s", got, want)
				}
			}
		})
	}
}

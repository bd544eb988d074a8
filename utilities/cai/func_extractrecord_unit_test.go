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

package cai

import "testing"

func TestUnitExtractRecord(t *testing.T) {
	var testCases = []struct {
		name       string
		line       string
		wantRecord string
		wantError  bool
	}{
		{
			name:       "assetRecord",
			line:       `{"name":"//cloudresourcemanager.googleapis.com/projects/123","asset_type":"cloudresourcemanager.googleapis.com/Project"}`,
			wantRecord: `{"name":"//cloudresourcemanager.googleapis.com/projects/123","asset_type":"cloudresourcemanager.googleapis.com/Project"}`,
		},
		{
			name:       "paddedLineIsCompacted",
			line:       `  {"name": "//pubsub.googleapis.com/projects/123/topics/t"}  `,
			wantRecord: `{"name":"//pubsub.googleapis.com/projects/123/topics/t"}`,
		},
		{
			name:       "largeIntegerPreserved",
			line:       `{"name":"//compute.googleapis.com/projects/p/disks/d","id":9007199254740993}`,
			wantRecord: `{"name":"//compute.googleapis.com/projects/p/disks/d","id":9007199254740993}`,
		},
		{
			name:      "notJSON",
			line:      "not json at all",
			wantError: true,
		},
		{
			name:      "truncatedJSON",
			line:      `{"name":"//cloudresourcemanager`,
			wantError: true,
		},
	}
	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			record, err := ExtractRecord(tc.line)
			if tc.wantError {
				if err == nil {
					t.Errorf("Want an error and got none")
				}
				return
			}
			if err != nil {
				t.Errorf("Want no error and got %v", err)
				return
			}
			if string(record) != tc.wantRecord {
				t.Errorf("Want record %s got %s", tc.wantRecord, string(record))
			}
		})
	}
}

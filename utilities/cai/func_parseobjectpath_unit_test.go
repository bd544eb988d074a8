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

func TestUnitParseObjectPath(t *testing.T) {
	var testCases = []struct {
		name             string
		objectPath       string
		wantExportPrefix string
		wantContentType  string
		wantFileName     string
		wantError        bool
	}{
		{
			name:             "resourceDump",
			objectPath:       "asset_export_v2_20230809-101112/RESOURCE/shard-0.json",
			wantExportPrefix: "asset_export_v2_20230809-101112",
			wantContentType:  "RESOURCE",
			wantFileName:     "shard-0.json",
		},
		{
			name:             "iamPolicyDump",
			objectPath:       "asset_export_v2_20230809-101112/IAM_POLICY/shard-12.json",
			wantExportPrefix: "asset_export_v2_20230809-101112",
			wantContentType:  "IAM_POLICY",
			wantFileName:     "shard-12.json",
		},
		{
			name:             "deeperNestingKeptInFileName",
			objectPath:       "asset_export_v2_20230809-101112/RESOURCE/sub/dir/shard-0.json",
			wantExportPrefix: "asset_export_v2_20230809-101112",
			wantContentType:  "RESOURCE",
			wantFileName:     "sub/dir/shard-0.json",
		},
		{
			name:       "markerPathTooShallow",
			objectPath: "asset_export_v2_20230809-101112/operation_name.txt",
			wantError:  true,
		},
		{
			name:       "bareObject",
			objectPath: "loose_object.json",
			wantError:  true,
		},
	}
	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			exportPrefix, contentType, fileName, err := ParseObjectPath(tc.objectPath)
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
			if exportPrefix != tc.wantExportPrefix {
				t.Errorf("Want exportPrefix %s got %s", tc.wantExportPrefix, exportPrefix)
			}
			if contentType != tc.wantContentType {
				t.Errorf("Want contentType %s got %s", tc.wantContentType, contentType)
			}
			if fileName != tc.wantFileName {
				t.Errorf("Want fileName %s got %s", tc.wantFileName, fileName)
			}
		})
	}
}

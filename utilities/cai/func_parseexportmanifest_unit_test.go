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

import (
	"testing"
)

func TestUnitParseExportManifest(t *testing.T) {
	var testCases = []struct {
		name               string
		content            string
		wantError          bool
		wantOperationNames []string
		wantAssetTypes     []string
	}{
		{
			name: "manifestJSON",
			content: `{"operationNames":["projects/123/operations/ExportAssets/RESOURCE/456"],
"assetTypes":["cloudresourcemanager.googleapis.com/Project"],
"contentTypes":["RESOURCE"],
"microserviceName":"requestexport",
"environment":"dev"}`,
			wantOperationNames: []string{"projects/123/operations/ExportAssets/RESOURCE/456"},
			wantAssetTypes:     []string{"cloudresourcemanager.googleapis.com/Project"},
		},
		{
			name:               "legacyBareOperationNames",
			content:            "projects/123/operations/ExportAssets/RESOURCE/456\nprojects/123/operations/ExportAssets/IAM_POLICY/789\n",
			wantOperationNames: []string{"projects/123/operations/ExportAssets/RESOURCE/456", "projects/123/operations/ExportAssets/IAM_POLICY/789"},
		},
		{
			name:               "legacySingleLineNoTrailingNewline",
			content:            "projects/123/operations/ExportAssets/RESOURCE/456",
			wantOperationNames: []string{"projects/123/operations/ExportAssets/RESOURCE/456"},
		},
		{
			name:      "empty",
			content:   "",
			wantError: true,
		},
		{
			name:      "whitespaceOnly",
			content:   " \n \n",
			wantError: true,
		},
		{
			name:      "brokenJSON",
			content:   `{"operationNames": [`,
			wantError: true,
		},
	}
	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			exportManifest, err := ParseExportManifest([]byte(tc.content))
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
			if len(exportManifest.OperationNames) != len(tc.wantOperationNames) {
				t.Errorf("Want %d operation names got %d", len(tc.wantOperationNames), len(exportManifest.OperationNames))
				return
			}
			for i, wantOperationName := range tc.wantOperationNames {
				if exportManifest.OperationNames[i] != wantOperationName {
					t.Errorf("Want operation name %s got %s", wantOperationName, exportManifest.OperationNames[i])
				}
			}
			for i, wantAssetType := range tc.wantAssetTypes {
				if exportManifest.AssetTypes[i] != wantAssetType {
					t.Errorf("Want asset type %s got %s", wantAssetType, exportManifest.AssetTypes[i])
				}
			}
		})
	}
}

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

package damcli

import (
	"strings"
	"testing"
)

func TestUnitGetVersions(t *testing.T) {
	var testCases = []struct {
		name           string
		repositoryPath string
		wantErrorMsg   string
		wantGoVersion  string
		wantDAMVersion string
	}{
		{
			name:           "go116dam010rc01",
			repositoryPath: "testdata/getversions/go116dam010rc01",
			wantGoVersion:  "1.16",
			wantDAMVersion: "v0.1.0-rc01",
		},
		{
			name:           "noGoModFile",
			repositoryPath: "blabla",
			wantErrorMsg:   "no such file or directory",
		},
		{
			name:           "missingGoVersion",
			repositoryPath: "testdata/getversions/missinggoversion",
			wantErrorMsg:   "goVersion NOT found",
		},
		{
			name:           "missingDamVersion",
			repositoryPath: "testdata/getversions/missingdamversion",
			wantErrorMsg:   "damVersion NOT found",
		},
	}
	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			goVersion, damVersion, err := getVersions(tc.repositoryPath)
			if err != nil {
				if tc.wantErrorMsg == "" {
					t.Errorf("Did not expect an error an got %s", err.Error())
				} else {
					if !strings.Contains(err.Error(), tc.wantErrorMsg) {
						t.Errorf("Error message should contains '%s' and is", tc.wantErrorMsg)
						t.Log(string('\n') + err.Error())
					}
				}
			} else {
				if tc.wantErrorMsg != "" {
					t.Errorf("Expected this error did not get it %s", tc.wantErrorMsg)
				}
				if goVersion != tc.wantGoVersion {
					t.Errorf("Want goVersion %s got %s", tc.wantGoVersion, goVersion)
				}
				if damVersion != tc.wantDAMVersion {
					t.Errorf("Want damVersion %s got %s", tc.wantDAMVersion, damVersion)
				}
			}
		})
	}
}

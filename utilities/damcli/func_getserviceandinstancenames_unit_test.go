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
	"testing"
)

func TestUnitGetServiceAndInstanceNames(t *testing.T) {
	var testCases = []struct {
		name                       string
		instanceFolderRelativePath string
		wantServiceName            string
		wantInstanceName           string
	}{
		{
			name:                       "drainexportInstance",
			instanceFolderRelativePath: "services/drainexport/instances/drainexport_gcp",
			wantServiceName:            "drainexport",
			wantInstanceName:           "drainexport_gcp",
		},
		{
			name:                       "requestexportInstance",
			instanceFolderRelativePath: "services/requestexport/instances/requestexport_org",
			wantServiceName:            "requestexport",
			wantInstanceName:           "requestexport_org",
		},
		{
			name:                       "tooShortPath",
			instanceFolderRelativePath: "services/drainexport",
			wantServiceName:            "",
			wantInstanceName:           "",
		},
	}
	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			serviceName, instanceName := GetServiceAndInstanceNames(tc.instanceFolderRelativePath)
			if serviceName != tc.wantServiceName {
				t.Errorf("Error want serviceName '%s' and got '%s'", tc.wantServiceName, serviceName)
			}
			if instanceName != tc.wantInstanceName {
				t.Errorf("Error want instanceName '%s' and got '%s'", tc.wantInstanceName, instanceName)
			}
		})
	}
}

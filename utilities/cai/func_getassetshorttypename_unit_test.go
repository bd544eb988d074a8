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

func TestUnitGetAssetShortTypeName(t *testing.T) {
	var testCases = []struct {
		name          string
		assetType     string
		wantShortName string
	}{
		{
			name:          "standardService",
			assetType:     "bigquery.googleapis.com/Dataset",
			wantShortName: "bigquery-Dataset",
		},
		{
			name:          "cloudresourcemanager",
			assetType:     "cloudresourcemanager.googleapis.com/Project",
			wantShortName: "cloudresourcemanager-Project",
		},
		{
			name:          "k8srbac",
			assetType:     "rbac.authorization.k8s.io/Role",
			wantShortName: "k8srbac-Role",
		},
		{
			name:          "k8sextensions",
			assetType:     "extensions.k8s.io/Ingress",
			wantShortName: "k8sextensions-Ingress",
		},
		{
			name:          "k8snetworking",
			assetType:     "networking.k8s.io/NetworkPolicy",
			wantShortName: "k8snetworking-NetworkPolicy",
		},
	}
	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := GetAssetShortTypeName(tc.assetType)
			if got != tc.wantShortName {
				t.Errorf("Want %s got %s", tc.wantShortName, got)
			}
		})
	}
}

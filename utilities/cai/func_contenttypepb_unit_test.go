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

	assetpb "google.golang.org/genproto/googleapis/cloud/asset/v1"
)

func TestUnitContentTypePb(t *testing.T) {
	var testCases = []struct {
		name        string
		contentType string
		wantPb      assetpb.ContentType
		wantError   bool
	}{
		{
			name:        "resource",
			contentType: "RESOURCE",
			wantPb:      assetpb.ContentType_RESOURCE,
		},
		{
			name:        "iamPolicy",
			contentType: "IAM_POLICY",
			wantPb:      assetpb.ContentType_IAM_POLICY,
		},
		{
			name:        "orgPolicy",
			contentType: "ORG_POLICY",
			wantPb:      assetpb.ContentType_ORG_POLICY,
		},
		{
			name:        "accessPolicy",
			contentType: "ACCESS_POLICY",
			wantPb:      assetpb.ContentType_ACCESS_POLICY,
		},
		{
			name:        "lowerCaseRejected",
			contentType: "resource",
			wantError:   true,
		},
		{
			name:        "unknownRejected",
			contentType: "OS_INVENTORY",
			wantError:   true,
		},
	}
	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			pb, err := ContentTypePb(tc.contentType)
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
			if pb != tc.wantPb {
				t.Errorf("Want %v got %v", tc.wantPb, pb)
			}
		})
	}
	supported := SupportedContentTypes()
	if len(supported) != 4 {
		t.Errorf("Want 4 supported content types got %d", len(supported))
	}
	for _, contentType := range supported {
		if _, err := ContentTypePb(contentType); err != nil {
			t.Errorf("Supported content type %s should map to a pb value, got %v", contentType, err)
		}
	}
}

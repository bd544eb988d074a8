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
	"fmt"

	assetpb "google.golang.org/genproto/googleapis/cloud/asset/v1"
)

// SupportedContentTypes lists the content types an export request may carry
func SupportedContentTypes() []string {
	return []string{"RESOURCE", "IAM_POLICY", "ORG_POLICY", "ACCESS_POLICY"}
}

// ContentTypePb maps a content type name to its protobuf enum value
func ContentTypePb(contentType string) (assetpb.ContentType, error) {
	switch contentType {
	case "RESOURCE":
		return assetpb.ContentType_RESOURCE, nil
	case "IAM_POLICY":
		return assetpb.ContentType_IAM_POLICY, nil
	case "ORG_POLICY":
		return assetpb.ContentType_ORG_POLICY, nil
	case "ACCESS_POLICY":
		return assetpb.ContentType_ACCESS_POLICY, nil
	default:
		return assetpb.ContentType_CONTENT_TYPE_UNSPECIFIED, fmt.Errorf("unsupported content type: %s", contentType)
	}
}

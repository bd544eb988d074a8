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
	"strings"
)

// ParseObjectPath splits a dump object path on the fixed layout <exportPrefix>/<contentType>/<fileName>.
// Deeper nesting keeps the first segment as the prefix and the second as the content type
func ParseObjectPath(objectPath string) (exportPrefix, contentType, fileName string, err error) {
	parts := strings.SplitN(objectPath, "/", 3)
	if len(parts) < 3 {
		return "", "", "", fmt.Errorf("object path %s does not match <exportPrefix>/<contentType>/<fileName>", objectPath)
	}
	return parts[0], parts[1], parts[2], nil
}

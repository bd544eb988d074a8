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
)

// GetServiceAndInstanceNames parses an instance folder relative path, like
// services/<serviceName>/instances/<instanceName>, empty strings when the path does not comply
func GetServiceAndInstanceNames(instanceFolderRelativePath string) (serviceName, instanceName string) {
	parts := strings.Split(instanceFolderRelativePath, "/")
	if len(parts) < 4 {
		return "", ""
	}
	return parts[1], parts[3]
}

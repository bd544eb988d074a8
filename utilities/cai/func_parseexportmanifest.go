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
	"encoding/json"
	"fmt"
	"strings"
)

// ParseExportManifest unmarshals a lock marker content. Markers written by older
// tooling carried bare operation names one per line, keep reading those
func ParseExportManifest(content []byte) (exportManifest ExportManifest, err error) {
	trimmed := strings.TrimSpace(string(content))
	if trimmed == "" {
		return exportManifest, fmt.Errorf("empty marker content")
	}
	if strings.HasPrefix(trimmed, "{") {
		err = json.Unmarshal(content, &exportManifest)
		if err != nil {
			return exportManifest, fmt.Errorf("json.Unmarshal marker %v", err)
		}
		return exportManifest, nil
	}
	for _, line := range strings.Split(trimmed, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		exportManifest.OperationNames = append(exportManifest.OperationNames, line)
	}
	return exportManifest, nil
}

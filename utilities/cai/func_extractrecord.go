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
	"bytes"
	"encoding/json"
	"fmt"
)

// ExtractRecord checks one dump line is a JSON document and returns it compacted.
// Key order and number representation are kept as dumped
func ExtractRecord(line string) (record []byte, err error) {
	var compacted bytes.Buffer
	err = json.Compact(&compacted, []byte(line))
	if err != nil {
		return nil, fmt.Errorf("json.Compact dump line %v", err)
	}
	return compacted.Bytes(), nil
}

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
	"bufio"
	"fmt"
	"io"
	"strings"
)

// BrowseDumpLines scans a dump reader line by line and hands each non blank line to browse.
// A browse error does not stop the scan, the remaining lines are still browsed.
// Scanner errors, like a line overflowing the buffer, stop the scan and are returned
func BrowseDumpLines(reader io.Reader, scannerBufferSizeKiloBytes int, browse func(lineNumber int64, line string) error) error {
	scanner := bufio.NewScanner(reader)
	scannerBuffer := make([]byte, scannerBufferSizeKiloBytes*1024)
	scanner.Buffer(scannerBuffer, scannerBufferSizeKiloBytes*1024)
	var lineNumber int64
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		_ = browse(lineNumber, line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner.Err line %d %v", lineNumber, err)
	}
	return nil
}

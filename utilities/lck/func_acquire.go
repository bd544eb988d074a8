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

package lck

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/storage"
)

// Acquire writes the marker object when absent. A marker that already exists is kept
// untouched and the call succeeds, so the first writer wins and retries are idempotent
func Acquire(ctx context.Context, bucketHandle *storage.BucketHandle, markerObjectPath string, content []byte) error {
	storageObject := bucketHandle.Object(markerObjectPath).If(storage.Conditions{DoesNotExist: true})
	storageObjectWriter := storageObject.NewWriter(ctx)
	_, err := storageObjectWriter.Write(content)
	if err != nil {
		return fmt.Errorf("storageObjectWriter.Write %s %v", markerObjectPath, err)
	}
	err = storageObjectWriter.Close()
	if err != nil {
		if strings.Contains(err.Error(), "conditionNotMet") || strings.Contains(err.Error(), "Error 412") {
			// Marker already written, the lock is already held
			return nil
		}
		return fmt.Errorf("storageObjectWriter.Close %s %v", markerObjectPath, err)
	}
	return nil
}

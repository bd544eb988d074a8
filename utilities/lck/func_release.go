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

	"cloud.google.com/go/storage"
)

// Release deletes the marker object. An absent marker means the lock is already
// released, which is success
func Release(ctx context.Context, bucketHandle *storage.BucketHandle, markerObjectPath string) error {
	err := bucketHandle.Object(markerObjectPath).Delete(ctx)
	if err != nil {
		if err == storage.ErrObjectNotExist {
			return nil
		}
		return fmt.Errorf("storageObject.Delete %s %v", markerObjectPath, err)
	}
	return nil
}

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

// IsLocked reports whether the marker object exists. Errors other than object
// absence cannot be interpreted and are returned as such
func IsLocked(ctx context.Context, bucketHandle *storage.BucketHandle, markerObjectPath string) (isLocked bool, err error) {
	_, err = bucketHandle.Object(markerObjectPath).Attrs(ctx)
	if err != nil {
		if err == storage.ErrObjectNotExist {
			return false, nil
		}
		return false, fmt.Errorf("storageObject.Attrs %s %v", markerObjectPath, err)
	}
	return true, nil
}

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
	"log"
	"testing"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/BrunoReboul/dam/utilities/itst"
)

const testMarkerObjectPath = "dam_test_locks/operation_name.txt"

func TestIntegLockLifecycle(t *testing.T) {
	projectID, creds := itst.GetIntegrationTestsProjectID()
	ctx := context.Background()
	storageClient, err := storage.NewClient(ctx, option.WithCredentials(creds))
	if err != nil {
		log.Fatalln(err)
	}
	bucketName := fmt.Sprintf("%s-dam-exports", projectID)
	bucketHandle := storageClient.Bucket(bucketName)

	// Clean up before testing
	if err := Release(ctx, bucketHandle, testMarkerObjectPath); err != nil {
		t.Fatalf("Release clean up %v", err)
	}

	testCases := []struct {
		name string
		step func() error
	}{
		{
			name: "Step1_NotLockedBeforeAcquire",
			step: func() error {
				isLocked, err := IsLocked(ctx, bucketHandle, testMarkerObjectPath)
				if err != nil {
					return err
				}
				if isLocked {
					return fmt.Errorf("want not locked before acquire")
				}
				return nil
			},
		},
		{
			name: "Step2_Acquire",
			step: func() error {
				content := []byte(fmt.Sprintf("projects/%s/operations/test/%d", projectID, time.Now().Unix()))
				return Acquire(ctx, bucketHandle, testMarkerObjectPath, content)
			},
		},
		{
			name: "Step3_LockedAfterAcquire",
			step: func() error {
				isLocked, err := IsLocked(ctx, bucketHandle, testMarkerObjectPath)
				if err != nil {
					return err
				}
				if !isLocked {
					return fmt.Errorf("want locked after acquire")
				}
				return nil
			},
		},
		{
			name: "Step4_ReacquireIsSuccess",
			step: func() error {
				return Acquire(ctx, bucketHandle, testMarkerObjectPath, []byte("second writer loses silently"))
			},
		},
		{
			name: "Step5_Release",
			step: func() error {
				return Release(ctx, bucketHandle, testMarkerObjectPath)
			},
		},
		{
			name: "Step6_ReleaseAbsentIsSuccess",
			step: func() error {
				return Release(ctx, bucketHandle, testMarkerObjectPath)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.step(); err != nil {
				t.Errorf("%v", err)
			}
		})
	}
}

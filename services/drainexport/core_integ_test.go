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

package drainexport

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"testing"
	"time"

	"cloud.google.com/go/functions/metadata"
	"cloud.google.com/go/pubsub"
	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/BrunoReboul/dam/utilities/cai"
	"github.com/BrunoReboul/dam/utilities/gps"
	"github.com/BrunoReboul/dam/utilities/itst"
	"github.com/BrunoReboul/dam/utilities/lck"
)

const testAssetsTopicName = "dam-test-gcp-assets"
const testTriggerTopicName = "dam-test-drain-export-requests"

func TestIntegDrainExportPrefix(t *testing.T) {
	projectID, creds := itst.GetIntegrationTestsProjectID()
	ctx := context.Background()
	storageClient, err := storage.NewClient(ctx, option.WithCredentials(creds))
	if err != nil {
		log.Fatalln(err)
	}
	pubsubClient, err := pubsub.NewClient(ctx, projectID, option.WithCredentials(creds))
	if err != nil {
		log.Fatalln(err)
	}
	bucketName := fmt.Sprintf("%s-dam-exports", projectID)
	bucketHandle := storageClient.Bucket(bucketName)
	ensureTopic(ctx, t, pubsubClient, testAssetsTopicName)
	ensureTopic(ctx, t, pubsubClient, testTriggerTopicName)

	var global Global
	global.ctx = ctx
	global.assetsTopicName = testAssetsTopicName
	global.bucketHandle = bucketHandle
	global.bucketName = bucketName
	global.drainTimeBudgetSeconds = 300
	global.environment = "test"
	global.instanceName = "drainexport_test"
	global.logEventEveryXPubSubMsg = 1000
	global.microserviceName = "drainexport"
	global.pubsubClient = pubsubClient
	global.retryTimeOutSeconds = 600
	global.scannerBufferSizeKiloBytes = 64
	global.triggerTopicName = testTriggerTopicName
	global.version = "test"
	global.assetTypesResolver = func(ctx context.Context, exportPrefix string) []string {
		return resolveAssetTypes(ctx, bucketHandle, exportPrefix, []string{"fallback.googleapis.com/NotUsed"})
	}

	exportPrefix := cai.BuildExportPrefix(time.Now())
	markerObjectPath := cai.MarkerObjectPath(exportPrefix)
	var exportManifest cai.ExportManifest
	exportManifest.OperationNames = []string{fmt.Sprintf("projects/%s/operations/ExportAssets/RESOURCE/test", projectID)}
	exportManifest.AssetTypes = []string{"cloudresourcemanager.googleapis.com/Project"}
	exportManifest.ContentTypes = []string{"RESOURCE", "IAM_POLICY"}
	exportManifest.RequestTime = time.Now().UTC()
	exportManifest.MicroserviceName = "requestexport"
	exportManifest.InstanceName = "requestexport_test"
	exportManifest.Environment = "test"
	exportManifest.Version = "test"
	markerContent, err := json.Marshal(exportManifest)
	if err != nil {
		t.Fatalf("json.Marshal(exportManifest) %v", err)
	}
	if err := lck.Acquire(ctx, bucketHandle, markerObjectPath, markerContent); err != nil {
		t.Fatalf("lck.Acquire %v", err)
	}
	writeObject(ctx, t, bucketHandle, exportPrefix+"/RESOURCE/a.json",
		"{\"name\":\"//cloudresourcemanager.googleapis.com/projects/p1\",\"asset_type\":\"cloudresourcemanager.googleapis.com/Project\"}\n"+
			"{\"name\":\"//cloudresourcemanager.googleapis.com/projects/p2\",\"asset_type\":\"cloudresourcemanager.googleapis.com/Project\"}\n"+
			"\n")
	writeObject(ctx, t, bucketHandle, exportPrefix+"/IAM_POLICY/b.json", "")

	drainRequestJSON, err := json.Marshal(cai.DrainRequest{ExportPrefix: exportPrefix, Origin: "checkexport"})
	if err != nil {
		t.Fatalf("json.Marshal(drainRequest) %v", err)
	}

	testCases := []struct {
		name string
		step func() error
	}{
		{
			name: "Step1_BudgetExhaustedLeavesPrefixLocked",
			step: func() error {
				global.drainTimeBudgetSeconds = 0
				defer func() { global.drainTimeBudgetSeconds = 300 }()
				if err := entryPointOnce(ctx, projectID, drainRequestJSON, &global); err != nil {
					return err
				}
				isLocked, err := lck.IsLocked(ctx, bucketHandle, markerObjectPath)
				if err != nil {
					return err
				}
				if !isLocked {
					return fmt.Errorf("want prefix still locked after partial drain")
				}
				remaining, err := countObjects(ctx, bucketHandle, exportPrefix)
				if err != nil {
					return err
				}
				if remaining < 2 {
					return fmt.Errorf("want dump objects untouched after partial drain, got %d left", remaining)
				}
				return nil
			},
		},
		{
			name: "Step2_FullDrainEmptiesPrefixAndReleasesLock",
			step: func() error {
				if err := entryPointOnce(ctx, projectID, drainRequestJSON, &global); err != nil {
					return err
				}
				isLocked, err := lck.IsLocked(ctx, bucketHandle, markerObjectPath)
				if err != nil {
					return err
				}
				if isLocked {
					return fmt.Errorf("want lock released after full drain")
				}
				remaining, err := countObjects(ctx, bucketHandle, exportPrefix)
				if err != nil {
					return err
				}
				if remaining != 0 {
					return fmt.Errorf("want empty prefix after full drain, got %d left", remaining)
				}
				return nil
			},
		},
		{
			name: "Step3_RedrainEmptyPrefixIsNoOp",
			step: func() error {
				return entryPointOnce(ctx, projectID, drainRequestJSON, &global)
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

func entryPointOnce(ctx context.Context, projectID string, drainRequestJSON []byte, global *Global) error {
	ctxEvent := metadata.NewContext(ctx, &metadata.Metadata{
		EventID:   fmt.Sprintf("drainexport-integ-%d", time.Now().UnixNano()),
		Timestamp: time.Now(),
		EventType: "google.pubsub.topic.publish",
		Resource: &metadata.Resource{
			Name: fmt.Sprintf("projects/%s/topics/%s", projectID, testTriggerTopicName),
			Type: "type.googleapis.com/google.pubsub.v1.PubsubMessage",
		},
	})
	return EntryPoint(ctxEvent, gps.PubSubMessage{Data: drainRequestJSON}, global)
}

func ensureTopic(ctx context.Context, t *testing.T, pubsubClient *pubsub.Client, topicName string) {
	topic := pubsubClient.Topic(topicName)
	exists, err := topic.Exists(ctx)
	if err != nil {
		t.Fatalf("topic.Exists %s %v", topicName, err)
	}
	if !exists {
		if _, err := pubsubClient.CreateTopic(ctx, topicName); err != nil {
			t.Fatalf("pubsubClient.CreateTopic %s %v", topicName, err)
		}
	}
}

func writeObject(ctx context.Context, t *testing.T, bucketHandle *storage.BucketHandle, objectPath string, content string) {
	storageObjectWriter := bucketHandle.Object(objectPath).NewWriter(ctx)
	if _, err := storageObjectWriter.Write([]byte(content)); err != nil {
		t.Fatalf("storageObjectWriter.Write %s %v", objectPath, err)
	}
	if err := storageObjectWriter.Close(); err != nil {
		t.Fatalf("storageObjectWriter.Close %s %v", objectPath, err)
	}
}

func countObjects(ctx context.Context, bucketHandle *storage.BucketHandle, exportPrefix string) (count int, err error) {
	objectsIterator := bucketHandle.Objects(ctx, &storage.Query{Prefix: exportPrefix + "/"})
	for {
		_, err := objectsIterator.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return 0, err
		}
		count++
	}
	return count, nil
}

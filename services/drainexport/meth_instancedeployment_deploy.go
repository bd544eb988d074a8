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
	"log"
	"time"

	"github.com/BrunoReboul/dam/utilities/gcs"
	"github.com/BrunoReboul/dam/utilities/gps"
)

// Deploy a service instance
func (instanceDeployment *InstanceDeployment) Deploy() (err error) {
	start := time.Now()
	if err = instanceDeployment.deployGCSBucket(); err != nil {
		return err
	}
	if err = instanceDeployment.deployGPSTriggerTopic(); err != nil {
		return err
	}
	if err = instanceDeployment.deployGPSAssetsTopic(); err != nil {
		return err
	}
	log.Printf("%s done in %v minutes", instanceDeployment.Core.InstanceName, time.Since(start).Minutes())
	return nil
}

func (instanceDeployment *InstanceDeployment) deployGCSBucket() (err error) {
	bucketDeployment := gcs.NewBucketDeployment()
	bucketDeployment.Core = instanceDeployment.Core
	bucketDeployment.Settings.BucketName = instanceDeployment.Core.SolutionSettings.Hosting.GCS.Buckets.AssetExports.Name
	bucketDeployment.Settings.DeleteAgeInDays = instanceDeployment.Core.SolutionSettings.Hosting.GCS.Buckets.AssetExports.DeleteAgeInDays
	return bucketDeployment.Deploy()
}

func (instanceDeployment *InstanceDeployment) deployGPSTriggerTopic() (err error) {
	topicDeployment := gps.NewTopicDeployment()
	topicDeployment.Core = instanceDeployment.Core
	topicDeployment.Settings.TopicName = instanceDeployment.Artifacts.TopicName
	return topicDeployment.Deploy()
}

func (instanceDeployment *InstanceDeployment) deployGPSAssetsTopic() (err error) {
	topicDeployment := gps.NewTopicDeployment()
	topicDeployment.Core = instanceDeployment.Core
	topicDeployment.Settings.TopicName = instanceDeployment.Artifacts.AssetsTopicName
	return topicDeployment.Deploy()
}

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
	"strings"
	"testing"

	"github.com/BrunoReboul/dam/utilities/deploy"
)

func TestUnitSituate(t *testing.T) {
	instanceDeployment := NewInstanceDeployment()
	instanceDeployment.Core = &deploy.Core{}
	instanceDeployment.Core.SolutionSettings.Hosting.Pubsub.TopicNames.DrainExportRequests = "drain-export-requests"
	instanceDeployment.Core.SolutionSettings.Hosting.Pubsub.TopicNames.GCPAssets = "gcp-assets"
	instanceDeployment.Core.SolutionSettings.Hosting.GCS.Buckets.AssetExports.Name = "blabla-asset-exports"

	err := instanceDeployment.Situate()
	if err != nil {
		t.Fatalf("Situate %v", err)
	}
	if instanceDeployment.Settings.Service.GCF.FunctionType != "backgroundPubSub" {
		t.Errorf("Want backgroundPubSub got %s", instanceDeployment.Settings.Service.GCF.FunctionType)
	}
	if instanceDeployment.Settings.Service.GCF.TriggerTopic != "drain-export-requests" {
		t.Errorf("Want drain-export-requests got %s", instanceDeployment.Settings.Service.GCF.TriggerTopic)
	}
	if instanceDeployment.Artifacts.TopicName != "drain-export-requests" {
		t.Errorf("Want drain-export-requests got %s", instanceDeployment.Artifacts.TopicName)
	}
	if instanceDeployment.Artifacts.AssetsTopicName != "gcp-assets" {
		t.Errorf("Want gcp-assets got %s", instanceDeployment.Artifacts.AssetsTopicName)
	}
	if !strings.Contains(instanceDeployment.Settings.Service.GCF.Description, "blabla-asset-exports") {
		t.Errorf("Want bucket name in description got %s", instanceDeployment.Settings.Service.GCF.Description)
	}
	if instanceDeployment.Settings.Instance.DrainTimeBudgetSeconds != 480 {
		t.Errorf("Want default budget 480 got %d", instanceDeployment.Settings.Instance.DrainTimeBudgetSeconds)
	}
}

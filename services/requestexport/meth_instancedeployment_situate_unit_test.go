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

package requestexport

import (
	"testing"

	"github.com/BrunoReboul/dam/utilities/deploy"
)

func TestUnitSituate(t *testing.T) {
	instanceDeployment := NewInstanceDeployment()
	instanceDeployment.Core = &deploy.Core{}
	instanceDeployment.Core.ServiceName = "requestexport"
	instanceDeployment.Core.SolutionSettings.Exports.DefaultSchedulers = map[string]struct {
		JobName  string `yaml:"jobName"`
		Schedule string
	}{
		"requestexport": {JobName: "dam-request-export", Schedule: "0 */12 * * *"},
	}

	err := instanceDeployment.Situate()
	if err != nil {
		t.Fatalf("Situate %v", err)
	}
	if instanceDeployment.Settings.Instance.SCH.JobName != "dam-request-export" {
		t.Errorf("Want dam-request-export got %s", instanceDeployment.Settings.Instance.SCH.JobName)
	}
	if instanceDeployment.Settings.Instance.SCH.Schedule != "0 */12 * * *" {
		t.Errorf("Want 0 */12 * * * got %s", instanceDeployment.Settings.Instance.SCH.Schedule)
	}
	if instanceDeployment.Settings.Instance.SCH.TopicName != "dam-request-export" {
		t.Errorf("Want topic defaulted to job name got %s", instanceDeployment.Settings.Instance.SCH.TopicName)
	}
	if instanceDeployment.Artifacts.TopicName != "dam-request-export" {
		t.Errorf("Want dam-request-export got %s", instanceDeployment.Artifacts.TopicName)
	}
	if instanceDeployment.Settings.Service.GCF.TriggerTopic != "dam-request-export" {
		t.Errorf("Want dam-request-export got %s", instanceDeployment.Settings.Service.GCF.TriggerTopic)
	}
	if instanceDeployment.Settings.Service.GCF.FunctionType != "backgroundPubSub" {
		t.Errorf("Want backgroundPubSub got %s", instanceDeployment.Settings.Service.GCF.FunctionType)
	}
}

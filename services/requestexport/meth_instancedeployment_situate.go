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
	"fmt"
)

// Situate complement settings taking in account the situation for service and instance settings
func (instanceDeployment *InstanceDeployment) Situate() (err error) {
	if instanceDeployment.Settings.Instance.SCH.JobName == "" {
		scheduler := instanceDeployment.Core.SolutionSettings.Exports.DefaultSchedulers[instanceDeployment.Core.ServiceName]
		instanceDeployment.Settings.Instance.SCH.JobName = scheduler.JobName
		instanceDeployment.Settings.Instance.SCH.Schedule = scheduler.Schedule
	}
	if instanceDeployment.Settings.Instance.SCH.TopicName == "" {
		instanceDeployment.Settings.Instance.SCH.TopicName = instanceDeployment.Settings.Instance.SCH.JobName
	}
	instanceDeployment.Artifacts.TopicName = instanceDeployment.Settings.Instance.SCH.TopicName
	instanceDeployment.Settings.Service.GCF.FunctionType = "backgroundPubSub"
	instanceDeployment.Settings.Service.GCF.TriggerTopic = instanceDeployment.Artifacts.TopicName
	instanceDeployment.Settings.Service.GCF.Description = fmt.Sprintf("request asset exports of %s to gcs bucket %s",
		instanceDeployment.Settings.Instance.CAI.Parent,
		instanceDeployment.Core.SolutionSettings.Hosting.GCS.Buckets.AssetExports.Name)
	return nil
}

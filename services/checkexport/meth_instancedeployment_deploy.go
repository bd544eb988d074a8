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

package checkexport

import (
	"fmt"
	"log"
	"time"

	"github.com/BrunoReboul/dam/utilities/gps"
	"github.com/BrunoReboul/dam/utilities/sch"
)

// Deploy a service instance
func (instanceDeployment *InstanceDeployment) Deploy() (err error) {
	start := time.Now()
	if err = instanceDeployment.deployGPSTriggerTopic(); err != nil {
		return err
	}
	if err = instanceDeployment.deployGPSDrainTopic(); err != nil {
		return err
	}
	if err = instanceDeployment.deployGPSDrainTopicRole(); err != nil {
		return err
	}
	if err = instanceDeployment.deploySCHJob(); err != nil {
		return err
	}
	log.Printf("%s done in %v minutes", instanceDeployment.Core.InstanceName, time.Since(start).Minutes())
	return nil
}

func (instanceDeployment *InstanceDeployment) deployGPSTriggerTopic() (err error) {
	topicDeployment := gps.NewTopicDeployment()
	topicDeployment.Core = instanceDeployment.Core
	topicDeployment.Settings.TopicName = instanceDeployment.Artifacts.TopicName
	return topicDeployment.Deploy()
}

func (instanceDeployment *InstanceDeployment) deployGPSDrainTopic() (err error) {
	topicDeployment := gps.NewTopicDeployment()
	topicDeployment.Core = instanceDeployment.Core
	topicDeployment.Settings.TopicName = instanceDeployment.Artifacts.DrainTopicName
	return topicDeployment.Deploy()
}

// deployGPSDrainTopicRole grants the function runtime service account the
// publisher role on the drain topic, then verifies the grant landed
func (instanceDeployment *InstanceDeployment) deployGPSDrainTopicRole() (err error) {
	topicFullName := fmt.Sprintf("projects/%s/topics/%s",
		instanceDeployment.Core.SolutionSettings.Hosting.ProjectID,
		instanceDeployment.Artifacts.DrainTopicName)
	member := fmt.Sprintf("serviceAccount:%s@appspot.gserviceaccount.com",
		instanceDeployment.Core.SolutionSettings.Hosting.ProjectID)
	err = gps.SetTopicRole(instanceDeployment.Core.Ctx,
		instanceDeployment.Core.Services.PubsubPublisherClient,
		topicFullName,
		member,
		"roles/pubsub.publisher")
	if err != nil {
		return fmt.Errorf("gps.SetTopicRole %v", err)
	}
	err = gps.CheckTopicRole(instanceDeployment.Core.Ctx,
		instanceDeployment.Core.Services.PubsubPublisherClient,
		topicFullName,
		member,
		"roles/pubsub.publisher")
	if err != nil {
		return fmt.Errorf("gps.CheckTopicRole %v", err)
	}
	return nil
}

func (instanceDeployment *InstanceDeployment) deploySCHJob() (err error) {
	jobDeployment := sch.NewJobDeployment()
	jobDeployment.Core = instanceDeployment.Core
	jobDeployment.Settings.SCH = instanceDeployment.Settings.Instance.SCH
	return jobDeployment.Deploy()
}

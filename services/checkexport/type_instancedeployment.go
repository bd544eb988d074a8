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
	"github.com/BrunoReboul/dam/utilities/cai"
	"github.com/BrunoReboul/dam/utilities/deploy"
	"github.com/BrunoReboul/dam/utilities/gcf"
	"github.com/BrunoReboul/dam/utilities/sch"
)

// InstanceDeployment settings and artifacts structure
type InstanceDeployment struct {
	Artifacts struct {
		DrainTopicName string `yaml:"drainTopicName"`
		TopicName      string `yaml:"topicName"`
	}
	Core     *deploy.Core
	Settings struct {
		Service struct {
			GCF gcf.Parameters
		}
		Instance struct {
			CAI cai.Parameters
			SCH sch.Parameters
		}
	}
}

// NewInstanceDeployment create deployment structure with default settings set
func NewInstanceDeployment() *InstanceDeployment {
	var instanceDeployment InstanceDeployment
	instanceDeployment.Settings.Service.GCF.AvailableMemoryMb = 128
	instanceDeployment.Settings.Service.GCF.RetryTimeOutSeconds = 600
	instanceDeployment.Settings.Service.GCF.Timeout = "120s"
	instanceDeployment.Settings.Instance.CAI.AssumeCompleteAfterHours = 6
	return &instanceDeployment
}

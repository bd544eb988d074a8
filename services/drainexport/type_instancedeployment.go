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
	"github.com/BrunoReboul/dam/utilities/cai"
	"github.com/BrunoReboul/dam/utilities/deploy"
	"github.com/BrunoReboul/dam/utilities/gcf"
)

// InstanceDeployment settings and artifacts structure
type InstanceDeployment struct {
	Artifacts struct {
		AssetsTopicName string `yaml:"assetsTopicName"`
		TopicName       string `yaml:"topicName"`
	}
	Core     *deploy.Core
	Settings struct {
		Service struct {
			GCF                     gcf.Parameters
			LogEventEveryXPubSubMsg uint64 `yaml:"logEventEveryXPubSubMsg"`
		}
		Instance struct {
			CAI                        cai.Parameters
			DrainTimeBudgetSeconds     int64 `yaml:"drainTimeBudgetSeconds"`
			ScannerBufferSizeKiloBytes int   `yaml:"scannerBufferSizeKiloBytes"`
		}
	}
}

// NewInstanceDeployment create deployment structure with default settings set
func NewInstanceDeployment() *InstanceDeployment {
	var instanceDeployment InstanceDeployment
	instanceDeployment.Settings.Service.GCF.AvailableMemoryMb = 512
	instanceDeployment.Settings.Service.GCF.RetryTimeOutSeconds = 600
	// Function timeout above the drain time budget so a continuation is scheduled
	// before the platform kills the run
	instanceDeployment.Settings.Service.GCF.Timeout = "540s"
	instanceDeployment.Settings.Service.LogEventEveryXPubSubMsg = 1000
	instanceDeployment.Settings.Instance.DrainTimeBudgetSeconds = 480
	instanceDeployment.Settings.Instance.ScannerBufferSizeKiloBytes = 1024
	return &instanceDeployment
}

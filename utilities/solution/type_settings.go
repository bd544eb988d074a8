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

package solution

// Settings settings common to all services / all instances
type Settings struct {
	Hosting struct {
		OrganizationID  string            `yaml:"organizationID,omitempty"`
		OrganizationIDs map[string]string `yaml:"organizationIDs"`
		ProjectID       string            `yaml:"projectID,omitempty"`
		ProjectLabels   map[string]string `yaml:"projectLabels"`
		ProjectIDs      map[string]string `yaml:"projectIDs"`
		Repository      struct {
			Name string `valid:"isNotZeroValue"`
		}
		GCF struct {
			Region string `valid:"isNotZeroValue"`
		}
		GCS struct {
			Buckets struct {
				AssetExports struct {
					Name            string `yaml:",omitempty"`
					Names           map[string]string
					DeleteAgeInDays int64 `yaml:"deleteAgeInDays,omitempty"`
				} `yaml:"assetExports"`
			}
		}
		Pubsub struct {
			TopicNames struct {
				GCPAssets           string `yaml:"GCPAssets" valid:"isNotZeroValue"`
				DrainExportRequests string `yaml:"drainExportRequests" valid:"isNotZeroValue"`
			} `yaml:"topicNames"`
		}
	}
	Exports struct {
		DefaultSchedulers map[string]struct {
			JobName  string `yaml:"jobName"`
			Schedule string
		} `yaml:"defaultSchedulers"`
		AssetTypes struct {
			IAMPolicies []string `yaml:"iamPolicies"`
			Resources   []string `yaml:"resources"`
		} `yaml:"assetTypes"`
	}
}

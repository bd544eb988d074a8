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

package cai

import "time"

// ExportManifest is the content of the lock marker object. It records which export
// operations feed the prefix so that drains can be signaled once they all complete
type ExportManifest struct {
	OperationNames   []string  `json:"operationNames"`
	AssetTypes       []string  `json:"assetTypes"`
	ContentTypes     []string  `json:"contentTypes"`
	RequestTime      time.Time `json:"requestTime"`
	MicroserviceName string    `json:"microserviceName"`
	InstanceName     string    `json:"instanceName"`
	Environment      string    `json:"environment"`
	Version          string    `json:"version"`
}

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

package logging

import "time"

// Step defines one event in a chain of processing acrross microservices
type Step struct {
	StepID        string    `json:"step_id,omitempty"`
	StepTimestamp time.Time `json:"step_timestamp,omitempty"`
}

// Steps is a stack of steps. The first one is the origin event
type Steps []Step

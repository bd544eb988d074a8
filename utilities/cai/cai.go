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

// ExportPrefixLead starts the name of every export run prefix. Contract with downstream tooling, do not change
const ExportPrefixLead = "asset_export_v2_"

// ExportPrefixTimestampFormat timestamp layout appended to ExportPrefixLead
const ExportPrefixTimestampFormat = "20060102-150405"

// MarkerFileName name of the lock marker object directly under an export prefix. Contract, do not change
const MarkerFileName = "operation_name.txt"

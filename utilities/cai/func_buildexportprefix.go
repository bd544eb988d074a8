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

// BuildExportPrefix returns the export run prefix for a given request time, like asset_export_v2_20200714-094521
func BuildExportPrefix(t time.Time) string {
	return ExportPrefixLead + t.UTC().Format(ExportPrefixTimestampFormat)
}

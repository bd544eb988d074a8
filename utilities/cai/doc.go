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

/*
Package cai owns the Cloud Asset Inventory export layout and record parsing

Export layout in the asset exports bucket, one prefix per export run:

 asset_export_v2_<YYYYMMDD-hhmmss>/
     operation_name.txt            the lock marker, content is the export manifest
     RESOURCE/...                  newline delimited JSON dumps, one asset per line
     IAM_POLICY/...
     ORG_POLICY/...
     ACCESS_POLICY/...

The marker path and the asset_export_v2_ prefix lead are contracts shared with
the export requester and must not change. The content type is always the
second path segment of a dump object. The asset type filter of an export run
is carried by the manifest, not by object paths.
*/
package cai

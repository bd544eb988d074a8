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

// Package lck manages advisory locks materialized as marker objects in a GCS bucket
//
// The lock is advisory, not a mutex: it gates whether a drain may start, it does
// not prevent concurrent drains. Concurrent drains stay safe because deletes and
// releases are idempotent
//
// - Acquire writes the marker only when absent, an existing marker is success
//
// - IsLocked reports marker existence
//
// - Release deletes the marker, an absent marker is success
package lck

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

import "context"

// AssetTypesResolver derives the asset type filter to stamp on messages drained
// from an export prefix. Strategies differ on where the filter lives, in the lock
// marker manifest or in instance settings, so the drainer takes it as a function
type AssetTypesResolver func(ctx context.Context, exportPrefix string) []string

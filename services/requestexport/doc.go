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
Package requestexport request CAI to perform one export per content type

Triggered by

Cloud Scheduler Job, through PubSub messages. A JSON payload may override the
configured asset type and content type filters.

Instances

- one per monitored organization or folder.

Output

- One CAI ExportAssets asynchronous operation per content type, delivered under
a timestamped prefix in the asset exports bucket.

- The lock marker object under the prefix, containing the export manifest:
operation names, filters, request time.

Cardinality

One-few: one trigger, one export operation per content type.

Automatic retrying

Yes.

Required environment variables

None, settings are read from the instance settings file at cold start.

Implementation example

 package p
 import (
     "context"

     "github.com/BrunoReboul/dam/services/requestexport"
     "github.com/BrunoReboul/dam/utilities/gps"
 )
 var global requestexport.Global
 var ctx = context.Background()

 // EntryPoint is the function to be executed for each cloud function occurence
 func EntryPoint(ctxEvent context.Context, PubSubMessage gps.PubSubMessage) error {
     return requestexport.EntryPoint(ctxEvent, PubSubMessage, &global)
 }

 func init() {
     requestexport.Initialize(ctx, &global)
 }

*/
package requestexport

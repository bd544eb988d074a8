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
Package checkexport detect completed asset exports and signal the drainer

Triggered by

Cloud Scheduler Job, through PubSub messages.

Instances

Only one.

Output

- One drain request PubSub message per export prefix whose operations are all
complete.

Cardinality

One-few: one cron tick, one check per live export prefix.

A prefix is signaled again on every tick while its lock marker survives, which
doubles as the safety net for a drain that died mid way.

Automatic retrying

Yes, through the next cron tick, per prefix.

Implementation example

 package p
 import (
     "context"

     "github.com/BrunoReboul/dam/services/checkexport"
     "github.com/BrunoReboul/dam/utilities/gps"
 )
 var global checkexport.Global
 var ctx = context.Background()

 // EntryPoint is the function to be executed for each cloud function occurence
 func EntryPoint(ctxEvent context.Context, PubSubMessage gps.PubSubMessage) error {
     return checkexport.EntryPoint(ctxEvent, PubSubMessage, &global)
 }

 func init() {
     checkexport.Initialize(ctx, &global)
 }

*/
package checkexport

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
Package drainexport nibble asset export dumps into individual PubSub asset messages

One dump line = one PubSub message.

Triggered by

PubSub messages on the drain requests topic: sent by checkexport once an export is
complete, by a previous drain run as a continuation, or replayed manually.

Instances

Only one.

Output

- One PubSub message per dump line on the assets topic.

- Dump objects deleted once every line is confirmed published.

- Lock marker deleted once the export prefix is empty, releasing the prefix.

Cardinality

One-many: one export prefix is nibbled in many asset messages.

To ensure scallabilty the function is bugdeted on time:

- Draining stops on an object boundary when the time budget is exhausted.

- A continuation message for the same prefix is then published on its own trigger topic.

- Duplicated drain requests are harmless: draining an already empty prefix is a no op.

Automatic retrying

Yes.

Is recurssive

Yes.

Implementation example

 package p
 import (
     "context"

     "github.com/BrunoReboul/dam/services/drainexport"
     "github.com/BrunoReboul/dam/utilities/gps"
 )
 var global drainexport.Global
 var ctx = context.Background()

 // EntryPoint is the function to be executed for each cloud function occurence
 func EntryPoint(ctxEvent context.Context, PubSubMessage gps.PubSubMessage) error {
     return drainexport.EntryPoint(ctxEvent, PubSubMessage, &global)
 }

 func init() {
     drainexport.Initialize(ctx, &global)
 }

*/
package drainexport

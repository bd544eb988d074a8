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
Package dumpassetmessenger DAM Dump Asset Messenger

## What

Turn point in time Cloud Asset Inventory exports into a stream of individual
asset messages. One export dump line becomes one PubSub message, so that
consumers deal with assets one by one instead of parsing multi gigabytes
dump files.

## How

1. `requestexport` requests asset inventory exports to a GCS bucket on a cron
schedule, one export prefix per run, and writes a lock marker under the
prefix
2. `checkexport` polls the export operations on a cron schedule and signals
each completed export prefix to a PubSub topic
3. `drainexport` drains a signaled prefix: publishes every dump line as one
PubSub message, deletes each fully published object, and releases the lock
marker once the prefix is empty. When the time budget runs out it schedules
a continuation and stops cleanly

## Why

- Exports scale to inventories where per change feeds are not available or
not yet configured
- Small messages are cheap to consume: each downstream service filters on
message attributes instead of reading dump files
*/
package dumpassetmessenger

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
Package logging renders structured entries to stdout in the JSON format
expected by Cloud Logging

Microservices log by printing an Entry with the standard log package. Cloud
Logging maps the special fields, in particular severity and message, so the
entries are queryable without any logging client in the runtime path.

Message conventions used accross DAM microservices

 - coldstart          once per instance initialization, with an initID
 - start              once per triggering event, with the trigger age
 - cancel ...         the invocation stops and must not be retried
 - noretry ...        an error occured and retrying would not help
 - redo_on_transient  an error occured and the platform should retry
 - finish ...         the invocation completed, with latencies

A Step identifies one event in a processing chain. Steps are stacked and
forwarded from one microservice to the next so the last one can log the end
to end latency.
*/
package logging

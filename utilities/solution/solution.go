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

package solution

// SolutionName the solution short name
const SolutionName = "dam"

// SettingsFileName name of the settings file loaded by a microservice instance on cold start
const SettingsFileName = "settings.yaml"

// SolutionSettingsFileName name of the solution settings file at the repository root
const SolutionSettingsFileName = "solution.yaml"

// InstanceSettingsFileName name of the instance specific settings file in an instance folder
const InstanceSettingsFileName = "instance.yaml"

// PathToFunctionCode relative path from where a cloud function reads its files
const PathToFunctionCode = "./"

// MicroserviceParentFolderName folder hosting one subfolder per microservice
const MicroserviceParentFolderName = "services"

// InstancesFolderName folder hosting one subfolder per microservice instance
const InstancesFolderName = "instances"

// DevelopmentEnvironmentName name of the development environment
const DevelopmentEnvironmentName = "dev"

// YAMLDisclaimer text to be added on top of generated yaml files
const YAMLDisclaimer = `# Copyright 2020 Google LLC
#
# Licensed under the Apache License, Version 2.0 (the 'License');
# you may not use this file except in compliance with the License.
# You may obtain a copy of the License at
#
#     http://www.apache.org/licenses/LICENSE-2.0
#
# Unless required by applicable law or agreed to in writing, software
# distributed under the License is distributed on an 'AS IS' BASIS,
# WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
# See the License for the specific language governing permissions and
# limitations under the License.
#
# Generated file, do not edit, launch the dam cli to update
`

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

package requestexport

import (
	"fmt"

	"github.com/BrunoReboul/dam/utilities/cai"
	"github.com/BrunoReboul/dam/utilities/ffo"
	"github.com/BrunoReboul/dam/utilities/solution"
	"github.com/BrunoReboul/dam/utilities/validater"
)

// ReadValidate reads the instance yaml settings file and validates the merged settings
func (instanceDeployment *InstanceDeployment) ReadValidate() (err error) {
	instanceConfigFilePath := fmt.Sprintf("%s/%s/%s/%s/%s/%s",
		instanceDeployment.Core.RepositoryPath,
		solution.MicroserviceParentFolderName,
		instanceDeployment.Core.ServiceName,
		solution.InstancesFolderName,
		instanceDeployment.Core.InstanceName,
		solution.InstanceSettingsFileName)
	err = ffo.ReadUnmarshalYAML(instanceConfigFilePath, &instanceDeployment.Settings.Instance)
	if err != nil {
		return fmt.Errorf("%s ReadUnmarshalYAML %s %v", instanceDeployment.Core.InstanceName, instanceConfigFilePath, err)
	}
	err = validater.ValidateStruct(&instanceDeployment.Settings, fmt.Sprintf("%sSettings", instanceDeployment.Core.ServiceName))
	if err != nil {
		return err
	}
	if instanceDeployment.Settings.Instance.CAI.Parent == "" {
		return fmt.Errorf("%s missing CAI parent in %s", instanceDeployment.Core.InstanceName, solution.InstanceSettingsFileName)
	}
	for _, contentType := range instanceDeployment.Settings.Instance.CAI.ContentTypes {
		if _, err = cai.ContentTypePb(contentType); err != nil {
			return fmt.Errorf("%s %v", instanceDeployment.Core.InstanceName, err)
		}
	}
	return nil
}

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

package drainexport

import (
	"fmt"

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
	if instanceDeployment.Settings.Instance.DrainTimeBudgetSeconds < 1 {
		return fmt.Errorf("%s drainTimeBudgetSeconds must be at least 1 and is %d", instanceDeployment.Core.InstanceName, instanceDeployment.Settings.Instance.DrainTimeBudgetSeconds)
	}
	if instanceDeployment.Settings.Instance.ScannerBufferSizeKiloBytes < 1 {
		return fmt.Errorf("%s scannerBufferSizeKiloBytes must be at least 1 and is %d", instanceDeployment.Core.InstanceName, instanceDeployment.Settings.Instance.ScannerBufferSizeKiloBytes)
	}
	return nil
}

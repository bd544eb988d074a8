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

package damcli

import (
	"fmt"
	"log"

	"github.com/BrunoReboul/dam/services/requestexport"
	"github.com/BrunoReboul/dam/utilities/ffo"
	"github.com/BrunoReboul/dam/utilities/solution"
)

func (deployment *Deployment) deployRequestexport() {
	instanceDeployment := requestexport.NewInstanceDeployment()
	instanceDeployment.Core = &deployment.Core
	err := instanceDeployment.ReadValidate()
	if err != nil {
		log.Fatal(err)
	}
	err = instanceDeployment.Situate()
	if err != nil {
		log.Fatal(err)
	}
	if deployment.Core.Commands.Dumpsettings {
		settingsFilePath := fmt.Sprintf("%s/%s/%s/%s/%s/%s",
			deployment.Core.RepositoryPath,
			solution.MicroserviceParentFolderName,
			deployment.Core.ServiceName,
			solution.InstancesFolderName,
			deployment.Core.InstanceName,
			solution.SettingsFileName)
		if err = ffo.MarshalYAMLWrite(settingsFilePath, instanceDeployment); err != nil {
			log.Fatal(err)
		}
		log.Printf("%s settings dumped in %s", deployment.Core.InstanceName, settingsFilePath)
	}
	if deployment.Core.Commands.Deploy {
		err = instanceDeployment.Deploy()
	}
	if err != nil {
		log.Fatal(err)
	}
}

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
	"flag"
	"fmt"
	"log"

	"github.com/BrunoReboul/dam/utilities/ffo"
	"github.com/BrunoReboul/dam/utilities/solution"
)

// CheckArguments check cli arguments and build the list of microservices instances
func (deployment *Deployment) CheckArguments() {
	flag.BoolVar(&deployment.Core.Commands.Deploy, "deploy", false, "deploy one microservice instance")
	flag.BoolVar(&deployment.Core.Commands.Dumpsettings, "dump", false, fmt.Sprintf("dump all settings in %s", solution.SettingsFileName))
	flag.StringVar(&deployment.Core.RepositoryPath, "repo", ".", "Path to the root of the code repository")
	var microserviceFolderName = flag.String("service", "", "Microservice folder name")
	var instanceFolderName = flag.String("instance", "", "Instance folder name")
	flag.StringVar(&deployment.Core.EnvironmentName, "environment", solution.DevelopmentEnvironmentName, "Environment name")
	flag.Parse()

	var err error
	deployment.Core.GoVersion, deployment.Core.DAMVersion, err = getVersions(deployment.Core.RepositoryPath)
	if err != nil {
		log.Fatalln(err)
	}

	// case one instance
	if *instanceFolderName != "" {
		if *microserviceFolderName == "" {
			log.Fatalln("Missing service argument")
		}
		instanceRelativePath := fmt.Sprintf("%s/%s/%s/%s", solution.MicroserviceParentFolderName, *microserviceFolderName, solution.InstancesFolderName, *instanceFolderName)
		deployment.Core.InstanceFolderRelativePaths = []string{instanceRelativePath}
		instancePath := fmt.Sprintf("%s/%s", deployment.Core.RepositoryPath, instanceRelativePath)
		ffo.CheckPath(instancePath)
		return
	}

	if *microserviceFolderName != "" {
		// case one microservice
		deployment.Core.InstanceFolderRelativePaths, err = ffo.GetChild(deployment.Core.RepositoryPath, fmt.Sprintf("%s/%s/%s", solution.MicroserviceParentFolderName, *microserviceFolderName, solution.InstancesFolderName))
		if err != nil {
			log.Fatalln(err)
		}
	} else {
		// case all
		microserviceRelativeFolderPaths, err := ffo.GetChild(deployment.Core.RepositoryPath, solution.MicroserviceParentFolderName)
		if err != nil {
			log.Fatalln(err)
		}
		for _, microserviceRelativeFolderPath := range microserviceRelativeFolderPaths {
			instanceFolderRelativePaths, err := ffo.GetChild(deployment.Core.RepositoryPath, fmt.Sprintf("%s/%s", microserviceRelativeFolderPath, solution.InstancesFolderName))
			if err != nil {
				log.Fatalln(err)
			}
			for _, instanceFolderRelativePath := range instanceFolderRelativePaths {
				deployment.Core.InstanceFolderRelativePaths = append(deployment.Core.InstanceFolderRelativePaths, instanceFolderRelativePath)
			}
		}
	}
	if len(deployment.Core.InstanceFolderRelativePaths) == 0 {
		log.Fatalln("No instance found")
	}
	return
}

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
	"context"
	"fmt"
	"log"

	scheduler "cloud.google.com/go/scheduler/apiv1"

	pubsub "cloud.google.com/go/pubsub/apiv1"
	"cloud.google.com/go/storage"
	"github.com/BrunoReboul/dam/utilities/ffo"
	"github.com/BrunoReboul/dam/utilities/solution"
	"github.com/BrunoReboul/dam/utilities/validater"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
)

// Initialize is to be executed once before DAMCli to create the client services
func Initialize(ctx context.Context, deployment *Deployment) {
	deployment.Core.Ctx = ctx

	var err error
	creds, err := google.FindDefaultCredentials(ctx, "https://www.googleapis.com/auth/cloud-platform")
	if err != nil {
		log.Fatalf("ERROR - google.FindDefaultCredentials %v", err)
	}

	deployment.Core.Services.StorageClient, err = storage.NewClient(ctx, option.WithCredentials(creds))
	if err != nil {
		log.Fatalln(err)
	}
	deployment.Core.Services.PubsubPublisherClient, err = pubsub.NewPublisherClient(ctx, option.WithCredentials(creds))
	if err != nil {
		log.Fatalln(err)
	}
	deployment.Core.Services.CloudSchedulerClient, err = scheduler.NewCloudSchedulerClient(ctx, option.WithCredentials(creds))
	if err != nil {
		log.Fatalln(err)
	}
}

// DAMCli Dump Asset Messenger cli
func DAMCli(deployment *Deployment) (err error) {
	deployment.CheckArguments()

	solutionConfigFilePath := fmt.Sprintf("%s/%s", deployment.Core.RepositoryPath, solution.SolutionSettingsFileName)
	if err = ffo.ReadUnmarshalYAML(solutionConfigFilePath, &deployment.Core.SolutionSettings); err != nil {
		log.Fatalf("ERROR - ReadUnmarshalYAML %s %v", solutionConfigFilePath, err)
	}
	if err = validater.ValidateStruct(&deployment.Core.SolutionSettings, "solutionSettings"); err != nil {
		log.Fatalln(err)
	}
	deployment.Core.SolutionSettings.Situate(deployment.Core.EnvironmentName)

	log.Printf("Found %d instance(s)", len(deployment.Core.InstanceFolderRelativePaths))
	for _, instanceFolderRelativePath := range deployment.Core.InstanceFolderRelativePaths {
		serviceName, instanceName := GetServiceAndInstanceNames(instanceFolderRelativePath)
		deployment.Core.ServiceName = serviceName
		deployment.Core.InstanceName = instanceName
		switch serviceName {
		case "requestexport":
			deployment.deployRequestexport()
		case "checkexport":
			deployment.deployCheckexport()
		case "drainexport":
			deployment.deployDrainexport()
		default:
			log.Printf("%s is not a deployable service, skip instance %s", serviceName, instanceName)
		}
	}
	return nil
}

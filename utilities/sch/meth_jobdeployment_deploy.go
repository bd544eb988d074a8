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

package sch

import (
	"fmt"
	"log"
	"strings"

	schedulerpb "google.golang.org/genproto/googleapis/cloud/scheduler/v1"
)

// Deploy get-or-create the cloud scheduler job triggering this microservice instance
func (jobDeployment *JobDeployment) Deploy() (err error) {
	jobName := fmt.Sprintf("projects/%s/locations/%s/jobs/%s",
		jobDeployment.Core.SolutionSettings.Hosting.ProjectID,
		jobDeployment.Core.SolutionSettings.Hosting.GCF.Region,
		jobDeployment.Settings.SCH.JobName)
	var getJobRequest schedulerpb.GetJobRequest
	getJobRequest.Name = jobName
	retreivedJob, err := jobDeployment.Core.Services.CloudSchedulerClient.GetJob(jobDeployment.Core.Ctx, &getJobRequest)
	if err == nil {
		log.Printf("%s sch job found %s", jobDeployment.Core.InstanceName, retreivedJob.Name)
		return nil
	}
	if !strings.Contains(strings.ToLower(err.Error()), "notfound") {
		return fmt.Errorf("CloudSchedulerClient.GetJob %v", err)
	}

	var pubsubTarget schedulerpb.PubsubTarget
	pubsubTarget.TopicName = fmt.Sprintf("projects/%s/topics/%s",
		jobDeployment.Core.SolutionSettings.Hosting.ProjectID,
		jobDeployment.Settings.SCH.TopicName)
	pubsubTarget.Data = []byte(fmt.Sprintf("cron schedule %s", jobDeployment.Settings.SCH.Schedule))

	var jobPubsubTarget schedulerpb.Job_PubsubTarget
	jobPubsubTarget.PubsubTarget = &pubsubTarget

	var job schedulerpb.Job
	job.Name = jobName
	job.Description = fmt.Sprintf("Dump Asset Messenger %s trigger", jobDeployment.Core.ServiceName)
	job.Target = &jobPubsubTarget
	job.Schedule = jobDeployment.Settings.SCH.Schedule

	var createJobRequest schedulerpb.CreateJobRequest
	createJobRequest.Parent = fmt.Sprintf("projects/%s/locations/%s",
		jobDeployment.Core.SolutionSettings.Hosting.ProjectID,
		jobDeployment.Core.SolutionSettings.Hosting.GCF.Region)
	createJobRequest.Job = &job

	createdJob, err := jobDeployment.Core.Services.CloudSchedulerClient.CreateJob(jobDeployment.Core.Ctx, &createJobRequest)
	if err != nil {
		if strings.Contains(err.Error(), "AlreadyExists") {
			// Another deployment created it meanwhile
			log.Printf("%s sch job found %s", jobDeployment.Core.InstanceName, jobName)
			return nil
		}
		return fmt.Errorf("CloudSchedulerClient.CreateJob %v", err)
	}
	log.Printf("%s sch job created %s", jobDeployment.Core.InstanceName, createdJob.Name)
	return nil
}

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
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/BrunoReboul/dam/utilities/cai"
	"github.com/BrunoReboul/dam/utilities/ffo"
	"github.com/BrunoReboul/dam/utilities/gps"
	"github.com/BrunoReboul/dam/utilities/lck"
	"github.com/BrunoReboul/dam/utilities/logging"
	"github.com/BrunoReboul/dam/utilities/solution"
	"github.com/google/uuid"

	asset "cloud.google.com/go/asset/apiv1"
	"cloud.google.com/go/functions/metadata"
	"cloud.google.com/go/storage"
	assetpb "google.golang.org/genproto/googleapis/cloud/asset/v1"
)

// Global structure for global variables to optimize the cloud function performances
type Global struct {
	assetClient         *asset.Client
	bucketHandle        *storage.BucketHandle
	bucketName          string
	ctx                 context.Context
	environment         string
	instanceName        string
	microserviceName    string
	parameters          cai.Parameters
	PubSubID            string
	retryTimeOutSeconds int64
	step                logging.Step
	stepStack           logging.Steps
	version             string
}

// exportRequest optional JSON trigger payload overriding the instance filters.
// Callers historically used both the plural and the singular content type key
type exportRequest struct {
	AssetTypes   []string `json:"asset_types"`
	ContentTypes []string `json:"content_types"`
	ContentType  []string `json:"content_type"`
}

// resolveExportFilters interprets the trigger payload. A cron payload keeps the
// configured filters, a JSON payload overrides the keys it carries
func resolveExportFilters(payload []byte, parameters cai.Parameters) (assetTypes []string, contentTypes []string, err error) {
	assetTypes = parameters.AssetTypes
	contentTypes = parameters.ContentTypes
	if !strings.HasPrefix(string(payload), "cron schedule") {
		var request exportRequest
		err = json.Unmarshal(payload, &request)
		if err != nil {
			return nil, nil, fmt.Errorf("json.Unmarshal export request %v", err)
		}
		if len(request.AssetTypes) > 0 {
			assetTypes = request.AssetTypes
		}
		if len(request.ContentTypes) > 0 {
			contentTypes = request.ContentTypes
		} else if len(request.ContentType) > 0 {
			contentTypes = request.ContentType
		}
	}
	if len(contentTypes) == 0 {
		contentTypes = cai.SupportedContentTypes()
	}
	for _, contentType := range contentTypes {
		if _, err := cai.ContentTypePb(contentType); err != nil {
			return nil, nil, err
		}
	}
	return assetTypes, contentTypes, nil
}

// Initialize is to be executed in the init() function of the cloud function to optimize the cold start
func Initialize(ctx context.Context, global *Global) (err error) {
	log.SetFlags(0)
	global.ctx = ctx

	var instanceDeployment InstanceDeployment
	var storageClient *storage.Client

	initID := fmt.Sprintf("%v", uuid.New())
	err = ffo.ReadUnmarshalYAML(solution.PathToFunctionCode+solution.SettingsFileName, &instanceDeployment)
	if err != nil {
		log.Println(logging.Entry{
			Severity:    "CRITICAL",
			Message:     "init_failed",
			Description: fmt.Sprintf("ReadUnmarshalYAML %s %v", solution.SettingsFileName, err),
			InitID:      initID,
		})
		return err
	}

	global.environment = instanceDeployment.Core.EnvironmentName
	global.instanceName = instanceDeployment.Core.InstanceName
	global.microserviceName = instanceDeployment.Core.ServiceName

	log.Println(logging.Entry{
		MicroserviceName: global.microserviceName,
		InstanceName:     global.instanceName,
		Environment:      global.environment,
		Severity:         "NOTICE",
		Message:          "coldstart",
		InitID:           initID,
	})

	global.bucketName = instanceDeployment.Core.SolutionSettings.Hosting.GCS.Buckets.AssetExports.Name
	global.parameters = instanceDeployment.Settings.Instance.CAI
	global.retryTimeOutSeconds = instanceDeployment.Settings.Service.GCF.RetryTimeOutSeconds
	global.version = instanceDeployment.Core.DAMVersion

	storageClient, err = storage.NewClient(ctx)
	if err != nil {
		log.Println(logging.Entry{
			MicroserviceName: global.microserviceName,
			InstanceName:     global.instanceName,
			Environment:      global.environment,
			Severity:         "CRITICAL",
			Message:          "init_failed",
			Description:      fmt.Sprintf("storage.NewClient %v", err),
			InitID:           initID,
		})
		return err
	}
	global.bucketHandle = storageClient.Bucket(global.bucketName)

	global.assetClient, err = asset.NewClient(ctx)
	if err != nil {
		log.Println(logging.Entry{
			MicroserviceName: global.microserviceName,
			InstanceName:     global.instanceName,
			Environment:      global.environment,
			Severity:         "CRITICAL",
			Message:          "init_failed",
			Description:      fmt.Sprintf("asset.NewClient %v", err),
			InitID:           initID,
		})
		return err
	}
	return nil
}

// EntryPoint is the function to be executed for each cloud function occurence
func EntryPoint(ctxEvent context.Context, PubSubMessage gps.PubSubMessage, global *Global) error {
	metadata, err := metadata.FromContext(ctxEvent)
	if err != nil {
		// Assume an error on the function invoker and try again.
		log.Println(logging.Entry{
			MicroserviceName:   global.microserviceName,
			InstanceName:       global.instanceName,
			Environment:        global.environment,
			Severity:           "CRITICAL",
			Message:            "redo_on_transient",
			Description:        fmt.Sprintf("pubsub_id no available metadata.FromContext: %v", err),
			TriggeringPubsubID: global.PubSubID,
		})
		return err
	}
	global.stepStack = nil
	global.PubSubID = metadata.EventID
	parts := strings.Split(metadata.Resource.Name, "/")
	global.step = logging.Step{
		StepID:        fmt.Sprintf("%s/%s", parts[len(parts)-1], global.PubSubID),
		StepTimestamp: metadata.Timestamp,
	}
	global.stepStack = append(global.stepStack, global.step)

	now := time.Now()
	d := now.Sub(metadata.Timestamp)
	log.Println(logging.Entry{
		MicroserviceName:           global.microserviceName,
		InstanceName:               global.instanceName,
		Environment:                global.environment,
		Severity:                   "NOTICE",
		Message:                    "start",
		TriggeringPubsubID:         global.PubSubID,
		TriggeringPubsubAgeSeconds: d.Seconds(),
		TriggeringPubsubTimestamp:  &metadata.Timestamp,
		Now:                        &now,
	})

	if d.Seconds() > float64(global.retryTimeOutSeconds) {
		log.Println(logging.Entry{
			MicroserviceName:           global.microserviceName,
			InstanceName:               global.instanceName,
			Environment:                global.environment,
			Severity:                   "CRITICAL",
			Message:                    "noretry",
			Description:                "Pubsub message too old",
			TriggeringPubsubID:         global.PubSubID,
			TriggeringPubsubAgeSeconds: d.Seconds(),
			TriggeringPubsubTimestamp:  &metadata.Timestamp,
			Now:                        &now,
		})
		return nil
	}

	assetTypes, contentTypes, err := resolveExportFilters(PubSubMessage.Data, global.parameters)
	if err != nil {
		// Retrying a bad payload or a bad configuration cannot fix it
		log.Println(logging.Entry{
			MicroserviceName:   global.microserviceName,
			InstanceName:       global.instanceName,
			Environment:        global.environment,
			Severity:           "CRITICAL",
			Message:            "noretry",
			Description:        fmt.Sprintf("resolveExportFilters %v %v", PubSubMessage.Data, err),
			TriggeringPubsubID: global.PubSubID,
		})
		return nil
	}

	requestTime := time.Now()
	exportPrefix := cai.BuildExportPrefix(requestTime)
	var operationNames []string
	for _, contentType := range contentTypes {
		contentTypePb, _ := cai.ContentTypePb(contentType)

		var gcsDestinationURIPrefix assetpb.GcsDestination_UriPrefix
		gcsDestinationURIPrefix.UriPrefix = fmt.Sprintf("gs://%s/%s/%s", global.bucketName, exportPrefix, contentType)

		var gcsDestination assetpb.GcsDestination
		gcsDestination.ObjectUri = &gcsDestinationURIPrefix

		var outputConfigGCSDestination assetpb.OutputConfig_GcsDestination
		outputConfigGCSDestination.GcsDestination = &gcsDestination

		var outputConfig assetpb.OutputConfig
		outputConfig.Destination = &outputConfigGCSDestination

		var request assetpb.ExportAssetsRequest
		request.Parent = global.parameters.Parent
		request.AssetTypes = assetTypes
		request.ContentType = contentTypePb
		request.OutputConfig = &outputConfig

		operation, err := global.assetClient.ExportAssets(global.ctx, &request)
		if err != nil {
			log.Println(logging.Entry{
				MicroserviceName:   global.microserviceName,
				InstanceName:       global.instanceName,
				Environment:        global.environment,
				Severity:           "CRITICAL",
				Message:            "redo_on_transient",
				Description:        fmt.Sprintf("assetClient.ExportAssets %s %s %v", contentType, exportPrefix, err),
				TriggeringPubsubID: global.PubSubID,
			})
			return err
		}
		// Do NOT wait for the export to complete: saves invocation time and avoids
		// a function timeout. checkexport polls the operations
		log.Println(logging.Entry{
			MicroserviceName:   global.microserviceName,
			InstanceName:       global.instanceName,
			Environment:        global.environment,
			Severity:           "NOTICE",
			Message:            fmt.Sprintf("export requested %s %s", contentType, exportPrefix),
			Description:        fmt.Sprintf("gcloud asset operations describe %s", operation.Name()),
			TriggeringPubsubID: global.PubSubID,
		})
		operationNames = append(operationNames, operation.Name())
	}

	var exportManifest cai.ExportManifest
	exportManifest.OperationNames = operationNames
	exportManifest.AssetTypes = assetTypes
	exportManifest.ContentTypes = contentTypes
	exportManifest.RequestTime = requestTime.UTC()
	exportManifest.MicroserviceName = global.microserviceName
	exportManifest.InstanceName = global.instanceName
	exportManifest.Environment = global.environment
	exportManifest.Version = global.version
	markerContent, err := json.Marshal(exportManifest)
	if err != nil {
		log.Println(logging.Entry{
			MicroserviceName:   global.microserviceName,
			InstanceName:       global.instanceName,
			Environment:        global.environment,
			Severity:           "CRITICAL",
			Message:            "noretry",
			Description:        fmt.Sprintf("json.Marshal(exportManifest) %v", err),
			TriggeringPubsubID: global.PubSubID,
		})
		return nil
	}
	err = lck.Acquire(global.ctx, global.bucketHandle, cai.MarkerObjectPath(exportPrefix), markerContent)
	if err != nil {
		// The platform retry requests a fresh prefix, this marker less one ages out
		// through the bucket lifecycle rule
		log.Println(logging.Entry{
			MicroserviceName:   global.microserviceName,
			InstanceName:       global.instanceName,
			Environment:        global.environment,
			Severity:           "CRITICAL",
			Message:            "redo_on_transient",
			Description:        fmt.Sprintf("lck.Acquire %s %v", cai.MarkerObjectPath(exportPrefix), err),
			TriggeringPubsubID: global.PubSubID,
		})
		return err
	}

	description := fmt.Sprintf("%d operations %s", len(operationNames), strings.Join(operationNames, " "))
	if len(assetTypes) > 0 {
		var assetShortNames []string
		for _, assetType := range assetTypes {
			assetShortNames = append(assetShortNames, cai.GetAssetShortTypeName(assetType))
		}
		description = fmt.Sprintf("%s filtered on %s", description, strings.Join(assetShortNames, " "))
	}
	now = time.Now()
	latency := now.Sub(metadata.Timestamp)
	latencyE2E := now.Sub(global.stepStack[0].StepTimestamp)
	log.Println(logging.Entry{
		MicroserviceName:     global.microserviceName,
		InstanceName:         global.instanceName,
		Environment:          global.environment,
		Severity:             "NOTICE",
		Message:              fmt.Sprintf("finish export requested %s", exportPrefix),
		Description:          description,
		Now:                  &now,
		TriggeringPubsubID:   global.PubSubID,
		OriginEventTimestamp: &metadata.Timestamp,
		LatencySeconds:       latency.Seconds(),
		LatencyE2ESeconds:    latencyE2E.Seconds(),
		StepStack:            global.stepStack,
	})
	return nil
}

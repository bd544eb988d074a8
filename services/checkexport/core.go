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

package checkexport

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"log"
	"strings"
	"time"

	"github.com/BrunoReboul/dam/utilities/cai"
	"github.com/BrunoReboul/dam/utilities/ffo"
	"github.com/BrunoReboul/dam/utilities/gps"
	"github.com/BrunoReboul/dam/utilities/logging"
	"github.com/BrunoReboul/dam/utilities/solution"
	"github.com/google/uuid"

	asset "cloud.google.com/go/asset/apiv1"
	"cloud.google.com/go/functions/metadata"
	pubsub "cloud.google.com/go/pubsub/apiv1"
	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
	pubsubpb "google.golang.org/genproto/googleapis/pubsub/v1"
)

// Global structure for global variables to optimize the cloud function performances
type Global struct {
	assetClient              *asset.Client
	assumeCompleteAfterHours int64
	bucketHandle             *storage.BucketHandle
	bucketName               string
	ctx                      context.Context
	drainTopicName           string
	environment              string
	instanceName             string
	microserviceName         string
	projectID                string
	PubSubID                 string
	pubsubPublisherClient    *pubsub.PublisherClient
	retryTimeOutSeconds      int64
	step                     logging.Step
	stepStack                logging.Steps
	version                  string
}

// checkCounters accumulates one cron pass figures, logged on finish
type checkCounters struct {
	failedPrefixNumber   int64
	runningPrefixNumber  int64
	signaledPrefixNumber int64
	skippedPrefixNumber  int64
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

	global.assumeCompleteAfterHours = instanceDeployment.Settings.Instance.CAI.AssumeCompleteAfterHours
	global.bucketName = instanceDeployment.Core.SolutionSettings.Hosting.GCS.Buckets.AssetExports.Name
	global.drainTopicName = instanceDeployment.Core.SolutionSettings.Hosting.Pubsub.TopicNames.DrainExportRequests
	global.projectID = instanceDeployment.Core.SolutionSettings.Hosting.ProjectID
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

	global.pubsubPublisherClient, err = pubsub.NewPublisherClient(global.ctx)
	if err != nil {
		log.Println(logging.Entry{
			MicroserviceName: global.microserviceName,
			InstanceName:     global.instanceName,
			Environment:      global.environment,
			Severity:         "CRITICAL",
			Message:          "init_failed",
			Description:      fmt.Sprintf("pubsub.NewPublisherClient(global.ctx) %v", err),
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

	if !strings.HasPrefix(string(PubSubMessage.Data), "cron schedule") {
		log.Println(logging.Entry{
			MicroserviceName:   global.microserviceName,
			InstanceName:       global.instanceName,
			Environment:        global.environment,
			Severity:           "CRITICAL",
			Message:            "noretry",
			Description:        fmt.Sprintf("unexpected trigger payload %v", string(PubSubMessage.Data)),
			TriggeringPubsubID: global.PubSubID,
		})
		return nil
	}

	var exportPrefixes []string
	query := &storage.Query{Delimiter: "/"}
	objectsIterator := global.bucketHandle.Objects(global.ctx, query)
	for {
		objectAttrs, err := objectsIterator.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			log.Println(logging.Entry{
				MicroserviceName:   global.microserviceName,
				InstanceName:       global.instanceName,
				Environment:        global.environment,
				Severity:           "CRITICAL",
				Message:            "redo_on_transient",
				Description:        fmt.Sprintf("objectsIterator.Next %v", err),
				TriggeringPubsubID: global.PubSubID,
			})
			return err
		}
		if objectAttrs.Prefix == "" {
			// An object at the bucket root, not a prefix
			continue
		}
		if !cai.IsExportPrefix(objectAttrs.Prefix) {
			continue
		}
		exportPrefixes = append(exportPrefixes, strings.TrimSuffix(objectAttrs.Prefix, "/"))
	}

	var topicList []string
	if len(exportPrefixes) > 0 {
		err = gps.GetTopicList(global.ctx, global.pubsubPublisherClient, global.projectID, &topicList)
		if err != nil {
			log.Println(logging.Entry{
				MicroserviceName:   global.microserviceName,
				InstanceName:       global.instanceName,
				Environment:        global.environment,
				Severity:           "CRITICAL",
				Message:            "redo_on_transient",
				Description:        fmt.Sprintf("gps.GetTopicList %v", err),
				TriggeringPubsubID: global.PubSubID,
			})
			return err
		}
	}

	var counters checkCounters
	for _, exportPrefix := range exportPrefixes {
		checkPrefix(global, exportPrefix, &topicList, &counters)
	}

	now = time.Now()
	latency := now.Sub(metadata.Timestamp)
	latencyE2E := now.Sub(global.stepStack[0].StepTimestamp)
	log.Println(logging.Entry{
		MicroserviceName:     global.microserviceName,
		InstanceName:         global.instanceName,
		Environment:          global.environment,
		Severity:             "NOTICE",
		Message:              "finish export checks",
		Description:          fmt.Sprintf("%d export prefixes %s", len(exportPrefixes), counters),
		Now:                  &now,
		TriggeringPubsubID:   global.PubSubID,
		OriginEventTimestamp: &metadata.Timestamp,
		LatencySeconds:       latency.Seconds(),
		LatencyE2ESeconds:    latencyE2E.Seconds(),
		StepStack:            global.stepStack,
	})
	return nil
}

func (counters checkCounters) String() string {
	return fmt.Sprintf("signaled %d running %d skipped %d failed %d",
		counters.signaledPrefixNumber,
		counters.runningPrefixNumber,
		counters.skippedPrefixNumber,
		counters.failedPrefixNumber)
}

// checkPrefix reads one marker manifest, polls its export operations and signals
// the drainer when the export is complete. Failures are isolated to the prefix,
// the next cron tick checks again
func checkPrefix(global *Global, exportPrefix string, topicListPointer *[]string, counters *checkCounters) {
	markerObjectPath := cai.MarkerObjectPath(exportPrefix)
	markerReader, err := global.bucketHandle.Object(markerObjectPath).NewReader(global.ctx)
	if err != nil {
		if err == storage.ErrObjectNotExist {
			// Already drained, or the marker is not written yet
			counters.skippedPrefixNumber++
			return
		}
		log.Println(logging.Entry{
			MicroserviceName:   global.microserviceName,
			InstanceName:       global.instanceName,
			Environment:        global.environment,
			Severity:           "WARNING",
			Message:            fmt.Sprintf("marker not readable %s", markerObjectPath),
			Description:        fmt.Sprintf("%v", err),
			TriggeringPubsubID: global.PubSubID,
		})
		counters.failedPrefixNumber++
		return
	}
	markerContent, err := ioutil.ReadAll(markerReader)
	markerReader.Close()
	if err != nil {
		log.Println(logging.Entry{
			MicroserviceName:   global.microserviceName,
			InstanceName:       global.instanceName,
			Environment:        global.environment,
			Severity:           "WARNING",
			Message:            fmt.Sprintf("marker not readable %s", markerObjectPath),
			Description:        fmt.Sprintf("ioutil.ReadAll %v", err),
			TriggeringPubsubID: global.PubSubID,
		})
		counters.failedPrefixNumber++
		return
	}
	exportManifest, err := cai.ParseExportManifest(markerContent)
	if err != nil {
		log.Println(logging.Entry{
			MicroserviceName:   global.microserviceName,
			InstanceName:       global.instanceName,
			Environment:        global.environment,
			Severity:           "WARNING",
			Message:            fmt.Sprintf("marker not parseable %s", markerObjectPath),
			Description:        fmt.Sprintf("%v", err),
			TriggeringPubsubID: global.PubSubID,
		})
		counters.failedPrefixNumber++
		return
	}

	requestTime := exportManifest.RequestTime
	if requestTime.IsZero() {
		// Legacy markers carry no request time, the marker object creation stands in
		markerAttrs, err := global.bucketHandle.Object(markerObjectPath).Attrs(global.ctx)
		if err == nil {
			requestTime = markerAttrs.Created
		}
	}
	assumeComplete := false
	if !requestTime.IsZero() &&
		time.Since(requestTime) > time.Duration(global.assumeCompleteAfterHours)*time.Hour {
		assumeComplete = true
	}

	for _, operationName := range exportManifest.OperationNames {
		operation := global.assetClient.ExportAssetsOperation(operationName)
		_, err := operation.Poll(global.ctx)
		if err != nil {
			if assumeComplete {
				log.Println(logging.Entry{
					MicroserviceName:   global.microserviceName,
					InstanceName:       global.instanceName,
					Environment:        global.environment,
					Severity:           "WARNING",
					Message:            fmt.Sprintf("assume complete %s", exportPrefix),
					Description:        fmt.Sprintf("operation.Poll %s %v", operationName, err),
					TriggeringPubsubID: global.PubSubID,
				})
				continue
			}
			log.Println(logging.Entry{
				MicroserviceName:   global.microserviceName,
				InstanceName:       global.instanceName,
				Environment:        global.environment,
				Severity:           "WARNING",
				Message:            fmt.Sprintf("operation not pollable %s", exportPrefix),
				Description:        fmt.Sprintf("operation.Poll %s %v", operationName, err),
				TriggeringPubsubID: global.PubSubID,
			})
			counters.failedPrefixNumber++
			return
		}
		if !operation.Done() {
			if assumeComplete {
				log.Println(logging.Entry{
					MicroserviceName:   global.microserviceName,
					InstanceName:       global.instanceName,
					Environment:        global.environment,
					Severity:           "WARNING",
					Message:            fmt.Sprintf("assume complete %s", exportPrefix),
					Description:        fmt.Sprintf("operation still reported running %s", operationName),
					TriggeringPubsubID: global.PubSubID,
				})
				continue
			}
			log.Println(logging.Entry{
				MicroserviceName:   global.microserviceName,
				InstanceName:       global.instanceName,
				Environment:        global.environment,
				Severity:           "NOTICE",
				Message:            fmt.Sprintf("export still running %s", exportPrefix),
				Description:        operationName,
				TriggeringPubsubID: global.PubSubID,
			})
			counters.runningPrefixNumber++
			return
		}
	}

	var drainRequest cai.DrainRequest
	drainRequest.ExportPrefix = exportPrefix
	drainRequest.Origin = "checkexport"
	drainRequest.StepStack = global.stepStack
	drainRequestJSON, err := json.Marshal(drainRequest)
	if err != nil {
		log.Println(logging.Entry{
			MicroserviceName:   global.microserviceName,
			InstanceName:       global.instanceName,
			Environment:        global.environment,
			Severity:           "WARNING",
			Message:            fmt.Sprintf("drain request not marshalable %s", exportPrefix),
			Description:        fmt.Sprintf("json.Marshal(drainRequest) %v", err),
			TriggeringPubsubID: global.PubSubID,
		})
		counters.failedPrefixNumber++
		return
	}

	if err = gps.CreateTopic(global.ctx, global.pubsubPublisherClient, topicListPointer, global.drainTopicName, global.projectID); err != nil {
		log.Println(logging.Entry{
			MicroserviceName:   global.microserviceName,
			InstanceName:       global.instanceName,
			Environment:        global.environment,
			Severity:           "WARNING",
			Message:            fmt.Sprintf("no topic to signal drain %s", exportPrefix),
			Description:        fmt.Sprintf("gps.CreateTopic %s %v", global.drainTopicName, err),
			TriggeringPubsubID: global.PubSubID,
		})
		counters.failedPrefixNumber++
		return
	}

	var pubSubMessage pubsubpb.PubsubMessage
	pubSubMessage.Data = drainRequestJSON

	var pubsubMessages []*pubsubpb.PubsubMessage
	pubsubMessages = append(pubsubMessages, &pubSubMessage)

	var publishRequest pubsubpb.PublishRequest
	publishRequest.Topic = fmt.Sprintf("projects/%s/topics/%s", global.projectID, global.drainTopicName)
	publishRequest.Messages = pubsubMessages

	pubsubResponse, err := global.pubsubPublisherClient.Publish(global.ctx, &publishRequest)
	if err != nil {
		log.Println(logging.Entry{
			MicroserviceName:   global.microserviceName,
			InstanceName:       global.instanceName,
			Environment:        global.environment,
			Severity:           "WARNING",
			Message:            fmt.Sprintf("drain request not publihed %s", exportPrefix),
			Description:        fmt.Sprintf("pubsubPublisherClient.Publish %v", err),
			TriggeringPubsubID: global.PubSubID,
		})
		counters.failedPrefixNumber++
		return
	}
	log.Println(logging.Entry{
		MicroserviceName:   global.microserviceName,
		InstanceName:       global.instanceName,
		Environment:        global.environment,
		Severity:           "NOTICE",
		Message:            fmt.Sprintf("drain signaled %s", exportPrefix),
		Description:        fmt.Sprintf("MessageIds %v", pubsubResponse.MessageIds),
		TriggeringPubsubID: global.PubSubID,
	})
	counters.signaledPrefixNumber++
}

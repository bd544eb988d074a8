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
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/BrunoReboul/dam/utilities/cai"
	"github.com/BrunoReboul/dam/utilities/erm"
	"github.com/BrunoReboul/dam/utilities/ffo"
	"github.com/BrunoReboul/dam/utilities/gps"
	"github.com/BrunoReboul/dam/utilities/lck"
	"github.com/BrunoReboul/dam/utilities/logging"
	"github.com/BrunoReboul/dam/utilities/solution"
	"github.com/google/uuid"

	"cloud.google.com/go/functions/metadata"
	"cloud.google.com/go/pubsub"
	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

// Global structure for global variables to optimize the cloud function performances
type Global struct {
	assetsTopicName            string
	assetTypesResolver         cai.AssetTypesResolver
	bucketHandle               *storage.BucketHandle
	bucketName                 string
	ctx                        context.Context
	drainTimeBudgetSeconds     int64
	environment                string
	instanceName               string
	logEventEveryXPubSubMsg    uint64
	microserviceName           string
	PubSubID                   string
	pubsubClient               *pubsub.Client
	retryTimeOutSeconds        int64
	scannerBufferSizeKiloBytes int
	step                       logging.Step
	stepStack                  logging.Steps
	triggerTopicName           string
	version                    string
}

// drainCounters accumulates one listing pass figures, logged on finish
type drainCounters struct {
	candidateObjectNumber int64
	deletedObjectNumber   int64
	emptyObjectNumber     int64
	failedObjectNumber    int64
	keptObjectNumber      int64
	malformedLineNumber   int64
	pubSubErrNumber       uint64
	pubSubMsgNumber       uint64
	skippedObjectNumber   int64
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

	global.assetsTopicName = instanceDeployment.Core.SolutionSettings.Hosting.Pubsub.TopicNames.GCPAssets
	global.bucketName = instanceDeployment.Core.SolutionSettings.Hosting.GCS.Buckets.AssetExports.Name
	global.drainTimeBudgetSeconds = instanceDeployment.Settings.Instance.DrainTimeBudgetSeconds
	global.logEventEveryXPubSubMsg = instanceDeployment.Settings.Service.LogEventEveryXPubSubMsg
	global.retryTimeOutSeconds = instanceDeployment.Settings.Service.GCF.RetryTimeOutSeconds
	global.scannerBufferSizeKiloBytes = instanceDeployment.Settings.Instance.ScannerBufferSizeKiloBytes
	global.triggerTopicName = instanceDeployment.Core.SolutionSettings.Hosting.Pubsub.TopicNames.DrainExportRequests
	global.version = instanceDeployment.Core.DAMVersion
	projectID := instanceDeployment.Core.SolutionSettings.Hosting.ProjectID
	configuredAssetTypes := instanceDeployment.Settings.Instance.CAI.AssetTypes

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

	global.pubsubClient, err = pubsub.NewClient(ctx, projectID)
	if err != nil {
		log.Println(logging.Entry{
			MicroserviceName: global.microserviceName,
			InstanceName:     global.instanceName,
			Environment:      global.environment,
			Severity:         "CRITICAL",
			Message:          "init_failed",
			Description:      fmt.Sprintf("pubsub.NewClient %v", err),
			InitID:           initID,
		})
		return err
	}

	global.assetTypesResolver = func(ctx context.Context, exportPrefix string) []string {
		return resolveAssetTypes(ctx, global.bucketHandle, exportPrefix, configuredAssetTypes)
	}
	return nil
}

// resolveAssetTypes reads the asset type filter from the lock marker manifest. Markers
// written by older tooling carry no filter, then the configured instance filter applies
func resolveAssetTypes(ctx context.Context, bucketHandle *storage.BucketHandle, exportPrefix string, configuredAssetTypes []string) []string {
	markerReader, err := bucketHandle.Object(cai.MarkerObjectPath(exportPrefix)).NewReader(ctx)
	if err != nil {
		return configuredAssetTypes
	}
	defer markerReader.Close()
	markerContent, err := ioutil.ReadAll(markerReader)
	if err != nil {
		return configuredAssetTypes
	}
	exportManifest, err := cai.ParseExportManifest(markerContent)
	if err != nil {
		return configuredAssetTypes
	}
	if len(exportManifest.AssetTypes) == 0 {
		return configuredAssetTypes
	}
	return exportManifest.AssetTypes
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

	var drainRequest cai.DrainRequest
	err = json.Unmarshal(PubSubMessage.Data, &drainRequest)
	if err != nil {
		log.Println(logging.Entry{
			MicroserviceName:   global.microserviceName,
			InstanceName:       global.instanceName,
			Environment:        global.environment,
			Severity:           "CRITICAL",
			Message:            "noretry",
			Description:        fmt.Sprintf("json.Unmarshal(PubSubMessage.Data, &drainRequest) %v %v", PubSubMessage.Data, err),
			TriggeringPubsubID: global.PubSubID,
		})
		return nil
	}
	if !cai.IsExportPrefix(drainRequest.ExportPrefix) {
		log.Println(logging.Entry{
			MicroserviceName:   global.microserviceName,
			InstanceName:       global.instanceName,
			Environment:        global.environment,
			Severity:           "CRITICAL",
			Message:            "noretry",
			Description:        fmt.Sprintf("not an export prefix %q", drainRequest.ExportPrefix),
			TriggeringPubsubID: global.PubSubID,
		})
		return nil
	}
	if drainRequest.Origin == "" {
		drainRequest.Origin = "checkexport"
	}
	if drainRequest.StepStack != nil {
		global.stepStack = append(drainRequest.StepStack, global.step)
	} else {
		global.stepStack = append(global.stepStack, global.step)
	}
	exportPrefix := strings.TrimSuffix(drainRequest.ExportPrefix, "/")
	markerObjectPath := cai.MarkerObjectPath(exportPrefix)

	isLocked, err := lck.IsLocked(global.ctx, global.bucketHandle, markerObjectPath)
	if err != nil {
		log.Println(logging.Entry{
			MicroserviceName:   global.microserviceName,
			InstanceName:       global.instanceName,
			Environment:        global.environment,
			Severity:           "CRITICAL",
			Message:            "redo_on_transient",
			Description:        fmt.Sprintf("lck.IsLocked %s %v", markerObjectPath, err),
			TriggeringPubsubID: global.PubSubID,
		})
		return err
	}
	if !isLocked {
		log.Println(logging.Entry{
			MicroserviceName:   global.microserviceName,
			InstanceName:       global.instanceName,
			Environment:        global.environment,
			Severity:           "NOTICE",
			Message:            "cancel",
			Description:        fmt.Sprintf("no lock marker, nothing to drain %s origin %s", exportPrefix, drainRequest.Origin),
			TriggeringPubsubID: global.PubSubID,
		})
		return nil
	}

	assetTypeAttribute := strings.Join(global.assetTypesResolver(global.ctx, exportPrefix), ",")
	budgetEnd := time.Now().Add(time.Duration(global.drainTimeBudgetSeconds) * time.Second)

	var counters drainCounters
	listingComplete, err := drainPrefix(global, exportPrefix, markerObjectPath, assetTypeAttribute, budgetEnd, &counters)
	if err != nil {
		log.Println(logging.Entry{
			MicroserviceName:   global.microserviceName,
			InstanceName:       global.instanceName,
			Environment:        global.environment,
			Severity:           "CRITICAL",
			Message:            "redo_on_transient",
			Description:        fmt.Sprintf("drainPrefix %s %v", exportPrefix, err),
			TriggeringPubsubID: global.PubSubID,
		})
		return err
	}

	if !listingComplete {
		// Budget exhausted on an object boundary, hand over to a continuation
		continuationID, err := scheduleContinuation(global, exportPrefix)
		if err != nil {
			log.Println(logging.Entry{
				MicroserviceName:   global.microserviceName,
				InstanceName:       global.instanceName,
				Environment:        global.environment,
				Severity:           "CRITICAL",
				Message:            "redo_on_transient",
				Description:        fmt.Sprintf("scheduleContinuation %s %v", exportPrefix, err),
				TriggeringPubsubID: global.PubSubID,
			})
			return err
		}
		now := time.Now()
		latency := now.Sub(metadata.Timestamp)
		latencyE2E := now.Sub(global.stepStack[0].StepTimestamp)
		log.Println(logging.Entry{
			MicroserviceName:     global.microserviceName,
			InstanceName:         global.instanceName,
			Environment:          global.environment,
			Severity:             "NOTICE",
			Message:              fmt.Sprintf("finish drain partial %s", exportPrefix),
			Description:          fmt.Sprintf("continuation %s %s origin %s", continuationID, counters, drainRequest.Origin),
			Now:                  &now,
			TriggeringPubsubID:   global.PubSubID,
			OriginEventTimestamp: &metadata.Timestamp,
			LatencySeconds:       latency.Seconds(),
			LatencyE2ESeconds:    latencyE2E.Seconds(),
			StepStack:            global.stepStack,
			AssetInventoryOrigin: drainRequest.Origin,
		})
		return nil
	}

	if counters.failedObjectNumber > 0 {
		// Transient failures left objects behind, redo lists again from scratch
		log.Println(logging.Entry{
			MicroserviceName:   global.microserviceName,
			InstanceName:       global.instanceName,
			Environment:        global.environment,
			Severity:           "CRITICAL",
			Message:            "redo_on_transient",
			Description:        fmt.Sprintf("%d objects failed on transient errors %s %s", counters.failedObjectNumber, exportPrefix, counters),
			TriggeringPubsubID: global.PubSubID,
		})
		return fmt.Errorf("%d objects failed on transient errors %s", counters.failedObjectNumber, exportPrefix)
	}

	if counters.keptObjectNumber > 0 {
		// Retrying cannot fix malformed content, keep the objects and the marker for
		// investigation, the daily check signals this prefix again
		now := time.Now()
		latency := now.Sub(metadata.Timestamp)
		latencyE2E := now.Sub(global.stepStack[0].StepTimestamp)
		log.Println(logging.Entry{
			MicroserviceName:     global.microserviceName,
			InstanceName:         global.instanceName,
			Environment:          global.environment,
			Severity:             "NOTICE",
			Message:              fmt.Sprintf("finish drain objects kept %s", exportPrefix),
			Description:          fmt.Sprintf("%s origin %s", counters, drainRequest.Origin),
			Now:                  &now,
			TriggeringPubsubID:   global.PubSubID,
			OriginEventTimestamp: &metadata.Timestamp,
			LatencySeconds:       latency.Seconds(),
			LatencyE2ESeconds:    latencyE2E.Seconds(),
			StepStack:            global.stepStack,
			AssetInventoryOrigin: drainRequest.Origin,
		})
		return nil
	}

	err = lck.Release(global.ctx, global.bucketHandle, markerObjectPath)
	if err != nil {
		log.Println(logging.Entry{
			MicroserviceName:   global.microserviceName,
			InstanceName:       global.instanceName,
			Environment:        global.environment,
			Severity:           "CRITICAL",
			Message:            "redo_on_transient",
			Description:        fmt.Sprintf("lck.Release %s %v", markerObjectPath, err),
			TriggeringPubsubID: global.PubSubID,
		})
		return err
	}

	now = time.Now()
	latency := now.Sub(metadata.Timestamp)
	latencyE2E := now.Sub(global.stepStack[0].StepTimestamp)
	log.Println(logging.Entry{
		MicroserviceName:     global.microserviceName,
		InstanceName:         global.instanceName,
		Environment:          global.environment,
		Severity:             "NOTICE",
		Message:              fmt.Sprintf("finish drain complete %s", exportPrefix),
		Description:          fmt.Sprintf("%s origin %s", counters, drainRequest.Origin),
		Now:                  &now,
		TriggeringPubsubID:   global.PubSubID,
		OriginEventTimestamp: &metadata.Timestamp,
		LatencySeconds:       latency.Seconds(),
		LatencyE2ESeconds:    latencyE2E.Seconds(),
		StepStack:            global.stepStack,
		AssetInventoryOrigin: drainRequest.Origin,
	})
	return nil
}

// drainPrefix lists the objects under an export prefix and drains each candidate.
// Returns listingComplete false when the time budget ran out before the listing
// was exhausted. A listing iteration error aborts the pass, nothing else does
func drainPrefix(global *Global, exportPrefix string, markerObjectPath string, assetTypeAttribute string, budgetEnd time.Time, counters *drainCounters) (listingComplete bool, err error) {
	query := &storage.Query{Prefix: exportPrefix + "/"}
	objectsIterator := global.bucketHandle.Objects(global.ctx, query)
	for {
		objectAttrs, err := objectsIterator.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return false, fmt.Errorf("objectsIterator.Next %v", err)
		}
		if objectAttrs.Name == markerObjectPath {
			counters.skippedObjectNumber++
			continue
		}
		if strings.HasSuffix(objectAttrs.Name, "/") {
			// Directory placeholder
			counters.skippedObjectNumber++
			continue
		}
		if !strings.HasPrefix(objectAttrs.Name, exportPrefix+"/") {
			counters.skippedObjectNumber++
			continue
		}
		if time.Now().After(budgetEnd) {
			log.Println(logging.Entry{
				MicroserviceName:   global.microserviceName,
				InstanceName:       global.instanceName,
				Environment:        global.environment,
				Severity:           "NOTICE",
				Message:            fmt.Sprintf("time budget exhausted %s", exportPrefix),
				Description:        fmt.Sprintf("stopped before %s", objectAttrs.Name),
				TriggeringPubsubID: global.PubSubID,
			})
			return false, nil
		}
		counters.candidateObjectNumber++
		if objectAttrs.Size == 0 {
			// Zero records, trivially fully published, delete without reading
			counters.emptyObjectNumber++
			err = deleteObject(global, objectAttrs.Name)
			if err != nil {
				counters.failedObjectNumber++
				continue
			}
			counters.deletedObjectNumber++
			continue
		}
		contentType := contentTypeOf(objectAttrs.Name)
		malformedLineNumber, drained, err := drainObject(global, objectAttrs.Name, assetTypeAttribute, contentType, counters)
		counters.malformedLineNumber += malformedLineNumber
		if err != nil {
			log.Println(logging.Entry{
				MicroserviceName:   global.microserviceName,
				InstanceName:       global.instanceName,
				Environment:        global.environment,
				Severity:           "WARNING",
				Message:            fmt.Sprintf("object left for next drain %s", objectAttrs.Name),
				Description:        fmt.Sprintf("%v", err),
				TriggeringPubsubID: global.PubSubID,
			})
			counters.failedObjectNumber++
			continue
		}
		if !drained {
			log.Println(logging.Entry{
				MicroserviceName:   global.microserviceName,
				InstanceName:       global.instanceName,
				Environment:        global.environment,
				Severity:           "WARNING",
				Message:            fmt.Sprintf("object kept, malformed lines %s", objectAttrs.Name),
				Description:        fmt.Sprintf("%d malformed lines", malformedLineNumber),
				TriggeringPubsubID: global.PubSubID,
			})
			counters.keptObjectNumber++
			continue
		}
		counters.deletedObjectNumber++
	}
	return true, nil
}

// contentTypeOf extracts the content type path segment. The layout contract is
// <exportPrefix>/<contentType>/<fileName>, a path outside it yields UNKNOWN
func contentTypeOf(objectPath string) string {
	_, contentType, _, err := cai.ParseObjectPath(objectPath)
	if err != nil {
		return "UNKNOWN"
	}
	return contentType
}

// drainObject publishes every record of one dump object then deletes it.
// err != nil reports a transient failure, the object stays for the next drain.
// drained false with a nil err reports malformed lines, the object stays for upstream fixing
func drainObject(global *Global, objectPath string, assetTypeAttribute string, contentType string, counters *drainCounters) (malformedLineNumber int64, drained bool, err error) {
	var storageObjectReader *storage.Reader
	var done bool
	var i time.Duration
	for i = 0; i < 10; i++ {
		storageObjectReader, err = global.bucketHandle.Object(objectPath).NewReader(global.ctx)
		if err != nil {
			if err == storage.ErrObjectNotExist {
				// A concurrent drain already deleted it
				return 0, true, nil
			}
			log.Println(logging.Entry{
				MicroserviceName:   global.microserviceName,
				InstanceName:       global.instanceName,
				Environment:        global.environment,
				Severity:           "WARNING",
				Message:            fmt.Sprintf("storageObject.NewReader %s", objectPath),
				Description:        fmt.Sprintf("iteration %d err %v", i, err),
				TriggeringPubsubID: global.PubSubID,
			})
			if erm.IsNotTransientElseWait(err, i) {
				break
			}
		} else {
			done = true
			break
		}
	}
	if !done {
		return 0, false, fmt.Errorf("storageObject.NewReader %s %v", objectPath, err)
	}
	defer storageObjectReader.Close()

	var waitgroup sync.WaitGroup
	var objectPubSubErrNumber uint64
	var objectPubSubMsgNumber uint64
	topic := global.pubsubClient.Topic(global.assetsTopicName)
	err = cai.BrowseDumpLines(storageObjectReader, global.scannerBufferSizeKiloBytes, func(lineNumber int64, line string) error {
		record, err := cai.ExtractRecord(line)
		if err != nil {
			log.Println(logging.Entry{
				MicroserviceName:   global.microserviceName,
				InstanceName:       global.instanceName,
				Environment:        global.environment,
				Severity:           "WARNING",
				Message:            fmt.Sprintf("malformed line %d %s", lineNumber, objectPath),
				Description:        fmt.Sprintf("%v", err),
				TriggeringPubsubID: global.PubSubID,
			})
			malformedLineNumber++
			return err
		}
		publishResult := topic.Publish(global.ctx, &pubsub.Message{
			Data: record,
			Attributes: map[string]string{
				"assetType":   assetTypeAttribute,
				"contentType": contentType,
				"version":     global.version,
			},
		})
		waitgroup.Add(1)
		go gps.GetPublishCallResult(global.ctx, publishResult, &waitgroup, fmt.Sprintf("%s line %d", objectPath, lineNumber), &objectPubSubErrNumber, &objectPubSubMsgNumber, global.logEventEveryXPubSubMsg)
		return nil
	})
	// Every publish outcome is awaited before any delete decision
	waitgroup.Wait()
	counters.pubSubErrNumber += objectPubSubErrNumber
	counters.pubSubMsgNumber += objectPubSubMsgNumber
	if err != nil {
		return malformedLineNumber, false, fmt.Errorf("cai.BrowseDumpLines %s %v", objectPath, err)
	}
	if objectPubSubErrNumber > 0 {
		return malformedLineNumber, false, fmt.Errorf("%d publish failures %s", objectPubSubErrNumber, objectPath)
	}
	if malformedLineNumber > 0 {
		return malformedLineNumber, false, nil
	}
	err = deleteObject(global, objectPath)
	if err != nil {
		return malformedLineNumber, false, err
	}
	return malformedLineNumber, true, nil
}

// deleteObject deletes one object with bounded retries, absent is success
func deleteObject(global *Global, objectPath string) (err error) {
	var done bool
	var i time.Duration
	for i = 0; i < 10; i++ {
		err = global.bucketHandle.Object(objectPath).Delete(global.ctx)
		if err != nil {
			if err == storage.ErrObjectNotExist {
				// A concurrent drain already deleted it
				done = true
				break
			}
			log.Println(logging.Entry{
				MicroserviceName:   global.microserviceName,
				InstanceName:       global.instanceName,
				Environment:        global.environment,
				Severity:           "WARNING",
				Message:            fmt.Sprintf("storageObject.Delete %s", objectPath),
				Description:        fmt.Sprintf("iteration %d err %v", i, err),
				TriggeringPubsubID: global.PubSubID,
			})
			if erm.IsNotTransientElseWait(err, i) {
				break
			}
		} else {
			done = true
			break
		}
	}
	if !done {
		return fmt.Errorf("storageObject.Delete %s %v", objectPath, err)
	}
	return nil
}

// scheduleContinuation republishes a drain request for the same prefix on the
// trigger topic. Duplicates are harmless, a drain finding nothing left is a no op
func scheduleContinuation(global *Global, exportPrefix string) (messageID string, err error) {
	var drainRequest cai.DrainRequest
	drainRequest.ExportPrefix = exportPrefix
	drainRequest.Origin = "continuation"
	drainRequest.StepStack = global.stepStack
	drainRequestJSON, err := json.Marshal(drainRequest)
	if err != nil {
		return "", fmt.Errorf("json.Marshal(drainRequest) %v", err)
	}
	topic := global.pubsubClient.Topic(global.triggerTopicName)
	messageID, err = topic.Publish(global.ctx, &pubsub.Message{Data: drainRequestJSON}).Get(global.ctx)
	if err != nil {
		return "", fmt.Errorf("topic.Publish continuation %s %v", exportPrefix, err)
	}
	return messageID, nil
}

func (counters drainCounters) String() string {
	return fmt.Sprintf("candidates %d deleted %d empty %d kept %d failed %d skipped %d malformed lines %d published %d publish errors %d",
		counters.candidateObjectNumber,
		counters.deletedObjectNumber,
		counters.emptyObjectNumber,
		counters.keptObjectNumber,
		counters.failedObjectNumber,
		counters.skippedObjectNumber,
		counters.malformedLineNumber,
		counters.pubSubMsgNumber,
		counters.pubSubErrNumber)
}

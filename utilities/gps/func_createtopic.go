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

package gps

import (
	"context"
	"fmt"
	"log"
	"strings"

	pubsub "cloud.google.com/go/pubsub/apiv1"
	"github.com/BrunoReboul/dam/utilities/str"
	pubsubpb "google.golang.org/genproto/googleapis/pubsub/v1"
)

// CreateTopic makes sure a topic exists before it is used, creating it when not found
func CreateTopic(ctx context.Context, pubSubPublisherClient *pubsub.PublisherClient, topicListPointer *[]string, topicName string, projectID string) error {
	if str.Find(*topicListPointer, topicName) {
		return nil
	}
	// The cached list may be stale, refresh it before concluding the topic is missing
	err := GetTopicList(ctx, pubSubPublisherClient, projectID, topicListPointer)
	if err != nil {
		return fmt.Errorf("getTopicList: %v", err)
	}
	if str.Find(*topicListPointer, topicName) {
		return nil
	}
	topic, err := pubSubPublisherClient.CreateTopic(ctx, &pubsubpb.Topic{
		Name:   fmt.Sprintf("projects/%s/topics/%s", projectID, topicName),
		Labels: map[string]string{"name": strings.ToLower(topicName)},
	})
	if err != nil {
		if !strings.Contains(err.Error(), "AlreadyExists") {
			return fmt.Errorf("pubSubPublisherClient.CreateTopic: %v", err)
		}
		log.Println("topic created meanwhile", topicName)
	} else {
		log.Println("created topic", topic.Name)
	}
	err = GetTopicList(ctx, pubSubPublisherClient, projectID, topicListPointer)
	if err != nil {
		return fmt.Errorf("getTopicList: %v", err)
	}
	return nil
}

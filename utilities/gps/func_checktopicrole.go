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

	"cloud.google.com/go/iam"
	pubsub "cloud.google.com/go/pubsub/apiv1"
	pubsubpb "google.golang.org/genproto/googleapis/pubsub/v1"
)

// CheckTopicRole verifies a member holds a given role on a topic
func CheckTopicRole(ctx context.Context, pubSubPublisherClient *pubsub.PublisherClient, topicName string, member string, role iam.RoleName) (err error) {
	topic, err := pubSubPublisherClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicName})
	if err != nil {
		return fmt.Errorf("pubSubPublisherClient.GetTopic %s %v", topicName, err)
	}
	policy, err := pubSubPublisherClient.TopicIAM(topic).Policy(ctx)
	if err != nil {
		return fmt.Errorf("topicIAM policy %s %v", topicName, err)
	}
	if !policy.HasRole(member, role) {
		return fmt.Errorf("missing role %s for member %s on topic %s", role, member, topicName)
	}
	return nil
}

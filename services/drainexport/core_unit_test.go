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
	"strings"
	"testing"
)

func TestUnitContentTypeOf(t *testing.T) {
	var testCases = []struct {
		name            string
		objectPath      string
		wantContentType string
	}{
		{
			name:            "resourceDump",
			objectPath:      "asset_export_v2_20230809-020542/RESOURCE/a.json",
			wantContentType: "RESOURCE",
		},
		{
			name:            "iamPolicyDump",
			objectPath:      "asset_export_v2_20230809-020542/IAM_POLICY/shard_001.json",
			wantContentType: "IAM_POLICY",
		},
		{
			name:            "nestedFileName",
			objectPath:      "asset_export_v2_20230809-020542/ORG_POLICY/sub/shard.json",
			wantContentType: "ORG_POLICY",
		},
		{
			name:            "noContentTypeSegment",
			objectPath:      "asset_export_v2_20230809-020542/orphan.json",
			wantContentType: "UNKNOWN",
		},
	}
	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := contentTypeOf(tc.objectPath)
			if got != tc.wantContentType {
				t.Errorf("Want %s got %s", tc.wantContentType, got)
			}
		})
	}
}

func TestUnitDrainCountersString(t *testing.T) {
	var counters drainCounters
	counters.candidateObjectNumber = 5
	counters.deletedObjectNumber = 3
	counters.emptyObjectNumber = 1
	counters.keptObjectNumber = 1
	counters.failedObjectNumber = 1
	counters.skippedObjectNumber = 2
	counters.malformedLineNumber = 4
	counters.pubSubMsgNumber = 120
	counters.pubSubErrNumber = 0
	got := counters.String()
	for _, want := range []string{
		"candidates 5",
		"deleted 3",
		"empty 1",
		"kept 1",
		"failed 1",
		"skipped 2",
		"malformed lines 4",
		"published 120",
		"publish errors 0",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Want %q in %q", want, got)
		}
	}
}

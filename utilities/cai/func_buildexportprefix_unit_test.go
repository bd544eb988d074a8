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

package cai

import (
	"testing"
	"time"
)

func TestUnitBuildExportPrefix(t *testing.T) {
	var testCases = []struct {
		name       string
		t          time.Time
		wantPrefix string
	}{
		{
			name:       "utcTime",
			t:          time.Date(2023, time.August, 9, 10, 11, 12, 0, time.UTC),
			wantPrefix: "asset_export_v2_20230809-101112",
		},
		{
			name:       "nonUTCTimeIsNormalized",
			t:          time.Date(2023, time.August, 9, 12, 11, 12, 0, time.FixedZone("CEST", 2*60*60)),
			wantPrefix: "asset_export_v2_20230809-101112",
		},
	}
	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := BuildExportPrefix(tc.t)
			if got != tc.wantPrefix {
				t.Errorf("Want %s got %s", tc.wantPrefix, got)
			}
			if !IsExportPrefix(got) {
				t.Errorf("IsExportPrefix should recognize %s", got)
			}
		})
	}
}

func TestUnitIsExportPrefix(t *testing.T) {
	var testCases = []struct {
		name   string
		prefix string
		want   bool
	}{
		{
			name:   "bare",
			prefix: "asset_export_v2_20230809-101112",
			want:   true,
		},
		{
			name:   "trailingSlash",
			prefix: "asset_export_v2_20230809-101112/",
			want:   true,
		},
		{
			name:   "otherLead",
			prefix: "cai_exports/20230809-101112",
			want:   false,
		},
		{
			name:   "truncatedTimestamp",
			prefix: "asset_export_v2_20230809",
			want:   false,
		},
		{
			name:   "empty",
			prefix: "",
			want:   false,
		},
	}
	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := IsExportPrefix(tc.prefix)
			if got != tc.want {
				t.Errorf("Want %v got %v", tc.want, got)
			}
		})
	}
}

// Copyright 2025 Plaintab Authors
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sniff

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		name   string
		sample string
		want   rune
	}{
		{
			name:   "comma separated",
			sample: "name,age,city\nAlice,30,Oslo\nBob,25,Lima\n",
			want:   ',',
		},
		{
			name:   "semicolon separated",
			sample: "name;age;city\nAlice;30;Oslo\nBob;25;Lima\n",
			want:   ';',
		},
		{
			name:   "tab separated",
			sample: "name\tage\tcity\nAlice\t30\tOslo\n",
			want:   '\t',
		},
		{
			name:   "pipe separated",
			sample: "name|age|city\nAlice|30|Oslo\nBob|25|Lima\n",
			want:   '|',
		},
		{
			name:   "semicolon wins over commas inside values",
			sample: "name;notes\nAlice;likes apples, pears\nBob;reads, writes, runs\n",
			want:   ';',
		},
		{
			name:   "empty sample falls back to comma",
			sample: "",
			want:   ',',
		},
		{
			name:   "no delimiter falls back to comma",
			sample: "justoneword\nanotherword\n",
			want:   ',',
		},
		{
			name:   "blank lines ignored",
			sample: "a;b;c\n\n\nd;e;f\n",
			want:   ';',
		},
		{
			name:   "single line is enough",
			sample: "name\tage\tcity\n",
			want:   '\t',
		},
		{
			name: "truncated final line dropped",
			// The sample cuts off mid-record; the partial line must not
			// skew detection.
			sample: "a|b|c\nd|e|f\ng|h",
			want:   '|',
		},
		{
			name:   "comma wins tie by candidate order",
			sample: "a,b;c\nd,e;f\n",
			want:   ',',
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect([]byte(tt.sample)); got != tt.want {
				t.Errorf("Detect(%q) = %q, want %q", tt.sample, got, tt.want)
			}
		})
	}
}

func TestDetectNeverPanicsOnGarbage(t *testing.T) {
	samples := []string{
		"\x00\x01\x02",
		"\r\n\r\n\r\n",
		",,,,,,,\n,,,,,,\n",
		"a",
	}
	for _, s := range samples {
		_ = Detect([]byte(s))
	}
}

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

// Package sniff guesses the field delimiter used by delimited text data.
// Detection inspects a bounded sample prefix of the input and applies a
// frequency/consistency heuristic over a fixed candidate set. Detection
// never fails: an inconclusive sample resolves to the comma fallback.
package sniff

import (
	"bytes"
	"strings"
)

// DefaultSampleSize is the number of bytes of input to inspect when the
// caller has no better bound.
const DefaultSampleSize = 1024

// Fallback is the delimiter returned when no candidate yields a confident,
// consistent split.
const Fallback = ','

// candidates are tried in order; earlier candidates win ties.
var candidates = []rune{',', ';', '\t', '|', ':'}

// Detect returns the most plausible field delimiter for the given sample
// prefix. A candidate scores by how many sample lines it splits into the
// same field count, provided that count is at least two. The highest-scoring
// candidate wins; an inconclusive sample returns the comma fallback.
func Detect(sample []byte) rune {
	lines := sampleLines(sample)
	if len(lines) == 0 {
		return Fallback
	}

	best := Fallback
	bestScore := 0
	for _, cand := range candidates {
		if score := consistency(lines, cand); score > bestScore {
			best = cand
			bestScore = score
		}
	}
	if bestScore == 0 {
		return Fallback
	}
	return best
}

// consistency scores a candidate delimiter against the sample lines. The
// score is the number of lines sharing the most common field count, or zero
// when the candidate never splits a line into two or more fields.
func consistency(lines []string, delim rune) int {
	counts := make(map[int]int)
	for _, line := range lines {
		n := strings.Count(line, string(delim)) + 1
		if n < 2 {
			continue
		}
		counts[n]++
	}

	score := 0
	for _, freq := range counts {
		if freq > score {
			score = freq
		}
	}
	return score
}

// sampleLines splits the sample into non-blank lines. When the sample does
// not end at a line boundary the final line is likely truncated mid-record,
// so it is dropped unless it is the only line available.
func sampleLines(sample []byte) []string {
	trimmed := bytes.TrimRight(sample, "\r\n")
	truncated := len(trimmed) == len(sample)

	raw := strings.Split(string(trimmed), "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}

	if truncated && len(lines) > 1 {
		lines = lines[:len(lines)-1]
	}
	return lines
}

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

package report

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// wrapCell greedily wraps text to the given display width, breaking on
// whitespace where possible. Words wider than the column are hard-broken at
// display-width boundaries, so no segment ever exceeds the width. Runs of
// whitespace collapse to a single space. Empty text wraps to one empty
// segment, never zero.
func wrapCell(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var segments []string
	var line strings.Builder
	lineWidth := 0

	flush := func() {
		if lineWidth > 0 {
			segments = append(segments, line.String())
			line.Reset()
			lineWidth = 0
		}
	}

	for _, word := range words {
		w := runewidth.StringWidth(word)

		if w > width {
			// Oversized word: finish the current line, then emit
			// width-sized chunks. The last chunk starts a new line so
			// following words can join it.
			flush()
			chunks := chunkWord(word, width)
			for _, chunk := range chunks[:len(chunks)-1] {
				segments = append(segments, chunk)
			}
			last := chunks[len(chunks)-1]
			line.WriteString(last)
			lineWidth = runewidth.StringWidth(last)
			continue
		}

		switch {
		case lineWidth == 0:
			line.WriteString(word)
			lineWidth = w
		case lineWidth+1+w <= width:
			line.WriteByte(' ')
			line.WriteString(word)
			lineWidth += 1 + w
		default:
			flush()
			line.WriteString(word)
			lineWidth = w
		}
	}
	flush()

	if len(segments) == 0 {
		return []string{""}
	}
	return segments
}

// chunkWord splits a single word into pieces no wider than width display
// cells. Zero-width runes attach to the current piece.
func chunkWord(word string, width int) []string {
	var chunks []string
	var b strings.Builder
	w := 0

	for _, r := range word {
		rw := runewidth.RuneWidth(r)
		if w+rw > width && b.Len() > 0 {
			chunks = append(chunks, b.String())
			b.Reset()
			w = 0
		}
		b.WriteRune(r)
		w += rw
	}
	if b.Len() > 0 {
		chunks = append(chunks, b.String())
	}
	if len(chunks) == 0 {
		chunks = []string{""}
	}
	return chunks
}

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
	"math"
	"sort"

	"github.com/mattn/go-runewidth"
)

// EstimateWidths computes the display width of every column for one batch.
// Per column, with H the header's display width and V the widths of the
// batch's non-empty cells: width = H when V is empty, otherwise
// max(H, min(percentile(V), maxWidth)), then raised to at least minWidth.
//
// The percentile (rather than the maximum) keeps one pathological long value
// from inflating every row; the ceiling bounds line length for long
// free-text columns, whose excess wraps instead. Headers are never clipped:
// a header wider than maxWidth sets the column width directly.
//
// Widths are recomputed independently for every batch and the function is
// deterministic, so recomputing over the same batch yields the same result.
func EstimateWidths(b *Batch, minWidth, maxWidth int, percentile float64) []int {
	widths := make([]int, len(b.Columns))
	lengths := make([]int, 0, len(b.Records))

	for i, col := range b.Columns {
		header := runewidth.StringWidth(col)

		lengths = lengths[:0]
		for _, rec := range b.Records {
			if i < len(rec) && rec[i] != "" {
				lengths = append(lengths, runewidth.StringWidth(rec[i]))
			}
		}

		width := header
		if len(lengths) > 0 {
			width = max(header, min(percentileRank(lengths, percentile), maxWidth))
		}
		widths[i] = max(width, minWidth)
	}
	return widths
}

// percentileRank returns the nearest-rank percentile of values: the element
// at index ceil(p*n)-1 of the sorted slice. values is sorted in place.
func percentileRank(values []int, p float64) int {
	sort.Ints(values)
	rank := int(math.Ceil(p * float64(len(values))))
	if rank < 1 {
		rank = 1
	}
	if rank > len(values) {
		rank = len(values)
	}
	return values[rank-1]
}

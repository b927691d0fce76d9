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

package output

// LineWriter defines the interface for emitting formatted report lines.
// This abstraction allows different destinations (stdout, file) to be
// swapped without changing the render loop.
type LineWriter interface {
	// WriteLine writes a single line followed by the configured terminator.
	// Each line is written immediately to avoid memory accumulation.
	WriteLine(line string) error

	// Count returns the number of lines written so far.
	Count() int

	// Close closes the underlying writer and releases any resources.
	// This should be called when all writing is complete.
	Close() error
}

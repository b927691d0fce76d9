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

// Package output provides utilities for writing the rendered report one
// line at a time. Lines are flushed as they are produced so arbitrarily
// large reports stream in constant memory.
//
// The primary type is Writer, which provides thread-safe line writing to an
// io.Writer or file with a configurable line terminator.
//
// Example usage:
//
//	w, err := output.NewFileWriter("report.txt", "\n")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer w.Close()
//
//	for f.Next() {
//	    if err := w.WriteLine(f.Line()); err != nil {
//	        return err
//	    }
//	}
//
//	fmt.Printf("Wrote %d lines\n", w.Count())
package output

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

// Package metadata types define the structures used for recording
// information about render operations. These records capture the input
// parameters and result statistics of a render for auditing and
// troubleshooting.
package metadata

import (
	"time"
)

// RenderMetadata represents the complete metadata record for a single
// render operation: what was rendered, with which settings, and the
// results.
type RenderMetadata struct {
	ToolVersion string        `json:"tool_version"`
	RenderID    string        `json:"render_id"`
	Parameters  RenderParams  `json:"parameters"`
	Results     RenderResults `json:"results"`
}

// RenderParams captures the input parameters used for a render operation.
// These are preserved to make a render reproducible.
type RenderParams struct {
	InputFile       string `json:"input_file"`
	OutputFile      string `json:"output_file,omitempty"`
	OutputDelimiter string `json:"output_delimiter"`
	Encoding        string `json:"encoding"`
	BatchSize       int    `json:"batch_size"`
	MinWidth        int    `json:"min_width"`
	MaxWidth        int    `json:"max_width"`
}

// RenderResults contains statistics about a completed render: how many
// records were formatted, how many input rows were skipped as malformed,
// how much output the render produced, and its duration.
type RenderResults struct {
	Records          int       `json:"records"`
	MalformedSkipped int       `json:"malformed_skipped"`
	LinesWritten     int       `json:"lines_written"`
	BytesRead        int64     `json:"bytes_read"`
	StartedAt        time.Time `json:"started_at"`
	CompletedAt      time.Time `json:"completed_at"`
	DurationSeconds  float64   `json:"duration_seconds"`
}

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

package integration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/plaintabhq/plaintab/test/testutil"
)

func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func TestCLI_HelpCommand(t *testing.T) {
	result := testutil.RunCLI(t, []string{"--help"}, "")
	testutil.AssertCLISuccess(t, result)

	if !strings.Contains(result.Stdout, "render") {
		t.Errorf("help output should mention the render command, got:\n%s", result.Stdout)
	}
}

func TestCLI_VersionFlag(t *testing.T) {
	result := testutil.RunCLI(t, []string{"--version"}, "")
	testutil.AssertCLISuccess(t, result)

	if !strings.Contains(result.Stdout, "plaintab") {
		t.Errorf("version output should mention plaintab, got:\n%s", result.Stdout)
	}
}

func TestCLI_RenderFile(t *testing.T) {
	input := testutil.NewTableBuilder("name", "age").
		Row("Alice", "30").
		Row("Bob", "25").
		Build()
	path := testutil.CreateTempFile(t, t.TempDir(), "input-*.csv", input)

	result := testutil.RunCLI(t, []string{"render", path, "--delimiter", "pipe"}, "")
	testutil.AssertCLISuccess(t, result)

	lines := splitLines(result.Stdout)
	if len(lines) != 3 {
		t.Fatalf("expected 3 output lines (header + 2 records), got %d:\n%s", len(lines), result.Stdout)
	}
	testutil.AssertAlignedReport(t, lines, "|")

	if !strings.HasPrefix(lines[0], "name") {
		t.Errorf("first line should be the header, got %q", lines[0])
	}
}

func TestCLI_RenderStdin(t *testing.T) {
	input := testutil.NewTableBuilder("city", "country").
		WithDelimiter(";").
		Row("Oslo", "Norway").
		Row("Lima", "Peru").
		Build()

	result := testutil.RunCLI(t, []string{"render", "-", "--delimiter", "pipe"}, input)
	testutil.AssertCLISuccess(t, result)

	lines := splitLines(result.Stdout)
	if len(lines) != 3 {
		t.Fatalf("expected 3 output lines, got %d:\n%s", len(lines), result.Stdout)
	}
	testutil.AssertAlignedReport(t, lines, "|")

	// The semicolon input delimiter must be detected, not echoed.
	for i, line := range lines {
		if strings.Contains(line, ";") {
			t.Errorf("line %d still contains the input delimiter: %q", i+1, line)
		}
	}
}

func TestCLI_OutputAndMetadataFiles(t *testing.T) {
	dir := t.TempDir()
	input := testutil.NewTableBuilder("id", "label").
		Row("1", "first").
		Row("2", "second").
		Build()
	inputPath := testutil.CreateTempFile(t, dir, "input-*.csv", input)
	outputPath := filepath.Join(dir, "report.txt")
	metadataPath := filepath.Join(dir, "render.json")

	result := testutil.RunCLI(t, []string{
		"render", inputPath,
		"--delimiter", "pipe",
		"--output", outputPath,
		"--metadata", metadataPath,
	}, "")
	testutil.AssertCLISuccess(t, result)

	testutil.AssertFileExists(t, outputPath)
	lines := testutil.ReadLines(t, outputPath)
	testutil.AssertAlignedReport(t, lines, "|")

	testutil.AssertMetadataFile(t, metadataPath, 2)

	if result.Stdout != "" {
		t.Errorf("report should go to the output file, stdout got:\n%s", result.Stdout)
	}
}

func TestCLI_MetadataToStderr(t *testing.T) {
	input := testutil.NewTableBuilder("id", "label").
		Row("1", "first").
		Build()
	inputPath := testutil.CreateTempFile(t, t.TempDir(), "input-*.csv", input)

	result := testutil.RunCLI(t, []string{"render", inputPath, "--metadata", "-"}, "")
	testutil.AssertCLISuccess(t, result)

	if !strings.Contains(result.Stderr, `"render_id"`) {
		t.Errorf("stderr should carry the metadata record, got:\n%s", result.Stderr)
	}
	if strings.Contains(result.Stdout, `"render_id"`) {
		t.Errorf("metadata record must not mix into the report on stdout:\n%s", result.Stdout)
	}
}

func TestCLI_MalformedRowsSkipped(t *testing.T) {
	input := testutil.NewTableBuilder("a", "b").
		Row("1", "2").
		RawLine("1,2,3,4").
		Row("5", "6").
		Build()
	path := testutil.CreateTempFile(t, t.TempDir(), "input-*.csv", input)

	result := testutil.RunCLI(t, []string{"render", path, "--delimiter", "pipe"}, "")
	testutil.AssertCLISuccess(t, result)

	lines := splitLines(result.Stdout)
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 valid records, got %d lines:\n%s", len(lines), result.Stdout)
	}
	if !strings.Contains(result.Stderr, "skipped") {
		t.Errorf("stderr should report skipped records, got:\n%s", result.Stderr)
	}
}

func TestCLI_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("render:\n  delimiter: pipe\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	input := testutil.NewTableBuilder("x", "y").Row("1", "2").Build()
	inputPath := testutil.CreateTempFile(t, dir, "input-*.csv", input)

	result := testutil.RunCLI(t, []string{"render", inputPath, "--config", configPath}, "")
	testutil.AssertCLISuccess(t, result)

	if !strings.Contains(result.Stdout, "|") {
		t.Errorf("config file delimiter should apply, got:\n%s", result.Stdout)
	}
}

func TestCLI_ExitCodes(t *testing.T) {
	dir := t.TempDir()
	headerOnly := testutil.CreateTempFile(t, dir, "empty-*.csv", "a,b\n")
	valid := testutil.CreateTempFile(t, dir, "valid-*.csv", "a,b\n1,2\n")
	badBytes := testutil.CreateTempFile(t, dir, "bad-*.csv", "a,b\n1,\xff\n")

	tests := []struct {
		name string
		args []string
		want int
	}{
		{
			name: "missing input file",
			args: []string{"render", filepath.Join(dir, "absent.csv")},
			want: 1,
		},
		{
			name: "invalid delimiter",
			args: []string{"render", valid, "--delimiter", "nope"},
			want: 2,
		},
		{
			name: "unknown encoding",
			args: []string{"render", valid, "--encoding", "klingon"},
			want: 2,
		},
		{
			name: "undecodable input",
			args: []string{"render", badBytes},
			want: 3,
		},
		{
			name: "header only input",
			args: []string{"render", headerOnly},
			want: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := testutil.RunCLI(t, tt.args, "")
			testutil.AssertExitCode(t, result, tt.want)
		})
	}
}

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

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/plaintabhq/plaintab/internal/charset"
	"github.com/plaintabhq/plaintab/internal/config"
	pterrors "github.com/plaintabhq/plaintab/internal/errors"
	"github.com/plaintabhq/plaintab/internal/logging"
	"github.com/plaintabhq/plaintab/internal/metadata"
	"github.com/plaintabhq/plaintab/internal/output"
	"github.com/plaintabhq/plaintab/internal/report"
)

// cancelCheckInterval is how many output lines are written between
// context cancellation checks.
const cancelCheckInterval = 256

// renderFlags holds the command-line flags for the render command.
// Flags that were not set on the command line fall back to the config
// file values.
type renderFlags struct {
	delimiter    string
	encoding     string
	outputFile   string
	batchSize    int
	minWidth     int
	maxWidth     int
	metadataFile string
	configFile   string
	logLevel     string
}

// newRenderCommand creates the render command.
func newRenderCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render <input>",
		Short: "Render a delimited file as an aligned plain-text report",
		Long: `Render reads delimited tabular data (CSV, TSV, or similar), detects the
field delimiter, and writes an aligned plain-text report.

The input argument is a file path, or "-" to read from stdin.

Each record occupies one or more output lines: the first line joins the
cells with the output delimiter, and cells too wide for their column
continue on delimiter-free continuation lines beneath it. Column widths
are computed per batch of records from the data itself.

Malformed input rows are skipped with a warning on stderr; the render
continues with the remaining rows.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runRender(ctx, cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.delimiter, "delimiter", "d", "", "Output delimiter: tab, space, comma, semicolon, pipe, or a single character (default: tab)")
	cmd.Flags().StringVarP(&flags.encoding, "encoding", "e", "", "Input character encoding, an IANA name such as utf-8 or latin-1 (default: utf-8)")
	cmd.Flags().StringVarP(&flags.outputFile, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().IntVar(&flags.batchSize, "batch-size", 0, "Records per batch; column widths are recomputed per batch")
	cmd.Flags().IntVar(&flags.minWidth, "min-width", 0, "Minimum column width")
	cmd.Flags().IntVar(&flags.maxWidth, "max-width", 0, "Maximum column width (headers are never clipped)")
	cmd.Flags().StringVar(&flags.metadataFile, "metadata", "", "Write a JSON metadata record for this render to the given path, or \"-\" for stderr")
	cmd.Flags().StringVar(&flags.configFile, "config", "", "Config file path (default: .plaintab.yaml, then ~/.plaintab/config.yaml)")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	return cmd
}

// runRender executes the render command: it resolves configuration,
// opens the input and output streams, drives the formatting engine, and
// reports a summary on stderr.
func runRender(ctx context.Context, cmd *cobra.Command, inputArg string, flags renderFlags) error {
	cfg, err := config.LoadConfig(flags.configFile)
	if err != nil {
		return err
	}
	applyFlagOverrides(cfg, cmd, flags)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	outputDelim, err := parseDelimiter(cfg.Render.Delimiter)
	if err != nil {
		return err
	}

	input, inputName, err := openInput(inputArg, cfg.Limits.MaxInputBytes)
	if err != nil {
		return err
	}
	defer input.Close()

	counting := charset.NewCountingReader(input)
	decoded, err := charset.NewReader(counting, cfg.Render.Encoding)
	if err != nil {
		return err
	}

	formatter, err := report.New(decoded, report.Options{
		OutputDelimiter: outputDelim,
		BatchSize:       cfg.Render.BatchSize,
		MinWidth:        cfg.Render.MinWidth,
		MaxWidth:        cfg.Render.MaxWidth,
		WidthPercentile: cfg.Render.WidthPercentile,
		SampleSize:      cfg.Render.SampleSize,
		Logger:          slog.Default(),
	})
	if err != nil {
		return err
	}

	var writer output.LineWriter
	if flags.outputFile == "" {
		writer = output.NewWriter(os.Stdout, "")
	} else {
		fileWriter, fErr := output.NewFileWriter(flags.outputFile, "")
		if fErr != nil {
			return fmt.Errorf("failed to create output file: %w", fErr)
		}
		writer = fileWriter
	}
	defer writer.Close()

	tracker := metadata.New()

	for formatter.Next() {
		if err := writer.WriteLine(formatter.Line()); err != nil {
			return fmt.Errorf("failed to write output line: %w", err)
		}
		tracker.IncrementLine()

		if writer.Count()%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("render interrupted: %w", err)
			}
		}
	}
	if err := formatter.Err(); err != nil {
		return err
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close output: %w", err)
	}

	tracker.AddRecords(formatter.Records())
	tracker.AddMalformed(formatter.Malformed())
	tracker.SetBytesRead(counting.BytesRead())

	printSummary(inputName, formatter, counting.BytesRead(), writer.Count())

	if flags.metadataFile != "" {
		meta := tracker.Generate(version, metadata.RenderParams{
			InputFile:       inputName,
			OutputFile:      flags.outputFile,
			OutputDelimiter: string(outputDelim),
			Encoding:        cfg.Render.Encoding,
			BatchSize:       cfg.Render.BatchSize,
			MinWidth:        cfg.Render.MinWidth,
			MaxWidth:        cfg.Render.MaxWidth,
		})
		if flags.metadataFile == "-" {
			// Stdout may carry the report, so the record goes to stderr.
			if err := metadata.WriteTo(meta, os.Stderr); err != nil {
				return fmt.Errorf("failed to write metadata: %w", err)
			}
		} else if err := metadata.Save(meta, flags.metadataFile); err != nil {
			return err
		}
	}

	return nil
}

// applyFlagOverrides copies explicitly set flags over the loaded config.
// Only flags the user actually passed take effect, so config file values
// survive unless overridden.
func applyFlagOverrides(cfg *config.Config, cmd *cobra.Command, flags renderFlags) {
	set := cmd.Flags().Changed
	if set("delimiter") {
		cfg.Render.Delimiter = flags.delimiter
	}
	if set("encoding") {
		cfg.Render.Encoding = flags.encoding
	}
	if set("batch-size") {
		cfg.Render.BatchSize = flags.batchSize
	}
	if set("min-width") {
		cfg.Render.MinWidth = flags.minWidth
	}
	if set("max-width") {
		cfg.Render.MaxWidth = flags.maxWidth
	}
	if set("log-level") {
		cfg.Logging.Level = flags.logLevel
	}
}

// parseDelimiter resolves a delimiter name or literal into a rune. Named
// aliases cover the common cases; anything else must be a single
// character.
func parseDelimiter(name string) (rune, error) {
	switch name {
	case "", "tab", "\\t", "\t":
		return '\t', nil
	case "space":
		return ' ', nil
	case "comma":
		return ',', nil
	case "semicolon":
		return ';', nil
	case "pipe":
		return '|', nil
	}

	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		if r == '\n' || r == '\r' {
			return 0, fmt.Errorf("delimiter cannot be a line break: %w", pterrors.ErrInvalidConfig)
		}
		return r, nil
	}

	return 0, fmt.Errorf("unsupported delimiter %q (expected tab, space, comma, semicolon, pipe, or a single character): %w", name, pterrors.ErrInvalidConfig)
}

// openInput opens the input source. The argument "-" selects stdin.
// Regular files are rejected up front when they exceed the size limit;
// non-seekable sources are capped while streaming instead.
func openInput(arg string, maxBytes int64) (io.ReadCloser, string, error) {
	if arg == "-" {
		if maxBytes > 0 {
			return io.NopCloser(charset.MaxBytesReader(os.Stdin, maxBytes)), "stdin", nil
		}
		return io.NopCloser(os.Stdin), "stdin", nil
	}

	file, err := os.Open(arg)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open input file: %w", err)
	}

	if maxBytes > 0 {
		info, statErr := file.Stat()
		if statErr == nil && info.Mode().IsRegular() && info.Size() > maxBytes {
			_ = file.Close()
			return nil, "", fmt.Errorf("input file is %s, limit is %s: %w",
				humanize.Bytes(uint64(info.Size())), humanize.Bytes(uint64(maxBytes)), pterrors.ErrInputTooLarge)
		}
	}

	return file, arg, nil
}

// printSummary writes a one-line result summary to stderr. Colors are
// suppressed automatically when stderr is not a terminal.
func printSummary(inputName string, f *report.Formatter, bytesRead int64, lines int) {
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	fmt.Fprintf(os.Stderr, "%s rendered %s records (%s) from %s as %d lines\n",
		green("✓"), humanize.Comma(int64(f.Records())), humanize.Bytes(uint64(bytesRead)), inputName, lines)

	if f.Malformed() > 0 {
		fmt.Fprintf(os.Stderr, "%s skipped %d malformed record(s); see warnings above\n",
			yellow("!"), f.Malformed())
	}
}

// mapErrorToExitCode maps internal errors to exit codes.
func mapErrorToExitCode(err error) int {
	if err == nil {
		return 0
	}

	if errors.Is(err, pterrors.ErrInvalidConfig) ||
		errors.Is(err, pterrors.ErrUnknownEncoding) {
		return 2 // Configuration errors
	}

	if errors.Is(err, pterrors.ErrDecodeFailure) {
		return 3 // Input cannot be decoded
	}

	if errors.Is(err, pterrors.ErrEmptyInput) ||
		errors.Is(err, pterrors.ErrInputTooLarge) {
		return 4 // Input rejected
	}

	return 1 // General error
}

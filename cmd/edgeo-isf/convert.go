// Copyright 2025 Edgeo SCADA
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/edgeo-scada/isf/isf"
)

var convertFile string

var convertCmd = &cobra.Command{
	Use:   "convert FILE...",
	Short: "Convert ISF captures to text or CSV",
	Long: `Convert decodes one or more ISF captures.

Without -f the decoded series is printed to stdout as whitespace-separated
columns (time value, or time min max for envelope captures). With -f the
output is written as CSV with the header fields as metadata rows.

When converting multiple files, -f names an output directory and each
capture is written as <name>.csv inside it.

Examples:
  # Two-column text to stdout
  edgeo-isf convert capture.isf

  # Single CSV file
  edgeo-isf convert capture.isf -f capture.csv

  # Batch conversion
  edgeo-isf convert run1.isf run2.isf -f results/`,

	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertFile, "file", "f", "", "Output CSV file, or directory for multiple inputs (default: stdout)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	batch := len(args) > 1

	if batch && convertFile == "" {
		return fmt.Errorf("converting multiple files requires -f with an output directory")
	}
	if batch {
		if err := os.MkdirAll(convertFile, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	metrics := isf.NewMetrics()

	for _, path := range args {
		if err := convertOne(path, batch, metrics); err != nil {
			metrics.RecordFailure()
			return fmt.Errorf("%s: %w", path, err)
		}
	}

	if batch {
		snap := metrics.Snapshot()
		fmt.Fprintf(os.Stderr, "Converted %d files, %d samples, %d bytes in %s\n",
			snap.FilesDecoded, snap.SamplesDecoded, snap.BytesRead, snap.Elapsed.Round(0))
	}

	return nil
}

func convertOne(path string, batch bool, metrics *isf.Metrics) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	wf, err := isf.Decode(data, decodeOptions()...)
	if err != nil {
		return err
	}
	metrics.RecordDecode(wf, int64(len(data)))

	if verbose {
		reportWaveform(os.Stderr, wf)
	}

	if convertFile == "" {
		return writeColumns(os.Stdout, wf)
	}

	outPath := convertFile
	if batch {
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		outPath = filepath.Join(convertFile, base+".csv")
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer out.Close()

	return writeCSV(out, wf)
}

// writeColumns prints the series as whitespace-separated columns, one
// time step per line.
func writeColumns(out *os.File, wf *isf.Waveform) error {
	for i := 0; i < wf.Points(); i++ {
		var err error
		if wf.Envelope() {
			_, err = fmt.Fprintf(out, "%e %e %e\n", wf.Time[i], wf.Min[i], wf.Max[i])
		} else {
			_, err = fmt.Fprintf(out, "%e %e\n", wf.Time[i], wf.Values[i])
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// writeCSV writes the waveform id, the remaining header fields as a
// metadata row, then the series as CSV rows.
func writeCSV(out *os.File, wf *isf.Waveform) error {
	hdr := wf.Header

	fmt.Fprintln(out, hdr.WaveformID)

	meta := []struct {
		key string
		val string
	}{
		{"bytenum", strconv.Itoa(hdr.ByteNum)},
		{"bitnum", strconv.Itoa(hdr.BitNum)},
		{"encoding", hdr.Encoding},
		{"binformat", hdr.BinFormat},
		{"byteorder", hdr.ByteOrder.String()},
		{"pointformat", hdr.PointFmt.String()},
		{"xunit", hdr.XUnit},
		{"yunit", hdr.YUnit},
		{"xzero", formatFloat(hdr.XZero)},
		{"xincr", formatFloat(hdr.XIncr)},
		{"ptoff", formatFloat(hdr.PointOff)},
		{"ymult", formatFloat(hdr.YMult)},
		{"yzero", formatFloat(hdr.YZero)},
		{"yoff", formatFloat(hdr.YOff)},
		{"npts", strconv.Itoa(hdr.NumPoints)},
	}
	for _, kv := range meta {
		fmt.Fprintf(out, "%s: %s,", kv.key, kv.val)
	}
	fmt.Fprintln(out)

	writer := csv.NewWriter(out)
	defer writer.Flush()

	if wf.Envelope() {
		if err := writer.Write([]string{"Time", "MinValue", "MaxValue"}); err != nil {
			return err
		}
		for i := 0; i < wf.Points(); i++ {
			row := []string{
				formatFloat(wf.Time[i]),
				formatFloat(wf.Min[i]),
				formatFloat(wf.Max[i]),
			}
			if err := writer.Write(row); err != nil {
				return err
			}
		}
	} else {
		if err := writer.Write([]string{"Time", "Value"}); err != nil {
			return err
		}
		for i := 0; i < wf.Points(); i++ {
			row := []string{
				formatFloat(wf.Time[i]),
				formatFloat(wf.Values[i]),
			}
			if err := writer.Write(row); err != nil {
				return err
			}
		}
	}

	writer.Flush()

	return writer.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/edgeo-scada/isf/isf"
)

var infoFormat string

var infoCmd = &cobra.Command{
	Use:   "info FILE",
	Short: "Display capture header and statistics",
	Long: `Info decodes an ISF capture and reports its header fields, the raw
block fingerprint and summary statistics over the decoded values.

Examples:
  # Inspect a capture
  edgeo-isf info capture.isf

  # Get info in JSON format
  edgeo-isf info capture.isf -o json`,

	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	infoCmd.Flags().StringVarP(&infoFormat, "output", "o", "table", "Output format (table, json)")
}

type infoResult struct {
	File        string  `json:"file"`
	WaveformID  string  `json:"waveform_id"`
	Convention  string  `json:"convention"`
	PointFormat string  `json:"point_format"`
	Points      int     `json:"points"`
	ByteOrder   string  `json:"byte_order"`
	XUnit       string  `json:"x_unit"`
	YUnit       string  `json:"y_unit"`
	XIncr       float64 `json:"x_increment"`
	Fingerprint string  `json:"fingerprint"`

	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	Mean       float64 `json:"mean"`
	StdDev     float64 `json:"std_dev"`
	PeakToPeak float64 `json:"peak_to_peak"`
}

func runInfo(cmd *cobra.Command, args []string) error {
	path := args[0]

	wf, err := isf.DecodeFile(path, decodeOptions()...)
	if err != nil {
		return err
	}

	summary := isf.Summarize(wf)
	result := infoResult{
		File:        path,
		WaveformID:  wf.Header.WaveformID,
		Convention:  wf.Header.Convention.String(),
		PointFormat: wf.Header.PointFmt.String(),
		Points:      wf.Points(),
		ByteOrder:   wf.Header.ByteOrder.String(),
		XUnit:       wf.Header.XUnit,
		YUnit:       wf.Header.YUnit,
		XIncr:       wf.Header.XIncr,
		Fingerprint: fmt.Sprintf("%016x", wf.Fingerprint),

		Min:        summary.Min,
		Max:        summary.Max,
		Mean:       summary.Mean,
		StdDev:     summary.StdDev,
		PeakToPeak: summary.PeakToPeak,
	}

	switch infoFormat {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	default:
		return outputInfoTable(result)
	}
}

func outputInfoTable(r infoResult) error {
	f := NewFormatter()

	f.Printf("\n=== %s ===\n\n", r.File)
	f.PrintKeyValue(map[string]interface{}{
		"Waveform ID":     r.WaveformID,
		"Tag Convention":  r.Convention,
		"Point Format":    r.PointFormat,
		"Time Points":     r.Points,
		"Byte Order":      r.ByteOrder,
		"Horizontal Unit": fmt.Sprintf("[%s]", r.XUnit),
		"Vertical Unit":   fmt.Sprintf("[%s]", r.YUnit),
		"Time Increment":  fmt.Sprintf("%e", r.XIncr),
		"Fingerprint":     r.Fingerprint,
	}, []string{
		"Waveform ID",
		"Tag Convention",
		"Point Format",
		"Time Points",
		"Byte Order",
		"Horizontal Unit",
		"Vertical Unit",
		"Time Increment",
		"Fingerprint",
	})

	f.Println()
	f.PrintKeyValue(map[string]interface{}{
		"Min":          fmt.Sprintf("%g %s", r.Min, r.YUnit),
		"Max":          fmt.Sprintf("%g %s", r.Max, r.YUnit),
		"Mean":         fmt.Sprintf("%g %s", r.Mean, r.YUnit),
		"Std Dev":      fmt.Sprintf("%g %s", r.StdDev, r.YUnit),
		"Peak to Peak": fmt.Sprintf("%g %s", r.PeakToPeak, r.YUnit),
	}, []string{
		"Min",
		"Max",
		"Mean",
		"Std Dev",
		"Peak to Peak",
	})
	f.Println()

	return nil
}

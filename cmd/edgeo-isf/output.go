package main

import (
	"fmt"
	"io"
	"os"

	"github.com/edgeo-scada/isf/isf"
)

// Formatter handles output formatting
type Formatter struct {
	writer io.Writer
}

// NewFormatter creates a new formatter
func NewFormatter() *Formatter {
	return &Formatter{
		writer: os.Stdout,
	}
}

// SetWriter sets the output writer
func (f *Formatter) SetWriter(w io.Writer) {
	f.writer = w
}

// Printf formats and prints output
func (f *Formatter) Printf(format string, args ...interface{}) {
	fmt.Fprintf(f.writer, format, args...)
}

// Println prints a line
func (f *Formatter) Println(args ...interface{}) {
	fmt.Fprintln(f.writer, args...)
}

// PrintKeyValue prints key-value pairs
func (f *Formatter) PrintKeyValue(pairs map[string]interface{}, order []string) {
	maxKeyLen := 0
	for _, key := range order {
		if len(key) > maxKeyLen {
			maxKeyLen = len(key)
		}
	}

	for _, key := range order {
		if val, ok := pairs[key]; ok {
			fmt.Fprintf(f.writer, "%-*s: %v\n", maxKeyLen, key, val)
		}
	}
}

// reportWaveform prints the post-decode summary block shown in verbose
// mode after a successful conversion.
func reportWaveform(w io.Writer, wf *isf.Waveform) {
	fmt.Fprintln(w, "decode succeeded ----------------------------------")
	fmt.Fprintf(w, "|     Information : %s\n", wf.Header.WaveformID)
	fmt.Fprintf(w, "|     Pointformat : %s\n", wf.Header.PointFmt)
	fmt.Fprintf(w, "|     Time Points : %d\n", wf.Points())
	fmt.Fprintf(w, "| Horizontal Unit : [%s]\n", wf.Header.XUnit)
	fmt.Fprintf(w, "| Vertical   Unit : [%s]\n", wf.Header.YUnit)
	fmt.Fprintln(w, " ---------------------------------------------------")
}

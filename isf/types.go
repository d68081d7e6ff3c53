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

// Package isf decodes Tektronix ISF waveform capture files produced by
// digital oscilloscopes (TDS/DPO series).
package isf

import (
	"encoding/binary"
	"fmt"
)

// DefaultPreambleWindow is the number of leading bytes scanned for the
// binary-block marker. The ASCII preamble always fits inside it.
const DefaultPreambleWindow = 511

// SampleSize is the width in bytes of a single raw sample. ISF captures
// from supported scopes store signed 16-bit integers; other widths exist
// in the wild but are not handled here.
const SampleSize = 2

// Convention identifies which of the two preamble tag-naming schemes a
// file uses. Newer firmware abbreviates the tag names and shortens the
// curve marker to ":CURV #".
type Convention uint8

const (
	ConventionCurrent Convention = iota
	ConventionLegacy
)

func (c Convention) String() string {
	switch c {
	case ConventionCurrent:
		return "current"
	case ConventionLegacy:
		return "legacy"
	}
	return fmt.Sprintf("convention(%d)", c)
}

// Marker returns the curve marker literal for the convention.
func (c Convention) Marker() string {
	if c == ConventionLegacy {
		return markerLegacy
	}
	return markerCurrent
}

// ByteOrder represents the sample byte order declared in the preamble.
type ByteOrder uint8

const (
	ByteOrderMSB ByteOrder = iota // big-endian
	ByteOrderLSB                  // little-endian
)

func (o ByteOrder) String() string {
	switch o {
	case ByteOrderMSB:
		return "MSB"
	case ByteOrderLSB:
		return "LSB"
	}
	return fmt.Sprintf("byte-order(%d)", o)
}

// Engine returns the binary.ByteOrder used to unpack raw samples.
func (o ByteOrder) Engine() binary.ByteOrder {
	if o == ByteOrderLSB {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// ParseByteOrder maps the preamble byte-order field to a ByteOrder.
func ParseByteOrder(s string) (ByteOrder, error) {
	switch s {
	case "MSB":
		return ByteOrderMSB, nil
	case "LSB":
		return ByteOrderLSB, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedByteOrder, s)
}

// PointFormat indicates whether samples represent a single trace or a
// min/max envelope pair per time step.
type PointFormat uint8

const (
	PointFormatY PointFormat = iota
	PointFormatEnvelope
)

func (f PointFormat) String() string {
	switch f {
	case PointFormatY:
		return "Y"
	case PointFormatEnvelope:
		return "ENV"
	}
	return fmt.Sprintf("point-format(%d)", f)
}

// ParsePointFormat maps the preamble point-format field to a PointFormat.
func ParsePointFormat(s string) (PointFormat, error) {
	switch s {
	case "Y":
		return PointFormatY, nil
	case "ENV":
		return PointFormatEnvelope, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedPointFormat, s)
}

// Header holds the typed preamble fields of an ISF file.
type Header struct {
	Convention Convention

	ByteNum    int    // BYT_NR / BYT_N: bytes per sample
	BitNum     int    // BIT_NR / BIT_N: bits per sample
	Encoding   string // ENCDG / ENC: "BIN" or "BINARY"
	BinFormat  string // BN_FMT / BN_F: "RI" for signed integers
	ByteOrder  ByteOrder
	WaveformID string // WFID / WFI: free-form description from the scope
	PointFmt   PointFormat
	XUnit      string // horizontal unit, typically "s"
	YUnit      string // vertical unit, typically "V"
	XZero      float64
	XIncr      float64
	PointOff   float64 // PT_OFF / PT_O: trigger point offset
	YMult      float64
	YZero      float64
	YOff       float64
	NumPoints  int // NR_PT / NR_P
}

// BlockDescriptor locates the binary sample block inside the file.
type BlockDescriptor struct {
	// DataOffset is the byte offset where raw sample data begins, just
	// past the #<digits><count> length prefix.
	DataOffset int

	// DeclaredBytes is the byte count announced by the length prefix.
	DeclaredBytes int

	Convention Convention
}

// Waveform is the decoded result: the header plus physically scaled
// time/value series. For PointFormatY Values is populated; for
// PointFormatEnvelope Min and Max are populated instead.
type Waveform struct {
	Header Header

	Time   []float64
	Values []float64
	Min    []float64
	Max    []float64

	// Fingerprint is the 64-bit xxHash of the raw sample block, useful
	// for comparing captures without re-reading the file.
	Fingerprint uint64
}

// Points returns the number of decoded time steps.
func (w *Waveform) Points() int {
	return len(w.Time)
}

// Envelope reports whether the waveform carries min/max envelope series.
func (w *Waveform) Envelope() bool {
	return w.Header.PointFmt == PointFormatEnvelope
}

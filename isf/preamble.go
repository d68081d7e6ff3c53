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

package isf

import (
	"bytes"
	"strconv"
	"strings"
)

const (
	markerCurrent = ":CURV #"
	markerLegacy  = ":CURVE #"
)

// tagSet names the preamble tags for one naming convention. Tags are
// located by first-occurrence substring search, so each tag must be
// distinct enough within the preamble's fixed field ordering; this is a
// property of the format itself, inherited from the scopes' output.
type tagSet struct {
	ByteNum    string
	BitNum     string
	Encoding   string
	BinFormat  string
	ByteOrder  string
	WaveformID string
	PointFmt   string
	XUnit      string
	YUnit      string
	XZero      string
	XIncr      string
	PointOff   string
	YMult      string
	YZero      string
	YOff       string
	NumPoints  string
}

var currentTags = tagSet{
	ByteNum:    "BYT_N",
	BitNum:     "BIT_N",
	Encoding:   "ENC",
	BinFormat:  "BN_F",
	ByteOrder:  "BYT_O",
	WaveformID: "WFI",
	PointFmt:   "PT_F",
	XUnit:      "XUN",
	YUnit:      "YUN",
	XZero:      "XZE",
	XIncr:      "XIN",
	PointOff:   "PT_O",
	YMult:      "YMU",
	YZero:      "YZE",
	YOff:       "YOF",
	NumPoints:  "NR_P",
}

var legacyTags = tagSet{
	ByteNum:    "BYT_NR",
	BitNum:     "BIT_NR",
	Encoding:   "ENCDG",
	BinFormat:  "BN_FMT",
	ByteOrder:  "BYT_OR",
	WaveformID: "WFID",
	PointFmt:   "PT_FMT",
	XUnit:      "XUNIT",
	YUnit:      "YUNIT",
	XZero:      "XZERO",
	XIncr:      "XINCR",
	PointOff:   "PT_OFF",
	YMult:      "YMULT",
	YZero:      "YZERO",
	YOff:       "YOFF",
	NumPoints:  "NR_PT",
}

func (c Convention) tags() tagSet {
	if c == ConventionLegacy {
		return legacyTags
	}
	return currentTags
}

// findMarker locates the curve marker inside the preamble window and
// resolves the naming convention. The short marker is tried first; it
// cannot false-match a legacy file because the legacy marker has an 'E'
// where the short form has the space.
func findMarker(buf []byte) (pos int, conv Convention, err error) {
	if pos = bytes.Index(buf, []byte(markerCurrent)); pos >= 0 {
		return pos, ConventionCurrent, nil
	}
	if pos = bytes.Index(buf, []byte(markerLegacy)); pos >= 0 {
		return pos, ConventionLegacy, nil
	}
	return 0, 0, ErrMalformedHeader
}

// ParsePreamble extracts the header fields and the binary block
// descriptor from the leading bytes of an ISF file. The buffer must
// contain at least the full preamble (the first DefaultPreambleWindow
// bytes of the file are always enough).
func ParsePreamble(buf []byte) (Header, BlockDescriptor, error) {
	return parsePreamble(buf, DefaultPreambleWindow)
}

func parsePreamble(buf []byte, window int) (Header, BlockDescriptor, error) {
	if window > len(buf) {
		window = len(buf)
	}

	pos, conv, err := findMarker(buf[:window])
	if err != nil {
		return Header{}, BlockDescriptor{}, err
	}
	markerLen := len(conv.Marker())

	// One digit announces how many digits the byte-length field has.
	digitPos := pos + markerLen
	if digitPos >= len(buf) {
		return Header{}, BlockDescriptor{}, ErrMalformedHeader
	}
	c := buf[digitPos]
	if c < '0' || c > '9' {
		return Header{}, BlockDescriptor{}, ErrMalformedHeader
	}
	nDigits := int(c - '0')

	end := digitPos + 1 + nDigits
	if end > len(buf) {
		return Header{}, BlockDescriptor{}, ErrMalformedHeader
	}
	declared, err := strconv.Atoi(string(buf[digitPos+1 : end]))
	if err != nil {
		return Header{}, BlockDescriptor{}, ErrMalformedHeader
	}

	// Only the region up to the end of the length prefix is scanned for
	// tags; anything past it is raw sample data.
	text := string(buf[:end])

	hdr, err := extractHeader(text, conv)
	if err != nil {
		return Header{}, BlockDescriptor{}, err
	}

	blk := BlockDescriptor{
		DataOffset:    end,
		DeclaredBytes: declared,
		Convention:    conv,
	}

	return hdr, blk, nil
}

func extractHeader(text string, conv Convention) (Header, error) {
	tags := conv.tags()
	hdr := Header{Convention: conv}

	var err error
	if hdr.ByteNum, err = getInt(text, tags.ByteNum); err != nil {
		return hdr, err
	}
	if hdr.BitNum, err = getInt(text, tags.BitNum); err != nil {
		return hdr, err
	}
	if hdr.Encoding, err = getStr(text, tags.Encoding); err != nil {
		return hdr, err
	}
	if hdr.BinFormat, err = getStr(text, tags.BinFormat); err != nil {
		return hdr, err
	}
	order, err := getStr(text, tags.ByteOrder)
	if err != nil {
		return hdr, err
	}
	if hdr.ByteOrder, err = ParseByteOrder(order); err != nil {
		return hdr, err
	}
	if hdr.WaveformID, err = getQuotedStr(text, tags.WaveformID); err != nil {
		return hdr, err
	}
	format, err := getStr(text, tags.PointFmt)
	if err != nil {
		return hdr, err
	}
	if hdr.PointFmt, err = ParsePointFormat(format); err != nil {
		return hdr, err
	}
	if hdr.XUnit, err = getQuotedStr(text, tags.XUnit); err != nil {
		return hdr, err
	}
	if hdr.YUnit, err = getQuotedStr(text, tags.YUnit); err != nil {
		return hdr, err
	}
	if hdr.XZero, err = getNum(text, tags.XZero); err != nil {
		return hdr, err
	}
	if hdr.XIncr, err = getNum(text, tags.XIncr); err != nil {
		return hdr, err
	}
	if hdr.PointOff, err = getNum(text, tags.PointOff); err != nil {
		return hdr, err
	}
	if hdr.YMult, err = getNum(text, tags.YMult); err != nil {
		return hdr, err
	}
	if hdr.YZero, err = getNum(text, tags.YZero); err != nil {
		return hdr, err
	}
	if hdr.YOff, err = getNum(text, tags.YOff); err != nil {
		return hdr, err
	}
	if hdr.NumPoints, err = getInt(text, tags.NumPoints); err != nil {
		return hdr, err
	}

	return hdr, nil
}

// rawField returns the span between the first occurrence of tag and the
// next ';' delimiter.
func rawField(text, tag string) (string, error) {
	n1 := strings.Index(text, tag)
	if n1 < 0 {
		return "", &TagError{Tag: tag}
	}
	start := n1 + len(tag)
	n2 := strings.Index(text[start:], ";")
	if n2 < 0 {
		return "", &TagError{Tag: tag}
	}
	return text[start : start+n2], nil
}

// getNum extracts a numeric field. A '.' in the value selects float
// syntax, otherwise integer syntax; either way the result is a float64.
func getNum(text, tag string) (float64, error) {
	s, err := rawField(text, tag)
	if err != nil {
		return 0, err
	}
	s = strings.TrimSpace(s)
	if !strings.Contains(s, ".") {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, &TagError{Tag: tag}
		}
		return float64(n), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &TagError{Tag: tag}
	}
	return f, nil
}

// getInt extracts an integer-valued field.
func getInt(text, tag string) (int, error) {
	s, err := rawField(text, tag)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &TagError{Tag: tag}
	}
	return n, nil
}

// getStr extracts a bare string field, trimming the leading whitespace
// that separates tag and value.
func getStr(text, tag string) (string, error) {
	s, err := rawField(text, tag)
	if err != nil {
		return "", err
	}
	return strings.TrimLeft(s, " \t"), nil
}

// getQuotedStr extracts a quoted string field: the content strictly
// between the first pair of double quotes following the tag.
func getQuotedStr(text, tag string) (string, error) {
	n1 := strings.Index(text, tag)
	if n1 < 0 {
		return "", &TagError{Tag: tag}
	}
	n2 := strings.Index(text[n1+1:], `"`)
	if n2 < 0 {
		return "", &TagError{Tag: tag}
	}
	n2 += n1 + 1
	n3 := strings.Index(text[n2+1:], `"`)
	if n3 < 0 {
		return "", &TagError{Tag: tag}
	}
	n3 += n2 + 1
	return text[n2+1 : n3], nil
}

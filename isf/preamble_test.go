package isf

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePreamble_LegacyConvention(t *testing.T) {
	data := buildCapture(t, legacyFields, markerLegacy, []int16{10, -5, 0, 100}, ByteOrderLSB, -1)

	hdr, blk, err := ParsePreamble(data)
	require.NoError(t, err)

	require.Equal(t, ConventionLegacy, hdr.Convention)
	require.Equal(t, ConventionLegacy, blk.Convention)
	require.Equal(t, 2, hdr.ByteNum)
	require.Equal(t, 16, hdr.BitNum)
	require.Equal(t, "BIN", hdr.Encoding)
	require.Equal(t, "RI", hdr.BinFormat)
	require.Equal(t, ByteOrderLSB, hdr.ByteOrder)
	require.Equal(t, "test", hdr.WaveformID)
	require.Equal(t, PointFormatY, hdr.PointFmt)
	require.Equal(t, "s", hdr.XUnit)
	require.Equal(t, "V", hdr.YUnit)
	require.Equal(t, 0.0, hdr.XZero)
	require.Equal(t, 1.0, hdr.XIncr)
	require.Equal(t, 0.0, hdr.PointOff)
	require.Equal(t, 2.0, hdr.YMult)
	require.Equal(t, 0.0, hdr.YZero)
	require.Equal(t, 0.0, hdr.YOff)
	require.Equal(t, 4, hdr.NumPoints)

	require.Equal(t, 8, blk.DeclaredBytes)
	require.Equal(t, len(data)-8, blk.DataOffset)
}

func TestParsePreamble_CurrentConvention(t *testing.T) {
	data := buildCapture(t, currentFields, markerCurrent, []int16{1, 2, 3, 4}, ByteOrderMSB, -1)

	hdr, blk, err := ParsePreamble(data)
	require.NoError(t, err)

	require.Equal(t, ConventionCurrent, hdr.Convention)
	require.Equal(t, "BIN", hdr.Encoding)
	require.Equal(t, ByteOrderMSB, hdr.ByteOrder)
	require.Equal(t, "scope trace", hdr.WaveformID)
	require.Equal(t, PointFormatY, hdr.PointFmt)
	require.Equal(t, 1e-6, hdr.XIncr)
	require.Equal(t, 4, hdr.NumPoints)
	require.Equal(t, 8, blk.DeclaredBytes)
}

func TestParsePreamble_Idempotent(t *testing.T) {
	data := buildCapture(t, legacyFields, markerLegacy, []int16{10, -5, 0, 100}, ByteOrderLSB, -1)

	hdr1, blk1, err := ParsePreamble(data)
	require.NoError(t, err)
	hdr2, blk2, err := ParsePreamble(data)
	require.NoError(t, err)

	require.Equal(t, hdr1, hdr2)
	require.Equal(t, blk1, blk2)
}

func TestParsePreamble_NoMarker(t *testing.T) {
	// No marker anywhere; must fail cleanly without reading past the
	// buffer, regardless of buffer size.
	for _, size := range []int{0, 10, 511, 2048} {
		buf := []byte(strings.Repeat("x", size))
		_, _, err := ParsePreamble(buf)
		require.ErrorIs(t, err, ErrMalformedHeader, "size %d", size)
	}
}

func TestParsePreamble_MarkerOutsideWindow(t *testing.T) {
	// A marker past the preamble window is not found.
	pad := strings.Repeat("x", DefaultPreambleWindow)
	data := buildCapture(t, pad+legacyFields, markerLegacy, []int16{1}, ByteOrderLSB, -1)

	_, _, err := ParsePreamble(data)
	require.ErrorIs(t, err, ErrMalformedHeader)
}

func TestParsePreamble_TruncatedLengthPrefix(t *testing.T) {
	// Marker present but the length digits are cut off.
	data := []byte(legacyFields + ":CURVE #4")
	_, _, err := ParsePreamble(data)
	require.ErrorIs(t, err, ErrMalformedHeader)

	// Non-digit where the digit count should be.
	data = []byte(legacyFields + ":CURVE #x1234")
	_, _, err = ParsePreamble(data)
	require.ErrorIs(t, err, ErrMalformedHeader)
}

func TestParsePreamble_MissingTag(t *testing.T) {
	// Preamble with NR_PT removed.
	fields := strings.Replace(legacyFields, "NR_PT 4;", "", 1)
	data := buildCapture(t, fields, markerLegacy, []int16{1, 2, 3, 4}, ByteOrderLSB, -1)

	_, _, err := ParsePreamble(data)
	require.ErrorIs(t, err, ErrMissingField)

	var tagErr *TagError
	require.ErrorAs(t, err, &tagErr)
	require.Equal(t, "NR_PT", tagErr.Tag)
	require.True(t, IsMissingField(err))
}

func TestParsePreamble_UnsupportedByteOrder(t *testing.T) {
	fields := strings.Replace(legacyFields, "BYT_OR LSB;", "BYT_OR PDP;", 1)
	data := buildCapture(t, fields, markerLegacy, []int16{1, 2, 3, 4}, ByteOrderLSB, -1)

	_, _, err := ParsePreamble(data)
	require.ErrorIs(t, err, ErrUnsupportedByteOrder)
	require.True(t, IsUnsupported(err))
}

func TestParsePreamble_UnsupportedPointFormat(t *testing.T) {
	fields := strings.Replace(legacyFields, "PT_FMT Y;", "PT_FMT XY;", 1)
	data := buildCapture(t, fields, markerLegacy, []int16{1, 2, 3, 4}, ByteOrderLSB, -1)

	_, _, err := ParsePreamble(data)
	require.ErrorIs(t, err, ErrUnsupportedPointFormat)
}

func TestParseByteOrder(t *testing.T) {
	order, err := ParseByteOrder("MSB")
	require.NoError(t, err)
	require.Equal(t, ByteOrderMSB, order)

	order, err = ParseByteOrder("LSB")
	require.NoError(t, err)
	require.Equal(t, ByteOrderLSB, order)

	_, err = ParseByteOrder("msb")
	require.ErrorIs(t, err, ErrUnsupportedByteOrder)
}

func TestParsePointFormat(t *testing.T) {
	format, err := ParsePointFormat("Y")
	require.NoError(t, err)
	require.Equal(t, PointFormatY, format)

	format, err = ParsePointFormat("ENV")
	require.NoError(t, err)
	require.Equal(t, PointFormatEnvelope, format)

	_, err = ParsePointFormat("XY")
	require.ErrorIs(t, err, ErrUnsupportedPointFormat)
}

func TestTagExtraction_Rules(t *testing.T) {
	text := `:WFMPRE:NR_PT 100;XINCR 2.5E-9;WFID "Ch1, DC coupling";PT_FMT  ENV;`

	n, err := getInt(text, "NR_PT")
	require.NoError(t, err)
	require.Equal(t, 100, n)

	f, err := getNum(text, "XINCR")
	require.NoError(t, err)
	require.InEpsilon(t, 2.5e-9, f, 1e-12)

	// Quoted extraction ignores the ';' inside the quotes.
	s, err := getQuotedStr(text, "WFID")
	require.NoError(t, err)
	require.Equal(t, "Ch1, DC coupling", s)

	// Bare strings are left-trimmed only.
	s, err = getStr(text, "PT_FMT")
	require.NoError(t, err)
	require.Equal(t, "ENV", s)

	_, err = getNum(text, "YMULT")
	require.Error(t, err)
	var tagErr *TagError
	require.True(t, errors.As(err, &tagErr))
}

func TestConventionTags(t *testing.T) {
	require.Equal(t, "NR_P", ConventionCurrent.tags().NumPoints)
	require.Equal(t, "NR_PT", ConventionLegacy.tags().NumPoints)
	require.Equal(t, ":CURV #", ConventionCurrent.Marker())
	require.Equal(t, ":CURVE #", ConventionLegacy.Marker())
}

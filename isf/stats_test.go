package isf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSummarize_YFormat(t *testing.T) {
	wf := &Waveform{
		Header: Header{PointFmt: PointFormatY},
		Time:   []float64{0, 1, 2, 3},
		Values: []float64{-2, 0, 2, 4},
	}

	s := Summarize(wf)
	require.Equal(t, -2.0, s.Min)
	require.Equal(t, 4.0, s.Max)
	require.InDelta(t, 1.0, s.Mean, 1e-12)
	require.Equal(t, 6.0, s.PeakToPeak)
	require.Greater(t, s.StdDev, 0.0)
}

func TestSummarize_Envelope(t *testing.T) {
	// Envelope statistics span both series.
	wf := &Waveform{
		Header: Header{PointFmt: PointFormatEnvelope},
		Time:   []float64{0, 1},
		Min:    []float64{-5, -3},
		Max:    []float64{3, 5},
	}

	s := Summarize(wf)
	require.Equal(t, -5.0, s.Min)
	require.Equal(t, 5.0, s.Max)
	require.InDelta(t, 0.0, s.Mean, 1e-12)
	require.Equal(t, 10.0, s.PeakToPeak)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(&Waveform{})
	require.Equal(t, Summary{}, s)
}

func TestSummarize_SinglePoint(t *testing.T) {
	wf := &Waveform{
		Header: Header{PointFmt: PointFormatY},
		Time:   []float64{0},
		Values: []float64{1.5},
	}

	s := Summarize(wf)
	require.Equal(t, 1.5, s.Min)
	require.Equal(t, 1.5, s.Max)
	require.Equal(t, 0.0, s.StdDev)
	require.Equal(t, 0.0, s.PeakToPeak)
}

func TestSummarize_FromDecode(t *testing.T) {
	data := buildCapture(t, legacyFields, markerLegacy, []int16{10, -5, 0, 100}, ByteOrderLSB, -1)

	wf, err := Decode(data, WithLogger(discardLogger()))
	require.NoError(t, err)

	s := Summarize(wf)
	require.Equal(t, -10.0, s.Min)
	require.Equal(t, 200.0, s.Max)
	require.Equal(t, 210.0, s.PeakToPeak)
}

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
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds descriptive statistics over a waveform's decoded values.
type Summary struct {
	Min        float64
	Max        float64
	Mean       float64
	StdDev     float64
	PeakToPeak float64
}

// Summarize computes descriptive statistics for a decoded waveform. For
// envelope waveforms the statistics cover both the min and max series.
func Summarize(w *Waveform) Summary {
	vals := w.Values
	if w.Envelope() {
		vals = make([]float64, 0, len(w.Min)+len(w.Max))
		vals = append(vals, w.Min...)
		vals = append(vals, w.Max...)
	}
	if len(vals) == 0 {
		return Summary{}
	}

	s := Summary{
		Min:  floats.Min(vals),
		Max:  floats.Max(vals),
		Mean: stat.Mean(vals, nil),
	}
	if len(vals) > 1 {
		s.StdDev = stat.StdDev(vals, nil)
	}
	s.PeakToPeak = s.Max - s.Min

	return s
}

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
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// DecodeCurve unpacks and scales the binary sample block. data is the
// full file buffer; the block is located through blk.DataOffset.
func DecodeCurve(hdr Header, blk BlockDescriptor, data []byte) (*Waveform, error) {
	expected := hdr.NumPoints * SampleSize
	if blk.DeclaredBytes != expected {
		return nil, fmt.Errorf("%w: declared %d, computed %d",
			ErrByteCountMismatch, blk.DeclaredBytes, expected)
	}
	if blk.DataOffset+expected > len(data) {
		return nil, fmt.Errorf("%w: need %d bytes, have %d",
			ErrTruncatedData, expected, len(data)-blk.DataOffset)
	}

	block := data[blk.DataOffset : blk.DataOffset+expected]
	order := hdr.ByteOrder.Engine()

	raw := make([]int16, hdr.NumPoints)
	for i := range raw {
		raw[i] = int16(order.Uint16(block[i*SampleSize:]))
	}

	wf := &Waveform{
		Header:      hdr,
		Fingerprint: xxhash.Sum64(block),
	}

	switch hdr.PointFmt {
	case PointFormatY:
		wf.Time = make([]float64, hdr.NumPoints)
		wf.Values = make([]float64, hdr.NumPoints)
		for i, r := range raw {
			wf.Time[i] = hdr.XZero + hdr.XIncr*(float64(i)-hdr.PointOff)
			wf.Values[i] = hdr.YZero + hdr.YMult*(float64(r)-hdr.YOff)
		}

	case PointFormatEnvelope:
		// Raw samples alternate min/max; each pair covers two raw time
		// increments.
		n := hdr.NumPoints / 2
		wf.Time = make([]float64, n)
		wf.Min = make([]float64, n)
		wf.Max = make([]float64, n)
		for i := 0; i < n; i++ {
			wf.Time[i] = hdr.XZero + hdr.XIncr*(float64(i)-hdr.PointOff)*2
			wf.Min[i] = hdr.YZero + hdr.YMult*(float64(raw[2*i])-hdr.YOff)
			wf.Max[i] = hdr.YZero + hdr.YMult*(float64(raw[2*i+1])-hdr.YOff)
		}

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPointFormat, hdr.PointFmt)
	}

	return wf, nil
}

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
	"io"
	"os"
)

// Decode parses the preamble and decodes the sample block from a
// complete ISF file held in memory. It is a pure function of the buffer;
// concurrent calls on independent buffers are safe.
func Decode(data []byte, opts ...Option) (*Waveform, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	hdr, blk, err := parsePreamble(data, o.preambleWindow)
	if err != nil {
		return nil, err
	}

	o.logger.Debug("preamble parsed",
		"convention", hdr.Convention.String(),
		"waveform_id", hdr.WaveformID,
		"point_format", hdr.PointFmt.String(),
		"points", hdr.NumPoints,
		"byte_order", hdr.ByteOrder.String(),
		"data_offset", blk.DataOffset,
		"declared_bytes", blk.DeclaredBytes,
	)

	if o.encodingCheck {
		if err := validateEncoding(hdr); err != nil {
			return nil, err
		}
	}

	wf, err := DecodeCurve(hdr, blk, data)
	if err != nil {
		return nil, err
	}

	o.logger.Debug("curve decoded",
		"points", wf.Points(),
		"fingerprint", fmt.Sprintf("%016x", wf.Fingerprint),
	)

	return wf, nil
}

// DecodeFile reads and decodes an ISF file from disk.
func DecodeFile(path string, opts ...Option) (*Waveform, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return Decode(data, opts...)
}

// validateEncoding rejects sample layouts the decoder would otherwise
// misinterpret. Current-convention files write ENCDG as "BIN", legacy
// files as "BINARY"; both mean raw signed integers when BN_FMT is "RI".
func validateEncoding(hdr Header) error {
	if hdr.ByteNum != SampleSize || hdr.BitNum != SampleSize*8 {
		return fmt.Errorf("%w: %d-byte/%d-bit samples", ErrUnsupportedEncoding,
			hdr.ByteNum, hdr.BitNum)
	}
	if hdr.Encoding != "BIN" && hdr.Encoding != "BINARY" {
		return fmt.Errorf("%w: encoding %q", ErrUnsupportedEncoding, hdr.Encoding)
	}
	if hdr.BinFormat != "RI" {
		return fmt.Errorf("%w: binary format %q", ErrUnsupportedEncoding, hdr.BinFormat)
	}
	return nil
}

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

import "log/slog"

// decodeOptions holds configuration for a decode call
type decodeOptions struct {
	logger         *slog.Logger
	encodingCheck  bool
	preambleWindow int
}

// defaultOptions returns the default decode options
func defaultOptions() *decodeOptions {
	return &decodeOptions{
		logger:         slog.Default(),
		encodingCheck:  true,
		preambleWindow: DefaultPreambleWindow,
	}
}

// Option is a functional option for configuring a decode call
type Option func(*decodeOptions)

// WithLogger sets the logger used for debug output during decoding
func WithLogger(logger *slog.Logger) Option {
	return func(o *decodeOptions) {
		o.logger = logger
	}
}

// WithoutEncodingCheck disables the eager validation of the sample
// encoding fields (BYT_NR, BIT_NR, ENCDG, BN_FMT). Decoding still
// assumes signed 16-bit samples; use this only for files whose tag
// values are unusual but whose data layout is known to match.
func WithoutEncodingCheck() Option {
	return func(o *decodeOptions) {
		o.encodingCheck = false
	}
}

// WithPreambleWindow sets the number of leading bytes searched for the
// curve marker.
func WithPreambleWindow(n int) Option {
	return func(o *decodeOptions) {
		if n > 0 {
			o.preambleWindow = n
		}
	}
}

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
	"errors"
	"fmt"
)

// Sentinel errors. Every decode failure is terminal: there is no partial
// result and no retry.
var (
	ErrMalformedHeader        = errors.New("isf: curve marker not found in preamble")
	ErrUnsupportedByteOrder   = errors.New("isf: unsupported byte order")
	ErrUnsupportedPointFormat = errors.New("isf: unsupported point format")
	ErrUnsupportedEncoding    = errors.New("isf: unsupported sample encoding")
	ErrByteCountMismatch      = errors.New("isf: declared byte count does not match point count")
	ErrMissingField           = errors.New("isf: required preamble field missing")
	ErrTruncatedData          = errors.New("isf: sample block truncated")
)

// TagError reports a preamble tag that could not be extracted.
type TagError struct {
	Tag string
}

func (e *TagError) Error() string {
	return fmt.Sprintf("isf: preamble tag %q not found", e.Tag)
}

func (e *TagError) Unwrap() error {
	return ErrMissingField
}

// IsMissingField returns true if the error indicates an absent preamble tag.
func IsMissingField(err error) bool {
	return errors.Is(err, ErrMissingField)
}

// IsUnsupported returns true if the error indicates a file the decoder
// recognizes but does not handle (byte order, point format or encoding).
func IsUnsupported(err error) bool {
	return errors.Is(err, ErrUnsupportedByteOrder) ||
		errors.Is(err, ErrUnsupportedPointFormat) ||
		errors.Is(err, ErrUnsupportedEncoding)
}

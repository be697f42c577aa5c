// Copyright 2025 go-highway Authors
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

package mucodec

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

var (
	// ErrInvalidDataSize is the mark on every error caused by an input of the
	// wrong length for a fixed-size decode.
	ErrInvalidDataSize = errors.New("mucodec: invalid data size")

	// ErrSliceConversion is additionally marked on length errors returned
	// while converting an arbitrary slice into a fixed-size value. Only
	// errors.Is from github.com/cockroachdb/errors sees this mark.
	ErrSliceConversion = errors.New("mucodec: slice conversion")

	// ErrInvalidHexDigit marks errors for characters outside [0-9a-f].
	ErrInvalidHexDigit = errors.New("mucodec: invalid hex digit")

	// ErrInvalidBase64Character marks errors for characters that are not
	// valid base64 at their position.
	ErrInvalidBase64Character = errors.New("mucodec: invalid base64 character")

	// ErrInvalidBitWidth marks errors for packed lists whose declared bit
	// width exceeds the element type.
	ErrInvalidBitWidth = errors.New("mucodec: invalid bit width")
)

// InvalidDataSizeError reports an input whose length does not match the
// fixed length the decoder requires.
type InvalidDataSizeError struct {
	Expected int
	Got      int
}

// NewInvalidDataSizeError returns an *InvalidDataSizeError marked with
// ErrInvalidDataSize. Generated SetBytes methods use it.
func NewInvalidDataSizeError(expected, got int) error {
	return errors.Mark(&InvalidDataSizeError{Expected: expected, Got: got}, ErrInvalidDataSize)
}

func (e *InvalidDataSizeError) Error() string { return redact.StringWithoutMarkers(e) }

// Is lets the standard library errors.Is match ErrInvalidDataSize.
func (e *InvalidDataSizeError) Is(target error) bool { return target == ErrInvalidDataSize }

// SafeFormat implements redact.SafeFormatter.
func (e *InvalidDataSizeError) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("invalid data size: expected %d, got %d", redact.SafeInt(e.Expected), redact.SafeInt(e.Got))
}

// InvalidHexDigitError reports the first character of a hex string that is
// not a lowercase hex digit.
type InvalidHexDigitError struct {
	Char byte
}

func newInvalidHexDigitError(c byte) error {
	return errors.Mark(&InvalidHexDigitError{Char: c}, ErrInvalidHexDigit)
}

func (e *InvalidHexDigitError) Error() string { return redact.StringWithoutMarkers(e) }

// Is lets the standard library errors.Is match ErrInvalidHexDigit.
func (e *InvalidHexDigitError) Is(target error) bool { return target == ErrInvalidHexDigit }

// SafeFormat implements redact.SafeFormatter.
func (e *InvalidHexDigitError) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("invalid hex digit %q", rune(e.Char))
}

// InvalidBase64CharacterError reports the first character of a base64 string
// that is outside the alphabet or misplaced padding.
type InvalidBase64CharacterError struct {
	Char byte
}

func newInvalidBase64CharacterError(c byte) error {
	return errors.Mark(&InvalidBase64CharacterError{Char: c}, ErrInvalidBase64Character)
}

func (e *InvalidBase64CharacterError) Error() string { return redact.StringWithoutMarkers(e) }

// Is lets the standard library errors.Is match ErrInvalidBase64Character.
func (e *InvalidBase64CharacterError) Is(target error) bool { return target == ErrInvalidBase64Character }

// SafeFormat implements redact.SafeFormatter.
func (e *InvalidBase64CharacterError) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("invalid base64 character %q", rune(e.Char))
}

// InvalidBitWidthError reports a packed list header whose bit width does not
// fit the element type.
type InvalidBitWidthError struct {
	BitWidth int
	Max      int
}

func newInvalidBitWidthError(bitWidth, maxBits int) error {
	return errors.Mark(&InvalidBitWidthError{BitWidth: bitWidth, Max: maxBits}, ErrInvalidBitWidth)
}

func (e *InvalidBitWidthError) Error() string { return redact.StringWithoutMarkers(e) }

// Is lets the standard library errors.Is match ErrInvalidBitWidth.
func (e *InvalidBitWidthError) Is(target error) bool { return target == ErrInvalidBitWidth }

// SafeFormat implements redact.SafeFormatter.
func (e *InvalidBitWidthError) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("invalid bit width %d, element holds at most %d bits", redact.SafeInt(e.BitWidth), redact.SafeInt(e.Max))
}

// Licensed to NASA JPL under one or more contributor
// license agreements. See the NOTICE file distributed with
// this work for additional information regarding copyright
// ownership. NASA JPL licenses this file to you under
// the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

// Error kinds raised while reading or writing a cube header/data file pair. Each error carries
// a Kind so callers (and the API) can react to the category of failure without parsing messages
package cubeerror

import (
	"fmt"

	"github.com/pkg/errors"
)

type Kind int

const (
	// KindNone - not a cube error
	KindNone Kind = iota

	// MalformedHeader - header doesn't start with the magic token, or has a line we can't split
	MalformedHeader

	// UnsupportedField - header contains a key that isn't part of the grammar
	UnsupportedField

	// MalformedNumber - a numeric field couldn't be converted
	MalformedNumber

	// Unsupported - a recognised field holds a value we don't support (data type, interleave, byte order, file type)
	Unsupported

	// BandCountMismatch - band count disagrees with the number of wavelengths
	BandCountMismatch

	// TruncatedData - data file is smaller than the header says it should be
	TruncatedData

	// NonPositiveWavelength - wavelength entry <= 0
	NonPositiveWavelength
)

var kindNames = map[Kind]string{
	KindNone:              "None",
	MalformedHeader:       "MalformedHeader",
	UnsupportedField:      "UnsupportedField",
	MalformedNumber:       "MalformedNumber",
	Unsupported:           "Unsupported",
	BandCountMismatch:     "BandCountMismatch",
	TruncatedData:         "TruncatedData",
	NonPositiveWavelength: "NonPositiveWavelength",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%v)", int(k))
}

// Error - a cube error. Not every field is relevant for every kind:
// Field is set for UnsupportedField, MalformedNumber, Unsupported
// Text is the offending text for MalformedNumber, Unsupported, MalformedHeader
// Expected/Actual are set for BandCountMismatch and TruncatedData
type Error struct {
	Kind     Kind
	Field    string
	Text     string
	Expected int64
	Actual   int64
}

func (e *Error) Error() string {
	switch e.Kind {
	case MalformedHeader:
		if len(e.Text) > 0 {
			return fmt.Sprintf("malformed header: %v", e.Text)
		}
		return "malformed header"
	case UnsupportedField:
		return fmt.Sprintf("unsupported header field: \"%v\"", e.Field)
	case MalformedNumber:
		return fmt.Sprintf("failed to read number for field \"%v\", got: \"%v\"", e.Field, e.Text)
	case Unsupported:
		return fmt.Sprintf("unsupported value for field \"%v\": \"%v\"", e.Field, e.Text)
	case BandCountMismatch:
		return fmt.Sprintf("band count %v does not match wavelength count %v", e.Expected, e.Actual)
	case TruncatedData:
		return fmt.Sprintf("data file too small, expected at least %v bytes, got %v", e.Expected, e.Actual)
	case NonPositiveWavelength:
		return fmt.Sprintf("wavelength must be positive, got: \"%v\"", e.Text)
	}
	return fmt.Sprintf("cube error: %v", e.Kind)
}

func MakeMalformedHeader(text string) *Error {
	return &Error{Kind: MalformedHeader, Text: text}
}

func MakeUnsupportedField(field string) *Error {
	return &Error{Kind: UnsupportedField, Field: field}
}

func MakeMalformedNumber(field string, text string) *Error {
	return &Error{Kind: MalformedNumber, Field: field, Text: text}
}

func MakeUnsupported(field string, value string) *Error {
	return &Error{Kind: Unsupported, Field: field, Text: value}
}

func MakeBandCountMismatch(bands int, wavelengths int) *Error {
	return &Error{Kind: BandCountMismatch, Expected: int64(bands), Actual: int64(wavelengths)}
}

func MakeTruncatedData(expectedBytes int64, actualBytes int64) *Error {
	return &Error{Kind: TruncatedData, Expected: expectedBytes, Actual: actualBytes}
}

func MakeNonPositiveWavelength(text string) *Error {
	return &Error{Kind: NonPositiveWavelength, Text: text}
}

// AsCubeError - finds the cube error at the root of a (possibly wrapped) error
func AsCubeError(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}

	if ce, ok := errors.Cause(err).(*Error); ok {
		return ce, true
	}
	return nil, false
}

// KindOf - returns the kind of cube error, KindNone if it's some other error (or nil)
func KindOf(err error) Kind {
	if ce, ok := AsCubeError(err); ok {
		return ce.Kind
	}
	return KindNone
}

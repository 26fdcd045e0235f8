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

package enviheader

import (
	"fmt"
	"math"
	"os"
	"strings"
	"testing"

	"github.com/pixlise/hypercube/core/cubeerror"
	"github.com/pixlise/hypercube/core/interleave"
)

func makeTestHeader() Header {
	h := New()
	h.Description = []string{"Test cube", "second line"}
	h.Lines = 2
	h.Samples = 3
	h.Bands = 12
	h.Interleave = interleave.BIL
	for c := 0; c < h.Bands; c++ {
		h.Wavelengths = append(h.Wavelengths, 400+float64(c)*10.25)
	}
	return h
}

func Example_header_Write() {
	h := makeTestHeader()
	fmt.Printf("%v|%v\n", h.Write(os.Stdout), len(h.Bytes()))

	// Output:
	// ENVI
	// description = {
	// Test cube
	// second line}
	// samples = 3
	// lines = 2
	// bands = 12
	// header offset = 0
	// file type = ENVI Standard
	// data type = 4
	// interleave = bil
	// byte order = 0
	// data ignore value = -1
	// wavelength = {
	//  400.0000, 410.2500, 420.5000, 430.7500, 441.0000, 451.2500, 461.5000, 471.7500, 482.0000, 492.2500,
	//  502.5000, 512.7500}
	// <nil>|327
}

func Example_parseLines() {
	lines := []string{
		"ENVI",
		"description = {",
		"  Indented line kept as is",
		"",
		"last line}",
		"# a comment",
		"Samples = 2",
		"  LINES= 1 ",
		"bands = 3",
		"header offset = 16",
		"file type = envi standard",
		"data type = 4",
		"interleave = BIP",
		"byte order = 0",
		"data ignore value = -9999.5",
		"wavelength = { 500.5,\t600",
		"   , 700 }",
	}

	h, err := ParseLines(lines)
	fmt.Printf("%v\n", err)
	fmt.Printf("%q\n", h.Description)
	fmt.Printf("L=%v S=%v B=%v offset=%v type=%v interleave=%v order=%v file=%v ignore=%v\n", h.Lines, h.Samples, h.Bands, h.HeaderOffset, h.DataType, h.Interleave, h.ByteOrder, h.FileType, h.IgnoreValue)
	fmt.Printf("%v\n", h.Wavelengths)

	// Output:
	// <nil>
	// ["  Indented line kept as is" "" "last line"]
	// L=1 S=2 B=3 offset=16 type=4 interleave=bip order=0 file=ENVI Standard ignore=-9999.5
	// [500.5 600 700]
}

func Example_parseLines_singleLineBlocks() {
	h, err := ParseLines([]string{"ENVI", "description = {One liner}", "bands = 2", "wavelength = {1.5, 2.5}"})
	fmt.Printf("%v|%q|%v|%v\n", err, h.Description, h.Wavelengths, h.Interleave)

	h, err = ParseLines([]string{"ENVI", "description = {}", "bands = 0"})
	fmt.Printf("%v|%q|%v|%v\n", err, h.Description, len(h.Wavelengths), h.IgnoreValue)

	// Output:
	// <nil>|["One liner"]|[1.5 2.5]|bsq
	// <nil>|[]|0|-1
}

func Example_parseLines_errors() {
	tests := [][]string{
		{},
		{"ENVY", "lines = 2"},
		{"ENVI", "lines 2"},
		{"ENVI", "map info = {UTM, 1, 1}"},
		{"ENVI", "lines = two"},
		{"ENVI", "lines = -3"},
		{"ENVI", "data type = 5"},
		{"ENVI", "interleave = bsp"},
		{"ENVI", "byte order = 1"},
		{"ENVI", "file type = ENVI Spectral Library"},
		{"ENVI", "data ignore value = nope"},
		{"ENVI", "bands = 2", "wavelength = {500, 6o0}"},
		{"ENVI", "bands = 2", "wavelength = {500, -600}"},
		{"ENVI", "bands = 2", "wavelength = {500, 0}"},
		{"ENVI", "bands = 2", "wavelength = {NaN, 600}"},
		{"ENVI", "bands = 3", "wavelength = {500,", "600}"},
		{"ENVI", "description = {", "never closed"},
	}

	for _, lines := range tests {
		_, err := ParseLines(lines)
		fmt.Printf("%v: %v\n", cubeerror.KindOf(err), err)
	}

	// Output:
	// MalformedHeader: malformed header: expected ENVI on first line
	// MalformedHeader: malformed header: expected ENVI on first line
	// MalformedHeader: malformed header: expected key = value, got: lines 2
	// UnsupportedField: unsupported header field: "map info"
	// MalformedNumber: failed to read number for field "lines", got: "two"
	// MalformedNumber: failed to read number for field "lines", got: "-3"
	// Unsupported: unsupported value for field "data type": "5"
	// Unsupported: unsupported value for field "interleave": "bsp"
	// Unsupported: unsupported value for field "byte order": "1"
	// Unsupported: unsupported value for field "file type": "ENVI Spectral Library"
	// MalformedNumber: failed to read number for field "data ignore value", got: "nope"
	// MalformedNumber: failed to read number for field "wavelength", got: "6o0"
	// NonPositiveWavelength: wavelength must be positive, got: "-600"
	// NonPositiveWavelength: wavelength must be positive, got: "0"
	// NonPositiveWavelength: wavelength must be positive, got: "NaN"
	// BandCountMismatch: band count 3 does not match wavelength count 2
	// MalformedHeader: malformed header: unterminated block for description
}

func TestRoundTrip(t *testing.T) {
	h := makeTestHeader()
	h.HeaderOffset = 128
	h.IgnoreValue = -0.5
	h.Wavelengths[3] = 430.123456 // Will come back rounded to 4 decimals

	parsed, err := Parse(strings.NewReader(string(h.Bytes())))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if parsed.Lines != h.Lines || parsed.Samples != h.Samples || parsed.Bands != h.Bands ||
		parsed.HeaderOffset != h.HeaderOffset || parsed.DataType != h.DataType || parsed.Interleave != h.Interleave ||
		parsed.ByteOrder != h.ByteOrder || parsed.FileType != h.FileType || parsed.IgnoreValue != h.IgnoreValue {
		t.Errorf("scalar mismatch: wrote %+v, read %+v", h, parsed)
	}

	if strings.Join(parsed.Description, "\n") != strings.Join(h.Description, "\n") {
		t.Errorf("description mismatch: %q vs %q", parsed.Description, h.Description)
	}

	if len(parsed.Wavelengths) != len(h.Wavelengths) {
		t.Fatalf("wavelength count %v, expected %v", len(parsed.Wavelengths), len(h.Wavelengths))
	}

	for c, wl := range h.Wavelengths {
		if math.Abs(parsed.Wavelengths[c]-wl) > 0.00005 {
			t.Errorf("wavelength %v: %v, expected %v", c, parsed.Wavelengths[c], wl)
		}
	}
}

func TestRoundTripBlankDescriptionLines(t *testing.T) {
	for _, desc := range [][]string{
		{"Test cube", ""},
		{"Test cube", "  "},
		{""},
		{"", "middle", ""},
		{},
	} {
		h := makeTestHeader()
		h.Description = desc

		parsed, err := Parse(strings.NewReader(string(h.Bytes())))
		if err != nil {
			t.Fatalf("%q: parse failed: %v", desc, err)
		}

		if len(parsed.Description) != len(desc) || strings.Join(parsed.Description, "\n") != strings.Join(desc, "\n") {
			t.Errorf("description mismatch: %q vs %q", parsed.Description, desc)
		}
	}
}

func TestRoundTripAllLayouts(t *testing.T) {
	for _, layout := range []interleave.Layout{interleave.BSQ, interleave.BIL, interleave.BIP} {
		h := New()
		h.Interleave = layout
		parsed, err := ParseLines(strings.Split(string(h.Bytes()), "\n"))
		if err != nil || parsed.Interleave != layout {
			t.Errorf("%v: got %v, %v", layout, parsed.Interleave, err)
		}
	}
}

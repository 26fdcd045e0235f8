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

// Reading and writing of the text header that describes a cube. The grammar is closed: any key we don't
// know about is an error, so if a field is added it has to be added here too
package enviheader

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pixlise/hypercube/core/cubeerror"
	"github.com/pixlise/hypercube/core/interleave"
	"github.com/pkg/errors"
)

// Magic - must be alone on the first line of the header
const Magic = "ENVI"

// SupportedDataType - 32-bit float, the only encoding we read/write
const SupportedDataType = 4

// SupportedByteOrder - little endian
const SupportedByteOrder = 0

const SupportedFileType = "ENVI Standard"

const DefaultIgnoreValue = -1.0

// How many wavelengths we write per line in the wavelength block
const wavelengthsPerLine = 10

// Header - scalar and array metadata of a cube, as stored in the header file
type Header struct {
	Description  []string
	Lines        int
	Samples      int
	Bands        int
	DataType     int
	Interleave   interleave.Layout
	HeaderOffset int
	ByteOrder    int
	FileType     string
	Wavelengths  []float64
	IgnoreValue  float64
}

// New - header with all defaults filled in, no dimensions
func New() Header {
	return Header{
		DataType:    SupportedDataType,
		Interleave:  interleave.BSQ,
		ByteOrder:   SupportedByteOrder,
		FileType:    SupportedFileType,
		IgnoreValue: DefaultIgnoreValue,
	}
}

// Geometry - what the interleave codec needs to know to read/write the data file described by this header
func (h Header) Geometry() interleave.Geometry {
	return interleave.Geometry{
		Lines:        h.Lines,
		Samples:      h.Samples,
		Bands:        h.Bands,
		Layout:       h.Interleave,
		IgnoreValue:  h.IgnoreValue,
		HeaderOffset: h.HeaderOffset,
	}
}

// Validate - checks the cross-field invariants. Field values themselves are checked while parsing
func (h Header) Validate() error {
	if h.Bands != len(h.Wavelengths) {
		return cubeerror.MakeBandCountMismatch(h.Bands, len(h.Wavelengths))
	}
	return nil
}

////////////////////////////////////////////////////////////////////////////////////////////////////////////
// Parsing

// Parse - reads a header from r
func Parse(r io.Reader) (Header, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	lines := []string{}
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return Header{}, errors.Wrap(err, "failed to read header")
	}

	return ParseLines(lines)
}

// ParseLines - parses already split header lines
func ParseLines(lines []string) (Header, error) {
	h := New()

	if len(lines) <= 0 || strings.TrimSpace(strings.TrimPrefix(lines[0], "\ufeff")) != Magic {
		return h, cubeerror.MakeMalformedHeader("expected " + Magic + " on first line")
	}

	for c := 1; c < len(lines); c++ {
		line := strings.TrimSpace(lines[c])
		if len(line) <= 0 || line[0] == '#' {
			continue
		}

		eqPos := strings.Index(line, "=")
		if eqPos < 0 {
			return h, cubeerror.MakeMalformedHeader("expected key = value, got: " + line)
		}

		name := strings.ToLower(strings.TrimSpace(line[:eqPos]))
		value := strings.TrimSpace(line[eqPos+1:])

		k, err := lookupKey(name)
		if err != nil {
			return h, err
		}

		if k == keyDescription || k == keyWavelength {
			var block []string
			block, c, err = readBlock(lines, c, value, name)
			if err != nil {
				return h, err
			}

			if k == keyDescription {
				h.Description = block
			} else {
				h.Wavelengths, err = parseWavelengths(block)
				if err != nil {
					return h, err
				}
			}
			continue
		}

		if err := h.setScalar(k, name, value); err != nil {
			return h, err
		}
	}

	return h, h.Validate()
}

// readBlock - reads a { ... } block which may start on the line at lineIdx and continue on following lines. Returns
// the text lines inside the braces and the index of the line the block ended on. A value not starting with { is
// treated as a single line block
func readBlock(lines []string, lineIdx int, value string, name string) ([]string, int, error) {
	if !strings.HasPrefix(value, "{") {
		return []string{value}, lineIdx, nil
	}

	result := []string{}
	content := value[1:]
	startIdx := lineIdx

	for {
		endPos := strings.Index(content, "}")
		piece := content
		if endPos >= 0 {
			piece = content[:endPos]
		}

		// The opening and closing lines only count if they have text next to the brace
		isEdge := lineIdx == startIdx || endPos >= 0
		if !isEdge || len(strings.TrimSpace(piece)) > 0 {
			result = append(result, piece)
		}

		if endPos >= 0 {
			return result, lineIdx, nil
		}

		lineIdx++
		if lineIdx >= len(lines) {
			return nil, lineIdx, cubeerror.MakeMalformedHeader("unterminated block for " + name)
		}
		content = lines[lineIdx]
	}
}

func parseWavelengths(block []string) ([]float64, error) {
	result := []float64{}

	for _, line := range block {
		tokens := strings.FieldsFunc(line, func(r rune) bool { return r == ',' || r == '\t' })
		for _, tok := range tokens {
			tok = strings.TrimSpace(tok)
			if len(tok) <= 0 {
				continue
			}

			wl, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, cubeerror.MakeMalformedNumber("wavelength", tok)
			}

			if !(wl > 0) {
				return nil, cubeerror.MakeNonPositiveWavelength(tok)
			}

			result = append(result, wl)
		}
	}

	return result, nil
}

func parseCount(name string, value string) (int, error) {
	i, err := strconv.Atoi(value)
	if err != nil || i < 0 {
		return 0, cubeerror.MakeMalformedNumber(name, value)
	}
	return i, nil
}

func (h *Header) setScalar(k key, name string, value string) error {
	var err error

	switch k {
	case keyLines:
		h.Lines, err = parseCount(name, value)
	case keySamples:
		h.Samples, err = parseCount(name, value)
	case keyBands:
		h.Bands, err = parseCount(name, value)
	case keyHeaderOffset:
		h.HeaderOffset, err = parseCount(name, value)
	case keyDataType:
		h.DataType, err = parseCount(name, value)
		if err == nil && h.DataType != SupportedDataType {
			err = cubeerror.MakeUnsupported(name, value)
		}
	case keyByteOrder:
		h.ByteOrder, err = parseCount(name, value)
		if err == nil && h.ByteOrder != SupportedByteOrder {
			err = cubeerror.MakeUnsupported(name, value)
		}
	case keyInterleave:
		layout, ok := interleave.ParseLayout(value)
		if !ok {
			return cubeerror.MakeUnsupported(name, value)
		}
		h.Interleave = layout
	case keyFileType:
		if !strings.EqualFold(value, SupportedFileType) {
			return cubeerror.MakeUnsupported(name, value)
		}
		h.FileType = SupportedFileType
	case keyIgnoreValue:
		v, perr := strconv.ParseFloat(value, 64)
		if perr != nil {
			return cubeerror.MakeMalformedNumber(name, value)
		}
		h.IgnoreValue = v
	default:
		return cubeerror.MakeUnsupportedField(name)
	}

	return err
}

////////////////////////////////////////////////////////////////////////////////////////////////////////////
// Writing

// Write - writes the header in a fixed field order. Wavelengths are written with 4 decimal places, which is
// lossy beyond that
func (h Header) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, Magic)
	fmt.Fprintf(bw, "%v = {\n", keyNameDescription)
	description := strings.Join(h.Description, "\n")
	if n := len(h.Description); n > 0 && len(strings.TrimSpace(h.Description[n-1])) <= 0 {
		// A blank line next to the closing brace would be dropped on read
		description += "\n"
	}
	fmt.Fprintf(bw, "%v}\n", description)
	fmt.Fprintf(bw, "%v = %v\n", keyNameSamples, h.Samples)
	fmt.Fprintf(bw, "%v = %v\n", keyNameLines, h.Lines)
	fmt.Fprintf(bw, "%v = %v\n", keyNameBands, h.Bands)
	fmt.Fprintf(bw, "%v = %v\n", keyNameHeaderOffset, h.HeaderOffset)
	fmt.Fprintf(bw, "%v = %v\n", keyNameFileType, SupportedFileType)
	fmt.Fprintf(bw, "%v = %v\n", keyNameDataType, SupportedDataType)
	fmt.Fprintf(bw, "%v = %v\n", keyNameInterleave, h.Interleave)
	fmt.Fprintf(bw, "%v = %v\n", keyNameByteOrder, SupportedByteOrder)
	fmt.Fprintf(bw, "%v = %v\n", keyNameIgnoreValue, strconv.FormatFloat(h.IgnoreValue, 'g', -1, 64))

	if len(h.Wavelengths) > 0 {
		fmt.Fprintf(bw, "%v = {\n", keyNameWavelength)

		rows := []string{}
		for c := 0; c < len(h.Wavelengths); c += wavelengthsPerLine {
			end := c + wavelengthsPerLine
			if end > len(h.Wavelengths) {
				end = len(h.Wavelengths)
			}

			vals := make([]string, 0, end-c)
			for _, wl := range h.Wavelengths[c:end] {
				vals = append(vals, strconv.FormatFloat(wl, 'f', 4, 64))
			}
			rows = append(rows, " "+strings.Join(vals, ", "))
		}

		fmt.Fprintf(bw, "%v}\n", strings.Join(rows, ",\n"))
	}

	return errors.Wrap(bw.Flush(), "failed to write header")
}

// Bytes - the header as written by Write
func (h Header) Bytes() []byte {
	var buf bytes.Buffer
	h.Write(&buf) // Can't fail writing to a buffer
	return buf.Bytes()
}

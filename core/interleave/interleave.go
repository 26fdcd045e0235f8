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

// Reading and writing of the binary payload of a cube. On disk the samples can be stored in one of 3 layouts
// but in memory we always hold them in canonical order, addressed as (line*samples+sample)*bands+band
package interleave

import (
	"encoding/binary"
	"io"
	"math"
	"strings"

	"github.com/pixlise/hypercube/core/cubeerror"
	"github.com/pkg/errors"
)

// Layout - physical nesting order of the line/sample/band axes in the data file
type Layout int

const (
	// BSQ - band sequential: band, then line, then sample. Default if not specified
	BSQ Layout = iota
	// BIL - band interleaved by line: line, then band, then sample
	BIL
	// BIP - band interleaved by pixel: line, then sample, then band
	BIP
)

// BytesPerSample - we only support 32-bit floats
const BytesPerSample = 4

var layoutNames = map[Layout]string{
	BSQ: "bsq",
	BIL: "bil",
	BIP: "bip",
}

func (l Layout) String() string {
	if name, ok := layoutNames[l]; ok {
		return name
	}
	return "unknown"
}

// ParseLayout - case insensitive, returns false if token isn't one of bsq, bil, bip
func ParseLayout(token string) (Layout, bool) {
	token = strings.ToLower(strings.TrimSpace(token))
	for layout, name := range layoutNames {
		if name == token {
			return layout, true
		}
	}
	return BSQ, false
}

// Geometry - everything the codec needs to know about a cube. Has no idea about wavelengths!
type Geometry struct {
	Lines        int
	Samples      int
	Bands        int
	Layout       Layout
	IgnoreValue  float64
	HeaderOffset int
}

// SampleCount - L*S*B
func (g Geometry) SampleCount() int {
	return g.Lines * g.Samples * g.Bands
}

// PayloadSize - minimum data file size for this geometry, in bytes. Saturates at math.MaxInt64 if the
// dimensions are too big to multiply out
func (g Geometry) PayloadSize() int64 {
	size := int64(BytesPerSample)
	for _, n := range []int{g.Lines, g.Samples, g.Bands} {
		if n <= 0 {
			return int64(g.HeaderOffset)
		}
		if size > math.MaxInt64/int64(n) {
			return math.MaxInt64
		}
		size *= int64(n)
	}

	if size > math.MaxInt64-int64(g.HeaderOffset) {
		return math.MaxInt64
	}
	return size + int64(g.HeaderOffset)
}

func (g Geometry) check() error {
	if g.Lines < 0 || g.Samples < 0 || g.Bands < 0 || g.HeaderOffset < 0 {
		return errors.Errorf("invalid cube geometry: lines=%v, samples=%v, bands=%v, header offset=%v", g.Lines, g.Samples, g.Bands, g.HeaderOffset)
	}
	if _, ok := layoutNames[g.Layout]; !ok {
		return cubeerror.MakeUnsupported("interleave", g.Layout.String())
	}
	return nil
}

// visit - calls fn with the canonical index of every sample, in the order they appear on disk for the layout
func visit(g Geometry, fn func(canonicalIdx int)) {
	L, S, B := g.Lines, g.Samples, g.Bands

	switch g.Layout {
	case BIL:
		for line := 0; line < L; line++ {
			for band := 0; band < B; band++ {
				for sample := 0; sample < S; sample++ {
					fn((line*S+sample)*B + band)
				}
			}
		}
	case BIP:
		// Disk order matches canonical order
		n := L * S * B
		for c := 0; c < n; c++ {
			fn(c)
		}
	default:
		for band := 0; band < B; band++ {
			for line := 0; line < L; line++ {
				for sample := 0; sample < S; sample++ {
					fn((line*S+sample)*B + band)
				}
			}
		}
	}
}

// Decode - reads the header padding and all samples out of the raw data file bytes. Any sample bit-equal to the
// ignore value comes back as NaN. Returns TruncatedData if raw is smaller than the geometry requires
func Decode(raw []byte, g Geometry) ([]byte, []float64, error) {
	if err := g.check(); err != nil {
		return nil, nil, err
	}

	required := g.PayloadSize()
	if int64(len(raw)) < required {
		return nil, nil, cubeerror.MakeTruncatedData(required, int64(len(raw)))
	}

	padding := make([]byte, g.HeaderOffset)
	copy(padding, raw[:g.HeaderOffset])

	ignoreBits := math.Float32bits(float32(g.IgnoreValue))
	data := make([]float64, g.SampleCount())
	pos := g.HeaderOffset

	visit(g, func(idx int) {
		bits := binary.LittleEndian.Uint32(raw[pos:])
		pos += BytesPerSample

		if bits == ignoreBits {
			data[idx] = math.NaN()
		} else {
			data[idx] = float64(math.Float32frombits(bits))
		}
	})

	return padding, data, nil
}

// EncodeBytes - builds the full data file contents: header padding followed by the samples in layout order.
// NaN samples are written as the ignore value. Padding is zero-filled or cut to exactly HeaderOffset bytes
func EncodeBytes(padding []byte, data []float64, g Geometry) ([]byte, error) {
	if err := g.check(); err != nil {
		return nil, err
	}

	if g.PayloadSize() == math.MaxInt64 {
		return nil, errors.Errorf("cube too large to encode: %vx%vx%v", g.Lines, g.Samples, g.Bands)
	}

	if len(data) != g.SampleCount() {
		return nil, errors.Errorf("data has %v samples, expected %v for %vx%vx%v cube", len(data), g.SampleCount(), g.Lines, g.Samples, g.Bands)
	}

	result := make([]byte, g.PayloadSize())
	copy(result[:g.HeaderOffset], padding)

	ignore := float32(g.IgnoreValue)
	pos := g.HeaderOffset

	visit(g, func(idx int) {
		v := data[idx]
		f := ignore
		if !math.IsNaN(v) {
			f = float32(v)
		}

		binary.LittleEndian.PutUint32(result[pos:], math.Float32bits(f))
		pos += BytesPerSample
	})

	return result, nil
}

// Encode - as EncodeBytes, but writes to w
func Encode(w io.Writer, padding []byte, data []float64, g Geometry) error {
	b, err := EncodeBytes(padding, data, g)
	if err != nil {
		return err
	}

	_, err = w.Write(b)
	return errors.Wrap(err, "failed to write cube data")
}

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

// Hyperspectral data cube: a lines x samples x bands array of float samples held in memory in canonical order,
// plus the header metadata describing it. Cubes are read from and written to an ENVI style header/data file pair
package cube

import (
	"math"

	"github.com/pixlise/hypercube/core/enviheader"
	"github.com/pixlise/hypercube/core/resample"
	"golang.org/x/exp/slices"
)

// DataCube - header metadata plus the samples. Data is addressed by IndexOf regardless of how it's laid out
// on disk. Missing samples (those equal to the ignore value on disk) are NaN
type DataCube struct {
	enviheader.Header

	// Whatever sat between the start of the data file and the first sample, written back out unchanged
	HeaderPadding []byte

	Data []float64

	resampler *resample.Resampler
}

// NewDataCube - empty cube with header defaults
func NewDataCube() *DataCube {
	return &DataCube{Header: enviheader.New()}
}

// NewMetadataClone - copies scalar metadata, description and header padding of template. Wavelengths and data
// are left empty, the caller fills them in
func NewMetadataClone(template *DataCube) *DataCube {
	if template == nil {
		return NewDataCube()
	}

	result := &DataCube{
		Header:        template.Header,
		HeaderPadding: slices.Clone(template.HeaderPadding),
	}

	result.Description = slices.Clone(template.Description)
	result.Wavelengths = []float64{}
	return result
}

// IndexOf - position of a sample in Data. No bounds checking is done here
func (c *DataCube) IndexOf(line int, sample int, band int) int {
	return (line*c.Samples+sample)*c.Bands + band
}

// IsValid - has dimensions, a wavelength per band and all its data
func (c *DataCube) IsValid() bool {
	return c != nil &&
		c.Lines > 0 && c.Samples > 0 && c.Bands > 0 &&
		len(c.Wavelengths) == c.Bands &&
		len(c.Data) == c.Lines*c.Samples*c.Bands
}

// sampleAt - value at idx, or NaN if the data array doesn't reach that far
func (c *DataCube) sampleAt(idx int) float64 {
	if idx < 0 || idx >= len(c.Data) {
		return math.NaN()
	}
	return c.Data[idx]
}

// NearestBand - index of the band whose wavelength is closest to wavelength. On ties the lower band wins.
// Returns -1 if there are no wavelengths
func (c *DataCube) NearestBand(wavelength float64) int {
	best := -1
	bestDist := math.Inf(1)

	for band, wl := range c.Wavelengths {
		dist := math.Abs(wl - wavelength)
		if best < 0 || dist < bestDist {
			best = band
			bestDist = dist
		}
	}

	return best
}

// BandsInRange - indexes of bands with wavelengths in [from, to], in band order
func (c *DataCube) BandsInRange(from float64, to float64) []int {
	result := []int{}
	for band, wl := range c.Wavelengths {
		if wl >= from && wl <= to {
			result = append(result, band)
		}
	}
	return result
}

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

package cube

import (
	"math"
)

// Pixel - spectrum at line, sample. If the data array is shorter than the cube dimensions claim, values past its
// end come back as NaN rather than failing
func (c *DataCube) Pixel(line int, sample int) Trace {
	result := Trace{
		Wavelengths: append([]float64{}, c.Wavelengths...),
		Values:      make([]float64, len(c.Wavelengths)),
	}

	for band := range c.Wavelengths {
		result.Values[band] = c.sampleAt(c.IndexOf(line, sample, band))
	}

	return result
}

// PixelInRange - spectrum at line, sample for wavelengths in [wlFrom, wlTo]. Missing values are dropped along
// with their wavelength, so the result can be shorter than the number of bands in range
func (c *DataCube) PixelInRange(line int, sample int, wlFrom float64, wlTo float64) Trace {
	result := Trace{Wavelengths: []float64{}, Values: []float64{}}

	for band, wl := range c.Wavelengths {
		if wl < wlFrom || wl > wlTo {
			continue
		}

		v := c.sampleAt(c.IndexOf(line, sample, band))
		if math.IsNaN(v) {
			continue
		}

		result.Wavelengths = append(result.Wavelengths, wl)
		result.Values = append(result.Values, v)
	}

	return result
}

// Slice - all pixels of the band nearest to wavelength. If the cube has no bands the result is not valid
func (c *DataCube) Slice(wavelength float64) Slice {
	band := c.NearestBand(wavelength)
	if band < 0 {
		return Slice{Band: -1, Min: math.NaN(), Max: math.NaN()}
	}

	result := Slice{
		Wavelength: c.Wavelengths[band],
		Band:       band,
		Lines:      c.Lines,
		Samples:    c.Samples,
		Values:     make([]float64, c.Lines*c.Samples),
		Min:        math.NaN(),
		Max:        math.NaN(),
	}

	for line := 0; line < c.Lines; line++ {
		for sample := 0; sample < c.Samples; sample++ {
			v := c.sampleAt(c.IndexOf(line, sample, band))
			result.Values[line*c.Samples+sample] = v

			if math.IsNaN(v) {
				result.MissingCount++
				continue
			}

			if math.IsNaN(result.Min) || v < result.Min {
				result.Min = v
			}
			if math.IsNaN(result.Max) || v > result.Max {
				result.Max = v
			}
		}
	}

	return result
}

// Anything bigger than this we refuse to allocate when cropping/resampling, and return an invalid cube instead
const maxCubeSamples = 1 << 34

func invalidClone(c *DataCube) *DataCube {
	result := NewMetadataClone(c)
	result.Lines = 0
	result.Samples = 0
	result.Bands = 0
	return result
}

// Crop - new cube of lines [lineFrom, lineTo), samples [sampleFrom, sampleTo) and wavelengths within
// [wlFrom, wlTo]. Bad spatial bounds or an empty wavelength selection give back an invalid cube, check IsValid()
func (c *DataCube) Crop(lineFrom int, lineTo int, sampleFrom int, sampleTo int, wlFrom float64, wlTo float64) *DataCube {
	if c == nil {
		return invalidClone(nil)
	}

	bands := c.BandsInRange(wlFrom, wlTo)

	if len(bands) <= 0 ||
		lineFrom < 0 || lineFrom >= lineTo || lineTo > c.Lines ||
		sampleFrom < 0 || sampleFrom >= sampleTo || sampleTo > c.Samples {
		return invalidClone(c)
	}

	lines := lineTo - lineFrom
	samples := sampleTo - sampleFrom
	if int64(lines)*int64(samples)*int64(len(bands)) > maxCubeSamples {
		return invalidClone(c)
	}

	result := NewMetadataClone(c)
	result.Lines = lines
	result.Samples = samples
	result.Bands = len(bands)
	result.Data = make([]float64, 0, lines*samples*len(bands))

	for _, band := range bands {
		result.Wavelengths = append(result.Wavelengths, c.Wavelengths[band])
	}

	for line := lineFrom; line < lineTo; line++ {
		for sample := sampleFrom; sample < sampleTo; sample++ {
			for _, band := range bands {
				result.Data = append(result.Data, c.sampleAt(c.IndexOf(line, sample, band)))
			}
		}
	}

	return result
}

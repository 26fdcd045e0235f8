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
	"github.com/pixlise/hypercube/core/resample"
)

// SetResampler - attaches r, used by ResampledPixel. nil detaches
func (c *DataCube) SetResampler(r *resample.Resampler) {
	c.resampler = r
}

// SetResampleGrid - attaches a resampler onto start, start+step, ... <= stop
func (c *DataCube) SetResampleGrid(start float64, stop float64, step float64) {
	c.resampler = resample.NewRegular(start, stop, step, c.Wavelengths)
}

// SetResampleWavelengths - attaches a resampler onto an arbitrary wavelength list
func (c *DataCube) SetResampleWavelengths(targets []float64) {
	c.resampler = resample.New(targets, c.Wavelengths)
}

// Resampler - what's attached, can be nil
func (c *DataCube) Resampler() *resample.Resampler {
	return c.resampler
}

func (c *DataCube) canResample(r *resample.Resampler) bool {
	return c.IsValid() && !r.IsEmpty() && r.NativeCount() == c.Bands
}

// ResampledPixel - spectrum at line, sample on the attached resampler's grid, read straight from the data array.
// Empty if the cube is invalid or nothing (usable) is attached
func (c *DataCube) ResampledPixel(line int, sample int) Trace {
	return c.ResampledPixelWith(c.resampler, line, sample)
}

// ResampledPixelWith - as ResampledPixel but through r, leaving whatever is attached alone. Cubes shared between
// goroutines should be read this way
func (c *DataCube) ResampledPixelWith(r *resample.Resampler, line int, sample int) Trace {
	if !c.canResample(r) {
		return Trace{Wavelengths: []float64{}, Values: []float64{}}
	}

	return Trace{
		Wavelengths: r.Wavelengths(),
		Values:      r.ResampleAt(c.Data, c.IndexOf(line, sample, 0)),
	}
}

// Resample - a new cube with every pixel resampled through r. The result has r's wavelengths as its bands.
// Invalid cube in, or a resampler built for a different band count, gives an invalid cube out
func (c *DataCube) Resample(r *resample.Resampler) *DataCube {
	if !c.canResample(r) {
		return invalidClone(c)
	}

	if int64(c.Lines)*int64(c.Samples)*int64(r.Len()) > maxCubeSamples {
		return invalidClone(c)
	}

	result := NewMetadataClone(c)
	result.Bands = r.Len()
	result.Wavelengths = r.Wavelengths()
	result.Data = make([]float64, 0, c.Lines*c.Samples*r.Len())

	for line := 0; line < c.Lines; line++ {
		for sample := 0; sample < c.Samples; sample++ {
			result.Data = append(result.Data, r.ResampleAt(c.Data, c.IndexOf(line, sample, 0))...)
		}
	}

	return result
}

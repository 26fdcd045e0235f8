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

// Piecewise-linear resampling of spectra from a cube's native wavelength grid onto any target grid. Targets
// outside the native range are clamped to the end values, never extrapolated
package resample

import (
	"math"
)

// Anything closer than this is considered the same wavelength
const epsilon = 1e-9

// descriptor - how to compute one output value: weighted sum of 1 or 2 native values
type descriptor struct {
	idx    [2]int
	weight [2]float64
	count  int
}

// Resampler - immutable after construction, so safe to share between readers
type Resampler struct {
	targets     []float64
	descriptors []descriptor
	nativeCount int
}

// New - builds a resampler from native wavelengths (ascending) onto targets
func New(targets []float64, native []float64) *Resampler {
	r := &Resampler{
		targets:     append([]float64{}, targets...),
		descriptors: make([]descriptor, 0, len(targets)),
		nativeCount: len(native),
	}

	if len(native) <= 0 {
		return r
	}

	for _, x := range targets {
		r.descriptors = append(r.descriptors, makeDescriptor(x, native))
	}

	return r
}

// NewRegular - target grid of start + k*step for as long as it's <= stop
func NewRegular(start float64, stop float64, step float64, native []float64) *Resampler {
	return New(RegularGrid(start, stop, step), native)
}

// MaxGridLength - longest target grid RegularGrid will generate
const MaxGridLength = 1 << 20

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// RegularGrid - start + k*step while <= stop. Empty if step isn't positive, if any argument isn't finite or if
// the grid would be longer than MaxGridLength
func RegularGrid(start float64, stop float64, step float64) []float64 {
	result := []float64{}
	if !(step > 0) || !isFinite(step) || !isFinite(start) || !isFinite(stop) {
		return result
	}

	if (stop-start)/step >= MaxGridLength {
		return result
	}

	for k := 0; ; k++ {
		x := start + float64(k)*step
		if x > stop {
			break
		}
		result = append(result, x)
	}

	return result
}

func single(idx int) descriptor {
	return descriptor{idx: [2]int{idx, idx}, weight: [2]float64{1, 0}, count: 1}
}

func makeDescriptor(x float64, native []float64) descriptor {
	last := len(native) - 1

	if x < native[0] {
		return single(0)
	}
	if x > native[last] {
		return single(last)
	}

	// Linear scan, first closest wins on ties
	closest := 0
	closestDist := math.Abs(native[0] - x)
	for c := 1; c <= last; c++ {
		dist := math.Abs(native[c] - x)
		if dist < closestDist {
			closest = c
			closestDist = dist
		}
	}

	if closestDist < epsilon {
		return single(closest)
	}

	i0, i1 := closest, closest+1
	if x < native[closest] {
		i0, i1 = closest-1, closest
	}

	if i0 < 0 {
		return single(0)
	}
	if i1 > last {
		return single(last)
	}

	v0, v1 := native[i0], native[i1]
	if math.Abs(v1-v0) < epsilon {
		return descriptor{idx: [2]int{i0, i1}, weight: [2]float64{0.5, 0.5}, count: 2}
	}

	return descriptor{
		idx:    [2]int{i0, i1},
		weight: [2]float64{(v1 - x) / (v1 - v0), (x - v0) / (v1 - v0)},
		count:  2,
	}
}

// Wavelengths - the target grid
func (r *Resampler) Wavelengths() []float64 {
	if r == nil {
		return []float64{}
	}
	return append([]float64{}, r.targets...)
}

// Len - number of target wavelengths we produce values for
func (r *Resampler) Len() int {
	if r == nil {
		return 0
	}
	return len(r.descriptors)
}

// NativeCount - length of spectrum we expect as input
func (r *Resampler) NativeCount() int {
	if r == nil {
		return 0
	}
	return r.nativeCount
}

// IsEmpty - true if this resampler can't produce anything
func (r *Resampler) IsEmpty() bool {
	return r.Len() <= 0
}

// Resample - values is a spectrum on the native grid, returns one value per target wavelength
func (r *Resampler) Resample(values []float64) []float64 {
	return r.ResampleAt(values, 0)
}

// ResampleAt - as Resample, but reads the native spectrum from data starting at offset. This lets us read straight
// out of a cube's backing array where bands are stored contiguously. Reads past the end of data give NaN
func (r *Resampler) ResampleAt(data []float64, offset int) []float64 {
	if r.IsEmpty() {
		return []float64{}
	}

	result := make([]float64, len(r.descriptors))
	for c, d := range r.descriptors {
		sum := 0.0
		for i := 0; i < d.count; i++ {
			pos := offset + d.idx[i]
			if pos < 0 || pos >= len(data) {
				sum = math.NaN()
				break
			}
			sum += d.weight[i] * data[pos]
		}
		result[c] = sum
	}

	return result
}

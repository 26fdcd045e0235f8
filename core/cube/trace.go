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

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Trace - the spectrum at one pixel: a value per wavelength
type Trace struct {
	Wavelengths []float64
	Values      []float64
}

// IsValid - same length wavelengths and values, non-empty, and nothing missing
func (t Trace) IsValid() bool {
	if len(t.Values) <= 0 || len(t.Values) != len(t.Wavelengths) {
		return false
	}
	return !floats.HasNaN(t.Values)
}

func (t Trace) Len() int {
	return len(t.Values)
}

// Min - smallest value, NaN if the trace isn't valid. Same goes for the other stats below
func (t Trace) Min() float64 {
	if !t.IsValid() {
		return math.NaN()
	}
	return floats.Min(t.Values)
}

func (t Trace) Max() float64 {
	if !t.IsValid() {
		return math.NaN()
	}
	return floats.Max(t.Values)
}

func (t Trace) Mean() float64 {
	if !t.IsValid() {
		return math.NaN()
	}
	return stat.Mean(t.Values, nil)
}

// StdDev - sample standard deviation, so needs at least 2 values
func (t Trace) StdDev() float64 {
	if !t.IsValid() || len(t.Values) < 2 {
		return math.NaN()
	}
	return stat.StdDev(t.Values, nil)
}

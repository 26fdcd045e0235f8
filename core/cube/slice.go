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

// Slice - one band across the whole image, Lines x Samples values in row-major order. Min, Max and MissingCount
// are computed when the slice is built. Min and Max are NaN if every value is missing
type Slice struct {
	Wavelength   float64
	Band         int
	Lines        int
	Samples      int
	Values       []float64
	Min          float64
	Max          float64
	MissingCount int
}

// IsValid - backed by a real band and holds a value for every pixel
func (s Slice) IsValid() bool {
	return s.Wavelength > 0 && s.Lines > 0 && s.Samples > 0 && len(s.Values) == s.Lines*s.Samples
}

// At - value at line, sample. No bounds checking
func (s Slice) At(line int, sample int) float64 {
	return s.Values[line*s.Samples+sample]
}

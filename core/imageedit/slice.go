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

package imageedit

import (
	"image"
	"image/color"
	"math"

	"github.com/pixlise/hypercube/core/cube"
)

// SliceToGray16 - one pixel per sample, one row per line. Missing values are black (0), everything else is
// stretched linearly from the slice min (1) to max (65535). A slice where all values are equal is all 65535
func SliceToGray16(s cube.Slice) *image.Gray16 {
	img := image.NewGray16(image.Rect(0, 0, s.Samples, s.Lines))
	if !s.IsValid() {
		return img
	}

	valueRange := s.Max - s.Min

	for line := 0; line < s.Lines; line++ {
		for sample := 0; sample < s.Samples; sample++ {
			v := s.At(line, sample)
			if math.IsNaN(v) {
				continue
			}

			grey := uint16(math.MaxUint16)
			if valueRange > 0 {
				grey = uint16(1 + math.Round((v-s.Min)/valueRange*(math.MaxUint16-1)))
			}

			img.SetGray16(sample, line, color.Gray16{Y: grey})
		}
	}

	return img
}

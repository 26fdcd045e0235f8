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

	"github.com/pixlise/hypercube/core/utils"
	"golang.org/x/image/draw"
)

// MaxScaledWidth - widest (and tallest) image ScaleImage will produce
const MaxScaledWidth = 8192

// ScaleImage - scales to newWidth across, preserving the aspect ratio. Output is 16 bit grey like our slices.
// newWidth <= 0 returns img unchanged, anything over MaxScaledWidth is treated as MaxScaledWidth
func ScaleImage(img image.Image, newWidth int) image.Image {
	bounds := img.Bounds()
	if newWidth <= 0 || bounds.Dx() <= 0 || newWidth == bounds.Dx() {
		return img
	}

	w := utils.Clamp(newWidth, 1, MaxScaledWidth)
	h := int(float64(bounds.Dy())/float64(bounds.Dx())*float64(w) + 0.5)
	h = utils.Clamp(h, 1, MaxScaledWidth)

	dst := image.NewGray16(image.Rect(0, 0, w, h))

	// Nearest neighbour when enlarging so individual samples stay visible, bilinear when shrinking
	var scaler draw.Scaler = draw.ApproxBiLinear
	if w > bounds.Dx() {
		scaler = draw.NearestNeighbor
	}
	scaler.Scale(dst, dst.Rect, img, bounds, draw.Src, nil)

	return dst
}

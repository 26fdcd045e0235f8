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
	"fmt"

	"github.com/pixlise/hypercube/core/resample"
)

func Example_dataCube_ResampledPixel() {
	c := makeTestCube()

	// Nothing attached yet
	p := c.ResampledPixel(0, 0)
	fmt.Printf("%v|%v|%v\n", p.Len(), p.Wavelengths, p.Values)

	c.SetResampleGrid(550, 750, 100)
	p = c.ResampledPixel(0, 0)
	fmt.Printf("%v|%v\n", p.Wavelengths, p.Values)

	p = c.ResampledPixel(1, 2)
	fmt.Printf("%v|%v\n", p.Wavelengths, p.Values)

	// Clamped at both ends, exact hit in the middle
	c.SetResampleWavelengths([]float64{100, 700, 900})
	p = c.ResampledPixel(0, 1)
	fmt.Printf("%v|%v\n", p.Wavelengths, p.Values)

	// Invalid cube gives nothing back even with a resampler
	c.Data = c.Data[:5]
	p = c.ResampledPixel(0, 0)
	fmt.Printf("%v\n", p.Len())

	c = makeTestCube()
	c.SetResampler(nil)
	fmt.Println(c.ResampledPixel(0, 0).Len(), c.Resampler() == nil)

	// Output:
	// 0|[]|[]
	// [550 650 750]|[0.5 1.5 2.5]
	// [550 650 750]|[20.5 21.5 22.5]
	// [100 700 900]|[4 6 7]
	// 0
	// 0 true
}

func Example_dataCube_Resample() {
	c := makeTestCube()

	r := resample.New([]float64{450, 800}, c.Wavelengths)
	out := c.Resample(r)
	fmt.Printf("%v|%vx%vx%v|%v|%v|%v\n", out.IsValid(), out.Lines, out.Samples, out.Bands, out.Wavelengths, out.Data, out.Description)

	// Resampler built for a different number of bands
	out = c.Resample(resample.New([]float64{600}, []float64{1, 2}))
	fmt.Println(out.IsValid(), out.Bands)

	// Empty grid
	out = c.Resample(resample.NewRegular(700, 600, 10, c.Wavelengths))
	fmt.Println(out.IsValid(), out.Bands)

	out = NewDataCube().Resample(r)
	fmt.Println(out.IsValid())

	// Output:
	// true|2x3x2|[450 800]|[0 3 4 7 8 11 12 15 16 19 20 23]|[test cube]
	// false 0
	// false 0
	// false
}

func Example_dataCube_ResampledPixelWith() {
	c := makeTestCube()
	c.SetResampleGrid(550, 750, 100)

	r := resample.New([]float64{600, 750}, c.Wavelengths)
	p := c.ResampledPixelWith(r, 0, 2)
	fmt.Printf("%v|%v\n", p.Wavelengths, p.Values)

	// Attached one is untouched
	fmt.Println(c.Resampler().Wavelengths())

	// Built for a different band count
	r = resample.New([]float64{600}, []float64{500, 600})
	fmt.Println(c.ResampledPixelWith(r, 0, 0).Len())

	// Output:
	// [600 750]|[9 10.5]
	// [550 650 750]
	// 0
}

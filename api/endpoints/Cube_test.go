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

package endpoints

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image/png"
	"net/http"
	"strings"

	"github.com/pixlise/hypercube/core/logger"
	"golang.org/x/image/tiff"
)

func Example_cubeList() {
	svcs := makeTestSvcs(&logger.NullLogger{})
	router := MakeRouter(svcs)

	req, _ := http.NewRequest("GET", "/cubes", nil)
	resp := executeRequest(req, router.Router)
	fmt.Println(resp.Code)
	fmt.Println(strings.TrimSpace(resp.Body.String()))

	req, _ = http.NewRequest("GET", "/cubes?prefix=s", nil)
	resp = executeRequest(req, router.Router)
	fmt.Println(strings.TrimSpace(resp.Body.String()))

	// Output:
	// 200
	// ["bad.hdr","scan.hdr","short.hdr"]
	// ["scan.hdr","short.hdr"]
}

func Example_cubeInfo() {
	svcs := makeTestSvcs(&logger.NullLogger{})
	router := MakeRouter(svcs)

	req, _ := http.NewRequest("GET", "/cube/info?path=scan.hdr", nil)
	resp := executeRequest(req, router.Router)
	fmt.Println(resp.Code, resp.Header().Get("Content-Type"))

	// protojson output spacing isn't stable, so read it back rather than comparing text
	info := map[string]interface{}{}
	err := json.Unmarshal(resp.Body.Bytes(), &info)
	fmt.Println(err)
	fmt.Println(info["path"], info["dataPath"], info["description"])
	fmt.Println(info["lines"], info["samples"], info["bands"], info["interleave"], info["valid"])
	fmt.Println(info["wavelengths"], info["ignoreValue"], info["fileType"])

	// Output:
	// 200 application/json
	// <nil>
	// scan.hdr scan.img [endpoint test cube]
	// 2 3 4 bsq true
	// [500 600 700 800] -1 ENVI Standard
}

func Example_cubeErrors() {
	svcs := makeTestSvcs(&logger.NullLogger{})
	router := MakeRouter(svcs)

	for _, url := range []string{
		"/cube/info",
		"/cube/info?path=nope.hdr",
		"/cube/info?path=bad.hdr",
		"/cube/info?path=short.hdr",
		"/cube/pixel/2/0?path=scan.hdr",
		"/cube/pixel/x/0?path=scan.hdr",
	} {
		req, _ := http.NewRequest("GET", url, nil)
		resp := executeRequest(req, router.Router)
		fmt.Printf("%v|%v\n", resp.Code, strings.TrimSpace(resp.Body.String()))
	}

	// Output:
	// 400|missing parameter: path
	// 404|failed to read header: nope.hdr: cubes/nope.hdr not found
	// 400|failed to parse header: bad.hdr: malformed header: expected ENVI on first line
	// 422|failed to read data file: short.img: data file too small, expected at least 96 bytes, got 4
	// 400|pixel 2,0 is outside cube of 2 lines, 3 samples
	// 400|invalid line: x
}

func Example_cubePixel() {
	svcs := makeTestSvcs(&logger.NullLogger{})
	router := MakeRouter(svcs)

	for _, url := range []string{
		"/cube/pixel/0/1?path=scan.hdr&from=600&to=700",
		"/cube/pixel/1/2?path=scan.hdr&from=750",
		"/cube/pixel/1/0?path=scan.hdr&to=900&from=x",
	} {
		req, _ := http.NewRequest("GET", url, nil)
		resp := executeRequest(req, router.Router)
		fmt.Printf("%v|%v\n", resp.Code, strings.TrimSpace(resp.Body.String()))
	}

	// Whole spectrum, stats depend on the sample std dev formula so just check the values
	req, _ := http.NewRequest("GET", "/cube/pixel/1/2?path=scan.hdr", nil)
	resp := executeRequest(req, router.Router)
	trace := TraceResponse{}
	err := json.Unmarshal(resp.Body.Bytes(), &trace)
	fmt.Println(err, trace.Wavelengths, len(trace.Values), *trace.Values[0], *trace.Values[3], trace.Valid, *trace.Min, *trace.Max, *trace.Mean)

	// Output:
	// 200|{"wavelengths":[600,700],"values":[5,6],"valid":true,"min":5,"max":6,"mean":5.5,"stdDev":0.7071067811865476}
	// 200|{"wavelengths":[800],"values":[23],"valid":true,"min":23,"max":23,"mean":23,"stdDev":null}
	// 400|invalid from: x
	// <nil> [500 600 700 800] 4 20 23 true 20 23 21.5
}

func Example_cubeResampledPixel() {
	svcs := makeTestSvcs(&logger.NullLogger{})
	router := MakeRouter(svcs)

	for _, url := range []string{
		"/cube/resampled/0/0?path=scan.hdr&start=550&stop=750&step=100",
		"/cube/resampled/0/1?path=scan.hdr&wavelengths=700,900",
		"/cube/resampled/0/0?path=scan.hdr&start=550&stop=750&step=0",
		"/cube/resampled/0/0?path=scan.hdr&start=NaN&stop=900&step=1",
		"/cube/resampled/0/0?path=scan.hdr&start=500&stop=inf&step=1",
		"/cube/resampled/0/0?path=scan.hdr&start=0&stop=1e15&step=1e-6",
		"/cube/resampled/0/0?path=scan.hdr&start=550&stop=750",
		"/cube/resampled/0/0?path=scan.hdr&wavelengths=1,,2",
	} {
		req, _ := http.NewRequest("GET", url, nil)
		resp := executeRequest(req, router.Router)
		fmt.Printf("%v|%v\n", resp.Code, strings.TrimSpace(resp.Body.String()))
	}

	// Output:
	// 200|{"wavelengths":[550,650,750],"values":[0.5,1.5,2.5],"valid":true,"min":0.5,"max":2.5,"mean":1.5,"stdDev":1}
	// 200|{"wavelengths":[700,900],"values":[6,7],"valid":true,"min":6,"max":7,"mean":6.5,"stdDev":0.7071067811865476}
	// 400|resample grid is empty
	// 400|resample grid is empty
	// 400|resample grid is empty
	// 400|resample grid is empty
	// 400|missing parameter: step
	// 400|invalid number "" in "1,,2"
}

func Example_cubeSliceStats() {
	svcs := makeTestSvcs(&logger.NullLogger{})
	router := MakeRouter(svcs)

	for _, url := range []string{
		"/cube/slice-stats/640?path=scan.hdr",
		"/cube/slice-stats/650?path=scan.hdr",
		"/cube/slice-stats/abc?path=scan.hdr",
	} {
		req, _ := http.NewRequest("GET", url, nil)
		resp := executeRequest(req, router.Router)
		fmt.Printf("%v|%v\n", resp.Code, strings.TrimSpace(resp.Body.String()))
	}

	// Output:
	// 200|{"wavelength":600,"band":1,"lines":2,"samples":3,"min":1,"max":21,"missingCount":0}
	// 200|{"wavelength":600,"band":1,"lines":2,"samples":3,"min":1,"max":21,"missingCount":0}
	// 400|invalid wavelength: abc
}

func Example_cubeSliceImage() {
	svcs := makeTestSvcs(&logger.NullLogger{})
	router := MakeRouter(svcs)

	req, _ := http.NewRequest("GET", "/cube/slice/700?path=scan.hdr", nil)
	resp := executeRequest(req, router.Router)
	fmt.Println(resp.Code, resp.Header().Get("Content-Type"))
	img, err := png.Decode(bytes.NewReader(resp.Body.Bytes()))
	fmt.Println(err, img.Bounds())

	// Falls back to the middle band
	req, _ = http.NewRequest("GET", "/cube/slice?path=scan.hdr&width=6", nil)
	resp = executeRequest(req, router.Router)
	img, err = png.Decode(bytes.NewReader(resp.Body.Bytes()))
	fmt.Println(resp.Code, err, img.Bounds())

	req, _ = http.NewRequest("GET", "/cube/slice/500?path=scan.hdr&format=tiff", nil)
	resp = executeRequest(req, router.Router)
	fmt.Println(resp.Code, resp.Header().Get("Content-Type"))
	img, err = tiff.Decode(bytes.NewReader(resp.Body.Bytes()))
	fmt.Println(err, img.Bounds())

	for _, url := range []string{
		"/cube/slice/500?path=scan.hdr&format=jpg",
		"/cube/slice/500?path=scan.hdr&width=-3",
	} {
		req, _ = http.NewRequest("GET", url, nil)
		resp = executeRequest(req, router.Router)
		fmt.Printf("%v|%v\n", resp.Code, strings.TrimSpace(resp.Body.String()))
	}

	// Output:
	// 200 image/png
	// <nil> (0,0)-(3,2)
	// 200 <nil> (0,0)-(6,4)
	// 200 image/tiff
	// <nil> (0,0)-(3,2)
	// 400|unsupported image format: jpg
	// 400|invalid width: -3
}

func Example_cubeCrop() {
	log := &logger.MemLogger{}
	log.SetLogLevel(logger.LogInfo)
	svcs := makeTestSvcs(log)
	router := MakeRouter(svcs)

	req, _ := http.NewRequest("POST", "/cube/crop?path=scan.hdr&out=crop/small.hdr&lines=0:1&samples=1:3&wl=600:700", nil)
	resp := executeRequest(req, router.Router)
	fmt.Println(resp.Code)

	info := map[string]interface{}{}
	fmt.Println(json.Unmarshal(resp.Body.Bytes(), &info))
	fmt.Println(info["path"], info["lines"], info["samples"], info["bands"], info["wavelengths"], info["valid"])
	fmt.Println(log.String())

	// Saved cube can now be read back like any other
	req, _ = http.NewRequest("GET", "/cube/pixel/0/1?path=crop/small.hdr", nil)
	resp = executeRequest(req, router.Router)
	fmt.Printf("%v|%v\n", resp.Code, strings.TrimSpace(resp.Body.String()))

	for _, url := range []string{
		"/cube/crop?path=scan.hdr&out=crop/empty.hdr&lines=1:1",
		"/cube/crop?path=scan.hdr&out=crop/notheader.img",
		"/cube/crop?path=scan.hdr&out=crop/x.hdr&wl=900",
		"/cube/crop?path=scan.hdr",
	} {
		req, _ = http.NewRequest("POST", url, nil)
		resp = executeRequest(req, router.Router)
		fmt.Printf("%v|%v\n", resp.Code, strings.TrimSpace(resp.Body.String()))
	}

	// Only POST is routed
	req, _ = http.NewRequest("GET", "/cube/crop?path=scan.hdr&out=crop/small.hdr", nil)
	resp = executeRequest(req, router.Router)
	fmt.Println(resp.Code)

	// Output:
	// 200
	// <nil>
	// crop/small.hdr 1 2 2 [600 700] true
	// INFO: Cropped scan.hdr to crop/small.hdr: 1x2x2
	// 200|{"wavelengths":[600,700],"values":[9,10],"valid":true,"min":9,"max":10,"mean":9.5,"stdDev":0.7071067811865476}
	// 400|crop bounds do not select any data
	// 400|output path must end in .hdr: crop/notheader.img
	// 400|expected range as from:to, got: "900"
	// 400|missing parameter: out
	// 405
}

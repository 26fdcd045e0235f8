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
	"net/http"
	"net/http/httptest"

	"github.com/gorilla/mux"
	"github.com/pixlise/hypercube/api/config"
	"github.com/pixlise/hypercube/api/services"
	"github.com/pixlise/hypercube/core/cube"
	"github.com/pixlise/hypercube/core/fileaccess"
	"github.com/pixlise/hypercube/core/logger"
	"github.com/pixlise/hypercube/core/timestamper"
)

const testCubeRoot = "cubes"

// 2 lines, 3 samples, 4 bands, Data[i] = i
func makeTestCube() *cube.DataCube {
	c := cube.NewDataCube()
	c.Description = []string{"endpoint test cube"}
	c.Lines = 2
	c.Samples = 3
	c.Bands = 4
	c.Wavelengths = []float64{500, 600, 700, 800}
	c.Data = make([]float64, 2*3*4)
	for i := range c.Data {
		c.Data[i] = float64(i)
	}
	return c
}

// Services backed by memory storage holding:
// scan.hdr - the test cube
// bad.hdr - not a header
// short.hdr - valid header, data file too small
func makeTestSvcs(log logger.ILogger) *services.APIServices {
	fs := fileaccess.MakeMemAccess()

	err := makeTestCube().Save(fs, testCubeRoot, "scan.hdr", &logger.NullLogger{})
	if err != nil {
		panic(err)
	}

	fs.WriteObject(testCubeRoot, "bad.hdr", []byte("hello\n"))

	short := makeTestCube()
	fs.WriteObject(testCubeRoot, "short.hdr", short.Header.Bytes())
	fs.WriteObject(testCubeRoot, "short.img", []byte{1, 2, 3, 4})

	cfg := config.CubeAPIConfig{
		EnvironmentName: "unit-test",
		CubeRoot:        testCubeRoot,
		MaxCachedCubes:  4,
	}

	return services.MakeAPIServices(cfg, log, fs, &timestamper.MockTimeNowStamper{})
}

func executeRequest(req *http.Request, router *mux.Router) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

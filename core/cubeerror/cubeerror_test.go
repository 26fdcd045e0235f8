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

package cubeerror

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
)

func Example_errorMessages() {
	fmt.Println(MakeMalformedHeader("expected ENVI on first line"))
	fmt.Println(MakeUnsupportedField("map info"))
	fmt.Println(MakeMalformedNumber("lines", "12x"))
	fmt.Println(MakeUnsupported("data type", "12"))
	fmt.Println(MakeBandCountMismatch(3, 2))
	fmt.Println(MakeTruncatedData(4096, 1000))
	fmt.Println(MakeNonPositiveWavelength("-3.5"))

	// Output:
	// malformed header: expected ENVI on first line
	// unsupported header field: "map info"
	// failed to read number for field "lines", got: "12x"
	// unsupported value for field "data type": "12"
	// band count 3 does not match wavelength count 2
	// data file too small, expected at least 4096 bytes, got 1000
	// wavelength must be positive, got: "-3.5"
}

func Example_kindOf() {
	wrapped := errors.Wrapf(MakeTruncatedData(100, 50), "failed to load %v", "cube.hdr")
	fmt.Println(KindOf(wrapped))
	fmt.Println(wrapped)

	ce, ok := AsCubeError(wrapped)
	fmt.Printf("%v|%v|%v\n", ok, ce.Expected, ce.Actual)

	fmt.Println(KindOf(os.ErrNotExist))
	fmt.Println(KindOf(nil))

	// Output:
	// TruncatedData
	// failed to load cube.hdr: data file too small, expected at least 100 bytes, got 50
	// true|100|50
	// None
	// None
}

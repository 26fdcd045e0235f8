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

package errorwithstatus

import (
	"errors"
	"fmt"

	"github.com/pixlise/hypercube/core/cubeerror"
	pkgerrors "github.com/pkg/errors"
)

func Example_statusForCubeKind() {
	fmt.Println(StatusForCubeKind(cubeerror.MalformedHeader))
	fmt.Println(StatusForCubeKind(cubeerror.BandCountMismatch))
	fmt.Println(StatusForCubeKind(cubeerror.TruncatedData))
	fmt.Println(StatusForCubeKind(cubeerror.KindNone))

	// Output:
	// 400
	// 400
	// 422
	// 500
}

func Example_fromCubeError() {
	notFound := errors.New("no such file")
	isNotFound := func(err error) bool { return pkgerrors.Cause(err) == notFound }

	wrapped := pkgerrors.Wrapf(cubeerror.MakeTruncatedData(96, 40), "failed to read data file: %v", "a.img")
	se := FromCubeError(wrapped, isNotFound)
	fmt.Printf("%v|%v\n", se.Status(), se.Error())

	se = FromCubeError(pkgerrors.Wrap(notFound, "failed to read header: a.hdr"), isNotFound)
	fmt.Printf("%v|%v\n", se.Status(), se.Error())

	se = FromCubeError(MakeBadRequestError(errors.New("bad line")), isNotFound)
	fmt.Printf("%v|%v\n", se.Status(), se.Error())

	se = FromCubeError(errors.New("disk on fire"), nil)
	fmt.Printf("%v|%v\n", se.Status(), se.Error())

	fmt.Println(MakeNotFoundError("cube.hdr"))

	// Output:
	// 422|failed to read data file: a.img: data file too small, expected at least 96 bytes, got 40
	// 404|failed to read header: a.hdr: no such file
	// 400|bad line
	// 500|disk on fire
	// cube.hdr not found
}

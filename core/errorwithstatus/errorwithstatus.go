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
	"fmt"
	"net/http"

	"github.com/pixlise/hypercube/core/cubeerror"
)

// Error represents a handler error. It provides methods for a HTTP status
// code and embeds the built-in error interface.
type Error interface {
	error
	Status() int
}

// StatusError represents an error with an associated HTTP status code.
type StatusError struct {
	Code int
	Err  error
}

func (se StatusError) Error() string {
	return se.Err.Error()
}

// Status - Returns our HTTP status code.
func (se StatusError) Status() int {
	return se.Code
}

func (se StatusError) Unwrap() error {
	return se.Err
}

// Some common errors
func MakeNotFoundError(ID string) StatusError {
	return StatusError{
		Code: http.StatusNotFound,
		Err:  fmt.Errorf("%v not found", ID),
	}
}

func MakeBadRequestError(err error) StatusError {
	return StatusError{
		Code: http.StatusBadRequest,
		Err:  err,
	}
}

// Mainly so we don't get a bunch of errors for not using field names in StatusError{}
func MakeStatusError(code int, err error) StatusError {
	return StatusError{
		Code: code,
		Err:  err,
	}
}

// StatusForCubeKind - what we reply with when a cube can't be read. Anything wrong with the header is the
// caller's problem (bad request), a data file that's too small means the pair is inconsistent
func StatusForCubeKind(kind cubeerror.Kind) int {
	switch kind {
	case cubeerror.MalformedHeader, cubeerror.UnsupportedField, cubeerror.MalformedNumber,
		cubeerror.Unsupported, cubeerror.BandCountMismatch, cubeerror.NonPositiveWavelength:
		return http.StatusBadRequest
	case cubeerror.TruncatedData:
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// FromCubeError - wraps err with a status. isNotFound is asked first so storage misses come back as 404s,
// then the cube error kind decides. Errors that already carry a status are returned as is
func FromCubeError(err error, isNotFound func(error) bool) StatusError {
	if se, ok := err.(StatusError); ok {
		return se
	}

	if isNotFound != nil && isNotFound(err) {
		return MakeStatusError(http.StatusNotFound, err)
	}

	return MakeStatusError(StatusForCubeKind(cubeerror.KindOf(err)), err)
}

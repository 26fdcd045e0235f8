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

package utils

import (
	"fmt"
	"os"
)

// FilesEqual - compares two files byte for byte, error describes the first difference
func FilesEqual(aPath, bPath string) error {
	abytes, err := os.ReadFile(aPath)
	if err != nil {
		return err
	}

	bbytes, err := os.ReadFile(bPath)
	if err != nil {
		return err
	}

	return BytesEqual(aPath, abytes, bPath, bbytes)
}

// BytesEqual - as FilesEqual but for data already in memory, names are only used in the error
func BytesEqual(aName string, a []byte, bName string, b []byte) error {
	if len(a) != len(b) {
		return fmt.Errorf("%v length (%v bytes) does not match %v length (%v bytes)", aName, len(a), bName, len(b))
	}

	for c := range a {
		if a[c] != b[c] {
			return fmt.Errorf("%v differs from %v at idx=%v '%v'!='%v'", aName, bName, c, a[c], b[c])
		}
	}

	return nil
}

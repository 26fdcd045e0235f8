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

package enviheader

import "github.com/pixlise/hypercube/core/cubeerror"

// key - every field the header grammar allows
type key int

const (
	keyDescription key = iota
	keyLines
	keySamples
	keyBands
	keyDataType
	keyInterleave
	keyHeaderOffset
	keyByteOrder
	keyFileType
	keyWavelength
	keyIgnoreValue
)

const (
	keyNameDescription  = "description"
	keyNameLines        = "lines"
	keyNameSamples      = "samples"
	keyNameBands        = "bands"
	keyNameDataType     = "data type"
	keyNameInterleave   = "interleave"
	keyNameHeaderOffset = "header offset"
	keyNameByteOrder    = "byte order"
	keyNameFileType     = "file type"
	keyNameWavelength   = "wavelength"
	keyNameIgnoreValue  = "data ignore value"
)

// lookupKey - name must already be trimmed and lower case
func lookupKey(name string) (key, error) {
	switch name {
	case keyNameDescription:
		return keyDescription, nil
	case keyNameLines:
		return keyLines, nil
	case keyNameSamples:
		return keySamples, nil
	case keyNameBands:
		return keyBands, nil
	case keyNameDataType:
		return keyDataType, nil
	case keyNameInterleave:
		return keyInterleave, nil
	case keyNameHeaderOffset:
		return keyHeaderOffset, nil
	case keyNameByteOrder:
		return keyByteOrder, nil
	case keyNameFileType:
		return keyFileType, nil
	case keyNameWavelength:
		return keyWavelength, nil
	case keyNameIgnoreValue:
		return keyIgnoreValue, nil
	default:
		return -1, cubeerror.MakeUnsupportedField(name)
	}
}

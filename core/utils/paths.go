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
	"path"
	"strings"
)

// ReplaceExtension - swaps the extension on the file name part of p (if any) for ext. ext should include the dot
func ReplaceExtension(p string, ext string) string {
	return TrimExtension(p) + ext
}

// TrimExtension - p without the extension of its last path element
func TrimExtension(p string) string {
	fileExt := path.Ext(p)
	return strings.TrimSuffix(p, fileExt)
}

// HasExtension - case insensitive check of the extension, ext should include the dot
func HasExtension(p string, ext string) bool {
	return strings.EqualFold(path.Ext(p), ext)
}

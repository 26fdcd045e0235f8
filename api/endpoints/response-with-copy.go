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
	"net/http"
	"strconv"
)

// responseWriterWithCopy - Acts like a normal http response writer but stores a copy of the written bytes/status,
// so it can be logged/monitored by a middleware component. Image bodies can be large, so only the first
// maxCopyBytes are kept
type responseWriterWithCopy struct {
	RealWriter   http.ResponseWriter
	Body         *bytes.Buffer
	Status       int
	BytesWritten int
}

const maxCopyBytes = 4096

func (w *responseWriterWithCopy) StatusText() string {
	if w.Status == 0 {
		return "OK"
	}
	return strconv.Itoa(w.Status)
}

// StatusCode - what was sent, 200 if nothing was set explicitly
func (w *responseWriterWithCopy) StatusCode() int {
	if w.Status == 0 {
		return http.StatusOK
	}
	return w.Status
}

func (w *responseWriterWithCopy) Header() http.Header {
	return w.RealWriter.Header()
}

func (w *responseWriterWithCopy) Write(p []byte) (int, error) {
	if room := maxCopyBytes - w.Body.Len(); room > 0 {
		if room > len(p) {
			room = len(p)
		}
		w.Body.Write(p[0:room])
	}

	n, err := w.RealWriter.Write(p)
	w.BytesWritten += n
	return n, err
}

func (w *responseWriterWithCopy) WriteHeader(statusCode int) {
	w.Status = statusCode
	w.RealWriter.WriteHeader(statusCode)
}

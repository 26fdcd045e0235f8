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
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/pixlise/hypercube/api/services"
	"github.com/pixlise/hypercube/core/logger"
)

// How many chars of resp body to display in logs
const bodyTextRespLogLength = 600

// If resp body is longer than the limit, we print this to show it was cut off
const logSnipIndicator = "\n    ---- >8 -------- >8 -------- >8 -------- >8 ----\n"

type LoggerMiddleware struct {
	*services.APIServices
}

func (h *LoggerMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Keep a copy of what we send back so it can be logged
		w2 := &responseWriterWithCopy{RealWriter: w, Body: &bytes.Buffer{}}

		next.ServeHTTP(w2, r)

		// Don't log requests to / as load balancer health checks hit it constantly
		if r.URL.Path == "/" {
			return
		}

		// We only log if we're in debug log level OR we detected an error
		hadError := w2.Status != 0 && w2.Status != http.StatusOK && w2.Status != http.StatusNotModified

		level := logger.LogDebug
		if hadError {
			level = logger.LogError
		}

		if !hadError && h.Log.GetLogLevel() > logger.LogDebug {
			return
		}

		respBodyTxt := ""
		contType := w2.Header().Get("Content-Type")
		if strings.HasPrefix(contType, "image/") {
			respBodyTxt = fmt.Sprintf("%v, %v bytes", contType, w2.BytesWritten)
		} else {
			respBodyTxt = w2.Body.String()
			if len(respBodyTxt) > bodyTextRespLogLength {
				respBodyTxt = respBodyTxt[0:bodyTextRespLogLength] + logSnipIndicator
			}
			respBodyTxt = strings.TrimSpace(respBodyTxt)
		}

		if hadError {
			if hub := sentry.GetHubFromContext(r.Context()); hub != nil {
				hub.WithScope(func(scope *sentry.Scope) {
					scope.SetExtra("method", r.Method)
					for name, values := range r.URL.Query() {
						scope.SetExtra("queryparam"+name, strings.Join(values, "; "))
					}
					hub.CaptureMessage(fmt.Sprintf("API returned %v for %v %v", w2.Status, r.Method, r.URL.Path))
				})
			}
		}

		h.Log.Printf(level, "Request: %v (%v), took: %v, response status: %v, body: %v", r.URL, r.Method, time.Since(start).Round(time.Millisecond), w2.StatusText(), respBodyTxt)
	})
}

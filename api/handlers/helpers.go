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

package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/pixlise/hypercube/api/services"
	"github.com/pixlise/hypercube/core/errorwithstatus"
	"github.com/pixlise/hypercube/core/logger"
)

const HostParamName = "hostname"

// Helper functions for the handlers
func makePathParams(svcs *services.APIServices, r *http.Request) map[string]string {
	// Get path params
	pathParams := mux.Vars(r)
	if pathParams == nil {
		pathParams = map[string]string{}
	}

	queries := r.URL.Query()
	for q, v := range queries {
		if len(v) > 0 {
			pathParams[q] = v[0] // we ignore subsequent ones
		}
	}

	if svcs.Config.EnvironmentName == "local" {
		pathParams[HostParamName] = "http://" + r.Host
	} else {
		pathParams[HostParamName] = "https://" + r.Host
	}

	return pathParams
}

func logHandlerErrors(err error, log logger.ILogger, w http.ResponseWriter, r *http.Request) {
	switch e := err.(type) {
	case errorwithstatus.Error:
		// We can retrieve the status here and write out a specific
		// HTTP status code.
		log.Errorf("Request: %v (%v), Result: status=%v, error=%v", r.URL, r.Method, e.Status(), e)
		http.Error(w, e.Error(), e.Status())
	default:
		log.Errorf("Request: %v (%v), Result: status=%v, error=%v", r.URL, r.Method, http.StatusInternalServerError, e)

		// Any error types we don't specifically look out for default
		// to serving a HTTP 500
		http.Error(w, fmt.Sprintf("%v", e), http.StatusInternalServerError)
	}
}

func toJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// RequiredParam - the named param, or a bad request error if it's missing
func RequiredParam(params map[string]string, name string) (string, error) {
	val, ok := params[name]
	if !ok || len(val) <= 0 {
		return "", errorwithstatus.MakeBadRequestError(fmt.Errorf("missing parameter: %v", name))
	}
	return val, nil
}

// IntParam - the named param as an int, bad request if missing or not a number
func IntParam(params map[string]string, name string) (int, error) {
	val, err := RequiredParam(params, name)
	if err != nil {
		return 0, err
	}

	result, err := strconv.Atoi(val)
	if err != nil {
		return 0, errorwithstatus.MakeBadRequestError(fmt.Errorf("invalid %v: %v", name, val))
	}
	return result, nil
}

// FloatParam - the named param as a float, bad request if missing or not a number
func FloatParam(params map[string]string, name string) (float64, error) {
	val, err := RequiredParam(params, name)
	if err != nil {
		return 0, err
	}

	result, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, errorwithstatus.MakeBadRequestError(fmt.Errorf("invalid %v: %v", name, val))
	}
	return result, nil
}

// OptionalFloatParam - as FloatParam but returns def if the param isn't there
func OptionalFloatParam(params map[string]string, name string, def float64) (float64, error) {
	if len(params[name]) <= 0 {
		return def, nil
	}
	return FloatParam(params, name)
}

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
	"fmt"
	"net/http"

	"github.com/pixlise/hypercube/api/handlers"
	apiRouter "github.com/pixlise/hypercube/api/router"
	"github.com/pixlise/hypercube/api/services"
	"github.com/pixlise/hypercube/core/utils"
	"google.golang.org/protobuf/types/known/structpb"
)

////////////////////////////////////////////////////////////////////////////////////////////////////////////
// Getting component versions

func getAPIVersion() string {
	ver := services.ApiVersion
	if len(services.ApiVersion) <= 0 {
		ver = "(Local build)"
	}

	if len(services.GitHash) > 0 {
		hashEnd := 8
		if len(services.GitHash) < 8 {
			hashEnd = len(services.GitHash)
		}
		ver += "-" + services.GitHash[0:hashEnd]
	}

	return ver
}

func registerVersionHandler(router *apiRouter.ApiObjectRouter) {
	// User goes to root of API, returns HTML
	router.AddGenericHandler("/", http.MethodGet, rootRequest)

	// User requesting version as JSON
	router.AddGenericHandler("/version", http.MethodGet, getVersionJSON)
}

func rootRequest(params handlers.ApiHandlerGenericParams) error {
	params.Writer.Header().Set("Content-Type", "text/html")
	_, err := fmt.Fprintf(params.Writer, "<!DOCTYPE html><html><head><title>Hypercube API</title></head><body><h1>Hypercube API</h1><p>Version %v</p></body></html>", getAPIVersion())
	return err
}

func getVersionJSON(params handlers.ApiHandlerGenericParams) error {
	result, err := structpb.NewStruct(map[string]interface{}{
		"versions": []interface{}{
			map[string]interface{}{"component": "API", "version": getAPIVersion()},
		},
	})
	if err != nil {
		return err
	}

	utils.SendProtoJSON(params.Writer, result)
	return nil
}

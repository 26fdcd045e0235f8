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

package apiRouter

import (
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/gorilla/mux"
	"github.com/pixlise/hypercube/api/config"
	"github.com/pixlise/hypercube/api/handlers"
	"github.com/pixlise/hypercube/api/services"
	"github.com/pixlise/hypercube/core/fileaccess"
	"github.com/pixlise/hypercube/core/logger"
	"github.com/pixlise/hypercube/core/timestamper"
)

func Example_apiObjectRouter() {
	log := &logger.MemLogger{}
	svcs := services.MakeAPIServices(config.CubeAPIConfig{EnvironmentName: "unit-test"}, log, fileaccess.MakeMemAccess(), &timestamper.MockTimeNowStamper{})
	r := NewAPIRouter(svcs, mux.NewRouter())

	r.AddJSONHandler(handlers.MakeEndpointPath("item", "id"), http.MethodGet, func(params handlers.ApiHandlerParams) (interface{}, error) {
		return params.PathParams["id"], nil
	})
	r.AddGenericHandler("/", http.MethodGet, func(params handlers.ApiHandlerGenericParams) error {
		params.Writer.Write([]byte("root"))
		return nil
	})

	// Added twice, second is ignored
	r.AddGenericHandler("/", http.MethodGet, func(params handlers.ApiHandlerGenericParams) error {
		params.Writer.Write([]byte("other"))
		return nil
	})

	fmt.Println(r.GetRoutes())
	fmt.Println(log.String())

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/item/42", nil),
		httptest.NewRequest(http.MethodGet, "/", nil),
		httptest.NewRequest(http.MethodPost, "/", nil),
	} {
		w := httptest.NewRecorder()
		r.Router.ServeHTTP(w, req)
		fmt.Printf("%v|%v", w.Code, w.Body.String())
		fmt.Println()
	}

	// Output:
	// [GET/ GET/item/{id}]
	// ERROR: Path handler already defined for: /, method: GET
	// 200|"42"
	//
	// 200|root
	// 405|
}

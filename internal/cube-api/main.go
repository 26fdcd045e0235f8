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

package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/pixlise/hypercube/api/config"
	"github.com/pixlise/hypercube/api/endpoints"
	"github.com/pixlise/hypercube/api/services"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := loadConfig()

	svcs, err := services.InitAPIServices(cfg)
	if err != nil {
		log.Fatalf("Failed to initialise services: %v", err)
	}

	// This is for prometheus
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		err := http.ListenAndServe(fmt.Sprintf(":%v", cfg.MetricsPort), mux)
		if err != nil {
			svcs.Log.Errorf("Metrics listener stopped: %v", err)
		}
	}()

	router := endpoints.MakeRouter(svcs)
	printRoutes(router.GetRoutes())

	logware := endpoints.LoggerMiddleware{APIServices: svcs}
	promware := endpoints.PrometheusMiddleware

	router.Router.Use(logware.Middleware, promware)

	// Now also log this to the world...
	svcs.Log.Infof("Cube API version \"%v\" started, serving cubes from %v storage: \"%v\"", services.ApiVersion, cfg.StorageType, cfg.CubeRoot)

	log.Fatal(
		http.ListenAndServe(fmt.Sprintf(":%v", cfg.ListenPort),
			handlers.CORS(
				handlers.AllowedHeaders([]string{"X-Requested-With", "Content-Type"}),
				handlers.AllowedMethods([]string{"GET", "POST", "HEAD", "OPTIONS"}),
				handlers.AllowedOrigins([]string{"*"}))(router.Router)))
}

func loadConfig() config.CubeAPIConfig {
	cfg, err := config.Init()
	if err != nil {
		log.Fatalf("Something went wrong with API config. Error: %v\n", err)
	}

	// Show the config
	cfgJSON, err := json.MarshalIndent(cfg, "", "    ")
	if err != nil {
		log.Fatalf("Error trying to display config\n")
	}

	log.Println(string(cfgJSON))
	return cfg
}

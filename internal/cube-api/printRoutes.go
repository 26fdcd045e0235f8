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
	"fmt"
	"strings"
)

// Routes come in as method+path, eg GET/cube/info
func formatRoutes(routes []string) []string {
	methods := []string{"DELETE", "GET", "HEAD", "OPTIONS", "POST", "PUT"}
	result := []string{}

	for _, route := range routes {
		method := ""
		for _, m := range methods {
			if strings.HasPrefix(route, m+"/") {
				method = m
				break
			}
		}

		result = append(result, fmt.Sprintf("%-7v%v", method, route[len(method):]))
	}

	return result
}

func printRoutes(routes []string) {
	fmt.Println("Routes:")
	for _, line := range formatRoutes(routes) {
		fmt.Println(line)
	}
}

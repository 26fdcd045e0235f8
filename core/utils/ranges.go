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
	"strconv"
	"strings"
)

// ParseIntRange - "a:b" into a, b. Both ends must be there
func ParseIntRange(text string) (int, int, error) {
	parts := strings.Split(text, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected range as from:to, got: \"%v\"", text)
	}

	from, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid range start in \"%v\"", text)
	}
	to, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid range end in \"%v\"", text)
	}

	return from, to, nil
}

// ParseFloatList - "a:b:c" or "a,b,c" into numbers, sep says which
func ParseFloatList(text string, sep string) ([]float64, error) {
	result := []float64{}
	for _, part := range strings.Split(text, sep) {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number \"%v\" in \"%v\"", part, text)
		}
		result = append(result, v)
	}
	return result, nil
}

// ParseFloatRange - "from:to" as floats
func ParseFloatRange(text string) (float64, float64, error) {
	vals, err := ParseFloatList(text, ":")
	if err != nil {
		return 0, 0, err
	}
	if len(vals) != 2 {
		return 0, 0, fmt.Errorf("expected range as from:to, got: \"%v\"", text)
	}
	return vals[0], vals[1], nil
}

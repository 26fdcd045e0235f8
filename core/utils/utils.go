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

// Exposes small helpers shared across the cube packages: generic slice/number helpers, path manipulation
// and writing protobuf messages to HTTP responses
package utils

import (
	"math"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Simple Go helper functions
// stuff that you'd expect to be part of the std lib but aren't

func ItemInSlice[T comparable](a T, list []T) bool {
	return slices.Contains(list, a)
}

// GetSortedMapKeys - map keys in ascending order, so output is deterministic
func GetSortedMapKeys[K constraints.Ordered, V any](theMap map[K]V) []K {
	result := make([]K, 0, len(theMap))
	for key := range theMap {
		result = append(result, key)
	}

	slices.Sort(result)
	return result
}

func Clamp[T constraints.Ordered](v T, lo T, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// MinMaxIgnoringNaN - min and max of the non-NaN values. Returns NaN, NaN if there are none
func MinMaxIgnoringNaN[T constraints.Float](values []T) (T, T) {
	min := T(math.NaN())
	max := T(math.NaN())
	found := false

	for _, v := range values {
		if math.IsNaN(float64(v)) {
			continue
		}

		if !found || v < min {
			min = v
		}
		if !found || v > max {
			max = v
		}
		found = true
	}

	return min, max
}

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

package timestamper

import "time"

// ITimeStamper - source of "now". The cube cache orders entries by it, tests queue up values
type ITimeStamper interface {
	GetTimeNowSec() int64
	GetTimeNowMs() int64
}

type UnixTimeNowStamper struct {
}

// GetTimeNowSec - Returns unix time now in seconds
func (ts *UnixTimeNowStamper) GetTimeNowSec() int64 {
	return time.Now().Unix()
}

// GetTimeNowMs - Returns unix time now in milliseconds
func (ts *UnixTimeNowStamper) GetTimeNowMs() int64 {
	return time.Now().UnixMilli()
}

// MockTimeNowStamper - hands out QueuedTimeStamps in order. Once they run out the last one keeps being returned
type MockTimeNowStamper struct {
	QueuedTimeStamps []int64
	last             int64
}

func (ts *MockTimeNowStamper) next() int64 {
	if len(ts.QueuedTimeStamps) > 0 {
		ts.last = ts.QueuedTimeStamps[0]
		ts.QueuedTimeStamps = ts.QueuedTimeStamps[1:]
	}
	return ts.last
}

// GetTimeNowSec - next queued value, treated as seconds
func (ts *MockTimeNowStamper) GetTimeNowSec() int64 {
	return ts.next()
}

// GetTimeNowMs - next queued value, treated as milliseconds
func (ts *MockTimeNowStamper) GetTimeNowMs() int64 {
	return ts.next()
}

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

package logger

import (
	"bytes"
	"encoding/json"
	"fmt"
)

func Example_getLogLevel() {
	for _, name := range []string{"DEBUG", "info", " Error ", "verbose"} {
		level, err := GetLogLevel(name)
		fmt.Printf("%v|%v\n", GetLogLevelName(level), err)
	}

	// Output:
	// DEBUG|<nil>
	// INFO|<nil>
	// ERROR|<nil>
	// INFO|Invalid log level: verbose
}

func Example_memLogger() {
	l := &MemLogger{}
	l.SetLogLevel(LogInfo)

	l.Debugf("not shown %v", 1)
	l.Infof("loaded cube %v", "scan.hdr")
	l.Errorf("failed: %v", "bad header")

	fmt.Println(l.String())

	// Output:
	// INFO: loaded cube scan.hdr
	// ERROR: failed: bad header
}

func Example_plainStdOutLogger() {
	var l ILogger = &PlainStdOutLogger{}
	l.SetLogLevel(LogDebug)
	l.Debugf("bands=%v", 3)
	l.SetLogLevel(LogError)
	l.Infof("hidden")
	l.Errorf("shown")

	// Output:
	// DEBUG: bands=3
	// ERROR: shown
}

func Example_logrusLogger() {
	var buf bytes.Buffer
	l := InitLogrus(&buf, "unit-test", LogInfo, true)
	l.Debugf("hidden")
	l.WithField("request", 7).Infof("slice at %v", 900)

	var line map[string]interface{}
	err := json.Unmarshal(buf.Bytes(), &line)
	fmt.Printf("%v|%v|%v|%v|%v\n", err, line["level"], line["msg"], line["env"], line["request"])

	// Output:
	// <nil>|info|slice at 900|unit-test|7
}

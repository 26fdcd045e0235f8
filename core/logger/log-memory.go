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
	"strings"
	"sync"
)

// MemLogger - keeps lines in memory so tests can check what got logged
type MemLogger struct {
	mutex    sync.Mutex
	logLevel LogLevel
	lines    []string
}

func (l *MemLogger) Printf(level LogLevel, format string, a ...interface{}) {
	if l.logLevel > level {
		return
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.lines = append(l.lines, formatLine(level, format, a...))
}
func (l *MemLogger) Debugf(format string, a ...interface{}) {
	l.Printf(LogDebug, format, a...)
}
func (l *MemLogger) Infof(format string, a ...interface{}) {
	l.Printf(LogInfo, format, a...)
}
func (l *MemLogger) Errorf(format string, a ...interface{}) {
	l.Printf(LogError, format, a...)
}
func (l *MemLogger) SetLogLevel(level LogLevel) {
	l.logLevel = level
}
func (l *MemLogger) GetLogLevel() LogLevel {
	return l.logLevel
}

// Lines - everything logged so far
func (l *MemLogger) Lines() []string {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return append([]string{}, l.lines...)
}

// String - all lines, newline separated
func (l *MemLogger) String() string {
	return strings.Join(l.Lines(), "\n")
}

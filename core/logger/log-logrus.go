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
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// LogrusLogger - used by the API, where log lines get shipped somewhere that wants them structured. Each line
// carries the environment name as a field
type LogrusLogger struct {
	entry    *logrus.Entry
	logLevel LogLevel
}

var toLogrusLevel = map[LogLevel]logrus.Level{
	LogDebug: logrus.DebugLevel,
	LogInfo:  logrus.InfoLevel,
	LogError: logrus.ErrorLevel,
}

// InitLogrus - makes a logger writing to out. JSON output if asJSON, otherwise logrus text format with timestamps
func InitLogrus(out io.Writer, environmentName string, level LogLevel, asJSON bool) *LogrusLogger {
	l := logrus.New()
	l.SetOutput(out)

	if asJSON {
		l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339Nano,
			DisableSorting:  true,
		})
	}

	result := &LogrusLogger{entry: l.WithField("env", environmentName)}
	result.SetLogLevel(level)
	return result
}

func (l *LogrusLogger) Printf(level LogLevel, format string, a ...interface{}) {
	if l.logLevel > level {
		return
	}
	l.entry.Logf(toLogrusLevel[level], format, a...)
}
func (l *LogrusLogger) Debugf(format string, a ...interface{}) {
	l.Printf(LogDebug, format, a...)
}
func (l *LogrusLogger) Infof(format string, a ...interface{}) {
	l.Printf(LogInfo, format, a...)
}
func (l *LogrusLogger) Errorf(format string, a ...interface{}) {
	l.Printf(LogError, format, a...)
}

func (l *LogrusLogger) SetLogLevel(level LogLevel) {
	l.logLevel = level
	l.entry.Logger.SetLevel(toLogrusLevel[level])
}
func (l *LogrusLogger) GetLogLevel() LogLevel {
	return l.logLevel
}

// WithField - a logger that adds a field to every line, eg the request id
func (l *LogrusLogger) WithField(key string, value interface{}) *LogrusLogger {
	return &LogrusLogger{entry: l.entry.WithField(key, value), logLevel: l.logLevel}
}

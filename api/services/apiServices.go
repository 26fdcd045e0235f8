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

package services

import (
	"fmt"
	"os"

	"github.com/getsentry/sentry-go"
	"github.com/pixlise/hypercube/api/config"
	"github.com/pixlise/hypercube/api/cubecache"
	"github.com/pixlise/hypercube/core/awsutil"
	"github.com/pixlise/hypercube/core/fileaccess"
	"github.com/pixlise/hypercube/core/logger"
	"github.com/pixlise/hypercube/core/timestamper"
)

// NOTE: these 2 vars are set during compilation (see Makefile)
var ApiVersion string
var GitHash string

// APIServices contains any services that HTTP handlers would want to use. Instead of globals, handlers get
// this passed in, which makes it easy to swap in mocks for unit tests
type APIServices struct {
	// Configuration read in on startup
	Config config.CubeAPIConfig

	// Default logger
	Log logger.ILogger

	// Anything accessing cube files should use this, rooted at Config.CubeRoot
	FS fileaccess.FileAccess

	// Cubes loaded from FS
	Cubes *cubecache.CubeCache

	// Timestamp retriever - so can be mocked for unit tests
	TimeStamper timestamper.ITimeStamper
}

// MakeAPIServices - wires up services around an already created logger and file access
func MakeAPIServices(cfg config.CubeAPIConfig, log logger.ILogger, fs fileaccess.FileAccess, ts timestamper.ITimeStamper) *APIServices {
	return &APIServices{
		Config:      cfg,
		Log:         log,
		FS:          fs,
		Cubes:       cubecache.New(fs, cfg.CubeRoot, cfg.MaxCachedCubes, log, ts),
		TimeStamper: ts,
	}
}

// MakeLogger - plain stdout when running locally, logrus otherwise (or if JSON was asked for)
func MakeLogger(cfg config.CubeAPIConfig) logger.ILogger {
	if cfg.EnvironmentName == "local" && !cfg.LogJSON {
		l := &logger.StdOutLogger{}
		l.SetLogLevel(cfg.GetLogLevel())
		return l
	}

	return logger.InitLogrus(os.Stdout, cfg.EnvironmentName, cfg.GetLogLevel(), cfg.LogJSON)
}

// MakeFileAccess - storage as configured. S3 needs a session, so this can fail
func MakeFileAccess(cfg config.CubeAPIConfig) (fileaccess.FileAccess, error) {
	switch cfg.StorageType {
	case config.StorageLocal:
		return &fileaccess.FSAccess{}, nil
	case config.StorageS3:
		sess, err := awsutil.GetSessionWithRegion(cfg.AWSRegion)
		if err != nil {
			return nil, fmt.Errorf("failed to create AWS session: %v", err)
		}

		s3svc, err := awsutil.GetS3(sess)
		if err != nil {
			return nil, fmt.Errorf("failed to create AWS S3 service: %v", err)
		}

		return fileaccess.MakeS3Access(s3svc), nil
	}

	return nil, fmt.Errorf("unknown storage type: %v", cfg.StorageType)
}

// InitAPIServices sets up a new APIServices instance from config, including sentry
func InitAPIServices(cfg config.CubeAPIConfig) (*APIServices, error) {
	ourLogger := MakeLogger(cfg)

	fs, err := MakeFileAccess(cfg)
	if err != nil {
		return nil, err
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.SentryEndpoint,
		Environment: cfg.EnvironmentName,
		Release:     ApiVersion,
	}); err != nil {
		ourLogger.Errorf("Sentry initialization failed: %v", err)
	}

	return MakeAPIServices(cfg, ourLogger, fs, &timestamper.UnixTimeNowStamper{}), nil
}

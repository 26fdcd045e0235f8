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

// Cube API configuration as read from JSON/TOML and environment variables
package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pixlise/hypercube/core/logger"
)

const StorageLocal = "local"
const StorageS3 = "s3"

////////////////////////////////////////////////////////////////////////////////////////////////////////////
// Configuration for app

// CubeAPIConfig combines env vars and config file values
type CubeAPIConfig struct {
	EnvironmentName string

	LogLevel string // DEBUG, INFO or ERROR
	LogJSON  bool   // Log lines as JSON, for shipping to a log aggregator

	SentryEndpoint string

	// Where cubes live. For local storage CubeRoot is a directory, for S3 it's the bucket name
	StorageType string
	CubeRoot    string
	AWSRegion   string

	ListenPort  int32
	MetricsPort int32

	// How many loaded cubes we keep in memory
	MaxCachedCubes uint

	// Wavelength to slice at if request doesn't specify one. 0 means the middle band of the cube
	DefaultSliceWavelength float64

	// Width of quick-look images, 0 leaves them at 1 pixel per sample
	QuickLookWidth uint
}

// GetLogLevel - configured log level, INFO if it's not set or not valid
func (c CubeAPIConfig) GetLogLevel() logger.LogLevel {
	level, err := logger.GetLogLevel(c.LogLevel)
	if err != nil {
		return logger.LogInfo
	}
	return level
}

func (c *CubeAPIConfig) applyDefaults() {
	if len(c.EnvironmentName) <= 0 {
		c.EnvironmentName = "local"
	}
	if len(c.StorageType) <= 0 {
		c.StorageType = StorageLocal
	}
	if c.ListenPort <= 0 {
		c.ListenPort = 8080
	}
	if c.MetricsPort <= 0 {
		c.MetricsPort = 2112
	}
	if c.MaxCachedCubes <= 0 {
		c.MaxCachedCubes = 8
	}
}

// Validate - checks things we can't run without
func (c CubeAPIConfig) Validate() error {
	if c.StorageType != StorageLocal && c.StorageType != StorageS3 {
		return fmt.Errorf("invalid StorageType: %v, expected %v or %v", c.StorageType, StorageLocal, StorageS3)
	}
	if c.StorageType == StorageS3 && len(c.CubeRoot) <= 0 {
		return errors.New("CubeRoot must be set to a bucket name for S3 storage")
	}
	if len(c.LogLevel) > 0 {
		if _, err := logger.GetLogLevel(c.LogLevel); err != nil {
			return err
		}
	}
	return nil
}

func NewConfigFromFile(configFilePath string) (CubeAPIConfig, error) {
	var cfg CubeAPIConfig

	fmt.Printf("Loading custom config from: %s\n", configFilePath)
	customConfig, err := os.ReadFile(configFilePath)
	if err != nil {
		return cfg, fmt.Errorf("could not read config file at %s", configFilePath)
	}

	if strings.EqualFold(filepath.Ext(configFilePath), ".toml") {
		return buildConfigFromTOML(customConfig)
	}
	return buildConfig(customConfig)
}

func buildConfig(configJson []byte) (CubeAPIConfig, error) {
	var cfg CubeAPIConfig

	err := json.Unmarshal(configJson, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse custom config: %v", err)
	}

	overrideFromEnv(&cfg)
	cfg.applyDefaults()
	return cfg, nil
}

func buildConfigFromTOML(configToml []byte) (CubeAPIConfig, error) {
	var cfg CubeAPIConfig

	_, err := toml.Decode(string(configToml), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse custom config: %v", err)
	}

	overrideFromEnv(&cfg)
	cfg.applyDefaults()
	return cfg, nil
}

// overrideFromEnv - any field can be overridden by setting PIXLISE_CONFIG_<FieldName>
// NOTE: For []string slices, pass in a comma-separated string
func overrideFromEnv(cfg *CubeAPIConfig) {
	reflection := reflect.ValueOf(cfg).Elem()
	for i := 0; i < reflection.NumField(); i++ {
		fieldName := reflection.Type().Field(i).Name
		field := reflection.Field(i)

		val, present := os.LookupEnv(fmt.Sprintf("PIXLISE_CONFIG_%s", fieldName))
		if !present {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			field.SetString(val)
		case reflect.Slice:
			if field.Type().Elem().Kind() == reflect.String {
				field.Set(reflect.ValueOf(strings.Split(val, ",")))
			}
		case reflect.Int32:
			i, err := strconv.ParseInt(val, 10, 32)
			if err != nil {
				fmt.Printf("Could not cast value PIXLISE_CONFIG_%s=%s to Int\n", fieldName, val)
				continue
			}
			field.SetInt(i)
		case reflect.Uint:
			u, err := strconv.ParseUint(val, 10, 64)
			if err != nil {
				fmt.Printf("Could not cast value PIXLISE_CONFIG_%s=%s to Uint\n", fieldName, val)
				continue
			}
			field.SetUint(u)
		case reflect.Float64:
			f, err := strconv.ParseFloat(val, 64)
			if err != nil {
				fmt.Printf("Could not cast value PIXLISE_CONFIG_%s=%s to Float\n", fieldName, val)
				continue
			}
			field.SetFloat(f)
		case reflect.Bool:
			b, err := strconv.ParseBool(val)
			if err != nil {
				fmt.Printf("Could not cast value PIXLISE_CONFIG_%s=%s to Bool\n", fieldName, val)
				continue
			}
			field.SetBool(b)
		}
	}
}

// Init config, reads -customConfigPath from the command line and loads it
func Init() (CubeAPIConfig, error) {
	configFilePath := flag.String("customConfigPath", "", "Path to the json or toml file holding config for the cube API")
	flag.Parse()

	if configFilePath == nil || len(*configFilePath) <= 0 {
		return CubeAPIConfig{}, errors.New("no configuration provided")
	}

	cfg, err := NewConfigFromFile(*configFilePath)
	if err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

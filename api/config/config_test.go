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

package config

import (
	"fmt"
	"testing"

	"github.com/pixlise/hypercube/core/logger"
)

func Test_InitializeConfigWithFile(t *testing.T) {
	cfg, err := NewConfigFromFile("./example_config.json")
	if err != nil {
		t.Fatalf("Error initializing config: %v", err)
	}
	if cfg.CubeRoot != "cube-data-bucket" {
		t.Errorf("cfg.CubeRoot got %q; want: %q", cfg.CubeRoot, "cube-data-bucket")
	}
	if cfg.ListenPort != 8081 || cfg.MetricsPort != 2112 || cfg.MaxCachedCubes != 3 {
		t.Errorf("unexpected ports/cache size: %v, %v, %v", cfg.ListenPort, cfg.MetricsPort, cfg.MaxCachedCubes)
	}
	if cfg.DefaultSliceWavelength != 850.5 {
		t.Errorf("cfg.DefaultSliceWavelength got %v", cfg.DefaultSliceWavelength)
	}
	if cfg.GetLogLevel() != logger.LogDebug {
		t.Errorf("cfg.GetLogLevel got %v", cfg.GetLogLevel())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
}

func Test_InitializeConfigWithTOMLFile(t *testing.T) {
	cfg, err := NewConfigFromFile("./example_config.toml")
	if err != nil {
		t.Fatalf("Error initializing config: %v", err)
	}
	if cfg.StorageType != StorageLocal || cfg.CubeRoot != "./cubes" || cfg.QuickLookWidth != 512 || !cfg.LogJSON {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.GetLogLevel() != logger.LogError {
		t.Errorf("cfg.GetLogLevel got %v", cfg.GetLogLevel())
	}
}

func Test_OverrideConfigWithEnvVars(t *testing.T) {
	t.Setenv("PIXLISE_CONFIG_CubeRoot", "ENV-SET-Bucket")
	t.Setenv("PIXLISE_CONFIG_MetricsPort", "9100")
	t.Setenv("PIXLISE_CONFIG_MaxCachedCubes", "20")
	t.Setenv("PIXLISE_CONFIG_DefaultSliceWavelength", "700.25")
	t.Setenv("PIXLISE_CONFIG_LogJSON", "true")
	t.Setenv("PIXLISE_CONFIG_ListenPort", "not-a-number")

	cfg, err := NewConfigFromFile("./example_config.json")
	if err != nil {
		t.Fatalf("Error initializing config: %v", err)
	}
	if cfg.CubeRoot != "ENV-SET-Bucket" {
		t.Errorf("cfg.CubeRoot got %q", cfg.CubeRoot)
	}
	if cfg.MetricsPort != 9100 || cfg.MaxCachedCubes != 20 || cfg.DefaultSliceWavelength != 700.25 || !cfg.LogJSON {
		t.Errorf("env overrides not applied: %+v", cfg)
	}

	// Bad value leaves the file value alone
	if cfg.ListenPort != 8081 {
		t.Errorf("cfg.ListenPort got %v", cfg.ListenPort)
	}
}

func Example_validate() {
	cfg, _ := buildConfig([]byte(`{}`))
	fmt.Printf("%v|%v|%v|%v|%v\n", cfg.EnvironmentName, cfg.StorageType, cfg.ListenPort, cfg.MaxCachedCubes, cfg.Validate())

	cfg.StorageType = "ftp"
	fmt.Println(cfg.Validate())

	cfg.StorageType = StorageS3
	fmt.Println(cfg.Validate())

	cfg.CubeRoot = "bucket"
	cfg.LogLevel = "LOUD"
	fmt.Println(cfg.Validate(), cfg.GetLogLevel() == logger.LogInfo)

	_, err := buildConfig([]byte(`{"ListenPort": "abc"}`))
	fmt.Println(err != nil)

	// Output:
	// local|local|8080|8|<nil>
	// invalid StorageType: ftp, expected local or s3
	// CubeRoot must be set to a bucket name for S3 storage
	// Invalid log level: LOUD true
	// true
}

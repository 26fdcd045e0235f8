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
	"strconv"

	"github.com/pixlise/hypercube/core/cube"
	"github.com/pixlise/hypercube/core/fileaccess"
	"github.com/pixlise/hypercube/core/imageedit"
	"github.com/pixlise/hypercube/core/logger"
	"github.com/pixlise/hypercube/core/utils"
	"github.com/pkg/errors"
)

const quickLookSuffix = "-quicklook.png"

// quickLookConfig - read from the lambda environment
type quickLookConfig struct {
	// 0 means middle band
	Wavelength float64
	// 0 means one pixel per sample
	Width           int
	EnvironmentName string
	LogLevel        logger.LogLevel
	SentryDSN       string
}

func readQuickLookConfig(getenv func(string) string) (quickLookConfig, error) {
	cfg := quickLookConfig{EnvironmentName: getenv("ENVIRONMENT_NAME"), LogLevel: logger.LogInfo, SentryDSN: getenv("SENTRY_DSN")}
	var err error

	if s := getenv("QUICKLOOK_WAVELENGTH"); len(s) > 0 {
		cfg.Wavelength, err = strconv.ParseFloat(s, 64)
		if err != nil || cfg.Wavelength <= 0 {
			return cfg, fmt.Errorf("invalid QUICKLOOK_WAVELENGTH: %v", s)
		}
	}

	if s := getenv("QUICKLOOK_WIDTH"); len(s) > 0 {
		cfg.Width, err = strconv.Atoi(s)
		if err != nil || cfg.Width < 0 {
			return cfg, fmt.Errorf("invalid QUICKLOOK_WIDTH: %v", s)
		}
	}

	if s := getenv("LOG_LEVEL"); len(s) > 0 {
		cfg.LogLevel, err = logger.GetLogLevel(s)
		if err != nil {
			return cfg, err
		}
	}

	return cfg, nil
}

// quickLookPath - where the image for a header goes: scans/cube.hdr -> scans/cube-quicklook.png
func quickLookPath(headerKey string) string {
	return utils.TrimExtension(headerKey) + quickLookSuffix
}

type quickLookMaker struct {
	fs  fileaccess.FileAccess
	log logger.ILogger
	cfg quickLookConfig
}

// makeQuickLook - renders the cube at bucket/headerKey and writes the image next to it. Returns the key written,
// or "" if headerKey isn't a cube header
func (m quickLookMaker) makeQuickLook(bucket string, headerKey string) (string, error) {
	if !utils.HasExtension(headerKey, cube.HeaderFileExtension) {
		m.log.Infof("Skipping %v/%v, not a cube header", bucket, headerKey)
		return "", nil
	}

	c, err := cube.Load(m.fs, bucket, headerKey, m.log)
	if err != nil {
		return "", err
	}

	wavelength := m.cfg.Wavelength
	if wavelength <= 0 && len(c.Wavelengths) > 0 {
		wavelength = c.Wavelengths[len(c.Wavelengths)/2]
	}

	slice := c.Slice(wavelength)
	if !slice.IsValid() {
		return "", fmt.Errorf("cube %v/%v has no valid slice at wavelength %v", bucket, headerKey, wavelength)
	}

	img := imageedit.ScaleImage(imageedit.SliceToGray16(slice), m.cfg.Width)
	imgBytes, err := imageedit.GetImageBytes(img, imageedit.FormatPNG)
	if err != nil {
		return "", errors.Wrapf(err, "failed to encode quick-look for %v", headerKey)
	}

	outKey := quickLookPath(headerKey)
	err = m.fs.WriteObject(bucket, outKey, imgBytes)
	if err != nil {
		return "", errors.Wrapf(err, "failed to write quick-look %v/%v", bucket, outKey)
	}

	m.log.Infof("Wrote %v/%v from band %v (%v), %v missing pixels", bucket, outKey, slice.Band, slice.Wavelength, slice.MissingCount)
	return outKey, nil
}

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
	"io"
	"os"

	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/pixlise/hypercube/core/awsutil"
	"github.com/pixlise/hypercube/core/fileaccess"
	"github.com/pixlise/hypercube/core/logger"
	"github.com/spf13/cobra"
)

// What commands need to run. Tests swap in a memory logger, a buffer and a mock S3 client
type toolEnv struct {
	log    logger.ILogger
	out    io.Writer
	s3Api  s3iface.S3API
	region string
}

// resolve - file access, root and relative path for a local path or an s3://bucket/key url
func (env *toolEnv) resolve(p string) (fileaccess.FileAccess, string, string, error) {
	if !fileaccess.IsS3Url(p) {
		return &fileaccess.FSAccess{}, "", p, nil
	}

	bucket, key, err := fileaccess.SplitS3Url(p)
	if err != nil {
		return nil, "", "", err
	}

	if env.s3Api == nil {
		sess, err := awsutil.GetSessionWithRegion(env.region)
		if err != nil {
			return nil, "", "", fmt.Errorf("AWS GetSession failed: %v", err)
		}

		env.s3Api, err = awsutil.GetS3(sess)
		if err != nil {
			return nil, "", "", fmt.Errorf("AWS GetS3 failed: %v", err)
		}
	}

	return fileaccess.MakeS3Access(env.s3Api), bucket, key, nil
}

func newRootCmd(env *toolEnv) *cobra.Command {
	logLevel := ""

	root := &cobra.Command{
		Use:           "cube-tool",
		Short:         "Inspect and transform hyperspectral cubes",
		Long:          "Reads ENVI style header/data file pairs from local disk or S3 (s3://bucket/key.hdr) and writes cubes or slice images back.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if len(logLevel) <= 0 {
				return nil
			}

			level, err := logger.GetLogLevel(logLevel)
			if err != nil {
				return err
			}
			env.log.SetLogLevel(level)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: DEBUG, INFO or ERROR")
	root.PersistentFlags().StringVar(&env.region, "region", env.region, "AWS region for s3:// paths")

	root.AddCommand(
		newInfoCmd(env),
		newCropCmd(env),
		newResampleCmd(env),
		newSliceCmd(env),
		newConvertCmd(env),
	)

	return root
}

func main() {
	ilog := &logger.StdErrLogger{}
	ilog.SetLogLevel(logger.LogInfo)

	env := &toolEnv{log: ilog, out: os.Stdout}

	if err := newRootCmd(env).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

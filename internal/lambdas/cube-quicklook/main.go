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
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/getsentry/sentry-go"
	"github.com/pixlise/hypercube/core/awsutil"
	"github.com/pixlise/hypercube/core/fileaccess"
	"github.com/pixlise/hypercube/core/logger"
)

// processEvent - makes a quick-look for every header in the event. One failure doesn't stop the rest, all errors
// are reported at the end
func processEvent(maker quickLookMaker, event awsutil.Event) (string, error) {
	written := []string{}
	failures := []string{}

	for _, obj := range event.Objects {
		outKey, err := maker.makeQuickLook(obj.Bucket, obj.Key)
		if err != nil {
			maker.log.Errorf("Quick-look for %v/%v failed: %v", obj.Bucket, obj.Key, err)
			failures = append(failures, fmt.Sprintf("%v/%v: %v", obj.Bucket, obj.Key, err))
			continue
		}

		if len(outKey) > 0 {
			written = append(written, obj.Bucket+"/"+outKey)
		}
	}

	if len(failures) > 0 {
		return "", fmt.Errorf("%v of %v quick-looks failed: %v", len(failures), len(event.Objects), strings.Join(failures, "; "))
	}

	return fmt.Sprintf("Wrote %v quick-look(s): %v", len(written), strings.Join(written, ", ")), nil
}

func HandleRequest(ctx context.Context, event awsutil.Event) (string, error) {
	cfg, err := readQuickLookConfig(os.Getenv)
	if err != nil {
		return "", err
	}

	ilog := logger.InitLogrus(os.Stdout, cfg.EnvironmentName, cfg.LogLevel, true).WithField("source", event.Source)

	sess, err := awsutil.GetSession()
	if err != nil {
		return "", fmt.Errorf("AWS GetSession failed: %v", err)
	}

	s3svc, err := awsutil.GetS3(sess)
	if err != nil {
		return "", fmt.Errorf("AWS GetS3 failed: %v", err)
	}

	maker := quickLookMaker{fs: fileaccess.MakeS3Access(s3svc), log: ilog, cfg: cfg}

	result, err := processEvent(maker, event)
	if err != nil {
		sentry.CaptureException(err)
		sentry.Flush(2 * time.Second)
	}
	return result, err
}

func main() {
	cfg, err := readQuickLookConfig(os.Getenv)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if len(cfg.SentryDSN) > 0 {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.SentryDSN,
			Environment: cfg.EnvironmentName,
		}); err != nil {
			log.Printf("Sentry initialization failed: %v", err)
		}
	}

	lambda.Start(HandleRequest)
}

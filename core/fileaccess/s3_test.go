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

package fileaccess

import (
	"bytes"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/pixlise/hypercube/core/awsutil"
)

func Example_s3ListingWithContinuation() {
	const bucket = "cube-data"
	const listPath = "Cubes/"

	var mockS3 awsutil.MockS3Client
	defer mockS3.FinishTest()

	mockS3.ExpListObjectsV2Input = []s3.ListObjectsV2Input{
		{
			Bucket: aws.String(bucket), Prefix: aws.String(listPath),
		},
		{
			Bucket: aws.String(bucket), Prefix: aws.String(listPath), ContinuationToken: aws.String("cont-1"),
		},
	}
	mockS3.QueuedListObjectsV2Output = []*s3.ListObjectsV2Output{
		{
			IsTruncated:           aws.Bool(true),
			NextContinuationToken: aws.String("cont-1"),
			Contents: []*s3.Object{
				{Key: aws.String("Cubes/sol93/")},
				{Key: aws.String("Cubes/sol93/scan.hdr")},
				{Key: aws.String("Cubes/sol93/scan.img")},
			},
		},
		{
			IsTruncated: aws.Bool(false),
			Contents: []*s3.Object{
				{Key: aws.String("Cubes/sol94/scan.hdr")},
			},
		},
	}

	fs := MakeS3Access(&mockS3)
	list, err := fs.ListObjects(bucket, listPath)
	fmt.Printf("%v, list: %v\n", err, list)

	// Output:
	// <nil>, list: [Cubes/sol93/scan.hdr Cubes/sol93/scan.img Cubes/sol94/scan.hdr]
}

func Example_s3ReadWriteExists() {
	const bucket = "cube-data"

	var mockS3 awsutil.MockS3Client
	defer mockS3.FinishTest()

	mockS3.ExpHeadObjectInput = []s3.HeadObjectInput{
		{Bucket: aws.String(bucket), Key: aws.String("a.hdr")},
		{Bucket: aws.String(bucket), Key: aws.String("b.hdr")},
	}
	mockS3.QueuedHeadObjectOutput = []*s3.HeadObjectOutput{
		{},
		nil,
	}

	mockS3.ExpGetObjectInput = []s3.GetObjectInput{
		{Bucket: aws.String(bucket), Key: aws.String("a.hdr")},
		{Bucket: aws.String(bucket), Key: aws.String("b.hdr")},
	}
	mockS3.QueuedGetObjectOutput = []*s3.GetObjectOutput{
		{Body: io.NopCloser(bytes.NewReader([]byte("ENVI\n")))},
		nil,
	}

	mockS3.ExpPutObjectInput = []s3.PutObjectInput{
		{Bucket: aws.String(bucket), Key: aws.String("c.img"), Body: bytes.NewReader([]byte{1, 2, 3})},
	}
	mockS3.QueuedPutObjectOutput = []*s3.PutObjectOutput{
		{},
	}

	fs := MakeS3Access(&mockS3)

	exists, err := fs.ObjectExists(bucket, "a.hdr")
	fmt.Printf("a exists: %v|%v\n", exists, err)
	exists, err = fs.ObjectExists(bucket, "b.hdr")
	fmt.Printf("b exists: %v|%v\n", exists, err)

	data, err := fs.ReadObject(bucket, "a.hdr")
	fmt.Printf("a: %v|%q\n", err, string(data))
	_, err = fs.ReadObject(bucket, "b.hdr")
	fmt.Printf("b not found: %v\n", fs.IsNotFoundError(err))

	fmt.Printf("c write: %v\n", fs.WriteObject(bucket, "c.img", []byte{1, 2, 3}))

	// Output:
	// a exists: true|<nil>
	// b exists: false|<nil>
	// a: <nil>|"ENVI\n"
	// b not found: true
	// c write: <nil>
}

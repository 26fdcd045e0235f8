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

package awsutil

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

// MockS3Client - mock S3 client for unit tests. Don't forget to call FinishTest() at the end of your test to check
// that all calls to S3 were made, and there were no unexpected calls!
type MockS3Client struct {
	mutex sync.Mutex

	s3iface.S3API

	// Expected requests
	ExpListObjectsV2Input []s3.ListObjectsV2Input
	ExpHeadObjectInput    []s3.HeadObjectInput
	ExpGetObjectInput     []s3.GetObjectInput
	ExpPutObjectInput     []s3.PutObjectInput
	ExpDeleteObjectInput  []s3.DeleteObjectInput
	ExpCopyObjectInput    []s3.CopyObjectInput

	// Responses replayed as each request comes in. A nil entry makes the call fail
	QueuedListObjectsV2Output []*s3.ListObjectsV2Output
	QueuedHeadObjectOutput    []*s3.HeadObjectOutput
	QueuedGetObjectOutput     []*s3.GetObjectOutput
	QueuedPutObjectOutput     []*s3.PutObjectOutput
	QueuedDeleteObjectOutput  []*s3.DeleteObjectOutput
	QueuedCopyObjectOutput    []*s3.CopyObjectOutput

	AllowGetInAnyOrder bool
}

const ErrNoMoreInputsExpected = "No more inputs expected for "
const ErrWrongInput = "Wrong input for "
const ErrNothingToReturn = "Nothing to return from "
const ErrReturningError = "Returning error from "

// NOTE: This function MUST be called at the end of a unit test/example test. Use defer when declaring MockS3Client!
func (m *MockS3Client) FinishTest() error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	err := m.getFinishTestResult()

	// Print so example tests see it in their output
	if err != nil {
		fmt.Println(err)
	}

	return err
}

func (m *MockS3Client) getFinishTestResult() error {
	remaining := []struct {
		name    string
		inputs  int
		outputs int
	}{
		{"ListObjectsV2", len(m.ExpListObjectsV2Input), len(m.QueuedListObjectsV2Output)},
		{"HeadObject", len(m.ExpHeadObjectInput), len(m.QueuedHeadObjectOutput)},
		{"GetObject", len(m.ExpGetObjectInput), len(m.QueuedGetObjectOutput)},
		{"PutObject", len(m.ExpPutObjectInput), len(m.QueuedPutObjectOutput)},
		{"DeleteObject", len(m.ExpDeleteObjectInput), len(m.QueuedDeleteObjectOutput)},
		{"CopyObject", len(m.ExpCopyObjectInput), len(m.QueuedCopyObjectOutput)},
	}

	for _, r := range remaining {
		if r.inputs > 0 {
			return fmt.Errorf("Test expected more %v calls to func", r.name)
		}
		if r.outputs > 0 {
			return fmt.Errorf("Remaining output %v for func", r.name)
		}
	}

	return nil
}

// Anything with a String() func, which all the s3 input structs have
type stringer interface {
	String() string
}

// popExpected - checks input against the next expected item (or any expected item if anyOrder is set) and returns
// the output queued at the same position. Both lists have the matched item removed
func popExpected[In stringer, Out any](name string, input In, expList *[]In, outputs *[]*Out, anyOrder bool) (*Out, error) {
	if len(*expList) <= 0 {
		return nil, errors.New(ErrNoMoreInputsExpected + name)
	}

	inpStr := input.String()
	idx := 0
	if anyOrder {
		for c, exp := range *expList {
			if exp.String() == inpStr {
				idx = c
				break
			}
		}
	}

	expStr := (*expList)[idx].String()
	*expList = append((*expList)[:idx], (*expList)[idx+1:]...)

	if expStr != inpStr {
		return nil, fmt.Errorf("%v expected: \"%v\" S3 recvd: \"%v\"\n", ErrWrongInput+name, expStr, inpStr)
	}

	if idx >= len(*outputs) {
		return nil, errors.New(ErrNothingToReturn + name)
	}

	result := (*outputs)[idx]
	*outputs = append((*outputs)[:idx], (*outputs)[idx+1:]...)
	return result, nil
}

func (m *MockS3Client) ListObjectsV2(input *s3.ListObjectsV2Input) (*s3.ListObjectsV2Output, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	name := "ListObjectsV2"
	result, err := popExpected(name, *input, &m.ExpListObjectsV2Input, &m.QueuedListObjectsV2Output, false)
	if err == nil && result == nil {
		err = errors.New(ErrReturningError + name)
	}
	return result, err
}

func (m *MockS3Client) HeadObject(input *s3.HeadObjectInput) (*s3.HeadObjectOutput, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	name := "HeadObject"
	result, err := popExpected(name, *input, &m.ExpHeadObjectInput, &m.QueuedHeadObjectOutput, false)
	if err == nil && result == nil {
		// What S3 really says for a missing key on a HEAD request
		err = awserr.New("NotFound", ErrReturningError+name, nil)
	}
	return result, err
}

func (m *MockS3Client) GetObject(input *s3.GetObjectInput) (*s3.GetObjectOutput, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	name := "GetObject"
	result, err := popExpected(name, *input, &m.ExpGetObjectInput, &m.QueuedGetObjectOutput, m.AllowGetInAnyOrder)
	if err == nil && result == nil {
		err = awserr.New(s3.ErrCodeNoSuchKey, ErrReturningError+name, nil)
	}
	return result, err
}

// PutObject - the body is a reader, so String() doesn't show it. We check bucket and key, then compare body bytes
func (m *MockS3Client) PutObject(input *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	name := "PutObject"
	if len(m.ExpPutObjectInput) <= 0 {
		return nil, errors.New(ErrNoMoreInputsExpected + name)
	}

	expItem := m.ExpPutObjectInput[0]
	m.ExpPutObjectInput = m.ExpPutObjectInput[1:]

	if *input.Bucket != *expItem.Bucket || *input.Key != *expItem.Key {
		return nil, fmt.Errorf("%v expected: \"%v/%v\" S3 recvd: \"%v/%v\"\n", ErrWrongInput+name, *expItem.Bucket, *expItem.Key, *input.Bucket, *input.Key)
	}

	expBody := readAll(expItem.Body)
	inpBody := readAll(input.Body)
	if !bytes.Equal(expBody, inpBody) {
		return nil, fmt.Errorf("%v %v - body expected %v bytes, S3 recvd %v bytes\n", ErrWrongInput+name, *input.Key, len(expBody), len(inpBody))
	}

	if len(m.QueuedPutObjectOutput) <= 0 {
		return nil, errors.New(ErrNothingToReturn + name)
	}

	result := m.QueuedPutObjectOutput[0]
	m.QueuedPutObjectOutput = m.QueuedPutObjectOutput[1:]

	if result == nil {
		return nil, errors.New(ErrReturningError + name)
	}
	return result, nil
}

func (m *MockS3Client) DeleteObject(input *s3.DeleteObjectInput) (*s3.DeleteObjectOutput, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	name := "DeleteObject"
	result, err := popExpected(name, *input, &m.ExpDeleteObjectInput, &m.QueuedDeleteObjectOutput, false)
	if err == nil && result == nil {
		err = awserr.New(s3.ErrCodeNoSuchKey, ErrReturningError+name, nil)
	}
	return result, err
}

func (m *MockS3Client) CopyObject(input *s3.CopyObjectInput) (*s3.CopyObjectOutput, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	name := "CopyObject"
	result, err := popExpected(name, *input, &m.ExpCopyObjectInput, &m.QueuedCopyObjectOutput, false)
	if err == nil && result == nil {
		err = awserr.New(s3.ErrCodeNoSuchKey, ErrReturningError+name, nil)
	}
	return result, err
}

func readAll(r io.ReadSeeker) []byte {
	if r == nil {
		return nil
	}
	r.Seek(0, io.SeekStart)
	data, err := io.ReadAll(r)
	if err != nil {
		return nil
	}
	return data
}

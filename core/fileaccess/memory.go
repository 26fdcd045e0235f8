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
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// In-memory implementation of file access, used in unit tests and anywhere we want to build cubes without
// touching a disk
type MemAccess struct {
	mutex   sync.Mutex
	objects map[string][]byte
}

type memNotFoundError struct {
	bucket string
	path   string
}

func (e memNotFoundError) Error() string {
	return fmt.Sprintf("%v/%v not found", e.bucket, e.path)
}

func MakeMemAccess() *MemAccess {
	return &MemAccess{objects: map[string][]byte{}}
}

func memKey(bucket string, path string) string {
	return bucket + "|" + path
}

func (m *MemAccess) ListObjects(bucket string, prefix string) ([]string, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	result := []string{}
	keyPrefix := memKey(bucket, prefix)
	for k := range m.objects {
		if strings.HasPrefix(k, keyPrefix) {
			result = append(result, k[len(bucket)+1:])
		}
	}

	sort.Strings(result)
	return result, nil
}

func (m *MemAccess) ObjectExists(bucket string, path string) (bool, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	_, ok := m.objects[memKey(bucket, path)]
	return ok, nil
}

func (m *MemAccess) ReadObject(bucket string, path string) ([]byte, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	data, ok := m.objects[memKey(bucket, path)]
	if !ok {
		return nil, memNotFoundError{bucket, path}
	}
	return append([]byte{}, data...), nil
}

func (m *MemAccess) WriteObject(bucket string, path string, data []byte) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.objects == nil {
		m.objects = map[string][]byte{}
	}
	m.objects[memKey(bucket, path)] = append([]byte{}, data...)
	return nil
}

func (m *MemAccess) DeleteObject(bucket string, path string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	k := memKey(bucket, path)
	if _, ok := m.objects[k]; !ok {
		return memNotFoundError{bucket, path}
	}
	delete(m.objects, k)
	return nil
}

func (m *MemAccess) CopyObject(srcBucket string, srcPath string, dstBucket string, dstPath string) error {
	data, err := m.ReadObject(srcBucket, srcPath)
	if err != nil {
		return err
	}
	return m.WriteObject(dstBucket, dstPath, data)
}

// IsNotFoundError - also sees through errors wrapped with github.com/pkg/errors
func (m *MemAccess) IsNotFoundError(err error) bool {
	_, ok := errors.Cause(err).(memNotFoundError)
	return ok
}

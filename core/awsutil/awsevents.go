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
	"encoding/json"
	"net/url"

	"github.com/aws/aws-lambda-go/events"
	"github.com/pkg/errors"
)

type eventType int

const (
	unknownEventType eventType = iota
	s3EventType
	sqsEventType
)

// ObjectRef - an object that an event told us about
type ObjectRef struct {
	Bucket string
	Key    string
}

// Event - what our lambdas receive. Can arrive directly from S3 or via an SQS queue that S3 notifies, either way
// we end up with the list of objects that were written
type Event struct {
	Source  string
	Objects []ObjectRef
}

// getEventType - Read the event source of the first record
func getEventType(data []byte) eventType {
	var temp struct {
		Records []map[string]interface{}
	}
	if err := json.Unmarshal(data, &temp); err != nil || len(temp.Records) <= 0 {
		return unknownEventType
	}

	record := temp.Records[0]
	eventSource, _ := record["eventSource"].(string)
	if len(eventSource) <= 0 {
		// SQS capitalises it differently depending on who built the message
		eventSource, _ = record["EventSource"].(string)
	}

	switch eventSource {
	case "aws:s3":
		return s3EventType
	case "aws:sqs":
		return sqsEventType
	}

	return unknownEventType
}

func (event *Event) addS3Records(s3Event *events.S3Event) error {
	for _, s3Record := range s3Event.Records {
		// Keys arrive URL encoded (spaces as +)
		key, err := url.QueryUnescape(s3Record.S3.Object.Key)
		if err != nil {
			return errors.Wrapf(err, "Failed to decode S3 object key: %v", s3Record.S3.Object.Key)
		}

		event.Objects = append(event.Objects, ObjectRef{Bucket: s3Record.S3.Bucket.Name, Key: key})
	}
	return nil
}

// UnmarshalJSON - Decode the JSON to the correct Event type
func (event *Event) UnmarshalJSON(data []byte) error {
	event.Objects = []ObjectRef{}

	switch getEventType(data) {
	case s3EventType:
		s3Event := &events.S3Event{}
		if err := json.Unmarshal(data, s3Event); err != nil {
			return err
		}

		event.Source = "s3"
		return event.addS3Records(s3Event)

	case sqsEventType:
		sqsEvent := &events.SQSEvent{}
		if err := json.Unmarshal(data, sqsEvent); err != nil {
			return err
		}

		event.Source = "sqs"
		for _, sqsRecord := range sqsEvent.Records {
			s3Event := &events.S3Event{}
			if err := json.Unmarshal([]byte(sqsRecord.Body), s3Event); err != nil {
				return errors.Wrap(err, "Failed to decode sqs body to an S3 event")
			}

			if len(s3Event.Records) == 0 {
				return errors.New("S3 Event Records is empty")
			}

			if err := event.addS3Records(s3Event); err != nil {
				return err
			}
		}
		return nil
	}

	return errors.New("Unsupported event type")
}

// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package transport

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ErrInvalidResponse is returned when a response body does not match the
// contract it was decoded against, on either the success or the error path.
var ErrInvalidResponse = errors.New("response could not be validated against API schema")

const defaultErrorMessage = "Internal Server Error"

// Shape is the form a successful response body is expected to take.
type Shape int

const (
	// ShapeObject is a single JSON object.
	ShapeObject Shape = iota
	// ShapeList is a JSON array of objects.
	ShapeList
	// ShapeString is any JSON value, returned as text.
	ShapeString
	// ShapeNoContent ignores the body.
	ShapeNoContent
	// ShapeBytes returns the body untouched, for non-JSON payloads.
	ShapeBytes
)

// Expectation describes the successful response of an operation.
type Expectation struct {
	Shape Shape
	// Schema names the catalog schema for ShapeObject and ShapeList items.
	Schema string
}

// Validator checks a decoded JSON document against a named schema.
type Validator interface {
	Validate(schema string, doc any) error
}

// ServiceError is a well-formed non-2xx answer from the registry.
type ServiceError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("registry returned error %d (HTTP %d): %s", e.Code, e.StatusCode, e.Message)
}

// Outcome is the decoded result of a call: either a successful body or a
// ServiceError, never both.
type Outcome struct {
	// JSON holds the validated document for ShapeObject and ShapeList.
	JSON json.RawMessage
	// Text holds the value for ShapeString.
	Text string
	// Raw holds the body for ShapeBytes.
	Raw []byte
	// ServiceError is set when the registry answered with an error.
	ServiceError *ServiceError
}

// Decode interprets raw according to want on 2xx responses and according to
// errorSchema otherwise.
func Decode(raw *RawResponse, want Expectation, errorSchema string, v Validator) (*Outcome, error) {
	if raw == nil {
		return nil, fmt.Errorf("%w: no response", ErrInvalidResponse)
	}
	if !raw.OK() {
		return decodeError(raw, errorSchema, v)
	}

	switch want.Shape {
	case ShapeNoContent:
		return &Outcome{}, nil
	case ShapeBytes:
		return &Outcome{Raw: raw.Body}, nil
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw.Body))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}

	switch want.Shape {
	case ShapeObject:
		if err := v.Validate(want.Schema, doc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
		}
		return &Outcome{JSON: raw.Body}, nil

	case ShapeList:
		items, ok := doc.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: expected a list of '%s'", ErrInvalidResponse, want.Schema)
		}
		for i, item := range items {
			if err := v.Validate(want.Schema, item); err != nil {
				return nil, fmt.Errorf("%w: item %d: %w", ErrInvalidResponse, i, err)
			}
		}
		return &Outcome{JSON: raw.Body}, nil

	case ShapeString:
		if s, ok := doc.(string); ok {
			return &Outcome{Text: s}, nil
		}
		var compact bytes.Buffer
		if err := json.Compact(&compact, raw.Body); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
		}
		return &Outcome{Text: compact.String()}, nil

	default:
		return nil, fmt.Errorf("unknown response shape %d", int(want.Shape))
	}
}

func decodeError(raw *RawResponse, errorSchema string, v Validator) (*Outcome, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw.Body))
	if err != nil {
		return nil, fmt.Errorf("%w: status %d: %w", ErrInvalidResponse, raw.StatusCode, err)
	}
	if err := v.Validate(errorSchema, doc); err != nil {
		return nil, fmt.Errorf("%w: status %d: %w", ErrInvalidResponse, raw.StatusCode, err)
	}

	var body struct {
		Code    int     `json:"code"`
		Message *string `json:"message"`
	}
	if err := json.Unmarshal(raw.Body, &body); err != nil {
		return nil, fmt.Errorf("%w: status %d: %w", ErrInvalidResponse, raw.StatusCode, err)
	}
	msg := defaultErrorMessage
	if body.Message != nil {
		msg = *body.Message
	}
	return &Outcome{ServiceError: &ServiceError{
		StatusCode: raw.StatusCode,
		Code:       body.Code,
		Message:    msg,
	}}, nil
}

// DecodeInto unmarshals a successful ShapeObject or ShapeList outcome into T.
func DecodeInto[T any](o *Outcome) (T, error) {
	var out T
	if o == nil || o.ServiceError != nil || o.JSON == nil {
		return out, fmt.Errorf("%w: no JSON document to decode", ErrInvalidResponse)
	}
	if err := json.Unmarshal(o.JSON, &out); err != nil {
		return out, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	return out, nil
}

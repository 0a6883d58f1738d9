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
	"context"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrConnectionFailure covers every failure to reach the registry: DNS
	// resolution, refused connections, socket errors and cancelled calls.
	ErrConnectionFailure = errors.New("could not connect to API endpoint")

	// ErrUnsupportedMethod is returned for a Method outside the closed set.
	ErrUnsupportedMethod = errors.New("unsupported HTTP method")
)

// Method is one of the HTTP verbs used by the TRS API.
type Method int

const (
	MethodGet Method = iota + 1
	MethodPost
	MethodPut
	MethodDelete
)

// Verb returns the HTTP verb for m.
func (m Method) Verb() (string, error) {
	switch m {
	case MethodGet:
		return http.MethodGet, nil
	case MethodPost:
		return http.MethodPost, nil
	case MethodPut:
		return http.MethodPut, nil
	case MethodDelete:
		return http.MethodDelete, nil
	default:
		return "", fmt.Errorf("%w: %d", ErrUnsupportedMethod, int(m))
	}
}

func (m Method) String() string {
	v, err := m.Verb()
	if err != nil {
		return fmt.Sprintf("Method(%d)", int(m))
	}
	return v
}

// Request is a single fully-assembled call. It is built for one call and
// must not be reused.
type Request struct {
	Method Method
	URL    string
	Header http.Header
	// Body is marshalled as JSON when non-nil.
	Body any
}

// RawResponse is an undecoded registry answer.
type RawResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// OK reports whether the status code is in the 2xx range.
func (r *RawResponse) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Transport sends requests to a TRS instance.
type Transport interface {
	// Send performs exactly one round trip. Transport-level failures wrap
	// ErrConnectionFailure; status codes are not interpreted.
	Send(ctx context.Context, req *Request) (*RawResponse, error)
}

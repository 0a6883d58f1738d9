// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package httptransport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/elixir-cloud-aai/trs-sdk-go/core/transport"
)

type HTTPTransport struct {
	httpClient *http.Client
	logger     *slog.Logger
}

// Ensure that HTTPTransport implements the Transport interface.
var _ transport.Transport = &HTTPTransport{}

// New returns a Transport backed by client. A nil client selects a default
// http.Client without timeout; a nil logger selects slog.Default().
func New(client *http.Client, logger *slog.Logger) *HTTPTransport {
	if client == nil {
		client = &http.Client{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPTransport{httpClient: client, logger: logger}
}

// HTTPClient returns the underlying http.Client.
func (t *HTTPTransport) HTTPClient() *http.Client { return t.httpClient }

// Send performs a single HTTP round trip.
// Inputs:
//   - ctx: Controls cancellation of the call.
//   - req: The method, URL, headers and optional JSON body of the call.
//     Headers are copied onto the outgoing request as they are.
//
// Returns:
//
//	The status code, headers and full body of the response for any status,
//	or an error wrapping transport.ErrConnectionFailure if the registry could
//	not be reached.
func (t *HTTPTransport) Send(ctx context.Context, req *transport.Request) (*transport.RawResponse, error) {
	verb, err := req.Method.Verb()
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if req.Body != nil {
		payloadBytes, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request payload: %w", err)
		}
		body = bytes.NewReader(payloadBytes)
	}

	// Create the request with a context for cancellation.
	httpReq, err := http.NewRequestWithContext(ctx, verb, req.URL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	for key, values := range req.Header {
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}

	if httpReq.Header.Get("Authorization") != "" && !strings.HasPrefix(req.URL, "https://") {
		t.logger.WarnContext(ctx, "sending bearer token over HTTP; credentials may be exposed, use HTTPS for secure communication",
			slog.String("url", req.URL),
		)
	}

	resp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", transport.ErrConnectionFailure, err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %w", transport.ErrConnectionFailure, err)
	}

	return &transport.RawResponse{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       responseBody,
	}, nil
}

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

package core

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/elixir-cloud-aai/trs-sdk-go/core/transport"
	"golang.org/x/oauth2"
)

// ClientOption configures a TRSClient at creation time.
type ClientOption func(*TRSClient) error

// WithPort overrides the port derived from the address.
func WithPort(port uint16) ClientOption {
	return func(tc *TRSClient) error {
		if port == 0 {
			return fmt.Errorf("%w: port must be between 1 and 65535", ErrInvalidAddress)
		}
		tc.endpointConfig.Port = port
		return nil
	}
}

// WithBasePath overrides the default API base path "ga4gh/trs/v2".
func WithBasePath(basePath string) ClientOption {
	return func(tc *TRSClient) error {
		tc.endpointConfig.BasePath = basePath
		return nil
	}
}

// WithInsecure makes trs:// addresses resolve to http instead of https.
func WithInsecure() ClientOption {
	return func(tc *TRSClient) error {
		tc.endpointConfig.Insecure = true
		return nil
	}
}

// WithBearerToken sets a static bearer token sent with every call.
func WithBearerToken(token string) ClientOption {
	return func(tc *TRSClient) error {
		if token == "" {
			return fmt.Errorf("WithBearerToken: token must not be empty")
		}
		return setTokenSource(tc, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}))
	}
}

// WithTokenSource resolves the bearer token from ts on every call.
func WithTokenSource(ts oauth2.TokenSource) ClientOption {
	return func(tc *TRSClient) error {
		if ts == nil {
			return fmt.Errorf("WithTokenSource: token source must not be nil")
		}
		return setTokenSource(tc, ts)
	}
}

func setTokenSource(tc *TRSClient, ts oauth2.TokenSource) error {
	if tc.tokenSource != nil {
		return fmt.Errorf("bearer token is already set and cannot be overridden")
	}
	tc.tokenSource = ts
	return nil
}

// WithHTTPClient provides a custom http.Client. It is ignored when a
// transport is supplied with WithTransport.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(tc *TRSClient) error {
		if client == nil {
			return fmt.Errorf("WithHTTPClient: http client must not be nil")
		}
		tc.httpClient = client
		return nil
	}
}

// WithTimeout bounds every call. Calls have no timeout by default.
func WithTimeout(d time.Duration) ClientOption {
	return func(tc *TRSClient) error {
		if d <= 0 {
			return fmt.Errorf("WithTimeout: timeout must be positive, got %v", d)
		}
		tc.timeout = d
		return nil
	}
}

// WithLogger sets the logger used by the client and its transport.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(tc *TRSClient) error {
		if logger == nil {
			return fmt.Errorf("WithLogger: logger must not be nil")
		}
		tc.logger = logger
		return nil
	}
}

// WithTransport replaces the HTTP transport.
func WithTransport(t transport.Transport) ClientOption {
	return func(tc *TRSClient) error {
		if t == nil {
			return fmt.Errorf("WithTransport: transport must not be nil")
		}
		tc.transport = t
		return nil
	}
}

// WithClientHeaderString adds a static header to every call. Headers managed
// by the client (Accept, Content-Type, Authorization) take precedence.
func WithClientHeaderString(name, value string) ClientOption {
	return func(tc *TRSClient) error {
		key := http.CanonicalHeaderKey(strings.TrimSpace(name))
		if key == "" {
			return fmt.Errorf("client header name must not be empty")
		}
		if _, exists := tc.clientHeaders[key]; exists {
			return fmt.Errorf("client header '%s' is already set and cannot be overridden", key)
		}
		tc.clientHeaders[key] = value
		return nil
	}
}

type callConfig struct {
	accept      string
	token       string
	encodedPath bool
}

// CallOption configures a single call.
type CallOption func(*callConfig)

// WithAccept requests a response content type. Each operation offers a fixed
// set; anything else fails with ErrContentTypeUnavailable before any request
// is sent. The default is application/json.
func WithAccept(contentType string) CallOption {
	return func(c *callConfig) { c.accept = contentType }
}

// WithToken sends token as the bearer token of this call, in place of the
// client's token source.
func WithToken(token string) CallOption {
	return func(c *callConfig) { c.token = token }
}

// WithEncodedPath marks descriptor paths as already percent-encoded.
func WithEncodedPath() CallOption {
	return func(c *callConfig) { c.encodedPath = true }
}

func newCallConfig(opts []CallOption) (*callConfig, error) {
	cfg := &callConfig{accept: ContentTypeJSON}
	for _, opt := range opts {
		if opt == nil {
			return nil, fmt.Errorf("received a nil CallOption")
		}
		opt(cfg)
	}
	return cfg, nil
}

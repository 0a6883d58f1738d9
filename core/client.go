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
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/elixir-cloud-aai/trs-sdk-go/core/schema"
	"github.com/elixir-cloud-aai/trs-sdk-go/core/transport"
	"github.com/elixir-cloud-aai/trs-sdk-go/core/transport/httptransport"
	"github.com/elixir-cloud-aai/trs-sdk-go/core/trsuri"
	"golang.org/x/oauth2"
)

// TRSClient is a client for a single GA4GH Tool Registry Service. It is
// immutable after construction and safe for concurrent use.
type TRSClient struct {
	endpoint       trsuri.Endpoint
	endpointConfig trsuri.EndpointConfig
	baseURL        string
	httpClient     *http.Client
	timeout        time.Duration
	transport      transport.Transport
	catalog        *schema.Catalog
	tokenSource    oauth2.TokenSource
	clientHeaders  map[string]string
	logger         *slog.Logger
}

// NewTRSClient creates a client for the registry at address. The address is
// a trs://, http:// or https:// URL whose host names the registry; any path
// after the host is ignored.
func NewTRSClient(address string, opts ...ClientOption) (*TRSClient, error) {
	tc := &TRSClient{
		clientHeaders: make(map[string]string),
		logger:        slog.Default(),
	}

	for _, opt := range opts {
		if opt == nil {
			return nil, fmt.Errorf("NewTRSClient: received a nil ClientOption")
		}
		if err := opt(tc); err != nil {
			return nil, err
		}
	}

	endpoint, err := trsuri.ParseEndpoint(address, tc.endpointConfig)
	if err != nil {
		return nil, err
	}
	tc.endpoint = endpoint
	tc.baseURL = endpoint.URL()

	catalog, err := schema.NewCatalog()
	if err != nil {
		return nil, fmt.Errorf("failed to load API schemas: %w", err)
	}
	tc.catalog = catalog

	if tc.transport == nil {
		client := tc.httpClient
		if client == nil {
			client = &http.Client{}
		}
		if tc.timeout > 0 {
			withTimeout := *client
			withTimeout.Timeout = tc.timeout
			client = &withTimeout
		}
		tc.httpClient = client
		tc.transport = httptransport.New(client, tc.logger)
	}

	tc.logger.Info("instantiated TRS client", slog.String("base_url", tc.baseURL))
	return tc, nil
}

// BaseURL returns the resolved scheme://host:port/base_path of the registry.
func (tc *TRSClient) BaseURL() string {
	return tc.baseURL
}

// Endpoint returns the resolved registry endpoint.
func (tc *TRSClient) Endpoint() trsuri.Endpoint {
	return tc.endpoint
}

// Close closes the underlying client session's idle connections.
func (tc *TRSClient) Close() {
	if tc.httpClient == nil {
		return
	}
	tc.httpClient.CloseIdleConnections()
}

// call describes a single request to the registry. path is relative to the
// base URL and already escaped.
type call struct {
	method transport.Method
	path   string
	query  string
	body   any
	want   transport.Expectation
}

// do sends c and decodes the response. A well-formed error answer from the
// registry is returned as a *ServiceError.
func (tc *TRSClient) do(ctx context.Context, c call, cfg *callConfig) (*transport.Outcome, error) {
	accept := cfg.accept
	if c.want.Shape == transport.ShapeBytes {
		accept = ContentTypeZip
	}
	header, err := tc.buildHeaders(accept, c.body != nil, cfg)
	if err != nil {
		return nil, err
	}

	url := tc.baseURL + "/" + c.path
	if c.query != "" {
		url += "?" + c.query
	}

	tc.logger.InfoContext(ctx, "connecting", slog.String("method", c.method.String()), slog.String("url", url))
	raw, err := tc.transport.Send(ctx, &transport.Request{
		Method: c.method,
		URL:    url,
		Header: header,
		Body:   c.body,
	})
	if err != nil {
		return nil, err
	}

	out, err := transport.Decode(raw, c.want, schema.SchemaError, tc.catalog)
	if err != nil {
		return nil, err
	}
	if out.ServiceError != nil {
		tc.logger.WarnContext(ctx, "received error response",
			slog.Int("status", out.ServiceError.StatusCode),
			slog.Int("code", out.ServiceError.Code),
			slog.String("message", out.ServiceError.Message),
		)
		return nil, out.ServiceError
	}
	return out, nil
}

func fetchObject[T any](ctx context.Context, tc *TRSClient, c call, cfg *callConfig) (*T, error) {
	c.want.Shape = transport.ShapeObject
	out, err := tc.do(ctx, c, cfg)
	if err != nil {
		return nil, err
	}
	v, err := transport.DecodeInto[T](out)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func fetchList[T any](ctx context.Context, tc *TRSClient, c call, cfg *callConfig) ([]T, error) {
	c.want.Shape = transport.ShapeList
	out, err := tc.do(ctx, c, cfg)
	if err != nil {
		return nil, err
	}
	return transport.DecodeInto[[]T](out)
}

func fetchString(ctx context.Context, tc *TRSClient, c call, cfg *callConfig) (string, error) {
	c.want.Shape = transport.ShapeString
	out, err := tc.do(ctx, c, cfg)
	if err != nil {
		return "", err
	}
	return out.Text, nil
}

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
	"log/slog"

	"github.com/elixir-cloud-aai/trs-sdk-go/core/schema"
	"github.com/elixir-cloud-aai/trs-sdk-go/core/transport"
)

// PostServiceInfo registers the service-info document of the registry.
func (tc *TRSClient) PostServiceInfo(ctx context.Context, payload ServiceRegister, opts ...CallOption) error {
	cfg, err := newCallConfig(opts)
	if err != nil {
		return err
	}
	if err := checkContentType(cfg.accept, writeContentTypes); err != nil {
		return err
	}
	if err := schema.ValidatePayload(payload); err != nil {
		return err
	}

	_, err = tc.do(ctx, call{
		method: transport.MethodPost,
		path:   "service-info",
		body:   payload,
		want:   transport.Expectation{Shape: transport.ShapeNoContent},
	}, cfg)
	if err != nil {
		return err
	}
	tc.logger.InfoContext(ctx, "registered service info", slog.String("id", payload.ID))
	return nil
}

// GetServiceInfo retrieves the service-info document of the registry.
func (tc *TRSClient) GetServiceInfo(ctx context.Context, opts ...CallOption) (*Service, error) {
	cfg, err := newCallConfig(opts)
	if err != nil {
		return nil, err
	}
	if err := checkContentType(cfg.accept, readContentTypes); err != nil {
		return nil, err
	}

	svc, err := fetchObject[Service](ctx, tc, call{
		method: transport.MethodGet,
		path:   "service-info",
		want:   transport.Expectation{Schema: schema.SchemaService},
	}, cfg)
	if err != nil {
		return nil, err
	}
	tc.logger.InfoContext(ctx, "retrieved service info", slog.String("id", svc.ID))
	return svc, nil
}

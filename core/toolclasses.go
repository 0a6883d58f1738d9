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

	"github.com/elixir-cloud-aai/trs-sdk-go/core/schema"
	"github.com/elixir-cloud-aai/trs-sdk-go/core/transport"
	"github.com/elixir-cloud-aai/trs-sdk-go/core/trsuri"
)

func toolClassPath(id string) (string, error) {
	if id == "" {
		return "", fmt.Errorf("%w: tool class identifier must not be empty", ErrInvalidResourceIdentifier)
	}
	return "toolClasses/" + trsuri.Escape(id), nil
}

// PostToolClass creates a tool class and returns its identifier.
func (tc *TRSClient) PostToolClass(ctx context.Context, payload ToolClassRegister, opts ...CallOption) (string, error) {
	cfg, err := newCallConfig(opts)
	if err != nil {
		return "", err
	}
	if err := checkContentType(cfg.accept, writeContentTypes); err != nil {
		return "", err
	}
	if err := schema.ValidatePayload(payload); err != nil {
		return "", err
	}

	id, err := fetchString(ctx, tc, call{method: transport.MethodPost, path: "toolClasses", body: payload}, cfg)
	if err != nil {
		return "", err
	}
	tc.logger.InfoContext(ctx, "registered tool class", slog.String("id", id))
	return id, nil
}

// PutToolClass creates or replaces the tool class with the given identifier.
func (tc *TRSClient) PutToolClass(ctx context.Context, id string, payload ToolClassRegister, opts ...CallOption) (string, error) {
	cfg, err := newCallConfig(opts)
	if err != nil {
		return "", err
	}
	if err := checkContentType(cfg.accept, writeContentTypes); err != nil {
		return "", err
	}
	path, err := toolClassPath(id)
	if err != nil {
		return "", err
	}
	if err := schema.ValidatePayload(payload); err != nil {
		return "", err
	}

	out, err := fetchString(ctx, tc, call{method: transport.MethodPut, path: path, body: payload}, cfg)
	if err != nil {
		return "", err
	}
	tc.logger.InfoContext(ctx, "registered tool class", slog.String("id", out))
	return out, nil
}

// DeleteToolClass deletes a tool class and returns its identifier.
func (tc *TRSClient) DeleteToolClass(ctx context.Context, id string, opts ...CallOption) (string, error) {
	cfg, err := newCallConfig(opts)
	if err != nil {
		return "", err
	}
	if err := checkContentType(cfg.accept, writeContentTypes); err != nil {
		return "", err
	}
	path, err := toolClassPath(id)
	if err != nil {
		return "", err
	}

	out, err := fetchString(ctx, tc, call{method: transport.MethodDelete, path: path}, cfg)
	if err != nil {
		return "", err
	}
	tc.logger.InfoContext(ctx, "deleted tool class", slog.String("id", out))
	return out, nil
}

// GetToolClasses lists the tool classes known to the registry.
func (tc *TRSClient) GetToolClasses(ctx context.Context, opts ...CallOption) ([]ToolClass, error) {
	cfg, err := newCallConfig(opts)
	if err != nil {
		return nil, err
	}
	if err := checkContentType(cfg.accept, readContentTypes); err != nil {
		return nil, err
	}

	classes, err := fetchList[ToolClass](ctx, tc, call{
		method: transport.MethodGet,
		path:   "toolClasses",
		want:   transport.Expectation{Schema: schema.SchemaToolClass},
	}, cfg)
	if err != nil {
		return nil, err
	}
	tc.logger.InfoContext(ctx, "retrieved tool classes", slog.Int("count", len(classes)))
	return classes, nil
}

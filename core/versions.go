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

// PostVersion adds a version to a tool and returns the version identifier.
func (tc *TRSClient) PostVersion(ctx context.Context, id string, payload ToolVersionRegister, opts ...CallOption) (string, error) {
	cfg, err := newCallConfig(opts)
	if err != nil {
		return "", err
	}
	if err := checkContentType(cfg.accept, writeContentTypes); err != nil {
		return "", err
	}
	path, err := toolPath(id, "", false)
	if err != nil {
		return "", err
	}
	if err := schema.ValidatePayload(payload); err != nil {
		return "", err
	}

	out, err := fetchString(ctx, tc, call{method: transport.MethodPost, path: path + "/versions", body: payload}, cfg)
	if err != nil {
		return "", err
	}
	tc.logger.InfoContext(ctx, "registered tool version", slog.String("id", out))
	return out, nil
}

// PutVersion creates or replaces a version of a tool.
func (tc *TRSClient) PutVersion(ctx context.Context, id, versionID string, payload ToolVersionRegister, opts ...CallOption) (string, error) {
	cfg, err := newCallConfig(opts)
	if err != nil {
		return "", err
	}
	if err := checkContentType(cfg.accept, writeContentTypes); err != nil {
		return "", err
	}
	path, err := toolPath(id, versionID, true)
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
	tc.logger.InfoContext(ctx, "registered tool version", slog.String("id", out))
	return out, nil
}

// DeleteVersion deletes a version of a tool.
func (tc *TRSClient) DeleteVersion(ctx context.Context, id, versionID string, opts ...CallOption) (string, error) {
	cfg, err := newCallConfig(opts)
	if err != nil {
		return "", err
	}
	if err := checkContentType(cfg.accept, writeContentTypes); err != nil {
		return "", err
	}
	path, err := toolPath(id, versionID, true)
	if err != nil {
		return "", err
	}

	out, err := fetchString(ctx, tc, call{method: transport.MethodDelete, path: path}, cfg)
	if err != nil {
		return "", err
	}
	tc.logger.InfoContext(ctx, "deleted tool version", slog.String("id", out))
	return out, nil
}

// GetVersions lists the versions of a tool.
func (tc *TRSClient) GetVersions(ctx context.Context, id string, opts ...CallOption) ([]ToolVersion, error) {
	cfg, err := newCallConfig(opts)
	if err != nil {
		return nil, err
	}
	if err := checkContentType(cfg.accept, readContentTypes); err != nil {
		return nil, err
	}
	path, err := toolPath(id, "", false)
	if err != nil {
		return nil, err
	}

	versions, err := fetchList[ToolVersion](ctx, tc, call{
		method: transport.MethodGet,
		path:   path + "/versions",
		want:   transport.Expectation{Schema: schema.SchemaToolVersion},
	}, cfg)
	if err != nil {
		return nil, err
	}
	tc.logger.InfoContext(ctx, "retrieved tool versions", slog.Int("count", len(versions)))
	return versions, nil
}

// GetVersion retrieves a single version of a tool. The version may be given
// as versionID or embedded in a TRS URI passed as id; versionID wins.
func (tc *TRSClient) GetVersion(ctx context.Context, id, versionID string, opts ...CallOption) (*ToolVersion, error) {
	cfg, err := newCallConfig(opts)
	if err != nil {
		return nil, err
	}
	if err := checkContentType(cfg.accept, readContentTypes); err != nil {
		return nil, err
	}
	path, err := toolPath(id, versionID, true)
	if err != nil {
		return nil, err
	}

	version, err := fetchObject[ToolVersion](ctx, tc, call{
		method: transport.MethodGet,
		path:   path,
		want:   transport.Expectation{Schema: schema.SchemaToolVersion},
	}, cfg)
	if err != nil {
		return nil, err
	}
	tc.logger.InfoContext(ctx, "retrieved tool version", slog.String("id", version.ID))
	return version, nil
}

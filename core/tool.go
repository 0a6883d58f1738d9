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
	"strconv"
	"strings"

	"github.com/elixir-cloud-aai/trs-sdk-go/core/schema"
	"github.com/elixir-cloud-aai/trs-sdk-go/core/transport"
	"github.com/elixir-cloud-aai/trs-sdk-go/core/trsuri"
)

// ToolsFilter narrows the result of GetTools. Zero values are not sent.
type ToolsFilter struct {
	ID             string
	Alias          string
	ToolClass      string
	DescriptorType DescriptorType
	Registry       string
	Organization   string
	Name           string
	ToolName       string
	Description    string
	Author         string
	Checker        *bool
	Limit          *int
	Offset         *int
}

// encode renders the filter as a query string with a fixed parameter order.
func (f ToolsFilter) encode() string {
	var params []string
	add := func(key, value string) {
		params = append(params, key+"="+trsuri.Escape(value))
	}
	for _, p := range []struct{ key, value string }{
		{"id", f.ID},
		{"alias", f.Alias},
		{"toolClass", f.ToolClass},
		{"descriptorType", string(f.DescriptorType)},
		{"registry", f.Registry},
		{"organization", f.Organization},
		{"name", f.Name},
		{"toolname", f.ToolName},
		{"description", f.Description},
		{"author", f.Author},
	} {
		if p.value != "" {
			add(p.key, p.value)
		}
	}
	if f.Checker != nil {
		add("checker", strconv.FormatBool(*f.Checker))
	}
	if f.Limit != nil {
		add("limit", strconv.Itoa(*f.Limit))
	}
	if f.Offset != nil {
		add("offset", strconv.Itoa(*f.Offset))
	}
	return strings.Join(params, "&")
}

// PostTool registers a tool and returns its identifier.
func (tc *TRSClient) PostTool(ctx context.Context, payload ToolRegister, opts ...CallOption) (string, error) {
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

	id, err := fetchString(ctx, tc, call{method: transport.MethodPost, path: "tools", body: payload}, cfg)
	if err != nil {
		return "", err
	}
	tc.logger.InfoContext(ctx, "registered tool", slog.String("id", id))
	return id, nil
}

// PutTool creates or replaces the tool with the given identifier.
func (tc *TRSClient) PutTool(ctx context.Context, id string, payload ToolRegister, opts ...CallOption) (string, error) {
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

	out, err := fetchString(ctx, tc, call{method: transport.MethodPut, path: path, body: payload}, cfg)
	if err != nil {
		return "", err
	}
	tc.logger.InfoContext(ctx, "registered tool", slog.String("id", out))
	return out, nil
}

// DeleteTool deletes a tool and all of its versions.
func (tc *TRSClient) DeleteTool(ctx context.Context, id string, opts ...CallOption) (string, error) {
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

	out, err := fetchString(ctx, tc, call{method: transport.MethodDelete, path: path}, cfg)
	if err != nil {
		return "", err
	}
	tc.logger.InfoContext(ctx, "deleted tool", slog.String("id", out))
	return out, nil
}

// GetTools lists the tools matching filter.
func (tc *TRSClient) GetTools(ctx context.Context, filter ToolsFilter, opts ...CallOption) ([]Tool, error) {
	cfg, err := newCallConfig(opts)
	if err != nil {
		return nil, err
	}
	if err := checkContentType(cfg.accept, readContentTypes); err != nil {
		return nil, err
	}

	tools, err := fetchList[Tool](ctx, tc, call{
		method: transport.MethodGet,
		path:   "tools",
		query:  filter.encode(),
		want:   transport.Expectation{Schema: schema.SchemaTool},
	}, cfg)
	if err != nil {
		return nil, err
	}
	tc.logger.InfoContext(ctx, "retrieved tools", slog.Int("count", len(tools)))
	return tools, nil
}

// GetTool retrieves a single tool. id may be a plain identifier or a TRS URI;
// a version embedded in a TRS URI is ignored.
func (tc *TRSClient) GetTool(ctx context.Context, id string, opts ...CallOption) (*Tool, error) {
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

	tool, err := fetchObject[Tool](ctx, tc, call{
		method: transport.MethodGet,
		path:   path,
		want:   transport.Expectation{Schema: schema.SchemaTool},
	}, cfg)
	if err != nil {
		return nil, err
	}
	tc.logger.InfoContext(ctx, "retrieved tool", slog.String("id", tool.ID))
	return tool, nil
}

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

// GetFiles format values.
const (
	FormatJSON = ""
	FormatZip  = "zip"
)

// GetContainerfiles retrieves the container recipes of a tool version.
func (tc *TRSClient) GetContainerfiles(ctx context.Context, id, versionID string, opts ...CallOption) ([]FileWrapper, error) {
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

	files, err := fetchList[FileWrapper](ctx, tc, call{
		method: transport.MethodGet,
		path:   path + "/containerfile",
		want:   transport.Expectation{Schema: schema.SchemaFileWrapper},
	}, cfg)
	if err != nil {
		return nil, err
	}
	tc.logger.InfoContext(ctx, "retrieved containerfiles", slog.Int("count", len(files)))
	return files, nil
}

// GetDescriptor retrieves the primary descriptor of a tool version.
func (tc *TRSClient) GetDescriptor(ctx context.Context, descriptorType DescriptorType, id, versionID string, opts ...CallOption) (*FileWrapper, error) {
	cfg, err := newCallConfig(opts)
	if err != nil {
		return nil, err
	}
	if err := checkContentType(cfg.accept, readContentTypes); err != nil {
		return nil, err
	}
	base, err := descriptorPath(descriptorType, id, versionID)
	if err != nil {
		return nil, err
	}

	file, err := fetchObject[FileWrapper](ctx, tc, call{
		method: transport.MethodGet,
		path:   base + "/descriptor",
		want:   transport.Expectation{Schema: schema.SchemaFileWrapper},
	}, cfg)
	if err != nil {
		return nil, err
	}
	tc.logger.InfoContext(ctx, "retrieved descriptor", slog.String("type", string(descriptorType)))
	return file, nil
}

// GetDescriptorByPath retrieves a file of a tool version by its path relative
// to the primary descriptor. The path is percent-encoded as a single segment
// unless WithEncodedPath is given.
func (tc *TRSClient) GetDescriptorByPath(ctx context.Context, descriptorType DescriptorType, path, id, versionID string, opts ...CallOption) (*FileWrapper, error) {
	cfg, err := newCallConfig(opts)
	if err != nil {
		return nil, err
	}
	if err := checkContentType(cfg.accept, readContentTypes); err != nil {
		return nil, err
	}
	base, err := descriptorPath(descriptorType, id, versionID)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, fmt.Errorf("%w: descriptor path must not be empty", ErrInvalidResourceIdentifier)
	}
	if !cfg.encodedPath {
		path = trsuri.Escape(path)
	}

	file, err := fetchObject[FileWrapper](ctx, tc, call{
		method: transport.MethodGet,
		path:   base + "/descriptor/" + path,
		want:   transport.Expectation{Schema: schema.SchemaFileWrapper},
	}, cfg)
	if err != nil {
		return nil, err
	}
	tc.logger.InfoContext(ctx, "retrieved descriptor", slog.String("type", string(descriptorType)), slog.String("path", path))
	return file, nil
}

// GetFiles lists the files of a tool version. With format FormatZip the
// registry is asked for a zip archive of all files instead, returned in
// FileListing.Archive.
func (tc *TRSClient) GetFiles(ctx context.Context, descriptorType DescriptorType, id, versionID, format string, opts ...CallOption) (*FileListing, error) {
	cfg, err := newCallConfig(opts)
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatJSON:
		if err := checkContentType(cfg.accept, readContentTypes); err != nil {
			return nil, err
		}
	case FormatZip:
	default:
		return nil, fmt.Errorf("%w: format '%s', available: '', '%s'", ErrContentTypeUnavailable, format, FormatZip)
	}
	base, err := descriptorPath(descriptorType, id, versionID)
	if err != nil {
		return nil, err
	}

	c := call{method: transport.MethodGet, path: base + "/files"}
	if format == FormatZip {
		c.query = "format=" + FormatZip
		c.want = transport.Expectation{Shape: transport.ShapeBytes}
		out, err := tc.do(ctx, c, cfg)
		if err != nil {
			return nil, err
		}
		tc.logger.InfoContext(ctx, "retrieved files archive", slog.Int("bytes", len(out.Raw)))
		return &FileListing{Archive: out.Raw}, nil
	}

	c.want = transport.Expectation{Schema: schema.SchemaToolFile}
	files, err := fetchList[ToolFile](ctx, tc, c, cfg)
	if err != nil {
		return nil, err
	}
	tc.logger.InfoContext(ctx, "retrieved files", slog.Int("count", len(files)))
	return &FileListing{Files: files}, nil
}

// GetTests retrieves the test parameter files of a tool version.
func (tc *TRSClient) GetTests(ctx context.Context, descriptorType DescriptorType, id, versionID string, opts ...CallOption) ([]FileWrapper, error) {
	cfg, err := newCallConfig(opts)
	if err != nil {
		return nil, err
	}
	if err := checkContentType(cfg.accept, readContentTypes); err != nil {
		return nil, err
	}
	base, err := descriptorPath(descriptorType, id, versionID)
	if err != nil {
		return nil, err
	}

	files, err := fetchList[FileWrapper](ctx, tc, call{
		method: transport.MethodGet,
		path:   base + "/tests",
		want:   transport.Expectation{Schema: schema.SchemaFileWrapper},
	}, cfg)
	if err != nil {
		return nil, err
	}
	tc.logger.InfoContext(ctx, "retrieved test files", slog.Int("count", len(files)))
	return files, nil
}

// descriptorPath resolves "tools/{id}/versions/{vid}/{type}".
func descriptorPath(descriptorType DescriptorType, id, versionID string) (string, error) {
	path, err := toolPath(id, versionID, true)
	if err != nil {
		return "", err
	}
	segment, err := descriptorTypeSegment(descriptorType)
	if err != nil {
		return "", err
	}
	return path + "/" + segment, nil
}

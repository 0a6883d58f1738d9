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
	"errors"
	"fmt"
	"log/slog"

	"github.com/elixir-cloud-aai/trs-sdk-go/core/schema"
)

// RetrieveFiles downloads every file of a tool version into outDir,
// recreating the relative paths reported by the registry. See
// RetrieveFilesTo.
func (tc *TRSClient) RetrieveFiles(ctx context.Context, outDir string, descriptorType DescriptorType, id, versionID string, opts ...CallOption) (map[FileType][]string, error) {
	return tc.RetrieveFilesTo(ctx, DirSink(outDir), descriptorType, id, versionID, opts...)
}

// RetrieveFilesTo downloads every file of a tool version into sink.
//
// The file listing is fetched first, then each file's content one at a time;
// nothing is written until every file has been fetched. Files already
// written are not removed if a later write fails.
//
// Returns:
//
//	The relative paths of the written files grouped by file type, with
//	untyped files under OTHER. Every FileType has an entry.
func (tc *TRSClient) RetrieveFilesTo(ctx context.Context, sink FileSink, descriptorType DescriptorType, id, versionID string, opts ...CallOption) (map[FileType][]string, error) {
	if sink == nil {
		return nil, fmt.Errorf("%w: no file sink", ErrOutputDirectory)
	}
	if err := sink.Prepare(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOutputDirectory, err)
	}

	listing, err := tc.GetFiles(ctx, descriptorType, id, versionID, FormatJSON, opts...)
	if err != nil {
		var se *ServiceError
		if errors.As(err, &se) {
			return nil, fmt.Errorf("%w: could not list files: %w", ErrFileInformationUnavailable, err)
		}
		return nil, err
	}

	byType := make(map[FileType][]string, len(schema.FileTypes))
	for _, ft := range schema.FileTypes {
		byType[ft] = []string{}
	}
	paths := make([]string, 0, len(listing.Files))
	for i, f := range listing.Files {
		if f.Path == nil {
			return nil, fmt.Errorf("%w: file %d of the listing has no path", ErrFileInformationUnavailable, i)
		}
		ft := schema.FileTypeOther
		if f.FileType != nil {
			ft = *f.FileType
		}
		byType[ft] = append(byType[ft], *f.Path)
		paths = append(paths, *f.Path)
	}

	contents := make([]string, len(paths))
	for i, p := range paths {
		file, err := tc.GetDescriptorByPath(ctx, descriptorType, p, id, versionID, opts...)
		if err != nil {
			var se *ServiceError
			if errors.As(err, &se) {
				return nil, fmt.Errorf("%w: could not retrieve '%s': %w", ErrFileInformationUnavailable, p, err)
			}
			return nil, err
		}
		if file.Content == nil {
			return nil, fmt.Errorf("%w: no content for '%s'", ErrFileInformationUnavailable, p)
		}
		contents[i] = *file.Content
	}

	for i, p := range paths {
		if err := sink.WriteFile(ctx, p, []byte(contents[i])); err != nil {
			return nil, fmt.Errorf("%w: '%s': %w", ErrWriteFile, p, err)
		}
	}

	tc.logger.InfoContext(ctx, "retrieved files", slog.Int("count", len(paths)))
	return byType, nil
}

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
	"net/http"
	"slices"
	"strings"

	"github.com/elixir-cloud-aai/trs-sdk-go/core/trsuri"
)

var (
	readContentTypes  = []string{ContentTypeJSON, ContentTypeText}
	writeContentTypes = []string{ContentTypeJSON}
)

// checkContentType fails if requested is not among the content types an
// operation offers.
func checkContentType(requested string, available []string) error {
	if slices.Contains(available, requested) {
		return nil
	}
	return fmt.Errorf("%w: '%s', available: %s", ErrContentTypeUnavailable, requested, strings.Join(available, ", "))
}

// buildHeaders assembles a fresh header set for one call.
//
// Inputs:
//   - accept: The Accept header value.
//   - hasBody: Whether a JSON body is sent; only then is Content-Type set.
//   - cfg: The call configuration, carrying an optional per-call token.
//
// Returns:
//
//	The headers, or an error if the client's token source fails.
func (tc *TRSClient) buildHeaders(accept string, hasBody bool, cfg *callConfig) (http.Header, error) {
	header := make(http.Header, len(tc.clientHeaders)+3)
	for name, value := range tc.clientHeaders {
		header.Set(name, value)
	}

	header.Set("Accept", accept)
	if hasBody {
		header.Set("Content-Type", ContentTypeJSON)
	}

	switch {
	case cfg.token != "":
		header.Set("Authorization", "Bearer "+cfg.token)
	case tc.tokenSource != nil:
		token, err := tc.tokenSource.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve bearer token: %w", err)
		}
		header.Set("Authorization", token.Type()+" "+token.AccessToken)
	}
	return header, nil
}

// toolPath resolves a tool id and optional version id to an escaped path
// below the base URL: "tools/{id}" or "tools/{id}/versions/{vid}".
func toolPath(toolID, versionID string, needVersion bool) (string, error) {
	ref, err := trsuri.ParseResourceRef(toolID, versionID)
	if err != nil {
		return "", err
	}
	if ref.ToolID == "" {
		return "", fmt.Errorf("%w: no tool identifier in '%s'/'%s'", ErrInvalidResourceIdentifier, toolID, versionID)
	}
	if !needVersion {
		return "tools/" + ref.ToolID, nil
	}
	if !ref.HasVersion() {
		return "", fmt.Errorf("%w: no version identifier for tool '%s'", ErrInvalidResourceIdentifier, toolID)
	}
	return "tools/" + ref.ToolID + "/versions/" + ref.VersionID, nil
}

func descriptorTypeSegment(t DescriptorType) (string, error) {
	if t == "" {
		return "", fmt.Errorf("%w: descriptor type must not be empty", ErrInvalidResourceIdentifier)
	}
	return trsuri.Escape(string(t)), nil
}
